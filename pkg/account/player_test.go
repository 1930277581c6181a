package account

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var cbg = context.Background()

func randomUsername() string {
	return fmt.Sprintf("player_%d", time.Now().UnixNano())
}

func TestLogin_autoRegisters(t *testing.T) {
	username := randomUsername()

	_, err := GetPlayerByUsername(cbg, username)
	assert.Equal(t, sql.ErrNoRows, err)

	player, err := Login(cbg, username, "password", 1000)
	assert.NoError(t, err)
	assert.NotNil(t, player)
	assert.Greater(t, player.ID, int64(0))
	assert.Equal(t, username, player.Username)
	assert.Equal(t, 1000, player.Chips)
	assert.False(t, player.IsSiteAdmin)

	// a second login is an authentication, not a second registration
	again, err := Login(cbg, username, "password", 1000)
	assert.NoError(t, err)
	assert.Equal(t, player.ID, again.ID)

	// the wrong password does not fall through to registration
	bad, err := Login(cbg, username, "wrong", 1000)
	assert.Equal(t, ErrInvalidUsernameOrPassword, err)
	assert.Nil(t, bad)
}

func TestCreatePlayer_duplicate(t *testing.T) {
	username := randomUsername()

	player, err := CreatePlayer(cbg, username, "password", 1000)
	assert.NoError(t, err)
	assert.NotNil(t, player)

	// the unique index is case-insensitive
	dupe, err := CreatePlayer(cbg, strings.ToUpper(username), "password", 1000)
	assert.Equal(t, ErrDuplicateKey, err)
	assert.Nil(t, dupe)
}

func TestGetPlayerByID(t *testing.T) {
	username := randomUsername()

	player, err := CreatePlayer(cbg, username, "password", 500)
	assert.NoError(t, err)

	got, err := GetPlayerByID(cbg, player.ID)
	assert.NoError(t, err)
	assert.Equal(t, player.ID, got.ID)
	assert.Equal(t, username, got.Username)
	assert.Equal(t, 500, got.Chips)

	_, err = GetPlayerByID(cbg, -1)
	assert.Equal(t, sql.ErrNoRows, err)
}

func TestPlayer_UpdateChips(t *testing.T) {
	player, err := CreatePlayer(cbg, randomUsername(), "password", 1000)
	assert.NoError(t, err)

	assert.NoError(t, player.UpdateChips(cbg, 1250))
	assert.Equal(t, 1250, player.Chips)

	got, err := GetPlayerByID(cbg, player.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1250, got.Chips)
}

func TestResetPassword(t *testing.T) {
	username := randomUsername()

	_, err := CreatePlayer(cbg, username, "old-password", 1000)
	assert.NoError(t, err)

	assert.NoError(t, ResetPassword(cbg, username, "new-password"))

	_, err = Login(cbg, username, "old-password", 1000)
	assert.Equal(t, ErrInvalidUsernameOrPassword, err)

	player, err := Login(cbg, username, "new-password", 1000)
	assert.NoError(t, err)
	assert.Equal(t, username, player.Username)

	assert.Equal(t, ErrPlayerNotFound, ResetPassword(cbg, randomUsername(), "whatever"))
}

func TestPlayer_SetIsSiteAdmin(t *testing.T) {
	player, err := CreatePlayer(cbg, randomUsername(), "password", 1000)
	assert.NoError(t, err)

	assert.NoError(t, player.SetIsSiteAdmin(cbg, true))
	assert.True(t, player.IsSiteAdmin)

	got, err := GetPlayerByID(cbg, player.ID)
	assert.NoError(t, err)
	assert.True(t, got.IsSiteAdmin)
}
