// Package account persists players and their chip balances.
// Login auto-registers unknown usernames with the configured starting chips,
// matching the behavior of the legacy account service it replaces.
package account

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/synacor/argon2id"

	"github.com/cZR2911/jilaoda-poker/pkg/db"
)

const playerColumns = `
players.id,
players.username,
players.chips,
players.is_site_admin,
players.password_hash,
players.created,
players.updated`

const pqDuplicateKeyErrorCode pq.ErrorCode = "23505"

// ErrDuplicateKey happens if two logins race to register the same username
var ErrDuplicateKey = errors.New("duplicate key constraint violation")

// Player is a record in the `players` table
type Player struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Chips       int    `json:"chips"`
	IsSiteAdmin bool   `json:"isSiteAdmin"`

	passwordHash string

	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

func getPlayerByRow(row db.Scanner) (*Player, error) {
	var player Player
	if err := row.Scan(&player.ID, &player.Username, &player.Chips, &player.IsSiteAdmin, &player.passwordHash, &player.Created, &player.Updated); err != nil {
		return nil, err
	}

	return &player, nil
}

// GetPlayerByID returns a player based on the ID
func GetPlayerByID(ctx context.Context, id int64) (*Player, error) {
	const query = `
SELECT ` + playerColumns + `
FROM players
WHERE id = $1`

	row := db.Instance().QueryRowContext(ctx, query, id)
	return getPlayerByRow(row)
}

// GetPlayerByUsername returns a player by the username
func GetPlayerByUsername(ctx context.Context, username string) (*Player, error) {
	const query = `
SELECT ` + playerColumns + `
FROM players
WHERE lower(username) = lower($1)`

	row := db.Instance().QueryRowContext(ctx, query, username)
	return getPlayerByRow(row)
}

// CreatePlayer registers a new player with the starting chip balance
func CreatePlayer(ctx context.Context, username, password string, startingChips int) (*Player, error) {
	hash, err := argon2id.DefaultHashPassword(password)
	if err != nil {
		return nil, err
	}

	const query = `
INSERT INTO players (username, password_hash, chips)
VALUES ($1, $2, $3)
RETURNING id, created, updated`

	var player Player
	row := db.Instance().QueryRowContext(ctx, query, username, hash, startingChips)
	if err := row.Scan(&player.ID, &player.Created, &player.Updated); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqDuplicateKeyErrorCode {
			return nil, ErrDuplicateKey
		}

		return nil, err
	}

	player.Username = username
	player.Chips = startingChips
	player.passwordHash = hash

	return &player, nil
}

// Login validates a username and password.
// An unknown username is auto-registered with startingChips. A known
// username with the wrong password yields ErrInvalidUsernameOrPassword.
func Login(ctx context.Context, username, password string, startingChips int) (*Player, error) {
	player, err := GetPlayerByUsername(ctx, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return CreatePlayer(ctx, username, password, startingChips)
		}

		return nil, err
	}

	if err := argon2id.Compare(player.passwordHash, password); err != nil {
		return nil, ErrInvalidUsernameOrPassword
	}

	return player, nil
}

// UpdateChips persists a new chip balance for the player
func (p *Player) UpdateChips(ctx context.Context, chips int) error {
	const query = `
UPDATE players
SET chips = $1,
    updated = (NOW() AT TIME ZONE 'utc')
WHERE id = $2`

	if _, err := db.Instance().ExecContext(ctx, query, chips, p.ID); err != nil {
		return err
	}

	p.Chips = chips
	return nil
}

// ResetPassword replaces the player's password
func ResetPassword(ctx context.Context, username, newPassword string) error {
	hash, err := argon2id.DefaultHashPassword(newPassword)
	if err != nil {
		return err
	}

	const query = `
UPDATE players
SET password_hash = $1,
    updated = (NOW() AT TIME ZONE 'utc')
WHERE lower(username) = lower($2)`

	result, err := db.Instance().ExecContext(ctx, query, hash, username)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrPlayerNotFound
	}

	return nil
}

// SetIsSiteAdmin will set the admin flag for the player
func (p *Player) SetIsSiteAdmin(ctx context.Context, isSiteAdmin bool) error {
	const query = `
UPDATE players
SET is_site_admin = $1,
    updated = (NOW() AT TIME ZONE 'utc')
WHERE id = $2`

	if _, err := db.Instance().ExecContext(ctx, query, isSiteAdmin, p.ID); err != nil {
		return err
	}

	p.IsSiteAdmin = isSiteAdmin
	return nil
}
