package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager(t *testing.T) {
	m := NewManager(Options{SmallBlind: 10, BigBlind: 20}, newFakeSaver(), 1000)

	r, err := m.CreateRoom("friday night", true)
	assert.NoError(t, err)
	assert.NotEqual(t, "", r.UUID)
	assert.Equal(t, "friday night", r.Name)

	got, ok := m.GetRoom(r.UUID)
	assert.True(t, ok)
	assert.Equal(t, r, got)

	_, ok = m.GetRoom("bogus")
	assert.False(t, ok)

	// the scripted opponent is already seated, so one player is enough
	assert.NoError(t, r.Join(1, "alice", 1000))
	assert.NoError(t, r.Deal())

	m.CloseRoom(r.UUID)
	_, ok = m.GetRoom(r.UUID)
	assert.False(t, ok)
	assert.Equal(t, ErrRoomClosed, r.Join(2, "bob", 1000))

	// closing twice is harmless
	m.CloseRoom(r.UUID)
}

func TestManager_withoutBot(t *testing.T) {
	m := NewManager(Options{SmallBlind: 10, BigBlind: 20}, newFakeSaver(), 1000)

	r, err := m.CreateRoom("humans only", false)
	assert.NoError(t, err)
	defer m.CloseRoom(r.UUID)

	assert.NoError(t, r.Join(1, "alice", 1000))
	assert.EqualError(t, r.Deal(), "there must be at least two seats")
}

func TestManager_ClientDisconnected(t *testing.T) {
	m := NewManager(Options{SmallBlind: 10, BigBlind: 20}, newFakeSaver(), 1000)

	r, err := m.CreateRoom("poker", true)
	assert.NoError(t, err)
	defer m.CloseRoom(r.UUID)

	client := NewClient(nil, 1, "alice")
	r.AddClient(client)
	m.ClientDisconnected(client)
	assert.Equal(t, 0, len(r.Clients()))

	// a client that never joined a room is a no-op
	m.ClientDisconnected(NewClient(nil, 2, "bob"))

	// the room outlives its last client
	_, ok := m.GetRoom(r.UUID)
	assert.True(t, ok)
}
