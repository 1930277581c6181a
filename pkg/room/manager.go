package room

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Manager owns the living rooms, looked up by UUID
// Rooms have an explicit lifecycle: created here, destroyed with CloseRoom.
type Manager struct {
	lock  sync.RWMutex
	rooms map[string]*Room
	opts  Options
	saver BalanceSaver

	// botChips is the stack the scripted opponent sits down with
	botChips int
}

// NewManager returns a room manager
func NewManager(opts Options, saver BalanceSaver, botChips int) *Manager {
	return &Manager{
		rooms:    make(map[string]*Room),
		opts:     opts,
		saver:    saver,
		botChips: botChips,
	}
}

// CreateRoom creates and starts a room
// With withBot set, the scripted opponent is seated immediately so a single
// player can play heads-up.
func (m *Manager) CreateRoom(name string, withBot bool) (*Room, error) {
	r := NewRoom(uuid.New().String(), name, m.opts, m.saver)
	r.StartShift()

	if withBot {
		if err := r.AddBot(m.botChips); err != nil {
			r.EndShift()
			return nil, err
		}
	}

	m.lock.Lock()
	m.rooms[r.UUID] = r
	m.lock.Unlock()

	logrus.WithFields(logrus.Fields{
		"uuid": r.UUID,
		"room": r.Name,
	}).Info("room created")

	return r, nil
}

// GetRoom looks up a room by UUID
func (m *Manager) GetRoom(uuid string) (*Room, bool) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	r, ok := m.rooms[uuid]
	return r, ok
}

// CloseRoom terminates a room's run loop and forgets it
func (m *Manager) CloseRoom(uuid string) {
	m.lock.Lock()
	r, ok := m.rooms[uuid]
	delete(m.rooms, uuid)
	m.lock.Unlock()

	if ok {
		r.EndShift()

		for _, client := range r.Clients() {
			select {
			case client.Close <- "room closed":
			default:
			}
		}

		logrus.WithField("uuid", uuid).Info("room closed")
	}
}

// ClientDisconnected removes the client from its room
// The room itself stays open: polling clients hold no connection, so an empty
// client set does not mean an abandoned room.
func (m *Manager) ClientDisconnected(client *Client) {
	if client.room == nil {
		return
	}

	client.room.RemoveClient(client)
}
