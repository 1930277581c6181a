// Package room hosts one poker engine instance per room and serializes all
// access to it. A room's run loop is the only goroutine that touches the
// engine, so two players submitting actions at the same time are applied one
// at a time and the loser sees a turn rejection instead of corrupt state.
package room

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cZR2911/jilaoda-poker/internal/rng"
	"github.com/cZR2911/jilaoda-poker/pkg/holdem"
)

// BotName is the display name of the scripted opponent seat
const BotName = "House Bot"

// ErrRoomClosed is returned when the room's run loop has terminated
var ErrRoomClosed = errors.New("room is closed")

// ErrNotSeated is returned when the player has no seat in the room
var ErrNotSeated = errors.New("player is not seated in this room")

// ErrNoHand is returned when no hand is in progress
var ErrNoHand = errors.New("no hand in progress")

// ErrHandInProgress is returned when a deal is requested mid-hand
var ErrHandInProgress = errors.New("a hand is already in progress")

// ErrRoomFull is returned when all seats are taken
var ErrRoomFull = errors.New("room is full")

const maxSeats = 9

// BalanceSaver persists a player's chips at the end of a hand
type BalanceSaver interface {
	SaveChips(ctx context.Context, playerID int64, chips int) error
}

// Options configures the rooms a Manager creates
type Options struct {
	SmallBlind    int
	BigBlind      int
	OpponentDelay time.Duration
}

type seatBinding struct {
	playerID int64
	username string
	chips    int
	isBot    bool
}

// Room owns one betting engine plus the seat-to-player bindings and the
// connected websocket clients
type Room struct {
	UUID string
	Name string

	log    logrus.FieldLogger
	opts   Options
	policy *holdem.BasicPolicy
	rng    rng.Generator
	saver  BalanceSaver

	lock    sync.RWMutex
	clients map[*Client]bool

	// seats and game must only be touched from the run loop
	seats []*seatBinding
	game  *holdem.Game

	exec    chan func()
	closeCh chan bool
}

// NewRoom returns a room; call StartShift to start its run loop
func NewRoom(uuid, name string, opts Options, saver BalanceSaver) *Room {
	return &Room{
		UUID: uuid,
		Name: name,
		log: logrus.WithFields(logrus.Fields{
			"uuid": uuid,
			"room": name,
		}),
		opts:    opts,
		policy:  holdem.NewBasicPolicy(),
		rng:     rng.Crypto{},
		saver:   saver,
		clients: make(map[*Client]bool),
		seats:   make([]*seatBinding, 0, 2),
		exec:    make(chan func(), 256),
		closeCh: make(chan bool),
	}
}

// StartShift starts the run loop
func (r *Room) StartShift() {
	go r.runLoop()
}

// EndShift terminates the run loop
func (r *Room) EndShift() {
	close(r.closeCh)
}

func (r *Room) runLoop() {
	r.log.Debug("room run loop started")
	for {
		select {
		case fn := <-r.exec:
			fn()
		case <-r.closeCh:
			r.log.Debug("room run loop terminated")
			return
		}
	}
}

// do runs fn on the run loop and waits for its result
func (r *Room) do(fn func() error) error {
	errCh := make(chan error, 1)

	select {
	case r.exec <- func() { errCh <- fn() }:
	case <-r.closeCh:
		return ErrRoomClosed
	}

	select {
	case err := <-errCh:
		return err
	case <-r.closeCh:
		return ErrRoomClosed
	}
}

// AddBot seats the scripted opponent
func (r *Room) AddBot(chips int) error {
	return r.do(func() error {
		return r.seatLocked(&seatBinding{username: BotName, chips: chips, isBot: true})
	})
}

// Join seats a player with the given chips behind
// Joining twice returns the existing seat without error.
func (r *Room) Join(playerID int64, username string, chips int) error {
	return r.do(func() error {
		for _, seat := range r.seats {
			if !seat.isBot && seat.playerID == playerID {
				return nil
			}
		}

		return r.seatLocked(&seatBinding{playerID: playerID, username: username, chips: chips})
	})
}

func (r *Room) seatLocked(binding *seatBinding) error {
	if len(r.seats) >= maxSeats {
		return ErrRoomFull
	}

	if r.game != nil && !r.game.Finished() {
		return ErrHandInProgress
	}

	r.seats = append(r.seats, binding)
	r.log.WithField("seat", binding.username).Debug("seat taken")
	return nil
}

// Deal starts a new hand with the current seats and stacks
func (r *Room) Deal() error {
	return r.do(func() error {
		if r.game != nil && !r.game.Finished() {
			return ErrHandInProgress
		}

		configs := make([]holdem.SeatConfig, len(r.seats))
		for i, seat := range r.seats {
			configs[i] = holdem.SeatConfig{
				Name:  seat.username,
				Stack: seat.chips,
			}
		}

		opts := holdem.DefaultOptions()
		if r.opts.SmallBlind > 0 {
			opts.SmallBlind = r.opts.SmallBlind
		}
		if r.opts.BigBlind > 0 {
			opts.BigBlind = r.opts.BigBlind
		}

		game, err := holdem.NewGame(r.log, configs, opts)
		if err != nil {
			return err
		}

		r.game = game
		r.maybeScheduleBot()
		r.broadcast()
		return nil
	})
}

// Action applies a player action to the hand. This is the only gameplay
// mutation entry point; everything funnels through the run loop.
func (r *Room) Action(playerID int64, act holdem.Action, amount int) error {
	return r.do(func() error {
		if r.game == nil {
			return ErrNoHand
		}

		index := r.seatIndexForPlayer(playerID)
		if index < 0 {
			return ErrNotSeated
		}

		if err := r.game.Action(index, act, amount); err != nil {
			return err
		}

		r.afterAction()
		r.broadcast()
		return nil
	})
}

// State returns the snapshot of the current hand for the player.
// The read goes through the run loop too, so a snapshot never observes a
// half-applied action.
func (r *Room) State(playerID int64) (*holdem.Snapshot, error) {
	var snapshot *holdem.Snapshot
	err := r.do(func() error {
		if r.game == nil {
			return ErrNoHand
		}

		snapshot = r.game.Snapshot(r.seatIndexForPlayer(playerID))
		return nil
	})

	return snapshot, err
}

// must only be called from the run loop
func (r *Room) seatIndexForPlayer(playerID int64) int {
	for index, seat := range r.seats {
		if !seat.isBot && seat.playerID == playerID {
			return index
		}
	}

	return -1
}

// afterAction handles the hand ending or the scripted opponent coming onto
// the clock. Must only be called from the run loop.
func (r *Room) afterAction() {
	if r.game.Finished() {
		r.persistStacks()
		return
	}

	r.maybeScheduleBot()
}

// maybeScheduleBot queues the scripted opponent's decision after a short
// presentation pause. Must only be called from the run loop.
func (r *Room) maybeScheduleBot() {
	if r.game == nil || r.game.Finished() {
		return
	}

	if !r.seats[r.game.TurnIndex()].isBot {
		return
	}

	time.AfterFunc(r.opts.OpponentDelay, func() {
		select {
		case r.exec <- r.botAct:
		case <-r.closeCh:
		}
	})
}

// botAct plays the scripted opponent's turn. Must only be called from the
// run loop.
func (r *Room) botAct() {
	if r.game == nil || r.game.Finished() || !r.game.Phase().IsBettingPhase() {
		return
	}

	index := r.game.TurnIndex()
	if !r.seats[index].isBot {
		return
	}

	seat := r.game.Seat(index)
	cards := seat.HoleCards()
	cards = append(cards, r.game.Community()...)

	score := holdem.Evaluate(cards)
	facingBet := r.game.CurrentBet() > seat.CurrentBet()
	draw := rng.Float64(r.rng)

	act := r.policy.Decide(score, facingBet, seat.Stack(), draw)

	amount := 0
	if act == holdem.ActionRaise {
		amount = r.game.CurrentBet() + r.policy.RaiseBy
		if amount-seat.CurrentBet() > seat.Stack() {
			// cannot cover the raise; flat call instead
			act = holdem.ActionCall
			amount = 0
		}
	}

	if err := r.game.Action(index, act, amount); err != nil {
		// the policy produced an illegal move; a call is always legal on the
		// seat's turn and degrades to a check when nothing is owed
		r.log.WithError(err).WithField("action", act.String()).Warn("bot action rejected")
		if err := r.game.Action(index, holdem.ActionCall, 0); err != nil {
			r.log.WithError(err).Error("bot could not call")
			return
		}
	}

	r.afterAction()
	r.broadcast()
}

// persistStacks copies the engine's final stacks back onto the seat bindings
// and saves every human seat. Must only be called from the run loop.
func (r *Room) persistStacks() {
	stacks := r.game.Stacks()
	for index, seat := range r.seats {
		seat.chips = stacks[index]
		if seat.isBot {
			continue
		}

		if err := r.saver.SaveChips(context.Background(), seat.playerID, seat.chips); err != nil {
			r.log.WithError(err).WithField("player", seat.username).Error("could not persist chips")
		}
	}
}

// AddClient registers a websocket client for state pushes
func (r *Room) AddClient(client *Client) {
	r.lock.Lock()
	client.room = r
	r.clients[client] = true
	r.lock.Unlock()

	r.RequestBroadcast()
}

// RemoveClient removes a websocket client
// Returns true if it was the last one.
func (r *Room) RemoveClient(client *Client) (lastClient bool) {
	r.lock.Lock()
	delete(r.clients, client)
	nClients := len(r.clients)
	r.lock.Unlock()

	return nClients == 0
}

// Clients returns the connected (at the time) clients
func (r *Room) Clients() []*Client {
	r.lock.RLock()
	defer r.lock.RUnlock()

	clients := make([]*Client, 0, len(r.clients))
	for client := range r.clients {
		clients = append(clients, client)
	}

	return clients
}

// RequestBroadcast queues a state push to every connected client
func (r *Room) RequestBroadcast() {
	select {
	case r.exec <- r.broadcast:
	case <-r.closeCh:
	}
}

// broadcast pushes each connected client its view of the hand.
// Must only be called from the run loop.
func (r *Room) broadcast() {
	if r.game == nil {
		return
	}

	for _, client := range r.Clients() {
		client.Send(r.game.Snapshot(r.seatIndexForPlayer(client.playerID)))
	}
}
