package room

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cZR2911/jilaoda-poker/pkg/holdem"
)

type fakeSaver struct {
	lock  sync.Mutex
	chips map[int64]int
}

func newFakeSaver() *fakeSaver {
	return &fakeSaver{chips: make(map[int64]int)}
}

func (f *fakeSaver) SaveChips(_ context.Context, playerID int64, chips int) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.chips[playerID] = chips
	return nil
}

func (f *fakeSaver) saved(playerID int64) (int, bool) {
	f.lock.Lock()
	defer f.lock.Unlock()

	chips, ok := f.chips[playerID]
	return chips, ok
}

// fixedRand pins the opponent's decision draw
type fixedRand struct {
	n int
}

func (f fixedRand) Intn(int) int {
	return f.n
}

func newTestRoom(saver BalanceSaver) *Room {
	r := NewRoom("test-uuid", "test room", Options{SmallBlind: 10, BigBlind: 20}, saver)
	r.rng = fixedRand{}
	r.StartShift()
	return r
}

func TestRoom_JoinAndDeal(t *testing.T) {
	r := newTestRoom(newFakeSaver())
	defer r.EndShift()

	assert.NoError(t, r.Join(1, "alice", 1000))

	// joining twice does not take a second seat
	assert.NoError(t, r.Join(1, "alice", 1000))
	assert.EqualError(t, r.Deal(), "there must be at least two seats")

	assert.NoError(t, r.AddBot(1000))
	assert.NoError(t, r.Deal())

	snapshot, err := r.State(1)
	assert.NoError(t, err)
	assert.Equal(t, holdem.PhasePreFlop, snapshot.Phase)
	assert.Equal(t, 30, snapshot.Pot)
	assert.Equal(t, 2, len(snapshot.Players))
	assert.Equal(t, "alice", snapshot.Players[0].Name)
	assert.Equal(t, BotName, snapshot.Players[1].Name)

	// the viewer sees its own cards and not the opponent's
	assert.Equal(t, 2, len(snapshot.Players[0].HoleCards))
	assert.Equal(t, 0, len(snapshot.Players[1].HoleCards))
}

func TestRoom_StateWithoutHand(t *testing.T) {
	r := newTestRoom(newFakeSaver())
	defer r.EndShift()

	_, err := r.State(1)
	assert.Equal(t, ErrNoHand, err)
}

func TestRoom_DealMidHand(t *testing.T) {
	r := newTestRoom(newFakeSaver())
	defer r.EndShift()

	assert.NoError(t, r.Join(1, "alice", 1000))
	assert.NoError(t, r.Join(2, "bob", 1000))
	assert.NoError(t, r.Deal())

	assert.Equal(t, ErrHandInProgress, r.Deal())
	assert.Equal(t, ErrHandInProgress, r.Join(3, "carol", 1000))
}

func TestRoom_ActionErrors(t *testing.T) {
	r := newTestRoom(newFakeSaver())
	defer r.EndShift()

	assert.NoError(t, r.Join(1, "alice", 1000))
	assert.NoError(t, r.Join(2, "bob", 1000))

	assert.Equal(t, ErrNoHand, r.Action(1, holdem.ActionCall, 0))

	assert.NoError(t, r.Deal())

	assert.Equal(t, ErrNotSeated, r.Action(99, holdem.ActionCall, 0))
	assert.Equal(t, holdem.ErrNotYourTurn, r.Action(2, holdem.ActionCall, 0))
	assert.Equal(t, holdem.ErrCheckFacingBet, r.Action(1, holdem.ActionCheck, 0))
}

func TestRoom_concurrentActions(t *testing.T) {
	r := newTestRoom(newFakeSaver())
	defer r.EndShift()

	assert.NoError(t, r.Join(1, "alice", 1000))
	assert.NoError(t, r.Join(2, "bob", 1000))
	assert.NoError(t, r.Deal())

	// two copies of the same action race; the run loop lets exactly one
	// through and the other is told it is no longer its turn
	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- r.Action(1, holdem.ActionCall, 0)
		}()
	}
	wg.Wait()
	close(errs)

	var nOK, nRejected int
	for err := range errs {
		if err == nil {
			nOK++
		} else if err == holdem.ErrNotYourTurn {
			nRejected++
		}
	}

	assert.Equal(t, 1, nOK)
	assert.Equal(t, 1, nRejected)
}

func TestRoom_foldPersistsStacks(t *testing.T) {
	saver := newFakeSaver()
	r := newTestRoom(saver)
	defer r.EndShift()

	assert.NoError(t, r.Join(1, "alice", 1000))
	assert.NoError(t, r.AddBot(1000))
	assert.NoError(t, r.Deal())

	assert.NoError(t, r.Action(1, holdem.ActionFold, 0))

	// stacks are persisted before Action returns
	chips, ok := saver.saved(1)
	assert.True(t, ok)
	assert.Equal(t, 990, chips)

	// the next deal picks up the adjusted stacks
	assert.NoError(t, r.Deal())
	snapshot, err := r.State(1)
	assert.NoError(t, err)
	assert.Equal(t, 980, snapshot.Players[0].Chips)
	assert.Equal(t, 990, snapshot.Players[0].Chips+snapshot.Players[0].CurrentBet)
}

func TestRoom_botActsWhenOnTheClock(t *testing.T) {
	r := newTestRoom(newFakeSaver())
	defer r.EndShift()

	assert.NoError(t, r.Join(1, "alice", 1000))
	assert.NoError(t, r.AddBot(1000))
	assert.NoError(t, r.Deal())

	// the human calls; the opponent holds the big blind and a zero draw, so
	// it checks and the flop opens
	assert.NoError(t, r.Action(1, holdem.ActionCall, 0))

	assert.Eventually(t, func() bool {
		snapshot, err := r.State(1)
		if err != nil {
			return false
		}

		return snapshot.Phase == holdem.PhaseFlop
	}, time.Second*2, time.Millisecond*10)

	snapshot, err := r.State(1)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(snapshot.CommunityCards))
	assert.Equal(t, 40, snapshot.Pot)
}

func TestRoom_botFoldsJunkFacingRaise(t *testing.T) {
	saver := newFakeSaver()
	r := newTestRoom(saver)
	defer r.EndShift()

	assert.NoError(t, r.Join(1, "alice", 1000))
	assert.NoError(t, r.AddBot(1000))
	assert.NoError(t, r.Deal())

	assert.NoError(t, r.Action(1, holdem.ActionRaise, 40))

	// with a zero draw the opponent continues only when it connected with a
	// pair or better; either way the hand keeps moving without the human
	assert.Eventually(t, func() bool {
		snapshot, err := r.State(1)
		if err != nil {
			return false
		}

		return snapshot.Phase != holdem.PhasePreFlop || snapshot.TurnIndex == 0
	}, time.Second*2, time.Millisecond*10)
}

func TestRoom_closed(t *testing.T) {
	r := newTestRoom(newFakeSaver())
	r.EndShift()

	assert.Equal(t, ErrRoomClosed, r.Join(1, "alice", 1000))
	assert.Equal(t, ErrRoomClosed, r.Deal())
	assert.Equal(t, ErrRoomClosed, r.Action(1, holdem.ActionFold, 0))

	_, err := r.State(1)
	assert.Equal(t, ErrRoomClosed, err)
}

func TestRoom_roomFull(t *testing.T) {
	r := newTestRoom(newFakeSaver())
	defer r.EndShift()

	for i := int64(1); i <= 9; i++ {
		assert.NoError(t, r.Join(i, "player", 1000))
	}

	assert.Equal(t, ErrRoomFull, r.Join(10, "late", 1000))
}

func TestRoom_clients(t *testing.T) {
	r := newTestRoom(newFakeSaver())
	defer r.EndShift()

	client := NewClient(nil, 1, "alice")
	r.AddClient(client)
	assert.Equal(t, 1, len(r.Clients()))
	assert.Equal(t, r, client.room)

	assert.True(t, r.RemoveClient(client))
	assert.Equal(t, 0, len(r.Clients()))
}
