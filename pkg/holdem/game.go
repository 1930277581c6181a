package holdem

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cZR2911/jilaoda-poker/pkg/deck"
)

// Options configures how a hand is played
type Options struct {
	SmallBlind int
	BigBlind   int

	// Seed pins the shuffle for deterministic tests. Zero means random.
	Seed int64
}

// DefaultOptions returns the default options for a hand
func DefaultOptions() Options {
	return Options{
		SmallBlind: 10,
		BigBlind:   20,
	}
}

// Game is the betting state machine for a single hand of Texas Hold'em
// One instance drives exactly one hand; the owner creates a fresh Game for
// the next hand with the stacks this one returned.
//
// Pot math is single-pot. With more than two seats a short all-in call can
// win more than the seat covered; splitting side pots correctly is out of
// scope here.
type Game struct {
	log  logrus.FieldLogger
	opts Options

	deck      *deck.Deck
	seats     []*Seat
	phase     Phase
	community deck.Hand

	pot        int
	currentBet int
	turnIndex  int

	winners  []int
	scores   []Score
	finished bool
}

// NewGame deals a new hand: fresh shuffled deck, two hole cards per seat,
// blinds posted from the first two seats, and the first seat on the clock.
func NewGame(logger logrus.FieldLogger, seats []SeatConfig, opts Options) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if len(seats) < 2 {
		return nil, errors.New("there must be at least two seats")
	}

	if len(seats) > 9 {
		return nil, errors.New("there can be at most nine seats")
	}

	d := deck.New()
	if opts.Seed > 0 {
		d.SetSeed(opts.Seed)
	}
	d.Reset()

	g := &Game{
		log:       logger,
		opts:      opts,
		deck:      d,
		seats:     make([]*Seat, 0, len(seats)),
		phase:     PhasePreFlop,
		community: make(deck.Hand, 0, 5),
		scores:    make([]Score, len(seats)),
	}

	// nobody has a score until the showdown
	for i := range g.scores {
		g.scores[i] = NoHand
	}

	for _, cfg := range seats {
		if cfg.Stack <= 0 {
			return nil, fmt.Errorf("seat %q has no chips", cfg.Name)
		}

		g.seats = append(g.seats, newSeat(cfg))
	}

	for i := 0; i < 2; i++ {
		for _, seat := range g.seats {
			seat.cards.AddCard(g.deck.MustDraw())
		}
	}

	// small blind, big blind; a short stack is simply all-in on its blind
	g.pot += g.seats[0].payTo(opts.SmallBlind)
	g.pot += g.seats[1].payTo(opts.BigBlind)
	g.currentBet = opts.BigBlind
	g.turnIndex = 0

	g.log.WithFields(logrus.Fields{
		"seats": len(g.seats),
		"pot":   g.pot,
	}).Debug("hand dealt")

	return g, nil
}

func validateOptions(opts Options) error {
	if opts.SmallBlind <= 0 || opts.BigBlind <= 0 {
		return errors.New("blinds must be positive")
	}

	if opts.SmallBlind >= opts.BigBlind {
		return errors.New("small blind must be less than the big blind")
	}

	return nil
}

// Action applies one seat action. It is the sole mutation entry point.
// Illegal actions return an error and leave all state untouched.
func (g *Game) Action(seatIndex int, act Action, amount int) error {
	if g.finished || !g.phase.IsBettingPhase() {
		return ErrNoBettingRound
	}

	if seatIndex < 0 || seatIndex >= len(g.seats) || seatIndex != g.turnIndex {
		return ErrNotYourTurn
	}

	seat := g.seats[seatIndex]

	switch act {
	case ActionFold:
		seat.folded = true
		seat.acted = true

		g.logAction(seat, act, 0)
		if g.activeSeatCount() == 1 {
			g.settleFold()
			return nil
		}

	case ActionCheck:
		if seat.bet != g.currentBet {
			return ErrCheckFacingBet
		}

		seat.acted = true
		g.logAction(seat, act, 0)

	case ActionCall:
		// paying less than the full difference is an implicit all-in
		moved := seat.payTo(g.currentBet)
		seat.acted = true
		g.pot += moved
		g.logAction(seat, act, moved)

	case ActionRaise:
		if amount < g.currentBet+g.opts.BigBlind {
			return ErrRaiseTooSmall
		}

		if amount-seat.bet > seat.stack {
			return ErrInsufficientStack
		}

		g.pot += seat.payTo(amount)
		g.currentBet = amount
		seat.acted = true
		g.logAction(seat, act, amount)

	default:
		return fmt.Errorf("unknown action %d", act)
	}

	g.advanceTurn()
	return nil
}

func (g *Game) logAction(seat *Seat, act Action, amount int) {
	g.log.WithFields(logrus.Fields{
		"seat":   seat.Name,
		"action": act.String(),
		"amount": amount,
		"pot":    g.pot,
	}).Debug("action")
}

// advanceTurn moves the clock to the next seat able to act, or closes the
// betting round
func (g *Game) advanceTurn() {
	if g.roundClosed() {
		g.advancePhase()
		return
	}

	n := len(g.seats)
	for i := 1; i <= n; i++ {
		index := (g.turnIndex + i) % n
		if g.seats[index].canAct() {
			g.turnIndex = index
			return
		}
	}

	// nobody left who can act; run out the board
	g.advancePhase()
}

// activeSeatCount counts the seats that have not folded
func (g *Game) activeSeatCount() int {
	count := 0
	for _, seat := range g.seats {
		if !seat.folded {
			count++
		}
	}

	return count
}

// roundClosed reports whether the betting round is settled: every non-folded
// seat is either all-in or has acted this round and matched the table bet.
// The acted requirement stops a round from closing before everyone has
// spoken, and means a single round of matched checks ends it.
func (g *Game) roundClosed() bool {
	for _, seat := range g.seats {
		if seat.folded || seat.allIn {
			continue
		}

		if !seat.acted || seat.bet != g.currentBet {
			return false
		}
	}

	return true
}

// advancePhase opens the next street: bets cleared, community dealt, turn
// back to the first seat. Streets where nobody can act (everyone all-in)
// are run out automatically. Closing the river triggers the showdown.
func (g *Game) advancePhase() {
	for {
		g.phase++
		if g.phase == PhaseShowdown {
			g.settleShowdown()
			return
		}

		g.currentBet = 0
		for _, seat := range g.seats {
			seat.newRound()
		}

		for i := 0; i < g.phase.communityDeal(); i++ {
			g.community.AddCard(g.deck.MustDraw())
		}

		for index, seat := range g.seats {
			if seat.canAct() {
				g.turnIndex = index
				return
			}
		}
	}
}

// settleFold awards the whole pot to the last seat standing without any
// evaluation; the community stays as it was
func (g *Game) settleFold() {
	for index, seat := range g.seats {
		if !seat.folded {
			seat.stack += g.pot
			g.winners = []int{index}
			break
		}
	}

	g.pot = 0
	g.phase = PhaseHandOver
	g.finished = true

	g.log.WithField("winner", g.seats[g.winners[0]].Name).Debug("hand ended by fold")
}

// settleShowdown scores every remaining seat over its hole cards plus the
// community and pays the pot to the best score. An exact tie splits the pot
// by floor division; the odd chip goes to the lowest seat index.
func (g *Game) settleShowdown() {
	best := NoHand
	winners := make([]int, 0, 1)

	for index, seat := range g.seats {
		if seat.folded {
			g.scores[index] = NoHand
			continue
		}

		all := make(deck.Hand, 0, len(seat.cards)+len(g.community))
		all = append(all, seat.cards...)
		all = append(all, g.community...)

		score := Evaluate(all)
		g.scores[index] = score

		switch cmp := score.Compare(best); {
		case cmp > 0:
			best = score
			winners = winners[:0]
			winners = append(winners, index)
		case cmp == 0:
			winners = append(winners, index)
		}
	}

	share := g.pot / len(winners)
	remainder := g.pot % len(winners)
	for i, index := range winners {
		won := share
		if i == 0 {
			won += remainder
		}

		g.seats[index].stack += won
	}

	g.winners = winners
	g.pot = 0
	g.finished = true

	g.log.WithFields(logrus.Fields{
		"winners": len(winners),
		"hand":    best.Label,
	}).Debug("showdown settled")
}

// Phase returns the current phase
func (g *Game) Phase() Phase {
	return g.phase
}

// Pot returns the chips in the pot
func (g *Game) Pot() int {
	return g.pot
}

// CurrentBet returns the highest commitment this betting round
func (g *Game) CurrentBet() int {
	return g.currentBet
}

// TurnIndex returns the seat authorized to act
func (g *Game) TurnIndex() int {
	return g.turnIndex
}

// Community returns a copy of the community cards
func (g *Game) Community() deck.Hand {
	return g.community.Clone()
}

// Seat returns the seat at the given index
func (g *Game) Seat(index int) *Seat {
	return g.seats[index]
}

// NumSeats returns how many seats were dealt in
func (g *Game) NumSeats() int {
	return len(g.seats)
}

// Finished returns true once the hand reached a terminal state
func (g *Game) Finished() bool {
	return g.finished
}

// Winners returns the winning seat indexes once the hand is finished
func (g *Game) Winners() []int {
	return g.winners
}

// SeatScore returns the showdown score for a seat
// Folded seats and hands ended by a fold score NoHand.
func (g *Game) SeatScore(index int) Score {
	return g.scores[index]
}

// Stacks returns the chips behind every seat, for the persistence
// collaborator to store at hand end
func (g *Game) Stacks() []int {
	stacks := make([]int, len(g.seats))
	for i, seat := range g.seats {
		stacks[i] = seat.stack
	}

	return stacks
}
