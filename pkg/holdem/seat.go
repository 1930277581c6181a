package holdem

import (
	"github.com/cZR2911/jilaoda-poker/pkg/deck"
)

// Seat is one player's position in a hand
// The Game is the sole mutator of a seat for the duration of the hand.
type Seat struct {
	Name string

	cards  deck.Hand
	stack  int
	bet    int
	folded bool
	allIn  bool

	// acted tracks whether the seat has acted in the current betting round
	acted bool
}

// SeatConfig is the starting state for a seat, supplied by the persistence
// collaborator at hand start
type SeatConfig struct {
	Name  string
	Stack int
}

func newSeat(cfg SeatConfig) *Seat {
	return &Seat{
		Name:  cfg.Name,
		cards: make(deck.Hand, 0, 2),
		stack: cfg.Stack,
	}
}

// HoleCards returns a copy of the seat's private cards
func (s *Seat) HoleCards() deck.Hand {
	return s.cards.Clone()
}

// Stack returns the chips the seat has behind
func (s *Seat) Stack() int {
	return s.stack
}

// CurrentBet returns the chips the seat has committed this betting round
func (s *Seat) CurrentBet() int {
	return s.bet
}

// Folded returns true if the seat has folded
func (s *Seat) Folded() bool {
	return s.folded
}

// AllIn returns true if the seat has committed its entire stack
func (s *Seat) AllIn() bool {
	return s.allIn
}

// payTo raises the seat's committed bet toward target, capped at the stack.
// Exhausting the stack marks the seat all-in. Returns the chips moved.
func (s *Seat) payTo(target int) int {
	diff := target - s.bet
	if diff > s.stack {
		diff = s.stack
	}

	s.stack -= diff
	s.bet += diff

	if s.stack == 0 {
		s.allIn = true
	}

	return diff
}

// newRound resets the per-round bookkeeping when a street closes
func (s *Seat) newRound() {
	s.bet = 0
	s.acted = false
}

// canAct returns true if the seat may still be asked to act this hand
func (s *Seat) canAct() bool {
	return !s.folded && !s.allIn
}
