package holdem

import "errors"

// illegal-action errors
// Each one is rejected synchronously at the Action() boundary with no state
// mutation; the caller reports it to the acting party and the hand continues.
var (
	// ErrNotYourTurn is returned when a seat acts out of turn
	ErrNotYourTurn = errors.New("it is not your turn")

	// ErrNoBettingRound is returned when an action arrives outside a betting round
	ErrNoBettingRound = errors.New("not in a betting round")

	// ErrCheckFacingBet is returned when a seat checks while owing chips
	ErrCheckFacingBet = errors.New("cannot check while facing a bet")

	// ErrRaiseTooSmall is returned when a raise is below the minimum increment
	ErrRaiseTooSmall = errors.New("raise is below the minimum increment")

	// ErrInsufficientStack is returned when a seat cannot cover the requested raise
	ErrInsufficientStack = errors.New("insufficient chips for that raise")
)
