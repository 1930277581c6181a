package holdem

// Policy decides an action for a scripted seat.
// Implementations are stateless: they see a snapshot of the seat's hand
// strength plus a uniform random draw in [0, 1) supplied by the caller, so
// a seeded caller reproduces the exact same line every time.
type Policy interface {
	Decide(score Score, facingBet bool, stack int, draw float64) Action
}

// BasicPolicy is the house opponent. It is intentionally simple and
// exploitable: call anything decent or a random 70%, raise made hands half
// the time, never bluff-raise. Do not tune the thresholds; returning players
// have learned to beat exactly this opponent.
type BasicPolicy struct {
	// RaiseBy is the fixed raise increment over the table bet
	RaiseBy int
}

// NewBasicPolicy returns the scripted opponent with its standard increment
func NewBasicPolicy() *BasicPolicy {
	return &BasicPolicy{RaiseBy: 20}
}

// Decide picks the seat's action
func (p *BasicPolicy) Decide(score Score, facingBet bool, stack int, draw float64) Action {
	if facingBet {
		if score.Category >= OnePair || draw > 0.3 {
			return ActionCall
		}

		return ActionFold
	}

	if score.Category >= TwoPair && draw > 0.5 {
		return ActionRaise
	}

	return ActionCheck
}
