package holdem

import "encoding/json"

// Category is the primary strength class of a poker hand
type Category int

// categories from weakest to strongest
const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

func (c Category) String() string {
	switch c {
	case HighCard:
		return "high card"
	case OnePair:
		return "one pair"
	case TwoPair:
		return "two pair"
	case ThreeOfAKind:
		return "three of a kind"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case StraightFlush:
		return "straight flush"
	}

	return "nothing"
}

// MarshalJSON encodes JSON
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(c),
		Name: c.String(),
	})
}

// Score is a comparable hand strength
// Compare the Category first, then Tiebreak; equal on both means a split.
type Score struct {
	Category Category `json:"category"`
	Tiebreak int      `json:"tiebreak"`
	Label    string   `json:"label"`
}

// NoHand is the sentinel score for a degenerate (empty) input.
// It compares below every real hand.
var NoHand = Score{Category: -1, Tiebreak: 0, Label: "nothing"}

// Compare returns a positive number if s beats o, a negative number if o
// beats s, and zero on an exact tie
func (s Score) Compare(o Score) int {
	if s.Category != o.Category {
		return int(s.Category - o.Category)
	}

	return s.Tiebreak - o.Tiebreak
}

// Beats returns true if s strictly beats o
func (s Score) Beats(o Score) bool {
	return s.Compare(o) > 0
}
