package holdem

import (
	"sort"

	"github.com/cZR2911/jilaoda-poker/pkg/deck"
)

// Evaluate scores a set of 2-7 cards.
//
// Known deviation from canonical hold'em scoring: the score is computed
// structurally over every card supplied, not over the best five-card subset.
// With seven cards (two hole plus five community) a canonical evaluator would
// take the max over all C(7,5) subsets; this one detects pairs, flushes and
// straights across the whole set at once. Callers rely on the exact historical
// behavior, so keep it.
//
// Evaluate is pure and invariant to input order. An empty input yields the
// NoHand sentinel, which compares below every real hand.
func Evaluate(cards []*deck.Card) Score {
	if len(cards) == 0 {
		return NoHand
	}

	// sort a copy descending by rank; the caller's slice is never touched
	sorted := make(deck.Hand, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rank > sorted[j].Rank
	})

	groups := rankGroups(sorted)
	flushSuit, flushHigh := findFlush(sorted)
	straightHigh := findStraight(sorted, "")

	straightFlushHigh := 0
	if flushSuit != "" {
		straightFlushHigh = findStraight(sorted, flushSuit)
	}

	switch {
	case straightFlushHigh > 0:
		return newScore(StraightFlush, straightFlushHigh)
	case len(groups) > 0 && groups[0].count == 4:
		quad := groups[0].rank
		return newScore(FourOfAKind, quad*100+kicker(sorted, quad))
	case fullHouse(groups):
		return newScore(FullHouse, groups[0].rank*100+groups[1].rank)
	case flushHigh > 0:
		return newScore(Flush, flushHigh)
	case straightHigh > 0:
		return newScore(Straight, straightHigh)
	case len(groups) > 0 && groups[0].count == 3:
		trips := groups[0].rank
		return newScore(ThreeOfAKind, trips*100+kicker(sorted, trips))
	case len(groups) >= 2 && groups[0].count == 2 && groups[1].count == 2:
		high, low := groups[0].rank, groups[1].rank
		return newScore(TwoPair, high*10000+low*100+kicker(sorted, high, low))
	case len(groups) > 0 && groups[0].count == 2:
		pair := groups[0].rank
		return newScore(OnePair, pair*100+kicker(sorted, pair))
	}

	second := 0
	if len(sorted) > 1 {
		second = sorted[1].Rank
	}

	return newScore(HighCard, sorted[0].Rank*100+second)
}

func newScore(category Category, tiebreak int) Score {
	return Score{
		Category: category,
		Tiebreak: tiebreak,
		Label:    category.String(),
	}
}

type rankGroup struct {
	rank  int
	count int
}

// rankGroups counts occurrences per rank and sorts the groups by
// (count desc, rank desc)
func rankGroups(sorted deck.Hand) []rankGroup {
	counts := make(map[int]int)
	for _, card := range sorted {
		counts[card.Rank]++
	}

	groups := make([]rankGroup, 0, len(counts))
	for rank, count := range counts {
		if count > 1 {
			groups = append(groups, rankGroup{rank: rank, count: count})
		}
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}

		return groups[i].rank > groups[j].rank
	})

	return groups
}

// fullHouse needs a set of trips plus at least a pair of some other rank.
// Two sets of trips qualify; the lower set supplies the pair.
func fullHouse(groups []rankGroup) bool {
	return len(groups) >= 2 && groups[0].count == 3 && groups[1].count >= 2
}

// findFlush returns the suit holding five or more cards plus the top rank in
// that suit, or an empty suit when there is no flush
func findFlush(sorted deck.Hand) (deck.Suit, int) {
	bySuit := make(map[deck.Suit]int)
	for _, card := range sorted {
		bySuit[card.Suit]++
	}

	for suit, n := range bySuit {
		if n < 5 {
			continue
		}

		// sorted is rank-descending, so the first card of the suit is the top
		for _, card := range sorted {
			if card.Suit == suit {
				return suit, card.Rank
			}
		}
	}

	return "", 0
}

// findStraight scans five-rank windows from the highest down and returns the
// top rank of the first window with no gaps. The Ace counts both high and low
// (a 5-high wheel returns 5). Restricting to a suit detects straight flushes.
func findStraight(sorted deck.Hand, suit deck.Suit) int {
	present := make(map[int]bool)
	for _, card := range sorted {
		if suit != "" && card.Suit != suit {
			continue
		}

		present[card.Rank] = true
		if card.Rank == deck.Ace {
			present[deck.LowAce] = true
		}
	}

	for top := deck.Ace; top >= 5; top-- {
		run := true
		for r := top; r > top-5; r-- {
			if !present[r] {
				run = false
				break
			}
		}

		if run {
			return top
		}
	}

	return 0
}

// kicker returns the highest rank not consumed by the primary group(s)
func kicker(sorted deck.Hand, used ...int) int {
	for _, card := range sorted {
		consumed := false
		for _, u := range used {
			if card.Rank == u {
				consumed = true
				break
			}
		}

		if !consumed {
			return card.Rank
		}
	}

	return 0
}
