package holdem

import (
	"strings"

	"github.com/cZR2911/jilaoda-poker/pkg/deck"
)

// SnapshotPlayer is one seat as rendered to a client
type SnapshotPlayer struct {
	Name       string    `json:"name"`
	Chips      int       `json:"chips"`
	CurrentBet int       `json:"current_bet"`
	IsFolded   bool      `json:"is_folded"`
	IsAllIn    bool      `json:"is_all_in"`
	HoleCards  deck.Hand `json:"hole_cards,omitempty"`
	Hand       string    `json:"hand,omitempty"`
}

// Snapshot is the idempotent, serializable projection of the hand that
// polling clients fetch. It is safe to marshal from any goroutine because it
// shares no storage with the live game.
type Snapshot struct {
	Phase          Phase            `json:"phase"`
	Pot            int              `json:"pot"`
	CurrentBet     int              `json:"current_bet"`
	CommunityCards deck.Hand        `json:"community_cards"`
	Players        []SnapshotPlayer `json:"players"`
	TurnIndex      int              `json:"turn_index"`
	Winner         string           `json:"winner,omitempty"`
}

// Snapshot projects the hand state for the given viewer seat.
// Hole cards are only included for the viewer's own seat until the hand is
// over, at which point every non-folded seat is revealed. Pass a negative
// viewer for a spectator view.
func (g *Game) Snapshot(viewer int) *Snapshot {
	players := make([]SnapshotPlayer, len(g.seats))
	for index, seat := range g.seats {
		sp := SnapshotPlayer{
			Name:       seat.Name,
			Chips:      seat.stack,
			CurrentBet: seat.bet,
			IsFolded:   seat.folded,
			IsAllIn:    seat.allIn,
		}

		if index == viewer || (g.finished && !seat.folded) {
			sp.HoleCards = seat.HoleCards()

			if score := g.scores[index]; score != NoHand {
				sp.Hand = score.Label
			}
		}

		players[index] = sp
	}

	snapshot := &Snapshot{
		Phase:          g.phase,
		Pot:            g.pot,
		CurrentBet:     g.currentBet,
		CommunityCards: g.community.Clone(),
		Players:        players,
		TurnIndex:      g.turnIndex,
	}

	if g.finished {
		names := make([]string, len(g.winners))
		for i, index := range g.winners {
			names[i] = g.seats[index].Name
		}

		snapshot.Winner = strings.Join(names, ", ")
	}

	return snapshot
}
