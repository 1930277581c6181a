package util

import (
	"fmt"
	"math/rand"
	"time"
)

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

var adjectives = []string{
	"Lucky", "Golden", "Quiet", "Loud", "Sneaky", "Patient", "Reckless", "Steady", "Wild", "Cold",
	"Smiling", "Grumpy", "Midnight", "Neon", "Rusty", "Velvet", "Iron", "Jade", "Crimson", "Silver",
}

var nouns = []string{
	"River", "Flop", "Kicker", "Bluff", "Blind", "Button", "Shark", "Fish", "Dragon", "Tiger",
	"Ace", "Deuce", "Wheel", "Boat", "Flush", "Gutshot", "Stack", "Chip", "Dealer", "Maverick",
}

// RandomRoomName returns a generated room name for rooms created without one
func RandomRoomName() string {
	return fmt.Sprintf("%s %s", adjectives[random.Intn(len(adjectives))], nouns[random.Intn(len(nouns))])
}
