package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand(t *testing.T) {
	hand := Hand{}
	hand.AddCard(CardFromString("2c"))
	hand.AddCard(CardFromString("14s"))

	assert.True(t, hand.HasCard(CardFromString("2c")))
	assert.True(t, hand.HasCard(CardFromString("14s")))
	assert.False(t, hand.HasCard(CardFromString("2d")))

	assert.Equal(t, "2♣,A♠", hand.String())

	clone := hand.Clone()
	clone.AddCard(CardFromString("3h"))
	assert.Equal(t, 2, len(hand))
	assert.Equal(t, 3, len(clone))
}
