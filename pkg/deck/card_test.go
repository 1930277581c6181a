package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
	assert.Equal(t, 14, HighAce)
	assert.Equal(t, 1, LowAce)
}

func TestCard_String(t *testing.T) {
	card := Card{
		Rank: 2,
		Suit: Hearts,
	}

	assert.Equal(t, "2♥", card.String())

	card = Card{
		Rank: 11,
		Suit: Clubs,
	}

	assert.Equal(t, "J♣", card.String())

	card = Card{
		Rank: 12,
		Suit: Diamonds,
	}

	assert.Equal(t, "Q♦", card.String())

	card = Card{
		Rank: 13,
		Suit: Spades,
	}

	assert.Equal(t, "K♠", card.String())

	card = Card{
		Rank: 14,
		Suit: Spades,
	}

	assert.Equal(t, "A♠", card.String())
}

func TestCard_Color(t *testing.T) {
	assert.Equal(t, Red, CardFromString("2h").Color())
	assert.Equal(t, Red, CardFromString("2d").Color())
	assert.Equal(t, Black, CardFromString("2c").Color())
	assert.Equal(t, Black, CardFromString("2s").Color())
}

func TestCard_Equal(t *testing.T) {
	assert.True(t, CardFromString("5s").Equal(CardFromString("5s")))
	assert.False(t, CardFromString("5s").Equal(CardFromString("5h")))
	assert.False(t, CardFromString("5s").Equal(CardFromString("6s")))
}

func TestCard_AceLowRank(t *testing.T) {
	assert.Equal(t, 1, CardFromString("14s").AceLowRank())
	assert.Equal(t, 13, CardFromString("13s").AceLowRank())
	assert.Equal(t, 2, CardFromString("2s").AceLowRank())
}

func TestCardFromString(t *testing.T) {
	assert.Equal(t, &Card{Rank: 2, Suit: Clubs}, CardFromString("2c"))
	assert.Equal(t, &Card{Rank: 10, Suit: Hearts}, CardFromString("10h"))
	assert.Equal(t, &Card{Rank: 14, Suit: Spades}, CardFromString("14s"))
	assert.Equal(t, &Card{Rank: 13, Suit: Diamonds}, CardFromString("13D"))
	assert.Nil(t, CardFromString(""))

	assert.PanicsWithValue(t, "could not parse card: 15c", func() {
		CardFromString("15c")
	})

	assert.PanicsWithValue(t, "could not parse card: 2x", func() {
		CardFromString("2x")
	})
}

func TestCardsFromString(t *testing.T) {
	cards := CardsFromString("2c,3h,14s")
	assert.Equal(t, 3, len(cards))
	assert.Equal(t, &Card{Rank: 2, Suit: Clubs}, cards[0])
	assert.Equal(t, &Card{Rank: 3, Suit: Hearts}, cards[1])
	assert.Equal(t, &Card{Rank: 14, Suit: Spades}, cards[2])

	assert.Equal(t, []*Card{}, CardsFromString(""))
}

func TestCardsToString(t *testing.T) {
	assert.Equal(t, "2c,3h,14s", CardsToString(CardsFromString("2c,3h,14s")))
	assert.Equal(t, "", CardToString(nil))
	assert.Equal(t, "12d", CardToString(&Card{Rank: 12, Suit: Diamonds}))
}
