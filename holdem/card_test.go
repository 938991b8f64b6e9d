package holdem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	c, err := ParseCard("As")
	require.NoError(t, err)
	require.Equal(t, Card{Rank: Ace, Suit: Spade}, c)
	require.Equal(t, "As", c.String())

	c, err = ParseCard("Td")
	require.NoError(t, err)
	require.Equal(t, Card{Rank: Ten, Suit: Diamond}, c)

	_, err = ParseCard("Zs")
	require.Error(t, err)

	_, err = ParseCard("A")
	require.Error(t, err)

	_, err = ParseCard("Asd")
	require.Error(t, err)
}

func TestRankOrdinalsAreContiguousAndAceStrongest(t *testing.T) {
	require.Equal(t, Rank(0), Ace)
	require.Equal(t, Rank(12), Deuce)
	require.True(t, Ace < King)
	require.True(t, King < Deuce)
}

func TestRankPrevNext(t *testing.T) {
	next, ok := Ace.Next()
	require.False(t, ok)
	require.Equal(t, Rank(0), next)

	prev, ok := Deuce.Prev()
	require.False(t, ok)
	require.Equal(t, Rank(0), prev)

	weaker, ok := King.Prev()
	require.True(t, ok)
	require.Equal(t, Queen, weaker)

	stronger, ok := Queen.Next()
	require.True(t, ok)
	require.Equal(t, King, stronger)
}

func TestCardMaskRoundTrip(t *testing.T) {
	for _, c := range FullDeck() {
		m := c.Mask()
		require.Equal(t, 1, popcount(m))
		require.Equal(t, c, CardFromMask(m))
	}
}

func TestFullDeckHas52DistinctCards(t *testing.T) {
	deck := FullDeck()
	require.Len(t, deck, 52)
	seen := make(map[Card]bool, 52)
	for _, c := range deck {
		require.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
}

func TestSuitMaskAndRankMask(t *testing.T) {
	for s := Spade; s <= Club; s++ {
		require.Equal(t, 13, popcount(SuitMask(s)))
	}
	for r := Ace; r <= Deuce; r++ {
		require.Equal(t, 4, popcount(RankMask(r)))
	}
	ac := Card{Rank: Ace, Suit: Club}
	require.Equal(t, ac.Mask(), SuitMask(Club)&RankMask(Ace))
}

func TestParseBoard(t *testing.T) {
	cards, err := ParseBoard("Td7s8h")
	require.NoError(t, err)
	require.Equal(t, []Card{
		{Rank: Ten, Suit: Diamond},
		{Rank: Seven, Suit: Spade},
		{Rank: Eight, Suit: Heart},
	}, cards)

	_, err = ParseBoard("Td7")
	require.Error(t, err)

	_, err = ParseBoard("TdZs")
	require.Error(t, err)
}

func popcount(m uint64) int {
	n := 0
	for m != 0 {
		m &= m - 1
		n++
	}
	return n
}
