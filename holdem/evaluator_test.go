package holdem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func must7(t *testing.T, s string) [7]Card {
	t.Helper()
	cards, err := ParseBoard(s)
	require.NoError(t, err)
	require.Len(t, cards, 7)
	var out [7]Card
	copy(out[:], cards)
	return out
}

func TestEvaluate7RoyalFlush(t *testing.T) {
	hand := Evaluate7(must7(t, "AsKsQsJsTs2h3d"))
	require.Equal(t, uint16(0), hand.Index)
	require.Equal(t, StraightFlush, hand.Category)
}

func TestEvaluate7WheelStraightFlush(t *testing.T) {
	hand := Evaluate7(must7(t, "As2s3s4s5s8h9d"))
	require.Equal(t, uint16(9), hand.Index)
	require.Equal(t, StraightFlush, hand.Category)
}

func TestEvaluate7FullHouse(t *testing.T) {
	hand := Evaluate7(must7(t, "AsAhAdKsKhQsJd"))
	require.Equal(t, uint16(166), hand.Index)
	require.Equal(t, FullHouse, hand.Category)
}

func TestEvaluate7OnePairFingerprint(t *testing.T) {
	// Pair of fours with K, Q, J kickers.
	hand := Evaluate7(must7(t, "4c8hKhQc4s6hJd"))
	require.Equal(t, uint16(5580), hand.Index)
	require.Equal(t, OnePair, hand.Category)
}

func TestEvaluate7FullHouseFingerprint(t *testing.T) {
	// Eights full of queens.
	hand := Evaluate7(must7(t, "8s8dQd2d8h4sQc"))
	require.Equal(t, uint16(240), hand.Index)
	require.Equal(t, FullHouse, hand.Category)
}

func TestEvaluate7OrderIndependent(t *testing.T) {
	a := Evaluate7(must7(t, "4c8hKhQc4s6hJd"))
	b := Evaluate7(must7(t, "Jd6h4sQcKh8h4c"))
	require.Equal(t, a.Index, b.Index)
}

func TestEvaluate7FlushIgnoresMissedStraight(t *testing.T) {
	// 5 spades (A,8,5,9,6) miss 7, so this is a flush, not a straight flush.
	hand := Evaluate7(must7(t, "As7h8s5s9s6s8h"))
	require.Equal(t, uint16(751), hand.Index)
	require.Equal(t, Flush, hand.Category)
}

func TestEvaluate7Straight(t *testing.T) {
	hand := Evaluate7(must7(t, "3s4h5d6c7sKdQc"))
	require.Equal(t, uint16(1606), hand.Index)
	require.Equal(t, Straight, hand.Category)
}

func TestEvaluate7TwoPair(t *testing.T) {
	hand := Evaluate7(must7(t, "AsAhKdKcQs9h2c"))
	require.Equal(t, uint16(2467), hand.Index)
	require.Equal(t, TwoPair, hand.Category)
}

func TestEvaluate7OnePairIgnoresExtraKickers(t *testing.T) {
	a := Evaluate7(must7(t, "AsAhKdQcJs9h2s"))
	b := Evaluate7(must7(t, "AsAhKdQcJs8h3s"))
	require.Equal(t, uint16(3325), a.Index)
	require.Equal(t, a.Index, b.Index, "the two lowest-ranked cards beyond the pair and its top 3 kickers must not affect the index")
	require.Equal(t, OnePair, a.Category)
}

func TestEvaluate7HighCard(t *testing.T) {
	hand := Evaluate7(must7(t, "7s5h4d3c2sKdQc"))
	require.Equal(t, uint16(6781), hand.Index)
	require.Equal(t, HighCard, hand.Category)
}

func TestHandBetterIsLowerIndex(t *testing.T) {
	strong := Hand{Index: 0, Category: StraightFlush}
	weak := Hand{Index: 7461, Category: HighCard}
	require.True(t, strong.Better(weak))
	require.False(t, weak.Better(strong))
}

func TestCategoryOfMatchesBounds(t *testing.T) {
	cases := []struct {
		idx uint16
		cat Category
	}{
		{0, StraightFlush},
		{9, StraightFlush},
		{10, FourOfAKind},
		{165, FourOfAKind},
		{166, FullHouse},
		{321, FullHouse},
		{322, Flush},
		{1598, Flush},
		{1599, Straight},
		{1608, Straight},
		{1609, ThreeOfAKind},
		{2466, ThreeOfAKind},
		{2467, TwoPair},
		{3324, TwoPair},
		{3325, OnePair},
		{6184, OnePair},
		{6185, HighCard},
		{7461, HighCard},
	}
	for _, c := range cases {
		require.Equal(t, c.cat, CategoryOf(c.idx), "index %d", c.idx)
	}
}

func TestRainbowTableSizeMatchesReachableVectorCount(t *testing.T) {
	require.Len(t, rainbowTable, 49205)
}

func TestFlushTableSize(t *testing.T) {
	require.Len(t, flushTable, 8192)
}
