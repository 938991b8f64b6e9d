package holdem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRangeExplicitPair(t *testing.T) {
	r, err := ParseRange("AsKh")
	require.NoError(t, err)
	require.Equal(t, 1, r.Len())
	p, _ := ParseCardPair("AsKh")
	require.Equal(t, 1.0, r.Weight(p))
}

func TestParseRangePocket(t *testing.T) {
	r, err := ParseRange("AA")
	require.NoError(t, err)
	require.Equal(t, 6, r.Len())
}

func TestParseRangeSuitedAndOffsuit(t *testing.T) {
	r, err := ParseRange("AKs")
	require.NoError(t, err)
	require.Equal(t, 4, r.Len())

	r, err = ParseRange("AKo")
	require.NoError(t, err)
	require.Equal(t, 12, r.Len())

	r, err = ParseRange("AK")
	require.NoError(t, err)
	require.Equal(t, 16, r.Len())
}

func TestParseRangePlusPocket(t *testing.T) {
	r, err := ParseRange("TT+")
	require.NoError(t, err)
	// TT, JJ, QQ, KK, AA -> 5 ranks * 6 combos
	require.Equal(t, 30, r.Len())
}

func TestParseRangePlusSuited(t *testing.T) {
	r, err := ParseRange("A5s+")
	require.NoError(t, err)
	// A5s..AKs -> 9 ranks * 4 combos
	require.Equal(t, 36, r.Len())
	for _, rank := range []Rank{Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King} {
		p := NewCardPair(Card{Rank: Ace, Suit: Spade}, Card{Rank: rank, Suit: Spade})
		require.Greater(t, r.Weight(p), 0.0, "expected %s in range", p)
	}
}

func TestParseRangePlusKicker(t *testing.T) {
	r, err := ParseRange("K5s+")
	require.NoError(t, err)
	// K5s..KQs -> 8 ranks * 4 combos
	require.Equal(t, 32, r.Len())
	for _, rank := range []Rank{Five, Six, Seven, Eight, Nine, Ten, Jack, Queen} {
		p := NewCardPair(Card{Rank: King, Suit: Spade}, Card{Rank: rank, Suit: Spade})
		require.Greater(t, r.Weight(p), 0.0, "expected K%ss in range", rank)
	}
	aceKing := NewCardPair(Card{Rank: Ace, Suit: Spade}, Card{Rank: King, Suit: Heart})
	require.Equal(t, 0.0, r.Weight(aceKing))
}

func TestParseRangeDescending(t *testing.T) {
	r, err := ParseRange("KQs-KTs")
	require.NoError(t, err)
	// KQs, KJs, KTs -> 3 ranks * 4 combos
	require.Equal(t, 12, r.Len())
	for _, rank := range []Rank{Queen, Jack, Ten} {
		p := NewCardPair(Card{Rank: King, Suit: Spade}, Card{Rank: rank, Suit: Spade})
		require.Greater(t, r.Weight(p), 0.0)
	}
	kNine := NewCardPair(Card{Rank: King, Suit: Spade}, Card{Rank: Nine, Suit: Spade})
	require.Equal(t, 0.0, r.Weight(kNine))
}

func TestParseRangeWeightSuffix(t *testing.T) {
	r, err := ParseRange("AsKh:0.5")
	require.NoError(t, err)
	p, _ := ParseCardPair("AsKh")
	require.Equal(t, 0.5, r.Weight(p))
}

func TestParseRangeLastWriteWins(t *testing.T) {
	r, err := ParseRange("AA:0.3,AA:0.9")
	require.NoError(t, err)
	require.Equal(t, 6, r.Len())
	for _, wp := range r.Pairs() {
		require.Equal(t, 0.9, wp.Weight)
	}
}

func TestParseRangeMultipleEntries(t *testing.T) {
	r, err := ParseRange("AA,KK,AKs")
	require.NoError(t, err)
	require.Equal(t, 6+6+4, r.Len())
}

func TestParseRangeErrors(t *testing.T) {
	cases := []string{
		"",
		"AA,",
		"AA KK",
		"AA:0",
		"AA:1.5",
		"AA:1:2",
		"ZZ",
		"AAs",
		"KA",
		"AsAs",
		"AKq",
	}
	for _, c := range cases {
		_, err := ParseRange(c)
		require.Error(t, err, "expected error for %q", c)
	}
}

func TestParseRangeErrorTypes(t *testing.T) {
	_, err := ParseRange("A8s+:1.5")
	var badWeight *BadWeightError
	require.ErrorAs(t, err, &badWeight)
	require.Equal(t, 1.5, badWeight.Weight)

	_, err = ParseRange("AsKj")
	var badCard *BadCardStringError
	require.ErrorAs(t, err, &badCard)
	require.Equal(t, "Kj", badCard.Input)

	_, err = ParseRange("TT+,")
	var badEntry *BadRangeEntryError
	require.ErrorAs(t, err, &badEntry)
}

func TestHandRangeRenderRoundTrips(t *testing.T) {
	r, err := ParseRange("AKs")
	require.NoError(t, err)
	rendered := r.Render()

	r2, err := ParseRange(rendered)
	require.NoError(t, err)
	require.Equal(t, r.Len(), r2.Len())
	for _, wp := range r.Pairs() {
		require.Equal(t, wp.Weight, r2.Weight(wp.Pair))
	}
}
