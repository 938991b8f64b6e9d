package holdem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPocketExpandsTo6Combos(t *testing.T) {
	p := NewPocket(Ace)
	require.Equal(t, "AA", p.String())
	combos := p.Expand()
	require.Len(t, combos, 6)
	require.Equal(t, Pocket.Combos(), len(combos))

	seen := make(map[CardPair]bool)
	for _, c := range combos {
		require.False(t, seen[c])
		seen[c] = true
		require.Equal(t, Ace, c.Lo.Rank)
		require.Equal(t, Ace, c.Hi.Rank)
	}
}

func TestNewSuitedExpandsTo4Combos(t *testing.T) {
	rp, err := NewSuited(Ace, King)
	require.NoError(t, err)
	require.Equal(t, "AKs", rp.String())

	combos := rp.Expand()
	require.Len(t, combos, 4)
	require.Equal(t, Suited.Combos(), len(combos))
	for _, c := range combos {
		require.Equal(t, c.Lo.Suit, c.Hi.Suit)
	}
}

func TestNewOffsuitExpandsTo12Combos(t *testing.T) {
	rp, err := NewOffsuit(Ace, King)
	require.NoError(t, err)
	require.Equal(t, "AKo", rp.String())

	combos := rp.Expand()
	require.Len(t, combos, 12)
	require.Equal(t, Offsuit.Combos(), len(combos))
	for _, c := range combos {
		require.NotEqual(t, c.Lo.Suit, c.Hi.Suit)
	}
}

func TestNewSuitedRejectsBadOrdering(t *testing.T) {
	_, err := NewSuited(King, Ace)
	require.Error(t, err)

	_, err = NewSuited(Ace, Ace)
	require.Error(t, err)
}

func TestNewOffsuitRejectsBadOrdering(t *testing.T) {
	_, err := NewOffsuit(King, Ace)
	require.Error(t, err)

	_, err = NewOffsuit(Queen, Queen)
	require.Error(t, err)
}
