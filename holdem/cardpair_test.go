package holdem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCardPairCanonicalizesOrder(t *testing.T) {
	as := Card{Rank: Ace, Suit: Spade}
	kh := Card{Rank: King, Suit: Heart}

	p1 := NewCardPair(as, kh)
	p2 := NewCardPair(kh, as)
	require.Equal(t, p1, p2)
	require.Equal(t, as, p1.Lo)
	require.Equal(t, kh, p1.Hi)
}

func TestParseCardPair(t *testing.T) {
	p, err := ParseCardPair("KhAs")
	require.NoError(t, err)
	require.Equal(t, "AsKh", p.String())

	_, err = ParseCardPair("AsAs")
	require.Error(t, err, "a pair can't hold the same card twice")

	_, err = ParseCardPair("AsK")
	require.Error(t, err)

	_, err = ParseCardPair("AsZh")
	require.Error(t, err)
}

func TestCardPairConflicts(t *testing.T) {
	p1, _ := ParseCardPair("AsKh")
	p2, _ := ParseCardPair("AsQd")
	p3, _ := ParseCardPair("Kd2c")

	require.True(t, p1.Conflicts(p2))
	require.False(t, p1.Conflicts(p3))
}

func TestCardPairMask(t *testing.T) {
	p, _ := ParseCardPair("AsKh")
	require.Equal(t, 2, popcount(p.Mask()))
	require.Equal(t, p.Lo.Mask()|p.Hi.Mask(), p.Mask())
}
