package holdem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func countAll(t *testing.T, e *Enumerator) int {
	t.Helper()
	n := 0
	for {
		sd, ok := e.Next()
		if !ok {
			break
		}
		require.Equal(t, 1.0, sd.Probability())
		n++
	}
	return n
}

func rangeOf(t *testing.T, s string) *HandRange {
	t.Helper()
	r, err := ParseRange(s)
	require.NoError(t, err)
	return r
}

func TestEnumeratorRiverGivenYieldsExactlyOneShowdown(t *testing.T) {
	board, err := ParseBoard("3h7d9sJcQc")
	require.NoError(t, err)

	e, err := New(board, []*HandRange{rangeOf(t, "AsKs"), rangeOf(t, "2s2d")})
	require.NoError(t, err)

	sd, ok := e.Next()
	require.True(t, ok)
	require.Equal(t, uint16(6185), sd.Players()[0].Hand.Index)
	require.Equal(t, uint16(6066), sd.Players()[1].Hand.Index)
	require.False(t, sd.Players()[0].IsWinner)
	require.True(t, sd.Players()[1].IsWinner)
	require.Equal(t, 1, sd.WinnerCount())

	_, ok = e.Next()
	require.False(t, ok)
}

func TestEnumeratorTurnGivenIteratesRemainingDeck(t *testing.T) {
	board, err := ParseBoard("3h7d9sJc")
	require.NoError(t, err)

	e, err := New(board, []*HandRange{rangeOf(t, "AsKs"), rangeOf(t, "2s2d")})
	require.NoError(t, err)

	// deck after removing the 4 given board cards is 48; 4 more cards are
	// tied up in hole cards, leaving 44 valid rivers.
	require.Equal(t, 44, countAll(t, e))
}

func TestEnumeratorFlopGivenHeadsUpCount(t *testing.T) {
	board, err := ParseBoard("2s7d9h")
	require.NoError(t, err)

	e, err := New(board, []*HandRange{rangeOf(t, "AsAh"), rangeOf(t, "KdKc")})
	require.NoError(t, err)

	// deck after the 3-card flop is 49; 4 cards are tied up in hole cards,
	// leaving C(45,2) = 990 valid (turn, river) combinations.
	require.Equal(t, 990, countAll(t, e))
}

func TestEnumeratorScopePartitionsTheFullWindow(t *testing.T) {
	board, err := ParseBoard("2s7d9h")
	require.NoError(t, err)
	ranges := []*HandRange{rangeOf(t, "AsAh"), rangeOf(t, "KdKc")}

	full, err := New(board, ranges)
	require.NoError(t, err)
	n := full.DeckSize()
	fullCount := countAll(t, full)
	require.Equal(t, 990, fullCount)

	mid := n / 2

	first, err := New(board, ranges)
	require.NoError(t, err)
	require.NoError(t, first.Scope(0, 1, mid, mid+1))

	second, err := New(board, ranges)
	require.NoError(t, err)
	require.NoError(t, second.Scope(mid, mid+1, n-1, n))

	require.Equal(t, fullCount, countAll(t, first)+countAll(t, second))
}

func TestEnumeratorFlopGivenSinglePlayerCount(t *testing.T) {
	board, err := ParseBoard("Ks8d2h")
	require.NoError(t, err)

	// One player with a fixed two-card hand: the 49-card remaining deck
	// loses 2 cards to the hole, so C(47, 2) = 1081 (turn, river) pairs
	// materialize.
	e, err := New(board, []*HandRange{rangeOf(t, "AhAd")})
	require.NoError(t, err)
	require.Equal(t, 1081, countAll(t, e))
}

func TestEnumeratorScopeCountsAreExact(t *testing.T) {
	board, err := ParseBoard("2h2d2c")
	require.NoError(t, err)
	ranges := []*HandRange{rangeOf(t, "4s3h:1"), rangeOf(t, "4d3c:1")}

	scoped, err := New(board, ranges)
	require.NoError(t, err)
	require.NoError(t, scoped.Scope(0, 1, 2, 25))
	// turn 0 and 1 each lose 4 rivers to the hole cards (deck indices 40,
	// 42, 45, 47); turn 2's window [3, 25) loses none.
	require.Equal(t, (48-4)+(47-4)+22, countAll(t, scoped))

	rest, err := New(board, ranges)
	require.NoError(t, err)
	require.NoError(t, rest.Scope(2, 25, 48, 49))
	restCount := countAll(t, rest)

	full, err := New(board, ranges)
	require.NoError(t, err)
	require.Equal(t, countAll(t, full), 109+restCount)
}

func TestEnumeratorScopeRejectsBadWindows(t *testing.T) {
	board, err := ParseBoard("2s7d9h")
	require.NoError(t, err)
	ranges := []*HandRange{rangeOf(t, "AsAh"), rangeOf(t, "KdKc")}

	e, err := New(board, ranges)
	require.NoError(t, err)
	require.Error(t, e.Scope(5, 4, 10, 20), "turnFrom must be <= turnTo")

	e, err = New(board, ranges)
	require.NoError(t, err)
	require.Error(t, e.Scope(5, 5, 10, 20), "turnFrom must be < riverFrom")

	e, err = New(board, ranges)
	require.NoError(t, err)
	require.Error(t, e.Scope(5, 6, 10, 10), "turnTo must be < riverTo")
}

func TestEnumeratorScopeRejectsNonFlopVariant(t *testing.T) {
	board, err := ParseBoard("3h7d9sJcQc")
	require.NoError(t, err)
	ranges := []*HandRange{rangeOf(t, "AsKs"), rangeOf(t, "2s2d")}

	e, err := New(board, ranges)
	require.NoError(t, err)
	require.Error(t, e.Scope(0, 1, 2, 3))
}

func TestEnumeratorScopeRejectsAfterNextCalled(t *testing.T) {
	board, err := ParseBoard("2s7d9h")
	require.NoError(t, err)
	ranges := []*HandRange{rangeOf(t, "AsAh"), rangeOf(t, "KdKc")}

	e, err := New(board, ranges)
	require.NoError(t, err)
	_, _ = e.Next()
	require.Error(t, e.Scope(0, 1, 2, 3))
}

func TestEnumeratorSkipsCombinationsCollidingWithTheBoard(t *testing.T) {
	board, err := ParseBoard("AsKdQc")
	require.NoError(t, err)

	// the first player's range collides with the board's Ace of spades on
	// every possible board completion: no Showdown should ever materialize.
	e, err := New(board, []*HandRange{rangeOf(t, "AsKh"), rangeOf(t, "2h2d")})
	require.NoError(t, err)

	require.Equal(t, 0, countAll(t, e))
}

func TestEnumeratorNoFlopGivenProducesDistinctBoards(t *testing.T) {
	e, err := New(nil, []*HandRange{rangeOf(t, "AsKs"), rangeOf(t, "2h2d")})
	require.NoError(t, err)

	sd, ok := e.Next()
	require.True(t, ok)

	as := Card{Rank: Ace, Suit: Spade}
	ks := Card{Rank: King, Suit: Spade}
	seen := make(map[Card]bool, 5)
	for _, c := range sd.Board() {
		require.False(t, seen[c], "duplicate board card %s", c)
		seen[c] = true
		require.NotEqual(t, as, c)
		require.NotEqual(t, ks, c)
	}
}

func TestEnumeratorEmptyRangeYieldsNothing(t *testing.T) {
	board, err := ParseBoard("2s7d9h")
	require.NoError(t, err)

	empty := NewHandRange()
	e, err := New(board, []*HandRange{rangeOf(t, "AsAh"), empty})
	require.NoError(t, err)

	require.Equal(t, 0, countAll(t, e))
}
