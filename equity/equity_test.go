package equity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-odds/holdem"
)

func mustRange(t *testing.T, notation string) *holdem.HandRange {
	t.Helper()
	r, err := holdem.ParseRange(notation)
	require.NoError(t, err)
	return r
}

// TestAggregationAcrossFullRiver drives a full-board tie through the
// aggregation layer: both players play quad deuces with an ace kicker, so
// every rate splits evenly.
func TestAggregationAcrossFullRiver(t *testing.T) {
	board, err := holdem.ParseBoard("2c2h2d2sAc")
	require.NoError(t, err)

	ranges := []*holdem.HandRange{
		mustRange(t, "KhKd:1"),
		mustRange(t, "QhQd:1"),
	}
	enum, err := holdem.New(board, ranges)
	require.NoError(t, err)

	results := make([]EquityResult, len(ranges))
	for i := range results {
		results[i] = NewEquityResult()
	}
	count := 0
	for {
		sd, ok := enum.Next()
		if !ok {
			break
		}
		count++
		for i := range results {
			results[i].Add(sd, i)
		}
	}

	require.Equal(t, 1, count)
	for i := range results {
		assert.Equal(t, uint64(1), results[i].Materialized)
		assert.Equal(t, uint64(1), results[i].Wins)
		assert.Equal(t, uint64(1), results[i].Ties)
		assert.InDelta(t, 0.5, results[i].Equity(), 1e-9)
	}
}

// TestRangeWeightPropagates checks that every materialized Showdown carries
// the range's weight, and Add doesn't distort that.
func TestRangeWeightPropagates(t *testing.T) {
	board, err := holdem.ParseBoard("2c7h9dJsQc")
	require.NoError(t, err)
	ranges := []*holdem.HandRange{
		mustRange(t, "AA:0.25"),
		mustRange(t, "KK:1.0"),
	}
	enum, err := holdem.New(board, ranges)
	require.NoError(t, err)

	result := NewEquityResult()
	for {
		sd, ok := enum.Next()
		if !ok {
			break
		}
		result.Add(sd, 0)
		assert.InDelta(t, 0.25, sd.Probability(), 1e-9)
	}
	assert.Greater(t, result.Materialized, uint64(0))
}

func TestCombineSumsAcrossShards(t *testing.T) {
	a := NewEquityResult()
	a.Materialized = 10
	a.Wins = 4
	a.Ties = 1
	a.TotalWeight = 10
	a.WinWeight = 4.5
	a.CategoryCounts[holdem.OnePair] = 3

	b := NewEquityResult()
	b.Materialized = 5
	b.Wins = 2
	b.TotalWeight = 5
	b.WinWeight = 2
	b.CategoryCounts[holdem.OnePair] = 1
	b.CategoryCounts[holdem.TwoPair] = 1

	c := Combine(a, b)
	assert.Equal(t, uint64(15), c.Materialized)
	assert.Equal(t, uint64(6), c.Wins)
	assert.Equal(t, uint64(1), c.Ties)
	assert.InDelta(t, 6.5, c.WinWeight, 1e-9)
	assert.InDelta(t, 4.0, c.CategoryCounts[holdem.OnePair], 1e-9)
	assert.InDelta(t, 1.0, c.CategoryCounts[holdem.TwoPair], 1e-9)
}

func TestRatesOnEmptyResult(t *testing.T) {
	e := NewEquityResult()
	assert.Equal(t, 0.0, e.WinRate())
	assert.Equal(t, 0.0, e.TieRate())
	assert.Equal(t, 0.0, e.LossRate())
	assert.Equal(t, 0.0, e.Equity())
	lo, hi := e.ConfidenceInterval()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 0.0, hi)
}

func TestConfidenceIntervalBounds(t *testing.T) {
	e := NewEquityResult()
	e.Materialized = 1000
	e.TotalWeight = 1000
	e.WinWeight = 650
	lo, hi := e.ConfidenceInterval()
	assert.LessOrEqual(t, lo, e.Equity())
	assert.GreaterOrEqual(t, hi, e.Equity())
	assert.GreaterOrEqual(t, lo, 0.0)
	assert.LessOrEqual(t, hi, 1.0)
}

// TestWindowsPartitionExactly checks that Windows, for any worker count,
// yields disjoint contiguous (turn, river) windows whose pair counts sum to
// C(deckSize, 2), the unscoped total.
func TestWindowsPartitionExactly(t *testing.T) {
	const deckSize = 49 // 52 - 3-card flop
	expected := deckSize * (deckSize - 1) / 2

	for _, workers := range []int{1, 2, 3, 7, 64} {
		windows := Windows(deckSize, workers)
		total := 0
		for i, w := range windows {
			require.Less(t, w.TurnFrom, w.TurnTo, "window %d empty turn range", i)
			for turn := w.TurnFrom; turn < w.TurnTo; turn++ {
				riverStart, riverEnd := turn+1, deckSize
				if turn == w.TurnFrom {
					riverStart = w.RiverFrom
				}
				if turn == w.TurnTo-1 && i == len(windows)-1 {
					riverEnd = w.RiverTo
				}
				total += riverEnd - riverStart
			}
			if i > 0 {
				prev := windows[i-1]
				assert.Equal(t, prev.TurnTo, w.TurnFrom, "window %d doesn't abut the previous window", i)
			}
		}
		assert.Equal(t, expected, total, "workers=%d", workers)
	}
}

func TestRunShardedMatchesUnscoped(t *testing.T) {
	board, err := holdem.ParseBoard("Ks8d2h")
	require.NoError(t, err)
	ranges := []*holdem.HandRange{
		mustRange(t, "TT+"),
		mustRange(t, "A8s+"),
	}

	unscoped, err := RunSharded(context.Background(), board, ranges, 1)
	require.NoError(t, err)

	sharded, err := RunSharded(context.Background(), board, ranges, 4)
	require.NoError(t, err)

	require.Len(t, unscoped, 2)
	require.Len(t, sharded, 2)
	for i := range unscoped {
		assert.Equal(t, unscoped[i].Materialized, sharded[i].Materialized)
		assert.Equal(t, unscoped[i].Wins, sharded[i].Wins)
		assert.InDelta(t, unscoped[i].Equity(), sharded[i].Equity(), 1e-9)
	}
}

func TestRunShardedIgnoresWorkersWhenNotFlopGiven(t *testing.T) {
	board, err := holdem.ParseBoard("2c2h2d2sAc")
	require.NoError(t, err)
	ranges := []*holdem.HandRange{
		mustRange(t, "KhKd:1"),
		mustRange(t, "QhQd:1"),
	}
	results, err := RunSharded(context.Background(), board, ranges, 8)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, uint64(1), results[0].Materialized)
}

func TestRunShardedCancellation(t *testing.T) {
	ranges := []*holdem.HandRange{
		mustRange(t, "22+"),
		mustRange(t, "22+"),
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunSharded(ctx, nil, ranges, 1)
	require.Error(t, err)
}
