// Package equity aggregates the exact-enumeration results produced by
// package holdem into per-player equity statistics, and shards that
// enumeration across a worker pool for large boards. Neither concern is
// part of the core: package holdem never imports this package.
package equity

import (
	"math"

	"github.com/lox/holdem-odds/holdem"
)

// EquityResult accumulates equity statistics for one player across a
// stream of holdem.Showdown values. Unlike a Monte Carlo accumulator, each
// Showdown carries its own probability (the product of every player's
// selected range-entry weight), so Add folds that weight in rather than
// treating every materialized combination as equally likely.
type EquityResult struct {
	Materialized uint64
	Wins         uint64
	Ties         uint64
	TotalWeight  float64
	WinWeight    float64

	// CategoryCounts tallies, per hand category, the probability mass of
	// materialized showdowns in which this player held that category.
	CategoryCounts map[holdem.Category]float64
}

// NewEquityResult returns a zeroed EquityResult ready for Add.
func NewEquityResult() EquityResult {
	return EquityResult{CategoryCounts: make(map[holdem.Category]float64)}
}

// Add folds one Showdown's outcome for the player at playerIdx into the
// running result. A tie splits its probability mass evenly across the tied
// winners.
func (e *EquityResult) Add(sd holdem.Showdown, playerIdx int) {
	e.Materialized++
	e.TotalWeight += sd.Probability()

	p := sd.Players()[playerIdx]
	if e.CategoryCounts == nil {
		e.CategoryCounts = make(map[holdem.Category]float64)
	}
	e.CategoryCounts[p.Hand.Category] += sd.Probability()

	if !p.IsWinner {
		return
	}
	e.Wins++
	winners := sd.WinnerCount()
	if winners > 1 {
		e.Ties++
	}
	e.WinWeight += sd.Probability() / float64(winners)
}

// Combine merges independently accumulated results, e.g. one per parallel
// shard, into a single EquityResult.
func Combine(results ...EquityResult) EquityResult {
	out := NewEquityResult()
	for _, r := range results {
		out.Materialized += r.Materialized
		out.Wins += r.Wins
		out.Ties += r.Ties
		out.TotalWeight += r.TotalWeight
		out.WinWeight += r.WinWeight
		for cat, w := range r.CategoryCounts {
			out.CategoryCounts[cat] += w
		}
	}
	return out
}

// WinRate returns the fraction of materialized showdowns this player won
// outright or tied, unweighted by range probability.
func (e EquityResult) WinRate() float64 {
	if e.Materialized == 0 {
		return 0.0
	}
	return float64(e.Wins) / float64(e.Materialized)
}

// TieRate returns the fraction of materialized showdowns this player
// shared with at least one other winner.
func (e EquityResult) TieRate() float64 {
	if e.Materialized == 0 {
		return 0.0
	}
	return float64(e.Ties) / float64(e.Materialized)
}

// LossRate returns the fraction of materialized showdowns this player lost
// outright.
func (e EquityResult) LossRate() float64 {
	if e.Materialized == 0 {
		return 0.0
	}
	losses := e.Materialized - e.Wins
	return float64(losses) / float64(e.Materialized)
}

// Equity returns the probability-weighted share of the pot this player
// expects to win: the winning probability mass over the total probability
// mass materialized. Wins count as 1.0, ties split evenly among that
// showdown's winners.
func (e EquityResult) Equity() float64 {
	if e.TotalWeight == 0 {
		return 0.0
	}
	return e.WinWeight / e.TotalWeight
}

// ConfidenceInterval returns the 95% confidence interval for Equity,
// treating the materialized count as a sample size. The width depends only
// on Equity and the materialized count; it is not narrowed for a full,
// unscoped enumeration, where Equity is an exact value.
func (e EquityResult) ConfidenceInterval() (lower, upper float64) {
	equity := e.Equity()
	n := float64(e.Materialized)
	if n == 0 {
		return 0.0, 0.0
	}

	se := math.Sqrt((equity * (1.0 - equity)) / n)
	margin := 1.96 * se

	lower = math.Max(0.0, equity-margin)
	upper = math.Min(1.0, equity+margin)
	return lower, upper
}

// CategoryFraction returns the fraction of this player's probability mass
// that fell into the given hand category.
func (e EquityResult) CategoryFraction(cat holdem.Category) float64 {
	if e.TotalWeight == 0 {
		return 0.0
	}
	return e.CategoryCounts[cat] / e.TotalWeight
}
