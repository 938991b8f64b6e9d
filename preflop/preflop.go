// Package preflop is a read-only starting-hand classifier: a static
// percentile table keyed by canonical rank-pair notation, plus a coarse
// strength category derived from it. Package holdem never imports this
// package.
package preflop

import "github.com/lox/holdem-odds/holdem"

// Category is a coarse preflop strength bucket.
type Category int8

const (
	Trash Category = iota
	Weak
	Medium
	Strong
	Premium
)

func (c Category) String() string {
	switch c {
	case Premium:
		return "Premium"
	case Strong:
		return "Strong"
	case Medium:
		return "Medium"
	case Weak:
		return "Weak"
	case Trash:
		return "Trash"
	default:
		return "Unknown"
	}
}

// categoryFor buckets a percentile (0.0 weakest .. 1.0 strongest) into a
// Category. The cut points put TT+, AJs+, KJs+ and AKo in Premium, 99-77,
// ATs, AQo, KQo and their neighbors in Strong, and so on down the
// percentile table.
func categoryFor(percentile float64) Category {
	switch {
	case percentile >= 0.94:
		return Premium
	case percentile >= 0.83:
		return Strong
	case percentile >= 0.55:
		return Medium
	case percentile >= 0.25:
		return Weak
	default:
		return Trash
	}
}

// HoleCategory pairs a Category with the percentile it was derived from.
type HoleCategory struct {
	Category   Category
	Percentile float64
}

// notation renders a RankPair in the same two/three-character form the
// percentile table is keyed by: "AA", "AKs", "72o".
func notation(rp holdem.RankPair) string {
	switch rp.Kind {
	case holdem.Pocket:
		return rp.High.String() + rp.High.String()
	case holdem.Suited:
		return rp.High.String() + rp.Low.String() + "s"
	default:
		return rp.High.String() + rp.Low.String() + "o"
	}
}

// rankPairOf recovers the rank-level abstraction of a concrete CardPair:
// pocket, suited, or offsuit, with High always the stronger (lower-ordinal)
// rank. CardPair.Lo sorts first by Card.Less, which compares Rank before
// Suit — since Rank ordinals run Ace=0 (strongest) to Deuce=12 (weakest),
// Lo.Rank is always the stronger or equal rank.
func rankPairOf(p holdem.CardPair) holdem.RankPair {
	if p.Lo.Rank == p.Hi.Rank {
		return holdem.NewPocket(p.Lo.Rank)
	}
	if p.Lo.Suit == p.Hi.Suit {
		rp, _ := holdem.NewSuited(p.Lo.Rank, p.Hi.Rank)
		return rp
	}
	rp, _ := holdem.NewOffsuit(p.Lo.Rank, p.Hi.Rank)
	return rp
}

// Classify returns the HoleCategory for a single rank-level starting hand.
func Classify(rp holdem.RankPair) HoleCategory {
	pct := percentiles[notation(rp)]
	return HoleCategory{Category: categoryFor(pct), Percentile: pct}
}

// ClassifyPair returns the HoleCategory for a concrete two-card hand.
func ClassifyPair(p holdem.CardPair) HoleCategory {
	return Classify(rankPairOf(p))
}

// ClassifyRange returns the probability-weighted average HoleCategory
// across every CardPair in a HandRange: each entry's percentile is weighted
// by its range weight, giving a single summary label for a player's whole
// range rather than one hand. A nil or empty range classifies as Trash at
// percentile 0.
func ClassifyRange(r *holdem.HandRange) HoleCategory {
	if r == nil {
		return HoleCategory{Category: Trash, Percentile: 0}
	}
	pairs := r.Pairs()
	if len(pairs) == 0 {
		return HoleCategory{Category: Trash, Percentile: 0}
	}
	var totalWeight, weightedPct float64
	for _, wp := range pairs {
		pct := percentiles[notation(rankPairOf(wp.Pair))]
		weightedPct += pct * wp.Weight
		totalWeight += wp.Weight
	}
	if totalWeight == 0 {
		return HoleCategory{Category: Trash, Percentile: 0}
	}
	avg := weightedPct / totalWeight
	return HoleCategory{Category: categoryFor(avg), Percentile: avg}
}
