package preflop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-odds/holdem"
)

func TestClassifyPocketAces(t *testing.T) {
	hc := Classify(holdem.NewPocket(holdem.Ace))
	assert.Equal(t, Premium, hc.Category)
	assert.InDelta(t, 1.0, hc.Percentile, 1e-9)
}

func TestClassifyTrash(t *testing.T) {
	rp, err := holdem.NewOffsuit(holdem.Seven, holdem.Deuce)
	require.NoError(t, err)
	hc := Classify(rp)
	assert.Equal(t, Trash, hc.Category)
	assert.InDelta(t, 0.0, hc.Percentile, 1e-9)
}

func TestClassifyPairFromConcreteCards(t *testing.T) {
	p, err := holdem.ParseCardPair("AsKh")
	require.NoError(t, err)
	hc := ClassifyPair(p)
	assert.Equal(t, Premium, hc.Category)
	assert.InDelta(t, percentiles["AKo"], hc.Percentile, 1e-9)
}

func TestClassifyPairSuited(t *testing.T) {
	p, err := holdem.ParseCardPair("AsKs")
	require.NoError(t, err)
	hc := ClassifyPair(p)
	assert.InDelta(t, percentiles["AKs"], hc.Percentile, 1e-9)
}

func TestClassifyRangeAveragesWeighted(t *testing.T) {
	r, err := holdem.ParseRange("AA:1.0,72o:0.1")
	require.NoError(t, err)
	hc := ClassifyRange(r)

	// Weighted toward AA (weight 1.0, 6 combos) over 72o (weight 0.1, 12
	// combos): still closer to Premium than Trash.
	assert.Greater(t, hc.Percentile, 0.5)
}

func TestClassifyRangeEmpty(t *testing.T) {
	hc := ClassifyRange(holdem.NewHandRange())
	assert.Equal(t, Trash, hc.Category)
	assert.Equal(t, 0.0, hc.Percentile)
}

func TestCategoryStringCoversAllValues(t *testing.T) {
	for _, c := range []Category{Trash, Weak, Medium, Strong, Premium} {
		assert.NotEqual(t, "Unknown", c.String())
	}
	assert.Equal(t, "Unknown", Category(99).String())
}
