package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-odds/holdem"
)

func TestParseBoardEmpty(t *testing.T) {
	board, err := parseBoard("")
	require.NoError(t, err)
	assert.Nil(t, board)
}

func TestParseBoardFlop(t *testing.T) {
	board, err := parseBoard("Ks8d2h")
	require.NoError(t, err)
	assert.Len(t, board, 3)
	assert.Equal(t, "Ks", board[0].String())
}

func TestParseBoardRejectsGarbage(t *testing.T) {
	_, err := parseBoard("Zz")
	assert.Error(t, err)
}

func TestParseRangesMultiplePlayers(t *testing.T) {
	ranges, err := parseRanges([]string{"AA", "KK:0.5"})
	require.NoError(t, err)
	require.Len(t, ranges, 2)
	assert.Equal(t, 6, ranges[0].Len())
}

func TestParseRangesReportsOffendingPlayer(t *testing.T) {
	_, err := parseRanges([]string{"AA", "not-a-range!!"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "player 2")
}

func TestLevelForKnownAndUnknown(t *testing.T) {
	assert.Equal(t, "debug", levelFor("debug").String())
	assert.Equal(t, "info", levelFor("info").String())
	assert.Equal(t, "error", levelFor("error").String())
	assert.Equal(t, "warn", levelFor("anything-else").String())
}

func TestFormatCardsJoinsWithSpaces(t *testing.T) {
	board, err := parseBoard("Ks8d2h")
	require.NoError(t, err)
	assert.Equal(t, "Ks 8d 2h", formatCards(board))
}

func TestFormatCardsEmpty(t *testing.T) {
	assert.Equal(t, "", formatCards(nil))
}

func TestCategoryOrderCoversAllCategories(t *testing.T) {
	assert.Len(t, categoryOrder, 9)
	assert.Equal(t, holdem.StraightFlush, categoryOrder[0])
	assert.Equal(t, holdem.HighCard, categoryOrder[len(categoryOrder)-1])
}
