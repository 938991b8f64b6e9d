package holdem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, s string) Board {
	t.Helper()
	cards, err := ParseBoard(s)
	require.NoError(t, err)
	var b Board
	copy(b[:], cards)
	return b
}

func TestNewShowdownDetectsWinner(t *testing.T) {
	board := mustBoard(t, "3h7d9sJcQc")
	p1, _ := ParseCardPair("AsKs")
	p2, _ := ParseCardPair("2s2d")

	sd, err := NewShowdown(board, []CardPair{p1, p2}, 1.0)
	require.NoError(t, err)
	require.Len(t, sd.Players(), 2)
	require.False(t, sd.Players()[0].IsWinner)
	require.True(t, sd.Players()[1].IsWinner)
	require.Equal(t, 1, sd.WinnerCount())
}

func TestNewShowdownDetectsTie(t *testing.T) {
	board := mustBoard(t, "AhKdQc9s2c")
	// Both players play A-K-Q-9 from the board plus a hole-card 4: a chopped pot.
	p1, _ := ParseCardPair("3s4s")
	p2, _ := ParseCardPair("3h4h")

	sd, err := NewShowdown(board, []CardPair{p1, p2}, 1.0)
	require.NoError(t, err)
	require.Equal(t, 2, sd.WinnerCount())
	require.True(t, sd.Players()[0].IsWinner)
	require.True(t, sd.Players()[1].IsWinner)
}

func TestNewShowdownRejectsHoleCardOnBoard(t *testing.T) {
	board := mustBoard(t, "3h7d9sJcQc")
	p1, _ := ParseCardPair("3hKs")
	p2, _ := ParseCardPair("2s2d")

	_, err := NewShowdown(board, []CardPair{p1, p2}, 1.0)
	require.Error(t, err)
}

func TestNewShowdownRejectsSharedHoleCards(t *testing.T) {
	board := mustBoard(t, "3h7d9sJcQc")
	p1, _ := ParseCardPair("AsKs")
	p2, _ := ParseCardPair("As2d")

	_, err := NewShowdown(board, []CardPair{p1, p2}, 1.0)
	require.Error(t, err)
}

func TestShowdownAllCardsIncludesHoleAndBoard(t *testing.T) {
	board := mustBoard(t, "3h7d9sJcQc")
	p1, _ := ParseCardPair("AsKs")

	sd, err := NewShowdown(board, []CardPair{p1}, 1.0)
	require.NoError(t, err)
	all := sd.Players()[0].AllCards()
	require.Equal(t, p1.Lo, all[0])
	require.Equal(t, p1.Hi, all[1])
	require.Equal(t, board[:], all[2:])
}
