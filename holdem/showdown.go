package holdem

// ShowdownPlayer is one player's materialized result within a Showdown.
type ShowdownPlayer struct {
	Hole     CardPair
	Board    Board
	All      [7]Card
	Hand     Hand
	IsWinner bool
}

// HoleCards returns the player's two private cards.
func (p ShowdownPlayer) HoleCards() CardPair { return p.Hole }

// AllCards returns the 7 cards (2 hole + 5 board) the player's Hand was
// evaluated from.
func (p ShowdownPlayer) AllCards() [7]Card { return p.All }

// Showdown is one materialized board-and-hole-card combination: a full
// 5-card board, one ShowdownPlayer per player, the probability of this
// exact combination (the product of each selected range entry's weight),
// and the number of winners.
type Showdown struct {
	BoardCards  Board
	PlayerHands []ShowdownPlayer
	Prob        float64
	winners     int
}

// Board returns the full 5-card board.
func (s Showdown) Board() Board { return s.BoardCards }

// Players returns the per-player results.
func (s Showdown) Players() []ShowdownPlayer { return s.PlayerHands }

// Probability returns the product of the weights of each player's selected
// range entry.
func (s Showdown) Probability() float64 { return s.Prob }

// WinnerCount returns the number of players tied for the lowest (strongest)
// power index; always >= 1.
func (s Showdown) WinnerCount() int { return s.winners }

// NewShowdown builds a Showdown directly from a full board and one hole
// CardPair per player, for callers that are not going through an
// Enumerator. It performs the duplicate check an Enumerator has already
// done for its own materialized tuples: construction fails if any hole
// card coincides with a board card or with another player's hole card.
func NewShowdown(board Board, holes []CardPair, probability float64) (Showdown, error) {
	used := boardMask(board)
	for _, h := range holes {
		m := h.Mask()
		if used&m != 0 {
			return Showdown{}, &DuplicateCardError{Card: firstSharedCard(used, h)}
		}
		used |= m
	}
	return evaluateShowdown(board, holes, probability), nil
}

func boardMask(board Board) uint64 {
	return board[0].Mask() | board[1].Mask() | board[2].Mask() | board[3].Mask() | board[4].Mask()
}

func firstSharedCard(used uint64, h CardPair) Card {
	if used&h.Lo.Mask() != 0 {
		return h.Lo
	}
	return h.Hi
}

// evaluateShowdown evaluates every player's 7-card hand and marks winners.
// It assumes holes contains no duplicate cards against board or each other
// (the caller's responsibility): the Enumerator's inner loop pre-filters
// before calling this, and NewShowdown checks before calling it.
func evaluateShowdown(board Board, holes []CardPair, prob float64) Showdown {
	players := make([]ShowdownPlayer, len(holes))
	best := Hand{Index: ^uint16(0)}
	winners := make([]int, 0, len(holes))

	for i, h := range holes {
		all := [7]Card{h.Lo, h.Hi, board[0], board[1], board[2], board[3], board[4]}
		hand := Evaluate7(all)
		players[i] = ShowdownPlayer{Hole: h, Board: board, All: all, Hand: hand}

		if hand.Better(best) {
			best = hand
			winners = winners[:0]
			winners = append(winners, i)
		} else if hand.Index == best.Index {
			winners = append(winners, i)
		}
	}
	for _, w := range winners {
		players[w].IsWinner = true
	}

	return Showdown{
		BoardCards:  board,
		PlayerHands: players,
		Prob:        prob,
		winners:     len(winners),
	}
}
