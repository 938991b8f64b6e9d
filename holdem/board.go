package holdem

// Board is an ordered sequence of up to 5 community cards in the positions
// [flop1, flop2, flop3, turn, river]. A partial board leaves trailing
// positions unfilled; a full showdown board always has 5.
type Board [5]Card

// validateBoard checks a caller-supplied partial board ([]Card of length
// 0..5) for length and duplicates. Full Board values produced by the
// enumerator always carry all 5 cards.
func validateBoard(cards []Card) error {
	if len(cards) > 5 {
		return &BoardTooLongError{N: len(cards)}
	}
	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			if cards[i] == cards[j] {
				return &DuplicateCardError{Card: cards[i]}
			}
		}
	}
	return nil
}
