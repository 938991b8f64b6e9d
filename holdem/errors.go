package holdem

import "fmt"

// BadCardStringError reports a malformed card, card-pair, or board string.
type BadCardStringError struct {
	Input string
}

func (e *BadCardStringError) Error() string {
	return fmt.Sprintf("holdem: bad card string %q", e.Input)
}

// BadRangeEntryError reports a range-notation entry that doesn't match the
// grammar in full, naming the offending substring and why it was rejected.
type BadRangeEntryError struct {
	Entry  string
	Reason string
}

func (e *BadRangeEntryError) Error() string {
	return fmt.Sprintf("holdem: bad range entry %q: %s", e.Entry, e.Reason)
}

// BadWeightError reports a weight outside (0, 1].
type BadWeightError struct {
	Weight float64
}

func (e *BadWeightError) Error() string {
	return fmt.Sprintf("holdem: bad weight %g, must be in (0, 1]", e.Weight)
}

// BoardTooLongError reports a partial board with more than five cards.
type BoardTooLongError struct {
	N int
}

func (e *BoardTooLongError) Error() string {
	return fmt.Sprintf("holdem: board has %d cards, maximum is 5", e.N)
}

// DuplicateCardError reports a card appearing twice in a board.
type DuplicateCardError struct {
	Card Card
}

func (e *DuplicateCardError) Error() string {
	return fmt.Sprintf("holdem: duplicate card %s in board", e.Card)
}

// InvalidScopeError reports a scope window that violates the preconditions
// of Enumerator.Scope.
type InvalidScopeError struct {
	TurnFrom, RiverFrom, TurnTo, RiverTo int
	Reason                              string
}

func (e *InvalidScopeError) Error() string {
	return fmt.Sprintf("holdem: invalid scope (%d,%d)..(%d,%d): %s",
		e.TurnFrom, e.RiverFrom, e.TurnTo, e.RiverTo, e.Reason)
}
