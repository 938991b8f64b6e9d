package holdem

// CardPair is an ordered two-card hand: the smaller card by Card.Less is
// always stored first, so two CardPairs built from the same two cards in
// either order compare equal.
type CardPair struct {
	Lo, Hi Card
}

// NewCardPair canonicalizes (a, b) into a CardPair with the smaller card
// first.
func NewCardPair(a, b Card) CardPair {
	if a.Less(b) {
		return CardPair{Lo: a, Hi: b}
	}
	return CardPair{Lo: b, Hi: a}
}

// String renders the pair as its four-character notation, e.g. "AsKh".
func (p CardPair) String() string {
	return p.Lo.String() + p.Hi.String()
}

// ParseCardPair parses a four-character string such as "AsKh" into a
// canonical CardPair.
func ParseCardPair(s string) (CardPair, error) {
	if len(s) != 4 {
		return CardPair{}, &BadCardStringError{Input: s}
	}
	a, err := ParseCard(s[0:2])
	if err != nil {
		return CardPair{}, &BadCardStringError{Input: s[0:2]}
	}
	b, err := ParseCard(s[2:4])
	if err != nil {
		return CardPair{}, &BadCardStringError{Input: s[2:4]}
	}
	if a == b {
		return CardPair{}, &BadCardStringError{Input: s}
	}
	return NewCardPair(a, b), nil
}

// Conflicts reports whether p shares a card with other.
func (p CardPair) Conflicts(other CardPair) bool {
	return p.Lo == other.Lo || p.Lo == other.Hi || p.Hi == other.Lo || p.Hi == other.Hi
}

// Mask returns the 52-bit mask covering both cards of the pair.
func (p CardPair) Mask() uint64 {
	return p.Lo.Mask() | p.Hi.Mask()
}
