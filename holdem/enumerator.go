package holdem

// outerWalker advances through successive combinations of deck indices that
// fill the board positions left unfilled by a partial board. advance moves
// to the next combination (the first call produces the first one) and
// reports false once exhausted. indices are ascending deck indices.
type outerWalker interface {
	advance() bool
	indices() []int
}

// comboWalker enumerates all k-combinations of n deck indices in ascending
// lexicographic order. It is used whenever the number of missing board
// positions is not exactly two (0, 1, or 5 given the four board variants:
// river given, turn given, and nothing given, respectively).
type comboWalker struct {
	n, k int
	idx  []int
	init bool
}

func newComboWalker(n, k int) *comboWalker {
	return &comboWalker{n: n, k: k}
}

func (w *comboWalker) advance() bool {
	if w.k == 0 {
		if w.init {
			return false
		}
		w.init = true
		w.idx = []int{}
		return true
	}
	if !w.init {
		if w.k > w.n {
			return false
		}
		w.idx = make([]int, w.k)
		for i := range w.idx {
			w.idx[i] = i
		}
		w.init = true
		return true
	}
	i := w.k - 1
	for i >= 0 && w.idx[i] == w.n-w.k+i {
		i--
	}
	if i < 0 {
		return false
	}
	w.idx[i]++
	for j := i + 1; j < w.k; j++ {
		w.idx[j] = w.idx[j-1] + 1
	}
	return true
}

func (w *comboWalker) indices() []int { return w.idx }

// flopWalker enumerates (turn, river) deck-index pairs with turn < river, in
// turn-major river-minor order. It is the only walker that supports a
// restricted iteration window via setScope.
type flopWalker struct {
	n              int
	t, r           int
	startT, startR int
	endT, endR     int // exclusive sentinel, in pair order
	init           bool
}

func newFlopWalker(n int) *flopWalker {
	return &flopWalker{n: n, startT: 0, startR: 1, endT: n - 1, endR: n}
}

func pairLess(t1, r1, t2, r2 int) bool {
	return t1 < t2 || (t1 == t2 && r1 < r2)
}

func (w *flopWalker) setScope(turnFrom, riverFrom, turnTo, riverTo int) {
	w.startT, w.startR = turnFrom, riverFrom
	w.endT, w.endR = turnTo, riverTo
	w.init = false
}

func (w *flopWalker) advance() bool {
	if !w.init {
		w.t, w.r = w.startT, w.startR
		w.init = true
	} else if w.r+1 < w.n {
		w.r++
	} else {
		w.t++
		w.r = w.t + 1
	}
	if w.r >= w.n {
		return false
	}
	if !pairLess(w.t, w.r, w.endT, w.endR) {
		return false
	}
	return true
}

func (w *flopWalker) indices() []int { return []int{w.t, w.r} }

// Enumerator exhaustively walks every reachable board-and-hole-card
// combination consistent with a partial board and one HandRange per player,
// yielding one Showdown per combination through repeated calls to Next.
// Combinations where a hole card collides with the board or with another
// player's hole card are never materialized: they are skipped and do not
// count as a combination.
//
// The four board variants (nothing given, flop given, turn given, river
// given) fall out of how many board positions
// remain to be filled: 5, 2, 1, or 0 respectively. Only the flop-given case
// (exactly two missing positions, turn and river) supports Scope.
type Enumerator struct {
	given   []Card
	deck    []Card
	entries [][]WeightedPair

	noCombos bool

	walker    outerWalker
	started   bool
	outerLive bool
	exhausted bool

	playerIdx []int
}

// New builds an Enumerator over a partial board (0 to 5 cards, in
// [flop1, flop2, flop3, turn, river] order so far as it goes) and one
// HandRange per player.
func New(partialBoard []Card, ranges []*HandRange) (*Enumerator, error) {
	if err := validateBoard(partialBoard); err != nil {
		return nil, err
	}
	given := append([]Card(nil), partialBoard...)

	var givenMask uint64
	for _, c := range given {
		givenMask |= c.Mask()
	}

	full := FullDeck()
	deck := make([]Card, 0, len(full)-len(given))
	for _, c := range full {
		if givenMask&c.Mask() == 0 {
			deck = append(deck, c)
		}
	}

	entries := make([][]WeightedPair, len(ranges))
	noCombos := false
	for i, rg := range ranges {
		ps := rg.Pairs()
		entries[i] = ps
		if len(ps) == 0 {
			noCombos = true
		}
	}

	missing := 5 - len(given)
	var w outerWalker
	if missing == 2 {
		w = newFlopWalker(len(deck))
	} else {
		w = newComboWalker(len(deck), missing)
	}

	return &Enumerator{
		given:     given,
		deck:      deck,
		entries:   entries,
		noCombos:  noCombos,
		walker:    w,
		playerIdx: make([]int, len(ranges)),
	}, nil
}

// Scope restricts a flop-given Enumerator (exactly two missing board
// positions) to the half-open (turn, river) window
// [(turnFrom, riverFrom), (turnTo, riverTo)), in turn-major river-minor deck
// index order. It returns InvalidScopeError if the Enumerator isn't a
// flop-given variant, if Next has already been called, or if
// turnFrom > turnTo, turnFrom >= riverFrom, or turnTo >= riverTo.
func (e *Enumerator) Scope(turnFrom, riverFrom, turnTo, riverTo int) error {
	fw, ok := e.walker.(*flopWalker)
	if !ok {
		return &InvalidScopeError{turnFrom, riverFrom, turnTo, riverTo,
			"Scope is only defined when exactly the turn and river are missing from the board"}
	}
	if e.started {
		return &InvalidScopeError{turnFrom, riverFrom, turnTo, riverTo,
			"Scope must be called before the first Next"}
	}
	if turnFrom > turnTo {
		return &InvalidScopeError{turnFrom, riverFrom, turnTo, riverTo, "turnFrom must be <= turnTo"}
	}
	if turnFrom >= riverFrom {
		return &InvalidScopeError{turnFrom, riverFrom, turnTo, riverTo, "turnFrom must be < riverFrom"}
	}
	if turnTo >= riverTo {
		return &InvalidScopeError{turnFrom, riverFrom, turnTo, riverTo, "turnTo must be < riverTo"}
	}
	fw.setScope(turnFrom, riverFrom, turnTo, riverTo)
	return nil
}

// DeckSize returns the number of cards left in the deck after removing the
// partial board; this is the upper bound for Scope's indices.
func (e *Enumerator) DeckSize() int { return len(e.deck) }

func (e *Enumerator) currentBoard() Board {
	var b Board
	copy(b[:], e.given)
	for i, di := range e.walker.indices() {
		b[len(e.given)+i] = e.deck[di]
	}
	return b
}

func (e *Enumerator) resetPlayerIdx() {
	for i := range e.playerIdx {
		e.playerIdx[i] = 0
	}
}

// advancePlayerIdx moves the odometer to the next tuple, the rightmost
// (last) player advancing fastest. Returns false once the tuple it moved
// past was the last one for the current board.
func (e *Enumerator) advancePlayerIdx() bool {
	for i := len(e.playerIdx) - 1; i >= 0; i-- {
		e.playerIdx[i]++
		if e.playerIdx[i] < len(e.entries[i]) {
			return true
		}
		e.playerIdx[i] = 0
	}
	return false
}

func (e *Enumerator) currentTuple() ([]CardPair, float64) {
	holes := make([]CardPair, len(e.entries))
	prob := 1.0
	for i, idx := range e.playerIdx {
		wp := e.entries[i][idx]
		holes[i] = wp.Pair
		prob *= wp.Weight
	}
	return holes, prob
}

func tupleValid(board Board, holes []CardPair) bool {
	used := boardMask(board)
	for _, h := range holes {
		m := h.Mask()
		if used&m != 0 {
			return false
		}
		used |= m
	}
	return true
}

// Next produces the next materialized Showdown, or ok=false once every
// combination has been visited.
func (e *Enumerator) Next() (Showdown, bool) {
	e.started = true
	if e.exhausted || e.noCombos {
		e.exhausted = true
		return Showdown{}, false
	}
	for {
		if !e.outerLive {
			if !e.walker.advance() {
				e.exhausted = true
				return Showdown{}, false
			}
			e.resetPlayerIdx()
			e.outerLive = true
		}

		board := e.currentBoard()
		holes, prob := e.currentTuple()

		if !e.advancePlayerIdx() {
			e.outerLive = false
		}

		if !tupleValid(board, holes) {
			continue
		}
		return evaluateShowdown(board, holes, prob), true
	}
}
