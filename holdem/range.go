package holdem

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// HandRange maps CardPair to a weight in (0, 1]: "this player holds this
// exact pair with probability = weight." Every CardPair appears at most
// once; entries with zero weight are never stored.
type HandRange struct {
	weights map[CardPair]float64
}

// NewHandRange returns an empty HandRange.
func NewHandRange() *HandRange {
	return &HandRange{weights: make(map[CardPair]float64)}
}

// Weight returns the weight of pair in the range, or 0 if absent.
func (r *HandRange) Weight(pair CardPair) float64 {
	return r.weights[pair]
}

// Len returns the number of distinct CardPairs in the range.
func (r *HandRange) Len() int {
	return len(r.weights)
}

// Pairs returns the range's CardPairs in a deterministic order (by
// rendered notation), paired with their weights.
func (r *HandRange) Pairs() []WeightedPair {
	out := make([]WeightedPair, 0, len(r.weights))
	for p, w := range r.weights {
		out = append(out, WeightedPair{Pair: p, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Pair.String() < out[j].Pair.String()
	})
	return out
}

// WeightedPair is a CardPair together with its range weight.
type WeightedPair struct {
	Pair   CardPair
	Weight float64
}

// set stores pair at weight, overwriting any existing entry ("last write
// wins" per the range parser's documented entry-conflict policy). Zero or
// negative weights are not stored.
func (r *HandRange) set(pair CardPair, weight float64) {
	if weight <= 0 {
		return
	}
	if weight > 1 {
		weight = 1
	}
	r.weights[pair] = weight
}

// Render returns a canonical, re-parseable string form of the range: one
// explicit CardPair per entry, comma-separated, with its weight. Round-trip
// fidelity of the original notation is not guaranteed, only that re-parsing
// yields an equivalent HandRange.
func (r *HandRange) Render() string {
	pairs := r.Pairs()
	parts := make([]string, len(pairs))
	for i, wp := range pairs {
		parts[i] = fmt.Sprintf("%s:%s", wp.Pair, strconv.FormatFloat(wp.Weight, 'g', -1, 64))
	}
	return strings.Join(parts, ",")
}

// ParseRange parses a comma-separated weighted-range string: pockets,
// suited/offsuit hands, "+" and descending-range forms, and explicit
// four-character card pairs, each with an optional ":weight" suffix.
// Whitespace is never permitted.
func ParseRange(s string) (*HandRange, error) {
	r := NewHandRange()
	entries := strings.Split(s, ",")
	for _, entry := range entries {
		if entry == "" {
			return nil, &BadRangeEntryError{Entry: s, Reason: "empty entry (stray or trailing comma)"}
		}
		if strings.ContainsAny(entry, " \t\n") {
			return nil, &BadRangeEntryError{Entry: entry, Reason: "whitespace is not permitted"}
		}
		handPart, weight, err := splitWeight(entry)
		if err != nil {
			return nil, err
		}
		explicit, rankPairs, err := expandHandToken(handPart)
		if err != nil {
			return nil, err
		}
		if explicit != nil {
			r.set(*explicit, weight)
			continue
		}
		for _, rp := range rankPairs {
			for _, cp := range rp.Expand() {
				r.set(cp, weight)
			}
		}
	}
	return r, nil
}

func splitWeight(entry string) (handPart string, weight float64, err error) {
	idx := strings.IndexByte(entry, ':')
	if idx < 0 {
		return entry, 1.0, nil
	}
	if strings.IndexByte(entry[idx+1:], ':') >= 0 {
		return "", 0, &BadRangeEntryError{Entry: entry, Reason: "more than one ':' in entry"}
	}
	handPart = entry[:idx]
	weightStr := entry[idx+1:]
	w, perr := strconv.ParseFloat(weightStr, 64)
	if perr != nil {
		return "", 0, &BadRangeEntryError{Entry: entry, Reason: "malformed weight"}
	}
	if w <= 0 || w > 1 {
		return "", 0, &BadWeightError{Weight: w}
	}
	return handPart, w, nil
}

// expandHandToken parses the hand portion of an entry (without its weight
// suffix). It returns either an explicit CardPair (four-character form) or
// a list of RankPairs to expand.
func expandHandToken(tok string) (explicit *CardPair, rankPairs []RankPair, err error) {
	switch {
	case len(tok) == 4 && !strings.ContainsAny(tok, "+-"):
		cp, perr := ParseCardPair(tok)
		if perr != nil {
			return nil, nil, perr
		}
		return &cp, nil, nil

	case strings.Contains(tok, "-"):
		rps, rerr := parseDescendingRange(tok)
		return nil, rps, rerr

	case strings.HasSuffix(tok, "+"):
		rps, rerr := parsePlusRange(tok)
		return nil, rps, rerr

	default:
		rps, rerr := parseSingleHand(tok)
		return nil, rps, rerr
	}
}

// handCore splits a suffix-free hand token like "AK", "AKs", "AKo" into its
// two rank characters and optional suffix.
func handCore(tok string) (r1, r2 Rank, suffix byte, err error) {
	if len(tok) == 2 {
		r1, err = ParseRank(tok[0])
		if err != nil {
			return 0, 0, 0, &BadRangeEntryError{Entry: tok, Reason: "bad rank character"}
		}
		r2, err = ParseRank(tok[1])
		if err != nil {
			return 0, 0, 0, &BadRangeEntryError{Entry: tok, Reason: "bad rank character"}
		}
		return r1, r2, 0, nil
	}
	if len(tok) == 3 {
		r1, err = ParseRank(tok[0])
		if err != nil {
			return 0, 0, 0, &BadRangeEntryError{Entry: tok, Reason: "bad rank character"}
		}
		r2, err = ParseRank(tok[1])
		if err != nil {
			return 0, 0, 0, &BadRangeEntryError{Entry: tok, Reason: "bad rank character"}
		}
		suffix = tok[2]
		if suffix != 's' && suffix != 'o' {
			return 0, 0, 0, &BadRangeEntryError{Entry: tok, Reason: "suffix must be 's' or 'o'"}
		}
		return r1, r2, suffix, nil
	}
	return 0, 0, 0, &BadRangeEntryError{Entry: tok, Reason: "hand must be 2 or 3 characters (plus optional +/- modifiers)"}
}

func makeRankPairs(high, low Rank, suffix byte) ([]RankPair, error) {
	switch suffix {
	case 's':
		rp, err := NewSuited(high, low)
		if err != nil {
			return nil, err
		}
		return []RankPair{rp}, nil
	case 'o':
		rp, err := NewOffsuit(high, low)
		if err != nil {
			return nil, err
		}
		return []RankPair{rp}, nil
	default:
		s, err := NewSuited(high, low)
		if err != nil {
			return nil, err
		}
		o, err := NewOffsuit(high, low)
		if err != nil {
			return nil, err
		}
		return []RankPair{s, o}, nil
	}
}

func parseSingleHand(tok string) ([]RankPair, error) {
	r1, r2, suffix, err := handCore(tok)
	if err != nil {
		return nil, err
	}
	if r1 == r2 {
		if suffix != 0 {
			return nil, &BadRangeEntryError{Entry: tok, Reason: "pocket pairs take no suited/offsuit suffix"}
		}
		return []RankPair{NewPocket(r1)}, nil
	}
	if r1 > r2 {
		return nil, &BadRangeEntryError{Entry: tok, Reason: "high rank must precede low rank"}
	}
	return makeRankPairs(r1, r2, suffix)
}

// parsePlusRange handles "RR+", "RRs+", "RRo+".
func parsePlusRange(tok string) ([]RankPair, error) {
	core := strings.TrimSuffix(tok, "+")
	r1, r2, suffix, err := handCore(core)
	if err != nil {
		return nil, err
	}
	if r1 == r2 {
		if suffix != 0 {
			return nil, &BadRangeEntryError{Entry: tok, Reason: "pocket pairs take no suited/offsuit suffix"}
		}
		var out []RankPair
		for r := r1; ; {
			out = append(out, NewPocket(r))
			next, ok := r.Next()
			if !ok {
				break
			}
			r = next
		}
		return out, nil
	}
	if r1 > r2 {
		return nil, &BadRangeEntryError{Entry: tok, Reason: "high rank must precede low rank"}
	}
	high := r1
	// The kicker walk runs from r2 up to the strongest rank still weaker
	// than high (high.Prev(), since Prev increases ordinal toward Deuce),
	// inclusive.
	weakestBound, ok := high.Prev()
	if !ok {
		return nil, &BadRangeEntryError{Entry: tok, Reason: "high rank has no weaker kicker available"}
	}
	var out []RankPair
	for k := r2; k >= weakestBound; {
		rps, merr := makeRankPairs(high, k, suffix)
		if merr != nil {
			return nil, merr
		}
		out = append(out, rps...)
		if k == weakestBound {
			break
		}
		next, ok := k.Next()
		if !ok {
			break
		}
		k = next
	}
	return out, nil
}

// parseDescendingRange handles "HRs-LRs", "HRo-LRo", "HR-LR".
func parseDescendingRange(tok string) ([]RankPair, error) {
	idx := strings.IndexByte(tok, '-')
	left, right := tok[:idx], tok[idx+1:]
	lh, ll, lsuf, err := handCore(left)
	if err != nil {
		return nil, err
	}
	rh, rl, rsuf, err := handCore(right)
	if err != nil {
		return nil, err
	}
	if lh == ll || rh == rl {
		return nil, &BadRangeEntryError{Entry: tok, Reason: "descending range requires non-pocket hands on both sides"}
	}
	if lh > ll || rh > rl {
		return nil, &BadRangeEntryError{Entry: tok, Reason: "high rank must precede low rank on both sides"}
	}
	if lh != rh {
		return nil, &BadRangeEntryError{Entry: tok, Reason: "descending range must share the same high card"}
	}
	if lsuf != rsuf {
		return nil, &BadRangeEntryError{Entry: tok, Reason: "descending range must share the same suited/offsuit suffix"}
	}
	if ll > rl {
		return nil, &BadRangeEntryError{Entry: tok, Reason: "first kicker must be stronger than or equal to the second"}
	}
	high := lh
	var out []RankPair
	for k := ll; ; {
		rps, merr := makeRankPairs(high, k, lsuf)
		if merr != nil {
			return nil, merr
		}
		out = append(out, rps...)
		if k == rl {
			break
		}
		next, ok := k.Prev()
		if !ok {
			break
		}
		k = next
	}
	return out, nil
}
