package equity

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-odds/holdem"
)

// Window is one shard's contiguous slice of the outer (turn, river)
// enumeration space, in the half-open form holdem.Enumerator.Scope expects.
type Window struct {
	TurnFrom, RiverFrom, TurnTo, RiverTo int
}

// ShardResult is one worker's partial per-player EquityResult slice
// together with the Window it covered. Combined with its sibling shards by
// summation (scope windows are disjoint and additive), never by any other
// means: a shard never sees another shard's showdowns.
type ShardResult struct {
	Window  Window
	Results []EquityResult
}

// Windows splits the full outer (turn, river) window for a deck of
// deckSize cards into `workers` disjoint, contiguous Windows via a
// near-equal split of the turn-index range. The window count is capped at
// deckSize-1, the number of distinct turn values. This is one reasonable
// work-division heuristic, not the only one the core supports: any caller
// may compute its own windows and hand them to holdem.Enumerator.Scope
// directly.
func Windows(deckSize, workers int) []Window {
	if workers < 1 {
		workers = 1
	}
	total := deckSize - 1 // distinct turn values: 0 .. deckSize-2
	if total < 1 {
		return []Window{{TurnFrom: 0, RiverFrom: 1, TurnTo: deckSize - 1, RiverTo: deckSize}}
	}
	if workers > total {
		workers = total
	}

	bounds := make([]int, workers+1)
	for i := 0; i <= workers; i++ {
		bounds[i] = (i * total) / workers
	}

	windows := make([]Window, 0, workers)
	for i := 0; i < workers; i++ {
		turnFrom, turnTo := bounds[i], bounds[i+1]
		riverFrom := turnFrom + 1
		riverTo := turnTo + 1
		if i == workers-1 {
			riverTo = deckSize
		}
		windows = append(windows, Window{turnFrom, riverFrom, turnTo, riverTo})
	}
	return windows
}

// RunSharded enumerates every legal completion of board against ranges,
// partitioning the outer (turn, river) window across `workers` goroutines
// via an errgroup.Group: one holdem.Enumerator per worker, each with its
// own disjoint Scope window. Sharding only applies when exactly two board
// positions are missing (the flop-given case); for any other partial-board
// size the enumeration runs on a single Enumerator regardless of the
// requested worker count, since holdem.Enumerator.Scope is only defined
// there.
//
// Returns one EquityResult per player, combined across every shard. The
// context is checked cooperatively between showdowns; a cancelled context
// stops every worker and returns ctx.Err() rather than a partial result.
func RunSharded(ctx context.Context, board []holdem.Card, ranges []*holdem.HandRange, workers int) ([]EquityResult, error) {
	if workers < 1 {
		workers = 1
	}

	probe, err := holdem.New(board, ranges)
	if err != nil {
		return nil, err
	}

	if len(board) != 3 || workers == 1 {
		return runWindow(ctx, board, ranges, nil)
	}

	windows := Windows(probe.DeckSize(), workers)
	if len(windows) <= 1 {
		return runWindow(ctx, board, ranges, nil)
	}

	g, gctx := errgroup.WithContext(ctx)
	shardResults := make([][]EquityResult, len(windows))
	for i, w := range windows {
		i, w := i, w
		g.Go(func() error {
			res, err := runWindow(gctx, board, ranges, &w)
			if err != nil {
				return err
			}
			shardResults[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	combined := make([]EquityResult, len(ranges))
	for i := range combined {
		combined[i] = NewEquityResult()
	}
	for _, sr := range shardResults {
		for i := range combined {
			combined[i] = Combine(combined[i], sr[i])
		}
	}
	return combined, nil
}

// runWindow drives a single Enumerator, optionally scoped to w, accumulating
// one EquityResult per player. It checks ctx between showdowns so a
// cancelled run stops promptly instead of finishing the full enumeration.
func runWindow(ctx context.Context, board []holdem.Card, ranges []*holdem.HandRange, w *Window) ([]EquityResult, error) {
	enum, err := holdem.New(board, ranges)
	if err != nil {
		return nil, err
	}
	if w != nil {
		if err := enum.Scope(w.TurnFrom, w.RiverFrom, w.TurnTo, w.RiverTo); err != nil {
			return nil, err
		}
	}

	results := make([]EquityResult, len(ranges))
	for i := range results {
		results[i] = NewEquityResult()
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		sd, ok := enum.Next()
		if !ok {
			break
		}
		for i := range results {
			results[i].Add(sd, i)
		}
	}
	return results, nil
}
