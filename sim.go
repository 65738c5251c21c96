package riichi

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// simConfig holds [SimOption] settings.
type simConfig struct {
	trials   int
	maxDraws int
	seed     int64
	workers  int
}

// SimOption configures [Simulate].
type SimOption func(*simConfig)

// WithTrials sets the number of independent trials to run (default 10000).
func WithTrials(n int) SimOption {
	return func(c *simConfig) { c.trials = n }
}

// WithMaxDraws caps how many tiles a single trial draws before it's
// scored as a non-tenpai (default 18, roughly a full hand's worth of
// turns).
func WithMaxDraws(n int) SimOption {
	return func(c *simConfig) { c.maxDraws = n }
}

// WithSeed sets the master RNG seed (default 1). Each worker derives its
// own stream from this seed so results are reproducible for a fixed
// (seed, workers) pair.
func WithSeed(seed int64) SimOption {
	return func(c *simConfig) { c.seed = seed }
}

// WithWorkers sets the number of shards trials are split across (default
// runtime.NumCPU()).
func WithWorkers(n int) SimOption {
	return func(c *simConfig) { c.workers = n }
}

// SimResult is the aggregate outcome of a Monte-Carlo self-draw
// simulation: a time-to-ready (tenpai) distribution as a per-turn
// histogram plus averages over the successful trials.
//
// Won additionally counts the degenerate case where the hand is already
// tenpai on entry and its very first draw is itself the winning tile;
// for hands that start below tenpai this can never fire, since a trial's
// reported event is whichever comes first, reaching tenpai or exhausting
// maxDraws, and once a tenpai event is reported the trial stops
// advancing.
type SimResult struct {
	Trials int
	// Tenpai is the number of trials that reached shanten 0 within
	// maxDraws (including hands that started there).
	Tenpai int
	// DrawsToTenpai holds, for each trial counted in Tenpai, the draw
	// number on which tenpai was reached (0 for hands already tenpai on
	// entry).
	DrawsToTenpai []int
	// UkiereAtTenpai holds, parallel to DrawsToTenpai, the size of the
	// ukiere set at the moment tenpai was reached.
	UkiereAtTenpai []int
	// Won counts trials where the hand was already tenpai on entry and
	// its first draw completed it.
	Won int
	// Exhausted counts trials cut short because the pool ran dry before
	// tenpai or the draw limit was reached (the [EmptyPool] condition,
	// reported as a distinct outcome rather than folded into plain
	// non-tenpai trials).
	Exhausted int
}

// TenpaiRate returns Tenpai/Trials, or 0 if no trials ran.
func (r SimResult) TenpaiRate() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.Tenpai) / float64(r.Trials)
}

// MeanDrawsToTenpai returns the average draw count across trials that
// reached tenpai, or 0 if none did.
func (r SimResult) MeanDrawsToTenpai() float64 {
	return meanInts(r.DrawsToTenpai)
}

// MeanUkiereAtTenpai returns the average ukiere-set size at the moment
// tenpai was reached, across trials that reached it, or 0 if none did.
func (r SimResult) MeanUkiereAtTenpai() float64 {
	return meanInts(r.UkiereAtTenpai)
}

// TenpaiHistogram buckets DrawsToTenpai by draw number, turn -> count of
// trials that first reached tenpai on that turn.
func (r SimResult) TenpaiHistogram() map[int]int {
	h := make(map[int]int)
	for _, d := range r.DrawsToTenpai {
		h[d]++
	}
	return h
}

func meanInts(xs []int) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum int
	for _, x := range xs {
		sum += x
	}
	return float64(sum) / float64(len(xs))
}

// Simulate runs a Monte-Carlo self-draw simulation from a pre-draw hand,
// estimating the distribution of turns until tenpai (shanten 0).
//
// Each trial draws one tile at a time from the pool complementary to
// visible and, unless the hand started already tenpai and the draw itself
// completes it, applies the maximum-ukiere discard policy ([AnalyzeDiscards]
// with upgrade analysis disabled, since only the top candidate is used) to
// choose a discard; a trial's reported event is whichever comes first,
// reaching tenpai or exhausting maxDraws.
//
// Trials are split into [WithWorkers] shards and run concurrently via
// errgroup.Group, each with its own seeded [RNG] stream so shards never
// share draw sequences, and each owning a private discard-decision cache
// keyed by the pre-draw hand reached plus the drawn tile, avoiding a
// lock on the hot path by never sharing the cache across goroutines.
// Every shard
// checks ctx between trials; in-trial work always runs to completion.
//
// Returns [MalformedInput] if hand is not a pre-draw size (13 concealed
// tiles less 3 per declared meld).
func Simulate(ctx context.Context, hand CountArray, visible CountArray, opts ...SimOption) (SimResult, error) {
	if _, err := preDrawShape(hand); err != nil {
		return SimResult{}, err
	}
	cfg := simConfig{trials: 10000, maxDraws: 18, seed: 1, workers: runtime.NumCPU()}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}
	if cfg.trials < cfg.workers {
		cfg.workers = maxInt(cfg.trials, 1)
	}

	basePool, err := NewPool(visible)
	if err != nil {
		return SimResult{}, err
	}

	perWorker := make([]SimResult, cfg.workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.workers; w++ {
		w := w
		lo, hi := shardBounds(cfg.trials, cfg.workers, w)
		g.Go(func() error {
			rng := NewRNG(cfg.seed ^ int64(w)*(-7046029254386353131))
			cache := make(discardCache)
			var res SimResult
			for t := lo; t < hi; t++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				outcome, err := runTrial(hand, *basePool, rng, cfg.maxDraws, cache)
				if err != nil {
					return err
				}
				res.Trials++
				if outcome.won {
					res.Won++
				}
				if outcome.exhausted {
					res.Exhausted++
				}
				if outcome.tenpai {
					res.Tenpai++
					res.DrawsToTenpai = append(res.DrawsToTenpai, outcome.draws)
					res.UkiereAtTenpai = append(res.UkiereAtTenpai, outcome.ukiereCount)
				}
			}
			perWorker[w] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SimResult{}, err
	}
	var total SimResult
	for _, r := range perWorker {
		total.Trials += r.Trials
		total.Tenpai += r.Tenpai
		total.Won += r.Won
		total.Exhausted += r.Exhausted
		total.DrawsToTenpai = append(total.DrawsToTenpai, r.DrawsToTenpai...)
		total.UkiereAtTenpai = append(total.UkiereAtTenpai, r.UkiereAtTenpai...)
	}
	return total, nil
}

// shardBounds splits n trials into count contiguous shards, returning the
// [lo, hi) range owned by shard index.
func shardBounds(n, count, index int) (int, int) {
	base := n / count
	rem := n % count
	lo := index*base + minInt(index, rem)
	hi := lo + base
	if index < rem {
		hi++
	}
	return lo, hi
}

// cachedDiscard is one worker's memoised answer to "given this 13-tile
// hand and this drawn tile, which discard does the max-ukiere policy
// choose, and what shanten/ukiere does it leave".
type cachedDiscard struct {
	tile        TileId
	shanten     int
	ukiereCount int
}

// discardCache memoises cachedDiscard lookups per (pre-draw 13-tile hand,
// drawn tile), read and written by exactly one goroutine (one per
// simulation shard), so it needs no synchronization.
type discardCache map[CountArray]map[TileId]cachedDiscard

func (c discardCache) lookup(h13 CountArray, drawn TileId) (cachedDiscard, error) {
	byDraw, ok := c[h13]
	if !ok {
		byDraw = make(map[TileId]cachedDiscard)
		c[h13] = byDraw
	}
	if cd, ok := byDraw[drawn]; ok {
		return cd, nil
	}
	analysis, err := AnalyzeDiscards(h13.Add(drawn), WithUpgrades(false))
	if err != nil {
		return cachedDiscard{}, err
	}
	best := analysis.Candidates[0]
	cd := cachedDiscard{tile: best.Tile, shanten: best.Shanten, ukiereCount: best.UkiereCount}
	byDraw[drawn] = cd
	return cd, nil
}

// trialOutcome is what one simulated trial produced.
type trialOutcome struct {
	tenpai      bool
	draws       int
	ukiereCount int
	won         bool
	exhausted   bool
}

// runTrial plays one simulated hand until it reaches tenpai or maxDraws is
// exhausted, against its own private copy of pool (passed by value:
// [Pool]'s only field is a fixed-size array, so this is a cheap,
// independent snapshot per trial).
func runTrial(hand CountArray, pool Pool, rng RNG, maxDraws int, cache discardCache) (trialOutcome, error) {
	base, err := ComputeShanten(hand)
	if err != nil {
		return trialOutcome{}, err
	}
	if base.Best() == 0 {
		// Already tenpai on entry: the first draw may itself be the
		// winning tile. The event is reported at draws=0 regardless,
		// since tenpai was already reached before any draw occurred.
		tile, err := pool.Draw(rng)
		if errors.Is(err, EmptyPool) {
			u, _, err := Ukiere(hand)
			if err != nil {
				return trialOutcome{}, err
			}
			return trialOutcome{tenpai: true, draws: 0, ukiereCount: len(u)}, nil
		}
		if err != nil {
			return trialOutcome{}, err
		}
		win, err := IsWinning(hand.Add(tile))
		if err != nil {
			return trialOutcome{}, err
		}
		u, _, err := Ukiere(hand)
		if err != nil {
			return trialOutcome{}, err
		}
		return trialOutcome{tenpai: true, draws: 0, ukiereCount: len(u), won: win}, nil
	}
	h := hand
	for draws := 1; draws <= maxDraws; draws++ {
		tile, err := pool.Draw(rng)
		if errors.Is(err, EmptyPool) {
			return trialOutcome{exhausted: true}, nil
		}
		if err != nil {
			return trialOutcome{}, err
		}
		cd, err := cache.lookup(h, tile)
		if err != nil {
			return trialOutcome{}, err
		}
		h = h.Add(tile).Remove(cd.tile)
		if cd.shanten == 0 {
			return trialOutcome{tenpai: true, draws: draws, ukiereCount: cd.ukiereCount}, nil
		}
	}
	return trialOutcome{}, nil
}
