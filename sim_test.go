package riichi

import (
	"context"
	"testing"
)

func TestSimulateWrongSize(t *testing.T) {
	hand := mustParse(t, "123456789m11p234s") // 14 tiles
	if _, err := Simulate(context.Background(), hand, hand); err == nil {
		t.Fatal("expected MalformedInput for a 14-tile hand")
	}
}

func TestSimulateDeterministicForFixedSeed(t *testing.T) {
	hand := mustParse(t, "34789m111234p22s")
	opts := []SimOption{WithTrials(200), WithWorkers(3), WithSeed(9), WithMaxDraws(10)}
	a, err := Simulate(context.Background(), hand, hand, opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Simulate(context.Background(), hand, hand, opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Trials != b.Trials || a.Tenpai != b.Tenpai {
		t.Fatalf("runs with identical options diverged: %+v vs %+v", a, b)
	}
}

func TestSimulateReturnsPlausibleResult(t *testing.T) {
	hand := mustParse(t, "34789m111234p22s")
	res, err := Simulate(context.Background(), hand, hand, WithTrials(100), WithWorkers(2), WithMaxDraws(8))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Trials != 100 {
		t.Fatalf("Trials = %d, want 100", res.Trials)
	}
	if res.Tenpai < 0 || res.Tenpai > res.Trials {
		t.Fatalf("Tenpai = %d out of range [0, %d]", res.Tenpai, res.Trials)
	}
	if len(res.DrawsToTenpai) != res.Tenpai || len(res.UkiereAtTenpai) != res.Tenpai {
		t.Fatalf("len(DrawsToTenpai)=%d len(UkiereAtTenpai)=%d, want %d", len(res.DrawsToTenpai), len(res.UkiereAtTenpai), res.Tenpai)
	}
	if rate := res.TenpaiRate(); rate < 0 || rate > 1 {
		t.Fatalf("TenpaiRate() = %f, out of range", rate)
	}
	// This hand is already tenpai (a live ryanmen on 2m/5m via the loose
	// 3m4m): every trial reaches tenpai immediately at draws=0.
	if res.Tenpai != res.Trials {
		t.Fatalf("Tenpai = %d, want %d (hand starts tenpai)", res.Tenpai, res.Trials)
	}
	for _, d := range res.DrawsToTenpai {
		if d != 0 {
			t.Fatalf("DrawsToTenpai entry = %d, want 0 for an already-tenpai hand", d)
		}
	}
}

func TestSimulateFromShantenOneReachesTenpaiEventually(t *testing.T) {
	hand := mustParse(t, "34789m111245p22s") // one away from the ryanmen tenpai above
	res, err := Simulate(context.Background(), hand, hand, WithTrials(200), WithWorkers(2), WithMaxDraws(12))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, d := range res.DrawsToTenpai {
		if d < 1 {
			t.Fatalf("DrawsToTenpai entry = %d, want >= 1 for a shanten-1 hand", d)
		}
	}
	if res.Tenpai == 0 {
		t.Fatal("expected at least one trial to reach tenpai within 12 draws")
	}
}

func TestSimulateRespectsContextCancellation(t *testing.T) {
	hand := mustParse(t, "34789m111234p22s")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Simulate(ctx, hand, hand, WithTrials(1000), WithWorkers(4)); err == nil {
		t.Fatal("expected an error from a pre-cancelled context")
	}
}

func TestShardBoundsCoversAllTrialsWithoutOverlap(t *testing.T) {
	for _, tc := range []struct{ n, count int }{
		{10, 3}, {7, 7}, {1, 4}, {100, 6},
	} {
		covered := make([]bool, tc.n)
		for i := 0; i < tc.count; i++ {
			lo, hi := shardBounds(tc.n, tc.count, i)
			for j := lo; j < hi; j++ {
				if covered[j] {
					t.Fatalf("n=%d count=%d: index %d covered twice", tc.n, tc.count, j)
				}
				covered[j] = true
			}
		}
		for j, ok := range covered {
			if !ok {
				t.Fatalf("n=%d count=%d: index %d never covered", tc.n, tc.count, j)
			}
		}
	}
}

func TestRunTrialWinsWhenAlreadyTenpaiAndSoleWaitIsDrawn(t *testing.T) {
	hand := mustParse(t, "123456789m1122p") // shanpon tenpai on 1p/2p
	onePin := TileFromSuitRank(Pin, 1)
	var visible CountArray
	for id := TileId(0); id < NumTiles; id++ {
		visible[id] = CopiesPerTile
	}
	visible[onePin] = CopiesPerTile - 1 // exactly one 1p left in the pool
	pool, err := NewPool(visible)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := runTrial(hand, *pool, stubRNG{}, 5, make(discardCache))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.tenpai || !out.won {
		t.Fatalf("expected tenpai+won drawing the sole remaining wait tile, got %+v", out)
	}
	if out.draws != 0 {
		t.Fatalf("draws = %d, want 0 (already tenpai on entry)", out.draws)
	}
}

func TestRunTrialReachesTenpaiFromShantenOne(t *testing.T) {
	hand := mustParse(t, "34789m111245p22s")
	var visible CountArray
	reached := false
	for seed := int64(1); seed <= 20; seed++ {
		pool, err := NewPool(visible)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out, err := runTrial(hand, *pool, NewRNG(seed), 18, make(discardCache))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.tenpai {
			if out.draws < 1 {
				t.Fatalf("draws = %d, want >= 1 for a shanten-1 hand", out.draws)
			}
			reached = true
		}
	}
	if !reached {
		t.Fatal("expected at least one seed to reach tenpai from shanten 1 within 18 draws")
	}
}

func TestRunTrialReportsExhaustedPool(t *testing.T) {
	hand := mustParse(t, "34789m111245p22s") // shanten 1
	oneZ := TileFromSuitRank(Honor, 1)
	var visible CountArray
	for id := TileId(0); id < NumTiles; id++ {
		visible[id] = CopiesPerTile
	}
	visible[oneZ] = CopiesPerTile - 1 // a single useless 1z is all that remains
	pool, err := NewPool(visible)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := runTrial(hand, *pool, stubRNG{}, 18, make(discardCache))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.tenpai {
		t.Fatalf("expected no tenpai from a one-tile pool, got %+v", out)
	}
	if !out.exhausted {
		t.Fatalf("expected the exhausted-pool outcome, got %+v", out)
	}
}

func TestSimResultAggregateHelpers(t *testing.T) {
	r := SimResult{
		Trials:         4,
		Tenpai:         2,
		DrawsToTenpai:  []int{2, 4},
		UkiereAtTenpai: []int{6, 10},
	}
	if rate := r.TenpaiRate(); rate != 0.5 {
		t.Fatalf("TenpaiRate() = %f, want 0.5", rate)
	}
	if mean := r.MeanDrawsToTenpai(); mean != 3 {
		t.Fatalf("MeanDrawsToTenpai() = %f, want 3", mean)
	}
	if mean := r.MeanUkiereAtTenpai(); mean != 8 {
		t.Fatalf("MeanUkiereAtTenpai() = %f, want 8", mean)
	}
	hist := r.TenpaiHistogram()
	if hist[2] != 1 || hist[4] != 1 {
		t.Fatalf("TenpaiHistogram() = %v, want {2:1, 4:1}", hist)
	}
	var empty SimResult
	if empty.TenpaiRate() != 0 || empty.MeanDrawsToTenpai() != 0 || empty.MeanUkiereAtTenpai() != 0 {
		t.Fatal("zero-trial SimResult helpers should all return 0")
	}
}
