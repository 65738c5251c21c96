package riichi

import "testing"

func TestBlockTiles(t *testing.T) {
	m1 := TileFromSuitRank(Man, 1)
	tests := []struct {
		block Block
		want  int
	}{
		{Pair(m1), 2},
		{Triplet(m1), 3},
		{Sequence(m1), 3},
		{PartialPair(m1), 2},
		{PartialRyanmen(m1), 2},
		{PartialKanchan(m1), 2},
		{PartialPenchan(m1), 2},
		{Isolated(m1), 1},
	}
	for i, test := range tests {
		if got := len(test.block.Tiles()); got != test.want {
			t.Errorf("test %d: len(Tiles()) = %d, want %d", i, got, test.want)
		}
	}
}

func TestClassifyRunEdges(t *testing.T) {
	one := TileFromSuitRank(Man, 1)
	eight := TileFromSuitRank(Man, 8)
	four := TileFromSuitRank(Man, 4)
	tests := []struct {
		name string
		low  TileId
		gap  int
		want BlockKind
	}{
		{"12 penchan (low edge)", one, 1, BlockPartialPenchan},
		{"89 penchan (high edge)", eight, 1, BlockPartialPenchan},
		{"45 ryanmen", four, 1, BlockPartialRyanmen},
		{"46 kanchan", four, 2, BlockPartialKanchan},
	}
	for _, test := range tests {
		if got := classifyRun(test.low, test.gap); got != test.want {
			t.Errorf("%s: classifyRun = %s, want %s", test.name, got, test.want)
		}
	}
}

func TestCompletionTilesRyanmen(t *testing.T) {
	four := TileFromSuitRank(Man, 4) // holds 4m5m, waits 3m/6m
	b := PartialRyanmen(four)
	got := b.CompletionTiles()
	want := []TileId{TileFromSuitRank(Man, 3), TileFromSuitRank(Man, 6)}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("CompletionTiles() = %v, want %v", got, want)
	}
}

func TestCompletionTilesPenchanEdges(t *testing.T) {
	one := TileFromSuitRank(Man, 1) // holds 1m2m, waits 3m only
	low := PartialPenchan(one)
	if got := low.CompletionTiles(); len(got) != 1 || got[0] != TileFromSuitRank(Man, 3) {
		t.Fatalf("low-edge penchan CompletionTiles() = %v, want [3m]", got)
	}
	eight := TileFromSuitRank(Man, 8) // holds 8m9m, waits 7m only
	high := PartialPenchan(eight)
	if got := high.CompletionTiles(); len(got) != 1 || got[0] != TileFromSuitRank(Man, 7) {
		t.Fatalf("high-edge penchan CompletionTiles() = %v, want [7m]", got)
	}
}

func TestCompletionTilesKanchan(t *testing.T) {
	four := TileFromSuitRank(Man, 4) // holds 4m6m, waits 5m
	b := PartialKanchan(four)
	if got := b.CompletionTiles(); len(got) != 1 || got[0] != TileFromSuitRank(Man, 5) {
		t.Fatalf("CompletionTiles() = %v, want [5m]", got)
	}
}

func TestBlockLessOrdersByKindThenTile(t *testing.T) {
	a := Pair(TileFromSuitRank(Man, 1))
	b := Pair(TileFromSuitRank(Man, 2))
	c := Triplet(TileFromSuitRank(Man, 1))
	if !a.Less(b) {
		t.Error("Pair(1m) should sort before Pair(2m)")
	}
	if !a.Less(c) {
		t.Error("Pair should sort before Triplet regardless of tile id")
	}
}
