package riichi

import (
	"context"
	"fmt"
)

// Meld is a declared open meld: a completed [Block] (triplet or sequence)
// taken from another player, together with the tile id that was called and
// the seat it was called from. Meld metadata never affects shanten
// arithmetic; it is read only by [Hand.TotalTileCount] and [Hand.String].
// The analyser entry points derive the meld count from the concealed
// total instead.
type Meld struct {
	Block      Block
	CalledTile TileId
	FromSeat   int
}

// Hand bundles a concealed tile multiset with the metadata that the raw
// shape and shanten primitives don't need but the discard analyser,
// tenpai resolver, and simulator do: declared melds, the owning player's own
// discard pool (for furiten), and the tiles visible to every player
// (discards, dora indicators, and one's own hand).
//
// None of Melds, Discards, or Visible affects [ComputeShanten] or
// [Ukiere]. Discards and Visible drive furiten and dead-wait
// classification in [Hand.ResolveWait], and Visible also sets the draw
// pool for [Hand.Simulate].
type Hand struct {
	Concealed CountArray
	Melds     []Meld
	Discards  []TileId
	Visible   CountArray
}

// NewHand creates a hand from a concealed [CountArray] with no declared
// melds, discards, or visible-tile tracking.
func NewHand(concealed CountArray) *Hand {
	return &Hand{Concealed: concealed}
}

// TotalTileCount returns the concealed tile count plus 3 per declared meld
// (the canonical 13 or 14 total a player holds once open melds count).
func (h *Hand) TotalTileCount() int {
	return h.Concealed.Total() + 3*len(h.Melds)
}

// Discarded reports whether id appears anywhere in the hand's own discard
// pool, the basis of furiten.
func (h *Hand) Discarded(id TileId) bool {
	for _, d := range h.Discards {
		if d == id {
			return true
		}
	}
	return false
}

// String satisfies the [fmt.Stringer] interface.
func (h *Hand) String() string {
	s := h.Concealed.String()
	for _, m := range h.Melds {
		s += fmt.Sprintf(" [%s]", m.Block)
	}
	return s
}

// ResolveWait resolves the wait set for h's concealed tiles, using h's own
// discard pool and visible-tile universe for furiten and dead-wait
// classification. See [ResolveWait].
func (h *Hand) ResolveWait() (WaitResult, error) {
	return ResolveWait(h.Concealed, h.Discards, h.Visible)
}

// AnalyzeDiscards ranks every discard from h's 14-tile concealed hand. See
// [AnalyzeDiscards].
func (h *Hand) AnalyzeDiscards(opts ...AnalyzeOption) (DiscardAnalysis, error) {
	return AnalyzeDiscards(h.Concealed, opts...)
}

// Simulate runs a Monte-Carlo self-draw simulation from h's 13-tile
// concealed hand against h's visible-tile universe. See [Simulate].
func (h *Hand) Simulate(ctx context.Context, opts ...SimOption) (SimResult, error) {
	return Simulate(ctx, h.Concealed, h.Visible, opts...)
}
