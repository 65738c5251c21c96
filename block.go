package riichi

import "fmt"

// BlockKind is the tag of a [Block].
type BlockKind uint8

// Block kinds, ordered by their canonical sort rank (see [Block.Less]).
const (
	BlockPair BlockKind = iota
	BlockTriplet
	BlockSequence
	BlockPartialPair
	BlockPartialRyanmen
	BlockPartialKanchan
	BlockPartialPenchan
	BlockIsolated
)

// String satisfies the [fmt.Stringer] interface.
func (k BlockKind) String() string {
	switch k {
	case BlockPair:
		return "pair"
	case BlockTriplet:
		return "triplet"
	case BlockSequence:
		return "sequence"
	case BlockPartialPair:
		return "partial-pair"
	case BlockPartialRyanmen:
		return "partial-ryanmen"
	case BlockPartialKanchan:
		return "partial-kanchan"
	case BlockPartialPenchan:
		return "partial-penchan"
	case BlockIsolated:
		return "isolated"
	}
	return "?"
}

// Complete reports whether the block kind contributes 3 tiles toward a
// finished meld (triplet or sequence).
func (k BlockKind) Complete() bool {
	return k == BlockTriplet || k == BlockSequence
}

// Partial reports whether the block kind is a two-tile partial awaiting
// one specific tile.
func (k BlockKind) Partial() bool {
	switch k {
	case BlockPartialPair, BlockPartialRyanmen, BlockPartialKanchan, BlockPartialPenchan:
		return true
	}
	return false
}

// Block is a structural group within a hand decomposition: a pair,
// triplet, sequence, one of three partial-run kinds, a partial pair, or a
// single isolated tile.
//
// For [BlockPair], [BlockTriplet], [BlockPartialPair], and [BlockIsolated],
// ID names the tile. For [BlockSequence] and the partial-run kinds, Low
// names the lowest-rank tile of the (proto-)sequence; its suit is Low's
// suit.
type Block struct {
	Kind BlockKind
	ID   TileId
	Low  TileId
}

// Pair creates a completed pair block.
func Pair(id TileId) Block { return Block{Kind: BlockPair, ID: id} }

// Triplet creates a completed triplet block.
func Triplet(id TileId) Block { return Block{Kind: BlockTriplet, ID: id} }

// Sequence creates a completed sequence block starting at low.
func Sequence(low TileId) Block { return Block{Kind: BlockSequence, Low: low} }

// PartialPair creates a partial block (two of a kind, awaiting a third).
func PartialPair(id TileId) Block { return Block{Kind: BlockPartialPair, ID: id} }

// PartialRyanmen creates a two-sided partial run starting at low, waiting
// on low-1 or low+2.
func PartialRyanmen(low TileId) Block { return Block{Kind: BlockPartialRyanmen, Low: low} }

// PartialKanchan creates a closed (gapped) partial run starting at low,
// waiting on low+1.
func PartialKanchan(low TileId) Block { return Block{Kind: BlockPartialKanchan, Low: low} }

// PartialPenchan creates a one-sided edge partial run starting at low,
// waiting on the single tile that completes it.
func PartialPenchan(low TileId) Block { return Block{Kind: BlockPartialPenchan, Low: low} }

// Isolated creates an isolated single-tile block.
func Isolated(id TileId) Block { return Block{Kind: BlockIsolated, ID: id} }

// FirstID returns the block's canonical sort key tile: ID for pair-like
// and isolated blocks, Low for sequence-like blocks.
func (b Block) FirstID() TileId {
	switch b.Kind {
	case BlockSequence, BlockPartialRyanmen, BlockPartialKanchan, BlockPartialPenchan:
		return b.Low
	}
	return b.ID
}

// Less reports whether b sorts before other under the canonical
// (kind-rank, first-tile-id) decomposition order.
func (b Block) Less(other Block) bool {
	if b.Kind != other.Kind {
		return b.Kind < other.Kind
	}
	return b.FirstID() < other.FirstID()
}

// Tiles returns the tile ids the block consumes from the source
// [CountArray], one entry per occupied slot.
func (b Block) Tiles() []TileId {
	switch b.Kind {
	case BlockPair, BlockPartialPair:
		return []TileId{b.ID, b.ID}
	case BlockTriplet:
		return []TileId{b.ID, b.ID, b.ID}
	case BlockSequence:
		return []TileId{b.Low, b.Low + 1, b.Low + 2}
	case BlockPartialRyanmen, BlockPartialKanchan:
		return []TileId{b.Low, b.Low + waitGap(b.Kind)}
	case BlockPartialPenchan:
		return []TileId{b.Low, b.Low + 1}
	case BlockIsolated:
		return []TileId{b.ID}
	}
	return nil
}

// waitGap returns the tile offset of the second occupied tile for the
// gapped partial-run kinds (ryanmen: +1, kanchan: +2).
func waitGap(k BlockKind) TileId {
	if k == BlockPartialKanchan {
		return 2
	}
	return 1
}

// CompletionTiles returns the tile ids that would complete a partial
// block. Returns nil for complete or isolated blocks.
func (b Block) CompletionTiles() []TileId {
	switch b.Kind {
	case BlockPartialPair:
		return []TileId{b.ID}
	case BlockPartialKanchan:
		return []TileId{b.Low + 1}
	case BlockPartialPenchan:
		if b.Low.Rank() == 1 {
			return []TileId{b.Low + 2}
		}
		return []TileId{b.Low - 1}
	case BlockPartialRyanmen:
		return []TileId{b.Low - 1, b.Low + 2}
	}
	return nil
}

// String satisfies the [fmt.Stringer] interface.
func (b Block) String() string {
	switch b.Kind {
	case BlockSequence, BlockPartialRyanmen, BlockPartialKanchan, BlockPartialPenchan:
		return fmt.Sprintf("%s(%s)", b.Kind, b.Low)
	default:
		return fmt.Sprintf("%s(%s)", b.Kind, b.ID)
	}
}

// classifyRun returns the partial-run [BlockKind] for a proto-run starting
// at low with a gap of 1 (adjacent, ryanmen/penchan) or 2 (kanchan).
func classifyRun(low TileId, gap int) BlockKind {
	if gap == 2 {
		return BlockPartialKanchan
	}
	lowRank := low.Rank()
	hiRank := (low + 1).Rank()
	if lowRank == 1 || hiRank == 9 {
		return BlockPartialPenchan
	}
	return BlockPartialRyanmen
}
