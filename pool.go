package riichi

// CopiesPerTile is the number of physical copies of each tile id in a
// standard set.
const CopiesPerTile = 4

// UniverseSize is the total tile count in a standard set (34 ids * 4
// copies).
const UniverseSize = NumTiles * CopiesPerTile

// Pool is the live wall: the multiset of tiles not yet accounted for as
// visible (a player's own hand, declared melds, discards, and dora
// indicators), the population a simulated draw samples from. Pool
// generalises the deck-as-remaining-cards idea to a count-array
// representation, since mahjong draws are tracked by id multiplicity
// rather than by a single physical ordering.
type Pool struct {
	counts CountArray
}

// NewPool builds the pool complementary to visible: for each id, the
// number of copies not already accounted for. Returns
// [InvariantViolation] if any id's visible count exceeds [CopiesPerTile].
func NewPool(visible CountArray) (*Pool, error) {
	p := &Pool{}
	for id := TileId(0); id < NumTiles; id++ {
		if visible[id] > CopiesPerTile {
			return nil, InvariantViolation
		}
		p.counts[id] = CopiesPerTile - visible[id]
	}
	return p, nil
}

// Remaining returns the total number of tiles left in the pool.
func (p *Pool) Remaining() int {
	return p.counts.Total()
}

// CountOf returns the number of copies of id remaining in the pool.
func (p *Pool) CountOf(id TileId) int {
	return int(p.counts[id])
}

// Remove takes one copy of id out of the pool (it has been drawn or
// otherwise become visible). Returns [InvariantViolation] if the pool has
// no copies of id left.
func (p *Pool) Remove(id TileId) error {
	if p.counts[id] == 0 {
		return InvariantViolation
	}
	p.counts[id]--
	return nil
}

// Return puts one copy of id back into the pool (eg a simulated draw was
// rejected, or undone). Returns [InvariantViolation] if doing so would
// exceed [CopiesPerTile].
func (p *Pool) Return(id TileId) error {
	if p.counts[id] >= CopiesPerTile {
		return InvariantViolation
	}
	p.counts[id]++
	return nil
}

// Draw samples one tile uniformly at random from the pool's remaining
// tiles (weighted by remaining copy count, since a tile with 3 copies
// left is 3x as likely to be drawn as one with 1), removes it from the
// pool, and returns its id. Returns [EmptyPool] if no tiles remain.
func (p *Pool) Draw(rng RNG) (TileId, error) {
	total := p.Remaining()
	if total == 0 {
		return InvalidTile, EmptyPool
	}
	target := rng.Intn(total)
	for id := TileId(0); id < NumTiles; id++ {
		n := int(p.counts[id])
		if target < n {
			p.counts[id]--
			return id, nil
		}
		target -= n
	}
	// Unreachable: total above is the exact sum of p.counts.
	return InvalidTile, EmptyPool
}

// Snapshot returns a copy of the pool's remaining counts.
func (p *Pool) Snapshot() CountArray {
	return p.counts
}
