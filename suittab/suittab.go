// Package suittab precomputes per-suit decomposition profiles: for every
// 9-rank tile-count vector a single numeric suit can hold, the set of
// (complete blocks, partial blocks, has-pair) combinations reachable by
// grouping that suit's tiles alone into pairs, triplets, sequences, and
// partials.
//
// The parent package's standard-shanten computation looks up each numeric
// suit's profile set here (and honors via [HonorProfiles]) and composes
// the four groups; restricting the recursive grouping to one suit's 9
// slots and memoizing the result turns each per-suit sub-search into a
// map lookup.
package suittab

// Profile is one reachable grouping outcome for a suit's rank-count
// vector.
type Profile struct {
	Complete int
	Partial  int
	HasPair  bool
}

// maxPrecomputed is the largest single-suit tile total the package
// precomputes at init. A flush (chinitsu) hand can hold more than this in
// one suit; those rare vectors fall back to computing the profile set on
// the fly in [Lookup], uncached.
const maxPrecomputed = 9

// table maps a suit's encoded rank-count vector (see [Key]) to its
// deduplicated profile set, for every vector with total tiles <=
// maxPrecomputed.
var table map[uint32][]Profile

func init() {
	table = build()
}

// Key encodes a suit's 9 rank counts (each 0-4) as a base-5 integer,
// suitable as a map key.
func Key(counts [9]uint8) uint32 {
	var k uint32
	for _, c := range counts {
		k = k*5 + uint32(c)
	}
	return k
}

// Lookup returns every profile reachable from counts, using the
// precomputed table when the suit total is within maxPrecomputed and
// falling back to direct computation otherwise.
func Lookup(counts [9]uint8) []Profile {
	var total int
	for _, c := range counts {
		total += int(c)
	}
	if total <= maxPrecomputed {
		return table[Key(counts)]
	}
	return profilesFor(counts)
}

// build enumerates every rank-count vector with total <= maxPrecomputed
// and computes its profile set.
func build() map[uint32][]Profile {
	t := make(map[uint32][]Profile, 20000)
	var counts [9]uint8
	var walk func(i, total int)
	walk = func(i, total int) {
		if i == 9 {
			t[Key(counts)] = profilesFor(counts)
			return
		}
		for c := uint8(0); c <= 4; c++ {
			if total+int(c) > maxPrecomputed {
				break
			}
			counts[i] = c
			walk(i+1, total+int(c))
		}
		counts[i] = 0
	}
	walk(0, 0)
	return t
}

// profilesFor enumerates every distinct (complete, partial, hasPair)
// reachable from a suit's rank counts, backtracking over pair, triplet,
// sequence, and partial extraction at the lowest nonzero rank each step
// (the same shape as the whole-hand decomposer, specialised to one suit's
// 9 consecutive ranks so runs never need a suit check).
func profilesFor(counts [9]uint8) []Profile {
	seen := make(map[Profile]bool)
	var out []Profile
	var rec func(c [9]uint8, complete, partial int, hasPair bool)
	rec = func(c [9]uint8, complete, partial int, hasPair bool) {
		i := lowestNonzero(c)
		if i < 0 {
			p := Profile{Complete: complete, Partial: partial, HasPair: hasPair}
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
			return
		}
		if !hasPair && c[i] >= 2 {
			d := c
			d[i] -= 2
			rec(d, complete, partial, true)
		}
		if c[i] >= 3 {
			d := c
			d[i] -= 3
			rec(d, complete+1, partial, hasPair)
		}
		if i+2 < 9 && c[i+1] > 0 && c[i+2] > 0 {
			d := c
			d[i]--
			d[i+1]--
			d[i+2]--
			rec(d, complete+1, partial, hasPair)
		}
		if c[i] >= 2 {
			d := c
			d[i] -= 2
			rec(d, complete, partial+1, hasPair)
		}
		if i+1 < 9 && c[i+1] > 0 {
			d := c
			d[i]--
			d[i+1]--
			rec(d, complete, partial+1, hasPair)
		}
		if i+2 < 9 && c[i+2] > 0 {
			d := c
			d[i]--
			d[i+2]--
			rec(d, complete, partial+1, hasPair)
		}
		d := c
		d[i]--
		rec(d, complete, partial, hasPair)
	}
	rec(counts, 0, 0, false)
	return out
}

// lowestNonzero returns the index of the first nonzero rank count, or -1
// if all nine are zero.
func lowestNonzero(c [9]uint8) int {
	for i, v := range c {
		if v > 0 {
			return i
		}
	}
	return -1
}

// HonorProfiles returns every distinct grouping profile reachable from
// the 7 honor-tile counts. Honors never form sequences, so the only moves
// are pair (as head), triplet, partial pair, and leaving copies loose;
// the enumeration is small enough (7 ids, four moves) to compute directly
// on every call rather than carry a second table.
func HonorProfiles(counts [7]uint8) []Profile {
	seen := make(map[Profile]bool)
	var out []Profile
	var rec func(i, complete, partial int, hasPair bool)
	rec = func(i, complete, partial int, hasPair bool) {
		for i < 7 && counts[i] == 0 {
			i++
		}
		if i == 7 {
			p := Profile{Complete: complete, Partial: partial, HasPair: hasPair}
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
			return
		}
		n := counts[i]
		if !hasPair && n >= 2 {
			rec(i+1, complete, partial, true)
		}
		if !hasPair && n >= 4 {
			// All four copies split as head pair + partial pair.
			rec(i+1, complete, partial+1, true)
		}
		if n >= 3 {
			rec(i+1, complete+1, partial, hasPair)
		}
		if n >= 2 {
			rec(i+1, complete, partial+1, hasPair)
		}
		rec(i+1, complete, partial, hasPair)
	}
	rec(0, 0, 0, false)
	return out
}

// Best returns the profile from Lookup(counts) that maximises the
// standard-shanten contribution 2*complete+partial (+1 with a pair), ie
// the most useful single profile for a caller that wants one answer
// rather than the full reachable set.
func Best(counts [9]uint8) Profile {
	var best Profile
	var bestScore int = -1
	for _, p := range Lookup(counts) {
		score := 2*p.Complete + p.Partial
		if p.HasPair {
			score++
		}
		if score > bestScore {
			bestScore, best = score, p
		}
	}
	return best
}
