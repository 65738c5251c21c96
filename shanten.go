package riichi

import "github.com/nocturne-ri/riichi/suittab"

// ShantenBreakdown is the per-pattern shanten distance for a hand, plus
// the overall minimum. A value of -1 for a pattern means the hand is
// already a winning shape under that pattern.
type ShantenBreakdown struct {
	Standard int
	Chiitoi  int
	Kokushi  int
}

// ShantenImpossible marks a pattern a hand can never reach, such as seven
// pairs or thirteen orphans once an open meld has been declared. It
// compares greater than any reachable shanten distance.
const ShantenImpossible = 14

// Best returns the minimum shanten across all three patterns.
func (s ShantenBreakdown) Best() int {
	return minInt(s.Standard, minInt(s.Chiitoi, s.Kokushi))
}

// BestPattern returns which pattern realises the overall minimum. If more
// than one pattern ties, Standard is preferred over Chiitoi over Kokushi;
// callers wanting the ukiere-maximising tie-break (the simulator's
// policy) should compare [Ukiere] set sizes directly instead of relying
// on this order.
func (s ShantenBreakdown) BestPattern() WinningPattern {
	best := s.Best()
	switch {
	case s.Standard == best:
		return PatternStandard
	case s.Chiitoi == best:
		return PatternChiitoi
	default:
		return PatternKokushi
	}
}

// ComputeShanten computes the shanten breakdown for a concealed hand.
// Totals of 13 or 14 are a fully concealed hand; totals reduced by 3 per
// declared open meld (10, 11, 7, 8, ...) are accepted too, with each meld
// counting as a complete block occupying one of the four meld slots.
// Seven pairs and thirteen orphans require a fully concealed hand, so
// those patterns report [ShantenImpossible] whenever melds are declared.
// Returns [MalformedInput] for any other total or an invariant violation.
func ComputeShanten(hand CountArray) (ShantenBreakdown, error) {
	melds, _, err := handShape(hand)
	if err != nil {
		return ShantenBreakdown{}, err
	}
	b := ShantenBreakdown{
		Standard: standardShanten(hand, melds),
		Chiitoi:  ShantenImpossible,
		Kokushi:  ShantenImpossible,
	}
	if melds == 0 {
		b.Chiitoi = chiitoiShanten(hand)
		b.Kokushi = kokushiShanten(hand)
	}
	return b, nil
}

// standardShanten computes the standard-pattern shanten: minimised, over
// every admissible decomposition into a pair (H in {0,1}), C complete
// blocks and P partial blocks with C+P<=4 and C+P+H<=5, of 8-2C-P-H.
// Each declared meld is a complete block already occupying one of the
// four meld slots, so the walk starts from C=melds.
//
// The search is separable per suit: no sequence crosses a suit boundary
// and honors never form sequences, so each numeric suit's 9-rank count
// vector resolves to its reachable (complete, partial, has-pair) profile
// set independently via [suittab.Lookup] (precomputed at init), honors
// via [suittab.HonorProfiles], and the four groups compose with a small
// reachability walk over (C, P, head) states. Only one group may supply
// the head pair; a pair not used as the head appears in that group's
// profile set as a partial instead, so the composition never double-books
// the head slot.
func standardShanten(hand CountArray, melds int) int {
	groups := make([][]suittab.Profile, 0, 4)
	for _, suit := range [...]Suit{Man, Pin, Sou} {
		var counts [9]uint8
		lo, _ := suitRange(suit)
		for i := 0; i < 9; i++ {
			counts[i] = hand[lo+TileId(i)]
		}
		groups = append(groups, suittab.Lookup(counts))
	}
	var honors [7]uint8
	for i := 0; i < 7; i++ {
		honors[i] = hand[honLo+TileId(i)]
	}
	groups = append(groups, suittab.HonorProfiles(honors))

	// reach[c][p][h]: a combination of per-group profiles totalling c
	// complete and p partial blocks, with (h==1) a designated head pair,
	// is reachable. Counts above 4 are clamped: blocks beyond the meld
	// budget can never score, and every profile set already contains its
	// own fewer-block variants.
	var reach [5][5][2]bool
	reach[minInt(melds, 4)][0][0] = true
	for _, profiles := range groups {
		var next [5][5][2]bool
		for c := 0; c <= 4; c++ {
			for p := 0; p <= 4; p++ {
				for h := 0; h <= 1; h++ {
					if !reach[c][p][h] {
						continue
					}
					for _, pr := range profiles {
						if pr.HasPair && h == 1 {
							continue
						}
						c2 := minInt(c+pr.Complete, 4)
						p2 := minInt(p+pr.Partial, 4)
						h2 := h
						if pr.HasPair {
							h2 = 1
						}
						next[c2][p2][h2] = true
					}
				}
			}
		}
		reach = next
	}
	best := 8
	for c := 0; c <= 4; c++ {
		for p := 0; p <= 4; p++ {
			for h := 0; h <= 1; h++ {
				if !reach[c][p][h] {
					continue
				}
				eff := minInt(p, 4-c)
				if v := 8 - 2*c - eff - h; v < best {
					best = v
				}
			}
		}
	}
	return best
}

// chiitoiShanten computes the seven-pairs shanten: 6 minus the number of
// distinct ids with count>=2, plus a penalty for each of the 7 distinct
// kinds a seven-pairs hand needs that the hand hasn't discovered yet (a
// third or fourth copy of an already-paired id doesn't introduce a new
// kind, so stockpiling duplicates of the same tile doesn't substitute for
// holding more distinct ones), clamped at 0.
func chiitoiShanten(hand CountArray) int {
	var pairs, kinds int
	for _, n := range hand {
		if n >= 2 {
			pairs++
		}
		if n >= 1 {
			kinds++
		}
	}
	s := 6 - pairs + maxInt(0, 7-kinds)
	return maxInt(s, 0)
}

// kokushiShanten computes the thirteen-orphans shanten: 13 minus the
// number of distinct terminal/honour ids present, minus 1 if any of those
// ids is paired.
func kokushiShanten(hand CountArray) int {
	var distinct int
	hasPair := false
	for id := TileId(0); id < NumTiles; id++ {
		if !id.IsTerminalOrHonor() {
			continue
		}
		if hand[id] > 0 {
			distinct++
		}
		if hand[id] >= 2 {
			hasPair = true
		}
	}
	s := 13 - distinct
	if hasPair {
		s--
	}
	return s
}

// Ukiere returns the set of tiles whose addition to a pre-draw concealed
// hand strictly decreases the overall (best-of-three-patterns) shanten,
// along with the hand's current best shanten. Candidate ids already held
// at count 4 are skipped (a fifth copy cannot physically exist);
// filtering against a caller-provided visible-tile universe and furiten
// is the tenpai/wait resolver's responsibility, not this function's.
func Ukiere(hand CountArray) (map[TileId]bool, int, error) {
	if _, err := preDrawShape(hand); err != nil {
		return nil, 0, err
	}
	base, err := ComputeShanten(hand)
	if err != nil {
		return nil, 0, err
	}
	baseBest := base.Best()
	out := make(map[TileId]bool)
	for id := TileId(0); id < NumTiles; id++ {
		if hand[id] >= 4 {
			continue
		}
		aug, err := ComputeShanten(hand.Add(id))
		if err != nil {
			return nil, 0, err
		}
		if aug.Best() < baseBest {
			out[id] = true
		}
	}
	return out, baseBest, nil
}

// PatternUkiere returns the set of tiles that strictly decrease shanten
// under one specific pattern, and that pattern's current shanten. It lets
// a caller break a standard/chiitoi shanten tie by comparing ukiere set
// sizes; [AnalyzeDiscards] and [Simulate] do not call it.
func PatternUkiere(hand CountArray, pattern WinningPattern) (map[TileId]bool, int, error) {
	melds, err := preDrawShape(hand)
	if err != nil {
		return nil, 0, err
	}
	shantenOf := func(h CountArray) int {
		switch pattern {
		case PatternChiitoi:
			if melds > 0 {
				return ShantenImpossible
			}
			return chiitoiShanten(h)
		case PatternKokushi:
			if melds > 0 {
				return ShantenImpossible
			}
			return kokushiShanten(h)
		default:
			return standardShanten(h, melds)
		}
	}
	base := shantenOf(hand)
	out := make(map[TileId]bool)
	for id := TileId(0); id < NumTiles; id++ {
		if hand[id] >= 4 {
			continue
		}
		if shantenOf(hand.Add(id)) < base {
			out[id] = true
		}
	}
	return out, base, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
