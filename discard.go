package riichi

import "sort"

// DiscardCandidate is the post-discard outlook for one tile choice from a
// 14-tile hand: the shanten and ukiere set that result from discarding
// Tile.
type DiscardCandidate struct {
	Tile        TileId
	Shanten     int
	Ukiere      map[TileId]bool
	UkiereCount int
}

// Upgrade records a same-shanten tile trade that increases future ukiere:
// drawing Trigger does not itself reduce shanten, but discarding
// NextDiscard afterward yields a strictly larger ukiere count than the
// best-shanten discard it was found from offers.
type Upgrade struct {
	Trigger           TileId
	NextDiscard       TileId
	ResultUkiereCount int
	ResultUkiere      map[TileId]bool
}

// DiscardAnalysis is the ranked result of analysing every discard from a
// 14-tile hand.
type DiscardAnalysis struct {
	// Candidates is every legal discard, sorted by resulting shanten
	// ascending, then by resulting ukiere count descending, then by tile
	// id for determinism.
	Candidates  []DiscardCandidate
	BestShanten int
	// Upgrades is only populated for discards achieving BestShanten (see
	// [Upgrade]); empty unless upgrade analysis was requested and ran.
	Upgrades []Upgrade
}

// analyzeConfig holds [AnalyzeOption] settings.
type analyzeConfig struct {
	upgrades bool
}

// AnalyzeOption configures [AnalyzeDiscards].
type AnalyzeOption func(*analyzeConfig)

// WithUpgrades enables or disables upgrade-tile analysis (enabled by
// default). Upgrade analysis is the expensive part of discard analysis
// (an extra two-ply search per best-shanten candidate); simulator hot
// paths that only need the discard ranking can disable it.
func WithUpgrades(enabled bool) AnalyzeOption {
	return func(c *analyzeConfig) { c.upgrades = enabled }
}

// AnalyzeDiscards ranks every discard from a post-draw hand (14 concealed
// tiles less 3 per declared meld) by resulting shanten and ukiere, and —
// for discards tied at the minimum resulting shanten — enumerates upgrade
// tiles. Returns [MalformedInput] if the total is not a post-draw size.
func AnalyzeDiscards(hand CountArray, opts ...AnalyzeOption) (DiscardAnalysis, error) {
	if _, err := postDrawShape(hand); err != nil {
		return DiscardAnalysis{}, err
	}
	cfg := analyzeConfig{upgrades: true}
	for _, o := range opts {
		o(&cfg)
	}
	var candidates []DiscardCandidate
	for id := TileId(0); id < NumTiles; id++ {
		if hand[id] == 0 {
			continue
		}
		h13 := hand.Remove(id)
		u, best, err := Ukiere(h13)
		if err != nil {
			return DiscardAnalysis{}, err
		}
		candidates = append(candidates, DiscardCandidate{
			Tile: id, Shanten: best, Ukiere: u, UkiereCount: len(u),
		})
	}
	sortCandidates(candidates)
	analysis := DiscardAnalysis{Candidates: candidates, BestShanten: candidates[0].Shanten}
	if cfg.upgrades {
		var err error
		if analysis.Upgrades, err = findUpgrades(hand, candidates, analysis.BestShanten); err != nil {
			return DiscardAnalysis{}, err
		}
	}
	return analysis, nil
}

// sortCandidates sorts into the canonical discard-ranking order.
func sortCandidates(candidates []DiscardCandidate) {
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Shanten != b.Shanten {
			return a.Shanten < b.Shanten
		}
		if a.UkiereCount != b.UkiereCount {
			return a.UkiereCount > b.UkiereCount
		}
		return a.Tile < b.Tile
	})
}

// findUpgrades enumerates upgrade tiles for every candidate discard tied
// at bestShanten: for each trigger tile that would not itself reduce
// shanten, simulate drawing it and discarding optimally next turn, keeping
// the result only if it strictly increases the reachable ukiere count.
func findUpgrades(hand CountArray, candidates []DiscardCandidate, bestShanten int) ([]Upgrade, error) {
	var upgrades []Upgrade
	seen := make(map[TileId]bool)
	for _, cand := range candidates {
		if cand.Shanten != bestShanten {
			continue
		}
		h13 := hand.Remove(cand.Tile)
		for trig := TileId(0); trig < NumTiles; trig++ {
			if h13[trig] >= 4 || cand.Ukiere[trig] {
				continue
			}
			h14 := h13.Add(trig)
			nextDiscard, nextUkiere, nextCount, found, err := bestFollowUpDiscard(h14, bestShanten)
			if err != nil {
				return nil, err
			}
			if found && nextCount > cand.UkiereCount {
				key := trig // dedup by trigger tile across tied candidates
				if seen[key] {
					continue
				}
				seen[key] = true
				upgrades = append(upgrades, Upgrade{
					Trigger:           trig,
					NextDiscard:       nextDiscard,
					ResultUkiereCount: nextCount,
					ResultUkiere:      nextUkiere,
				})
			}
		}
	}
	sort.Slice(upgrades, func(i, j int) bool {
		return upgrades[i].Trigger < upgrades[j].Trigger
	})
	return upgrades, nil
}

// bestFollowUpDiscard finds the discard from a 14-tile hand that keeps
// shanten at targetShanten while maximising the resulting ukiere count.
func bestFollowUpDiscard(hand CountArray, targetShanten int) (TileId, map[TileId]bool, int, bool, error) {
	best := TileId(InvalidTile)
	var bestUkiere map[TileId]bool
	bestCount := -1
	for id := TileId(0); id < NumTiles; id++ {
		if hand[id] == 0 {
			continue
		}
		u, s, err := Ukiere(hand.Remove(id))
		if err != nil {
			return InvalidTile, nil, 0, false, err
		}
		if s != targetShanten {
			continue
		}
		if len(u) > bestCount {
			bestCount, best, bestUkiere = len(u), id, u
		}
	}
	return best, bestUkiere, bestCount, best != InvalidTile, nil
}
