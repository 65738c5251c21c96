package riichi

// WaitResult is the outcome of resolving a tenpai hand's wait.
type WaitResult struct {
	// Waits is the live wait set: tiles whose acquisition completes the
	// hand and that are not already fully visible.
	Waits map[TileId]bool
	// Dead is the set of tiles that would complete the hand but already
	// have all 4 copies accounted for in the caller's visible universe.
	// A tile appears in exactly one of Waits or Dead, never both.
	Dead map[TileId]bool
	// Furiten is true when any completing tile (live or dead) appears in
	// the hand's own discard pool. Furiten disables ron but not tsumo;
	// it does not remove tiles from Waits or Dead.
	Furiten bool
}

// Empty reports whether the hand has no wait at all (not tenpai).
func (w WaitResult) Empty() bool {
	return len(w.Waits) == 0 && len(w.Dead) == 0
}

// ResolveWait computes the wait set for a pre-draw hand (13 concealed
// tiles less 3 per declared meld) at overall shanten 0 (the minimum
// across all three winning patterns, per [ComputeShanten]). Returns
// [MalformedInput] for any other total. A hand that is not actually
// tenpai under any pattern yields a zero-value [WaitResult] (Empty
// reports true) rather than an error.
//
// Each of the three patterns independently at shanten 0 contributes its own
// completion tiles to the raw wait set, since a hand can be tenpai under
// more than one pattern at once: standardWaitTiles runs the shape
// enumerator over hand, keeping every decomposition whose standard-pattern
// formula evaluates to exactly 0 and collecting its sole partial block's
// completion tiles, or — for the tanki case — the single leftover isolated
// tile; chiitoiWaitTiles and kokushiWaitTiles apply the well-known
// seven-pairs and thirteen-orphans wait rules directly. The union of every
// pattern's completion tiles is the raw wait set.
//
// discards is the hand owner's own discard pool (drives furiten); visible
// is the full-universe tile count (own hand + melds + all discards + dora
// indicators) used to mark dead waits.
func ResolveWait(hand CountArray, discards []TileId, visible CountArray) (WaitResult, error) {
	melds, err := preDrawShape(hand)
	if err != nil {
		return WaitResult{}, err
	}
	breakdown, err := ComputeShanten(hand)
	if err != nil {
		return WaitResult{}, err
	}
	raw := make(map[TileId]bool)
	if breakdown.Standard == 0 {
		for _, t := range standardWaitTiles(hand, melds) {
			raw[t] = true
		}
	}
	if breakdown.Chiitoi == 0 {
		for _, t := range chiitoiWaitTiles(hand) {
			raw[t] = true
		}
	}
	if breakdown.Kokushi == 0 {
		for _, t := range kokushiWaitTiles(hand) {
			raw[t] = true
		}
	}
	result := WaitResult{
		Waits: make(map[TileId]bool),
		Dead:  make(map[TileId]bool),
	}
	for t := range raw {
		// A tile already at 4 copies within the concealed hand itself
		// cannot be drawn a fifth time; it is not a meaningful wait.
		if hand[t] >= 4 {
			continue
		}
		if visible[t] >= 4 {
			result.Dead[t] = true
		} else {
			result.Waits[t] = true
		}
		if discardsContain(discards, t) {
			result.Furiten = true
		}
	}
	return result, nil
}

// standardWaitTiles returns the completion tiles of every standard-pattern
// decomposition of hand that sits at shanten 0 (pair + four meld slots,
// declared melds counted as complete, 8-2C-P-H == 0): either the sole
// partial block's completion tiles, or — for the tanki case, where all
// four meld slots are complete and no pair has been designated — the
// single leftover isolated tile.
func standardWaitTiles(hand CountArray, melds int) []TileId {
	decomps := enumerate(hand, decompBudget{
		pairSlots:     1,
		meldSlots:     4 - melds,
		allowPartial:  true,
		allowIsolated: true,
	})
	var out []TileId
	for _, d := range decomps {
		c, p := d.CompleteCount()+melds, d.PartialCount()
		h := 0
		if d.HasPair() {
			h = 1
		}
		if 8-2*c-p-h != 0 {
			continue
		}
		switch {
		case p == 1:
			for _, b := range d.Blocks {
				if b.Kind.Partial() {
					out = append(out, b.CompletionTiles()...)
				}
			}
		case c == 4 && p == 0 && h == 0:
			// Tanki: the one leftover isolated tile is the wait.
			for _, b := range d.Blocks {
				if b.Kind == BlockIsolated {
					out = append(out, b.ID)
				}
			}
		}
	}
	return out
}

// chiitoiWaitTiles returns the completion tile for a seven-pairs-tenpai
// hand: the one id held as a lone singleton, whose second copy completes
// the seventh pair. Only meaningful when chiitoiShanten(hand) == 0, which
// guarantees exactly one such id exists.
func chiitoiWaitTiles(hand CountArray) []TileId {
	for id := TileId(0); id < NumTiles; id++ {
		if hand[id] == 1 {
			return []TileId{id}
		}
	}
	return nil
}

// kokushiWaitTiles returns the completion tiles for a thirteen-orphans-tenpai
// hand, applying the standard kokushi-wait rule. Only meaningful when
// kokushiShanten(hand) == 0:
//
//   - if the hand already holds a pair among its yaochuu ids (12 distinct
//     ids present, one doubled), the single missing thirteenth id is the
//     only wait;
//   - otherwise all thirteen yaochuu ids are present as lone singletons
//     (the thirteen-sided wait), and drawing a second copy of any one of
//     them completes the hand, so all thirteen are waits.
func kokushiWaitTiles(hand CountArray) []TileId {
	missing := InvalidTile
	hasPair := false
	for id := TileId(0); id < NumTiles; id++ {
		if !id.IsTerminalOrHonor() {
			continue
		}
		switch {
		case hand[id] == 0:
			missing = id
		case hand[id] >= 2:
			hasPair = true
		}
	}
	if hasPair {
		if missing == InvalidTile {
			return nil
		}
		return []TileId{missing}
	}
	var out []TileId
	for id := TileId(0); id < NumTiles; id++ {
		if id.IsTerminalOrHonor() {
			out = append(out, id)
		}
	}
	return out
}

// discardsContain reports whether id appears in discards.
func discardsContain(discards []TileId, id TileId) bool {
	for _, d := range discards {
		if d == id {
			return true
		}
	}
	return false
}
