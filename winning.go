package riichi

// WinningPattern identifies which of the three winning-hand patterns a
// decomposition realises.
type WinningPattern uint8

// Winning patterns.
const (
	PatternStandard WinningPattern = iota
	PatternChiitoi
	PatternKokushi
)

// String satisfies the [fmt.Stringer] interface.
func (p WinningPattern) String() string {
	switch p {
	case PatternStandard:
		return "standard"
	case PatternChiitoi:
		return "chiitoi"
	case PatternKokushi:
		return "kokushi"
	}
	return "?"
}

// IsWinning reports whether the post-draw hand is a complete winning
// shape under any of the three patterns: standard (pair + four complete
// melds, counting declared ones), seven pairs, or thirteen orphans. A
// concealed total of 14 less 3 per declared meld is accepted; seven pairs
// and thirteen orphans require the full 14. Returns [MalformedInput] for
// any other total or an invariant violation.
func IsWinning(hand CountArray) (bool, error) {
	melds, err := postDrawShape(hand)
	if err != nil {
		return false, err
	}
	if isStandardWinning(hand, melds) {
		return true, nil
	}
	return melds == 0 && (isChiitoi(hand) || isKokushi(hand)), nil
}

// isStandardWinning reports whether hand decomposes into exactly one pair
// plus four complete blocks (triplets/sequences, declared melds counted),
// every tile used.
func isStandardWinning(hand CountArray, melds int) bool {
	decomps := enumerate(hand, decompBudget{
		pairSlots:     1,
		meldSlots:     4 - melds,
		allowPartial:  false,
		allowIsolated: false,
	})
	for _, d := range decomps {
		if d.HasPair() && d.CompleteCount() == 4-melds {
			return true
		}
	}
	return false
}

// isChiitoi reports whether hand is seven pairs of seven distinct ids.
// Two pairs sharing an id (ie, all four copies of one tile) do not count
// as two pairs for this pattern.
func isChiitoi(hand CountArray) bool {
	var pairs int
	for _, n := range hand {
		if n != 0 && n != 2 {
			return false
		}
		if n == 2 {
			pairs++
		}
	}
	return pairs == 7
}

// isKokushi reports whether hand is thirteen orphans: all thirteen
// terminal/honour ids present, with exactly one of them duplicated.
func isKokushi(hand CountArray) bool {
	var distinct, pair int
	for id := TileId(0); id < NumTiles; id++ {
		if !id.IsTerminalOrHonor() {
			if hand[id] != 0 {
				return false
			}
			continue
		}
		switch hand[id] {
		case 0:
		case 1:
			distinct++
		case 2:
			distinct++
			pair++
		default:
			return false
		}
	}
	return distinct == 13 && pair == 1
}

// Decompositions returns every distinct standard-pattern decomposition of
// a post-draw winning hand into a pair plus complete blocks filling the
// meld slots not taken by declared melds. Returns an empty slice (not an
// error) if the hand is not a standard winning shape; returns
// [MalformedInput] if the total is not 14 less 3 per declared meld.
//
// Used by scoring layers (out of this package's scope) that need every
// valid grouping of a winning hand, not merely existence — for example to
// choose the fu-maximising pair/triplet split.
func Decompositions(hand CountArray) ([]Decomposition, error) {
	melds, err := postDrawShape(hand)
	if err != nil {
		return nil, err
	}
	decomps := enumerate(hand, decompBudget{
		pairSlots:     1,
		meldSlots:     4 - melds,
		allowPartial:  false,
		allowIsolated: false,
	})
	out := decomps[:0:0]
	for _, d := range decomps {
		if d.HasPair() && d.CompleteCount() == 4-melds {
			out = append(out, d)
		}
	}
	return out, nil
}
