package mahjong

import (
	"github.com/pkg/errors"
)

type searchState struct {
	concealed Concealed
	melds     []Meld
}

// branch consumes tiles from a copy of the state and records them as a meld
// of type typ. ok is false when the tiles do not form such a meld.
func (s *searchState) branch(typ MeldType, tiles ...Tile) (next searchState, ok bool) {
	m, err := NewMeld(tiles, NoTile, typ)
	if err != nil {
		return next, false
	}

	next.concealed = s.concealed
	for _, t := range tiles {
		if err := next.concealed.RemoveN(t, 1); err != nil {
			// 分支只会消耗已确认存在的牌
			panic(errors.Wrapf(err, "meld search: remove %v for %s", t, typ))
		}
	}

	next.melds = make([]Meld, len(s.melds), len(s.melds)+1)
	copy(next.melds, s.melds)
	next.melds = append(next.melds, m)
	return next, true
}

// SearchMelds returns every partition of c into one pair followed by
// sequences and triplets, leaving no tile over. The pair is always chosen
// first, so each partition holds exactly one.
func SearchMelds(c Concealed) [][]Meld {
	var (
		found [][]Meld
		stack = []searchState{{concealed: c}}
	)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.concealed.Empty() {
			if len(cur.melds) > 0 {
				found = append(found, cur.melds)
			}
			continue
		}

		// 先选将
		if len(cur.melds) == 0 {
			for _, t := range cur.concealed.Distinct() {
				if cur.concealed.Count(t) < 2 {
					continue
				}
				if next, ok := cur.branch(Pair, t, t); ok {
					stack = append(stack, next)
				}
			}
			continue
		}

		// 最小的牌必须成为刻子或顺子的一部分
		t := cur.concealed.First()
		if cur.concealed.Count(t) >= 3 {
			if next, ok := cur.branch(Triplet, t, t, t); ok {
				stack = append(stack, next)
			}
		}
		for _, w := range sequenceWindows(t) {
			if !cur.concealed.Contains(w[0]) || !cur.concealed.Contains(w[1]) {
				continue
			}
			if next, ok := cur.branch(Sequence, w[0], t, w[1]); ok {
				stack = append(stack, next)
			}
		}
	}

	return found
}
