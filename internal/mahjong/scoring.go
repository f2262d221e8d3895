package mahjong

// tally counts melds per suit category and per meld type.
type tally struct {
	suits [SuitDragon + 1]int
	types [Pair + 1]int

	windGroups   int // 风牌刻子/杠
	dragonGroups int // 箭牌刻子/杠
	windEye      bool
}

func newTally(melds []Meld) *tally {
	t := &tally{}
	for _, m := range melds {
		if s := m.Suit(); s <= SuitDragon {
			t.suits[s]++
		}
		t.types[m.Type()]++

		switch {
		case m.Type() == Pair:
			t.windEye = t.windEye || m.Suit() == SuitWind
		case m.Suit() == SuitWind:
			t.windGroups++
		case m.Suit() == SuitDragon:
			t.dragonGroups++
		}
	}
	return t
}

// numberSuits returns how many of the three number suits are used.
func (t *tally) numberSuits() int {
	n := 0
	for _, s := range []Suit{SuitWan, SuitSuo, SuitTong} {
		if t.suits[s] > 0 {
			n++
		}
	}
	return n
}

func (t *tally) honours() int {
	return t.suits[SuitWind] + t.suits[SuitDragon]
}

// scoreMelds derives the meld scores of one complete decomposition. found
// are the melds produced by the search, melds are declared plus found.
// Limit hands replace everything accumulated before them.
func scoreMelds(ctx *Context, melds, found []Meld, declared int, bonus int) []Score {
	var (
		t      = newTally(melds)
		scores = append([]Score(nil), ctx.BaseScores...)
		seat   = ctx.SeatWind.Tile()
		wind   = ctx.PrevailingWind.Tile()
	)

	// 将牌同样计番
	for _, m := range melds {
		switch m.Suit() {
		case SuitWind:
			if m.First() == wind {
				scores = append(scores, PrevailingWind)
			}
			if m.First() == seat {
				scores = append(scores, SeatWind)
			}
		case SuitDragon:
			scores = append(scores, Dragon)
		}
	}

	numberSuits := t.numberSuits()
	if numberSuits == 1 {
		if t.honours() > 0 {
			scores = append(scores, HalfFlush)
		} else {
			scores = append(scores, FullFlush)
		}
	}

	concealedHand := declared == 0
	if concealedHand {
		scores = append(scores, AllConcealed)
	}

	sequences := t.types[Sequence]
	if sequences == 4 {
		if ctx.Discard == NoTile || (twoSidedWait(found, ctx.Discard) && !hasScoringEye(melds, ctx)) {
			if bonus == 0 {
				scores = append(scores, PingHu)
			} else {
				scores = append(scores, AllChi)
			}
		}
	}

	if sequences == 0 && !concealedHand {
		scores = append(scores, AllPong)
	}
	if sequences == 0 && halfTerminals(melds) {
		scores = append(scores, HalfTerminals)
	}

	// 极品牌型, 按顺序覆盖
	if concealedHand && sequences == 0 {
		scores = []Score{HiddenTreasure}
	}
	if numberSuits == 0 {
		scores = []Score{AllHonours}
	}
	if allTerminals(melds) {
		scores = []Score{AllTerminals}
	}
	if sequences == 4 && numberSuits == 1 {
		scores = []Score{FullFlushPingHu}
	}
	if t.dragonGroups == 3 {
		scores = []Score{ThreeGreatScholars}
	}
	if t.windGroups == 3 && t.windEye {
		scores = []Score{SmallFourWinds}
	}
	if t.windGroups == 4 {
		scores = []Score{FourGreatBlessings}
	}

	return scores
}

// twoSidedWait reports whether the discard completed a found sequence at one
// end while the other end could also have completed it.
func twoSidedWait(found []Meld, discard Tile) bool {
	for _, m := range found {
		if m.Type() != Sequence || !m.Contains(discard) {
			continue
		}
		tiles := m.Tiles()
		if discard == tiles[0] && tiles[2].Next() != NoTile {
			return true
		}
		if discard == tiles[2] && tiles[0].Prev() != NoTile {
			return true
		}
	}
	return false
}

// hasScoringEye reports whether the eye is a dragon or a wind that would
// score as a triplet.
func hasScoringEye(melds []Meld, ctx *Context) bool {
	for _, m := range melds {
		if m.Type() != Pair {
			continue
		}
		first := m.First()
		if m.Suit() == SuitDragon || first == ctx.SeatWind.Tile() || first == ctx.PrevailingWind.Tile() {
			return true
		}
	}
	return false
}

func allTerminals(melds []Meld) bool {
	if len(melds) == 0 {
		return false
	}
	for _, m := range melds {
		if m.Type() == Sequence || !m.First().IsTerminal() {
			return false
		}
	}
	return true
}

func halfTerminals(melds []Meld) bool {
	var terminal, honour bool
	for _, m := range melds {
		switch first := m.First(); {
		case m.Type() == Sequence:
			return false
		case first.IsTerminal():
			terminal = true
		case first.IsHonour():
			honour = true
		default:
			return false
		}
	}
	return terminal && honour
}

// bonusScores scores the animals and flowers of a hand.
func bonusScores(bonus Tiles, seat Wind) []Score {
	var (
		scores             []Score
		animals, red, blue int
	)

	for _, t := range bonus {
		switch {
		case t.Suit() == SuitAnimal:
			scores = append(scores, Animal)
			animals++
		case t.Suit() == SuitFlower:
			if t.Seat() == seat {
				scores = append(scores, PlayerFlower)
			}
			if t == RedFlower(t.Seat()) {
				red++
			} else {
				blue++
			}
		}
	}

	if animals == 4 {
		scores = append(scores, CompleteAnimals)
	}
	if red == 4 {
		scores = append(scores, CompleteRedFlower)
	}
	if blue == 4 {
		scores = append(scores, CompleteBlueFlower)
	}
	return scores
}

// sevenPairs builds the seven pairs candidate: fourteen tiles, each distinct
// tile held exactly twice.
func sevenPairs(c Concealed) ([]Meld, bool) {
	if c.Len() != 14 {
		return nil, false
	}
	var melds []Meld
	for _, t := range c.Distinct() {
		if c.Count(t) != 2 {
			return nil, false
		}
		m, err := NewMeld(Tiles{t, t}, NoTile, Pair)
		if err != nil {
			return nil, false
		}
		melds = append(melds, m)
	}
	return melds, true
}

// thirteenWonders checks for one of each terminal and honour plus a
// duplicate of one of them, returned as the hand's only meld.
func thirteenWonders(c Concealed) ([]Meld, bool) {
	if c.Len() != 14 {
		return nil, false
	}
	for _, t := range c.Distinct() {
		if !orphanTiles.Contains(t) {
			return nil, false
		}
	}

	var eye Tile
	for _, t := range orphanTiles {
		switch c.Count(t) {
		case 1:
		case 2:
			eye = t
		default:
			return nil, false
		}
	}

	m, err := NewMeld(Tiles{eye, eye}, NoTile, Pair)
	if err != nil {
		return nil, false
	}
	return []Meld{m}, true
}
