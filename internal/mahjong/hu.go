package mahjong

import (
	log "github.com/sirupsen/logrus"
)

var logger = log.WithField("component", "mahjong")

// Context is what a win check needs besides the hand itself.
type Context struct {
	Discard        Tile    // 点炮的牌, 自摸时为NoTile
	BaseScores     []Score // 外部判定的分(海底捞, 杠上花...)
	SeatWind       Wind
	PrevailingWind Wind
	Table          ScoreTai
}

// SearchHu returns the best scoring way to win with the hand, folding in
// ctx.Discard when set. It returns nil when the hand cannot win.
func SearchHu(hand *Hand, ctx *Context) *Hu {
	concealed := hand.Concealed()
	if ctx.Discard != NoTile {
		if !ctx.Discard.IsPlayable() {
			return nil
		}
		concealed.AddN(ctx.Discard, 1)
	}

	var (
		declared = hand.Melds()
		bonus    = hand.Bonus()
		extra    = bonusScores(bonus, ctx.SeatWind)
		best     *Hu
	)

	consider := func(melds []Meld, scores []Score) {
		candidate := NewHu(melds, append(scores, extra...), ctx.Table)
		logger.Debugf("候选胡牌: %v", candidate)
		if Compare(candidate, best) > 0 {
			best = candidate
		}
	}

	if len(declared) == 0 {
		if melds, ok := sevenPairs(concealed); ok {
			scores := append([]Score(nil), ctx.BaseScores...)
			consider(melds, append(scores, SevenPairs))
		}
		if melds, ok := thirteenWonders(concealed); ok {
			consider(melds, []Score{ThirteenWonders})
		}
	}

	for _, found := range SearchMelds(concealed) {
		melds := make([]Meld, 0, len(declared)+len(found))
		melds = append(melds, declared...)
		melds = append(melds, found...)
		consider(melds, scoreMelds(ctx, melds, found, len(declared), len(bonus)))
	}

	if best != nil {
		logger.Debugf("最大番型: %v", best)
	}
	return best
}
