package mahjong

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Score is a named scoring condition. Its worth in tai comes from a ScoreTai
// table supplied by the ruleset.
type Score int

const (
	Dragon Score = iota
	PrevailingWind
	SeatWind
	AllConcealed // 门清
	AllChi
	PingHu // 平胡
	AllPong
	HiddenTreasure
	HalfFlush
	FullFlush // 清一色
	FullFlushPingHu
	AllTerminals
	HalfTerminals
	AllHonours
	ThirteenWonders
	Animal
	CompleteAnimals
	PlayerFlower
	CompleteRedFlower
	CompleteBlueFlower
	HuaShang  // 花上
	GangShang // 杠上花
	HaiDiLao  // 海底捞
	QiangGang // 抢杠胡
	HuaHu
	ThreeGreatScholars
	FourGreatBlessings
	SmallFourWinds
	SevenPairs // 七对
)

var scoreNames = [...]string{
	Dragon:             "dragon",
	PrevailingWind:     "prevailing_wind",
	SeatWind:           "seat_wind",
	AllConcealed:       "all_concealed",
	AllChi:             "all_chi",
	PingHu:             "ping_hu",
	AllPong:            "all_pong",
	HiddenTreasure:     "hidden_treasure",
	HalfFlush:          "half_flush",
	FullFlush:          "full_flush",
	FullFlushPingHu:    "full_flush_ping_hu",
	AllTerminals:       "all_terminals",
	HalfTerminals:      "half_terminals",
	AllHonours:         "all_honours",
	ThirteenWonders:    "thirteen_wonders",
	Animal:             "animal",
	CompleteAnimals:    "complete_animals",
	PlayerFlower:       "player_flower",
	CompleteRedFlower:  "complete_red_flower",
	CompleteBlueFlower: "complete_blue_flower",
	HuaShang:           "hua_shang",
	GangShang:          "gang_shang",
	HaiDiLao:           "hai_di_lao",
	QiangGang:          "qiang_gang",
	HuaHu:              "hua_hu",
	ThreeGreatScholars: "three_great_scholars",
	FourGreatBlessings: "four_great_blessings",
	SmallFourWinds:     "small_four_winds",
	SevenPairs:         "seven_pairs",
}

var ErrUnknownScore = errors.New("unknown score")

func (s Score) String() string {
	if s < Dragon || s > SevenPairs {
		return fmt.Sprintf("score(%d)", int(s))
	}
	return scoreNames[s]
}

func ParseScore(name string) (Score, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range scoreNames {
		if n == name {
			return Score(s), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownScore, "%q", name)
}

// AllScores returns every Score in declaration order.
func AllScores() []Score {
	scores := make([]Score, len(scoreNames))
	for i := range scoreNames {
		scores[i] = Score(i)
	}
	return scores
}

// ScoreTai maps each Score to its tai. Missing scores are worth nothing.
type ScoreTai map[Score]int

func (st ScoreTai) Tai(scores []Score) int {
	tai := 0
	for _, s := range scores {
		tai += st[s]
	}
	return tai
}

func (st ScoreTai) Clone() ScoreTai {
	ret := make(ScoreTai, len(st))
	for s, tai := range st {
		ret[s] = tai
	}
	return ret
}

// Hu is a winning decomposition with the scores it earns.
type Hu struct {
	Melds  []Meld
	Scores []Score
	Tai    int
}

func NewHu(melds []Meld, scores []Score, table ScoreTai) *Hu {
	return &Hu{Melds: melds, Scores: scores, Tai: table.Tai(scores)}
}

// Compare orders candidates by tai alone; a nil candidate is below any other.
func Compare(a, b *Hu) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case a.Tai > b.Tai:
		return 1
	case a.Tai < b.Tai:
		return -1
	default:
		return 0
	}
}

func (h *Hu) String() string {
	if h == nil {
		return "<nil>"
	}
	names := make([]string, len(h.Scores))
	for i, s := range h.Scores {
		names[i] = s.String()
	}
	return fmt.Sprintf("Tai=%d Scores=[%s] Melds=%v", h.Tai, strings.Join(names, " "), h.Melds)
}
