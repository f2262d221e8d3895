package rule

import (
	"fmt"

	"github.com/lonng/taiserver/internal/mahjong"
	"github.com/lonng/taiserver/pkg/errutil"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultName is the ruleset served when no other is configured.
const DefaultName = "default"

var logger = log.WithField("component", "rule")

// 默认台数
var defaultTable = mahjong.ScoreTai{
	mahjong.Dragon:             1,
	mahjong.PrevailingWind:     1,
	mahjong.SeatWind:           1,
	mahjong.AllConcealed:       1,
	mahjong.AllChi:             1,
	mahjong.PingHu:             4,
	mahjong.AllPong:            2,
	mahjong.HiddenTreasure:     5,
	mahjong.HalfFlush:          2,
	mahjong.FullFlush:          4,
	mahjong.FullFlushPingHu:    5,
	mahjong.AllTerminals:       5,
	mahjong.HalfTerminals:      1,
	mahjong.AllHonours:         5,
	mahjong.ThirteenWonders:    5,
	mahjong.Animal:             1,
	mahjong.CompleteAnimals:    5,
	mahjong.PlayerFlower:       1,
	mahjong.CompleteRedFlower:  2,
	mahjong.CompleteBlueFlower: 2,
	mahjong.HuaShang:           1,
	mahjong.GangShang:          1,
	mahjong.HaiDiLao:           1,
	mahjong.QiangGang:          1,
	mahjong.HuaHu:              5,
	mahjong.ThreeGreatScholars: 5,
	mahjong.FourGreatBlessings: 5,
	mahjong.SmallFourWinds:     5,
	mahjong.SevenPairs:         5,
}

// Provider resolves a ruleset name to its score table.
type Provider interface {
	ScoreTai(name string) (mahjong.ScoreTai, error)
}

func Default() mahjong.ScoreTai {
	return defaultTable.Clone()
}

// Load reads rules.<name>.<score> = tai from v on top of the default table.
func Load(v *viper.Viper, name string) (mahjong.ScoreTai, error) {
	sub := v.Sub(fmt.Sprintf("rules.%s", name))
	if sub == nil {
		if name == DefaultName {
			return Default(), nil
		}
		return nil, errors.Wrapf(errutil.ErrRulesetNotFound, "ruleset %q", name)
	}

	table := Default()
	for _, key := range sub.AllKeys() {
		score, err := mahjong.ParseScore(key)
		if err != nil {
			logger.Warnf("ruleset %s: ignore unknown score %s", name, key)
			continue
		}
		table[score] = sub.GetInt(key)
	}
	return table, nil
}

// ConfigProvider serves rulesets from the rules section of a config file.
type ConfigProvider struct {
	v *viper.Viper
}

func NewConfigProvider(v *viper.Viper) *ConfigProvider {
	return &ConfigProvider{v: v}
}

func (p *ConfigProvider) ScoreTai(name string) (mahjong.ScoreTai, error) {
	if name == "" {
		name = DefaultRuleset(p.v)
	}
	return Load(p.v, name)
}

// DefaultRuleset returns rule.default, or DefaultName when unset.
func DefaultRuleset(v *viper.Viper) string {
	if name := v.GetString("rule.default"); name != "" {
		return name
	}
	return DefaultName
}

// Resolve looks name up in p and falls back to the default table when the
// ruleset is unavailable.
func Resolve(p Provider, name string) mahjong.ScoreTai {
	table, err := p.ScoreTai(name)
	if err != nil {
		logger.Warnf("ruleset %q unavailable, use default: %v", name, err)
		return Default()
	}
	return table
}
