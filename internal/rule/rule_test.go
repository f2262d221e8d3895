package rule

import (
	"bytes"
	"testing"

	"github.com/lonng/taiserver/internal/mahjong"
	"github.com/lonng/taiserver/pkg/errutil"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const testConfig = `
[rule]
default = "singapore"

[rules.singapore]
full_flush = 6
ping_hu = 2
dragon = 1
no_such_score = 9
`

func newTestViper(t *testing.T) *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(bytes.NewBufferString(testConfig)); err != nil {
		t.Fatal(err)
	}
	return v
}

func TestLoad(t *testing.T) {
	v := newTestViper(t)

	table, err := Load(v, "singapore")
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		score mahjong.Score
		tai   int
	}{
		{mahjong.FullFlush, 6},
		{mahjong.PingHu, 2},
		{mahjong.Dragon, 1},
		{mahjong.AllPong, defaultTable[mahjong.AllPong]},
	}
	for _, c := range cases {
		if table[c.score] != c.tai {
			t.Fatalf("%v, expect=%d, got=%d", c.score, c.tai, table[c.score])
		}
	}
}

func TestLoad_NotFound(t *testing.T) {
	v := newTestViper(t)

	if _, err := Load(v, "hongkong"); errors.Cause(err) != errutil.ErrRulesetNotFound {
		t.Fatalf("expect ErrRulesetNotFound, got %v", err)
	}

	table, err := Load(v, DefaultName)
	if err != nil {
		t.Fatal(err)
	}
	if len(table) != len(defaultTable) {
		t.Fatalf("expect the default table, got %v", table)
	}
}

func TestConfigProvider(t *testing.T) {
	p := NewConfigProvider(newTestViper(t))

	table, err := p.ScoreTai("")
	if err != nil {
		t.Fatal(err)
	}
	if table[mahjong.FullFlush] != 6 {
		t.Fatalf("expect rule.default to be used, got %v", table)
	}

	table = Resolve(p, "hongkong")
	if table[mahjong.FullFlush] != defaultTable[mahjong.FullFlush] {
		t.Fatalf("expect fallback to default, got %v", table)
	}
}

func TestDefault(t *testing.T) {
	table := Default()
	table[mahjong.PingHu] = 100
	if defaultTable[mahjong.PingHu] == 100 {
		t.Fatalf("Default must return a copy")
	}
	for _, s := range mahjong.AllScores() {
		if _, ok := defaultTable[s]; !ok {
			t.Fatalf("score %v missing from the default table", s)
		}
	}
}
