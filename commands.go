package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/lonng/taiserver/db"
	"github.com/lonng/taiserver/internal/mahjong"
	"github.com/lonng/taiserver/internal/rule"
	"github.com/lonng/taiserver/internal/web"
	"github.com/lonng/taiserver/internal/web/api"
	"github.com/lonng/taiserver/pkg/errutil"
	"github.com/lonng/taiserver/protocol"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/urfave/cli"
)

var evalCommand = cli.Command{
	Name:  "eval",
	Usage: "evaluate a single hand",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "hand", Usage: "concealed tiles, e.g. `1w,2w,3w,east,east`"},
		cli.StringSliceFlag{Name: "meld", Usage: "declared meld as `TYPE:TILES[/EXTERNAL]`, e.g. pong:east,east/east"},
		cli.StringFlag{Name: "discard", Usage: "the discarded tile to win on, empty when self drawn"},
		cli.StringFlag{Name: "bonus", Usage: "animal and flower tiles"},
		cli.StringFlag{Name: "seat", Value: "east", Usage: "seat wind"},
		cli.StringFlag{Name: "prevailing", Value: "east", Usage: "prevailing wind"},
		cli.StringFlag{Name: "ruleset", Usage: "ruleset name, rule.default when empty"},
		cli.StringSliceFlag{Name: "score", Usage: "situational score, e.g. hai_di_lao"},
	},
	Action: eval,
}

var dealCommand = cli.Command{
	Name:  "deal",
	Usage: "shuffle a wall, deal four hands and evaluate the dealer",
	Flags: []cli.Flag{
		cli.Int64Flag{Name: "seed", Usage: "shuffle seed"},
	},
	Action: deal,
}

var syncRulesCommand = cli.Command{
	Name:  "sync-rules",
	Usage: "store the rulesets of the config file into the database",
	Flags: []cli.Flag{
		cli.StringSliceFlag{Name: "ruleset", Usage: "ruleset to store, every configured one when omitted"},
	},
	Action: syncRules,
}

func eval(c *cli.Context) error {
	req, err := evalRequest(c)
	if err != nil {
		return err
	}

	rules, closer, err := web.RuleProvider()
	if err != nil {
		return err
	}
	defer closer()

	resp, err := api.Evaluate(req, rules)
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func evalRequest(c *cli.Context) (*protocol.EvaluateRequest, error) {
	req := &protocol.EvaluateRequest{
		Concealed:  splitTiles(c.String("hand")),
		Bonus:      splitTiles(c.String("bonus")),
		Discard:    strings.TrimSpace(c.String("discard")),
		BaseScores: c.StringSlice("score"),
		SeatWind:   c.String("seat"),
		Prevailing: c.String("prevailing"),
		Ruleset:    c.String("ruleset"),
	}
	for _, s := range c.StringSlice("meld") {
		m, err := parseMeldFlag(s)
		if err != nil {
			return nil, err
		}
		req.Melds = append(req.Melds, m)
	}
	return req, nil
}

func deal(c *cli.Context) error {
	rules, closer, err := web.RuleProvider()
	if err != nil {
		return err
	}
	defer closer()

	resp, err := api.Deal(c.Int64("seed"), rules)
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func syncRules(c *cli.Context) error {
	names := c.StringSlice("ruleset")
	if len(names) == 0 {
		for name := range viper.GetStringMap("rules") {
			names = append(names, name)
		}
	}

	provider := rule.NewConfigProvider(viper.GetViper())
	tables := make(map[string]mahjong.ScoreTai, len(names))
	for _, name := range names {
		table, err := provider.ScoreTai(name)
		if err != nil {
			return err
		}
		tables[name] = table
	}

	closer := web.DBStartup()
	defer closer()

	stored := map[string]int{}
	for name, table := range tables {
		if err := db.SaveScoreTai(name, table); err != nil {
			return errors.Wrapf(err, "ruleset %s", name)
		}
		stored[name] = len(table)
	}
	return printJSON(stored)
}

// parseMeldFlag parses TYPE:TILES[/EXTERNAL].
func parseMeldFlag(s string) (protocol.MeldInfo, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return protocol.MeldInfo{}, errors.Wrapf(errutil.ErrInvalidParameter, "meld %q", s)
	}

	info := protocol.MeldInfo{Type: strings.TrimSpace(parts[0])}
	tiles := parts[1]
	if i := strings.Index(tiles, "/"); i >= 0 {
		info.External = strings.TrimSpace(tiles[i+1:])
		tiles = tiles[:i]
	}
	info.Tiles = splitTiles(tiles)
	return info, nil
}

func splitTiles(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
