package db

import (
	"sort"
	"time"

	"github.com/lonng/taiserver/db/model"
	"github.com/lonng/taiserver/internal/mahjong"
	"github.com/lonng/taiserver/internal/rule"
	"github.com/lonng/taiserver/pkg/errutil"
	"github.com/pkg/errors"
)

// QueryScoreTai loads the table of a ruleset on top of the default table.
// Rows naming an unknown score are skipped.
func QueryScoreTai(ruleset string) (mahjong.ScoreTai, error) {
	var rows []*model.ScoreTai
	if err := DB.Where("ruleset=?", ruleset).Asc("id").Find(&rows); err != nil {
		return nil, errors.Wrap(errutil.ErrDBOperation, err.Error())
	}
	if len(rows) == 0 {
		return nil, errors.Wrapf(errutil.ErrRulesetNotFound, "ruleset %q", ruleset)
	}
	return fromRows(rows), nil
}

// SaveScoreTai replaces every row of the ruleset with table.
func SaveScoreTai(ruleset string, table mahjong.ScoreTai) error {
	if ruleset == "" {
		return errutil.ErrInvalidParameter
	}

	session := DB.NewSession()
	defer session.Close()

	if err := session.Begin(); err != nil {
		return errors.Wrap(errutil.ErrDBOperation, err.Error())
	}

	if _, err := session.Where("ruleset=?", ruleset).Delete(&model.ScoreTai{}); err != nil {
		session.Rollback()
		return errors.Wrap(errutil.ErrDBOperation, err.Error())
	}

	rows := toRows(ruleset, table, time.Now().Unix())
	if len(rows) > 0 {
		if _, err := session.Insert(&rows); err != nil {
			session.Rollback()
			return errors.Wrap(errutil.ErrDBOperation, err.Error())
		}
	}

	return session.Commit()
}

// QueryRulesets lists the names of every stored ruleset.
func QueryRulesets() ([]string, error) {
	var rows []*model.ScoreTai
	if err := DB.Distinct("ruleset").Asc("ruleset").Find(&rows); err != nil {
		return nil, errors.Wrap(errutil.ErrDBOperation, err.Error())
	}
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Ruleset
	}
	return names, nil
}

// Rulesets serves score tables stored in the database.
type Rulesets struct {
	Default string
}

func (r *Rulesets) ScoreTai(name string) (mahjong.ScoreTai, error) {
	if name == "" {
		name = r.Default
	}
	return QueryScoreTai(name)
}

func toRows(ruleset string, table mahjong.ScoreTai, now int64) []*model.ScoreTai {
	scores := make([]int, 0, len(table))
	for s := range table {
		scores = append(scores, int(s))
	}
	sort.Ints(scores)

	rows := make([]*model.ScoreTai, 0, len(scores))
	for _, s := range scores {
		score := mahjong.Score(s)
		rows = append(rows, &model.ScoreTai{
			Ruleset:  ruleset,
			Score:    score.String(),
			Tai:      table[score],
			UpdateAt: now,
		})
	}
	return rows
}

func fromRows(rows []*model.ScoreTai) mahjong.ScoreTai {
	table := rule.Default()
	for _, r := range rows {
		score, err := mahjong.ParseScore(r.Score)
		if err != nil {
			logger.Warnf("ruleset %s: ignore unknown score %s", r.Ruleset, r.Score)
			continue
		}
		table[score] = r.Tai
	}
	return table
}
