package model

// ScoreTai is one score of a named ruleset and its worth in tai.
type ScoreTai struct {
	Id       int64
	Ruleset  string `xorm:"not null unique(ruleset_score) VARCHAR(32) default"`
	Score    string `xorm:"not null unique(ruleset_score) VARCHAR(32) default"`
	Tai      int    `xorm:"not null INT(11) default 0"`
	UpdateAt int64  `xorm:"not null BIGINT(20) default"`
}
