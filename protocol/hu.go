package protocol

// MeldInfo describes a meld by name: type is sequence|triplet|exposed_quad|
// concealed_quad|pair (chi, pong, gang, angang, eye also accepted).
type MeldInfo struct {
	Type     string   `json:"type"`
	Tiles    []string `json:"tiles"`              //自己的牌
	External string   `json:"external,omitempty"` //吃碰杠的那张牌
}

type EvaluateRequest struct {
	Concealed  []string   `json:"concealed"`             //手牌
	Melds      []MeldInfo `json:"melds,omitempty"`       //已经吃碰杠的牌
	Bonus      []string   `json:"bonus,omitempty"`       //花牌, 动物牌
	Discard    string     `json:"discard,omitempty"`     //点炮的牌, 为空表示自摸
	BaseScores []string   `json:"base_scores,omitempty"` //海底捞, 杠上花...
	SeatWind   string     `json:"seat_wind"`
	Prevailing string     `json:"prevailing_wind"`
	Ruleset    string     `json:"ruleset,omitempty"`
}

type ScoreInfo struct {
	Name string `json:"name"`
	Tai  int    `json:"tai"`
}

type EvaluateResponse struct {
	Code    int         `json:"code"`
	Win     bool        `json:"win"`
	Tai     int         `json:"tai"`
	Scores  []ScoreInfo `json:"scores"`
	Melds   []MeldInfo  `json:"melds"`
	Ruleset string      `json:"ruleset"`
}

type RuleResponse struct {
	Code    int            `json:"code"`
	Ruleset string         `json:"ruleset"`
	Scores  map[string]int `json:"scores"`
}

// DealResponse is a dealt wall: every seat's hand and the dealer's result.
type DealResponse struct {
	Seed      int64             `json:"seed"`
	Dealer    int               `json:"dealer"`
	Hands     []EvaluateRequest `json:"hands"`
	Remaining int               `json:"remaining"`
	Result    *EvaluateResponse `json:"result"`
}
