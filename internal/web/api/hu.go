package api

import (
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/lonng/nex"
	"github.com/lonng/taiserver/internal/mahjong"
	"github.com/lonng/taiserver/internal/rule"
	"github.com/lonng/taiserver/pkg/errutil"
	"github.com/lonng/taiserver/protocol"
	log "github.com/sirupsen/logrus"
)

var logger = log.WithField("component", "api")

type huService struct {
	rules rule.Provider
}

// MakeHuService routes the evaluation endpoints; before runs ahead of every
// handler, e.g. an ip filter.
func MakeHuService(rules rule.Provider, before ...nex.BeforeFunc) http.Handler {
	s := &huService{rules: rules}

	router := mux.NewRouter()
	router.Handle("/v1/hu/evaluate", nex.Handler(s.evaluate).Before(before...)).Methods("POST") //计算胡牌台数
	router.Handle("/v1/hu/rules/{name}", nex.Handler(s.ruleByName).Before(before...)).Methods("GET")
	router.Handle("/v1/hu/deal", nex.Handler(s.deal).Before(before...)).Methods("GET") //随机发一副牌
	return router
}

func (s *huService) evaluate(req *protocol.EvaluateRequest) (*protocol.EvaluateResponse, error) {
	return Evaluate(req, s.rules)
}

func (s *huService) ruleByName(r *http.Request) (*protocol.RuleResponse, error) {
	name, ok := mux.Vars(r)["name"]
	if !ok || name == "" {
		return nil, errutil.ErrInvalidParameter
	}

	table, err := s.rules.ScoreTai(name)
	if err != nil {
		return nil, err
	}

	resp := &protocol.RuleResponse{Ruleset: name, Scores: map[string]int{}}
	for score, tai := range table {
		resp.Scores[score.String()] = tai
	}
	return resp, nil
}

func (s *huService) deal(r *http.Request) (*protocol.DealResponse, error) {
	seed := time.Now().UnixNano()
	if v := r.URL.Query().Get("seed"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errutil.ErrInvalidParameter
		}
		seed = n
	}
	return Deal(seed, s.rules)
}

// Evaluate finds the best way for the requested hand to win under the
// requested ruleset, falling back to the default table.
func Evaluate(req *protocol.EvaluateRequest, rules rule.Provider) (*protocol.EvaluateResponse, error) {
	hand, err := BuildHand(req)
	if err != nil {
		return nil, err
	}

	ctx, err := NewContext(req)
	if err != nil {
		return nil, err
	}
	ctx.Table = rule.Resolve(rules, req.Ruleset)

	resp := &protocol.EvaluateResponse{Ruleset: req.Ruleset, Scores: []protocol.ScoreInfo{}, Melds: []protocol.MeldInfo{}}
	hu := mahjong.SearchHu(hand, ctx)
	if hu == nil {
		return resp, nil
	}

	resp.Win = true
	resp.Tai = hu.Tai
	for _, s := range hu.Scores {
		resp.Scores = append(resp.Scores, protocol.ScoreInfo{Name: s.String(), Tai: ctx.Table[s]})
	}
	for _, m := range hu.Melds {
		resp.Melds = append(resp.Melds, meldInfo(m))
	}

	logger.Debugf("Concealed=%v Discard=%s Tai=%d", req.Concealed, req.Discard, hu.Tai)
	return resp, nil
}

// Deal shuffles a wall with seed, deals four hands with east as dealer and
// evaluates the dealer's hand as self-drawn.
func Deal(seed int64, rules rule.Provider) (*protocol.DealResponse, error) {
	const dealer = 0

	wall := mahjong.NewWall()
	wall.Shuffle(rand.New(rand.NewSource(seed)))

	hands := make([]*mahjong.Hand, 4)
	for i := range hands {
		hands[i] = mahjong.NewHand()
	}
	if err := wall.Deal(hands, dealer); err != nil {
		return nil, err
	}

	resp := &protocol.DealResponse{Seed: seed, Dealer: dealer, Remaining: wall.Remaining()}
	for i, h := range hands {
		req := DescribeHand(h, mahjong.Wind(i+1))
		req.Prevailing = mahjong.East.String()
		resp.Hands = append(resp.Hands, req)
	}

	result, err := Evaluate(&resp.Hands[dealer], rules)
	if err != nil {
		return nil, err
	}
	resp.Result = result
	return resp, nil
}
