package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lonng/taiserver/internal/rule"
	"github.com/lonng/taiserver/pkg/errutil"
	"github.com/lonng/taiserver/pkg/whitelist"
	"github.com/lonng/taiserver/protocol"
	"github.com/spf13/viper"
)

const testConfig = `
[rules.test]
full_flush_ping_hu = 10
`

func newTestServer(t *testing.T) *httptest.Server {
	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(strings.NewReader(testConfig)); err != nil {
		t.Fatal(err)
	}
	return httptest.NewServer(startupService(rule.NewConfigProvider(v), nil))
}

func TestPing(t *testing.T) {
	s := newTestServer(t)
	defer s.Close()

	resp, err := http.Get(s.URL + "/ping")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var pong string
	if err := json.NewDecoder(resp.Body).Decode(&pong); err != nil {
		t.Fatal(err)
	}
	if pong != "pong" {
		t.Fatalf("expect pong, got %s", pong)
	}
}

func TestEvaluate(t *testing.T) {
	s := newTestServer(t)
	defer s.Close()

	req := protocol.EvaluateRequest{
		Concealed: []string{"4w", "4w", "4w", "5w"},
		Melds: []protocol.MeldInfo{
			{Type: "chi", Tiles: []string{"2w", "3w"}, External: "1w"},
			{Type: "chi", Tiles: []string{"2w", "3w"}, External: "1w"},
			{Type: "chi", Tiles: []string{"2w", "3w"}, External: "1w"},
		},
		Discard: "3w",
		Ruleset: "test",
	}
	body, _ := json.Marshal(req)

	resp, err := http.Post(s.URL+"/v1/hu/evaluate", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	result := &protocol.EvaluateResponse{}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		t.Fatal(err)
	}
	if !result.Win || result.Tai != 10 || len(result.Melds) != 5 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(result.Scores) != 1 || result.Scores[0].Name != "full_flush_ping_hu" {
		t.Fatalf("unexpected scores: %+v", result.Scores)
	}
}

func TestEvaluate_Error(t *testing.T) {
	s := newTestServer(t)
	defer s.Close()

	cases := []struct {
		body string
		code int
	}{
		{`{"concealed": ["1w", "10w"]}`, errutil.Code(errutil.ErrIllegalTile)},
		{`{"concealed": ["1w"], "melds": [{"type": "pong", "tiles": ["1w", "2w"], "external": "1w"}]}`, errutil.Code(errutil.ErrInvalidMeld)},
		{`{"concealed": ["1w"], "seat_wind": "middle"}`, errutil.Code(errutil.ErrIllegalWind)},
		{`{"concealed": ["1w", "1w", "1w", "1w"], "discard": "1w"}`, errutil.Code(errutil.ErrDismatchTileNum)},
		{`{"concealed": ["1w"], "base_scores": ["kong"]}`, errutil.Code(errutil.ErrUnknownScore)},
	}

	for _, c := range cases {
		resp, err := http.Post(s.URL+"/v1/hu/evaluate", "application/json", strings.NewReader(c.body))
		if err != nil {
			t.Fatal(err)
		}

		e := &protocol.ErrorResponse{}
		err = json.NewDecoder(resp.Body).Decode(e)
		resp.Body.Close()
		if err != nil {
			t.Fatal(err)
		}
		if e.Code != c.code || e.Error == "" {
			t.Fatalf("body: %s, expect code=%d, got %+v", c.body, c.code, e)
		}
	}
}

func TestRules(t *testing.T) {
	s := newTestServer(t)
	defer s.Close()

	resp, err := http.Get(s.URL + "/v1/hu/rules/test")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	r := &protocol.RuleResponse{}
	if err := json.NewDecoder(resp.Body).Decode(r); err != nil {
		t.Fatal(err)
	}
	if r.Scores["full_flush_ping_hu"] != 10 || r.Scores["dragon"] != 1 {
		t.Fatalf("unexpected rules: %+v", r)
	}

	resp, err = http.Get(s.URL + "/v1/hu/rules/nowhere")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	e := &protocol.ErrorResponse{}
	if err := json.NewDecoder(resp.Body).Decode(e); err != nil {
		t.Fatal(err)
	}
	if e.Code != errutil.Code(errutil.ErrRulesetNotFound) {
		t.Fatalf("expect ruleset not found, got %+v", e)
	}
}

func TestWhitelist(t *testing.T) {
	list, err := whitelist.New([]string{`10\.0\.0\..*`})
	if err != nil {
		t.Fatal(err)
	}
	s := httptest.NewServer(startupService(rule.NewConfigProvider(viper.New()), list))
	defer s.Close()

	resp, err := http.Get(s.URL + "/v1/hu/rules/default")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	e := &protocol.ErrorResponse{}
	if err := json.NewDecoder(resp.Body).Decode(e); err != nil {
		t.Fatal(err)
	}
	if e.Code != errutil.Code(errutil.ErrPermissionDenied) {
		t.Fatalf("expect permission denied, got %+v", e)
	}

	// ping is never filtered
	resp, err = http.Get(s.URL + "/ping")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}
