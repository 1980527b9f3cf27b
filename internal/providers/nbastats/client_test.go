package nbastats

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nbastables/stats-api/internal/providers"
)

func newTestClient(live, stats *httptest.Server) *Client {
	cfg := Config{HTTPClient: &http.Client{Timeout: time.Second}}
	if live != nil {
		cfg.LiveBaseURL = live.URL
	}
	if stats != nil {
		cfg.StatsBaseURL = stats.URL
	}
	return NewClient(cfg)
}

func TestLiveScoreboard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != liveScoreboardPath {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"scoreboard":{"games":[{
			"gameId":"0022400001",
			"gameStatusText":"Final",
			"homeTeam":{"teamId":1610612738,"teamCity":"Boston","teamName":"Celtics","score":120},
			"awayTeam":{"teamId":1610612747,"teamCity":"Los Angeles","teamName":"Lakers","score":110},
			"gameLeaders":{
				"homeLeaders":{"name":"Jayson Tatum","points":35,"rebounds":10,"assists":5},
				"awayLeaders":{"name":"LeBron James","points":30,"rebounds":8,"assists":11}
			}
		}]}}`))
	}))
	defer srv.Close()

	games, err := newTestClient(srv, nil).LiveScoreboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	g := games[0]
	if g.GameID != "0022400001" || g.Status != "Final" {
		t.Fatalf("unexpected game: %+v", g)
	}
	if g.Home.Name != "Boston Celtics" || g.Home.Score != 120 {
		t.Fatalf("unexpected home team: %+v", g.Home)
	}
	if g.Away.Leader.Name != "LeBron James" || g.Away.Leader.Assists != 11 {
		t.Fatalf("unexpected away leader: %+v", g.Away.Leader)
	}
}

func TestLiveBoxScore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/boxscore/boxscore_0022400001.json" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"game":{
			"gameId":"0022400001",
			"gameStatusText":"Q3 4:12",
			"homeTeam":{"teamId":1,"teamCity":"Boston","teamName":"Celtics","teamTricode":"BOS","score":80,"players":[
				{"personId":1628369,"name":"Jayson Tatum","status":"ACTIVE","statistics":{
					"minutes":"PT28M30.00S","points":25,"fieldGoalsMade":9,"fieldGoalsAttempted":17,
					"reboundsTotal":7,"assists":4,"plusMinusPoints":12.0}}
			]},
			"awayTeam":{"teamId":2,"teamCity":"Miami","teamName":"Heat","score":75,"players":[]}
		}}`))
	}))
	defer srv.Close()

	box, err := newTestClient(srv, nil).LiveBoxScore(context.Background(), "0022400001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if box.Status != "Q3 4:12" {
		t.Fatalf("unexpected status %q", box.Status)
	}
	if box.Home.Tricode != "BOS" {
		t.Fatalf("unexpected tricode %q", box.Home.Tricode)
	}
	if len(box.Home.Players) != 1 {
		t.Fatalf("expected 1 home player, got %d", len(box.Home.Players))
	}
	p := box.Home.Players[0]
	if p.PersonID != 1628369 || p.Status != "ACTIVE" || p.Statistics.Minutes != "PT28M30.00S" || p.Statistics.PlusMinusPoints != 12.0 {
		t.Fatalf("unexpected player: %+v", p)
	}
}

func TestDayScheduleParsesHeadersAndLeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("GameDate"); got != "2025-01-14" {
			t.Fatalf("unexpected GameDate %q", got)
		}
		if r.Header.Get("x-nba-stats-origin") != "stats" {
			t.Fatal("expected browser headers on stats API request")
		}
		w.Write([]byte(`{"resultSets":[
			{"name":"GameHeader","headers":[],"rowSet":[
				["0022400001",null,3],
				["0022400002",null,1]
			]},
			{"name":"TeamLeaders","headers":[],"rowSet":[
				["0022400001",1610612738,null,null,"Jayson Tatum",null,null,null,null,35,10,5]
			]}
		]}`))
	}))
	defer srv.Close()

	sched, err := newTestClient(nil, srv).DaySchedule(context.Background(), "2025-01-14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sched.Headers) != 2 || len(sched.Leaders) != 1 {
		t.Fatalf("unexpected schedule: %+v", sched)
	}
	if sched.Headers[0].GameID != "0022400001" || sched.Headers[0].Status != 3 {
		t.Fatalf("unexpected header: %+v", sched.Headers[0])
	}
	l := sched.Leaders[0]
	if l.Name != "Jayson Tatum" || l.TeamID != 1610612738 || l.Points != 35 {
		t.Fatalf("unexpected leader: %+v", l)
	}
}

func TestRateLimitMapsToRateLimitError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestClient(srv, nil).LiveScoreboard(context.Background())
	rlErr, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if rlErr.RetryAfter != 30*time.Second {
		t.Fatalf("expected retry-after 30s, got %v", rlErr.RetryAfter)
	}
}

func TestServerErrorMapsToUpstreamUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv, nil).LiveScoreboard(context.Background())
	if !errors.Is(err, providers.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestMalformedJSONMapsToMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"scoreboard":`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv, nil).LiveScoreboard(context.Background())
	if !errors.Is(err, providers.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestMissingResultSetIsMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resultSets":[{"name":"Other","headers":[],"rowSet":[]}]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(nil, srv).Standings(context.Background())
	if !errors.Is(err, providers.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestCurrentSeasonRollover(t *testing.T) {
	c := NewClient(Config{})
	cases := []struct {
		now  time.Time
		want string
	}{
		{time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), "2024-25"},
		{time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC), "2024-25"},
		{time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), "2025-26"},
		{time.Date(2099, 12, 1, 0, 0, 0, 0, time.UTC), "2099-00"},
	}
	for _, tc := range cases {
		c.now = func() time.Time { return tc.now }
		if got := c.currentSeason(); got != tc.want {
			t.Fatalf("currentSeason(%v) = %s, want %s", tc.now, got, tc.want)
		}
	}
}

func TestStatsURLRoutesThroughProxy(t *testing.T) {
	c := NewClient(Config{Proxy: "https://relay.example.com/fetch"})
	got := c.statsURL(endpointStandings, nil)
	want := "https://relay.example.com/fetch/https%3A%2F%2Fstats.nba.com%2Fstats%2Fleaguestandingsv3%3F"
	if got != want {
		t.Fatalf("statsURL = %s, want %s", got, want)
	}
}
