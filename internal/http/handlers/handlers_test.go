package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/nbastables/stats-api/internal/aggregate"
	"github.com/nbastables/stats-api/internal/domain"
	apihttp "github.com/nbastables/stats-api/internal/http"
	"github.com/nbastables/stats-api/internal/http/handlers"
	"github.com/nbastables/stats-api/internal/injuries"
	"github.com/nbastables/stats-api/internal/providers"
	"github.com/nbastables/stats-api/internal/roster"
)

// stubService scripts the aggregation layer per test.
type stubService struct {
	scoreboardFn    func(ctx context.Context) (domain.ScoreboardResponse, error)
	boxScoresFn     func(ctx context.Context, daysOffset int) (domain.BoxScoresResponse, error)
	leadersFn       func(ctx context.Context, daysOffset int) (domain.LeadersResponse, error)
	gamePlayersFn   func(ctx context.Context, gameID string) (domain.GamePlayersResponse, error)
	playerStatsFn   func(ctx context.Context, ids []int) (domain.PlayerStatsResponse, error)
	playerAdvFn     func(ctx context.Context, ids []int) (domain.PlayerAdvancedResponse, error)
	standingsFn     func(ctx context.Context) (domain.StandingsResponse, error)
	doubleDoublesFn func(ctx context.Context, daysOffset int) (domain.DoubleDoublesResponse, error)
	lastNGamesFn    func(ctx context.Context, playerID, n int) (domain.GameLogResponse, error)
	seasonAvgFn     func(ctx context.Context, playerID int) (domain.SeasonAverages, error)
	injuriesFn      func(ctx context.Context) (*injuries.Report, error)
}

func (s *stubService) Scoreboard(ctx context.Context) (domain.ScoreboardResponse, error) {
	return s.scoreboardFn(ctx)
}

func (s *stubService) BoxScores(ctx context.Context, daysOffset int) (domain.BoxScoresResponse, error) {
	return s.boxScoresFn(ctx, daysOffset)
}

func (s *stubService) Leaders(ctx context.Context, daysOffset int) (domain.LeadersResponse, error) {
	return s.leadersFn(ctx, daysOffset)
}

func (s *stubService) GamePlayers(ctx context.Context, gameID string) (domain.GamePlayersResponse, error) {
	return s.gamePlayersFn(ctx, gameID)
}

func (s *stubService) PlayerStats(ctx context.Context, ids []int) (domain.PlayerStatsResponse, error) {
	return s.playerStatsFn(ctx, ids)
}

func (s *stubService) PlayerAdvanced(ctx context.Context, ids []int) (domain.PlayerAdvancedResponse, error) {
	return s.playerAdvFn(ctx, ids)
}

func (s *stubService) Standings(ctx context.Context) (domain.StandingsResponse, error) {
	return s.standingsFn(ctx)
}

func (s *stubService) DoubleDoubles(ctx context.Context, daysOffset int) (domain.DoubleDoublesResponse, error) {
	return s.doubleDoublesFn(ctx, daysOffset)
}

func (s *stubService) LastNGames(ctx context.Context, playerID, n int) (domain.GameLogResponse, error) {
	return s.lastNGamesFn(ctx, playerID, n)
}

func (s *stubService) SeasonAverages(ctx context.Context, playerID int) (domain.SeasonAverages, error) {
	return s.seasonAvgFn(ctx, playerID)
}

func (s *stubService) Injuries(ctx context.Context) (*injuries.Report, error) {
	if s.injuriesFn == nil {
		return nil, injuries.ErrNoSnapshot
	}
	return s.injuriesFn(ctx)
}

func newTestRouter(t *testing.T, svc handlers.StatsService) http.Handler {
	t.Helper()
	path := filepath.Join(t.TempDir(), "players.json")
	content := `[
		[2544, "LeBron James", 1610612747],
		[1628369, "Jayson Tatum", 1610612738]
	]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write roster: %v", err)
	}
	h := handlers.New(svc, roster.NewStore(path), nil)
	return apihttp.NewRouter(h, nil, nil)
}

func doRequest(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, &stubService{})
	rec := doRequest(t, router, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestScoreboardOK(t *testing.T) {
	svc := &stubService{
		scoreboardFn: func(ctx context.Context) (domain.ScoreboardResponse, error) {
			return domain.ScoreboardResponse{Games: []domain.GameSummary{{GameID: "g1", Status: "Final"}}}, nil
		},
	}
	rec := doRequest(t, newTestRouter(t, svc), "/api/scoreboard")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp domain.ScoreboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Games) != 1 || resp.Games[0].GameID != "g1" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestScoreboardUpstreamFailureIs502(t *testing.T) {
	svc := &stubService{
		scoreboardFn: func(ctx context.Context) (domain.ScoreboardResponse, error) {
			return domain.ScoreboardResponse{}, providers.ErrUpstreamUnavailable
		},
	}
	rec := doRequest(t, newTestRouter(t, svc), "/api/scoreboard")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestScoreboardRateLimitIs503(t *testing.T) {
	svc := &stubService{
		scoreboardFn: func(ctx context.Context) (domain.ScoreboardResponse, error) {
			return domain.ScoreboardResponse{}, &providers.RateLimitError{StatusCode: 429}
		},
	}
	rec := doRequest(t, newTestRouter(t, svc), "/api/scoreboard")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestBoxScoresPassesOffset(t *testing.T) {
	var gotOffset int
	svc := &stubService{
		boxScoresFn: func(ctx context.Context, daysOffset int) (domain.BoxScoresResponse, error) {
			gotOffset = daysOffset
			return domain.BoxScoresResponse{Date: "January 12, 2025"}, nil
		},
	}
	rec := doRequest(t, newTestRouter(t, svc), "/api/boxscores?days_offset=3")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotOffset != 3 {
		t.Fatalf("expected offset 3, got %d", gotOffset)
	}
}

func TestBoxScoresRejectsBadOffset(t *testing.T) {
	router := newTestRouter(t, &stubService{})
	for _, path := range []string{
		"/api/boxscores?days_offset=abc",
		"/api/boxscores?days_offset=-1",
		"/api/boxscores?days_offset=8",
	} {
		if rec := doRequest(t, router, path); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, rec.Code)
		}
	}
}

func TestPlayerSearch(t *testing.T) {
	router := newTestRouter(t, &stubService{})
	rec := doRequest(t, router, "/api/players/search?q=le")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp domain.PlayerSearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Players) != 1 || resp.Players[0].Name != "LeBron James" {
		t.Fatalf("unexpected players: %+v", resp.Players)
	}
}

func TestPlayerSearchRejectsShortQuery(t *testing.T) {
	router := newTestRouter(t, &stubService{})
	if rec := doRequest(t, router, "/api/players/search?q=l"); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if rec := doRequest(t, router, "/api/players/search"); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPlayerStatsParsesIDs(t *testing.T) {
	var gotIDs []int
	svc := &stubService{
		playerStatsFn: func(ctx context.Context, ids []int) (domain.PlayerStatsResponse, error) {
			gotIDs = ids
			return domain.PlayerStatsResponse{Players: []domain.PlayerGameStats{}}, nil
		},
	}
	rec := doRequest(t, newTestRouter(t, svc), "/api/players/stats?ids=2544,1628369")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(gotIDs) != 2 || gotIDs[0] != 2544 || gotIDs[1] != 1628369 {
		t.Fatalf("unexpected ids: %v", gotIDs)
	}
}

func TestPlayerStatsRejectsBadIDs(t *testing.T) {
	router := newTestRouter(t, &stubService{})
	for _, path := range []string{
		"/api/players/stats",
		"/api/players/stats?ids=",
		"/api/players/stats?ids=1,abc",
	} {
		if rec := doRequest(t, router, path); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, rec.Code)
		}
	}
}

func TestPlayerStatsUnknownIDsYieldEmptyList(t *testing.T) {
	svc := &stubService{
		playerStatsFn: func(ctx context.Context, ids []int) (domain.PlayerStatsResponse, error) {
			return domain.PlayerStatsResponse{Players: []domain.PlayerGameStats{}}, nil
		},
	}
	rec := doRequest(t, newTestRouter(t, svc), "/api/players/stats?ids=999")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp domain.PlayerStatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Players == nil || len(resp.Players) != 0 {
		t.Fatalf("expected empty players list, got %+v", resp.Players)
	}
}

func TestLastNGamesParams(t *testing.T) {
	var gotID, gotN int
	svc := &stubService{
		lastNGamesFn: func(ctx context.Context, playerID, n int) (domain.GameLogResponse, error) {
			gotID, gotN = playerID, n
			return domain.GameLogResponse{PlayerID: playerID}, nil
		},
	}
	router := newTestRouter(t, svc)

	if rec := doRequest(t, router, "/api/players/2544/last-n-games?n=10"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != 2544 || gotN != 10 {
		t.Fatalf("unexpected params: id=%d n=%d", gotID, gotN)
	}

	// Default n.
	doRequest(t, router, "/api/players/2544/last-n-games")
	if gotN != 5 {
		t.Fatalf("expected default n=5, got %d", gotN)
	}
}

func TestLastNGamesRejectsBadParams(t *testing.T) {
	router := newTestRouter(t, &stubService{})
	for _, path := range []string{
		"/api/players/abc/last-n-games",
		"/api/players/2544/last-n-games?n=0",
		"/api/players/2544/last-n-games?n=16",
		"/api/players/2544/last-n-games?n=x",
	} {
		if rec := doRequest(t, router, path); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, rec.Code)
		}
	}
}

func TestLastNGamesUnknownPlayer404(t *testing.T) {
	svc := &stubService{
		lastNGamesFn: func(ctx context.Context, playerID, n int) (domain.GameLogResponse, error) {
			return domain.GameLogResponse{}, aggregate.ErrNotFound
		},
	}
	rec := doRequest(t, newTestRouter(t, svc), "/api/players/999/last-n-games")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestSeasonAveragesUnknownPlayer404(t *testing.T) {
	svc := &stubService{
		seasonAvgFn: func(ctx context.Context, playerID int) (domain.SeasonAverages, error) {
			return domain.SeasonAverages{}, aggregate.ErrNotFound
		},
	}
	rec := doRequest(t, newTestRouter(t, svc), "/api/players/999/season-avg")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestInjuriesServesSnapshot(t *testing.T) {
	svc := &stubService{
		injuriesFn: func(ctx context.Context) (*injuries.Report, error) {
			return &injuries.Report{
				Source:      "CBS Sports",
				LastUpdated: "January 15, 2025 09:30 UTC",
				Injuries:    []injuries.TeamReport{{Team: "Boston Celtics"}},
			}, nil
		},
	}
	rec := doRequest(t, newTestRouter(t, svc), "/api/injuries")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var report injuries.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.Source != "CBS Sports" || len(report.Injuries) != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestInjuriesMissingSnapshotIs503(t *testing.T) {
	rec := doRequest(t, newTestRouter(t, &stubService{}), "/api/injuries")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestGamePlayers(t *testing.T) {
	var gotGameID string
	svc := &stubService{
		gamePlayersFn: func(ctx context.Context, gameID string) (domain.GamePlayersResponse, error) {
			gotGameID = gameID
			return domain.GamePlayersResponse{GameID: gameID}, nil
		},
	}
	rec := doRequest(t, newTestRouter(t, svc), "/api/games/0022400001/players")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotGameID != "0022400001" {
		t.Fatalf("unexpected game id %q", gotGameID)
	}
}

func TestDoubleDoublesDefaultsToToday(t *testing.T) {
	var gotOffset = -1
	svc := &stubService{
		doubleDoublesFn: func(ctx context.Context, daysOffset int) (domain.DoubleDoublesResponse, error) {
			gotOffset = daysOffset
			return domain.DoubleDoublesResponse{}, nil
		},
	}
	rec := doRequest(t, newTestRouter(t, svc), "/api/doubledoubles")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotOffset != 0 {
		t.Fatalf("expected default offset 0, got %d", gotOffset)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	rec := doRequest(t, newTestRouter(t, &stubService{}), "/api/nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
