package providers

import (
	"context"
	"time"

	"github.com/nbastables/stats-api/internal/metrics"
)

// instrumentedProvider records call counts, latency, and rate-limit hits
// for every upstream operation.
type instrumentedProvider struct {
	inner    StatsProvider
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewInstrumentedProvider wraps a provider with metrics recording. A nil
// recorder is valid and records nothing.
func NewInstrumentedProvider(inner StatsProvider, recorder *metrics.Recorder) StatsProvider {
	return &instrumentedProvider{inner: inner, recorder: recorder, now: time.Now}
}

func (p *instrumentedProvider) record(endpoint string, start time.Time, err error) {
	p.recorder.RecordUpstreamCall(endpoint, p.now().Sub(start), err)
	if _, ok := AsRateLimitError(err); ok {
		p.recorder.RecordRateLimit(endpoint)
	}
}

func (p *instrumentedProvider) LiveScoreboard(ctx context.Context) ([]ScoreboardGame, error) {
	start := p.now()
	games, err := p.inner.LiveScoreboard(ctx)
	p.record("live_scoreboard", start, err)
	return games, err
}

func (p *instrumentedProvider) LiveBoxScore(ctx context.Context, gameID string) (*LiveBoxScore, error) {
	start := p.now()
	box, err := p.inner.LiveBoxScore(ctx, gameID)
	p.record("live_boxscore", start, err)
	return box, err
}

func (p *instrumentedProvider) TeamBoxScore(ctx context.Context, gameID string) ([]TeamBoxRow, error) {
	start := p.now()
	rows, err := p.inner.TeamBoxScore(ctx, gameID)
	p.record("team_boxscore", start, err)
	return rows, err
}

func (p *instrumentedProvider) PlayerBoxScore(ctx context.Context, gameID string) ([]PlayerBoxRow, error) {
	start := p.now()
	rows, err := p.inner.PlayerBoxScore(ctx, gameID)
	p.record("player_boxscore", start, err)
	return rows, err
}

func (p *instrumentedProvider) AdvancedBoxScore(ctx context.Context, gameID string) ([]AdvancedPlayerRow, error) {
	start := p.now()
	rows, err := p.inner.AdvancedBoxScore(ctx, gameID)
	p.record("advanced_boxscore", start, err)
	return rows, err
}

func (p *instrumentedProvider) DaySchedule(ctx context.Context, date string) (*DaySchedule, error) {
	start := p.now()
	sched, err := p.inner.DaySchedule(ctx, date)
	p.record("day_schedule", start, err)
	return sched, err
}

func (p *instrumentedProvider) Standings(ctx context.Context) ([]StandingRow, error) {
	start := p.now()
	rows, err := p.inner.Standings(ctx)
	p.record("standings", start, err)
	return rows, err
}

func (p *instrumentedProvider) TeamGameLog(ctx context.Context, teamID int) ([]TeamGameRow, error) {
	start := p.now()
	rows, err := p.inner.TeamGameLog(ctx, teamID)
	p.record("team_game_log", start, err)
	return rows, err
}

func (p *instrumentedProvider) CareerSeasonTotals(ctx context.Context, playerID int) ([]SeasonTotalsRow, error) {
	start := p.now()
	rows, err := p.inner.CareerSeasonTotals(ctx, playerID)
	p.record("career_totals", start, err)
	return rows, err
}
