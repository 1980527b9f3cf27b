package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/nbastables/stats-api/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider retries the cheap single-call operations with linear
// backoff. Per-game operations pass through untouched: they already run
// inside a bounded fan-out where the caller decides how partial failures
// degrade, and retrying each of a dozen concurrent fetches multiplies
// upstream load exactly when upstream is struggling.
type retryingProvider struct {
	inner       StatsProvider
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries on its
// single-call operations. Non-positive maxAttempts/backoff select defaults.
func NewRetryingProvider(inner StatsProvider, logger *slog.Logger, maxAttempts int, backoff time.Duration) StatsProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) LiveScoreboard(ctx context.Context) ([]ScoreboardGame, error) {
	return retry(ctx, r, "live_scoreboard", func() ([]ScoreboardGame, error) {
		return r.inner.LiveScoreboard(ctx)
	})
}

func (r *retryingProvider) DaySchedule(ctx context.Context, date string) (*DaySchedule, error) {
	return retry(ctx, r, "day_schedule", func() (*DaySchedule, error) {
		return r.inner.DaySchedule(ctx, date)
	})
}

func (r *retryingProvider) Standings(ctx context.Context) ([]StandingRow, error) {
	return retry(ctx, r, "standings", func() ([]StandingRow, error) {
		return r.inner.Standings(ctx)
	})
}

func (r *retryingProvider) LiveBoxScore(ctx context.Context, gameID string) (*LiveBoxScore, error) {
	return r.inner.LiveBoxScore(ctx, gameID)
}

func (r *retryingProvider) TeamBoxScore(ctx context.Context, gameID string) ([]TeamBoxRow, error) {
	return r.inner.TeamBoxScore(ctx, gameID)
}

func (r *retryingProvider) PlayerBoxScore(ctx context.Context, gameID string) ([]PlayerBoxRow, error) {
	return r.inner.PlayerBoxScore(ctx, gameID)
}

func (r *retryingProvider) AdvancedBoxScore(ctx context.Context, gameID string) ([]AdvancedPlayerRow, error) {
	return r.inner.AdvancedBoxScore(ctx, gameID)
}

func (r *retryingProvider) TeamGameLog(ctx context.Context, teamID int) ([]TeamGameRow, error) {
	return r.inner.TeamGameLog(ctx, teamID)
}

func (r *retryingProvider) CareerSeasonTotals(ctx context.Context, playerID int) ([]SeasonTotalsRow, error) {
	return r.inner.CareerSeasonTotals(ctx, playerID)
}

func retry[T any](ctx context.Context, r *retryingProvider, op string, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		value, err := fn()
		if err == nil {
			return value, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "upstream fetch retry",
			logging.FieldEndpoint, op, "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(r.backoffFn(attempt)):
		}
	}

	r.logWarn(ctx, "upstream fetch failed",
		logging.FieldEndpoint, op, "attempts", r.maxAttempts, "err", lastErr)
	return zero, lastErr
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
