// Package aggregate turns raw upstream feeds into the API's response
// payloads: it fans out per-game fetches, joins leader and boxscore rows,
// derives efficiency metrics, and fronts everything with the TTL cache.
package aggregate

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/nbastables/stats-api/internal/cache"
	"github.com/nbastables/stats-api/internal/injuries"
	"github.com/nbastables/stats-api/internal/logging"
	"github.com/nbastables/stats-api/internal/metrics"
	"github.com/nbastables/stats-api/internal/providers"
	"github.com/nbastables/stats-api/internal/roster"
)

// InjuriesSource reads the most recent scraped injuries snapshot.
type InjuriesSource interface {
	Load() (*injuries.Report, error)
}

// ErrNotFound marks lookups for players or games that do not exist.
var ErrNotFound = errors.New("not found")

// playerStatusActive is the live feed's marker for players who dressed.
const playerStatusActive = "ACTIVE"

// Service aggregates upstream data into response payloads.
type Service struct {
	provider providers.StatsProvider
	roster   *roster.Store
	cache    *cache.Cache
	injuries InjuriesSource
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

// New constructs a Service. The recorder may be nil.
func New(provider providers.StatsProvider, rosterStore *roster.Store, c *cache.Cache, injuriesSource InjuriesSource, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		provider: provider,
		roster:   rosterStore,
		cache:    c,
		injuries: injuriesSource,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

// cachedFetch serves key from the cache and falls back to fetch on a miss,
// storing a successful result for ttl. Errors are never cached.
func cachedFetch[T any](s *Service, key string, ttl time.Duration, category string, fetch func() (T, error)) (T, error) {
	if raw, ok := s.cache.Get(key); ok {
		if value, ok := raw.(T); ok {
			s.recorder.RecordCacheLookup(category, true)
			return value, nil
		}
	}
	s.recorder.RecordCacheLookup(category, false)

	value, err := fetch()
	if err != nil {
		var zero T
		return zero, err
	}
	s.cache.Set(key, value, ttl)
	return value, nil
}

func (s *Service) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, s.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// startedGameIDs filters a day's schedule to games that have tipped off.
func startedGameIDs(headers []providers.GameHeader) []string {
	ids := make([]string, 0, len(headers))
	for _, h := range headers {
		if h.Status > 1 {
			ids = append(ids, h.GameID)
		}
	}
	return ids
}
