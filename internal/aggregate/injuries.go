package aggregate

import (
	"context"

	"github.com/nbastables/stats-api/internal/cache"
	"github.com/nbastables/stats-api/internal/injuries"
)

// Injuries serves the scraped injuries report through the cache so steady
// request traffic does not reread the snapshot on every call. A missing
// snapshot surfaces uncached, so the endpoint recovers as soon as the
// refresher writes one.
func (s *Service) Injuries(ctx context.Context) (*injuries.Report, error) {
	return cachedFetch(s, keyInjuries, cache.TTLInjuries, "injuries", func() (*injuries.Report, error) {
		return s.injuries.Load()
	})
}
