package injuries

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nbastables/stats-api/internal/metrics"
)

// DefaultScrapeInterval matches the snapshot's serving TTL.
const DefaultScrapeInterval = 2 * time.Hour

// Refresher periodically re-scrapes the injury report into the store. A
// missing snapshot is scraped immediately on Start so the endpoint works
// from first boot.
type Refresher struct {
	scraper  *Scraper
	store    *FileStore
	logger   *slog.Logger
	recorder *metrics.Recorder
	interval time.Duration
	cron     *cron.Cron
	now      func() time.Time
}

// NewRefresher constructs a refresher. Non-positive interval selects the
// default.
func NewRefresher(scraper *Scraper, store *FileStore, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = DefaultScrapeInterval
	}
	return &Refresher{
		scraper:  scraper,
		store:    store,
		logger:   logger,
		recorder: recorder,
		interval: interval,
		now:      time.Now,
	}
}

// Start scrapes once if no snapshot exists, then schedules periodic
// refreshes until Stop is called.
func (r *Refresher) Start(ctx context.Context) error {
	if _, err := r.store.Load(); errors.Is(err, ErrNoSnapshot) {
		if err := r.refresh(ctx); err != nil {
			r.logWarn("initial injuries scrape failed", err)
		}
	}

	r.cron = cron.New()
	spec := fmt.Sprintf("@every %s", r.interval)
	if _, err := r.cron.AddFunc(spec, func() {
		if err := r.refresh(context.Background()); err != nil {
			r.logWarn("scheduled injuries scrape failed", err)
		}
	}); err != nil {
		return fmt.Errorf("injuries: schedule refresh: %w", err)
	}
	r.cron.Start()
	return nil
}

// Stop halts the schedule and waits for an in-flight scrape to finish.
func (r *Refresher) Stop() {
	if r.cron == nil {
		return
	}
	<-r.cron.Stop().Done()
}

func (r *Refresher) refresh(ctx context.Context) error {
	start := r.now()
	report, err := r.scraper.Scrape(ctx)
	if err == nil {
		err = r.store.Save(report)
	}
	r.recorder.RecordScrape(r.now().Sub(start), err)
	if err != nil {
		return err
	}

	if r.logger != nil {
		r.logger.Info("injuries snapshot refreshed", "teams", len(report.Injuries))
	}
	return nil
}

func (r *Refresher) logWarn(msg string, err error) {
	if r.logger != nil {
		r.logger.Warn(msg, "err", err)
	}
}
