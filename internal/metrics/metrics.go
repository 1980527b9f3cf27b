package metrics

import (
	"sync"
	"time"
)

type endpointStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastCallLatency time.Duration
}

type cacheStats struct {
	hits   int
	misses int
}

// Recorder captures lightweight, in-memory metrics about upstream calls,
// cache behavior, and scrape cycles. It mirrors everything into OpenTelemetry
// instruments when telemetry is enabled.
type Recorder struct {
	mu       sync.Mutex
	upstream map[string]*endpointStats
	cache    map[string]*cacheStats
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		upstream: make(map[string]*endpointStats),
		cache:    make(map[string]*cacheStats),
		otel:     otel,
	}
}

// RecordUpstreamCall increments counters for an upstream endpoint call and
// stores the last observed latency.
func (r *Recorder) RecordUpstreamCall(endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureUpstream(endpoint)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamCall(endpoint, duration, err)
	}
}

// RecordRateLimit tracks that an upstream response hit a rate limit.
func (r *Recorder) RecordRateLimit(endpoint string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.ensureUpstream(endpoint).rateLimitHits++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(endpoint)
	}
}

// RecordCacheLookup tracks a cache hit or miss for a cache key category.
func (r *Recorder) RecordCacheLookup(category string, hit bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.cache[category]
	if !ok {
		stats = &cacheStats{}
		r.cache[category] = stats
	}
	if hit {
		stats.hits++
	} else {
		stats.misses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheLookup(category, hit)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordScrape tracks injuries scrape cycles and errors.
func (r *Recorder) RecordScrape(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordScrape(duration, err)
}

// UpstreamCalls returns the total attempts recorded for an endpoint.
func (r *Recorder) UpstreamCalls(endpoint string) int {
	return r.snapshotUpstream(endpoint).calls
}

// UpstreamErrors returns the total failed attempts recorded for an endpoint.
func (r *Recorder) UpstreamErrors(endpoint string) int {
	return r.snapshotUpstream(endpoint).errors
}

// RateLimitHits returns the number of rate limit events seen for an endpoint.
func (r *Recorder) RateLimitHits(endpoint string) int {
	return r.snapshotUpstream(endpoint).rateLimitHits
}

// LastCallLatency returns the last recorded latency for an endpoint call.
func (r *Recorder) LastCallLatency(endpoint string) time.Duration {
	return r.snapshotUpstream(endpoint).lastCallLatency
}

// CacheHits returns the recorded hit count for a cache category.
func (r *Recorder) CacheHits(category string) int {
	h, _ := r.snapshotCache(category)
	return h
}

// CacheMisses returns the recorded miss count for a cache category.
func (r *Recorder) CacheMisses(category string) int {
	_, m := r.snapshotCache(category)
	return m
}

func (r *Recorder) ensureUpstream(endpoint string) *endpointStats {
	stats, ok := r.upstream[endpoint]
	if !ok {
		stats = &endpointStats{}
		r.upstream[endpoint] = stats
	}
	return stats
}

func (r *Recorder) snapshotUpstream(endpoint string) endpointStats {
	if r == nil {
		return endpointStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.upstream[endpoint]; ok && stats != nil {
		return *stats
	}
	return endpointStats{}
}

func (r *Recorder) snapshotCache(category string) (int, int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.cache[category]; ok && stats != nil {
		return stats.hits, stats.misses
	}
	return 0, 0
}
