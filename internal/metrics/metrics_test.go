package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecordUpstreamCallCounts(t *testing.T) {
	rec := NewRecorder()

	rec.RecordUpstreamCall("live_scoreboard", 20*time.Millisecond, nil)
	rec.RecordUpstreamCall("live_scoreboard", 30*time.Millisecond, errors.New("boom"))

	if got := rec.UpstreamCalls("live_scoreboard"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.UpstreamErrors("live_scoreboard"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("live_scoreboard"); got != 30*time.Millisecond {
		t.Fatalf("expected last latency 30ms, got %v", got)
	}
}

func TestRecordRateLimit(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("standings")
	rec.RecordRateLimit("standings")

	if got := rec.RateLimitHits("standings"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	rec := NewRecorder()
	rec.RecordCacheLookup("scoreboard", true)
	rec.RecordCacheLookup("scoreboard", false)
	rec.RecordCacheLookup("scoreboard", false)

	if got := rec.CacheHits("scoreboard"); got != 1 {
		t.Fatalf("expected 1 hit, got %d", got)
	}
	if got := rec.CacheMisses("scoreboard"); got != 2 {
		t.Fatalf("expected 2 misses, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordUpstreamCall("x", time.Millisecond, nil)
	rec.RecordRateLimit("x")
	rec.RecordCacheLookup("x", true)
	rec.RecordHTTPRequest("GET", "/api/health", 200, time.Millisecond)
	rec.RecordScrape(time.Millisecond, nil)

	if rec.UpstreamCalls("x") != 0 || rec.CacheHits("x") != 0 {
		t.Fatal("nil recorder should report zeros")
	}
}

func TestSetupDisabledReturnsRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(nil, TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatal("expected recorder")
	}
	if handler != nil {
		t.Fatal("expected no prometheus handler when disabled")
	}
	if shutdown == nil {
		t.Fatal("expected shutdown func")
	}
}
