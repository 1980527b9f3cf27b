package cache

import (
	"testing"
	"time"
)

func newTestCache(start time.Time) (*Cache, *time.Time) {
	current := start
	c := New()
	c.now = func() time.Time { return current }
	return c, &current
}

func TestSetThenGetReturnsValue(t *testing.T) {
	c, _ := newTestCache(time.Unix(1000, 0))

	c.Set("scoreboard", "payload", 30*time.Second)
	got, ok := c.Get("scoreboard")
	if !ok {
		t.Fatal("expected hit")
	}
	if got != "payload" {
		t.Fatalf("expected payload, got %v", got)
	}
}

func TestGetAfterTTLExpiresAndEvicts(t *testing.T) {
	c, current := newTestCache(time.Unix(1000, 0))

	c.Set("k", 42, 30*time.Second)
	*current = current.Add(30 * time.Second)

	if _, ok := c.Get("k"); ok {
		t.Fatal("expected miss at exact expiry (strictly-before semantics)")
	}
	if c.Len() != 0 {
		t.Fatal("expected expired entry evicted")
	}
}

func TestGetJustBeforeExpiryHits(t *testing.T) {
	c, current := newTestCache(time.Unix(1000, 0))

	c.Set("k", 42, 30*time.Second)
	*current = current.Add(30*time.Second - time.Nanosecond)

	if _, ok := c.Get("k"); !ok {
		t.Fatal("expected hit just before expiry")
	}
}

func TestSetOverwritesAndResetsTTL(t *testing.T) {
	c, current := newTestCache(time.Unix(1000, 0))

	c.Set("k", "old", 10*time.Second)
	*current = current.Add(8 * time.Second)
	c.Set("k", "new", 10*time.Second)
	*current = current.Add(8 * time.Second)

	got, ok := c.Get("k")
	if !ok {
		t.Fatal("expected hit; TTL should reset from second Set")
	}
	if got != "new" {
		t.Fatalf("expected new value, got %v", got)
	}
}

func TestSetAfterExpiryActsAsFreshInsert(t *testing.T) {
	c, current := newTestCache(time.Unix(1000, 0))

	c.Set("k", "old", time.Second)
	*current = current.Add(time.Minute)
	c.Set("k", "fresh", time.Second)

	got, ok := c.Get("k")
	if !ok || got != "fresh" {
		t.Fatalf("expected fresh value, got %v ok=%v", got, ok)
	}
}

func TestClearEmptiesAllKeys(t *testing.T) {
	c, _ := newTestCache(time.Unix(1000, 0))

	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)
	c.Clear()

	if c.Len() != 0 {
		t.Fatalf("expected empty cache, got %d entries", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected miss after clear")
	}
}

func TestMissOnAbsentKey(t *testing.T) {
	c, _ := newTestCache(time.Unix(1000, 0))
	if _, ok := c.Get("nope"); ok {
		t.Fatal("expected miss for absent key")
	}
}

func TestTTLForOffset(t *testing.T) {
	cases := []struct {
		offset int
		want   time.Duration
	}{
		{0, TTLBoxScores},
		{1, TTLBoxScores},
		{2, TTLHistorical},
		{7, TTLHistorical},
	}
	for _, tc := range cases {
		if got := TTLForOffset(TTLBoxScores, tc.offset); got != tc.want {
			t.Fatalf("TTLForOffset(offset=%d) = %v, want %v", tc.offset, got, tc.want)
		}
	}
}
