package cache

import (
	"testing"
	"time"
)

func TestGetReturnsLiveEntry(t *testing.T) {
	c := New(true)
	c.Set("week:2024-05", "payload", time.Minute)

	value, etag, ok := c.Get("week:2024-05")
	if !ok {
		t.Fatalf("expected hit")
	}
	if value.(string) != "payload" {
		t.Fatalf("unexpected value: %v", value)
	}
	if etag == "" {
		t.Fatalf("expected an etag")
	}
}

func TestGetMissesAfterTTL(t *testing.T) {
	base := time.Date(2024, time.November, 3, 18, 0, 0, 0, time.UTC)
	c := New(true)
	c.now = func() time.Time { return base }
	c.Set("k", 1, 30*time.Second)

	c.now = func() time.Time { return base.Add(29 * time.Second) }
	if _, _, ok := c.Get("k"); !ok {
		t.Fatalf("entry should still be live")
	}

	c.now = func() time.Time { return base.Add(31 * time.Second) }
	if _, _, ok := c.Get("k"); ok {
		t.Fatalf("entry should have expired")
	}
}

func TestDisabledCacheIsNoOp(t *testing.T) {
	c := New(false)
	if etag := c.Set("k", 1, time.Minute); etag == "" {
		t.Fatalf("disabled cache still reports the etag")
	}
	if _, _, ok := c.Get("k"); ok {
		t.Fatalf("disabled cache must never hit")
	}
}

func TestInvalidateDropsKey(t *testing.T) {
	c := New(true)
	c.Set("k", 1, time.Minute)
	c.Invalidate("k")
	if _, _, ok := c.Get("k"); ok {
		t.Fatalf("invalidated key should miss")
	}
}

func TestEvictRemovesExpiredEntries(t *testing.T) {
	base := time.Date(2024, time.November, 3, 18, 0, 0, 0, time.UTC)
	c := New(true)
	c.now = func() time.Time { return base }
	c.Set("old", 1, time.Second)
	c.Set("fresh", 2, time.Hour)

	c.now = func() time.Time { return base.Add(time.Minute) }
	c.evict()

	stats := c.Stats()
	if stats["total_keys"].(int) != 1 || stats["active_keys"].(int) != 1 {
		t.Fatalf("unexpected stats after evict: %v", stats)
	}
}

func TestComputeETagIsStable(t *testing.T) {
	a := ComputeETag([]byte("payload"))
	b := ComputeETag([]byte("payload"))
	if a != b {
		t.Fatalf("same bytes must produce the same etag")
	}
	if a == ComputeETag([]byte("other")) {
		t.Fatalf("different bytes should produce different etags")
	}
}

func TestSetETagTracksValue(t *testing.T) {
	c := New(true)

	first := c.Set("week:2024-05", "payload-v1", time.Minute)
	same := c.Set("week:2024-05", "payload-v1", time.Minute)
	if first != same {
		t.Fatalf("unchanged value should keep its etag: %s vs %s", first, same)
	}

	changed := c.Set("week:2024-05", "payload-v2", time.Minute)
	if changed == first {
		t.Fatalf("a new value under the same key must get a new etag")
	}

	if _, etag, ok := c.Get("week:2024-05"); !ok || etag != changed {
		t.Fatalf("Get should return the latest etag, got %s", etag)
	}
}

func TestTTLsForSeason(t *testing.T) {
	ttls := TTLs{Current: time.Minute, Historical: time.Hour}
	if got := ttls.For(2024, 2024); got != time.Minute {
		t.Fatalf("current season should use the short TTL, got %v", got)
	}
	if got := ttls.For(2022, 2024); got != time.Hour {
		t.Fatalf("past season should use the long TTL, got %v", got)
	}
}
