package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/gostencil/stencil/cache"
)

func TestMetricsTrackCache(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := cache.MustNew[string, int](2)
	m := New(reg, "stencil", c.Stats)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")    // hit
	c.Get("zz")   // miss
	c.Set("c", 3) // evicts b, the least recently used

	if got := testutil.ToFloat64(m.Hits); got != 1 {
		t.Errorf("hits = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.Misses); got != 1 {
		t.Errorf("misses = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.Evictions); got != 1 {
		t.Errorf("evictions = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.Entries); got != 2 {
		t.Errorf("entries = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.Capacity); got != 2 {
		t.Errorf("capacity = %v, want 2", got)
	}
}

func TestMetricsPullAtCollectTime(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := cache.MustNew[string, int](10)
	m := New(reg, "stencil", c.Stats)

	if got := testutil.ToFloat64(m.Entries); got != 0 {
		t.Fatalf("entries before any Set = %v, want 0", got)
	}

	c.Set("a", 1)
	c.Set("b", 2)

	// No push happened; the gauge reads the cache on collection.
	if got := testutil.ToFloat64(m.Entries); got != 2 {
		t.Errorf("entries after Set = %v, want 2", got)
	}
}

func TestMetricNames(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := cache.MustNew[string, int](5)
	New(reg, "stencil", c.Stats)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	got := make(map[string]bool, len(families))
	for _, mf := range families {
		got[mf.GetName()] = true
	}

	want := []string{
		"stencil_cache_hits_total",
		"stencil_cache_misses_total",
		"stencil_cache_evictions_total",
		"stencil_cache_entries",
		"stencil_cache_capacity",
	}
	for _, name := range want {
		if !got[name] {
			t.Errorf("metric %q not registered; got %v", name, got)
		}
	}
}

func TestServerEndpoints(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := cache.MustNew[string, int](5)
	New(reg, "stencil", c.Stats)
	c.Set("a", 1)

	s := NewServer("127.0.0.1:0", reg)

	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 200 {
		t.Fatalf("/metrics status = %d, want 200", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, "stencil_cache_capacity") {
		t.Errorf("/metrics body missing cache metrics:\n%s", body)
	}

	rec = httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	if rec.Code != 200 {
		t.Fatalf("/health status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "OK" {
		t.Errorf("/health body = %q, want %q", rec.Body.String(), "OK")
	}
}
