package stencil

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoader(t *testing.T) {
	l, err := NewLoader(10, func(name string) (string, error) {
		return "compiled:" + name, nil
	})
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("new Loader Len() = %d, want 0", l.Len())
	}
}

func TestNewLoaderInvalid(t *testing.T) {
	if _, err := NewLoader[string](0, func(string) (string, error) { return "", nil }); err == nil {
		t.Error("NewLoader(0, ...) should reject non-positive capacity")
	}
	if _, err := NewLoader[string](10, nil); err == nil {
		t.Error("NewLoader(10, nil) should reject a nil compile function")
	}
}

func TestLoadCompilesOnce(t *testing.T) {
	calls := 0
	l, err := NewLoader(10, func(name string) (string, error) {
		calls++
		return "compiled:" + name, nil
	})
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}

	for range 3 {
		got, err := l.Load("index.html")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got != "compiled:index.html" {
			t.Errorf("Load() = %q, want %q", got, "compiled:index.html")
		}
	}
	if calls != 1 {
		t.Errorf("compile called %d times for one name, want 1", calls)
	}
}

func TestLoadErrorNotCached(t *testing.T) {
	calls := 0
	fail := true
	l, err := NewLoader(10, func(name string) (string, error) {
		calls++
		if fail {
			return "", &TemplateNotFoundError{Name: name}
		}
		return "compiled:" + name, nil
	})
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}

	if _, err := l.Load("missing.html"); err == nil {
		t.Fatal("Load() should propagate the compile error")
	} else if !errors.Is(err, ErrTemplate) {
		t.Errorf("Load() error = %v, want a template-error kind", err)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d after failed compile, want 0", l.Len())
	}

	// The failure was not cached, so the next Load retries and succeeds.
	fail = false
	got, err := l.Load("missing.html")
	if err != nil {
		t.Fatalf("Load() after recovery error = %v", err)
	}
	if got != "compiled:missing.html" {
		t.Errorf("Load() = %q, want %q", got, "compiled:missing.html")
	}
	if calls != 2 {
		t.Errorf("compile called %d times, want 2", calls)
	}
}

func TestLoadEvictsLeastRecent(t *testing.T) {
	calls := map[string]int{}
	l, err := NewLoader(2, func(name string) (string, error) {
		calls[name]++
		return "compiled:" + name, nil
	})
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}

	mustLoad := func(name string) {
		t.Helper()
		if _, err := l.Load(name); err != nil {
			t.Fatalf("Load(%q) error = %v", name, err)
		}
	}

	mustLoad("a.html")
	mustLoad("b.html")
	mustLoad("c.html") // evicts a.html
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}

	mustLoad("a.html") // recompiles
	if calls["a.html"] != 2 {
		t.Errorf("compile(a.html) called %d times, want 2 (evicted between loads)", calls["a.html"])
	}
	if calls["b.html"] != 1 && calls["c.html"] != 1 {
		t.Error("only the least recently used entry should have been evicted")
	}
}

func TestInvalidate(t *testing.T) {
	calls := 0
	l, err := NewLoader(10, func(name string) (string, error) {
		calls++
		return "compiled:" + name, nil
	})
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}

	if l.Invalidate("index.html") {
		t.Error("Invalidate() on an uncached name should report false")
	}

	if _, err := l.Load("index.html"); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !l.Invalidate("index.html") {
		t.Error("Invalidate() on a cached name should report true")
	}

	if _, err := l.Load("index.html"); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if calls != 2 {
		t.Errorf("compile called %d times, want 2 (invalidation forces recompile)", calls)
	}
}

func TestLoaderClear(t *testing.T) {
	l, err := NewLoader(10, func(name string) (string, error) {
		return "compiled:" + name, nil
	})
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}

	for _, name := range []string{"a.html", "b.html", "c.html"} {
		if _, err := l.Load(name); err != nil {
			t.Fatalf("Load(%q) error = %v", name, err)
		}
	}
	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}

	l.Clear()
	if l.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", l.Len())
	}

	// Loader stays usable.
	if _, err := l.Load("a.html"); err != nil {
		t.Fatalf("Load() after Clear error = %v", err)
	}
}

func TestLoaderStats(t *testing.T) {
	l, err := NewLoader(10, func(name string) (string, error) {
		return "compiled:" + name, nil
	})
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}

	l.Load("index.html") // miss, compiles
	l.Load("index.html") // hit

	stats := l.Stats()
	if stats.Hits != 1 {
		t.Errorf("Stats().Hits = %d, want 1", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Stats().Misses = %d, want 1", stats.Misses)
	}
	if stats.Len != 1 {
		t.Errorf("Stats().Len = %d, want 1", stats.Len)
	}
}

func TestLoaderLogsCompilation(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	l, err := NewLoader(10, func(name string) (string, error) {
		return "compiled:" + name, nil
	})
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}
	if _, err := l.Load("index.html"); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !strings.Contains(buf.String(), "compiled template") {
		t.Errorf("expected debug log for compilation, got: %s", buf.String())
	}
}
