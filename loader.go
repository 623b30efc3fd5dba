package stencil

import (
	"errors"
	"time"

	"github.com/gostencil/stencil/cache"
)

// CompileFunc resolves a template name to its compiled artifact. It is
// called once per name while the artifact stays cached; returning an
// error (typically one of the kinds in this package) leaves nothing
// cached, so a later lookup retries.
type CompileFunc[T any] func(name string) (T, error)

// Loader resolves template names to compiled artifacts, memoizing the
// results in a bounded recency cache. Frequently used templates are
// compiled once; rarely used ones fall out when capacity is reached, so
// memory stays bounded no matter how many names flow through.
//
// Loader inherits the cache's concurrency contract: it performs no
// locking of its own, and callers serialize access externally.
type Loader[T any] struct {
	cache   *cache.Cache[string, T]
	compile CompileFunc[T]
}

// NewLoader creates a Loader that keeps at most capacity compiled
// artifacts. It returns an error if capacity is not positive or compile
// is nil.
func NewLoader[T any](capacity int, compile CompileFunc[T]) (*Loader[T], error) {
	if compile == nil {
		return nil, errors.New("stencil: compile function must not be nil")
	}
	c, err := cache.New[string, T](capacity)
	if err != nil {
		return nil, err
	}
	return &Loader[T]{cache: c, compile: compile}, nil
}

// Load returns the artifact for name, compiling it on first use. Compile
// failures are returned verbatim and nothing is cached.
func (l *Loader[T]) Load(name string) (T, error) {
	return l.cache.GetOrCompute(name, func() (T, error) {
		start := time.Now()
		artifact, err := l.compile(name)
		if err != nil {
			Logger().Warn("loader: compilation failed", "name", name, "error", err)
			var zero T
			return zero, err
		}
		Logger().Debug("loader: compiled template", "name", name, "took", time.Since(start))
		return artifact, nil
	})
}

// Invalidate drops the cached artifact for name, forcing the next Load
// to recompile. It reports whether an artifact was cached.
func (l *Loader[T]) Invalidate(name string) bool {
	ok := l.cache.Delete(name)
	if ok {
		Logger().Debug("loader: invalidated template", "name", name)
	}
	return ok
}

// Clear drops every cached artifact while keeping the loader usable.
func (l *Loader[T]) Clear() {
	l.cache.Clear()
	Logger().Debug("loader: cleared template cache")
}

// Len returns the number of currently cached artifacts.
func (l *Loader[T]) Len() int { return l.cache.Len() }

// Stats returns counters for the underlying cache, suitable for feeding
// a metrics exporter.
func (l *Loader[T]) Stats() cache.Stats { return l.cache.Stats() }
