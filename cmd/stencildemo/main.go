// Command stencildemo demonstrates the stencil template support kernel.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"slices"

	"golang.org/x/text/language"

	"github.com/gostencil/stencil"
	"github.com/gostencil/stencil/cache"
	"github.com/gostencil/stencil/i18n"
	"github.com/gostencil/stencil/metrics"
)

func main() {
	var (
		capacity    = flag.Int("capacity", 3, "cache capacity for the recency walk")
		verbose     = flag.Bool("v", false, "enable debug logging")
		metricsAddr = flag.String("metrics", "", "serve Prometheus metrics on this address after the demo")
	)
	flag.Parse()

	if *verbose {
		stencil.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	c := demoRecency(*capacity)
	demoLoader()
	demoEscaping()
	demoExtraction()

	if *metricsAddr != "" {
		metrics.New(nil, "stencildemo", c.Stats)
		srv := metrics.NewServer(*metricsAddr, nil)
		log.Printf("serving metrics on http://%s/metrics", *metricsAddr)
		if err := srv.Start(); err != nil {
			log.Fatalf("metrics server: %v", err)
		}
	}
}

func demoRecency(capacity int) *cache.Cache[string, string] {
	fmt.Printf("=== Recency cache (capacity %d) ===\n", capacity)

	c := cache.MustNew(capacity, cache.WithEvictFunc(func(key, value string) {
		fmt.Printf("  evicted %s=%s\n", key, value)
	}))

	for _, key := range []string{"a", "b", "c"} {
		c.Set(key, "compiled "+key)
		fmt.Printf("  set %s\n", key)
	}
	fmt.Println("  order:", slices.Collect(c.Keys()))

	c.Get("a")
	fmt.Println("  after get a:", slices.Collect(c.Keys()))

	c.Set("d", "compiled d")
	fmt.Println("  after set d:", slices.Collect(c.Keys()))

	stats := c.Stats()
	fmt.Printf("  stats: %d/%d entries, %d hits, %d misses, %d evictions\n\n",
		stats.Len, stats.Capacity, stats.Hits, stats.Misses, stats.Evictions)
	return c
}

func demoLoader() {
	fmt.Println("=== Memoizing loader (capacity 2) ===")

	loader, err := stencil.NewLoader(2, func(name string) (string, error) {
		fmt.Printf("  compiling %s\n", name)
		return "<compiled " + name + ">", nil
	})
	if err != nil {
		log.Fatalf("loader: %v", err)
	}

	for _, name := range []string{"index.html", "index.html", "about.html", "contact.html", "index.html"} {
		if _, err := loader.Load(name); err != nil {
			log.Fatalf("load %s: %v", name, err)
		}
	}

	stats := loader.Stats()
	fmt.Printf("  stats: %d hits, %d misses, %d evictions\n\n", stats.Hits, stats.Misses, stats.Evictions)
}

func demoEscaping() {
	fmt.Println("=== Escaping ===")

	raw := `<a href="/search?q=fish&chips">click</a>`
	fmt.Printf("  raw:     %s\n", raw)
	fmt.Printf("  content: %s\n", stencil.Escape(raw))
	fmt.Printf("  attr:    %s\n\n", stencil.EscapeAttr(raw))
}

// element and trans implement the i18n document interfaces the way a
// template front end would.
type element struct {
	children []i18n.Node
}

func (e *element) Children() []i18n.Node { return e.children }

type trans struct {
	line     int
	singular string
	plural   string
}

func (t *trans) Children() []i18n.Node { return nil }
func (t *trans) Line() int             { return t.line }
func (t *trans) Singular() string      { return t.singular }
func (t *trans) Plural() (string, bool) {
	return t.plural, t.plural != ""
}

func demoExtraction() {
	fmt.Println("=== Translation extraction ===")

	doc := &element{children: []i18n.Node{
		&trans{line: 3, singular: "Welcome!"},
		&element{children: []i18n.Node{
			&trans{line: 7, singular: "%d item", plural: "%d items"},
		}},
	}}

	for tr := range i18n.Extract(doc) {
		if tr.Plural != "" {
			fmt.Printf("  line %d: %q / %q\n", tr.Line, tr.Singular, tr.Plural)
		} else {
			fmt.Printf("  line %d: %q\n", tr.Line, tr.Singular)
		}
	}

	for _, n := range []int{1, 4} {
		form := i18n.Select(language.English, n, "%d item", "%d items")
		fmt.Printf("  english, n=%d: %s\n", n, fmt.Sprintf(form, n))
	}
	fmt.Printf("  french, n=0: %s\n", i18n.Select(language.French, 0, "singulier", "pluriel"))
}
