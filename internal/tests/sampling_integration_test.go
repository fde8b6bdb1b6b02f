// Package tests provides end-to-end tests across tabsample packages.
//
// The tests here exercise the full path a document takes: YAML decoding,
// classification, sampling and the Prometheus metrics the draws produce.
package tests

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/yndnr/tabsample/internal/tabledoc"
	"github.com/yndnr/tabsample/internal/telemetry/metric"
	"github.com/yndnr/tabsample/pkg/sampler"
	"github.com/yndnr/tabsample/pkg/shape"
	"github.com/yndnr/tabsample/pkg/table"
)

func loadDoc(t *testing.T, content string) tabledoc.Document {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write document: %v", err)
	}
	doc, err := tabledoc.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	return doc
}

func scrape(t *testing.T, registry *metric.Registry) string {
	t.Helper()
	srv := httptest.NewServer(registry.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read scrape: %v", err)
	}
	return string(body)
}

// TestDocumentToMetrics_Sparse samples a mixed-key document and checks the
// draw distribution and the metrics the draws leave behind.
func TestDocumentToMetrics_Sparse(t *testing.T) {
	doc := loadDoc(t, `
1: one
2: ~
3: three
name: four
`)

	registry := metric.NewRegistry()
	s := sampler.New(sampler.WithSeed(11), sampler.WithObserver(registry))

	const draws = 6000
	counts := make(map[string]int)
	for i := 0; i < draws; i++ {
		e, err := s.SampleEntry(doc)
		if err != nil {
			t.Fatalf("SampleEntry: %v", err)
		}
		if table.IsNull(e.Value) {
			t.Fatalf("draw %d returned null value for key %s", i, e.Key)
		}
		counts[e.Key.String()]++
	}

	if len(counts) != 3 {
		t.Fatalf("drew %d distinct keys, want 3: %v", len(counts), counts)
	}
	for key, n := range counts {
		// Expected 2000 each; 1700..2300 is far outside a fair source's spread.
		if n < 1700 || n > 2300 {
			t.Errorf("key %s drawn %d times, want about %d", key, n, draws/3)
		}
	}

	text := scrape(t, registry)
	for _, want := range []string{
		fmt.Sprintf(`tabsample_samples_total{path="sparse"} %d`, draws),
		fmt.Sprintf(`tabsample_classifications_total{decision="key",verdict="sparse"} %d`, draws),
	} {
		if !strings.Contains(text, want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}

// TestDocumentToMetrics_Dense samples a sequence document through a cache.
func TestDocumentToMetrics_Dense(t *testing.T) {
	doc := loadDoc(t, "- a\n- b\n- c\n- d\n")

	registry := metric.NewRegistry()
	s := sampler.New(sampler.WithSeed(5), sampler.WithObserver(registry))
	cache := sampler.NewCache(doc, s.Classifier())

	if v := cache.Verdict(); v != shape.Dense(4) {
		t.Fatalf("Verdict() = %s, want dense(4)", v)
	}

	for i := 0; i < 100; i++ {
		e, err := s.SampleCached(cache)
		if err != nil {
			t.Fatalf("SampleCached: %v", err)
		}
		if e.Key.Kind() != table.KindInt {
			t.Fatalf("dense draw returned %s key", e.Key)
		}
	}

	if text := scrape(t, registry); !strings.Contains(text, `tabsample_samples_total{path="dense"} 100`) {
		t.Errorf("dense samples not counted:\n%s", text)
	}
}

// TestDocumentToMetrics_Empty checks that an all-null document fails every
// draw and is counted by error code.
func TestDocumentToMetrics_Empty(t *testing.T) {
	doc := loadDoc(t, "1: ~\n2: ~\n")

	registry := metric.NewRegistry()
	s := sampler.New(sampler.WithObserver(registry))

	for i := 0; i < 3; i++ {
		if _, err := s.SampleEntry(doc); err == nil {
			t.Fatal("SampleEntry on an all-null document should fail")
		}
	}

	if text := scrape(t, registry); !strings.Contains(text, `tabsample_sample_errors_total{code="TS-SAMP-4220"} 3`) {
		t.Errorf("errors not counted:\n%s", text)
	}
}

// TestSharded_ConcurrentSampleAndWrite samples a sharded table while other
// goroutines overwrite and add entries.
func TestSharded_ConcurrentSampleAndWrite(t *testing.T) {
	const n = 200
	m := table.NewSharded()
	for i := 1; i <= n; i++ {
		m.Set(table.IntKey(int64(i)), i)
	}

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				m.Set(table.IntKey(int64(1+(i*7+w)%n)), i)
				m.Set(table.StringKey(fmt.Sprintf("w%d-%d", w, i%10)), i)
			}
		}(w)
	}

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			s := sampler.New(sampler.WithSeed(uint64(r + 1)))
			cache := sampler.NewCache(m, s.Classifier())
			for i := 0; i < 500; i++ {
				e, err := s.SampleCached(cache)
				if err != nil {
					t.Errorf("SampleCached: %v", err)
					return
				}
				if table.IsNull(e.Value) {
					t.Errorf("null value drawn for %s", e.Key)
					return
				}
			}
		}(r)
	}

	wg.Wait()

	if v := shape.Classify(m); v.IsDense() {
		t.Errorf("Classify() = %s after string keys were added, want sparse", v)
	}
}
