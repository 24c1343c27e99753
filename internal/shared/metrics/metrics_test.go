package metrics

import (
	"strings"
	"testing"
	"time"
)

func TestRenderIncludesCounters(t *testing.T) {
	IncExtractionStarted()
	IncExtractionCompleted()
	IncExtractionFallback()
	IncExtractionCacheHit()

	out := Render()
	for _, name := range []string{
		"extraction_started_total",
		"extraction_completed_total",
		"extraction_fallback_total",
		"extraction_cache_hits_total",
	} {
		if !strings.Contains(out, "# TYPE "+name+" counter") {
			t.Fatalf("missing counter %s in output", name)
		}
	}
}

func TestRenderHistogramIsCumulative(t *testing.T) {
	ObserveExtractionDuration(5 * time.Millisecond)
	ObserveExtractionDuration(40 * time.Millisecond)

	out := Render()
	if !strings.Contains(out, "# TYPE extraction_duration_ms histogram") {
		t.Fatalf("missing histogram in output")
	}
	if !strings.Contains(out, `extraction_duration_ms_bucket{le="+Inf"}`) {
		t.Fatalf("missing +Inf bucket in output")
	}

	// Every bucket count must be <= the +Inf count.
	var infCount string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, `extraction_duration_ms_bucket{le="+Inf"}`) {
			fields := strings.Fields(line)
			infCount = fields[len(fields)-1]
		}
	}
	if infCount == "" {
		t.Fatalf("missing +Inf count")
	}
}

func TestHistogramBucketsAccumulate(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	if h.total != 3 {
		t.Fatalf("expected total 3, got %d", h.total)
	}
	if h.counts[0] != 1 || h.counts[1] != 1 {
		t.Fatalf("unexpected bucket counts %v", h.counts)
	}
	if h.sum != 555 {
		t.Fatalf("unexpected sum %v", h.sum)
	}
}
