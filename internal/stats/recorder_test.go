package stats

import (
	"sync"
	"testing"
	"time"
)

func TestRecorder_Snapshot(t *testing.T) {
	r := NewRecorder()

	r.Record("/api/v1/datapoints/query", 10*time.Millisecond)
	r.Record("/api/v1/datapoints/query", 20*time.Millisecond)
	r.Record("/api/v1/metricnames", 5*time.Millisecond)

	snap := r.Snapshot()

	if len(snap) != 2 {
		t.Fatalf("Expected 2 endpoints, got %d", len(snap))
	}

	q := snap["/api/v1/datapoints/query"]
	if q.Count != 2 {
		t.Errorf("Expected 2 recorded calls, got %d", q.Count)
	}
	// HDR histograms are lossy to 3 significant figures, so compare loosely.
	if q.Max < 19*time.Millisecond || q.Max > 21*time.Millisecond {
		t.Errorf("Expected max near 20ms, got %v", q.Max)
	}
	if q.P50 < 9*time.Millisecond || q.P50 > 21*time.Millisecond {
		t.Errorf("Expected p50 within recorded range, got %v", q.P50)
	}
}

func TestRecorder_ClampsOutOfRange(t *testing.T) {
	r := NewRecorder()

	r.Record("/api/v1/metricnames", 0)
	r.Record("/api/v1/metricnames", 2*time.Hour)

	snap := r.Snapshot()
	if snap["/api/v1/metricnames"].Count != 2 {
		t.Errorf("Expected out-of-range samples to be clamped, got count %d", snap["/api/v1/metricnames"].Count)
	}
}

func TestRecorder_ConcurrentRecord(t *testing.T) {
	r := NewRecorder()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				r.Record("/api/v1/tagnames", time.Millisecond)
			}
		}()
	}
	wg.Wait()

	if got := r.Snapshot()["/api/v1/tagnames"].Count; got != 200 {
		t.Errorf("Expected 200 recorded calls, got %d", got)
	}
}
