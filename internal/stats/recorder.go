// Package stats records per-endpoint call latencies for the client.
//
// Latencies go into HDR histograms (1µs to 1 minute, 3 significant figures)
// so percentile snapshots are cheap even for long-lived clients.
package stats

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Histogram bounds in microseconds.
const (
	histogramMin     = 1
	histogramMax     = 60000000 // 1 minute
	histogramSigFigs = 3
)

// Recorder collects call latencies keyed by endpoint path.
//
// Recorder is safe for concurrent use; the histograms are guarded by a
// single mutex, which is cheap next to the network call being measured.
type Recorder struct {
	mu    sync.RWMutex
	hists map[string]*hdrhistogram.Histogram
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		hists: make(map[string]*hdrhistogram.Histogram),
	}
}

// Record adds one call's latency for an endpoint.
func (r *Recorder) Record(endpoint string, d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.hists[endpoint]
	if !ok {
		h = hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs)
		r.hists[endpoint] = h
	}
	// RecordValue only fails for values outside the histogram range; clamp
	// instead of losing the sample.
	micros := d.Microseconds()
	if micros > histogramMax {
		micros = histogramMax
	}
	if micros < histogramMin {
		micros = histogramMin
	}
	h.RecordValue(micros)
}

// EndpointStats is a latency snapshot for one endpoint.
type EndpointStats struct {
	Count int64
	P50   time.Duration
	P95   time.Duration
	P99   time.Duration
	Max   time.Duration
}

// Snapshot returns current per-endpoint stats. The returned map is a copy;
// recording may continue concurrently.
func (r *Recorder) Snapshot() map[string]EndpointStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]EndpointStats, len(r.hists))
	for endpoint, h := range r.hists {
		out[endpoint] = EndpointStats{
			Count: h.TotalCount(),
			P50:   time.Duration(h.ValueAtQuantile(50)) * time.Microsecond,
			P95:   time.Duration(h.ValueAtQuantile(95)) * time.Microsecond,
			P99:   time.Duration(h.ValueAtQuantile(99)) * time.Microsecond,
			Max:   time.Duration(h.Max()) * time.Microsecond,
		}
	}
	return out
}
