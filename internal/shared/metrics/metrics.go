package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	renderTotal         atomic.Uint64
	renderDegradedTotal atomic.Uint64
	pdfCacheHitsTotal   atomic.Uint64
	pdfCacheMissesTotal atomic.Uint64
	snapshotsTotal      atomic.Uint64

	renderDuration = newHistogram([]float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500})
)

// IncRender counts a completed render; degraded renders are also counted separately.
func IncRender(degraded bool) {
	renderTotal.Add(1)
	if degraded {
		renderDegradedTotal.Add(1)
	}
}

// IncPDFCache counts a PDF cache lookup.
func IncPDFCache(hit bool) {
	if hit {
		pdfCacheHitsTotal.Add(1)
		return
	}
	pdfCacheMissesTotal.Add(1)
}

// IncSnapshot counts a stored snapshot.
func IncSnapshot() {
	snapshotsTotal.Add(1)
}

// ObserveRenderDurationMs records a render duration in milliseconds.
func ObserveRenderDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	renderDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "resume_render_total", "Total resume renders", renderTotal.Load())
	writeCounter(&buf, "resume_render_degraded_total", "Renders that produced an error document", renderDegradedTotal.Load())
	writeCounter(&buf, "resume_pdf_cache_hits_total", "PDF cache hits", pdfCacheHitsTotal.Load())
	writeCounter(&buf, "resume_pdf_cache_misses_total", "PDF cache misses", pdfCacheMissesTotal.Load())
	writeCounter(&buf, "resume_snapshots_total", "Stored resume snapshots", snapshotsTotal.Load())
	writeHistogram(&buf, "resume_render_duration_ms", "Render duration in milliseconds", renderDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	// counts are per bucket; writeHistogram accumulates them.
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			return
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Since returns the milliseconds elapsed since start.
func Since(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
