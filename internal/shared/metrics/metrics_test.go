package metrics

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	snap := h.Snapshot()
	assert.Equal(t, []uint64{1, 1}, snap.counts)

	var buf bytes.Buffer
	writeHistogram(&buf, "x", "help", snap)
	out := buf.String()
	assert.Contains(t, out, `x_bucket{le="10"} 1`)
	assert.Contains(t, out, `x_bucket{le="100"} 2`)
	assert.Contains(t, out, `x_bucket{le="+Inf"} 3`)
	assert.Contains(t, out, "x_sum 555")
}

func TestHandlerExposesRenderCounters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	IncRender(false)
	IncRender(true)
	IncPDFCache(true)
	ObserveRenderDurationMs(12.5)

	r := gin.New()
	r.GET("/metrics", Handler())
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := resp.Body.String()
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, body, "# TYPE resume_render_total counter")
	assert.Contains(t, body, "resume_render_degraded_total")
	assert.Contains(t, body, "resume_pdf_cache_hits_total")
	assert.Contains(t, body, "resume_render_duration_ms_count")
}
