package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveStageDuration(StageCSS, 150*time.Millisecond)
	pr.ObserveGenerationDuration(500 * time.Millisecond)
	pr.IncGenerationOutcome(OutcomeSuccess)
	pr.IncGenerationOutcome(OutcomeSuccess)
	pr.AddGeneratedFiles("page", 3)
	pr.AddGeneratedFiles("asset", 0)
	pr.IncAssetSkipped("unreadable")

	mfs, err := reg.Gather()
	require.NoError(t, err)

	counters := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() == nil {
				continue
			}
			key := mf.GetName()
			for _, lp := range m.GetLabel() {
				key += "/" + lp.GetValue()
			}
			counters[key] = m.GetCounter().GetValue()
		}
	}

	assert.Equal(t, 2.0, counters["sitegen_generation_outcomes_total/success"])
	assert.Equal(t, 3.0, counters["sitegen_generated_files_total/page"])
	assert.Equal(t, 1.0, counters["sitegen_assets_skipped_total/unreadable"])
	_, zeroAdded := counters["sitegen_generated_files_total/asset"]
	assert.False(t, zeroAdded)
}

func TestPrometheusRecorder_NilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.ObserveStageDuration(StageTree, time.Second)
		pr.IncGenerationOutcome(OutcomeFailed)
		pr.AddGeneratedFiles("page", 1)
	})
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	assert.NotPanics(t, func() {
		r.ObserveGenerationDuration(time.Second)
		r.IncAssetSkipped("missing")
	})
}

func TestHTTPHandler(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncGenerationOutcome(OutcomeFailed)

	rec := httptest.NewRecorder()
	HTTPHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `sitegen_generation_outcomes_total{outcome="failed"} 1`)
}
