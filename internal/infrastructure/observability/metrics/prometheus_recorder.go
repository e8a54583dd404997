package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	stageDuration      *prom.HistogramVec
	generationDuration prom.Histogram
	outcomes           *prom.CounterVec
	files              *prom.CounterVec
	assetsSkipped      *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		stageDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "sitegen",
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual generation stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"}),
		generationDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "sitegen",
			Name:      "generation_duration_seconds",
			Help:      "Total site generation duration",
			Buckets:   prom.DefBuckets,
		}),
		outcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitegen",
			Name:      "generation_outcomes_total",
			Help:      "Generation runs by final outcome",
		}, []string{"outcome"}),
		files: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitegen",
			Name:      "generated_files_total",
			Help:      "Generated files by kind",
		}, []string{"kind"}),
		assetsSkipped: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitegen",
			Name:      "assets_skipped_total",
			Help:      "Collected assets emitted without content",
		}, []string{"reason"}),
	}
	reg.MustRegister(pr.stageDuration, pr.generationDuration, pr.outcomes, pr.files, pr.assetsSkipped)
	return pr
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil || p.stageDuration == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveGenerationDuration(d time.Duration) {
	if p == nil || p.generationDuration == nil {
		return
	}
	p.generationDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncGenerationOutcome(outcome OutcomeLabel) {
	if p == nil || p.outcomes == nil {
		return
	}
	p.outcomes.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) AddGeneratedFiles(kind string, n int) {
	if p == nil || p.files == nil || n <= 0 {
		return
	}
	p.files.WithLabelValues(kind).Add(float64(n))
}

func (p *PrometheusRecorder) IncAssetSkipped(reason string) {
	if p == nil || p.assetsSkipped == nil {
		return
	}
	p.assetsSkipped.WithLabelValues(reason).Inc()
}
