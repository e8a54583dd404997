// Package metrics provides observability hooks for site generation runs.
package metrics

import "time"

// OutcomeLabel enumerates generation outcomes for counters.
type OutcomeLabel string

const (
	OutcomeSuccess  OutcomeLabel = "success"
	OutcomeDegraded OutcomeLabel = "degraded"
	OutcomeFailed   OutcomeLabel = "failed"
	OutcomeCanceled OutcomeLabel = "canceled"
)

// Stage names used as the stage label
const (
	StageTree   = "tree"
	StageHTML   = "html"
	StageCSS    = "css"
	StageAssets = "assets"
)

// Recorder defines observability hooks for generation and stage metrics.
// Implementations may forward to Prometheus or discard.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveGenerationDuration(d time.Duration)
	IncGenerationOutcome(outcome OutcomeLabel)
	AddGeneratedFiles(kind string, n int)
	IncAssetSkipped(reason string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveGenerationDuration(time.Duration)    {}
func (NoopRecorder) IncGenerationOutcome(OutcomeLabel)          {}
func (NoopRecorder) AddGeneratedFiles(string, int)              {}
func (NoopRecorder) IncAssetSkipped(string)                     {}
