// Package performance provides performance tracking and monitoring capabilities
// for site generation with bounded history and threshold alerts.
package performance

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// Tracker manages performance markers and provides metrics aggregation
type Tracker struct {
	completed  []*Marker
	alerts     []*PerformanceAlert
	thresholds *AlertThresholds
	config     *TrackerConfig
	mu         sync.RWMutex
}

// TrackerConfig contains configuration options for the performance tracker
type TrackerConfig struct {
	MaxMarkers   int  `json:"maxMarkers"`   // Completed markers retained
	MaxAlerts    int  `json:"maxAlerts"`    // Alerts retained
	EnableAlerts bool `json:"enableAlerts"` // Whether to evaluate thresholds
}

// DefaultTrackerConfig returns a sensible default configuration
func DefaultTrackerConfig() *TrackerConfig {
	return &TrackerConfig{
		MaxMarkers:   1000,
		MaxAlerts:    200,
		EnableAlerts: true,
	}
}

// AlertThresholds defines performance thresholds for generating alerts
type AlertThresholds struct {
	SlowOperationThreshold     time.Duration `json:"slowOperationThreshold"`
	CriticalOperationThreshold time.Duration `json:"criticalOperationThreshold"`
	AssetLoadThreshold         time.Duration `json:"assetLoadThreshold"`
}

// DefaultAlertThresholds returns sensible default alert thresholds
func DefaultAlertThresholds() *AlertThresholds {
	return &AlertThresholds{
		SlowOperationThreshold:     time.Second,
		CriticalOperationThreshold: 5 * time.Second,
		AssetLoadThreshold:         2 * time.Second,
	}
}

// NewTracker creates a new performance tracker with the given configuration
func NewTracker(config *TrackerConfig) *Tracker {
	if config == nil {
		config = DefaultTrackerConfig()
	}
	return &Tracker{
		thresholds: DefaultAlertThresholds(),
		config:     config,
	}
}

// SetThresholds replaces the alert thresholds
func (t *Tracker) SetThresholds(thresholds *AlertThresholds) {
	if thresholds == nil {
		return
	}
	t.mu.Lock()
	t.thresholds = thresholds
	t.mu.Unlock()
}

// StartOperation creates a new performance marker for an operation
func (t *Tracker) StartOperation(operation, projectID string) *Marker {
	return &Marker{
		Operation: operation,
		ProjectID: projectID,
		StartTime: time.Now(),
		Metadata:  make(map[string]any),
		Success:   true,
	}
}

// CompleteOperation finishes a marker, records it and checks for alerts
func (t *Tracker) CompleteOperation(marker *Marker) {
	if marker == nil {
		return
	}
	marker.Complete()

	t.mu.Lock()
	defer t.mu.Unlock()

	t.completed = append(t.completed, marker)
	if over := len(t.completed) - t.config.MaxMarkers; over > 0 {
		t.completed = t.completed[over:]
	}

	if !t.config.EnableAlerts {
		return
	}
	if alert := t.evaluate(marker); alert != nil {
		t.alerts = append(t.alerts, alert)
		if over := len(t.alerts) - t.config.MaxAlerts; over > 0 {
			t.alerts = t.alerts[over:]
		}
	}
}

// evaluate checks a completed marker against thresholds. Caller holds mu.
func (t *Tracker) evaluate(marker *Marker) *PerformanceAlert {
	snap := marker.snapshot()

	threshold := t.thresholds.SlowOperationThreshold
	if strings.HasPrefix(snap.Operation, "assets") {
		threshold = t.thresholds.AssetLoadThreshold
	}

	severity := AlertWarning
	switch {
	case snap.Duration > t.thresholds.CriticalOperationThreshold:
		severity = AlertCritical
		threshold = t.thresholds.CriticalOperationThreshold
	case snap.Duration > threshold:
	default:
		return nil
	}

	return &PerformanceAlert{
		Timestamp: time.Now(),
		ProjectID: snap.ProjectID,
		Severity:  severity,
		Operation: snap.Operation,
		Actual:    snap.Duration,
		Threshold: threshold,
		Message:   "Operation exceeded " + string(severity) + " threshold",
	}
}

// GetRecentMetrics returns markers completed within the given window, oldest first
func (t *Tracker) GetRecentMetrics(within time.Duration) []Marker {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cutoff := time.Now().Add(-within)
	var metrics []Marker
	for _, marker := range t.completed {
		snap := marker.snapshot()
		if snap.EndTime.After(cutoff) {
			metrics = append(metrics, snap)
		}
	}
	return metrics
}

// GetAlerts returns retained alerts, oldest first
func (t *Tracker) GetAlerts() []PerformanceAlert {
	t.mu.RLock()
	defer t.mu.RUnlock()

	alerts := make([]PerformanceAlert, 0, len(t.alerts))
	for _, a := range t.alerts {
		alerts = append(alerts, *a)
	}
	return alerts
}

// Stats aggregates retained markers per operation, sorted by operation name
func (t *Tracker) Stats() []OperationStats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	byOp := make(map[string]*OperationStats)
	totals := make(map[string]time.Duration)
	for _, marker := range t.completed {
		snap := marker.snapshot()
		stats, ok := byOp[snap.Operation]
		if !ok {
			stats = &OperationStats{Operation: snap.Operation}
			byOp[snap.Operation] = stats
		}
		stats.Count++
		if !snap.Success {
			stats.Failures++
		}
		if snap.Duration > stats.MaxDuration {
			stats.MaxDuration = snap.Duration
		}
		totals[snap.Operation] += snap.Duration
	}

	out := make([]OperationStats, 0, len(byOp))
	for op, stats := range byOp {
		stats.AvgDuration = totals[op] / time.Duration(stats.Count)
		out = append(out, *stats)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Operation < out[j].Operation })
	return out
}
