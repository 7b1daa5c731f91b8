package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetrics summarizes one search call.
type SearchMetrics struct {
	StartTime  time.Time
	Duration   time.Duration
	Rollouts   int64
	Expansions int64
}

type MetricsCollector interface {
	Start()
	AddRollout()
	AddExpansion()
	Complete() SearchMetrics
}

// metricsCollector keeps counters atomic so independent agents can share a
// logging pipeline without coordination.
type metricsCollector struct {
	startTime  time.Time
	rollouts   atomic.Int64
	expansions atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.rollouts.Store(0)
	m.expansions.Store(0)
}

func (m *metricsCollector) AddRollout() {
	m.rollouts.Add(1)
}

func (m *metricsCollector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Rollouts:   m.rollouts.Load(),
		Expansions: m.expansions.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                  {}
func (m *noMetricsCollector) AddRollout()             {}
func (m *noMetricsCollector) AddExpansion()           {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
