package searcher

import "time"

// MoveMetrics describes one completed search call.
type MoveMetrics struct {
	StartTime    time.Time
	Duration     time.Duration
	Iterations   int
	RolloutMoves int // moves played across all rollouts
	MaxDepth     int // deepest tree node touched by selection/expansion
}

// MetricsCollector gathers per-search statistics. The searcher is
// single-threaded, so collectors need no synchronization.
type MetricsCollector interface {
	Start()
	AddIteration()
	AddRolloutMoves(n int)
	ObserveDepth(depth int)
	Complete() MoveMetrics
}

type metricsCollector struct {
	startTime    time.Time
	iterations   int
	rolloutMoves int
	maxDepth     int
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.iterations = 0
	m.rolloutMoves = 0
	m.maxDepth = 0
}

func (m *metricsCollector) AddIteration() {
	m.iterations++
}

func (m *metricsCollector) AddRolloutMoves(n int) {
	m.rolloutMoves += n
}

func (m *metricsCollector) ObserveDepth(depth int) {
	if depth > m.maxDepth {
		m.maxDepth = depth
	}
}

func (m *metricsCollector) Complete() MoveMetrics {
	return MoveMetrics{
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		Iterations:   m.iterations,
		RolloutMoves: m.rolloutMoves,
		MaxDepth:     m.maxDepth,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                 {}
func (m *noMetricsCollector) AddIteration()          {}
func (m *noMetricsCollector) AddRolloutMoves(n int)  {}
func (m *noMetricsCollector) ObserveDepth(depth int) {}
func (m *noMetricsCollector) Complete() MoveMetrics  { return MoveMetrics{} }
