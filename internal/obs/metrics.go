package obs

import "sync"

// Label is a key/value pair attached to measurements.
type Label struct {
	Key   string
	Value string
}

// Meter is a very small interface for emitting counters/histograms.
// Implementations may no-op or bridge to a metrics system.
type Meter interface {
	Counter(name string, value float64, labels ...Label)
	Histogram(name string, value float64, labels ...Label)
}

// NopMeter is a Meter that discards all measurements.
type NopMeter struct{}

func (NopMeter) Counter(name string, value float64, labels ...Label)   {}
func (NopMeter) Histogram(name string, value float64, labels ...Label) {}

// MemMeter keeps running counter totals and histogram observation
// counts in memory, keyed by metric name. Labels are ignored.
type MemMeter struct {
	mu       sync.Mutex
	counters map[string]float64
	observed map[string]int
}

func NewMemMeter() *MemMeter {
	return &MemMeter{counters: make(map[string]float64), observed: make(map[string]int)}
}

func (m *MemMeter) Counter(name string, value float64, labels ...Label) {
	m.mu.Lock()
	m.counters[name] += value
	m.mu.Unlock()
}

func (m *MemMeter) Histogram(name string, value float64, labels ...Label) {
	m.mu.Lock()
	m.observed[name]++
	m.mu.Unlock()
}

// Count returns the accumulated value of counter name.
func (m *MemMeter) Count(name string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[name]
}

// Observations returns how many values histogram name received.
func (m *MemMeter) Observations(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.observed[name]
}
