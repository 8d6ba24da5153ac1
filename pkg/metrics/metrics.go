// Package metrics counts assertion outcomes and subject
// derivations.
package metrics

import (
	"sync"

	"digital.vasic.truthext/pkg/config"
)

// Recorder defines the interface for recording assertion
// activity.
type Recorder interface {
	// RecordAssertion records one terminal assertion on a
	// subject kind such as "month".
	RecordAssertion(kind, assertion string, passed bool)
	// RecordDerivation records one derived child subject.
	RecordDerivation(kind, label string)
}

// NoopRecorder is a no-op implementation of Recorder used when
// metrics collection is disabled.
type NoopRecorder struct{}

func (NoopRecorder) RecordAssertion(_, _ string, _ bool) {}
func (NoopRecorder) RecordDerivation(_, _ string)        {}

// MemoryRecorder keeps counts in memory. It is safe for
// concurrent use.
type MemoryRecorder struct {
	mu          sync.Mutex
	assertions  map[string]int
	derivations map[string]int
}

// NewMemoryRecorder creates an empty MemoryRecorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{
		assertions:  make(map[string]int),
		derivations: make(map[string]int),
	}
}

func (m *MemoryRecorder) RecordAssertion(kind, assertion string, passed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assertions[kind+":"+assertion+":"+outcome(passed)]++
}

func (m *MemoryRecorder) RecordDerivation(kind, label string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.derivations[kind+":"+label]++
}

// AssertionCount returns the count for a kind, assertion and
// outcome combination.
func (m *MemoryRecorder) AssertionCount(kind, assertion string, passed bool) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.assertions[kind+":"+assertion+":"+outcome(passed)]
}

// DerivationCount returns how often label was derived from a
// subject of the given kind.
func (m *MemoryRecorder) DerivationCount(kind, label string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.derivations[kind+":"+label]
}

// New returns a Prometheus recorder registered with the default
// registerer when cfg enables metrics, and a NoopRecorder
// otherwise.
func New(cfg config.Metrics) (Recorder, error) {
	if !cfg.Enabled {
		return NoopRecorder{}, nil
	}
	return NewPrometheusRecorder(nil, cfg.Namespace)
}

func outcome(passed bool) string {
	if passed {
		return "passed"
	}
	return "failed"
}
