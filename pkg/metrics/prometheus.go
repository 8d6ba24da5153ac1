package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder with Prometheus
// counters.
type PrometheusRecorder struct {
	assertions  *prometheus.CounterVec
	derivations *prometheus.CounterVec
}

// NewPrometheusRecorder registers the recorder's counters with
// reg, or with prometheus.DefaultRegisterer when reg is nil.
// Registering twice under the same namespace reuses the
// counters already registered.
func NewPrometheusRecorder(
	reg prometheus.Registerer,
	namespace string,
) (*PrometheusRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	assertions, err := registerCounterVec(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assertions_total",
			Help:      "Terminal assertions evaluated, by subject kind, assertion and outcome.",
		},
		[]string{"subject", "assertion", "outcome"},
	))
	if err != nil {
		return nil, err
	}

	derivations, err := registerCounterVec(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "derivations_total",
			Help:      "Child subjects derived, by parent subject kind and label.",
		},
		[]string{"subject", "label"},
	))
	if err != nil {
		return nil, err
	}

	return &PrometheusRecorder{
		assertions:  assertions,
		derivations: derivations,
	}, nil
}

func registerCounterVec(
	reg prometheus.Registerer,
	c *prometheus.CounterVec,
) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	return c, nil
}

func (p *PrometheusRecorder) RecordAssertion(kind, assertion string, passed bool) {
	p.assertions.WithLabelValues(kind, assertion, outcome(passed)).Inc()
}

func (p *PrometheusRecorder) RecordDerivation(kind, label string) {
	p.derivations.WithLabelValues(kind, label).Inc()
}
