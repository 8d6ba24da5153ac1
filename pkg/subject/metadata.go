package subject

import (
	"strings"

	"golang.org/x/text/language"

	"digital.vasic.truthext/pkg/config"
	"digital.vasic.truthext/pkg/fact"
	"digital.vasic.truthext/pkg/logging"
	"digital.vasic.truthext/pkg/metrics"
	"digital.vasic.truthext/pkg/report"
)

// RootLabel names the root subject when WithName is not given.
const RootLabel = "actual"

// TestingT is the part of *testing.T used to report failures.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
	FailNow()
}

// FailureStrategy receives every failed assertion. If Fail
// returns, the assertion panics with the error so the chain
// never continues.
type FailureStrategy interface {
	Fail(err *AssertionError)
}

// FailureStrategyFunc adapts a function to FailureStrategy.
type FailureStrategyFunc func(err *AssertionError)

// Fail calls f(err).
func (f FailureStrategyFunc) Fail(err *AssertionError) { f(err) }

// PanicStrategy panics with the *AssertionError.
var PanicStrategy = FailureStrategyFunc(func(err *AssertionError) {
	panic(err)
})

// testingStrategy reports through a TestingT and stops the
// test.
type testingStrategy struct {
	t        TestingT
	reporter report.Reporter
}

func (s *testingStrategy) Fail(err *AssertionError) {
	s.t.Helper()
	data, rerr := s.reporter.GenerateReport(err.Failure())
	if rerr != nil {
		data = []byte(err.Error())
	}
	s.t.Errorf("%s", data)
	s.t.FailNow()
}

// Metadata is shared by a root subject and everything derived
// from it. It carries the derivation path and the collaborators
// that report failures. A Metadata is never mutated after
// construction; Child returns a copy with a longer path.
type Metadata struct {
	t        TestingT
	strategy FailureStrategy
	path     []string
	logger   logging.Logger
	recorder metrics.Recorder
	reporter report.Reporter
	locale   language.Tag
}

// Option configures the Metadata of a root subject.
type Option func(*Metadata)

// WithName replaces the root label of the derivation path.
func WithName(name string) Option {
	return func(m *Metadata) { m.path = []string{name} }
}

// WithLogger logs failures to l.
func WithLogger(l logging.Logger) Option {
	return func(m *Metadata) { m.logger = l }
}

// WithRecorder counts assertions with r.
func WithRecorder(r metrics.Recorder) Option {
	return func(m *Metadata) { m.recorder = r }
}

// WithReporter renders failures with r.
func WithReporter(r report.Reporter) Option {
	return func(m *Metadata) { m.reporter = r }
}

// WithLocale sets the locale of locale-sensitive derivations.
func WithLocale(tag language.Tag) Option {
	return func(m *Metadata) { m.locale = tag }
}

// WithStrategy handles failures with s instead of the TestingT.
func WithStrategy(s FailureStrategy) Option {
	return func(m *Metadata) { m.strategy = s }
}

// WithConfig replaces the logger, recorder, reporter and locale
// with those described by cfg. An invalid cfg is an invalid
// argument.
func WithConfig(cfg config.Config) Option {
	return func(m *Metadata) {
		env, err := fromConfig(cfg)
		if err != nil {
			InvalidArgument("config", err.Error())
		}
		m.logger = env.logger
		m.recorder = env.recorder
		m.reporter = env.reporter
		m.locale = env.locale
	}
}

// NewMetadata creates the Metadata of a root subject. Defaults
// come from the TRUTHEXT_ environment, loaded once per process.
func NewMetadata(t TestingT, opts ...Option) *Metadata {
	RequireArgument(t != nil, "t")
	env := loadDefaults()
	m := &Metadata{
		t:        t,
		path:     []string{RootLabel},
		logger:   env.logger,
		recorder: env.recorder,
		reporter: env.reporter,
		locale:   env.locale,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.strategy == nil {
		if s, ok := t.(FailureStrategy); ok {
			m.strategy = s
		} else {
			m.strategy = &testingStrategy{t: t, reporter: m.reporter}
		}
	}
	return m
}

// T returns the TestingT failures are reported to.
func (m *Metadata) T() TestingT { return m.t }

// Locale returns the locale of locale-sensitive derivations.
func (m *Metadata) Locale() language.Tag { return m.locale }

// Recorder returns the metrics recorder.
func (m *Metadata) Recorder() metrics.Recorder { return m.recorder }

// Path returns a copy of the derivation path.
func (m *Metadata) Path() []string {
	return append([]string(nil), m.path...)
}

// Description joins the path with dots, e.g.
// "actual.Month().FirstMonthOfQuarter()".
func (m *Metadata) Description() string {
	return strings.Join(m.path, ".")
}

// Child returns a copy of m whose path ends with label.
func (m *Metadata) Child(label string) *Metadata {
	child := *m
	child.path = make([]string, len(m.path), len(m.path)+1)
	copy(child.path, m.path)
	child.path = append(child.path, label)
	return &child
}

// Fail reports a failed assertion on a subject of the given
// kind and never returns.
func (m *Metadata) Fail(kind string, facts ...fact.Fact) {
	m.t.Helper()
	err := &AssertionError{
		Subject: m.Description(),
		Facts:   facts,
	}
	fields := append([]logging.Field{
		logging.StringField("subject", err.Subject),
		logging.StringField("kind", kind),
	}, logging.FactFields(facts)...)
	m.logger.Error("assertion failed", fields...)

	m.strategy.Fail(err)
	panic(err)
}
