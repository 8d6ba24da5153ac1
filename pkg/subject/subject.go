// Package subject provides the fluent assertion core: a Subject
// wraps a possibly absent value, derives child subjects along a
// labelled path, and reports failures as ordered facts.
package subject

import (
	"github.com/stretchr/testify/assert"

	"digital.vasic.truthext/pkg/fact"
)

// Subject wraps a possibly absent value of type T.
type Subject[T any] struct {
	meta   *Metadata
	actual *T
	kind   string
}

type zeroer interface {
	IsZero() bool
}

// New creates a subject over actual. A nil actual is an absent
// value, and so is a value whose IsZero method reports it unset.
// kind names the value in failure messages, e.g. "month".
func New[T any](meta *Metadata, actual *T, kind string) Subject[T] {
	RequireArgument(meta != nil, "meta")
	if actual != nil {
		if z, ok := any(*actual).(zeroer); ok && z.IsZero() {
			actual = nil
		}
	}
	return Subject[T]{meta: meta, actual: actual, kind: kind}
}

// Metadata returns the shared metadata.
func (s Subject[T]) Metadata() *Metadata { return s.meta }

// Kind returns the value kind used in failure messages.
func (s Subject[T]) Kind() string { return s.kind }

// Actual returns the wrapped value and whether it is present.
func (s Subject[T]) Actual() (T, bool) {
	if s.actual == nil {
		var zero T
		return zero, false
	}
	return *s.actual, true
}

// NonAbsent returns the wrapped value, failing with
// "expected <kind> to be non-null" when it is absent.
func (s Subject[T]) NonAbsent() T {
	s.meta.T().Helper()
	if s.actual == nil {
		s.meta.recorder.RecordAssertion(s.kind, "NonAbsent", false)
		s.meta.Fail(s.kind, fact.Simple("expected "+s.kind+" to be non-null"))
	}
	return *s.actual
}

// FailWithActual fails with facts followed by "but was".
func (s Subject[T]) FailWithActual(facts ...fact.Fact) {
	s.meta.T().Helper()
	all := make([]fact.Fact, 0, len(facts)+1)
	all = append(all, facts...)
	if s.actual == nil {
		all = append(all, fact.New("but was", nil))
	} else {
		all = append(all, fact.New("but was", *s.actual))
	}
	s.meta.Fail(s.kind, all...)
}

// Check records the outcome of the named assertion and fails
// with facts followed by "but was" unless ok holds.
func (s Subject[T]) Check(name string, ok bool, facts ...fact.Fact) {
	s.meta.T().Helper()
	s.meta.recorder.RecordAssertion(s.kind, name, ok)
	if !ok {
		s.FailWithActual(facts...)
	}
}

type equaler[T any] interface {
	Equal(other T) bool
}

func equal[T any](a, b T) bool {
	if e, ok := any(a).(equaler[T]); ok {
		return e.Equal(b)
	}
	return assert.ObjectsAreEqual(a, b)
}

// IsEqualTo passes when the value is present and equal to
// expected. Types with an Equal(T) bool method compare with it.
func (s Subject[T]) IsEqualTo(expected T) {
	s.meta.T().Helper()
	actual := s.NonAbsent()
	s.Check("IsEqualTo", equal(actual, expected), fact.New("expected", expected))
}

// IsNotEqualTo passes when the value is present and differs
// from unexpected.
func (s Subject[T]) IsNotEqualTo(unexpected T) {
	s.meta.T().Helper()
	actual := s.NonAbsent()
	s.Check("IsNotEqualTo", !equal(actual, unexpected),
		fact.New("expected not to be", unexpected))
}

// IsNull passes when the value is absent.
func (s Subject[T]) IsNull() {
	s.meta.T().Helper()
	s.Check("IsNull", s.actual == nil, fact.Simple("expected "+s.kind+" to be null"))
}

// IsNotNull passes when the value is present.
func (s Subject[T]) IsNotNull() {
	s.meta.T().Helper()
	s.Check("IsNotNull", s.actual != nil, fact.Simple("expected "+s.kind+" to be non-null"))
}
