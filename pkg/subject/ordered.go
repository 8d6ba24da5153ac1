package subject

import (
	"cmp"

	"digital.vasic.truthext/pkg/fact"
)

// OrderedSubject asserts on integers, floats and other ordered
// values.
type OrderedSubject[N cmp.Ordered] struct {
	Subject[N]
}

// IntegerSubject asserts on int values.
type IntegerSubject = OrderedSubject[int]

// LongSubject asserts on int64 values.
type LongSubject = OrderedSubject[int64]

// NewOrdered creates an OrderedSubject of the given kind.
func NewOrdered[N cmp.Ordered](meta *Metadata, actual *N, kind string) OrderedSubject[N] {
	return OrderedSubject[N]{Subject: New(meta, actual, kind)}
}

// Integers is the Factory of IntegerSubject.
func Integers() Factory[IntegerSubject, int] {
	return func(meta *Metadata, actual *int) IntegerSubject {
		return NewOrdered(meta, actual, "integer")
	}
}

// Longs is the Factory of LongSubject.
func Longs() Factory[LongSubject, int64] {
	return func(meta *Metadata, actual *int64) LongSubject {
		return NewOrdered(meta, actual, "long")
	}
}

func (s OrderedSubject[N]) IsGreaterThan(other N) {
	s.meta.T().Helper()
	actual := s.NonAbsent()
	s.Check("IsGreaterThan", actual > other, fact.New("expected to be greater than", other))
}

func (s OrderedSubject[N]) IsLessThan(other N) {
	s.meta.T().Helper()
	actual := s.NonAbsent()
	s.Check("IsLessThan", actual < other, fact.New("expected to be less than", other))
}

func (s OrderedSubject[N]) IsAtLeast(other N) {
	s.meta.T().Helper()
	actual := s.NonAbsent()
	s.Check("IsAtLeast", actual >= other, fact.New("expected to be at least", other))
}

func (s OrderedSubject[N]) IsAtMost(other N) {
	s.meta.T().Helper()
	actual := s.NonAbsent()
	s.Check("IsAtMost", actual <= other, fact.New("expected to be at most", other))
}

// IsIn passes when lo <= value <= hi. hi below lo is an invalid
// argument.
func (s OrderedSubject[N]) IsIn(lo, hi N) {
	s.meta.T().Helper()
	requireRange(lo, hi)
	actual := s.NonAbsent()
	s.Check("IsIn", lo <= actual && actual <= hi, fact.New("expected to be in range", rangeOf(lo, hi)))
}

// IsNotIn passes when the value is outside [lo, hi].
func (s OrderedSubject[N]) IsNotIn(lo, hi N) {
	s.meta.T().Helper()
	requireRange(lo, hi)
	actual := s.NonAbsent()
	s.Check("IsNotIn", actual < lo || hi < actual,
		fact.New("expected not to be in range", rangeOf(lo, hi)))
}

func requireRange[N cmp.Ordered](lo, hi N) {
	if cmp.Less(hi, lo) {
		InvalidArgument("hi", "must not be less than lo")
	}
}

func rangeOf[N cmp.Ordered](lo, hi N) string {
	return "[" + fact.Format(lo) + ".." + fact.Format(hi) + "]"
}
