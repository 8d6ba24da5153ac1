// Package temporal provides assertion subjects for months, days of
// the week, instants, local and zoned date-times.
//
// Three comparison families exist. Months and days of the week
// compare by ordinal value. Instants and zoned date-times compare
// by their position on the time-line. Local date-times compare by
// their local clock reading, optionally requiring the same
// chronology.
package temporal

import (
	"fmt"
	"time"

	"digital.vasic.truthext/pkg/chrono"
	"digital.vasic.truthext/pkg/fact"
	"digital.vasic.truthext/pkg/subject"
)

type ordinal interface {
	~int
	IsValid() bool
}

// checkOrdinal validates other, then compares the ordinal values.
func checkOrdinal[T ordinal](
	s subject.Subject[T], name string, other T,
	holds func(a, b int) bool, key string,
) {
	s.Metadata().T().Helper()
	if !other.IsValid() {
		subject.InvalidArgument("other", fmt.Sprintf("invalid %s %d", s.Kind(), int(other)))
	}
	actual := s.NonAbsent()
	s.Check(name, holds(int(actual), int(other)), fact.New(key, other))
}

func before(a, b int) bool        { return a < b }
func beforeOrEqual(a, b int) bool { return a <= b }
func after(a, b int) bool         { return a > b }
func afterOrEqual(a, b int) bool  { return a >= b }

func requireField(f chrono.Field) {
	if !f.IsValid() {
		subject.InvalidArgument("field", fmt.Sprintf("unknown field %d", int(f)))
	}
}

func requireUnit(u chrono.Unit) {
	if !u.IsValid() {
		subject.InvalidArgument("unit", fmt.Sprintf("unknown unit %d", int(u)))
	}
}

func requireZone(loc *time.Location) {
	subject.RequireArgument(loc != nil, "zone")
}

// requireMoment rejects absent moments, including nil pointers and
// unset zoned date-times wrapped in the interface.
func requireMoment(m chrono.Moment) {
	switch v := m.(type) {
	case nil:
		subject.RequireArgument(false, "other")
	case *chrono.Instant:
		subject.RequireArgument(v != nil, "other")
	case *chrono.ZonedDateTime:
		subject.RequireArgument(v != nil && !v.IsZero(), "other")
	case chrono.ZonedDateTime:
		subject.RequireArgument(!v.IsZero(), "other")
	}
}

func requireLocal(l chrono.LocalDateTime) {
	subject.RequireArgument(!l.IsZero(), "other")
}

func callLabel(name string, arg any) string {
	return name + "(" + fact.Format(arg) + ")"
}
