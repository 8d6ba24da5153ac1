package temporal

import (
	"digital.vasic.truthext/pkg/chrono"
	"digital.vasic.truthext/pkg/fact"
	"digital.vasic.truthext/pkg/subject"
)

// DayOfWeekSubject asserts on a chrono.DayOfWeek.
type DayOfWeekSubject struct {
	subject.Subject[chrono.DayOfWeek]
}

// DaysOfWeek is the Factory of DayOfWeekSubject.
func DaysOfWeek() subject.Factory[DayOfWeekSubject, chrono.DayOfWeek] {
	return func(meta *subject.Metadata, actual *chrono.DayOfWeek) DayOfWeekSubject {
		return DayOfWeekSubject{Subject: subject.New(meta, actual, "day of week")}
	}
}

// AssertThatDayOfWeek starts a chain on d.
func AssertThatDayOfWeek(
	t subject.TestingT, d chrono.DayOfWeek, opts ...subject.Option,
) DayOfWeekSubject {
	return subject.AssertAbout(t, DaysOfWeek(), opts...).That(d)
}

// AssertThatDayOfWeekPtr starts a chain on a possibly absent day.
func AssertThatDayOfWeekPtr(
	t subject.TestingT, d *chrono.DayOfWeek, opts ...subject.Option,
) DayOfWeekSubject {
	return subject.AssertAbout(t, DaysOfWeek(), opts...).ThatPtr(d)
}

func (s DayOfWeekSubject) IsBefore(other chrono.DayOfWeek) {
	s.Metadata().T().Helper()
	checkOrdinal(s.Subject, "IsBefore", other, before, "expected to be before")
}

func (s DayOfWeekSubject) IsBeforeOrEqualTo(other chrono.DayOfWeek) {
	s.Metadata().T().Helper()
	checkOrdinal(s.Subject, "IsBeforeOrEqualTo", other, beforeOrEqual,
		"expected to be before or equal to")
}

func (s DayOfWeekSubject) IsAfter(other chrono.DayOfWeek) {
	s.Metadata().T().Helper()
	checkOrdinal(s.Subject, "IsAfter", other, after, "expected to be after")
}

func (s DayOfWeekSubject) IsAfterOrEqualTo(other chrono.DayOfWeek) {
	s.Metadata().T().Helper()
	checkOrdinal(s.Subject, "IsAfterOrEqualTo", other, afterOrEqual,
		"expected to be after or equal to")
}

func (s DayOfWeekSubject) IsSupported(field chrono.Field) {
	s.Metadata().T().Helper()
	requireField(field)
	actual := s.NonAbsent()
	s.Check("IsSupported", actual.IsSupported(field), fact.New("expected to support", field))
}

func (s DayOfWeekSubject) IsNotSupported(field chrono.Field) {
	s.Metadata().T().Helper()
	requireField(field)
	actual := s.NonAbsent()
	s.Check("IsNotSupported", !actual.IsSupported(field),
		fact.New("expected not to support", field))
}

// Ordinal derives the zero-based index, Monday = 0.
func (s DayOfWeekSubject) Ordinal() subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "Ordinal()", chrono.DayOfWeek.Ordinal, subject.Integers())
}

// Value derives the ISO day number, Monday = 1.
func (s DayOfWeekSubject) Value() subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "Value()", chrono.DayOfWeek.Value, subject.Integers())
}

func (s DayOfWeekSubject) Get(field chrono.Field) subject.IntegerSubject {
	s.Metadata().T().Helper()
	requireField(field)
	return subject.DeriveE(s.Subject, callLabel("Get", field),
		func(d chrono.DayOfWeek) (int, error) { return d.Get(field) },
		subject.Integers())
}

func (s DayOfWeekSubject) GetLong(field chrono.Field) subject.LongSubject {
	s.Metadata().T().Helper()
	requireField(field)
	return subject.DeriveE(s.Subject, callLabel("GetLong", field),
		func(d chrono.DayOfWeek) (int64, error) { return d.GetLong(field) },
		subject.Longs())
}
