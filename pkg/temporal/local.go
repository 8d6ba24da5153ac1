package temporal

import (
	"time"

	"digital.vasic.truthext/pkg/chrono"
	"digital.vasic.truthext/pkg/fact"
	"digital.vasic.truthext/pkg/subject"
)

// LocalDateTimeSubject asserts on a chrono.LocalDateTime.
type LocalDateTimeSubject struct {
	subject.Subject[chrono.LocalDateTime]
}

// LocalDateTimes is the Factory of LocalDateTimeSubject.
func LocalDateTimes() subject.Factory[LocalDateTimeSubject, chrono.LocalDateTime] {
	return func(meta *subject.Metadata, actual *chrono.LocalDateTime) LocalDateTimeSubject {
		return LocalDateTimeSubject{Subject: subject.New(meta, actual, "local date time")}
	}
}

// AssertThatLocalDateTime starts a chain on l.
func AssertThatLocalDateTime(
	t subject.TestingT, l chrono.LocalDateTime, opts ...subject.Option,
) LocalDateTimeSubject {
	return subject.AssertAbout(t, LocalDateTimes(), opts...).That(l)
}

// AssertThatLocalDateTimePtr starts a chain on a possibly absent
// local date-time.
func AssertThatLocalDateTimePtr(
	t subject.TestingT, l *chrono.LocalDateTime, opts ...subject.Option,
) LocalDateTimeSubject {
	return subject.AssertAbout(t, LocalDateTimes(), opts...).ThatPtr(l)
}

// IsSameLocalTimeAs passes when both values are at the same
// position on the local time-line. Chronologies are ignored.
func (s LocalDateTimeSubject) IsSameLocalTimeAs(other chrono.LocalDateTime) {
	s.Metadata().T().Helper()
	requireLocal(other)
	actual := s.NonAbsent()
	s.Check("IsSameLocalTimeAs", actual.IsEqual(other),
		fact.New("expected to be same local time as", other))
}

func (s LocalDateTimeSubject) IsNotSameLocalTimeAs(other chrono.LocalDateTime) {
	s.Metadata().T().Helper()
	requireLocal(other)
	actual := s.NonAbsent()
	s.Check("IsNotSameLocalTimeAs", !actual.IsEqual(other),
		fact.New("expected not to be same local time as", other))
}

// IsComparativelyEqualTo passes when both values compare equal,
// which also requires the same chronology.
func (s LocalDateTimeSubject) IsComparativelyEqualTo(other chrono.LocalDateTime) {
	s.Metadata().T().Helper()
	requireLocal(other)
	actual := s.NonAbsent()
	s.Check("IsComparativelyEqualTo", actual.Compare(other) == 0,
		fact.New("expected to compare equal to", other))
}

func (s LocalDateTimeSubject) IsComparativelyNotEqualTo(other chrono.LocalDateTime) {
	s.Metadata().T().Helper()
	requireLocal(other)
	actual := s.NonAbsent()
	s.Check("IsComparativelyNotEqualTo", actual.Compare(other) != 0,
		fact.New("expected not to compare equal to", other))
}

func (s LocalDateTimeSubject) IsBefore(other chrono.LocalDateTime) {
	s.Metadata().T().Helper()
	requireLocal(other)
	actual := s.NonAbsent()
	s.Check("IsBefore", actual.IsBefore(other), fact.New("expected to be before", other))
}

func (s LocalDateTimeSubject) IsAfter(other chrono.LocalDateTime) {
	s.Metadata().T().Helper()
	requireLocal(other)
	actual := s.NonAbsent()
	s.Check("IsAfter", actual.IsAfter(other), fact.New("expected to be after", other))
}

// Instant derives the instant of the wall clock reading at offset.
func (s LocalDateTimeSubject) Instant(offset chrono.ZoneOffset) InstantSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, callLabel("Instant", offset),
		func(l chrono.LocalDateTime) chrono.Instant { return l.ToInstant(offset) },
		Instants())
}

// Zoned derives the zoned date-time of the wall clock reading in
// loc.
func (s LocalDateTimeSubject) Zoned(loc *time.Location) ZonedDateTimeSubject {
	s.Metadata().T().Helper()
	requireZone(loc)
	return subject.DeriveE(s.Subject, callLabel("Zoned", loc),
		func(l chrono.LocalDateTime) (chrono.ZonedDateTime, error) { return l.AtZone(loc) },
		ZonedDateTimes())
}

// Chronology derives the calendar identifier, e.g. "ISO".
func (s LocalDateTimeSubject) Chronology() subject.StringSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "Chronology()",
		func(l chrono.LocalDateTime) string { return l.Chronology().ID() },
		subject.Strings())
}

// Year derives the year in the value's chronology.
func (s LocalDateTimeSubject) Year() subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "Year()", chrono.LocalDateTime.Year, subject.Integers())
}

func (s LocalDateTimeSubject) Month() MonthSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "Month()", chrono.LocalDateTime.Month, Months())
}

func (s LocalDateTimeSubject) MonthValue() subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "MonthValue()", chrono.LocalDateTime.MonthValue, subject.Integers())
}

func (s LocalDateTimeSubject) DayOfMonth() subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "DayOfMonth()", chrono.LocalDateTime.DayOfMonth, subject.Integers())
}

func (s LocalDateTimeSubject) DayOfYear() subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "DayOfYear()", chrono.LocalDateTime.DayOfYear, subject.Integers())
}

func (s LocalDateTimeSubject) DayOfWeek() DayOfWeekSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "DayOfWeek()", chrono.LocalDateTime.DayOfWeek, DaysOfWeek())
}

func (s LocalDateTimeSubject) Hour() subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "Hour()", chrono.LocalDateTime.Hour, subject.Integers())
}

func (s LocalDateTimeSubject) Minute() subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "Minute()", chrono.LocalDateTime.Minute, subject.Integers())
}

func (s LocalDateTimeSubject) Second() subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "Second()", chrono.LocalDateTime.Second, subject.Integers())
}

func (s LocalDateTimeSubject) Nano() subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "Nano()", chrono.LocalDateTime.Nano, subject.Integers())
}

// EpochMilli derives the milliseconds since the epoch of the
// value read at UTC. Overflow panics with
// chrono.ErrArithmeticOverflow.
func (s LocalDateTimeSubject) EpochMilli() subject.LongSubject {
	s.Metadata().T().Helper()
	return subject.DeriveE(s.Subject, "EpochMilli()",
		func(l chrono.LocalDateTime) (int64, error) { return l.ToInstant(chrono.UTC).EpochMilli() },
		subject.Longs())
}

// EpochSecond derives the seconds since the epoch read at UTC.
func (s LocalDateTimeSubject) EpochSecond() subject.LongSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "EpochSecond()",
		func(l chrono.LocalDateTime) int64 { return l.ToEpochSecond(chrono.UTC) },
		subject.Longs())
}

// EpochDay derives the day since the epoch.
func (s LocalDateTimeSubject) EpochDay() subject.LongSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "EpochDay()", chrono.LocalDateTime.EpochDay, subject.Longs())
}
