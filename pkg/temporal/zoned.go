package temporal

import (
	"time"

	"digital.vasic.truthext/pkg/chrono"
	"digital.vasic.truthext/pkg/fact"
	"digital.vasic.truthext/pkg/subject"
)

// ZonedDateTimeSubject asserts on a chrono.ZonedDateTime.
type ZonedDateTimeSubject struct {
	subject.Subject[chrono.ZonedDateTime]
}

// ZonedDateTimes is the Factory of ZonedDateTimeSubject.
func ZonedDateTimes() subject.Factory[ZonedDateTimeSubject, chrono.ZonedDateTime] {
	return func(meta *subject.Metadata, actual *chrono.ZonedDateTime) ZonedDateTimeSubject {
		return ZonedDateTimeSubject{Subject: subject.New(meta, actual, "zoned date time")}
	}
}

// AssertThatZonedDateTime starts a chain on z.
func AssertThatZonedDateTime(
	t subject.TestingT, z chrono.ZonedDateTime, opts ...subject.Option,
) ZonedDateTimeSubject {
	return subject.AssertAbout(t, ZonedDateTimes(), opts...).That(z)
}

// AssertThatZonedDateTimePtr starts a chain on a possibly absent
// zoned date-time.
func AssertThatZonedDateTimePtr(
	t subject.TestingT, z *chrono.ZonedDateTime, opts ...subject.Option,
) ZonedDateTimeSubject {
	return subject.AssertAbout(t, ZonedDateTimes(), opts...).ThatPtr(z)
}

// IsSameInstantAs passes when other is the same point on the
// time-line, whatever its zone.
func (s ZonedDateTimeSubject) IsSameInstantAs(other chrono.Moment) {
	s.Metadata().T().Helper()
	requireMoment(other)
	actual := s.NonAbsent()
	s.Check("IsSameInstantAs", actual.Instant().Equal(other.Instant()),
		fact.New("expected to be same instant as", other))
}

func (s ZonedDateTimeSubject) IsNotSameInstantAs(other chrono.Moment) {
	s.Metadata().T().Helper()
	requireMoment(other)
	actual := s.NonAbsent()
	s.Check("IsNotSameInstantAs", !actual.Instant().Equal(other.Instant()),
		fact.New("expected not to be same instant as", other))
}

// IsSameLocalAs passes when both wall clocks read the same,
// ignoring zones.
func (s ZonedDateTimeSubject) IsSameLocalAs(other chrono.ZonedDateTime) {
	s.Metadata().T().Helper()
	subject.RequireArgument(!other.IsZero(), "other")
	actual := s.NonAbsent()
	s.Check("IsSameLocalAs", actual.LocalDateTime().IsEqual(other.LocalDateTime()),
		fact.New("expected to be same local date time as", other))
}

func (s ZonedDateTimeSubject) IsNotSameLocalAs(other chrono.ZonedDateTime) {
	s.Metadata().T().Helper()
	subject.RequireArgument(!other.IsZero(), "other")
	actual := s.NonAbsent()
	s.Check("IsNotSameLocalAs", !actual.LocalDateTime().IsEqual(other.LocalDateTime()),
		fact.New("expected not to be same local date time as", other))
}

func (s ZonedDateTimeSubject) IsBefore(other chrono.Moment) {
	s.Metadata().T().Helper()
	requireMoment(other)
	actual := s.NonAbsent()
	s.Check("IsBefore", actual.Instant().IsBefore(other.Instant()),
		fact.New("expected to be before", other))
}

func (s ZonedDateTimeSubject) IsBeforeOrEqualTo(other chrono.Moment) {
	s.Metadata().T().Helper()
	requireMoment(other)
	actual := s.NonAbsent()
	s.Check("IsBeforeOrEqualTo", actual.Instant().Compare(other.Instant()) <= 0,
		fact.New("expected to be before or equal to", other))
}

func (s ZonedDateTimeSubject) IsAfterOrEqualTo(other chrono.Moment) {
	s.Metadata().T().Helper()
	requireMoment(other)
	actual := s.NonAbsent()
	s.Check("IsAfterOrEqualTo", actual.Instant().Compare(other.Instant()) >= 0,
		fact.New("expected to be after or equal to", other))
}

func (s ZonedDateTimeSubject) IsAfter(other chrono.Moment) {
	s.Metadata().T().Helper()
	requireMoment(other)
	actual := s.NonAbsent()
	s.Check("IsAfter", actual.Instant().IsAfter(other.Instant()),
		fact.New("expected to be after", other))
}

// Instant derives the point on the time-line.
func (s ZonedDateTimeSubject) Instant() InstantSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "Instant()", chrono.ZonedDateTime.Instant, Instants())
}

// WithZoneSameInstant derives the same instant seen from loc.
func (s ZonedDateTimeSubject) WithZoneSameInstant(loc *time.Location) ZonedDateTimeSubject {
	s.Metadata().T().Helper()
	requireZone(loc)
	return subject.DeriveE(s.Subject, callLabel("WithZoneSameInstant", loc),
		func(z chrono.ZonedDateTime) (chrono.ZonedDateTime, error) {
			return z.WithZoneSameInstant(loc)
		}, ZonedDateTimes())
}

// WithZoneSameLocal derives the same wall clock reading in loc.
func (s ZonedDateTimeSubject) WithZoneSameLocal(loc *time.Location) ZonedDateTimeSubject {
	s.Metadata().T().Helper()
	requireZone(loc)
	return subject.DeriveE(s.Subject, callLabel("WithZoneSameLocal", loc),
		func(z chrono.ZonedDateTime) (chrono.ZonedDateTime, error) {
			return z.WithZoneSameLocal(loc)
		}, ZonedDateTimes())
}

func (s ZonedDateTimeSubject) Year() subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "Year()", chrono.ZonedDateTime.Year, subject.Integers())
}

func (s ZonedDateTimeSubject) Month() MonthSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "Month()", chrono.ZonedDateTime.Month, Months())
}

func (s ZonedDateTimeSubject) MonthValue() subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "MonthValue()", chrono.ZonedDateTime.MonthValue, subject.Integers())
}

func (s ZonedDateTimeSubject) DayOfMonth() subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "DayOfMonth()", chrono.ZonedDateTime.DayOfMonth, subject.Integers())
}

func (s ZonedDateTimeSubject) DayOfYear() subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "DayOfYear()", chrono.ZonedDateTime.DayOfYear, subject.Integers())
}

func (s ZonedDateTimeSubject) DayOfWeek() DayOfWeekSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "DayOfWeek()", chrono.ZonedDateTime.DayOfWeek, DaysOfWeek())
}

func (s ZonedDateTimeSubject) Hour() subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "Hour()", chrono.ZonedDateTime.Hour, subject.Integers())
}

func (s ZonedDateTimeSubject) Minute() subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "Minute()", chrono.ZonedDateTime.Minute, subject.Integers())
}

func (s ZonedDateTimeSubject) Second() subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "Second()", chrono.ZonedDateTime.Second, subject.Integers())
}

func (s ZonedDateTimeSubject) Nano() subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "Nano()", chrono.ZonedDateTime.Nano, subject.Integers())
}

// EpochMilli derives the milliseconds since the epoch of the
// instant. Overflow panics with chrono.ErrArithmeticOverflow.
func (s ZonedDateTimeSubject) EpochMilli() subject.LongSubject {
	s.Metadata().T().Helper()
	return subject.DeriveE(s.Subject, "EpochMilli()",
		func(z chrono.ZonedDateTime) (int64, error) { return z.Instant().EpochMilli() },
		subject.Longs())
}

func (s ZonedDateTimeSubject) EpochSecond() subject.LongSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "EpochSecond()",
		func(z chrono.ZonedDateTime) int64 { return z.Instant().EpochSecond() },
		subject.Longs())
}

func (s ZonedDateTimeSubject) EpochDay() subject.LongSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "EpochDay()",
		func(z chrono.ZonedDateTime) int64 { return z.Instant().EpochDay() },
		subject.Longs())
}
