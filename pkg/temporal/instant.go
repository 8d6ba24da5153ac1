package temporal

import (
	"time"

	"digital.vasic.truthext/pkg/chrono"
	"digital.vasic.truthext/pkg/fact"
	"digital.vasic.truthext/pkg/subject"
)

// InstantSubject asserts on a chrono.Instant.
type InstantSubject struct {
	subject.Subject[chrono.Instant]
}

// Instants is the Factory of InstantSubject.
func Instants() subject.Factory[InstantSubject, chrono.Instant] {
	return func(meta *subject.Metadata, actual *chrono.Instant) InstantSubject {
		return InstantSubject{Subject: subject.New(meta, actual, "instant")}
	}
}

// AssertThatInstant starts a chain on i.
func AssertThatInstant(t subject.TestingT, i chrono.Instant, opts ...subject.Option) InstantSubject {
	return subject.AssertAbout(t, Instants(), opts...).That(i)
}

// AssertThatInstantPtr starts a chain on a possibly absent instant.
func AssertThatInstantPtr(t subject.TestingT, i *chrono.Instant, opts ...subject.Option) InstantSubject {
	return subject.AssertAbout(t, Instants(), opts...).ThatPtr(i)
}

// IsMax passes when the instant is chrono.MaxInstant.
func (s InstantSubject) IsMax() {
	s.Metadata().T().Helper()
	actual := s.NonAbsent()
	s.Check("IsMax", actual.Equal(chrono.MaxInstant), fact.New("expected", chrono.MaxInstant))
}

func (s InstantSubject) IsNotMax() {
	s.Metadata().T().Helper()
	actual := s.NonAbsent()
	s.Check("IsNotMax", !actual.Equal(chrono.MaxInstant),
		fact.New("expected not to be", chrono.MaxInstant))
}

// IsMin passes when the instant is chrono.MinInstant.
func (s InstantSubject) IsMin() {
	s.Metadata().T().Helper()
	actual := s.NonAbsent()
	s.Check("IsMin", actual.Equal(chrono.MinInstant), fact.New("expected", chrono.MinInstant))
}

func (s InstantSubject) IsNotMin() {
	s.Metadata().T().Helper()
	actual := s.NonAbsent()
	s.Check("IsNotMin", !actual.Equal(chrono.MinInstant),
		fact.New("expected not to be", chrono.MinInstant))
}

func (s InstantSubject) IsBefore(other chrono.Instant) {
	s.Metadata().T().Helper()
	actual := s.NonAbsent()
	s.Check("IsBefore", actual.Compare(other) < 0, fact.New("expected to be before", other))
}

func (s InstantSubject) IsBeforeOrEqualTo(other chrono.Instant) {
	s.Metadata().T().Helper()
	actual := s.NonAbsent()
	s.Check("IsBeforeOrEqualTo", actual.Compare(other) <= 0,
		fact.New("expected to be before or equal to", other))
}

func (s InstantSubject) IsAfter(other chrono.Instant) {
	s.Metadata().T().Helper()
	actual := s.NonAbsent()
	s.Check("IsAfter", actual.Compare(other) > 0, fact.New("expected to be after", other))
}

func (s InstantSubject) IsAfterOrEqualTo(other chrono.Instant) {
	s.Metadata().T().Helper()
	actual := s.NonAbsent()
	s.Check("IsAfterOrEqualTo", actual.Compare(other) >= 0,
		fact.New("expected to be after or equal to", other))
}

// IsSameInstantAs passes when other is at the same point on the
// time-line.
func (s InstantSubject) IsSameInstantAs(other chrono.Moment) {
	s.Metadata().T().Helper()
	requireMoment(other)
	actual := s.NonAbsent()
	s.Check("IsSameInstantAs", actual.Equal(other.Instant()),
		fact.New("expected to be same instant as", other))
}

func (s InstantSubject) IsNotSameInstantAs(other chrono.Moment) {
	s.Metadata().T().Helper()
	requireMoment(other)
	actual := s.NonAbsent()
	s.Check("IsNotSameInstantAs", !actual.Equal(other.Instant()),
		fact.New("expected not to be same instant as", other))
}

func (s InstantSubject) IsSupportedField(field chrono.Field) {
	s.Metadata().T().Helper()
	requireField(field)
	actual := s.NonAbsent()
	s.Check("IsSupportedField", actual.IsSupportedField(field),
		fact.New("expected to support", field))
}

func (s InstantSubject) IsNotSupportedField(field chrono.Field) {
	s.Metadata().T().Helper()
	requireField(field)
	actual := s.NonAbsent()
	s.Check("IsNotSupportedField", !actual.IsSupportedField(field),
		fact.New("expected not to support", field))
}

func (s InstantSubject) IsSupportedUnit(unit chrono.Unit) {
	s.Metadata().T().Helper()
	requireUnit(unit)
	actual := s.NonAbsent()
	s.Check("IsSupportedUnit", actual.IsSupportedUnit(unit),
		fact.New("expected to support", unit))
}

func (s InstantSubject) IsNotSupportedUnit(unit chrono.Unit) {
	s.Metadata().T().Helper()
	requireUnit(unit)
	actual := s.NonAbsent()
	s.Check("IsNotSupportedUnit", !actual.IsSupportedUnit(unit),
		fact.New("expected not to support", unit))
}

// EpochMilli derives the milliseconds since the epoch. Instants
// outside the int64 millisecond range panic with
// chrono.ErrArithmeticOverflow.
func (s InstantSubject) EpochMilli() subject.LongSubject {
	s.Metadata().T().Helper()
	return subject.DeriveE(s.Subject, "EpochMilli()", chrono.Instant.EpochMilli, subject.Longs())
}

func (s InstantSubject) EpochSecond() subject.LongSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "EpochSecond()", chrono.Instant.EpochSecond, subject.Longs())
}

// EpochDay derives the day since the epoch, rounding toward
// negative infinity.
func (s InstantSubject) EpochDay() subject.LongSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "EpochDay()", chrono.Instant.EpochDay, subject.Longs())
}

// Nano derives the nano-of-second.
func (s InstantSubject) Nano() subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "Nano()", chrono.Instant.Nano, subject.Integers())
}

// AtZone derives the zoned date-time of the instant in loc.
func (s InstantSubject) AtZone(loc *time.Location) ZonedDateTimeSubject {
	s.Metadata().T().Helper()
	requireZone(loc)
	return subject.DeriveE(s.Subject, callLabel("AtZone", loc),
		func(i chrono.Instant) (chrono.ZonedDateTime, error) { return i.AtZone(loc) },
		ZonedDateTimes())
}

// AtUTC is AtZone(time.UTC).
func (s InstantSubject) AtUTC() ZonedDateTimeSubject {
	s.Metadata().T().Helper()
	return subject.DeriveE(s.Subject, "AtUTC()",
		func(i chrono.Instant) (chrono.ZonedDateTime, error) { return i.AtZone(time.UTC) },
		ZonedDateTimes())
}
