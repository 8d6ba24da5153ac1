package temporal

import (
	"digital.vasic.truthext/pkg/chrono"
	"digital.vasic.truthext/pkg/fact"
	"digital.vasic.truthext/pkg/subject"
)

// MonthSubject asserts on a chrono.Month.
type MonthSubject struct {
	subject.Subject[chrono.Month]
}

// Months is the Factory of MonthSubject.
func Months() subject.Factory[MonthSubject, chrono.Month] {
	return func(meta *subject.Metadata, actual *chrono.Month) MonthSubject {
		return MonthSubject{Subject: subject.New(meta, actual, "month")}
	}
}

// AssertThatMonth starts a chain on m.
func AssertThatMonth(t subject.TestingT, m chrono.Month, opts ...subject.Option) MonthSubject {
	return subject.AssertAbout(t, Months(), opts...).That(m)
}

// AssertThatMonthPtr starts a chain on a possibly absent month.
func AssertThatMonthPtr(t subject.TestingT, m *chrono.Month, opts ...subject.Option) MonthSubject {
	return subject.AssertAbout(t, Months(), opts...).ThatPtr(m)
}

func (s MonthSubject) IsBefore(other chrono.Month) {
	s.Metadata().T().Helper()
	checkOrdinal(s.Subject, "IsBefore", other, before, "expected to be before")
}

func (s MonthSubject) IsBeforeOrEqualTo(other chrono.Month) {
	s.Metadata().T().Helper()
	checkOrdinal(s.Subject, "IsBeforeOrEqualTo", other, beforeOrEqual,
		"expected to be before or equal to")
}

func (s MonthSubject) IsAfter(other chrono.Month) {
	s.Metadata().T().Helper()
	checkOrdinal(s.Subject, "IsAfter", other, after, "expected to be after")
}

func (s MonthSubject) IsAfterOrEqualTo(other chrono.Month) {
	s.Metadata().T().Helper()
	checkOrdinal(s.Subject, "IsAfterOrEqualTo", other, afterOrEqual,
		"expected to be after or equal to")
}

// IsSupported passes when the month provides field.
func (s MonthSubject) IsSupported(field chrono.Field) {
	s.Metadata().T().Helper()
	requireField(field)
	actual := s.NonAbsent()
	s.Check("IsSupported", actual.IsSupported(field), fact.New("expected to support", field))
}

// IsNotSupported passes when the month does not provide field.
func (s MonthSubject) IsNotSupported(field chrono.Field) {
	s.Metadata().T().Helper()
	requireField(field)
	actual := s.NonAbsent()
	s.Check("IsNotSupported", !actual.IsSupported(field),
		fact.New("expected not to support", field))
}

// Ordinal derives the zero-based index, January = 0.
func (s MonthSubject) Ordinal() subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "Ordinal()", chrono.Month.Ordinal, subject.Integers())
}

// Value derives the month number, January = 1.
func (s MonthSubject) Value() subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "Value()", chrono.Month.Value, subject.Integers())
}

// Get derives the value of field. An unsupported field panics
// with chrono.ErrUnsupportedField.
func (s MonthSubject) Get(field chrono.Field) subject.IntegerSubject {
	s.Metadata().T().Helper()
	requireField(field)
	return subject.DeriveE(s.Subject, callLabel("Get", field),
		func(m chrono.Month) (int, error) { return m.Get(field) },
		subject.Integers())
}

// GetLong is Get widened to int64.
func (s MonthSubject) GetLong(field chrono.Field) subject.LongSubject {
	s.Metadata().T().Helper()
	requireField(field)
	return subject.DeriveE(s.Subject, callLabel("GetLong", field),
		func(m chrono.Month) (int64, error) { return m.GetLong(field) },
		subject.Longs())
}

func (s MonthSubject) MinLength() subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "MinLength()", chrono.Month.MinLength, subject.Integers())
}

func (s MonthSubject) MaxLength() subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "MaxLength()", chrono.Month.MaxLength, subject.Integers())
}

// Length derives the number of days in a leap or common year.
func (s MonthSubject) Length(leapYear bool) subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, callLabel("Length", leapYear),
		func(m chrono.Month) int { return m.Length(leapYear) },
		subject.Integers())
}

// FirstDayOfYear derives the day-of-year of the first day of the
// month.
func (s MonthSubject) FirstDayOfYear(leapYear bool) subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, callLabel("FirstDayOfYear", leapYear),
		func(m chrono.Month) int { return m.FirstDayOfYear(leapYear) },
		subject.Integers())
}

// FirstMonthOfQuarter derives the month that opens the quarter.
func (s MonthSubject) FirstMonthOfQuarter() MonthSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "FirstMonthOfQuarter()",
		chrono.Month.FirstMonthOfQuarter, Months())
}
