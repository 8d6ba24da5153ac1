package chrono

import (
	"fmt"
	"time"
)

// Month is a month-of-year, January = 1 through December = 12.
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"JANUARY", "FEBRUARY", "MARCH", "APRIL", "MAY", "JUNE",
	"JULY", "AUGUST", "SEPTEMBER", "OCTOBER", "NOVEMBER", "DECEMBER",
}

// MonthOf returns the month for a value in 1..12.
func MonthOf(v int) (Month, error) {
	m := Month(v)
	if !m.IsValid() {
		return 0, outOfRange("month", int64(v))
	}
	return m, nil
}

// MonthFromTime converts a time.Month.
func MonthFromTime(m time.Month) Month {
	return Month(m)
}

// IsValid reports whether m is in 1..12.
func (m Month) IsValid() bool {
	return m >= January && m <= December
}

// Value returns the month number, 1..12.
func (m Month) Value() int { return int(m) }

// Ordinal returns the zero-based position, 0..11.
func (m Month) Ordinal() int { return int(m) - 1 }

// TimeMonth converts to time.Month.
func (m Month) TimeMonth() time.Month { return time.Month(m) }

func (m Month) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// Plus returns the month n months later, wrapping around the
// year in either direction.
func (m Month) Plus(n int64) Month {
	return Month(FloorMod(int64(m.Ordinal())+n, 12) + 1)
}

// MinLength is the length in days in a common year.
func (m Month) MinLength() int {
	switch m {
	case February:
		return 28
	case April, June, September, November:
		return 30
	default:
		return 31
	}
}

// MaxLength is the length in days in a leap year.
func (m Month) MaxLength() int {
	if m == February {
		return 29
	}
	return m.MinLength()
}

// Length returns the month length for the given year kind.
func (m Month) Length(leapYear bool) int {
	if leapYear {
		return m.MaxLength()
	}
	return m.MinLength()
}

// FirstDayOfYear returns the day-of-year on which m starts.
func (m Month) FirstDayOfYear(leapYear bool) int {
	day := 1
	for prior := January; prior < m; prior++ {
		day += prior.Length(leapYear)
	}
	return day
}

// FirstMonthOfQuarter returns January, April, July or October.
func (m Month) FirstMonthOfQuarter() Month {
	return Month(m.Ordinal()/3*3 + 1)
}

// IsSupported reports whether Get and GetLong accept f.
func (m Month) IsSupported(f Field) bool {
	return f == FieldMonthOfYear
}

// Get returns the value of f as an int.
func (m Month) Get(f Field) (int, error) {
	v, err := m.GetLong(f)
	return getInt(f, v, err)
}

// GetLong returns the value of f.
func (m Month) GetLong(f Field) (int64, error) {
	if f != FieldMonthOfYear {
		return 0, unsupportedField(f)
	}
	return int64(m), nil
}
