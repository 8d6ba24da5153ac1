package chrono

import (
	"fmt"
	"time"
)

// DayOfWeek is an ISO day-of-week, Monday = 1 through
// Sunday = 7.
type DayOfWeek int

const (
	Monday DayOfWeek = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{
	"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY",
	"FRIDAY", "SATURDAY", "SUNDAY",
}

// DayOfWeekOf returns the day for a value in 1..7.
func DayOfWeekOf(v int) (DayOfWeek, error) {
	d := DayOfWeek(v)
	if !d.IsValid() {
		return 0, outOfRange("day-of-week", int64(v))
	}
	return d, nil
}

// DayOfWeekFromWeekday converts a time.Weekday, whose week
// starts on Sunday.
func DayOfWeekFromWeekday(w time.Weekday) DayOfWeek {
	if w == time.Sunday {
		return Sunday
	}
	return DayOfWeek(w)
}

// IsValid reports whether d is in 1..7.
func (d DayOfWeek) IsValid() bool {
	return d >= Monday && d <= Sunday
}

// Value returns the ISO number, 1..7.
func (d DayOfWeek) Value() int { return int(d) }

// Ordinal returns the zero-based position, 0..6.
func (d DayOfWeek) Ordinal() int { return int(d) - 1 }

// Weekday converts to time.Weekday.
func (d DayOfWeek) Weekday() time.Weekday {
	return time.Weekday(int(d) % 7)
}

func (d DayOfWeek) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("DayOfWeek(%d)", int(d))
	}
	return dayNames[d-1]
}

// Plus returns the day n days later, wrapping around the week.
func (d DayOfWeek) Plus(n int64) DayOfWeek {
	return DayOfWeek(FloorMod(int64(d.Ordinal())+n, 7) + 1)
}

// IsSupported reports whether Get and GetLong accept f.
func (d DayOfWeek) IsSupported(f Field) bool {
	return f == FieldDayOfWeek
}

// Get returns the value of f as an int.
func (d DayOfWeek) Get(f Field) (int, error) {
	v, err := d.GetLong(f)
	return getInt(f, v, err)
}

// GetLong returns the value of f.
func (d DayOfWeek) GetLong(f Field) (int64, error) {
	if f != FieldDayOfWeek {
		return 0, unsupportedField(f)
	}
	return int64(d), nil
}
