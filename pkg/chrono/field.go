// Package chrono provides the calendar values the temporal
// subjects assert on: months, days of week, bounded instants,
// zone offsets, chronologies and local and zoned date-times.
// Zone rules come from time.Location; nothing here parses text.
package chrono

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedField is returned when a value cannot
	// report the requested field.
	ErrUnsupportedField = errors.New("unsupported field")

	// ErrUnsupportedUnit is returned for units a value cannot
	// be measured in.
	ErrUnsupportedUnit = errors.New("unsupported unit")

	// ErrArithmeticOverflow is returned when a conversion does
	// not fit in a signed 64-bit integer.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")

	// ErrOutOfRange is returned when a value falls outside the
	// range of its type.
	ErrOutOfRange = errors.New("value out of range")

	// ErrMissingZone is returned when a nil location is given.
	ErrMissingZone = errors.New("missing zone")
)

// Field is a calendar field such as month-of-year.
type Field int

const (
	FieldNanoOfSecond Field = iota + 1
	FieldMicroOfSecond
	FieldMilliOfSecond
	FieldSecondOfMinute
	FieldMinuteOfHour
	FieldHourOfDay
	FieldDayOfWeek
	FieldDayOfMonth
	FieldDayOfYear
	FieldMonthOfYear
	FieldYear
	FieldEpochDay
	FieldInstantSeconds
	FieldOffsetSeconds
)

var fieldNames = map[Field]string{
	FieldNanoOfSecond:   "NanoOfSecond",
	FieldMicroOfSecond:  "MicroOfSecond",
	FieldMilliOfSecond:  "MilliOfSecond",
	FieldSecondOfMinute: "SecondOfMinute",
	FieldMinuteOfHour:   "MinuteOfHour",
	FieldHourOfDay:      "HourOfDay",
	FieldDayOfWeek:      "DayOfWeek",
	FieldDayOfMonth:     "DayOfMonth",
	FieldDayOfYear:      "DayOfYear",
	FieldMonthOfYear:    "MonthOfYear",
	FieldYear:           "Year",
	FieldEpochDay:       "EpochDay",
	FieldInstantSeconds: "InstantSeconds",
	FieldOffsetSeconds:  "OffsetSeconds",
}

// IsValid reports whether f names a known field.
func (f Field) IsValid() bool {
	_, ok := fieldNames[f]
	return ok
}

// String returns the field name.
func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// fitsInt reports whether every value of f fits in 32 bits.
func (f Field) fitsInt() bool {
	return f != FieldEpochDay && f != FieldInstantSeconds
}

// Unit is a unit of time such as days.
type Unit int

const (
	UnitNanos Unit = iota + 1
	UnitMicros
	UnitMillis
	UnitSeconds
	UnitMinutes
	UnitHours
	UnitHalfDays
	UnitDays
	UnitWeeks
	UnitMonths
	UnitYears
	UnitDecades
	UnitCenturies
	UnitMillennia
	UnitEras
	UnitForever
)

var unitNames = map[Unit]string{
	UnitNanos:     "Nanos",
	UnitMicros:    "Micros",
	UnitMillis:    "Millis",
	UnitSeconds:   "Seconds",
	UnitMinutes:   "Minutes",
	UnitHours:     "Hours",
	UnitHalfDays:  "HalfDays",
	UnitDays:      "Days",
	UnitWeeks:     "Weeks",
	UnitMonths:    "Months",
	UnitYears:     "Years",
	UnitDecades:   "Decades",
	UnitCenturies: "Centuries",
	UnitMillennia: "Millennia",
	UnitEras:      "Eras",
	UnitForever:   "Forever",
}

// IsValid reports whether u names a known unit.
func (u Unit) IsValid() bool {
	_, ok := unitNames[u]
	return ok
}

// String returns the unit name.
func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// IsTimeBased reports whether u is Days or shorter.
func (u Unit) IsTimeBased() bool {
	return u >= UnitNanos && u <= UnitDays
}

func unsupportedField(f Field) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedField, f)
}

func outOfRange(name string, v int64) error {
	return fmt.Errorf("%w: %s %d", ErrOutOfRange, name, v)
}

// getInt narrows a long field value for Get.
func getInt(f Field, v int64, err error) (int, error) {
	if err != nil {
		return 0, err
	}
	if !f.fitsInt() {
		return 0, fmt.Errorf(
			"%w: %s does not fit an int, use GetLong",
			ErrUnsupportedField, f,
		)
	}
	return int(v), nil
}
