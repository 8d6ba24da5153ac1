package chrono

import "time"

// ZonedDateTime is a date-time in a time.Location. The zero
// value is unset.
type ZonedDateTime struct {
	t   time.Time
	set bool
}

// ZonedOf returns the date-time with the given ISO fields in
// loc.
func ZonedOf(
	year int, month Month, day, hour, minute, second, nano int,
	loc *time.Location,
) (ZonedDateTime, error) {
	if loc == nil {
		return ZonedDateTime{}, ErrMissingZone
	}
	if err := validateDateTime(
		int64(year), month, day, hour, minute, second, nano,
	); err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{t: time.Date(
		year, month.TimeMonth(), day, hour, minute, second, nano, loc,
	), set: true}, nil
}

// ZonedFromTime wraps t, dropping any monotonic clock reading.
func ZonedFromTime(t time.Time) (ZonedDateTime, error) {
	if err := checkYear(t); err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{t: t.Round(0), set: true}, nil
}

// IsZero reports whether z is unset.
func (z ZonedDateTime) IsZero() bool { return !z.set }

// Time returns the underlying time.Time.
func (z ZonedDateTime) Time() time.Time { return z.t }

// Location returns the zone of z.
func (z ZonedDateTime) Location() *time.Location { return z.t.Location() }

// Offset returns the offset from UTC in effect at z.
func (z ZonedDateTime) Offset() ZoneOffset {
	_, secs := z.t.Zone()
	return ZoneOffset{totalSeconds: secs}
}

// Instant projects z onto the time-line.
func (z ZonedDateTime) Instant() Instant {
	return Instant{seconds: z.t.Unix(), nanos: int32(z.t.Nanosecond())}
}

// LocalDateTime returns the ISO wall-clock reading of z.
func (z ZonedDateTime) LocalDateTime() LocalDateTime {
	// Construction bounds the year, so this cannot fail.
	l, _ := LocalFromTime(z.t)
	return l
}

// WithZoneSameInstant returns the same instant seen in loc.
func (z ZonedDateTime) WithZoneSameInstant(loc *time.Location) (ZonedDateTime, error) {
	return z.Instant().AtZone(loc)
}

// WithZoneSameLocal returns the same wall-clock reading in loc.
func (z ZonedDateTime) WithZoneSameLocal(loc *time.Location) (ZonedDateTime, error) {
	return z.LocalDateTime().AtZone(loc)
}

// Year returns the ISO year.
func (z ZonedDateTime) Year() int { return z.t.Year() }

// Month returns the month-of-year.
func (z ZonedDateTime) Month() Month { return Month(z.t.Month()) }

// MonthValue returns the month-of-year as 1..12.
func (z ZonedDateTime) MonthValue() int { return int(z.t.Month()) }

// DayOfMonth returns the day-of-month.
func (z ZonedDateTime) DayOfMonth() int { return z.t.Day() }

// DayOfYear returns the day-of-year.
func (z ZonedDateTime) DayOfYear() int { return z.t.YearDay() }

// DayOfWeek returns the ISO day-of-week.
func (z ZonedDateTime) DayOfWeek() DayOfWeek {
	return DayOfWeekFromWeekday(z.t.Weekday())
}

// Hour returns the hour-of-day.
func (z ZonedDateTime) Hour() int { return z.t.Hour() }

// Minute returns the minute-of-hour.
func (z ZonedDateTime) Minute() int { return z.t.Minute() }

// Second returns the second-of-minute.
func (z ZonedDateTime) Second() int { return z.t.Second() }

// Nano returns the nanosecond-of-second.
func (z ZonedDateTime) Nano() int { return z.t.Nanosecond() }

// IsEqual reports whether both values are the same instant.
func (z ZonedDateTime) IsEqual(o ZonedDateTime) bool {
	return z.t.Equal(o.t)
}

// IsBefore reports whether z is an earlier instant than o.
func (z ZonedDateTime) IsBefore(o ZonedDateTime) bool {
	return z.t.Before(o.t)
}

// IsAfter reports whether z is a later instant than o.
func (z ZonedDateTime) IsAfter(o ZonedDateTime) bool {
	return z.t.After(o.t)
}

// Equal reports whether both values have the same instant,
// offset and zone.
func (z ZonedDateTime) Equal(o ZonedDateTime) bool {
	return z.t.Equal(o.t) && z.Offset() == o.Offset() &&
		z.t.Location().String() == o.t.Location().String()
}

// PlusYears adds years to the local date-time and resolves the
// result in the same zone.
func (z ZonedDateTime) PlusYears(n int) (ZonedDateTime, error) {
	l, err := z.LocalDateTime().PlusYears(n)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return l.AtZone(z.t.Location())
}

// PlusSeconds adds seconds on the time-line.
func (z ZonedDateTime) PlusSeconds(n int64) (ZonedDateTime, error) {
	i, err := z.Instant().PlusSeconds(n)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return i.AtZone(z.t.Location())
}

// String renders ISO-8601 text with the offset and, when it
// differs from the offset, the zone name.
func (z ZonedDateTime) String() string {
	if z.IsZero() {
		return "<unset>"
	}
	offset := z.Offset().ID()
	s := formatDateTime(z.t, int64(z.t.Year())) + offset
	if name := z.t.Location().String(); name != offset {
		s += "[" + name + "]"
	}
	return s
}
