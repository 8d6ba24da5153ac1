package chrono

import (
	"cmp"
	"time"
)

// LocalDateTime is a calendar date and wall-clock time with no
// zone, expressed in a chronology. The zero value is unset.
type LocalDateTime struct {
	chrono Chronology
	// wall holds the ISO fields as a UTC time.
	wall time.Time
}

func newWall(
	isoYear int64, month Month, day, hour, minute, second, nano int,
) time.Time {
	return time.Date(
		int(isoYear), month.TimeMonth(), day,
		hour, minute, second, nano, time.UTC,
	)
}

// LocalOf returns an ISO local date-time.
func LocalOf(
	year int, month Month, day, hour, minute, second, nano int,
) (LocalDateTime, error) {
	return ISO.DateTime(year, month, day, hour, minute, second, nano)
}

// LocalOfEpochSecond returns the ISO local date-time seen at
// offset when the instant is epochSecond plus nano.
func LocalOfEpochSecond(
	epochSecond int64, nano int, offset ZoneOffset,
) (LocalDateTime, error) {
	if nano < 0 || nano >= nanosPerSecond {
		return LocalDateTime{}, outOfRange("nano", int64(nano))
	}
	local, err := AddExact(epochSecond, int64(offset.totalSeconds))
	if err != nil {
		return LocalDateTime{}, err
	}
	limit := int64(maxEpochSecond) + SecondsPerDay
	if local < -limit || local > limit {
		return LocalDateTime{}, outOfRange("epoch second", epochSecond)
	}
	wall := time.Unix(local, int64(nano)).UTC()
	if err := checkYear(wall); err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{chrono: ISO, wall: wall}, nil
}

// LocalFromTime returns the ISO wall-clock reading of t in its
// own location.
func LocalFromTime(t time.Time) (LocalDateTime, error) {
	if err := checkYear(t); err != nil {
		return LocalDateTime{}, err
	}
	y, m, d := t.Date()
	return LocalDateTime{
		chrono: ISO,
		wall: newWall(
			int64(y), Month(m), d,
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		),
	}, nil
}

// IsZero reports whether l is unset.
func (l LocalDateTime) IsZero() bool { return l.chrono.IsZero() }

// Chronology returns the calendar system of l.
func (l LocalDateTime) Chronology() Chronology { return l.chrono }

// WithChronology returns the same local time-line position
// expressed in c.
func (l LocalDateTime) WithChronology(c Chronology) LocalDateTime {
	return LocalDateTime{chrono: c, wall: l.wall}
}

// Year returns the year in l's chronology.
func (l LocalDateTime) Year() int {
	return int(l.chrono.ProlepticYear(int64(l.wall.Year())))
}

// Month returns the month-of-year.
func (l LocalDateTime) Month() Month { return Month(l.wall.Month()) }

// MonthValue returns the month-of-year as 1..12.
func (l LocalDateTime) MonthValue() int { return int(l.wall.Month()) }

// DayOfMonth returns the day-of-month.
func (l LocalDateTime) DayOfMonth() int { return l.wall.Day() }

// DayOfYear returns the day-of-year.
func (l LocalDateTime) DayOfYear() int { return l.wall.YearDay() }

// DayOfWeek returns the ISO day-of-week.
func (l LocalDateTime) DayOfWeek() DayOfWeek {
	return DayOfWeekFromWeekday(l.wall.Weekday())
}

// Hour returns the hour-of-day.
func (l LocalDateTime) Hour() int { return l.wall.Hour() }

// Minute returns the minute-of-hour.
func (l LocalDateTime) Minute() int { return l.wall.Minute() }

// Second returns the second-of-minute.
func (l LocalDateTime) Second() int { return l.wall.Second() }

// Nano returns the nanosecond-of-second.
func (l LocalDateTime) Nano() int { return l.wall.Nanosecond() }

// EpochDay returns the local day counted from 1970-01-01.
func (l LocalDateTime) EpochDay() int64 {
	return EpochDay(l.wall.Unix())
}

// NanoOfDay returns nanoseconds since local midnight.
func (l LocalDateTime) NanoOfDay() int64 {
	return FloorMod(l.wall.Unix(), SecondsPerDay)*nanosPerSecond +
		int64(l.wall.Nanosecond())
}

// ToEpochSecond returns the epoch second of l at offset.
func (l LocalDateTime) ToEpochSecond(offset ZoneOffset) int64 {
	return l.wall.Unix() - int64(offset.totalSeconds)
}

// ToInstant returns the instant of l at offset.
func (l LocalDateTime) ToInstant(offset ZoneOffset) Instant {
	return Instant{
		seconds: l.ToEpochSecond(offset),
		nanos:   int32(l.wall.Nanosecond()),
	}
}

// AtZone returns l in loc. Gaps and overlaps are resolved the
// way time.Date resolves them.
func (l LocalDateTime) AtZone(loc *time.Location) (ZonedDateTime, error) {
	if loc == nil {
		return ZonedDateTime{}, ErrMissingZone
	}
	y, m, d := l.wall.Date()
	return ZonedDateTime{t: time.Date(
		y, m, d, l.wall.Hour(), l.wall.Minute(), l.wall.Second(),
		l.wall.Nanosecond(), loc,
	), set: true}, nil
}

// IsEqual reports whether both values are at the same position
// on the local time-line, ignoring chronology.
func (l LocalDateTime) IsEqual(o LocalDateTime) bool {
	return l.EpochDay() == o.EpochDay() && l.NanoOfDay() == o.NanoOfDay()
}

// IsBefore reports whether l is earlier on the local time-line.
func (l LocalDateTime) IsBefore(o LocalDateTime) bool {
	return l.compareTimeline(o) < 0
}

// IsAfter reports whether l is later on the local time-line.
func (l LocalDateTime) IsAfter(o LocalDateTime) bool {
	return l.compareTimeline(o) > 0
}

// Compare orders by local time-line position, then by
// chronology ID. It returns 0 only when both the position and
// the chronology match.
func (l LocalDateTime) Compare(o LocalDateTime) int {
	if c := l.compareTimeline(o); c != 0 {
		return c
	}
	return cmp.Compare(l.chrono.id, o.chrono.id)
}

func (l LocalDateTime) compareTimeline(o LocalDateTime) int {
	if c := cmp.Compare(l.EpochDay(), o.EpochDay()); c != 0 {
		return c
	}
	return cmp.Compare(l.NanoOfDay(), o.NanoOfDay())
}

// Equal reports whether both values have the same chronology
// and fields.
func (l LocalDateTime) Equal(o LocalDateTime) bool {
	return l.chrono == o.chrono && l.wall.Equal(o.wall)
}

// PlusSeconds adds seconds.
func (l LocalDateTime) PlusSeconds(n int64) (LocalDateTime, error) {
	out, err := LocalOfEpochSecond(
		l.ToEpochSecond(UTC)+n, l.Nano(), UTC,
	)
	if err != nil {
		return LocalDateTime{}, err
	}
	return out.WithChronology(l.chrono), nil
}

// PlusYears adds years, clamping February 29 to February 28
// in common years.
func (l LocalDateTime) PlusYears(n int) (LocalDateTime, error) {
	y := int64(l.wall.Year()) + int64(n)
	m := l.Month()
	d := min(l.DayOfMonth(), m.Length(IsLeapYear(y)))
	if err := validateDateTime(
		y, m, d, l.Hour(), l.Minute(), l.Second(), l.Nano(),
	); err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{
		chrono: l.chrono,
		wall:   newWall(y, m, d, l.Hour(), l.Minute(), l.Second(), l.Nano()),
	}, nil
}

// String renders ISO-8601 text. Non-ISO values are prefixed
// with the chronology and use its year numbering.
func (l LocalDateTime) String() string {
	if l.IsZero() {
		return "<unset>"
	}
	s := formatDateTime(l.wall, int64(l.Year()))
	if l.chrono != ISO {
		return l.chrono.id + " " + s
	}
	return s
}
