package chrono

import (
	"fmt"
	"strings"
	"time"
)

const (
	// MinYear is the earliest year a date-time can hold.
	MinYear = -999_999_999
	// MaxYear is the latest year a date-time can hold.
	MaxYear = 999_999_999
)

func validateDateTime(
	year int64, month Month, day, hour, minute, second, nano int,
) error {
	switch {
	case year < MinYear || year > MaxYear:
		return outOfRange("year", year)
	case !month.IsValid():
		return outOfRange("month", int64(month))
	case day < 1 || day > month.Length(IsLeapYear(year)):
		return outOfRange("day", int64(day))
	case hour < 0 || hour > 23:
		return outOfRange("hour", int64(hour))
	case minute < 0 || minute > 59:
		return outOfRange("minute", int64(minute))
	case second < 0 || second > 59:
		return outOfRange("second", int64(second))
	case nano < 0 || nano >= nanosPerSecond:
		return outOfRange("nano", int64(nano))
	}
	return nil
}

func checkYear(t time.Time) error {
	if y := int64(t.Year()); y < MinYear || y > MaxYear {
		return outOfRange("year", y)
	}
	return nil
}

// formatDateTime renders ISO-8601 local date-time text,
// omitting zero seconds and trimming the fraction to millis,
// micros or nanos.
func formatDateTime(t time.Time, year int64) string {
	var sb strings.Builder
	switch {
	case year > 9999:
		fmt.Fprintf(&sb, "+%d", year)
	case year < 0:
		fmt.Fprintf(&sb, "-%04d", -year)
	default:
		fmt.Fprintf(&sb, "%04d", year)
	}
	fmt.Fprintf(&sb, "-%02d-%02dT%02d:%02d",
		int(t.Month()), t.Day(), t.Hour(), t.Minute(),
	)
	sec, nano := t.Second(), t.Nanosecond()
	if sec > 0 || nano > 0 {
		fmt.Fprintf(&sb, ":%02d", sec)
	}
	switch {
	case nano == 0:
	case nano%1_000_000 == 0:
		fmt.Fprintf(&sb, ".%03d", nano/1_000_000)
	case nano%1000 == 0:
		fmt.Fprintf(&sb, ".%06d", nano/1000)
	default:
		fmt.Fprintf(&sb, ".%09d", nano)
	}
	return sb.String()
}
