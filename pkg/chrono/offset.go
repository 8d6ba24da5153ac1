package chrono

import (
	"fmt"
	"time"
)

const maxOffsetSeconds = 18 * 3600

// ZoneOffset is a fixed offset from UTC of at most 18 hours.
type ZoneOffset struct {
	totalSeconds int
}

var (
	// UTC is the zero offset.
	UTC = ZoneOffset{}
	// MinOffset is -18:00.
	MinOffset = ZoneOffset{-maxOffsetSeconds}
	// MaxOffset is +18:00.
	MaxOffset = ZoneOffset{maxOffsetSeconds}
)

// OffsetOfHours returns the offset of whole hours.
func OffsetOfHours(hours int) (ZoneOffset, error) {
	return OffsetOfTotalSeconds(hours * 3600)
}

// OffsetOfTotalSeconds returns the offset of the given seconds.
func OffsetOfTotalSeconds(seconds int) (ZoneOffset, error) {
	if seconds < -maxOffsetSeconds || seconds > maxOffsetSeconds {
		return ZoneOffset{}, outOfRange("offset seconds", int64(seconds))
	}
	return ZoneOffset{totalSeconds: seconds}, nil
}

// TotalSeconds returns the offset in seconds east of UTC.
func (o ZoneOffset) TotalSeconds() int { return o.totalSeconds }

// ID returns "Z" for UTC and "+hh:mm" or "+hh:mm:ss" otherwise.
func (o ZoneOffset) ID() string {
	if o.totalSeconds == 0 {
		return "Z"
	}
	sign := '+'
	abs := o.totalSeconds
	if abs < 0 {
		sign = '-'
		abs = -abs
	}
	h, m, s := abs/3600, abs/60%60, abs%60
	if s != 0 {
		return fmt.Sprintf("%c%02d:%02d:%02d", sign, h, m, s)
	}
	return fmt.Sprintf("%c%02d:%02d", sign, h, m)
}

func (o ZoneOffset) String() string { return o.ID() }

// Location returns a fixed time.Location for the offset.
func (o ZoneOffset) Location() *time.Location {
	if o.totalSeconds == 0 {
		return time.UTC
	}
	return time.FixedZone(o.ID(), o.totalSeconds)
}
