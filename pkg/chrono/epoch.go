package chrono

import "math"

const (
	// SecondsPerDay is the length of a calendar day.
	SecondsPerDay = 86400

	nanosPerSecond = 1_000_000_000
	nanosPerMilli  = 1_000_000
	nanosPerDay    = SecondsPerDay * nanosPerSecond
)

// MultiplyExact returns a*b, or ErrArithmeticOverflow.
func MultiplyExact(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	r := a * b
	if r/b != a || (a == -1 && b == math.MinInt64) ||
		(b == -1 && a == math.MinInt64) {
		return 0, ErrArithmeticOverflow
	}
	return r, nil
}

// AddExact returns a+b, or ErrArithmeticOverflow.
func AddExact(a, b int64) (int64, error) {
	r := a + b
	if (a > 0 && b > 0 && r < 0) || (a < 0 && b < 0 && r >= 0) {
		return 0, ErrArithmeticOverflow
	}
	return r, nil
}

// FloorDiv divides rounding toward negative infinity.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod is the modulus matching FloorDiv; its sign follows b.
func FloorMod(a, b int64) int64 {
	return a - FloorDiv(a, b)*b
}

// EpochMilli converts seconds plus a non-negative nanosecond
// adjustment to milliseconds since the epoch.
func EpochMilli(seconds int64, nanos int32) (int64, error) {
	if seconds < 0 && nanos > 0 {
		millis, err := MultiplyExact(seconds+1, 1000)
		if err != nil {
			return 0, err
		}
		return AddExact(millis, int64(nanos/nanosPerMilli)-1000)
	}
	millis, err := MultiplyExact(seconds, 1000)
	if err != nil {
		return 0, err
	}
	return AddExact(millis, int64(nanos/nanosPerMilli))
}

// EpochDay returns the day containing the epoch second.
func EpochDay(seconds int64) int64 {
	return FloorDiv(seconds, SecondsPerDay)
}

// IsLeapYear applies the proleptic Gregorian rule.
func IsLeapYear(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
