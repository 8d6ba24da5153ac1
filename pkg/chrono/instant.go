package chrono

import (
	"cmp"
	"time"
)

const (
	minEpochSecond = -31557014167219200
	maxEpochSecond = 31556889864403199
)

// Instant is a point on the time-line between MinInstant and
// MaxInstant with nanosecond precision.
type Instant struct {
	seconds int64
	nanos   int32
}

var (
	// Epoch is 1970-01-01T00:00:00Z.
	Epoch = Instant{}
	// MinInstant is -1000000000-01-01T00:00:00Z.
	MinInstant = Instant{seconds: minEpochSecond}
	// MaxInstant is 1000000000-12-31T23:59:59.999999999Z.
	MaxInstant = Instant{seconds: maxEpochSecond, nanos: 999_999_999}
)

// OfEpochSecond returns the instant seconds plus nanoAdjustment
// nanoseconds after the epoch. The adjustment may be negative
// or exceed one second.
func OfEpochSecond(seconds, nanoAdjustment int64) (Instant, error) {
	secs, err := AddExact(seconds, FloorDiv(nanoAdjustment, nanosPerSecond))
	if err != nil {
		return Instant{}, err
	}
	if secs < minEpochSecond || secs > maxEpochSecond {
		return Instant{}, outOfRange("epoch second", secs)
	}
	return Instant{
		seconds: secs,
		nanos:   int32(FloorMod(nanoAdjustment, nanosPerSecond)),
	}, nil
}

// OfEpochMilli returns the instant millis after the epoch.
func OfEpochMilli(millis int64) Instant {
	return Instant{
		seconds: FloorDiv(millis, 1000),
		nanos:   int32(FloorMod(millis, 1000) * nanosPerMilli),
	}
}

// InstantFromTime converts a time.Time.
func InstantFromTime(t time.Time) (Instant, error) {
	return OfEpochSecond(t.Unix(), int64(t.Nanosecond()))
}

// EpochSecond returns whole seconds since the epoch.
func (i Instant) EpochSecond() int64 { return i.seconds }

// Nano returns the nanosecond within the second, 0..999999999.
func (i Instant) Nano() int { return int(i.nanos) }

// EpochMilli returns milliseconds since the epoch, or
// ErrArithmeticOverflow when they do not fit in an int64.
func (i Instant) EpochMilli() (int64, error) {
	return EpochMilli(i.seconds, i.nanos)
}

// EpochDay returns the day containing the instant.
func (i Instant) EpochDay() int64 { return EpochDay(i.seconds) }

// Instant returns i, so Instant satisfies Moment.
func (i Instant) Instant() Instant { return i }

// Time converts to a UTC time.Time.
func (i Instant) Time() time.Time {
	return time.Unix(i.seconds, int64(i.nanos)).UTC()
}

// Compare orders instants on the time-line.
func (i Instant) Compare(o Instant) int {
	if c := cmp.Compare(i.seconds, o.seconds); c != 0 {
		return c
	}
	return cmp.Compare(i.nanos, o.nanos)
}

// IsBefore reports whether i is strictly earlier than o.
func (i Instant) IsBefore(o Instant) bool { return i.Compare(o) < 0 }

// IsAfter reports whether i is strictly later than o.
func (i Instant) IsAfter(o Instant) bool { return i.Compare(o) > 0 }

// Equal reports whether both instants are the same point.
func (i Instant) Equal(o Instant) bool { return i == o }

// PlusSeconds adds seconds.
func (i Instant) PlusSeconds(n int64) (Instant, error) {
	secs, err := AddExact(i.seconds, n)
	if err != nil {
		return Instant{}, err
	}
	return OfEpochSecond(secs, int64(i.nanos))
}

// PlusMillis adds milliseconds.
func (i Instant) PlusMillis(n int64) (Instant, error) {
	secs, err := AddExact(i.seconds, FloorDiv(n, 1000))
	if err != nil {
		return Instant{}, err
	}
	return OfEpochSecond(secs, int64(i.nanos)+FloorMod(n, 1000)*nanosPerMilli)
}

// AtZone returns the zoned date-time of i in loc. It fails
// when the local year leaves MinYear..MaxYear.
func (i Instant) AtZone(loc *time.Location) (ZonedDateTime, error) {
	if loc == nil {
		return ZonedDateTime{}, ErrMissingZone
	}
	t := i.Time().In(loc)
	if err := checkYear(t); err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{t: t, set: true}, nil
}

// IsSupportedField reports whether GetLong accepts f.
func (i Instant) IsSupportedField(f Field) bool {
	switch f {
	case FieldInstantSeconds, FieldNanoOfSecond,
		FieldMicroOfSecond, FieldMilliOfSecond:
		return true
	}
	return false
}

// IsSupportedUnit reports whether i can be shifted by u.
func (i Instant) IsSupportedUnit(u Unit) bool {
	return u.IsTimeBased()
}

// Get returns the value of f as an int.
func (i Instant) Get(f Field) (int, error) {
	v, err := i.GetLong(f)
	return getInt(f, v, err)
}

// GetLong returns the value of f.
func (i Instant) GetLong(f Field) (int64, error) {
	switch f {
	case FieldInstantSeconds:
		return i.seconds, nil
	case FieldNanoOfSecond:
		return int64(i.nanos), nil
	case FieldMicroOfSecond:
		return int64(i.nanos / 1000), nil
	case FieldMilliOfSecond:
		return int64(i.nanos / nanosPerMilli), nil
	}
	return 0, unsupportedField(f)
}

// String renders ISO-8601 text in UTC, e.g.
// "1970-01-01T00:00:00Z".
func (i Instant) String() string {
	t := i.Time()
	s := formatDateTime(t, int64(t.Year()))
	if t.Second() == 0 && t.Nanosecond() == 0 {
		s += ":00"
	}
	return s + "Z"
}

// Moment is any value that projects onto the time-line.
type Moment interface {
	Instant() Instant
}
