package chrono

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocal(t *testing.T, y int, m Month, d, h, mi, s, n int) LocalDateTime {
	t.Helper()
	l, err := LocalOf(y, m, d, h, mi, s, n)
	require.NoError(t, err)
	return l
}

func TestLocalOf_Validation(t *testing.T) {
	tests := []struct {
		name string
		fn   func() (LocalDateTime, error)
	}{
		{"month", func() (LocalDateTime, error) { return LocalOf(2020, Month(13), 1, 0, 0, 0, 0) }},
		{"day", func() (LocalDateTime, error) { return LocalOf(2021, February, 29, 0, 0, 0, 0) }},
		{"hour", func() (LocalDateTime, error) { return LocalOf(2020, March, 1, 24, 0, 0, 0) }},
		{"minute", func() (LocalDateTime, error) { return LocalOf(2020, March, 1, 0, 60, 0, 0) }},
		{"second", func() (LocalDateTime, error) { return LocalOf(2020, March, 1, 0, 0, 60, 0) }},
		{"nano", func() (LocalDateTime, error) { return LocalOf(2020, March, 1, 0, 0, 0, -1) }},
		{"year", func() (LocalDateTime, error) { return LocalOf(MaxYear+1, March, 1, 0, 0, 0, 0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn()
			assert.ErrorIs(t, err, ErrOutOfRange)
		})
	}

	l := mustLocal(t, 2020, February, 29, 0, 0, 0, 0)
	assert.Equal(t, 60, l.DayOfYear())
}

func TestLocalDateTime_Fields(t *testing.T) {
	l := mustLocal(t, 2021, March, 14, 15, 9, 26, 535)
	assert.Equal(t, ISO, l.Chronology())
	assert.Equal(t, 2021, l.Year())
	assert.Equal(t, March, l.Month())
	assert.Equal(t, 3, l.MonthValue())
	assert.Equal(t, 14, l.DayOfMonth())
	assert.Equal(t, 73, l.DayOfYear())
	assert.Equal(t, Sunday, l.DayOfWeek())
	assert.Equal(t, 15, l.Hour())
	assert.Equal(t, 9, l.Minute())
	assert.Equal(t, 26, l.Second())
	assert.Equal(t, 535, l.Nano())
	assert.False(t, l.IsZero())
	assert.True(t, LocalDateTime{}.IsZero())
}

// TestLocalOfEpochSecond verifies epoch conversion anchored at
// an offset.
func TestLocalOfEpochSecond(t *testing.T) {
	l, err := LocalOfEpochSecond(5, 0, UTC)
	require.NoError(t, err)
	assert.Equal(t, int64(0), l.EpochDay())
	assert.Equal(t, int64(5), l.ToEpochSecond(UTC))
	assert.Equal(t, int64(5_000_000_000), l.NanoOfDay())

	plus4, err := OffsetOfHours(4)
	require.NoError(t, err)
	l, err = LocalOfEpochSecond(0, 0, plus4)
	require.NoError(t, err)
	assert.Equal(t, 4, l.Hour())
	assert.Equal(t, Epoch, l.ToInstant(plus4))

	_, err = LocalOfEpochSecond(0, 1_000_000_000, UTC)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = LocalOfEpochSecond(maxEpochSecond, 0, UTC)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestLocalDateTime_BeforeEpoch(t *testing.T) {
	l := mustLocal(t, 1969, December, 31, 23, 59, 59, 0)
	assert.Equal(t, int64(-1), l.EpochDay())
	assert.Equal(t, int64(86399_000_000_000), l.NanoOfDay())
}

func TestLocalDateTime_Chronology(t *testing.T) {
	iso := mustLocal(t, 2020, January, 2, 3, 4, 5, 0)
	thai := iso.WithChronology(ThaiBuddhist)
	minguo := iso.WithChronology(Minguo)

	assert.Equal(t, 2563, thai.Year())
	assert.Equal(t, 109, minguo.Year())
	assert.Equal(t, iso.DayOfYear(), thai.DayOfYear())

	direct, err := ThaiBuddhist.DateTime(2563, January, 2, 3, 4, 5, 0)
	require.NoError(t, err)
	assert.True(t, direct.Equal(thai))

	assert.True(t, iso.IsEqual(thai))
	assert.False(t, iso.Equal(thai))
	assert.NotEqual(t, 0, iso.Compare(thai))
	assert.Equal(t, -1, iso.Compare(thai))
	assert.Equal(t, 0, iso.Compare(iso))
}

func TestLocalDateTime_Ordering(t *testing.T) {
	a := mustLocal(t, 2020, January, 1, 0, 0, 0, 0)
	b := mustLocal(t, 2020, January, 1, 0, 0, 0, 1)
	assert.True(t, a.IsBefore(b))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a.WithChronology(Minguo)))
	assert.Equal(t, -1, a.Compare(b.WithChronology(ISO)))
}

func TestLocalDateTime_AtZone(t *testing.T) {
	l := mustLocal(t, 2020, June, 1, 12, 0, 0, 0)
	plus4, err := OffsetOfHours(4)
	require.NoError(t, err)

	z, err := l.AtZone(plus4.Location())
	require.NoError(t, err)
	assert.Equal(t, 12, z.Hour())
	assert.Equal(t, l.ToInstant(plus4), z.Instant())

	_, err = l.AtZone(nil)
	assert.ErrorIs(t, err, ErrMissingZone)
}

func TestLocalDateTime_Plus(t *testing.T) {
	leap := mustLocal(t, 2020, February, 29, 10, 0, 0, 0)
	next, err := leap.PlusYears(1)
	require.NoError(t, err)
	assert.Equal(t, 28, next.DayOfMonth())
	assert.Equal(t, February, next.Month())

	later, err := leap.WithChronology(ThaiBuddhist).PlusSeconds(3600)
	require.NoError(t, err)
	assert.Equal(t, 11, later.Hour())
	assert.Equal(t, ThaiBuddhist, later.Chronology())
}

func TestLocalFromTime(t *testing.T) {
	loc := time.FixedZone("X", -3*3600)
	l, err := LocalFromTime(time.Date(2022, time.May, 6, 7, 8, 9, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, 7, l.Hour())
	assert.Equal(t, May, l.Month())
}

func TestLocalDateTime_String(t *testing.T) {
	tests := []struct {
		name string
		l    LocalDateTime
		want string
	}{
		{"minutes", mustLocal(t, 2020, March, 4, 5, 6, 0, 0), "2020-03-04T05:06"},
		{"seconds", mustLocal(t, 2020, March, 4, 5, 6, 7, 0), "2020-03-04T05:06:07"},
		{"micros", mustLocal(t, 2020, March, 4, 5, 6, 7, 1_500_000), "2020-03-04T05:06:07.001500"},
		{"nanos", mustLocal(t, 2020, March, 4, 5, 6, 7, 1), "2020-03-04T05:06:07.000000001"},
		{"thai", mustLocal(t, 2020, March, 4, 5, 6, 0, 0).WithChronology(ThaiBuddhist), "ThaiBuddhist 2563-03-04T05:06"},
		{"unset", LocalDateTime{}, "<unset>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.l.String())
		})
	}
}
