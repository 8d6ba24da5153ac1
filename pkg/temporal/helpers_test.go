package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"digital.vasic.truthext/pkg/chrono"
)

var plusFour = time.FixedZone("+04:00", 4*3600)

func recoverError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}

func mustZoned(
	t *testing.T, y int, m chrono.Month, d, h, mi int, loc *time.Location,
) chrono.ZonedDateTime {
	t.Helper()
	z, err := chrono.ZonedOf(y, m, d, h, mi, 0, 0, loc)
	require.NoError(t, err)
	return z
}

func mustLocal(t *testing.T, y int, m chrono.Month, d, h, mi int) chrono.LocalDateTime {
	t.Helper()
	l, err := chrono.LocalOf(y, m, d, h, mi, 0, 0)
	require.NoError(t, err)
	return l
}
