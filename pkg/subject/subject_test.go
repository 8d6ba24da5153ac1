package subject

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"digital.vasic.truthext/pkg/config"
	"digital.vasic.truthext/pkg/fact"
	"digital.vasic.truthext/pkg/logging"
	"digital.vasic.truthext/pkg/metrics"
)

type mockT struct {
	mock.Mock
}

func (m *mockT) Helper() {}

func (m *mockT) Errorf(format string, args ...any) {
	m.Called(format, args)
}

func (m *mockT) FailNow() {
	m.Called()
}

type mockLogger struct {
	logging.NullLogger
	mock.Mock
}

func (m *mockLogger) Error(msg string, fields ...logging.Field) {
	m.Called(msg, fields)
}

func recoverError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}

func TestSubject_IsEqualTo(t *testing.T) {
	failure := ExpectFailure(func(t TestingT) {
		AssertAbout(t, Integers()).That(3).IsEqualTo(3)
	})
	assert.Nil(t, failure)

	failure = ExpectFailure(func(t TestingT) {
		AssertAbout(t, Integers()).That(3).IsEqualTo(4)
	})
	require.NotNil(t, failure)
	assert.Equal(t, "actual", failure.Subject)
	expected, _ := failure.FactValue("expected")
	butWas, _ := failure.FactValue("but was")
	assert.Equal(t, "4", expected)
	assert.Equal(t, "3", butWas)
	assert.ErrorIs(t, failure, ErrAssertionFailed)
}

func TestSubject_IsNotEqualTo(t *testing.T) {
	failure := ExpectFailure(func(t TestingT) {
		AssertAbout(t, Strings()).That("a").IsNotEqualTo("a")
	})
	require.NotNil(t, failure)
	assert.True(t, failure.HasFact("expected not to be"))
}

func TestSubject_Absent(t *testing.T) {
	failure := ExpectFailure(func(t TestingT) {
		AssertAbout(t, Integers()).ThatPtr(nil).IsAtLeast(1)
	})
	require.NotNil(t, failure)
	assert.True(t, failure.HasFact("expected integer to be non-null"))

	assert.Nil(t, ExpectFailure(func(t TestingT) {
		AssertAbout(t, Integers()).ThatPtr(nil).IsNull()
	}))

	failure = ExpectFailure(func(t TestingT) {
		AssertAbout(t, Integers()).That(1).IsNull()
	})
	require.NotNil(t, failure)
	assert.True(t, failure.HasFact("expected integer to be null"))
}

type stamp struct {
	set bool
}

func (s stamp) IsZero() bool { return !s.set }

func stamps() Factory[Subject[stamp], stamp] {
	return func(meta *Metadata, actual *stamp) Subject[stamp] {
		return New(meta, actual, "stamp")
	}
}

func TestSubject_UnsetValueIsAbsent(t *testing.T) {
	failure := ExpectFailure(func(t TestingT) {
		AssertAbout(t, stamps()).That(stamp{}).IsEqualTo(stamp{})
	})
	require.NotNil(t, failure)
	assert.True(t, failure.HasFact("expected stamp to be non-null"))

	AssertAbout(t, stamps()).That(stamp{}).IsNull()
	AssertAbout(t, stamps()).ThatPtr(&stamp{}).IsNull()
	AssertAbout(t, stamps()).That(stamp{set: true}).IsNotNull()
	_, ok := AssertAbout(t, stamps()).That(stamp{}).Actual()
	assert.False(t, ok)
}

func TestNonAbsent_RecordsFailure(t *testing.T) {
	rec := metrics.NewMemoryRecorder()
	failure := ExpectFailure(func(t TestingT) {
		AssertAbout(t, Integers(), WithRecorder(rec)).ThatPtr(nil).IsAtLeast(1)
	})
	require.NotNil(t, failure)
	assert.Equal(t, 1, rec.AssertionCount("integer", "NonAbsent", false))
}

func TestFromConfig_SharesFileLogger(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Format = "json"
	cfg.Logging.Output = filepath.Join(t.TempDir(), "failures.log")

	first, err := fromConfig(cfg)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := fromConfig(cfg)
		require.NoError(t, err)
		assert.Same(t, first.logger, again.logger)
	}
}

func TestBuilder_ThatPtrCopies(t *testing.T) {
	v := 5
	s := AssertAbout(t, Integers()).ThatPtr(&v)
	v = 6
	got, ok := s.Actual()
	assert.True(t, ok)
	assert.Equal(t, 5, got)
}

func TestOrderedSubject(t *testing.T) {
	tests := []struct {
		name string
		fn   func(s LongSubject)
		fail bool
	}{
		{"greater", func(s LongSubject) { s.IsGreaterThan(1) }, false},
		{"not greater", func(s LongSubject) { s.IsGreaterThan(10) }, true},
		{"less", func(s LongSubject) { s.IsLessThan(11) }, false},
		{"not less", func(s LongSubject) { s.IsLessThan(10) }, true},
		{"at least", func(s LongSubject) { s.IsAtLeast(10) }, false},
		{"at most", func(s LongSubject) { s.IsAtMost(9) }, true},
		{"in", func(s LongSubject) { s.IsIn(1, 10) }, false},
		{"in upper bound", func(s LongSubject) { s.IsIn(10, 20) }, false},
		{"not in", func(s LongSubject) { s.IsNotIn(1, 10) }, true},
		{"outside", func(s LongSubject) { s.IsNotIn(11, 20) }, false},
		{"in above", func(s LongSubject) { s.IsIn(11, 20) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failure := ExpectFailure(func(t TestingT) {
				tt.fn(AssertAbout(t, Longs()).That(10))
			})
			assert.Equal(t, tt.fail, failure != nil)
		})
	}
}

func TestOrderedSubject_RangeFacts(t *testing.T) {
	failure := ExpectFailure(func(t TestingT) {
		AssertAbout(t, Integers()).That(0).IsIn(1, 12)
	})
	require.NotNil(t, failure)
	v, _ := failure.FactValue("expected to be in range")
	assert.Equal(t, "[1..12]", v)

	err := recoverError(func() {
		AssertAbout(t, Integers()).That(0).IsIn(5, 1)
	})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestStringSubject(t *testing.T) {
	tests := []struct {
		name string
		fn   func(s StringSubject)
		fail bool
	}{
		{"empty", func(s StringSubject) { s.IsEmpty() }, true},
		{"not empty", func(s StringSubject) { s.IsNotEmpty() }, false},
		{"length", func(s StringSubject) { s.HasLength(9) }, false},
		{"contains", func(s StringSubject) { s.Contains("Dol") }, false},
		{"does not contain", func(s StringSubject) { s.DoesNotContain("Dol") }, true},
		{"starts", func(s StringSubject) { s.StartsWith("US") }, false},
		{"ends", func(s StringSubject) { s.EndsWith("Euro") }, true},
		{"matches", func(s StringSubject) { s.Matches(`US \w+`) }, false},
		{"partial match", func(s StringSubject) { s.Matches(`US`) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failure := ExpectFailure(func(t TestingT) {
				tt.fn(AssertAbout(t, Strings()).That("US Dollar"))
			})
			assert.Equal(t, tt.fail, failure != nil)
		})
	}
}

func TestStringSubject_InvalidPattern(t *testing.T) {
	err := recoverError(func() {
		AssertAbout(t, Strings()).ThatPtr(nil).Matches("(")
	})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDerive_Path(t *testing.T) {
	failure := ExpectFailure(func(t TestingT) {
		s := AssertAbout(t, Strings(), WithName("code")).That("EUR")
		n := Derive(s.Subject, "Len()", func(v string) int { return len(v) }, Integers())
		assert.Equal(t, []string{"code", "Len()"}, n.Metadata().Path())
		n.IsEqualTo(4)
	})
	require.NotNil(t, failure)
	assert.Equal(t, "code.Len()", failure.Subject)
}

func TestDerive_AbsentParent(t *testing.T) {
	called := false
	failure := ExpectFailure(func(t TestingT) {
		s := AssertAbout(t, Strings()).ThatPtr(nil)
		Derive(s.Subject, "Len()", func(v string) int {
			called = true
			return len(v)
		}, Integers())
	})
	require.NotNil(t, failure)
	assert.False(t, called)
	assert.True(t, failure.HasFact("expected string to be non-null"))
}

func TestDeriveE_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	err := recoverError(func() {
		s := AssertAbout(t, Strings()).That("x")
		DeriveE(s.Subject, "Fail()", func(string) (int, error) {
			return 0, boom
		}, Integers())
	})
	assert.ErrorIs(t, err, boom)
}

func TestMetadata_ChildDoesNotShareBackingArray(t *testing.T) {
	root := NewMetadata(t)
	a := root.Child("A()")
	b := root.Child("B()")
	a1 := a.Child("X()")
	a2 := a.Child("Y()")
	assert.Equal(t, "actual", root.Description())
	assert.Equal(t, "actual.B()", b.Description())
	assert.Equal(t, "actual.A().X()", a1.Description())
	assert.Equal(t, "actual.A().Y()", a2.Description())
}

func TestMetadata_Options(t *testing.T) {
	rec := metrics.NewMemoryRecorder()
	m := NewMetadata(t,
		WithName("price"),
		WithRecorder(rec),
		WithLocale(language.French),
	)
	assert.Equal(t, "price", m.Description())
	assert.Equal(t, language.French, m.Locale())
	assert.Same(t, rec, m.Recorder())
}

func TestMetadata_WithConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Locale = "de-DE"
	m := NewMetadata(t, WithConfig(cfg))
	base, _ := m.Locale().Base()
	assert.Equal(t, "de", base.String())

	cfg.Report.Format = "xml"
	err := recoverError(func() { NewMetadata(t, WithConfig(cfg)) })
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMetadata_NilT(t *testing.T) {
	err := recoverError(func() { NewMetadata(nil) })
	var invalid *InvalidArgumentError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "t", invalid.Name)
}

func TestCheck_RecordsMetricsAndLogs(t *testing.T) {
	rec := metrics.NewMemoryRecorder()
	logger := &mockLogger{}
	logger.On("Error", "assertion failed", mock.Anything).Once()

	ExpectFailure(func(t TestingT) {
		s := AssertAbout(t, Integers(), WithRecorder(rec), WithLogger(logger)).That(2)
		s.IsAtLeast(1)
		s.IsAtLeast(3)
	})
	assert.Equal(t, 1, rec.AssertionCount("integer", "IsAtLeast", true))
	assert.Equal(t, 1, rec.AssertionCount("integer", "IsAtLeast", false))
	logger.AssertExpectations(t)
}

func TestTestingStrategy_ReportsThroughT(t *testing.T) {
	mt := &mockT{}
	mt.On("Errorf", "%s", mock.Anything).Once()
	mt.On("FailNow").Once()

	err := recoverError(func() {
		AssertAbout(mt, Integers()).That(1).IsEqualTo(2)
	})
	assert.ErrorIs(t, err, ErrAssertionFailed)
	mt.AssertExpectations(t)
}

func TestWithStrategy(t *testing.T) {
	var got *AssertionError
	strategy := FailureStrategyFunc(func(err *AssertionError) { got = err })
	err := recoverError(func() {
		AssertAbout(t, Integers(), WithStrategy(strategy)).That(1).IsEqualTo(2)
	})
	require.NotNil(t, got)
	assert.ErrorIs(t, err, ErrAssertionFailed)
	assert.Contains(t, got.Error(), "subject: actual")
}

func TestExpectFailure_OtherPanicsPropagate(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		ExpectFailure(func(TestingT) { panic("boom") })
	})
}

func TestAssertionError_Facts(t *testing.T) {
	err := &AssertionError{
		Subject: "actual",
		Facts:   []fact.Fact{fact.Simple("expected x"), fact.New("but was", 1)},
	}
	assert.True(t, err.HasFact("expected x"))
	_, ok := err.FactValue("expected x")
	assert.False(t, ok)
	v, ok := err.FactValue("but was")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	assert.Equal(t, "actual", err.Failure().Subject)
}
