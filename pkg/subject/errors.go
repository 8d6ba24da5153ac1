package subject

import (
	"errors"

	"digital.vasic.truthext/pkg/fact"
	"digital.vasic.truthext/pkg/report"
)

var (
	// ErrAssertionFailed matches every *AssertionError.
	ErrAssertionFailed = errors.New("assertion failed")

	// ErrInvalidArgument matches every *InvalidArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")
)

// AssertionError is the failure report of one assertion: the
// derivation path of the failing subject and its ordered facts.
type AssertionError struct {
	Subject string
	Facts   []fact.Fact
}

// Error renders the report as text.
func (e *AssertionError) Error() string {
	return report.String(e.Failure())
}

// Unwrap returns ErrAssertionFailed.
func (e *AssertionError) Unwrap() error {
	return ErrAssertionFailed
}

// Failure returns the report in renderable form.
func (e *AssertionError) Failure() report.Failure {
	return report.Failure{Subject: e.Subject, Facts: e.Facts}
}

// FactValue returns the value of the first fact with key.
func (e *AssertionError) FactValue(key string) (string, bool) {
	for _, f := range e.Facts {
		if f.Key == key && f.Value != nil {
			return *f.Value, true
		}
	}
	return "", false
}

// HasFact reports whether any fact has key.
func (e *AssertionError) HasFact(key string) bool {
	for _, f := range e.Facts {
		if f.Key == key {
			return true
		}
	}
	return false
}

// InvalidArgumentError reports a programming error in the
// arguments of an assertion. It is raised with panic before any
// comparison runs.
type InvalidArgumentError struct {
	Name   string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "invalid argument " + e.Name + ": " + e.Reason
}

// Unwrap returns ErrInvalidArgument.
func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// InvalidArgument panics with an *InvalidArgumentError.
func InvalidArgument(name, reason string) {
	panic(&InvalidArgumentError{Name: name, Reason: reason})
}

// RequireArgument panics with an *InvalidArgumentError unless
// ok holds.
func RequireArgument(ok bool, name string) {
	if !ok {
		InvalidArgument(name, "must not be absent")
	}
}
