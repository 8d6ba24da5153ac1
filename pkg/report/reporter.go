// Package report renders assertion failure reports as text,
// JSON or YAML.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"digital.vasic.truthext/pkg/fact"
)

// DefaultMaxValueLength is the value length after which fact
// values are truncated.
const DefaultMaxValueLength = 200

// Format names a report encoding.
type Format string

const (
	// FormatText renders aligned "key: value" lines.
	FormatText Format = "text"
	// FormatJSON renders a JSON document.
	FormatJSON Format = "json"
	// FormatYAML renders a YAML document.
	FormatYAML Format = "yaml"
)

// Failure is the rendered form of one failed assertion: the
// derivation path of the failing subject and its ordered facts.
type Failure struct {
	Subject string      `json:"subject" yaml:"subject"`
	Facts   []fact.Fact `json:"facts" yaml:"facts"`
}

// Reporter defines the interface for rendering failures.
type Reporter interface {
	// GenerateReport renders a single failure.
	GenerateReport(failure Failure) ([]byte, error)

	// WriteReport writes a rendered failure to w.
	WriteReport(w io.Writer, failure Failure) error

	// Format returns the encoding this reporter produces.
	Format() Format
}

// New returns the reporter for the given format. Values longer
// than maxValueLength are truncated; a non-positive length
// selects DefaultMaxValueLength.
func New(format Format, maxValueLength int) (Reporter, error) {
	if maxValueLength <= 0 {
		maxValueLength = DefaultMaxValueLength
	}
	switch format {
	case FormatText, "":
		return NewTextReporter(maxValueLength), nil
	case FormatJSON:
		return NewJSONReporter(true, maxValueLength), nil
	case FormatYAML:
		return NewYAMLReporter(maxValueLength), nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// String renders a failure with the text reporter. It never
// fails and is used for error messages.
func String(failure Failure) string {
	data, _ := NewTextReporter(DefaultMaxValueLength).
		GenerateReport(failure)
	return string(data)
}

func writeTo(
	w io.Writer, r Reporter, failure Failure,
) error {
	data, err := r.GenerateReport(failure)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func truncateValue(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "... (truncated " +
		strconv.Itoa(len(s)-limit) + " chars)"
}

// truncated returns a copy of the failure with long values cut.
func truncated(failure Failure, limit int) Failure {
	out := Failure{
		Subject: failure.Subject,
		Facts:   make([]fact.Fact, len(failure.Facts)),
	}
	for i, f := range failure.Facts {
		if f.Value != nil {
			v := truncateValue(*f.Value, limit)
			f.Value = &v
		}
		out.Facts[i] = f
	}
	return out
}

func indentContinuation(s string, width int) string {
	if !strings.Contains(s, "\n") {
		return s
	}
	pad := "\n" + strings.Repeat(" ", width)
	return strings.ReplaceAll(s, "\n", pad)
}
