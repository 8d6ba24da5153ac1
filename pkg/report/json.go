package report

import (
	"encoding/json"
	"io"
)

// JSONReporter renders failures as JSON documents.
type JSONReporter struct {
	pretty         bool
	maxValueLength int
}

// NewJSONReporter creates a new JSON reporter. When pretty is
// true, output is indented for readability.
func NewJSONReporter(
	pretty bool,
	maxValueLength int,
) *JSONReporter {
	return &JSONReporter{
		pretty:         pretty,
		maxValueLength: maxValueLength,
	}
}

// GenerateReport creates a JSON report for a single failure.
func (r *JSONReporter) GenerateReport(
	failure Failure,
) ([]byte, error) {
	failure = truncated(failure, r.maxValueLength)
	if r.pretty {
		return json.MarshalIndent(failure, "", "  ")
	}
	return json.Marshal(failure)
}

// WriteReport writes a JSON report to the specified writer.
func (r *JSONReporter) WriteReport(
	w io.Writer,
	failure Failure,
) error {
	return writeTo(w, r, failure)
}

// Format returns FormatJSON.
func (r *JSONReporter) Format() Format { return FormatJSON }
