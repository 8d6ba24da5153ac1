package report

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLReporter renders failures as YAML documents.
type YAMLReporter struct {
	maxValueLength int
}

// NewYAMLReporter creates a YAML reporter.
func NewYAMLReporter(maxValueLength int) *YAMLReporter {
	return &YAMLReporter{maxValueLength: maxValueLength}
}

// GenerateReport creates a YAML report for a single failure.
func (r *YAMLReporter) GenerateReport(
	failure Failure,
) ([]byte, error) {
	return yaml.Marshal(truncated(failure, r.maxValueLength))
}

// WriteReport writes a YAML report to w.
func (r *YAMLReporter) WriteReport(
	w io.Writer,
	failure Failure,
) error {
	return writeTo(w, r, failure)
}

// Format returns FormatYAML.
func (r *YAMLReporter) Format() Format { return FormatYAML }
