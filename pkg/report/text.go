package report

import (
	"io"
	"strings"
)

// TextReporter renders failures as aligned "key: value" lines
// followed by the subject line.
type TextReporter struct {
	maxValueLength int
}

// NewTextReporter creates a text reporter.
func NewTextReporter(maxValueLength int) *TextReporter {
	return &TextReporter{maxValueLength: maxValueLength}
}

// GenerateReport renders a failure as text.
func (r *TextReporter) GenerateReport(
	failure Failure,
) ([]byte, error) {
	failure = truncated(failure, r.maxValueLength)

	width := 0
	for _, f := range failure.Facts {
		if f.Value != nil && len(f.Key) > width {
			width = len(f.Key)
		}
	}

	var sb strings.Builder
	for _, f := range failure.Facts {
		if f.Value == nil {
			sb.WriteString(f.Key)
			sb.WriteByte('\n')
			continue
		}
		sb.WriteString(f.Key)
		sb.WriteString(strings.Repeat(" ", width-len(f.Key)))
		sb.WriteString(": ")
		sb.WriteString(indentContinuation(*f.Value, width+2))
		sb.WriteByte('\n')
	}
	if failure.Subject != "" {
		sb.WriteString("subject: ")
		sb.WriteString(failure.Subject)
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}

// WriteReport writes a text report to w.
func (r *TextReporter) WriteReport(
	w io.Writer, failure Failure,
) error {
	return writeTo(w, r, failure)
}

// Format returns FormatText.
func (r *TextReporter) Format() Format { return FormatText }
