package subject

import (
	"regexp"
	"strings"

	"digital.vasic.truthext/pkg/fact"
)

// StringSubject asserts on string values.
type StringSubject struct {
	Subject[string]
}

// NewString creates a StringSubject of the given kind.
func NewString(meta *Metadata, actual *string, kind string) StringSubject {
	return StringSubject{Subject: New(meta, actual, kind)}
}

// Strings is the Factory of StringSubject.
func Strings() Factory[StringSubject, string] {
	return func(meta *Metadata, actual *string) StringSubject {
		return NewString(meta, actual, "string")
	}
}

func (s StringSubject) IsEmpty() {
	s.meta.T().Helper()
	actual := s.NonAbsent()
	s.Check("IsEmpty", actual == "", fact.Simple("expected to be empty"))
}

func (s StringSubject) IsNotEmpty() {
	s.meta.T().Helper()
	actual := s.NonAbsent()
	s.Check("IsNotEmpty", actual != "", fact.Simple("expected not to be empty"))
}

// HasLength compares the length in bytes.
func (s StringSubject) HasLength(n int) {
	s.meta.T().Helper()
	actual := s.NonAbsent()
	s.Check("HasLength", len(actual) == n, fact.New("expected to have length", n))
}

func (s StringSubject) Contains(substr string) {
	s.meta.T().Helper()
	actual := s.NonAbsent()
	s.Check("Contains", strings.Contains(actual, substr), fact.New("expected to contain", substr))
}

func (s StringSubject) DoesNotContain(substr string) {
	s.meta.T().Helper()
	actual := s.NonAbsent()
	s.Check("DoesNotContain", !strings.Contains(actual, substr),
		fact.New("expected not to contain", substr))
}

func (s StringSubject) StartsWith(prefix string) {
	s.meta.T().Helper()
	actual := s.NonAbsent()
	s.Check("StartsWith", strings.HasPrefix(actual, prefix),
		fact.New("expected to start with", prefix))
}

func (s StringSubject) EndsWith(suffix string) {
	s.meta.T().Helper()
	actual := s.NonAbsent()
	s.Check("EndsWith", strings.HasSuffix(actual, suffix),
		fact.New("expected to end with", suffix))
}

// Matches passes when the whole value matches pattern. An
// invalid pattern is an invalid argument.
func (s StringSubject) Matches(pattern string) {
	s.meta.T().Helper()
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		InvalidArgument("pattern", err.Error())
	}
	actual := s.NonAbsent()
	s.Check("Matches", re.MatchString(actual), fact.New("expected to match", pattern))
}
