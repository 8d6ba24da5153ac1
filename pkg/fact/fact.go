// Package fact provides the key/value annotations attached to
// assertion failure reports.
package fact

import "fmt"

// Fact is a single diagnostic line of a failure report. A nil
// Value marks a simple fact that carries only a message.
type Fact struct {
	Key   string  `json:"key" yaml:"key"`
	Value *string `json:"value,omitempty" yaml:"value,omitempty"`
}

// New creates a fact whose value is the default formatting of v.
func New(key string, v any) Fact {
	s := Format(v)
	return Fact{Key: key, Value: &s}
}

// Simple creates a message-only fact.
func Simple(key string) Fact {
	return Fact{Key: key}
}

// IsSimple reports whether the fact carries no value.
func (f Fact) IsSimple() bool {
	return f.Value == nil
}

// String renders the fact as "key: value", or just the key for
// a simple fact.
func (f Fact) String() string {
	if f.Value == nil {
		return f.Key
	}
	return f.Key + ": " + *f.Value
}

// Format renders a value for a fact. Values with a String
// method use it; nil renders as "<nil>".
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
