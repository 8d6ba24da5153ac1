package logging

import "digital.vasic.truthext/pkg/fact"

// LogField creates a Field from a key-value pair.
func LogField(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// StringField creates a Field with a string value.
func StringField(key, value string) Field {
	return Field{Key: key, Value: value}
}

// IntField creates a Field with an integer value.
func IntField(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// BoolField creates a Field with a boolean value.
func BoolField(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// ErrorField creates a Field for an error value. If err is nil,
// the value is set to the string "<nil>".
func ErrorField(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: "<nil>"}
	}
	return Field{Key: "error", Value: err.Error()}
}

// FactFields converts failure facts to log fields. Simple facts
// are collected under a single "facts" field in order.
func FactFields(facts []fact.Fact) []Field {
	fields := make([]Field, 0, len(facts)+1)
	var simple []string
	for _, f := range facts {
		if f.Value == nil {
			simple = append(simple, f.Key)
			continue
		}
		fields = append(fields, Field{Key: f.Key, Value: *f.Value})
	}
	if len(simple) > 0 {
		fields = append(fields, Field{Key: "facts", Value: simple})
	}
	return fields
}
