package domain

// Payload carries a decoded request body merged with route params.
// Inbound JSON is loosely typed, so required fields are checked in two
// steps: absent or falsy means missing, present but non-string means a
// data type mismatch.
type Payload map[string]any

// GetString extracts a required string field.
func (p Payload) GetString(field string) (string, error) {
	v, ok := p[field]
	if !ok || isFalsy(v) {
		return "", &ValidationError{Kind: KindMissingProperty, Field: field}
	}
	s, ok := v.(string)
	if !ok {
		return "", &ValidationError{Kind: KindTypeMismatch, Field: field}
	}
	return s, nil
}

// OptionalString returns the field when present and string-typed,
// otherwise the empty string. Used for pass-through fields that the
// use case checks against storage instead of the payload.
func (p Payload) OptionalString(field string) string {
	s, _ := p[field].(string)
	return s
}

// JSON primitives only: numbers always arrive as float64.
func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	default:
		return false
	}
}
