package validation

// Source provides the values being validated.
type Source interface {
	Value(attribute string) any
}

// Map is a Source backed by a Go map. Missing attributes are nil.
type Map map[string]any

// Value implements Source.
func (m Map) Value(attribute string) any {
	return m[attribute]
}

// SourceFunc adapts a function to Source.
type SourceFunc func(attribute string) any

// Value implements Source.
func (f SourceFunc) Value(attribute string) any {
	return f(attribute)
}
