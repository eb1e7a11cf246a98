package config

import (
	"iter"
	"reflect"
	"slices"
)

// Pair is a single key/value binding used to build a Mapping.
type Pair struct {
	Key   Key
	Value any
}

// Field returns a pair bound to a string key.
func Field(name string, value any) Pair {
	return Pair{Key: StringKey(name), Value: value}
}

// Index returns a pair bound to an integer key.
func Index(index int, value any) Pair {
	return Pair{Key: IntKey(index), Value: value}
}

// Mapping is an insertion-ordered mapping from Key to an arbitrary value.
// Re-binding an existing key keeps its original position.
//
// The zero value and a nil *Mapping are both valid empty mappings for reads.
type Mapping struct {
	keys   []Key
	values map[Key]any
}

// NewMapping returns a mapping holding the given pairs in order.
func NewMapping(pairs ...Pair) *Mapping {
	mapping := &Mapping{
		keys:   make([]Key, 0, len(pairs)),
		values: make(map[Key]any, len(pairs)),
	}

	for _, pair := range pairs {
		mapping.Set(pair.Key, pair.Value)
	}

	return mapping
}

// FromMap converts a Go map into a Mapping. Go maps carry no order, so keys
// are sorted. Nested map[string]any values are converted recursively.
func FromMap(source map[string]any) *Mapping {
	names := make([]string, 0, len(source))
	for name := range source {
		names = append(names, name)
	}

	slices.Sort(names)

	mapping := NewMapping()

	for _, name := range names {
		value := source[name]
		if nested, ok := value.(map[string]any); ok {
			value = FromMap(nested)
		}

		mapping.Set(StringKey(name), value)
	}

	return mapping
}

// Len returns the number of bindings.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Has reports whether key is bound, even to nil.
func (m *Mapping) Has(key Key) bool {
	if m == nil {
		return false
	}

	_, ok := m.values[key]

	return ok
}

// Get returns the value bound to key and whether the key is bound.
func (m *Mapping) Get(key Key) (any, bool) {
	if m == nil {
		return nil, false
	}

	value, ok := m.values[key]

	return value, ok
}

// Set binds key to value, appending the key if it was not bound yet.
func (m *Mapping) Set(key Key, value any) {
	if m.values == nil {
		m.values = make(map[Key]any)
	}

	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value
}

// Keys returns the bound keys in order.
func (m *Mapping) Keys() []Key {
	if m == nil {
		return nil
	}

	return slices.Clone(m.keys)
}

// All iterates over the bindings in order.
func (m *Mapping) All() iter.Seq2[Key, any] {
	return func(yield func(Key, any) bool) {
		if m == nil {
			return
		}

		for _, key := range m.keys {
			if !yield(key, m.values[key]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy: same keys, same values.
func (m *Mapping) Clone() *Mapping {
	clone := NewMapping()

	for key, value := range m.All() {
		clone.Set(key, value)
	}

	return clone
}

// Equal reports whether both mappings hold the same bindings in the same order.
// Values are compared deeply; nested mappings must match in order too.
func (m *Mapping) Equal(other *Mapping) bool {
	if m.Len() != other.Len() {
		return false
	}

	for i, key := range m.Keys() {
		if other.keys[i] != key {
			return false
		}

		if !valuesEqual(m.values[key], other.values[key]) {
			return false
		}
	}

	return true
}

func valuesEqual(left, right any) bool {
	leftMapping, leftOK := left.(*Mapping)
	rightMapping, rightOK := right.(*Mapping)

	if leftOK && rightOK {
		return leftMapping.Equal(rightMapping)
	}

	leftNode, leftOK := left.(*Node)
	rightNode, rightOK := right.(*Node)

	if leftOK && rightOK {
		return leftNode.entries.Equal(rightNode.entries)
	}

	return reflect.DeepEqual(left, right)
}

// asMapping returns the mapping view of a raw mapping value.
func asMapping(value any) (*Mapping, bool) {
	switch typed := value.(type) {
	case *Mapping:
		return typed, true
	case map[string]any:
		return FromMap(typed), true
	default:
		return nil, false
	}
}
