package config

import "strconv"

// Key identifies a binding inside a Mapping or Node.
//
// A key is either a string name or a non-negative integer index. The two
// key spaces are distinct: StringKey("0") and IntKey(0) never collide.
type Key struct {
	name    string
	index   int
	indexed bool
}

// StringKey returns a key for a named binding.
func StringKey(name string) Key {
	return Key{name: name, index: 0, indexed: false}
}

// IntKey returns a key for an indexed binding. Negative indexes are clamped to zero.
func IntKey(index int) Key {
	if index < 0 {
		index = 0
	}

	return Key{name: "", index: index, indexed: true}
}

// IsIndex reports whether the key is an integer index.
func (k Key) IsIndex() bool {
	return k.indexed
}

// Name returns the string name of a named key, or "" for an index.
func (k Key) Name() string {
	return k.name
}

// Index returns the integer index of an indexed key, or 0 for a name.
func (k Key) Index() int {
	return k.index
}

// Equal reports whether both keys name the same binding.
func (k Key) Equal(other Key) bool {
	return k == other
}

func (k Key) String() string {
	if k.indexed {
		return strconv.Itoa(k.index)
	}

	return k.name
}
