package config

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// ErrInvalidConfigType is returned when a node is built from something that is not a mapping.
var ErrInvalidConfigType = errors.New("the configuration must be a mapping")

// ErrInvalidMergeSource is returned when Merge receives neither a mapping nor a node.
var ErrInvalidMergeSource = errors.New("configuration must be a node or a mapping")

// ErrPropertyNotDefined is returned by Lookup when the key is not bound.
var ErrPropertyNotDefined = errors.New("property not defined")

// ErrNilNode is returned when Merge is called on a nil node.
var ErrNilNode = errors.New("nil configuration node")

// PathSeparator separates keys in the paths accepted by Find and by parsers.
const PathSeparator = ":"

// Node is a configuration subtree: an ordered set of bindings whose values are
// scalars, raw mappings or child nodes.
//
// A Node is not safe for concurrent use.
type Node struct {
	entries *Mapping
}

// New creates a node from initial, which must be nil or a mapping
// (*Mapping or map[string]any). Nested mappings become child nodes.
func New(initial any) (*Node, error) {
	node := &Node{entries: NewMapping()}

	if initial == nil {
		return node, nil
	}

	if mapping, ok := initial.(*Mapping); ok && mapping == nil {
		return node, nil
	}

	err := node.PopulateFrom(initial)
	if err != nil {
		return nil, err
	}

	return node, nil
}

// Restore rebuilds a node from an exported mapping. It is the state-restore
// counterpart of ToTree and behaves exactly like New.
func Restore(data any) (*Node, error) {
	return New(data)
}

// PopulateFrom binds every pair of source in order, converting nested
// mappings into child nodes. Nothing is bound when source is not a mapping.
func (n *Node) PopulateFrom(source any) error {
	mapping, ok := asMapping(source)
	if !ok {
		return fmt.Errorf("%w, got %T", ErrInvalidConfigType, source)
	}

	for key, value := range mapping.All() {
		if nested, isMapping := asMapping(value); isMapping {
			child, err := New(nested)
			if err != nil {
				return fmt.Errorf("key %q: %w", key, err)
			}

			n.Set(key, child)

			continue
		}

		n.Set(key, value)
	}

	return nil
}

// Get returns the value bound to key. The default is returned only when the
// key is not bound at all; a key bound to nil yields nil.
func (n *Node) Get(key Key, defaultValue any) any {
	value, ok := n.entries.Get(key)
	if !ok {
		return defaultValue
	}

	return value
}

// Lookup is the strict indexed read: it fails with ErrPropertyNotDefined
// when key is not bound.
func (n *Node) Lookup(key Key) (any, error) {
	value, ok := n.entries.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPropertyNotDefined, key)
	}

	return value, nil
}

// Has reports whether key is bound, including tombstoned keys.
func (n *Node) Has(key Key) bool {
	return n.entries.Has(key)
}

// Set binds key to value as is. Mappings are not converted to nodes.
func (n *Node) Set(key Key, value any) {
	n.writable().Set(key, value)
}

// Unset binds key to nil. The key stays in the node and is still counted.
func (n *Node) Unset(key Key) {
	n.writable().Set(key, nil)
}

// writable makes the zero Node usable.
func (n *Node) writable() *Mapping {
	if n.entries == nil {
		n.entries = NewMapping()
	}

	return n.entries
}

// Count returns the number of direct bindings.
func (n *Node) Count() int {
	return n.entries.Len()
}

// Entries returns a shallow copy of the direct bindings. Child nodes are shared.
func (n *Node) Entries() *Mapping {
	if n == nil {
		return NewMapping()
	}

	return n.entries.Clone()
}

// All iterates over the direct bindings in order.
func (n *Node) All() iter.Seq2[Key, any] {
	return n.entries.All()
}

// ToTree exports the bindings as a mapping. With recursive set, child nodes
// are exported too; otherwise they are returned as node references.
func (n *Node) ToTree(recursive bool) *Mapping {
	tree := NewMapping()

	for key, value := range n.entries.All() {
		if child, ok := value.(*Node); ok && recursive && child != nil {
			tree.Set(key, child.ToTree(true))

			continue
		}

		tree.Set(key, value)
	}

	return tree
}

// Clone returns a deep copy of the node. Raw mapping values are copied
// shallowly, child nodes are cloned.
func (n *Node) Clone() *Node {
	clone := &Node{entries: NewMapping()}

	for key, value := range n.entries.All() {
		clone.Set(key, detach(value))
	}

	return clone
}

// Find resolves a colon separated path such as "database:host" or
// "servers:0:address" through child nodes and raw mappings. A segment is
// matched as a string key first, then as an index when it is a decimal number.
func (n *Node) Find(path string) (any, bool) {
	if path == "" {
		return n, true
	}

	var current any = n

	for segment := range strings.SplitSeq(path, PathSeparator) {
		var (
			value any
			found bool
		)

		switch typed := current.(type) {
		case *Node:
			if typed != nil {
				value, found = lookupSegment(typed.entries, segment)
			}
		case *Mapping:
			value, found = lookupSegment(typed, segment)
		case map[string]any:
			value, found = typed[segment]
		}

		if !found {
			return nil, false
		}

		current = value
	}

	return current, true
}

func lookupSegment(mapping *Mapping, segment string) (any, bool) {
	if value, ok := mapping.Get(StringKey(segment)); ok {
		return value, true
	}

	index, err := strconv.Atoi(segment)
	if err != nil || index < 0 {
		return nil, false
	}

	return mapping.Get(IntKey(index))
}

// detach returns a value safe to bind in another tree: nodes are cloned so
// that two trees never share a subtree.
func detach(value any) any {
	if child, ok := value.(*Node); ok && child != nil {
		return child.Clone()
	}

	return value
}
