package config

import "fmt"

// Mergeable is implemented by values that absorb a merge source in place.
// Merge descends into a bound value only when that value is Mergeable.
type Mergeable interface {
	Merge(source any) (*Node, error)
}

// MappingView is implemented by values that can be used as a merge source
// through their direct bindings.
type MappingView interface {
	Entries() *Mapping
}

// Merge folds source into n and returns n; it never copies the receiver.
//
// For every binding of source, in order:
//   - a key not bound in n is bound to the incoming value;
//   - a key bound to a Mergeable value receives a recursive Merge when the
//     incoming value is a mapping or a MappingView;
//   - any other bound key is overwritten by the incoming value, even when the
//     incoming value is a mapping. The mapping is stored as is, not converted.
//
// Incoming nodes are cloned before binding so that two trees never share a
// subtree. Source is checked before anything is mutated.
func (n *Node) Merge(source any) (*Node, error) {
	if n == nil {
		return nil, ErrNilNode
	}

	entries, err := mergeEntries(source)
	if err != nil {
		return nil, err
	}

	for key, value := range entries.All() {
		current, bound := n.entries.Get(key)

		if bound && isMergeSource(value) {
			if child, ok := current.(Mergeable); ok && child != nil {
				_, err := child.Merge(value)
				if err != nil {
					return nil, fmt.Errorf("merging %q: %w", key, err)
				}

				continue
			}
		}

		n.Set(key, detach(value))
	}

	return n, nil
}

func mergeEntries(source any) (*Mapping, error) {
	if mapping, ok := asMapping(source); ok {
		return mapping, nil
	}

	if view, ok := source.(MappingView); ok && view != nil {
		return view.Entries(), nil
	}

	return nil, fmt.Errorf("%w, got %T", ErrInvalidMergeSource, source)
}

func isMergeSource(value any) bool {
	if _, ok := asMapping(value); ok {
		return true
	}

	_, ok := value.(MappingView)

	return ok
}
