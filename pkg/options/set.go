package options

import "slices"

// Set is an include/exclude specification together with the catalog of
// named options it selects from. Consumers must read the option catalog
// through the Filtered* queries rather than through Options directly,
// so that include/exclude edits take effect uniformly.
type Set[V any] struct {
	Base `yaml:",inline"`

	// Options contains the available options.
	Options Map[V] `yaml:"options,omitempty"`
}

// FilteredKeys returns the option names that fulfill the
// include/exclude requirements.
//
// The result keeps the order of the include list when an explicit list
// without the wildcard is given, and the declaration order of Options
// otherwise. Include entries that name no actual option are kept as
// dangling keys; FilteredValues and FilteredItems drop them.
func (s *Set[V]) FilteredKeys() []string {
	// "*" in exclude wins over everything; skip the per-key work.
	if slices.Contains(s.Exclude, Wildcard) {
		return []string{}
	}

	include := s.Include
	if include == nil || slices.Contains(include, Wildcard) {
		include = s.Options.Keys()
	}

	keys := make([]string, 0, len(include))
	for _, key := range include {
		if !slices.Contains(s.Exclude, key) {
			keys = append(keys, key)
		}
	}
	return keys
}

// FilteredValues returns the option values that fulfill the
// include/exclude requirements, in FilteredKeys order. Dangling include
// entries are silently omitted.
func (s *Set[V]) FilteredValues() []V {
	keys := s.FilteredKeys()
	values := make([]V, 0, len(keys))
	for _, key := range keys {
		if value, ok := s.Options.Get(key); ok {
			values = append(values, value)
		}
	}
	return values
}

// FilteredItems returns the option key/value pairs that fulfill the
// include/exclude requirements, in FilteredKeys order. Dangling include
// entries are silently omitted.
func (s *Set[V]) FilteredItems() []Item[V] {
	keys := s.FilteredKeys()
	items := make([]Item[V], 0, len(keys))
	for _, key := range keys {
		if value, ok := s.Options.Get(key); ok {
			items = append(items, Item[V]{Key: key, Value: value})
		}
	}
	return items
}

// Single is a Set from which exactly one option is selected.
type Single[V any] struct {
	Set[V] `yaml:",inline"`

	// Selected names the selected option.
	Selected string `yaml:"selected"`
}

// Multi is a Set from which multiple options are selected.
type Multi[V any] struct {
	Set[V] `yaml:",inline"`

	// Selected names the selected options.
	Selected []string `yaml:"selected"`
}
