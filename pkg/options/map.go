package options

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Map is a string-keyed map that preserves insertion order. Option sets
// need deterministic iteration that follows the order in which options
// were declared in the configuration document, which a plain Go map
// cannot provide.
type Map[V any] struct {
	keys   []string
	values map[string]V
}

// NewMap creates a Map from alternating key/value declarations,
// preserving the given order.
func NewMap[V any](items ...Item[V]) Map[V] {
	var m Map[V]
	for _, item := range items {
		m.Set(item.Key, item.Value)
	}
	return m
}

// Item is a single key/value pair of an option map.
type Item[V any] struct {
	Key   string
	Value V
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order. The returned slice is a
// copy and can be modified by the caller.
func (m *Map[V]) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (V, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Set stores value under key. A new key is appended to the iteration
// order; an existing key keeps its original position.
func (m *Map[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// UnmarshalYAML decodes a YAML mapping while recording the document
// order of its keys.
func (m *Map[V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: options must be a mapping, got %s", node.Line, nodeKind(node))
	}

	m.keys = nil
	m.values = make(map[string]V, len(node.Content)/2)

	for i := 0; i < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return fmt.Errorf("line %d: invalid option key: %w", keyNode.Line, err)
		}

		var value V
		if err := valueNode.Decode(&value); err != nil {
			return fmt.Errorf("option %q: %w", key, err)
		}

		m.Set(key, value)
	}

	return nil
}

// MarshalYAML encodes the map as a YAML mapping in insertion order.
func (m Map[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range m.keys {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(key); err != nil {
			return nil, err
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(m.values[key]); err != nil {
			return nil, fmt.Errorf("option %q: %w", key, err)
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

// nodeKind returns a human readable name for a YAML node kind.
func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
