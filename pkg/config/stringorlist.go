package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// StringOrList is a setting that accepts either a single string or a
// list of strings in the configuration document. The first entry is
// the primary value.
type StringOrList []string

// First returns the primary value, or the empty string when unset.
func (s StringOrList) First() string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

// UnmarshalYAML accepts both a scalar and a sequence.
func (s *StringOrList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var value string
		if err := node.Decode(&value); err != nil {
			return err
		}
		*s = StringOrList{value}
		return nil
	case yaml.SequenceNode:
		var values []string
		if err := node.Decode(&values); err != nil {
			return err
		}
		*s = StringOrList(values)
		return nil
	default:
		return fmt.Errorf("line %d: expected a string or a list of strings", node.Line)
	}
}

// MarshalYAML emits a scalar for single values and a sequence
// otherwise.
func (s StringOrList) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}
	return []string(s), nil
}
