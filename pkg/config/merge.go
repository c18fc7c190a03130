package config

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Customize returns a new settings struct created by taking a deep copy
// of base and applying every field of override to it. Neither input is
// mutated, and the result shares no data with either.
//
// Note the asymmetry with CustomizeMap: a struct override is a full
// replacement that applies all of its fields, including fields still at
// their zero or default value, while a map override is a sparse patch.
// Callers that only want to change a few settings should use
// CustomizeMap.
func Customize[T any](base *T, override *T) (*T, error) {
	rv, err := deepCopy(base)
	if err != nil {
		return nil, err
	}
	if override == nil {
		return rv, nil
	}

	applied, err := deepCopy(override)
	if err != nil {
		return nil, err
	}

	dst := reflect.ValueOf(rv).Elem()
	src := reflect.ValueOf(applied).Elem()
	if dst.Kind() != reflect.Struct {
		return nil, fmt.Errorf("customize: %s is not a settings struct", dst.Type())
	}
	for i := 0; i < dst.NumField(); i++ {
		if !dst.Type().Field(i).IsExported() {
			continue
		}
		dst.Field(i).Set(src.Field(i))
	}
	return rv, nil
}

// CustomizeMap returns a new settings struct created by taking a deep
// copy of base and applying the given key/value overrides to it. Keys
// are resolved against the yaml names of the target's fields. A nil
// value means "no override" and is skipped. A key that names no field
// of the target fails the merge with an InvalidSettingError before any
// result is returned.
func CustomizeMap[T any](base *T, overrides map[string]any) (*T, error) {
	rv, err := deepCopy(base)
	if err != nil {
		return nil, err
	}

	target := reflect.ValueOf(rv).Elem()
	if target.Kind() != reflect.Struct {
		return nil, fmt.Errorf("customize: %s is not a settings struct", target.Type())
	}

	// Go maps have no deterministic order; sort so that the reported
	// invalid key does not depend on iteration order.
	keys := make([]string, 0, len(overrides))
	for key := range overrides {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		value := overrides[key]
		if value == nil {
			continue
		}
		field, ok := fieldByYAMLName(target, key)
		if !ok {
			return nil, &InvalidSettingError{Field: key, Value: value}
		}
		if err := assignValue(field, value); err != nil {
			return nil, &InvalidSettingError{Field: key, Value: value}
		}
	}
	return rv, nil
}

// deepCopy clones a settings struct through its yaml representation.
// All settings structs are yaml-serializable by construction, and the
// round trip guarantees that no slice, map or pointer is shared with
// the source.
func deepCopy[T any](src *T) (*T, error) {
	data, err := yaml.Marshal(src)
	if err != nil {
		return nil, fmt.Errorf("copying settings: %w", err)
	}
	dst := new(T)
	if err := yaml.Unmarshal(data, dst); err != nil {
		return nil, fmt.Errorf("copying settings: %w", err)
	}
	return dst, nil
}

// fieldByYAMLName resolves a settable struct field from its yaml name,
// descending into embedded structs the way the yaml ",inline" tag does.
// Falls back to the lowercased Go field name for fields without a tag.
func fieldByYAMLName(target reflect.Value, name string) (reflect.Value, bool) {
	t := target.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get("yaml")
		yamlName, opts, _ := strings.Cut(tag, ",")
		if sf.Anonymous && (yamlName == "" || strings.Contains(opts, "inline")) {
			if field, ok := fieldByYAMLName(target.Field(i), name); ok {
				return field, true
			}
			continue
		}
		if yamlName == "-" {
			continue
		}
		if yamlName == "" {
			yamlName = strings.ToLower(sf.Name)
		}
		if yamlName == name {
			return target.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// assignValue sets field to value, coercing through yaml when the types
// do not match directly (e.g. a map[string]any override for a nested
// settings struct, or an untyped integer for a sized one).
func assignValue(field reflect.Value, value any) error {
	v := reflect.ValueOf(value)
	if v.Type().AssignableTo(field.Type()) {
		field.Set(v)
		return nil
	}
	if isNumeric(v.Kind()) && isNumeric(field.Kind()) && v.Type().ConvertibleTo(field.Type()) {
		field.Set(v.Convert(field.Type()))
		return nil
	}

	data, err := yaml.Marshal(value)
	if err != nil {
		return err
	}
	// Decode into a fresh value first so a failed coercion cannot leave
	// a half-written field behind.
	decoded := reflect.New(field.Type())
	if err := yaml.Unmarshal(data, decoded.Interface()); err != nil {
		return err
	}
	field.Set(decoded.Elem())
	return nil
}

// isNumeric reports whether kind is an integer or float kind.
func isNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
