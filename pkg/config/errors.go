package config

import "fmt"

// InvalidSettingError reports an override that names a field absent
// from the target settings struct. It is always surfaced to the caller;
// the merge utilities never absorb it.
type InvalidSettingError struct {
	// Field is the override key that matched no setting.
	Field string

	// Value is the rejected override value, when the override came from
	// a key/value mapping.
	Value any
}

// Error implements the error interface.
func (e *InvalidSettingError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("invalid setting: %s", e.Field)
	}
	return fmt.Sprintf("invalid setting: (%s: %v)", e.Field, e.Value)
}
