package units

import "fmt"

// UnsupportedValueError reports a unit definition or dimension name
// that the platform cannot resolve. It is raised while validating the
// configuration and is treated as a fatal load-time error.
type UnsupportedValueError struct {
	// What names the kind of value that failed, e.g. "unit" or
	// "dimension".
	What string

	// Value is the offending string.
	Value string
}

// Error implements the error interface.
func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported %s %q", e.What, e.Value)
}
