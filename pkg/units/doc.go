// Package units defines the physical unit systems offered by the
// Spectra UI and validates the unit definitions found in the
// configuration.
//
// A unit system maps every supported physical dimension (length, mass,
// energy, ...) to a display unit. Operators only need to configure the
// dimensions they care about; the SI equivalent is filled in for every
// dimension left out. Each configured definition is checked against the
// unit registry at configuration-load time, so an unresolvable unit
// string is a fatal load error rather than a broken UI at runtime.
package units
