package units

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Parse(t *testing.T) {
	t.Parallel()

	registry := DefaultRegistry()

	tests := []struct {
		name       string
		definition string
		valid      bool
		reason     string
	}{
		{
			name:       "plain symbol",
			definition: "m",
			valid:      true,
			reason:     "SI base unit",
		},
		{
			name:       "prefixed symbol",
			definition: "GPa",
			valid:      true,
			reason:     "metric prefix on a derived unit",
		},
		{
			name:       "femtoseconds",
			definition: "fs",
			valid:      true,
			reason:     "prefix resolution must handle single-letter units",
		},
		{
			name:       "kilogram",
			definition: "kg",
			valid:      true,
			reason:     "the base symbol is the gram",
		},
		{
			name:       "tesla is not tera",
			definition: "T",
			valid:      true,
			reason:     "exact symbols win over prefixed readings",
		},
		{
			name:       "angstrom",
			definition: "Å",
			valid:      true,
			reason:     "non-ASCII unit symbols are supported",
		},
		{
			name:       "degree sign",
			definition: "°",
			valid:      true,
			reason:     "the degree sign is not a Unicode letter",
		},
		{
			name:       "compound expression",
			definition: "(kg * m) / s^2",
			valid:      true,
			reason:     "expressions with parentheses and exponents",
		},
		{
			name:       "python style exponent",
			definition: "m**2",
			valid:      true,
			reason:     "** is accepted as the power operator",
		},
		{
			name:       "atomic units",
			definition: "atomic_unit_of_time",
			valid:      true,
			reason:     "underscored symbols",
		},
		{
			name:       "numeric factor",
			definition: "1 / s",
			valid:      true,
			reason:     "reciprocal units use a numeric factor",
		},
		{
			name:       "unknown symbol",
			definition: "parsec",
			valid:      false,
			reason:     "not in the registry",
		},
		{
			name:       "unknown symbol inside expression",
			definition: "kg * florb",
			valid:      false,
			reason:     "every symbol of the expression must resolve",
		},
		{
			name:       "dangling operator",
			definition: "kg *",
			valid:      false,
			reason:     "malformed expression",
		},
		{
			name:       "unbalanced parenthesis",
			definition: "(kg * m",
			valid:      false,
			reason:     "malformed expression",
		},
		{
			name:       "exponent without number",
			definition: "m^",
			valid:      false,
			reason:     "exponents require a numeric literal",
		},
		{
			name:       "negative exponent",
			definition: "s^-1",
			valid:      true,
			reason:     "signed exponents are numeric literals",
		},
		{
			name:       "lone sign",
			definition: "-",
			valid:      false,
			reason:     "a sign without digits is not a number",
		},
		{
			name:       "exponent with lone sign",
			definition: "s^-",
			valid:      false,
			reason:     "a sign without digits is not a number",
		},
		{
			name:       "empty definition",
			definition: "",
			valid:      false,
			reason:     "empty definitions cannot be resolved",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := registry.Parse(tt.definition)
			if tt.valid {
				assert.NoError(t, err, tt.reason)
			} else {
				require.Error(t, err, tt.reason)
				var unsupported *UnsupportedValueError
				assert.ErrorAs(t, err, &unsupported)
			}
		})
	}
}

func TestRegistry_RegisterCustomSymbol(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	require.Error(t, registry.Parse("flops"))

	registry.Register("flops")
	assert.NoError(t, registry.Parse("Gflops"), "registered symbols take metric prefixes")
}

func TestSystem_NormalizeFillsSIDefaults(t *testing.T) {
	t.Parallel()

	system := System{
		Label: "Custom",
		Units: map[string]Unit{
			"length": {Definition: "Å"},
			"energy": {Definition: "eV"},
		},
	}
	require.NoError(t, system.Normalize())

	assert.Len(t, system.Units, len(Dimensions), "every dimension gets a unit")
	assert.Equal(t, "Å", system.Units["length"].Definition, "configured units are kept")
	assert.Equal(t, "kg", system.Units["mass"].Definition, "missing dimensions get the SI default")
	assert.False(t, system.Units["mass"].Locked, "filled defaults are not locked")
}

func TestSystem_NormalizeEmptySystem(t *testing.T) {
	t.Parallel()

	system := System{Label: "empty"}
	require.NoError(t, system.Normalize())
	assert.Len(t, system.Units, len(Dimensions))
}

func TestSystem_NormalizeRejectsUnknownDimension(t *testing.T) {
	t.Parallel()

	system := System{
		Label: "bad",
		Units: map[string]Unit{"funkiness": {Definition: "m"}},
	}
	err := system.Normalize()
	require.Error(t, err)

	var unsupported *UnsupportedValueError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "dimension", unsupported.What)
	assert.Equal(t, "funkiness", unsupported.Value)
}

func TestSystem_NormalizeRejectsUnknownUnit(t *testing.T) {
	t.Parallel()

	system := System{
		Label: "bad",
		Units: map[string]Unit{"length": {Definition: "lightyear"}},
	}
	err := system.Normalize()
	require.Error(t, err)

	var unsupported *UnsupportedValueError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "unit", unsupported.What)
}

func TestBuiltinSystems(t *testing.T) {
	t.Parallel()

	systems := BuiltinSystems()
	assert.Equal(t, SystemCustom, systems.Selected)
	assert.Equal(t, []string{SystemCustom, SystemSI, SystemAU}, systems.FilteredKeys())

	for _, item := range systems.FilteredItems() {
		item := item
		system := item.Value
		require.NoError(t, system.Normalize(), "builtin system %q must validate", item.Key)
	}
}
