package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase_Filter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		include  []string
		exclude  []string
		value    string
		expected bool
		reason   string
	}{
		{
			name:     "no lists - include by default",
			value:    "anything",
			expected: true,
			reason:   "absent include means all values included",
		},
		{
			name:     "empty lists - include by default",
			include:  []string{},
			exclude:  []string{},
			value:    "anything",
			expected: true,
			reason:   "empty include behaves like absent include",
		},
		{
			name:     "value in include list",
			include:  []string{"a", "b"},
			value:    "a",
			expected: true,
			reason:   "explicit include member",
		},
		{
			name:     "value not in include list",
			include:  []string{"a", "b"},
			value:    "c",
			expected: false,
			reason:   "explicit include list excludes everything else",
		},
		{
			name:     "wildcard include",
			include:  []string{Wildcard},
			value:    "anything",
			expected: true,
			reason:   "wildcard in include overrides the explicit list",
		},
		{
			name:     "wildcard include with other entries",
			include:  []string{"a", Wildcard},
			value:    "zzz",
			expected: true,
			reason:   "wildcard wins even next to explicit entries",
		},
		{
			name:     "exclude wins over include",
			include:  []string{"a"},
			exclude:  []string{"a"},
			value:    "a",
			expected: false,
			reason:   "exclusion has higher precedence than inclusion",
		},
		{
			name:     "wildcard exclude wins over wildcard include",
			include:  []string{Wildcard},
			exclude:  []string{Wildcard},
			value:    "a",
			expected: false,
			reason:   "wildcard exclusion dominates everything",
		},
		{
			name:     "exclude without include",
			exclude:  []string{"a"},
			value:    "a",
			expected: false,
			reason:   "default inclusion still respects exclusion",
		},
		{
			name:     "exclude miss without include",
			exclude:  []string{"a"},
			value:    "b",
			expected: true,
			reason:   "only listed values are excluded",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spec := &Base{Include: tt.include, Exclude: tt.exclude}
			assert.Equal(t, tt.expected, spec.Filter(tt.value), tt.reason)
		})
	}
}

func TestGlob_Filter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		include  []string
		exclude  []string
		value    string
		expected bool
		reason   string
	}{
		{
			name:     "no lists - include by default",
			value:    "results.material",
			expected: true,
			reason:   "absent include means all values included",
		},
		{
			name:     "prefix pattern match",
			include:  []string{"abc.*"},
			value:    "abc.def",
			expected: true,
			reason:   "glob prefix pattern matches",
		},
		{
			name:     "prefix pattern miss",
			include:  []string{"abc.*"},
			value:    "xyz.def",
			expected: false,
			reason:   "value outside the include patterns",
		},
		{
			name:     "star matches across separators",
			include:  []string{"results.*"},
			value:    "results.material.symmetry.crystal_system",
			expected: true,
			reason:   "* matches any run of characters including dots",
		},
		{
			name:     "question mark matches one character",
			include:  []string{"db?"},
			value:    "db1",
			expected: true,
			reason:   "? matches exactly one character",
		},
		{
			name:     "question mark does not match several characters",
			include:  []string{"db?"},
			value:    "database",
			expected: false,
			reason:   "? must not match runs",
		},
		{
			name:     "character class",
			include:  []string{"server[1-3]"},
			value:    "server2",
			expected: true,
			reason:   "bracket classes are supported",
		},
		{
			name:     "bare wildcard include",
			include:  []string{Wildcard},
			value:    "anything",
			expected: true,
			reason:   "the literal * pattern matches everything",
		},
		{
			name:     "exclude pattern wins",
			include:  []string{"results.*"},
			exclude:  []string{"results.secret.*"},
			value:    "results.secret.token",
			expected: false,
			reason:   "exclusion has higher precedence than inclusion",
		},
		{
			name:     "wildcard exclude",
			include:  []string{"results.*"},
			exclude:  []string{Wildcard},
			value:    "results.material",
			expected: false,
			reason:   "* in exclude excludes everything",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spec := &Glob{Include: tt.include, Exclude: tt.exclude}
			got, err := spec.Filter(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got, tt.reason)
		})
	}
}

func TestGlob_Validate(t *testing.T) {
	t.Parallel()

	good := &Glob{Include: []string{"results.*"}, Exclude: []string{"mainfile"}}
	assert.NoError(t, good.Validate())

	bad := &Glob{Include: []string{"results.["}}
	require.Error(t, bad.Validate(), "malformed patterns are caught without a value to match")

	bad = &Glob{Exclude: []string{"results.["}}
	require.Error(t, bad.Validate())
}

func TestGlob_FilterInvalidPattern(t *testing.T) {
	t.Parallel()

	spec := &Glob{Include: []string{"[unterminated"}}
	_, err := spec.Filter("value")
	require.Error(t, err, "malformed patterns must surface as errors")
	assert.Contains(t, err.Error(), "invalid glob pattern")

	spec = &Glob{Exclude: []string{"[unterminated"}}
	_, err = spec.Filter("value")
	require.Error(t, err, "exclude patterns are validated as well")
}
