package versions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNewerVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		newVersion string
		oldVersion string
		expected   bool
	}{
		// Valid semver comparisons
		{name: "newer major version", newVersion: "2.0.0", oldVersion: "1.0.0", expected: true},
		{name: "newer minor version", newVersion: "1.2.0", oldVersion: "1.1.0", expected: true},
		{name: "newer patch version", newVersion: "1.0.2", oldVersion: "1.0.1", expected: true},
		{name: "older major version", newVersion: "1.0.0", oldVersion: "2.0.0", expected: false},
		{name: "equal versions", newVersion: "1.0.0", oldVersion: "1.0.0", expected: false},
		{name: "prerelease vs release", newVersion: "1.0.0", oldVersion: "1.0.0-alpha", expected: true},
		{name: "release vs prerelease", newVersion: "1.0.0-alpha", oldVersion: "1.0.0", expected: false},
		// Fallback to string comparison for non-semver
		{name: "non-semver string comparison", newVersion: "version-b", oldVersion: "version-a", expected: true},
		{name: "empty new version", newVersion: "", oldVersion: "1.0.0", expected: false},
		{name: "both empty", newVersion: "", oldVersion: "", expected: false},
		// v prefix
		{name: "v prefix newer", newVersion: "v2.0.0", oldVersion: "v1.0.0", expected: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := IsNewerVersion(tt.newVersion, tt.oldVersion)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestAtLeast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		version  string
		minimum  string
		expected bool
		reason   string
	}{
		{
			name:     "above minimum",
			version:  "1.2.0",
			minimum:  "1.0.0",
			expected: true,
			reason:   "newer bundles are accepted",
		},
		{
			name:     "equal to minimum",
			version:  "1.0.0",
			minimum:  "1.0.0",
			expected: true,
			reason:   "the minimum itself is accepted",
		},
		{
			name:     "below minimum",
			version:  "0.9.9",
			minimum:  "1.0.0",
			expected: false,
			reason:   "bundles older than the minimum are rejected",
		},
		{
			name:     "empty minimum accepts everything",
			version:  "0.0.1",
			minimum:  "",
			expected: true,
			reason:   "no minimum means no gating",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, AtLeast(tt.version, tt.minimum), tt.reason)
		})
	}
}
