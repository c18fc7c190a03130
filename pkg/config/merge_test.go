package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		base     BundleExportSettings
		override *BundleExportSettings
		expected BundleExportSettings
		reason   string
	}{
		{
			name:     "nil override returns copy of base",
			base:     BundleExportSettings{IncludeRawFiles: true, IncludeDatasets: true},
			override: nil,
			expected: BundleExportSettings{IncludeRawFiles: true, IncludeDatasets: true},
			reason:   "without an override the base settings should come back unchanged",
		},
		{
			name:     "override replaces all fields",
			base:     BundleExportSettings{IncludeRawFiles: true, IncludeArchiveFiles: true, IncludeDatasets: true},
			override: &BundleExportSettings{IncludeRawFiles: true},
			expected: BundleExportSettings{IncludeRawFiles: true},
			reason:   "a struct override applies every field, including zero-valued ones",
		},
		{
			name:     "zero base takes all override fields",
			base:     BundleExportSettings{},
			override: &BundleExportSettings{IncludeRawFiles: true, IncludeArchiveFiles: true, IncludeDatasets: true},
			expected: BundleExportSettings{IncludeRawFiles: true, IncludeArchiveFiles: true, IncludeDatasets: true},
			reason:   "all override fields should be applied to the copy",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Customize(&tt.base, tt.override)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.expected, *result, tt.reason)
		})
	}
}

func TestCustomizeDoesNotShareData(t *testing.T) {
	t.Parallel()

	base := Workers{
		MaxMemory:  1 << 30,
		Routing:    RoutingQueue,
		Priorities: map[string]int{"Upload.process_upload": 5},
	}

	result, err := Customize(&base, nil)
	require.NoError(t, err)

	// Mutating the base after the merge must not affect the result.
	base.Priorities["Upload.process_upload"] = 99
	base.Priorities["Upload.delete_upload"] = 1

	assert.Equal(t, map[string]int{"Upload.process_upload": 5}, result.Priorities,
		"the result should own a deep copy of the base's maps")
}

func TestCustomizeMap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		base      BundleExportSettings
		overrides map[string]any
		expected  BundleExportSettings
		reason    string
	}{
		{
			name:      "nil overrides return copy of base",
			base:      BundleExportSettings{IncludeRawFiles: true, IncludeDatasets: true},
			overrides: nil,
			expected:  BundleExportSettings{IncludeRawFiles: true, IncludeDatasets: true},
			reason:    "an empty patch should change nothing",
		},
		{
			name:      "patch changes only named fields",
			base:      BundleExportSettings{IncludeRawFiles: true, IncludeArchiveFiles: true, IncludeDatasets: true},
			overrides: map[string]any{"include_raw_files": false},
			expected:  BundleExportSettings{IncludeArchiveFiles: true, IncludeDatasets: true},
			reason:    "a map override is a sparse patch, untouched fields keep their base values",
		},
		{
			name:      "nil values are skipped",
			base:      BundleExportSettings{IncludeRawFiles: true},
			overrides: map[string]any{"include_raw_files": nil, "include_datasets": true},
			expected:  BundleExportSettings{IncludeRawFiles: true, IncludeDatasets: true},
			reason:    "a nil override value means no override for that key",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := CustomizeMap(&tt.base, tt.overrides)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.expected, *result, tt.reason)
		})
	}
}

func TestCustomizeMapUnknownKey(t *testing.T) {
	t.Parallel()

	base := BundleExportSettings{IncludeRawFiles: true}
	result, err := CustomizeMap(&base, map[string]any{
		"include_raw_files": false,
		"no_such_setting":   42,
	})

	require.Error(t, err)
	assert.Nil(t, result, "a failed merge must not return a partial result")

	var invalid *InvalidSettingError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "no_such_setting", invalid.Field)
	assert.Equal(t, 42, invalid.Value)

	assert.True(t, base.IncludeRawFiles, "the base must stay untouched on a failed merge")
}

func TestCustomizeMapNestedStruct(t *testing.T) {
	t.Parallel()

	base := BundleImportSettings{
		IncludeRawFiles: true,
		ProcessSettings: Reprocess{
			RematchPublished:         true,
			ReprocessExistingEntries: true,
		},
	}

	result, err := CustomizeMap(&base, map[string]any{
		"process_settings": map[string]any{"rematch_published": true},
	})
	require.NoError(t, err)

	assert.True(t, result.IncludeRawFiles, "unrelated fields keep their base values")
	assert.True(t, result.ProcessSettings.RematchPublished)
	assert.False(t, result.ProcessSettings.ReprocessExistingEntries,
		"a mapping assigned to a struct field replaces the whole struct")
}

func TestCustomizeMapCoercesNumbers(t *testing.T) {
	t.Parallel()

	base := Search{BulkSize: 1000}
	result, err := CustomizeMap(&base, map[string]any{"bulk_size": int64(500)})
	require.NoError(t, err)
	assert.Equal(t, 500, result.BulkSize)

	_, err = CustomizeMap(&base, map[string]any{"bulk_size": "not a number"})
	require.Error(t, err)
	var invalid *InvalidSettingError
	assert.True(t, errors.As(err, &invalid),
		"an uncoercible value should surface as an invalid setting")
}
