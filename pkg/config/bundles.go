package config

import "github.com/spectra-lab/spectra/internal/versions"

// Bundles groups the upload bundle import/export policy.
type Bundles struct {
	Export BundleExport `yaml:"export"`
	Import BundleImport `yaml:"import"`
}

// BundleExportSettings selects what an exported bundle contains.
type BundleExportSettings struct {
	// IncludeRawFiles includes the raw files in the export.
	IncludeRawFiles bool `yaml:"include_raw_files"`

	// IncludeArchiveFiles includes the parsed archive files in the
	// export.
	IncludeArchiveFiles bool `yaml:"include_archive_files"`

	// IncludeDatasets includes the datasets in the export.
	IncludeDatasets bool `yaml:"include_datasets"`
}

// BundleExport controls behaviour related to exporting bundles.
type BundleExport struct {
	// DefaultCLIBundleExportPath is used by the CLI export command when
	// no path is given.
	DefaultCLIBundleExportPath string `yaml:"default_cli_bundle_export_path"`

	// DefaultSettings are the general export defaults.
	DefaultSettings BundleExportSettings `yaml:"default_settings"`

	// DefaultSettingsCLI is applied on top of DefaultSettings when
	// exporting through the CLI, via CustomizeMap.
	DefaultSettingsCLI map[string]any `yaml:"default_settings_cli,omitempty"`
}

// CLISettings resolves the effective export settings for a CLI
// invocation: the general defaults patched with the CLI-specific
// overrides.
func (b *BundleExport) CLISettings() (*BundleExportSettings, error) {
	return CustomizeMap(&b.DefaultSettings, b.DefaultSettingsCLI)
}

// BundleImportSettings selects what is taken from an imported bundle
// and how the import is cleaned up.
type BundleImportSettings struct {
	// IncludeRawFiles includes the raw files in the import.
	IncludeRawFiles bool `yaml:"include_raw_files"`

	// IncludeArchiveFiles includes the parsed archive files in the
	// import.
	IncludeArchiveFiles bool `yaml:"include_archive_files"`

	// IncludeDatasets includes the datasets in the import.
	IncludeDatasets bool `yaml:"include_datasets"`

	// IncludeBundleInfo keeps the bundle info file after import.
	IncludeBundleInfo bool `yaml:"include_bundle_info"`

	// KeepOriginalTimestamps imports all timestamps (create time,
	// publish time, ...) from the bundle.
	KeepOriginalTimestamps bool `yaml:"keep_original_timestamps"`

	// SetFromSatellite records the originating satellite deployment on
	// the imported upload.
	SetFromSatellite bool `yaml:"set_from_satellite"`

	// DeleteUploadOnFail deletes the upload on a failed import instead
	// of only removing it from the search index.
	DeleteUploadOnFail bool `yaml:"delete_upload_on_fail"`

	// DeleteBundleOnFail deletes the source bundle if the import fails.
	DeleteBundleOnFail bool `yaml:"delete_bundle_on_fail"`

	// DeleteBundleOnSuccess deletes the source bundle if the import
	// succeeds.
	DeleteBundleOnSuccess bool `yaml:"delete_bundle_on_success"`

	// DeleteBundleIncludeParentFolder also removes the bundle's parent
	// folder when deleting, if empty.
	DeleteBundleIncludeParentFolder bool `yaml:"delete_bundle_include_parent_folder"`

	// TriggerProcessing reprocesses the upload when the import is done.
	// Not recommended.
	TriggerProcessing bool `yaml:"trigger_processing"`

	// ProcessSettings controls the reprocessing behaviour when
	// TriggerProcessing is set.
	ProcessSettings Reprocess `yaml:"process_settings"`
}

// BundleImport controls behaviour related to importing bundles.
type BundleImport struct {
	// RequiredVersion is the minimum platform version of bundles
	// accepted for import.
	RequiredVersion string `yaml:"required_version"`

	// DefaultCLIBundleImportPath is used by the CLI import command when
	// no path is given.
	DefaultCLIBundleImportPath string `yaml:"default_cli_bundle_import_path"`

	// AllowBundlesFromSatellites lets satellite admins push bundles to
	// this deployment.
	AllowBundlesFromSatellites bool `yaml:"allow_bundles_from_satellites"`

	// AllowUnpublishedBundlesFromSatellites lets satellite admins push
	// bundles of unpublished uploads.
	AllowUnpublishedBundlesFromSatellites bool `yaml:"allow_unpublished_bundles_from_satellites"`

	// DefaultSettings are the general import defaults.
	DefaultSettings BundleImportSettings `yaml:"default_settings"`

	// DefaultSettingsCLI is applied on top of DefaultSettings when
	// importing through the CLI, via CustomizeMap.
	DefaultSettingsCLI map[string]any `yaml:"default_settings_cli,omitempty"`
}

// CLISettings resolves the effective import settings for a CLI
// invocation: the general defaults patched with the CLI-specific
// overrides.
func (b *BundleImport) CLISettings() (*BundleImportSettings, error) {
	return CustomizeMap(&b.DefaultSettings, b.DefaultSettingsCLI)
}

// Accepts reports whether a bundle produced by the given platform
// version may be imported into this deployment.
func (b *BundleImport) Accepts(bundleVersion string) bool {
	return versions.AtLeast(bundleVersion, b.RequiredVersion)
}
