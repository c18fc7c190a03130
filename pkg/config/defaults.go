package config

import (
	"log/slog"
	"os"

	"github.com/spectra-lab/spectra/pkg/options"
	"github.com/spectra-lab/spectra/pkg/units"
)

// DefaultConfig returns the built-in configuration. Operator documents
// and environment variables are layered on top of it by Load.
func DefaultConfig() *Config {
	workingDirectory, _ := os.Getwd()

	return &Config{
		Services: Services{
			APIHost:                 "localhost",
			APIPort:                 8000,
			APIBasePath:             "/spectra/latest",
			APISecret:               "defaultApiSecret",
			APITimeout:              600,
			AdminUserID:             "00000000-0000-0000-0000-000000000000",
			OptimadeEnabled:         true,
			DcatEnabled:             true,
			H5groveEnabled:          true,
			ConsoleLogLevel:         LogLevel(slog.LevelWarn),
			UploadLimit:             10,
			MaxEntryDownload:        50000,
			UnavailableValue:        "unavailable",
			AppTokenMaxExpiresIn:    30 * 24 * 60 * 60,
			HTMLResourceHTTPMaxAge:  60,
			ImageResourceHTTPMaxAge: 30 * 24 * 60 * 60,
		},
		Meta: Meta{
			Version:         "1.0.0",
			Deployment:      "devel",
			DeploymentURL:   "https://localhost:8000/api",
			Service:         "unknown spectra service",
			MaintainerEmail: "support@spectra-lab.io",
		},
		Federation: Federation{
			CentralDeploymentURL: "https://central.spectra-lab.io/api",
		},
		Broker: Broker{
			Host:     "localhost",
			User:     "rabbitmq",
			Password: "rabbitmq",
		},
		Workers: Workers{
			MaxMemory: 64e9,
			Timeout:   1800,
			Routing:   RoutingQueue,
			Priorities: map[string]int{
				"Upload.process_upload": 5,
				"Upload.delete_upload":  9,
				"Upload.publish_upload": 10,
			},
		},
		FS: FS{
			Tmp:                  ".volumes/fs/tmp",
			Staging:              ".volumes/fs/staging",
			Public:               ".volumes/fs/public",
			ToolsHome:            ".volumes/fs/tools/users",
			LocalTmp:             "/tmp",
			PrefixSize:           2,
			ArchiveVersionSuffix: StringOrList{"v1"},
			WorkingDirectory:     workingDirectory,
		},
		Search: Search{
			Host:                  "localhost",
			Port:                  9200,
			Timeout:               60,
			BulkTimeout:           600,
			BulkSize:              1000,
			EntriesPerMaterialCap: 1000,
			EntriesIndex:          "spectra_entries_v1",
			MaterialsIndex:        "spectra_materials_v1",
		},
		Auth: Auth{
			ServerURL: "https://auth.spectra-lab.io/auth/",
			RealmName: "spectra_prod",
			Username:  "admin",
			Password:  "password",
			ClientID:  "spectra_public",
		},
		Mongo: Mongo{
			Host:   "localhost",
			Port:   27017,
			DBName: "spectra_v1",
		},
		Logstash: Logstash{
			Host:    "localhost",
			TCPPort: "5000",
			Level:   LogLevel(slog.LevelDebug),
		},
		Logtransfer: Logtransfer{
			SubmitInterval:     60 * 60 * 24,
			MaxBytes:           1e7,
			BackupCount:        10,
			LogFilename:        "collectedlogs.txt",
			EnableStatistics:   true,
			StatisticsInterval: 60 * 60 * 24,
		},
		Mail: Mail{
			Port:        8995,
			FromAddress: "support@spectra-lab.io",
		},
		Normalize: Normalize{
			Normalizers: options.Set[string]{
				Base: options.Base{
					Include: []string{
						"OptimadeNormalizer",
						"ResultsNormalizer",
						"MetainfoNormalizer",
					},
				},
				Options: options.NewMap(
					options.Item[string]{Key: "PorosityNormalizer", Value: "spectra.normalizing.porosity.PorosityNormalizer"},
					options.Item[string]{Key: "OptimadeNormalizer", Value: "spectra.normalizing.optimade.OptimadeNormalizer"},
					options.Item[string]{Key: "ResultsNormalizer", Value: "spectra.normalizing.results.ResultsNormalizer"},
					options.Item[string]{Key: "MetainfoNormalizer", Value: "spectra.normalizing.metainfo.MetainfoNormalizer"},
				),
			},
			SystemClassificationWithClustersThreshold: 64,
			ClusteringSizeLimit:                       600,
			SymmetryTolerance:                         0.1,
			PrototypeSymmetryTolerance:                0.1,
			Max2DSingleCellSize:                       7,
			ClusterThreshold:                          2.5,
			AngleRounding:                             10.0,
			FlatDimThreshold:                          0.1,
			KSpacePrecision:                           150e6,
			BandStructureEnergyTolerance:              8.01088e-21,
		},
		Resources: Resources{
			DBName:             "spectra_v1_resources",
			MaxTimeInMongo:     60 * 60 * 24 * 365.0,
			DownloadRetries:    2,
			DownloadRetryDelay: 10,
			MaxConnections:     10,
		},
		Client: Client{
			URL: "https://central.spectra-lab.io/api",
		},
		DataCite: DataCite{
			MDSHost:  "https://mds.datacite.org",
			Prefix:   "10.17172",
			User:     "*",
			Password: "*",
		},
		Process: Process{
			IndexMaterials:         true,
			ReuseParser:            true,
			MetadataFileName:       "spectra",
			MetadataFileExtensions: []string{"json", "yaml", "yml"},
			AuxfileCutoff:          100,
			ParserMatchingSize:     150 * 80,
			MaxUploadSize:          32 * (1 << 30),
		},
		Reprocess: Reprocess{
			RematchPublished:             true,
			ReprocessExistingEntries:     true,
			AddMatchedEntriesToPublished: true,
		},
		RFC3161: RFC3161{
			Server:        "http://zeitstempel.dfn.de",
			HashAlgorithm: "sha256",
		},
		Bundles: Bundles{
			Export: BundleExport{
				DefaultCLIBundleExportPath: "./bundles",
				DefaultSettings: BundleExportSettings{
					IncludeRawFiles:     true,
					IncludeArchiveFiles: true,
					IncludeDatasets:     true,
				},
			},
			Import: BundleImport{
				RequiredVersion:            "1.0.0",
				DefaultCLIBundleImportPath: "./bundles",
				DefaultSettings: BundleImportSettings{
					IncludeRawFiles:                 true,
					IncludeArchiveFiles:             true,
					IncludeDatasets:                 true,
					IncludeBundleInfo:               true,
					SetFromSatellite:                true,
					DeleteBundleOnFail:              true,
					DeleteBundleOnSuccess:           true,
					DeleteBundleIncludeParentFolder: true,
					ProcessSettings: Reprocess{
						RematchPublished:             true,
						ReprocessExistingEntries:     true,
						AddMatchedEntriesToPublished: true,
					},
				},
				// The CLI keeps bundles around so failed imports can be
				// retried without transferring them again.
				DefaultSettingsCLI: map[string]any{
					"delete_bundle_on_fail":    false,
					"delete_bundle_on_success": false,
				},
			},
		},
		Archive: Archive{
			BlockSize:                     1 << 20,
			ReadBufferSize:                1 << 20,
			CopyChunkSize:                 16 << 20,
			TOCDepth:                      10,
			SmallObjOptimizationThreshold: 1 << 20,
			FastLoading:                   true,
			FastLoadingThreshold:          0.6,
			TrivialSize:                   20,
		},
		Tests: Tests{
			DefaultTimeout: 60,
		},
		UI: defaultUI(),
	}
}

// defaultUI returns the built-in UI configuration: the theme, the
// builtin unit systems, the entry overview cards and a minimal entries
// app. Deployments typically replace most of this wholesale.
func defaultUI() UI {
	cards := options.Set[Card]{
		Base: options.Base{Exclude: []string{"relatedResources"}},
	}
	for _, name := range []string{
		"definitions", "material", "electronic", "vibrational",
		"mechanical", "thermodynamic", "structural", "history",
		"workflow", "references", "relatedResources",
	} {
		cards.Options.Set(name, Card{Error: "Could not render " + name + " card."})
	}

	apps := options.Set[App]{}
	apps.Options.Set("entries", App{
		Label:       "Entries",
		Path:        "entries",
		Resource:    ResourceEntries,
		Category:    "All",
		Description: "Search entries across all domains",
		Pagination: Pagination{
			OrderBy:  "upload_create_time",
			Order:    "desc",
			PageSize: 20,
		},
		Columns: options.Multi[Column]{
			Set: options.Set[Column]{
				Options: options.NewMap(
					options.Item[Column]{Key: "entry_name", Value: Column{Label: "Name", Align: AlignLeft}},
					options.Item[Column]{Key: "entry_type", Value: Column{Label: "Entry type", Align: AlignLeft}},
					options.Item[Column]{Key: "upload_create_time", Value: Column{Label: "Upload time", Align: AlignLeft}},
					options.Item[Column]{Key: "authors", Value: Column{Label: "Authors", Align: AlignLeft}},
				),
			},
			Selected: []string{"entry_name", "entry_type", "upload_create_time", "authors"},
		},
		Rows: Rows{
			Actions:   RowActions{Enabled: true},
			Details:   RowDetails{Enabled: true},
			Selection: RowSelection{Enabled: true},
		},
		FilterMenus: defaultFilterMenus(),
		Filters: options.Glob{
			Exclude: []string{"mainfile", "entry_name", "combine"},
		},
	})

	return UI{
		Theme:       Theme{Title: "Spectra"},
		UnitSystems: units.BuiltinSystems(),
		Entry:       Entry{Cards: cards},
		Apps:        apps,
		Tools:       ToolsUI{Enabled: true},
	}
}

// defaultFilterMenus returns the filter menus shared by the builtin
// apps.
func defaultFilterMenus() options.Set[FilterMenu] {
	menus := options.Set[FilterMenu]{}
	menus.Options.Set("material", FilterMenu{Label: "Material", Level: 0})
	menus.Options.Set("elements", FilterMenu{Label: "Elements / Formula", Level: 1, Size: FilterMenuSizeXL})
	menus.Options.Set("structure", FilterMenu{Label: "Structure", Level: 1})
	menus.Options.Set("electronic", FilterMenu{Label: "Electronic Properties", Level: 0})
	menus.Options.Set("author", FilterMenu{Label: "Author / Origin / Dataset", Level: 0, Size: FilterMenuSizeM})
	menus.Options.Set("metadata", FilterMenu{Label: "Visibility / IDs / Schema", Level: 0})
	return menus
}
