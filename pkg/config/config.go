package config

import (
	"github.com/spectra-lab/spectra/pkg/options"
)

// Config is the root of the Spectra configuration tree.
type Config struct {
	Services    Services    `yaml:"services"`
	Meta        Meta        `yaml:"meta"`
	Federation  Federation  `yaml:"federation"`
	Broker      Broker      `yaml:"broker"`
	Workers     Workers     `yaml:"workers"`
	FS          FS          `yaml:"fs"`
	Search      Search      `yaml:"search"`
	Auth        Auth        `yaml:"auth"`
	Mongo       Mongo       `yaml:"mongo"`
	Logstash    Logstash    `yaml:"logstash"`
	Logtransfer Logtransfer `yaml:"logtransfer"`
	Mail        Mail        `yaml:"mail"`
	Normalize   Normalize   `yaml:"normalize"`
	Resources   Resources   `yaml:"resources"`
	Client      Client      `yaml:"client"`
	DataCite    DataCite    `yaml:"datacite"`
	Process     Process     `yaml:"process"`
	Reprocess   Reprocess   `yaml:"reprocess"`
	RFC3161     RFC3161     `yaml:"rfc3161"`
	Bundles     Bundles     `yaml:"bundles"`
	Archive     Archive     `yaml:"archive"`
	Tests       Tests       `yaml:"tests"`
	UI          UI          `yaml:"ui"`
}

// Services contains the basic settings of the Spectra services (app,
// worker, tools hub).
type Services struct {
	// APIHost is the external hostname clients use to reach this
	// installation.
	APIHost string `yaml:"api_host"`

	// APIPort exposes the app and API to clients.
	APIPort int `yaml:"api_port"`

	// APIBasePath is the path prefix for the app and API.
	APIBasePath string `yaml:"api_base_path"`

	// APISecret is used to issue download and app tokens.
	APISecret string `yaml:"api_secret"`

	// APITimeout restarts worker processes that do not respond within
	// this many seconds.
	APITimeout int `yaml:"api_timeout"`

	// HTTPS should be set when external clients connect through TLS
	// terminated by a reverse proxy.
	HTTPS bool `yaml:"https"`

	// HTTPSUpload controls whether generated upload commands suggest
	// TLS, independently of HTTPS.
	HTTPSUpload bool `yaml:"https_upload"`

	// AdminUserID is the user id granted elevated API rights.
	AdminUserID string `yaml:"admin_user_id"`

	// EncyclopediaBase enables links to an encyclopedia installation in
	// the UI when non-empty.
	EncyclopediaBase string `yaml:"encyclopedia_base,omitempty"`

	// ToolkitEnabled shows the analytics-toolkit menu in the UI.
	ToolkitEnabled bool `yaml:"toolkit_enabled"`

	// OptimadeEnabled serves the OPTIMADE API.
	OptimadeEnabled bool `yaml:"optimade_enabled"`

	// DcatEnabled serves the DCAT API.
	DcatEnabled bool `yaml:"dcat_enabled"`

	// H5groveEnabled serves the h5grove API.
	H5groveEnabled bool `yaml:"h5grove_enabled"`

	// ConsoleLogLevel controls console logging of all services.
	ConsoleLogLevel LogLevel `yaml:"console_log_level"`

	// UploadLimit caps unpublished uploads per user.
	UploadLimit int `yaml:"upload_limit"`

	// ForceRawFileDecoding assumes iso-8859-1 for text files that do
	// not decode as utf-8, instead of guessing the encoding.
	ForceRawFileDecoding bool `yaml:"force_raw_file_decoding"`

	// MaxEntryDownload caps page-based pagination of entries.
	MaxEntryDownload int `yaml:"max_entry_download"`

	// UnavailableValue is used in enum result fields whose value could
	// not be determined.
	UnavailableValue string `yaml:"unavailable_value"`

	// AppTokenMaxExpiresIn caps app token expiration, in seconds.
	AppTokenMaxExpiresIn int `yaml:"app_token_max_expires_in"`

	// HTMLResourceHTTPMaxAge is the max-age directive for statically
	// served html/js/css resources, in seconds.
	HTMLResourceHTTPMaxAge int `yaml:"html_resource_http_max_age"`

	// ImageResourceHTTPMaxAge is the max-age directive for statically
	// served images, in seconds.
	ImageResourceHTTPMaxAge int `yaml:"image_resource_http_max_age"`
}

// Meta describes the deployment and how it is presented to clients.
type Meta struct {
	// Version is the platform version string.
	Version string `yaml:"version"`

	// Commit is the source commit this installation was built from.
	Commit string `yaml:"commit,omitempty"`

	// Deployment is the human-friendly name of this deployment.
	Deployment string `yaml:"deployment"`

	// DeploymentURL is the deployment's API url.
	DeploymentURL string `yaml:"deployment_url"`

	// Label is an extra key added to all logs, used to tell deployments
	// apart during log analysis.
	Label string `yaml:"label,omitempty"`

	// Service names the running service (app, worker, hub) in logs. It
	// is set automatically depending on how the process is started.
	Service string `yaml:"service"`

	// MaintainerEmail is the deployment maintainer contact.
	MaintainerEmail string `yaml:"maintainer_email"`

	// Beta carries additional data describing how the deployment is
	// labeled as a beta version in the UI.
	Beta map[string]any `yaml:"beta,omitempty"`
}

// Federation configures how a satellite deployment relates to the
// central Spectra installation.
type Federation struct {
	// IsSatellite marks this deployment as a satellite installation.
	IsSatellite bool `yaml:"is_satellite"`

	// AllowedUsers whitelists usernames or account emails. When set,
	// users must log in right away and only listed users may use the
	// deployment.
	AllowedUsers []string `yaml:"allowed_users,omitempty"`

	// UsesCentralUserManagement makes the backend use the central
	// deployment's API for user data instead of the configured auth
	// provider.
	UsesCentralUserManagement bool `yaml:"uses_central_user_management"`

	// CentralDeploymentURL is the API url of the central deployment.
	CentralDeploymentURL string `yaml:"central_deployment_url"`
}

// Broker configures the message broker connection used to dispatch
// processing tasks.
type Broker struct {
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// Task routing modes for Workers.
const (
	RoutingQueue  = "queue"
	RoutingWorker = "worker"
)

// Workers configures the processing workers.
type Workers struct {
	// MaxMemory restarts a worker exceeding this resident size in
	// bytes.
	MaxMemory int64 `yaml:"max_memory"`

	// Timeout is the per-task timeout in seconds.
	Timeout int `yaml:"timeout"`

	// AcksLate acknowledges tasks after completion instead of on
	// delivery.
	AcksLate bool `yaml:"acks_late"`

	// Routing selects queue or worker based task routing.
	Routing string `yaml:"routing"`

	// Priorities maps task names to broker priorities.
	Priorities map[string]int `yaml:"priorities,omitempty"`
}

// FS configures the filesystem layout of the installation.
type FS struct {
	Tmp               string `yaml:"tmp"`
	Staging           string `yaml:"staging"`
	StagingExternal   string `yaml:"staging_external,omitempty"`
	Public            string `yaml:"public"`
	PublicExternal    string `yaml:"public_external,omitempty"`
	ToolsHome         string `yaml:"tools_home"`
	ToolsHomeExternal string `yaml:"tools_home_external,omitempty"`
	LocalTmp          string `yaml:"local_tmp"`

	// PrefixSize is the number of id characters used for bucketing
	// storage directories.
	PrefixSize int `yaml:"prefix_size"`

	// ArchiveVersionSuffix adds a segment to archive file names so that
	// several installations can share storage directories and raw
	// files while keeping separate archives. When several suffixes are
	// given the first is used for writing and the rest are fallbacks on
	// read.
	ArchiveVersionSuffix StringOrList `yaml:"archive_version_suffix"`

	WorkingDirectory         string `yaml:"working_directory"`
	ExternalWorkingDirectory string `yaml:"external_working_directory,omitempty"`
}

// Search configures the Elasticsearch connection and index usage.
type Search struct {
	Host                  string `yaml:"host"`
	Port                  int    `yaml:"port"`
	Timeout               int    `yaml:"timeout"`
	BulkTimeout           int    `yaml:"bulk_timeout"`
	BulkSize              int    `yaml:"bulk_size"`
	EntriesPerMaterialCap int    `yaml:"entries_per_material_cap"`
	EntriesIndex          string `yaml:"entries_index"`
	MaterialsIndex        string `yaml:"materials_index"`
	Username              string `yaml:"username,omitempty"`
	Password              string `yaml:"password,omitempty"`
}

// Auth configures the identity provider.
type Auth struct {
	ServerURL       string `yaml:"server_url"`
	PublicServerURL string `yaml:"public_server_url,omitempty"`
	RealmName       string `yaml:"realm_name"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	ClientID        string `yaml:"client_id"`
	ClientSecret    string `yaml:"client_secret,omitempty"`
}

// Mongo holds connection and usage settings for MongoDB.
type Mongo struct {
	// Host is the name of the host that runs mongodb.
	Host string `yaml:"host"`

	// Port is the port to connect with mongodb.
	Port int `yaml:"port"`

	// DBName is the used mongodb database name.
	DBName string `yaml:"db_name"`

	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
}

// Logstash configures forwarding of structured logs.
type Logstash struct {
	Enabled bool     `yaml:"enabled"`
	Host    string   `yaml:"host"`
	TCPPort string   `yaml:"tcp_port"`
	Level   LogLevel `yaml:"level"`
}

// Logtransfer configures the log transfer and statistics service of
// satellite deployments. The service also reads Logstash (forwarding
// target), Federation (central deployment address) and FS.Tmp (spool
// directory).
type Logtransfer struct {
	// Enabled starts the process that collects and transfers logs.
	Enabled bool `yaml:"enabled"`

	// SubmitInterval is the time interval, in seconds, after which
	// collected logs are transferred.
	SubmitInterval int `yaml:"submit_interval"`

	// MaxBytes transfers the logs early once the spool file reaches
	// this size.
	MaxBytes int `yaml:"max_bytes"`

	// BackupCount is the number of rotated spool files kept before the
	// oldest is removed.
	BackupCount int `yaml:"backup_count"`

	// LogFilename is the spool file name, located in the tmp volume.
	LogFilename string `yaml:"log_filename"`

	// RaiseUnexpectedExceptions stops the service on unexpected errors
	// instead of keeping it alive. Meant for testing.
	RaiseUnexpectedExceptions bool `yaml:"raise_unexpected_exceptions"`

	// EnableStatistics starts the process that frequently logs
	// deployment statistics.
	EnableStatistics bool `yaml:"enable_statistics"`

	// StatisticsInterval is the time interval, in seconds, in which
	// statistics are logged.
	StatisticsInterval int `yaml:"statistics_interval"`
}

// Mail configures outgoing email.
type Mail struct {
	Enabled     bool   `yaml:"enabled"`
	WithLogin   bool   `yaml:"with_login"`
	Host        string `yaml:"host,omitempty"`
	Port        int    `yaml:"port"`
	User        string `yaml:"user,omitempty"`
	Password    string `yaml:"password,omitempty"`
	FromAddress string `yaml:"from_address"`
	CCAddress   string `yaml:"cc_address,omitempty"`
}

// Normalize configures the normalizer pipeline that runs after
// parsing. The consumers iterate the normalizers through the filtered
// queries, so include/exclude edits control which of them run.
type Normalize struct {
	// Normalizers declares the available normalizers, keyed by name
	// with the implementing class path as value, and controls which of
	// them run.
	Normalizers options.Set[string] `yaml:"normalizers"`

	// SystemClassificationWithClustersThreshold is the system size
	// limit for running the dimensionality analysis.
	SystemClassificationWithClustersThreshold int `yaml:"system_classification_with_clusters_threshold"`

	// ClusteringSizeLimit is the system size limit for running system
	// clustering.
	ClusteringSizeLimit int `yaml:"clustering_size_limit"`

	// SymmetryTolerance is the distance tolerance, in angstrom, used
	// for symmetry detection.
	SymmetryTolerance float64 `yaml:"symmetry_tolerance"`

	// PrototypeSymmetryTolerance is the tolerance used in prototype
	// matching.
	PrototypeSymmetryTolerance float64 `yaml:"prototype_symmetry_tolerance"`

	// Max2DSingleCellSize is the maximum number of atoms in the single
	// cell of a 2D material for it to be considered valid.
	Max2DSingleCellSize int `yaml:"max_2d_single_cell_size"`

	// ClusterThreshold is the distance tolerance between atoms for
	// grouping them into the same cluster.
	ClusterThreshold float64 `yaml:"cluster_threshold"`

	// AngleRounding is the bin size, in degrees, for rounding cell
	// angles in the material hash.
	AngleRounding float64 `yaml:"angle_rounding"`

	// FlatDimThreshold is the threshold for a system to be considered
	// flat.
	FlatDimThreshold float64 `yaml:"flat_dim_threshold"`

	// KSpacePrecision is the threshold for point equality in k-space,
	// in 1/m.
	KSpacePrecision float64 `yaml:"k_space_precision"`

	// BandStructureEnergyTolerance is the energy threshold, in joule,
	// for detecting a band gap around the fermi level.
	BandStructureEnergyTolerance float64 `yaml:"band_structure_energy_tolerance"`
}

// Resources configures the cache for externally retrieved resources.
type Resources struct {
	Enabled bool   `yaml:"enabled"`
	DBName  string `yaml:"db_name"`

	// MaxTimeInMongo is the maximum age, in seconds, of a cached
	// resource before it is refreshed.
	MaxTimeInMongo float64 `yaml:"max_time_in_mongo"`

	// DownloadRetries is the number of retries when downloading
	// resources.
	DownloadRetries int `yaml:"download_retries"`

	// DownloadRetryDelay is the delay between retries in seconds.
	DownloadRetryDelay int `yaml:"download_retry_delay"`

	// MaxConnections caps simultaneous download connections.
	MaxConnections int `yaml:"max_connections"`
}

// Client configures the defaults used by the API client.
type Client struct {
	User        string `yaml:"user,omitempty"`
	Password    string `yaml:"password,omitempty"`
	AccessToken string `yaml:"access_token,omitempty"`
	URL         string `yaml:"url"`
}

// DataCite configures DOI registration.
type DataCite struct {
	Enabled  bool   `yaml:"enabled"`
	MDSHost  string `yaml:"mds_host"`
	Prefix   string `yaml:"prefix"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// Tests holds settings that only apply in test environments.
type Tests struct {
	// DefaultTimeout is the timeout, in seconds, applied to test API
	// calls.
	DefaultTimeout int `yaml:"default_timeout"`

	// AssumeAuthForUsername treats unauthenticated API calls as
	// authenticated for the given user.
	AssumeAuthForUsername string `yaml:"assume_auth_for_username,omitempty"`
}
