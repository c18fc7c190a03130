package config

// Process configures how uploads are processed.
type Process struct {
	// StorePackageDefinitionInMongo stores the corresponding package
	// definition in mongodb.
	StorePackageDefinitionInMongo bool `yaml:"store_package_definition_in_mongo"`

	// AddDefinitionIDToReference attaches the definition id to schema
	// references in processed data.
	AddDefinitionIDToReference bool `yaml:"add_definition_id_to_reference"`

	// WriteDefinitionIDToArchive writes the definition id into the
	// archive.
	WriteDefinitionIDToArchive bool `yaml:"write_definition_id_to_archive"`

	// IndexMaterials indexes materials during processing.
	IndexMaterials bool `yaml:"index_materials"`

	// ReuseParser keeps parser instances between entries.
	ReuseParser bool `yaml:"reuse_parser"`

	// MetadataFileName is the base name of operator metadata files.
	MetadataFileName string `yaml:"metadata_file_name"`

	// MetadataFileExtensions lists the accepted metadata file
	// extensions.
	MetadataFileExtensions []string `yaml:"metadata_file_extensions"`

	// AuxfileCutoff caps the number of auxiliary files associated with
	// an entry.
	AuxfileCutoff int `yaml:"auxfile_cutoff"`

	// ParserMatchingSize is the number of bytes read from a mainfile
	// candidate for parser matching.
	ParserMatchingSize int `yaml:"parser_matching_size"`

	// MaxUploadSize is the maximum upload size in bytes.
	MaxUploadSize int64 `yaml:"max_upload_size"`

	// UseEmptyParsers matches entries with parsers that produce no
	// data.
	UseEmptyParsers bool `yaml:"use_empty_parsers"`

	// RedirectStdouts turns stdout lines produced during processing
	// into log entries.
	RedirectStdouts bool `yaml:"redirect_stdouts"`

	// RFC3161SkipPublished skips timestamping of published entries.
	RFC3161SkipPublished bool `yaml:"rfc3161_skip_published"`
}

// Reprocess configures standard behaviour when reprocessing published
// uploads and entries. Uploads in staging are always reparsed with
// newfound entries added and unmatched entries deleted.
type Reprocess struct {
	RematchPublished                bool `yaml:"rematch_published"`
	ReprocessExistingEntries        bool `yaml:"reprocess_existing_entries"`
	UseOriginalParser               bool `yaml:"use_original_parser"`
	AddMatchedEntriesToPublished    bool `yaml:"add_matched_entries_to_published"`
	DeleteUnmatchedPublishedEntries bool `yaml:"delete_unmatched_published_entries"`
	IndexIndividualEntries          bool `yaml:"index_individual_entries"`
}

// RFC3161 configures trusted timestamping of entries.
type RFC3161 struct {
	// Server is the timestamping host.
	Server string `yaml:"server"`

	// Cert is the path to an optional timestamping server certificate.
	Cert string `yaml:"cert,omitempty"`

	// HashAlgorithm is the hash algorithm used by the timestamping
	// server.
	HashAlgorithm string `yaml:"hash_algorithm"`

	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
}

// Archive configures the archive file storage format.
type Archive struct {
	// BlockSize is the size of each block when using a blocked table of
	// contents.
	BlockSize int `yaml:"block_size"`

	// ReadBufferSize is the read buffer size; network filesystems need
	// at least 256K to achieve decent performance.
	ReadBufferSize int `yaml:"read_buffer_size"`

	// CopyChunkSize is the chunk size for copying binary data between
	// files. Small values cause more syscalls, large values higher peak
	// memory.
	CopyChunkSize int `yaml:"copy_chunk_size"`

	// TOCDepth is the depth of the archive table of contents.
	TOCDepth int `yaml:"toc_depth"`

	// SmallObjOptimizationThreshold skips TOC generation for children
	// whose encoded size is below this value.
	SmallObjOptimizationThreshold int `yaml:"small_obj_optimization_threshold"`

	// FastLoading reads whole containers at once when enough children
	// have been visited, trading repeated reads for fewer syscalls.
	FastLoading bool `yaml:"fast_loading"`

	// FastLoadingThreshold is the visited-children fraction below which
	// fast loading is used.
	FastLoadingThreshold float64 `yaml:"fast_loading_threshold"`

	// TrivialSize identifies numerical lists.
	TrivialSize int `yaml:"trivial_size"`
}
