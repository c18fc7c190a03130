// Package config defines the Spectra platform configuration tree and
// the logic required to load, validate and derive from it.
//
// The tree is a single static hierarchy of settings structs populated
// in layers: built-in defaults, then an operator-supplied YAML file,
// then SPECTRA_* environment variables. It is loaded once per process
// and handed read-only to the web API, search-indexing, job-processing
// and UI-serving layers.
//
// Call sites that need scoped variants (per CLI invocation, per
// background job) derive them with Customize or CustomizeMap, which
// return independent deep copies and reject overrides that name
// unknown settings. Published configs must never be mutated in place;
// as long as every caller treats them as copy-on-write no locking is
// needed.
//
// Unknown keys in a loaded document are logged as warnings and ignored
// so that documents written for newer versions keep loading; WithStrict
// turns them into load errors instead.
package config
