package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultEnvPrefix is the prefix of the environment variables consulted
// for overrides, e.g. SPECTRA_SERVICES__API_PORT.
const DefaultEnvPrefix = "SPECTRA"

// Option defines the interface for configuration load options
type Option func(*loaderConfig) error

// loaderConfig defines the configuration for loading a configuration
type loaderConfig struct {
	path      string
	strict    bool
	envPrefix string
	logger    *slog.Logger
}

// WithConfigPath loads configuration from a YAML file
func WithConfigPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return fmt.Errorf("path is required")
		}

		// Resolve symlinks to prevent symlink attacks.
		// Note that this calls filepath.Clean internally.
		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fmt.Errorf("failed to evaluate symlinks: %w", err)
		}

		// Validate the path to prevent path traversal attacks
		if !filepath.IsAbs(realPath) {
			if !filepath.IsLocal(realPath) {
				return fmt.Errorf("path is not local or contains invalid traversal: %s", path)
			}
		}

		cfg.path = realPath
		return nil
	}
}

// WithStrict makes unknown keys in the configuration document a load
// error instead of a warning.
func WithStrict() Option {
	return func(cfg *loaderConfig) error {
		cfg.strict = true
		return nil
	}
}

// WithEnvPrefix overrides the environment variable prefix. An empty
// prefix disables environment overrides.
func WithEnvPrefix(prefix string) Option {
	return func(cfg *loaderConfig) error {
		cfg.envPrefix = prefix
		return nil
	}
}

// WithLogger sets the logger used for load-time warnings
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *loaderConfig) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// Load builds the effective configuration: the built-in defaults, the
// operator YAML document layered on top (when a path is given), and
// finally environment variable overrides. Unknown keys in the document
// are logged and ignored unless WithStrict is set. The result is
// validated before it is returned; Load never returns a partially
// applied configuration.
func Load(opts ...Option) (*Config, error) {
	loaderCfg := &loaderConfig{
		envPrefix: DefaultEnvPrefix,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(loaderCfg); err != nil {
			return nil, err
		}
	}

	config := DefaultConfig()

	if loaderCfg.path != "" {
		// Read the entire file into memory
		data, err := os.ReadFile(loaderCfg.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}

		if doc.Kind != 0 {
			var unknown []string
			findUnknownKeys(&doc, reflect.TypeOf(Config{}), "", &unknown)
			if len(unknown) > 0 && loaderCfg.strict {
				return nil, fmt.Errorf("unknown configuration keys: %s", strings.Join(unknown, ", "))
			}
			for _, key := range unknown {
				loaderCfg.logger.Warn("ignoring unknown configuration key", "key", key)
			}

			// Decoding into the defaults layers the document over them;
			// absent fields keep their default values.
			if err := doc.Decode(config); err != nil {
				return nil, fmt.Errorf("failed to parse YAML config: %w", err)
			}
		}
	}

	if loaderCfg.envPrefix != "" {
		if err := applyEnvOverrides(config, loaderCfg.envPrefix, loaderCfg.logger); err != nil {
			return nil, err
		}
	}

	// Validate the config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

var yamlUnmarshalerType = reflect.TypeOf((*yaml.Unmarshaler)(nil)).Elem()

// findUnknownKeys walks the document in parallel with the configuration
// struct and collects the paths of mapping keys that have no
// corresponding field. Types with custom decoders accept arbitrary
// shapes, so the walk stops at them.
func findUnknownKeys(node *yaml.Node, t reflect.Type, path string, unknown *[]string) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) > 0 {
			findUnknownKeys(node.Content[0], t, path, unknown)
		}
		return
	case yaml.AliasNode:
		if node.Alias != nil {
			findUnknownKeys(node.Alias, t, path, unknown)
		}
		return
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if reflect.PointerTo(t).Implements(yamlUnmarshalerType) {
		return
	}

	switch t.Kind() {
	case reflect.Struct:
		if node.Kind != yaml.MappingNode {
			return
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			keyPath := joinPath(path, key)
			fieldType, ok := structFieldType(t, key)
			if !ok {
				*unknown = append(*unknown, keyPath)
				continue
			}
			findUnknownKeys(node.Content[i+1], fieldType, keyPath, unknown)
		}
	case reflect.Map:
		if node.Kind != yaml.MappingNode {
			return
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			findUnknownKeys(node.Content[i+1], t.Elem(), joinPath(path, node.Content[i].Value), unknown)
		}
	case reflect.Slice, reflect.Array:
		if node.Kind != yaml.SequenceNode {
			return
		}
		for i, item := range node.Content {
			findUnknownKeys(item, t.Elem(), fmt.Sprintf("%s[%d]", path, i), unknown)
		}
	}
}

// structFieldType resolves a mapping key to the type of the struct
// field it decodes into, descending into inline and embedded fields the
// same way the YAML decoder does.
func structFieldType(t reflect.Type, name string) (reflect.Type, bool) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}

		tag := field.Tag.Get("yaml")
		parts := strings.Split(tag, ",")
		tagName := parts[0]
		inline := slices.Contains(parts[1:], "inline")

		if inline || (field.Anonymous && tagName == "") {
			inner := field.Type
			for inner.Kind() == reflect.Pointer {
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				if sub, ok := structFieldType(inner, name); ok {
					return sub, true
				}
			}
			continue
		}

		if tagName == "-" {
			continue
		}
		if tagName == "" {
			tagName = strings.ToLower(field.Name)
		}
		if tagName == name {
			return field.Type, true
		}
	}
	return nil, false
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// applyEnvOverrides layers environment variables over the configuration.
// The variable name is the upper-cased field path with "__" separating
// the path segments, e.g. SPECTRA_SERVICES__API_PORT for
// services.api_port. Values are parsed as YAML, so lists and mappings
// can be passed inline.
func applyEnvOverrides(config *Config, prefix string, logger *slog.Logger) error {
	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	v.AutomaticEnv()

	return walkLeaves(reflect.ValueOf(config).Elem(), "", func(path string, field reflect.Value) error {
		if !v.IsSet(path) {
			return nil
		}
		raw := v.GetString(path)
		if err := yaml.Unmarshal([]byte(raw), field.Addr().Interface()); err != nil {
			return fmt.Errorf("environment override %s: %w", envKey(prefix, path), err)
		}
		logger.Debug("applied environment override", "path", path)
		return nil
	})
}

// walkLeaves visits every settable leaf field of the configuration with
// its dotted path. A leaf is any field that is not a plain struct:
// scalars, slices, maps, and types with custom decoders.
func walkLeaves(value reflect.Value, path string, visit func(string, reflect.Value) error) error {
	t := value.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}

		tag := field.Tag.Get("yaml")
		parts := strings.Split(tag, ",")
		tagName := parts[0]
		inline := slices.Contains(parts[1:], "inline")

		fieldValue := value.Field(i)
		for fieldValue.Kind() == reflect.Pointer {
			if fieldValue.IsNil() {
				break
			}
			fieldValue = fieldValue.Elem()
		}
		if fieldValue.Kind() == reflect.Pointer {
			continue
		}

		if inline || (field.Anonymous && tagName == "") {
			if fieldValue.Kind() == reflect.Struct {
				if err := walkLeaves(fieldValue, path, visit); err != nil {
					return err
				}
			}
			continue
		}
		if tagName == "-" {
			continue
		}
		if tagName == "" {
			tagName = strings.ToLower(field.Name)
		}
		fieldPath := joinPath(path, tagName)

		isLeaf := fieldValue.Kind() != reflect.Struct ||
			fieldValue.Addr().Type().Implements(yamlUnmarshalerType)
		if isLeaf {
			if err := visit(fieldPath, fieldValue); err != nil {
				return err
			}
			continue
		}
		if err := walkLeaves(fieldValue, fieldPath, visit); err != nil {
			return err
		}
	}
	return nil
}

func envKey(prefix, path string) string {
	return prefix + "_" + strings.ToUpper(strings.ReplaceAll(path, ".", "__"))
}
