package config

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Manager provides thread-safe, read-only configuration management.
// Configuration files are never modified by the application - all updates come from
// external sources (Kubernetes ConfigMaps, Docker volume mounts, orchestration tools).
//
// Design for read-only operation:
// - No file locking needed - we only observe external changes
// - No write coordination required - we never modify files
// - Uses sync.RWMutex optimized for concurrent reads
// - Validates externally-updated configs before applying
// - Preserves last known good configuration on invalid updates
// - Optimized for container environments with atomic file updates
type Manager interface {
	// Config safely retrieves the current configuration
	Config() *Config

	// Reload reads the latest configuration from disk and applies it if valid.
	// The file is only read, never written. Returns error if the new config is invalid.
	Reload() error

	// Watch observes the configuration file for external changes.
	// Automatically reloads when the file is updated by external systems.
	// Blocks until context is cancelled.
	Watch(ctx context.Context) error

	// Close releases the file watcher resources
	Close() error
}

// Validator defines the interface for validating configurations beyond
// the checks Load already performs. This allows deployment-specific
// validation logic to be injected.
type Validator interface {
	Validate(config *Config) error
}

// Loader defines the interface for loading configuration from a path
type Loader interface {
	Load(path string) (*Config, error)
}

// defaultLoader loads with the package Load function and a fixed set of
// extra load options.
type defaultLoader struct {
	opts []Option
}

// Load implements Loader.
func (l *defaultLoader) Load(path string) (*Config, error) {
	return Load(append([]Option{WithConfigPath(path)}, l.opts...)...)
}

// manager is the concrete implementation of Manager
type manager struct {
	mu         sync.RWMutex // Protects concurrent access to config
	config     *Config      // Current active configuration
	configPath string       // Path to configuration file
	loader     Loader
	validator  Validator // Optional extra validation
	logger     *slog.Logger
	watcher    *fsnotify.Watcher // File system watcher (nil if not watching)
	watcherMu  sync.Mutex        // Protects watcher field
}

// ManagerOption allows customizing Manager behavior
type ManagerOption func(*manager)

// WithValidator sets an extra validator for the manager
func WithValidator(validator Validator) ManagerOption {
	return func(m *manager) {
		m.validator = validator
	}
}

// WithManagerLoader sets a custom loader for the manager
func WithManagerLoader(loader Loader) ManagerOption {
	return func(m *manager) {
		m.loader = loader
	}
}

// WithManagerLogger sets the logger used by the manager
func WithManagerLogger(logger *slog.Logger) ManagerOption {
	return func(m *manager) {
		m.logger = logger
	}
}

// WithLoadOptions sets extra load options passed through to Load on
// every reload, e.g. WithStrict. Ignored when a custom loader is set.
func WithLoadOptions(opts ...Option) ManagerOption {
	return func(m *manager) {
		m.loader = &defaultLoader{opts: opts}
	}
}

// NewManager creates a manager and performs the initial load.
// Returns an error if the initial configuration is invalid.
func NewManager(configPath string, opts ...ManagerOption) (Manager, error) {
	m := &manager{
		configPath: configPath,
		loader:     &defaultLoader{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := m.Reload(); err != nil {
		return nil, fmt.Errorf("failed to load initial config: %w", err)
	}
	return m, nil
}

// Config returns the current configuration. The returned pointer must
// be treated as read-only; a reload swaps the pointer, it never mutates
// the configuration in place.
func (m *manager) Config() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Reload reads the configuration file and applies it if valid.
// On any error the previous configuration stays active.
func (m *manager) Reload() error {
	newConfig, err := m.loader.Load(m.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if m.validator != nil {
		if err := m.validator.Validate(newConfig); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}

	m.mu.Lock()
	m.config = newConfig
	m.mu.Unlock()

	m.logger.Info("configuration reloaded", "path", m.configPath)
	return nil
}

// Watch observes the configuration file for external changes and
// reloads it when it is rewritten. Blocks until the context is
// cancelled.
func (m *manager) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	m.watcherMu.Lock()
	m.watcher = watcher
	m.watcherMu.Unlock()

	if err := watcher.Add(m.configPath); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch config file: %w", err)
	}

	m.logger.Info("watching configuration file", "path", m.configPath)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			switch {
			case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
				if err := m.Reload(); err != nil {
					// Keep the last known good configuration.
					m.logger.Error("failed to reload config, keeping previous",
						"path", m.configPath, "error", err)
				}

			case event.Op&fsnotify.Remove != 0:
				// Kubernetes ConfigMap updates replace the file through a
				// symlink swap, which surfaces as a remove. Re-add the
				// watch and reload.
				if err := watcher.Add(m.configPath); err != nil {
					m.logger.Error("failed to re-watch config file",
						"path", m.configPath, "error", err)
					continue
				}
				if err := m.Reload(); err != nil {
					m.logger.Error("failed to reload config, keeping previous",
						"path", m.configPath, "error", err)
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			m.logger.Error("config watcher error", "error", err)
		}
	}
}

// Close releases the file watcher resources
func (m *manager) Close() error {
	m.watcherMu.Lock()
	defer m.watcherMu.Unlock()

	if m.watcher != nil {
		err := m.watcher.Close()
		m.watcher = nil
		return err
	}
	return nil
}

var _ Manager = (*manager)(nil)
