package config

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Validate checks the loaded configuration and normalizes the parts
// that have load-time defaults, such as the SI units filled into
// partially configured unit systems. A validation failure is a fatal
// load error; it is never deferred to request time.
func (c *Config) Validate() error {
	if _, err := uuid.Parse(c.Services.AdminUserID); err != nil {
		return fmt.Errorf("services.admin_user_id is not a valid UUID: %w", err)
	}

	for _, port := range []struct {
		name  string
		value int
	}{
		{"services.api_port", c.Services.APIPort},
		{"search.port", c.Search.Port},
		{"mongo.port", c.Mongo.Port},
		{"mail.port", c.Mail.Port},
	} {
		if port.value < 1 || port.value > 65535 {
			return fmt.Errorf("%s: port %d out of range", port.name, port.value)
		}
	}

	if c.Workers.Routing != RoutingQueue && c.Workers.Routing != RoutingWorker {
		return fmt.Errorf("workers.routing: unknown routing mode %q", c.Workers.Routing)
	}

	if err := c.validateUnitSystems(); err != nil {
		return err
	}
	return c.validateApps()
}

// validateUnitSystems normalizes every configured unit system and
// checks the selection.
func (c *Config) validateUnitSystems() error {
	systems := &c.UI.UnitSystems
	for _, key := range systems.Options.Keys() {
		system, _ := systems.Options.Get(key)
		if err := system.Normalize(); err != nil {
			return fmt.Errorf("ui.unit_systems.options.%s: %w", key, err)
		}
		// Normalize fills in SI defaults; store the completed system.
		systems.Options.Set(key, system)
	}

	if systems.Selected == "" {
		return nil
	}
	if !slices.Contains(systems.FilteredKeys(), systems.Selected) {
		return fmt.Errorf("ui.unit_systems: selected system %q is not an available option", systems.Selected)
	}
	return nil
}

// validateApps checks the filter patterns of every declared app. Only
// apps that pass the include/exclude lists are served, but a malformed
// pattern in any declared app is still a configuration error.
func (c *Config) validateApps() error {
	for _, key := range c.UI.Apps.Options.Keys() {
		app, _ := c.UI.Apps.Options.Get(key)
		if err := app.Filters.Validate(); err != nil {
			return fmt.Errorf("ui.apps.options.%s.filters: %w", key, err)
		}
		for _, selected := range app.Columns.Selected {
			if _, ok := app.Columns.Options.Get(selected); !ok {
				return fmt.Errorf("ui.apps.options.%s.columns: selected column %q is not declared", key, selected)
			}
		}
	}
	return nil
}
