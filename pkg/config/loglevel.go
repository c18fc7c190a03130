package config

import (
	"fmt"
	"log/slog"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LogLevel is a log/slog level in a configuration document. Documents
// may give the level as a number (-4, 0, 4, 8) or as a level name
// ("debug", "WARN", "ERROR+2"); it always marshals back as a number,
// matching the numeric levels in the platform's log records.
type LogLevel slog.Level

// Level returns the slog level, satisfying slog.Leveler.
func (l LogLevel) Level() slog.Level { return slog.Level(l) }

func (l LogLevel) String() string { return slog.Level(l).String() }

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *LogLevel) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("log level must be a number or a level name")
	}
	if n, err := strconv.Atoi(value.Value); err == nil {
		*l = LogLevel(n)
		return nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(value.Value)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", value.Value, err)
	}
	*l = LogLevel(level)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (l LogLevel) MarshalYAML() (any, error) {
	return int(l), nil
}
