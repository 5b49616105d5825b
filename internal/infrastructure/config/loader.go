package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a config file encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf picks the encoding from a file extension; unknown extensions are TOML
func FormatOf(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads a config file from disk
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFS reads a config file from fsys
func LoadFS(fsys fs.FS, name string) (*Config, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", name, err)
	}
	cfg, err := Parse(data, FormatOf(name))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", name, err)
	}
	return cfg, nil
}

// Parse overlays data on the defaults and validates the result
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every out-of-range field
func (c *Config) Validate() error {
	var errs []error
	if c.Display.Scale < 1 {
		errs = append(errs, fmt.Errorf("display.scale must be >= 1, got %d", c.Display.Scale))
	}
	if c.Display.TPS < 1 {
		errs = append(errs, fmt.Errorf("display.tps must be >= 1, got %d", c.Display.TPS))
	}
	if c.Generation.StepsPerFrame < 1 {
		errs = append(errs, fmt.Errorf("generation.steps_per_frame must be >= 1, got %d", c.Generation.StepsPerFrame))
	}
	if c.Player.SpeedDivisor < 1 {
		errs = append(errs, fmt.Errorf("player.speed_divisor must be >= 1, got %d", c.Player.SpeedDivisor))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}
