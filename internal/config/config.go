// Package config provides configuration management for msg15dump.
package config

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/robert-malhotra/go-seviri/header"
	"github.com/robert-malhotra/go-seviri/schema"
)

// Output formats.
const (
	FormatYAML = "yaml"
	FormatFlat = "flat"
)

// Config represents the msg15dump configuration.
type Config struct {
	ByteOrder    string `yaml:"byte_order"`   // "big" or "little"
	TextPadding  string `yaml:"text_padding"` // see schema.ParsePadding
	Offset       int64  `yaml:"offset"`       // bytes to skip before the header
	Format       string `yaml:"format"`       // "yaml" or "flat"
	StrictLength bool   `yaml:"strict_length"`
}

// Default returns a default configuration.
func Default() *Config {
	return &Config{
		ByteOrder:   "big",
		TextPadding: schema.PadNullOrSpace.String(),
		Offset:      0,
		Format:      FormatYAML,
	}
}

// DefaultPath returns the default configuration file path.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".msg15dump", "config.yaml")
}

// Load loads the configuration from a file. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Save saves the configuration to a file.
func Save(path string, cfg *Config) error {
	if path == "" {
		path = DefaultPath()
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks that every setting has a known value.
func (c *Config) Validate() error {
	if _, err := c.Order(); err != nil {
		return err
	}
	if _, err := c.Padding(); err != nil {
		return err
	}
	if c.Offset < 0 {
		return fmt.Errorf("offset must not be negative, got %d", c.Offset)
	}
	switch c.Format {
	case FormatYAML, FormatFlat:
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", c.Format, FormatYAML, FormatFlat)
	}
	return nil
}

// Order returns the configured byte order.
func (c *Config) Order() (binary.ByteOrder, error) {
	switch c.ByteOrder {
	case "", "big":
		return binary.BigEndian, nil
	case "little":
		return binary.LittleEndian, nil
	default:
		return nil, fmt.Errorf("unknown byte order %q (want big or little)", c.ByteOrder)
	}
}

// Padding returns the configured text padding policy.
func (c *Config) Padding() (schema.Padding, error) {
	if c.TextPadding == "" {
		return schema.PadDefault, nil
	}
	return schema.ParsePadding(c.TextPadding)
}

// HeaderOptions converts the decode settings into header options.
func (c *Config) HeaderOptions() ([]header.Option, error) {
	pad, err := c.Padding()
	if err != nil {
		return nil, err
	}
	return []header.Option{
		header.WithTextPadding(pad),
		header.WithStrictLength(c.StrictLength),
	}, nil
}
