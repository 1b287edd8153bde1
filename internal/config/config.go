package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jakoblorz/go-mpxj/internal/filesystem"
	"github.com/jakoblorz/go-mpxj/internal/schema"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file looked up from the working
// directory towards the filesystem root.
const FileName = ".mpxj.yaml"

// DefaultDateFormat is the layout dates are rendered with when the config
// does not set one.
const DefaultDateFormat = "2006-01-02 15:04"

// Environment overrides
const (
	EnvTimezone   = "MPXJ_TIMEZONE"
	EnvDateFormat = "MPXJ_DATE_FORMAT"
)

// Config is the content of .mpxj.yaml.
type Config struct {
	// Timezone is an IANA zone name used for dates without an offset
	Timezone string `yaml:"timezone"`

	// DateFormat is a Go time layout used when printing dates
	DateFormat string `yaml:"date_format"`

	// Include lists glob patterns selecting export files in a workspace
	Include []string `yaml:"include"`

	// Columns lists the default table columns per entity
	Columns map[string][]string `yaml:"columns"`

	// Templates is a directory of report templates, relative to the config
	Templates string `yaml:"templates"`

	// Path is the file the config was read from; empty for defaults
	Path string `yaml:"-"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		DateFormat: DefaultDateFormat,
		Include:    []string{"*.json"},
	}
}

// Find walks up from startDir looking for the config file.
func Find(fs filesystem.FileSystem, startDir string) (string, bool) {
	dir := filepath.Clean(startDir)

	for {
		candidate := filepath.Join(dir, FileName)
		if fs.Exists(candidate) {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Load finds and parses the config for startDir, then applies the
// environment overrides. Without a config file the defaults are used.
func Load(fs filesystem.FileSystem, startDir string) (*Config, error) {
	cfg := Default()

	if path, ok := Find(fs, startDir); ok {
		data, err := fs.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		cfg, err = Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		cfg.Path = path
	}

	cfg.ApplyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes config YAML. Unset fields keep their defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if len(cfg.Include) == 0 {
		cfg.Include = Default().Include
	}
	if strings.TrimSpace(cfg.DateFormat) == "" {
		cfg.DateFormat = DefaultDateFormat
	}

	return cfg, nil
}

// ApplyEnv overrides settings from the environment.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvTimezone); ok && strings.TrimSpace(v) != "" {
		c.Timezone = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvDateFormat); ok && strings.TrimSpace(v) != "" {
		c.DateFormat = v
	}
}

// Validate checks the timezone, include patterns and column entities.
func (c *Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}

	for _, pattern := range c.Include {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}
	}

	for entity := range c.Columns {
		if _, err := schema.ParseEntityType(entity); err != nil {
			return fmt.Errorf("invalid columns entry: %w", err)
		}
	}

	return nil
}

// Location resolves the configured timezone. An empty zone is UTC.
func (c *Config) Location() (*time.Location, error) {
	switch strings.TrimSpace(c.Timezone) {
	case "", "UTC":
		return time.UTC, nil
	case "Local":
		return time.Local, nil
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// ColumnsFor returns the configured columns of an entity. Keys may be the
// singular or plural entity name.
func (c *Config) ColumnsFor(entity schema.EntityType) []string {
	for key, columns := range c.Columns {
		if e, err := schema.ParseEntityType(key); err == nil && e == entity {
			return columns
		}
	}
	return nil
}

// Dir returns the directory holding the config file, or "" for defaults.
func (c *Config) Dir() string {
	if c.Path == "" {
		return ""
	}
	return filepath.Dir(c.Path)
}

// TemplatesDir returns the absolute templates directory, or "" when unset.
func (c *Config) TemplatesDir() string {
	if c.Templates == "" {
		return ""
	}
	if filepath.IsAbs(c.Templates) || c.Dir() == "" {
		return c.Templates
	}
	return filepath.Join(c.Dir(), c.Templates)
}
