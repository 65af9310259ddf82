// Package config loads per-type compilation settings from YAML or JSON.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/log"
	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/gqlskema/graphql"
)

// Config is the on-disk configuration.
//
//	types:
//	  Test:
//	    identifier: bar   # use bar as the identifier field
//	  Audit:
//	    identifier: null  # no identifier field
type Config struct {
	Types map[string]graphql.TypeConfig `yaml:"types" json:"types"`
}

// New returns an empty configuration.
func New() *Config {
	return &Config{Types: map[string]graphql.TypeConfig{}}
}

// Load reads a configuration file.
func Load(path string) (*Config, error) {
	c := New()
	if err := c.LoadFile(path); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile loads configuration from a file (YAML or JSON based on extension)
// and merges it into c. Entries in the file replace existing entries.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var loaded Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("parsing YAML config: %w", err)
		}
	case ".json":
		if err := j.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("parsing JSON config: %w", err)
		}
	default:
		// Try YAML first, then JSON
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			if err := j.Unmarshal(data, &loaded); err != nil {
				return fmt.Errorf("unable to parse config as YAML or JSON")
			}
		}
	}

	c.merge(&loaded)
	return nil
}

func (c *Config) merge(loaded *Config) {
	if c.Types == nil {
		c.Types = map[string]graphql.TypeConfig{}
	}
	for k, v := range loaded.Types {
		c.Types[k] = v
	}
}

// Options converts the configuration into compiler options.
func (c *Config) Options(logger log.Logger) graphql.Options {
	types := make(map[string]graphql.TypeConfig, len(c.Types))
	for k, v := range c.Types {
		types[k] = v
	}
	return graphql.Options{Types: types, Logger: logger}
}
