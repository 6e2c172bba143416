// Package config loads field-inspector settings from the environment.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/caarlos0/env/v11"

	"field-inspector/internal/inspect"
	"field-inspector/internal/report"
)

// ScenePackage is the sample package inspected by default.
const ScenePackage = "field-inspector/examples/scene"

// Config controls the scan scope, the root marker and the output format.
type Config struct {
	Packages []string      `env:"FIELD_INSPECTOR_PACKAGES" envSeparator:","`
	Schema   string        `env:"FIELD_INSPECTOR_SCHEMA"`
	Root     string        `env:"FIELD_INSPECTOR_ROOT"`
	TagKey   string        `env:"FIELD_INSPECTOR_TAG"      envDefault:"editor"`
	Format   report.Format `env:"FIELD_INSPECTOR_FORMAT"   envDefault:"text"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Packages: []string{ScenePackage},
		Root:     ScenePackage + ".Parent",
		TagKey:   inspect.DefaultTagKey,
		Format:   report.FormatText,
	}
}

// LoadFromEnv parses the environment on top of the defaults and validates
// the result.
func LoadFromEnv() (Config, error) {
	return Parse(env.Options{})
}

// Parse is LoadFromEnv with explicit env options, e.g. a fixed Environment
// map in tests.
func Parse(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	def := Default()
	if cfg.Schema == "" && len(cfg.Packages) == 0 {
		cfg.Packages = def.Packages
	}
	if cfg.Root == "" && cfg.Schema == "" && slices.Equal(cfg.Packages, def.Packages) {
		cfg.Root = def.Root
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	var errs []error

	if c.Root == "" {
		errs = append(errs, errors.New("FIELD_INSPECTOR_ROOT is required with a custom scope"))
	}
	if c.TagKey == "" {
		errs = append(errs, errors.New("FIELD_INSPECTOR_TAG must not be empty"))
	}
	if _, err := report.New(c.Format); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// UsesSchema reports whether the scope comes from a schema file.
func (c Config) UsesSchema() bool {
	return c.Schema != ""
}
