// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cfg1 makes it possible to load configuration settings with
// version 1.x.y since all minor and patch versions (which are known)
// with the same major version, can be loaded with one implementation.
// When trying to serialize and write out settings, the latest known
// minor and patch version will be used since older versions (with the
// same major version) can ignore the extra fields too.
package cfg1

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/momeni/oolabs/pkg/adapter/config/settings"
	"github.com/momeni/oolabs/pkg/adapter/config/vers"
	"github.com/momeni/oolabs/pkg/core/log"
	"github.com/momeni/oolabs/pkg/core/model"
	"github.com/momeni/oolabs/pkg/core/repo"
	"github.com/momeni/oolabs/pkg/core/usecase/labsuc"
	"gopkg.in/yaml.v3"
)

// These constants define the major, minor, and patch version of the
// configuration settings which are supported by the Config struct.
const (
	Major = 1
	Minor = 0
	Patch = 0
)

// Version is the semantic version of Config struct.
var Version = model.SemVer{Major, Minor, Patch}

// Boundary values of the Output.Indent setting.
const (
	MinIndent = 0
	MaxIndent = 8
)

// Config contains all settings which are required by different parts
// of the project following the v1.x.y format, such as adapters or
// use cases. It is preferred to implement Config with primitive fields
// or other structs which are defined locally, not models or structs
// which are defined in lower layers, so the configuration can be
// versioned and kept intact while other layers can change freely.
type Config struct {
	Logger   Logger   // structured logging settings
	Output   Output   // scenario outcomes rendering settings
	Usecases Usecases // Configuration settings for supported use cases

	// Vers contains the configuration file version string
	// corresponding to this Config instance.
	Vers vers.Config `yaml:",inline"`
}

// Logger contains the log/slog handler settings.
type Logger struct {
	Level  *string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format *string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// Output contains the settings which control how scenario outcomes are
// written for the CLI users.
type Output struct {
	Format *string `yaml:"format" validate:"omitempty,oneof=text json"`

	// Indent is the number of spaces which are used for indentation of
	// the JSON output. Zero produces a compact single line output.
	Indent *int `yaml:"indent"`
}

// Usecases contains the configuration settings for all use cases.
type Usecases struct {
	Labs Labs // labs use case related settings
}

// Labs contains the configuration settings for the labs use case.
// Fields are defined as pointers, so it is possible to detect if they
// are or are not initialized.
type Labs struct {
	// HaltOnError stops a scenario as soon as one step fails.
	HaltOnError *bool `yaml:"halt-on-error"`
}

// Env lists the environment variables which may override settings
// from the configuration file. Empty variables are ignored.
type Env struct {
	LogLevel     string `env:"OOLABS_LOG_LEVEL"`
	LogFormat    string `env:"OOLABS_LOG_FORMAT"`
	OutputFormat string `env:"OOLABS_OUTPUT_FORMAT"`
	HaltOnError  string `env:"OOLABS_HALT_ON_ERROR"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns a Config instance with all settings taking their
// default values, as used when no configuration file exists.
func Default() *Config {
	c := &Config{}
	c.Vers.Versions.Config = Version
	if err := c.ValidateAndNormalize(context.Background()); err != nil {
		panic(fmt.Errorf("default settings are invalid: %w", err))
	}
	return c
}

// Load unmarshals the data byte slice and loads a Config instance
// assuming that it contains the Config settings. Extra items in the
// data will be ignored and missing items will take their default
// values. Settings may be overridden by the environment variables
// which are listed in the Env struct. Thereafter, loaded Config will
// be validated and normalized in order to ensure that provided
// settings are acceptable (for example the major version which is
// reported by data settings must match with number 1 which is the
// major version of this config package).
func Load(ctx context.Context, data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if err := c.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("applying environment variables: %w", err)
	}
	if err := c.ValidateAndNormalize(ctx); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

// ApplyEnv parses the Env variables and overrides the corresponding
// settings of the `c` Config instance.
func (c *Config) ApplyEnv() error {
	e := &Env{}
	if err := env.Parse(e); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	override(&c.Logger.Level, e.LogLevel)
	override(&c.Logger.Format, e.LogFormat)
	override(&c.Output.Format, e.OutputFormat)
	if e.HaltOnError != "" {
		b, err := strconv.ParseBool(e.HaltOnError)
		if err != nil {
			return fmt.Errorf("OOLABS_HALT_ON_ERROR: %w", err)
		}
		settings.Override(&c.Usecases.Labs.HaltOnError, &b)
	}
	return nil
}

func override(dst **string, v string) {
	if v != "" {
		settings.Override(dst, &v)
	}
}

// ValidateAndNormalize validates the configuration settings and
// returns an error if they were not acceptable. It can also modify
// settings in order to normalize them or replace nil values with
// their expected default values. An out of range indentation is
// adjusted to its boundary values (and a warning is logged).
func (c *Config) ValidateAndNormalize(ctx context.Context) error {
	if err := c.Vers.Validate(Major, Minor); err != nil {
		return fmt.Errorf(
			"expecting version v%d.%d: %w", Major, Minor, err,
		)
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating settings: %w", err)
	}
	settings.Default(&c.Logger.Level, "info")
	settings.Default(&c.Logger.Format, "text")
	settings.Default(&c.Output.Format, "text")
	settings.Default(&c.Output.Indent, 2)
	settings.Default(&c.Usecases.Labs.HaltOnError, false)
	if err := settings.Clamp(
		c.Output.Indent, MinIndent, MaxIndent,
	); err != nil {
		log.Warn(
			ctx,
			"output indent is adjusted by boundary values",
			slog.Int("value", err.Value),
			slog.Int("minb", err.Min),
			slog.Int("maxb", err.Max),
			log.Err("violation", err),
		)
	}
	return nil
}

// NewLogger instantiates a slog.Logger which writes to w, using the
// handler and level which are configured in the `c` settings.
// The `c` Config must be normalized beforehand.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	var lvl slog.Level
	// validated by the oneof tag, so it cannot fail
	_ = lvl.UnmarshalText([]byte(*c.Logger.Level))
	opts := &slog.HandlerOptions{Level: lvl}
	if *c.Logger.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// NewLabsUseCase instantiates a new labs use case based on the settings
// in the c struct.
func (c *Config) NewLabsUseCase(r repo.Entities) (*labsuc.UseCase, error) {
	return c.Usecases.Labs.NewUseCase(r)
}

// NewUseCase instantiates a new labs use case based on the settings
// in the l struct.
func (l Labs) NewUseCase(r repo.Entities) (*labsuc.UseCase, error) {
	opts := make([]labsuc.Option, 0, 1)
	if l.HaltOnError != nil {
		opts = append(opts, labsuc.WithHaltOnError(*l.HaltOnError))
	}
	return labsuc.New(r, opts...)
}

// Marshalled struct contains a field for each one of the Config struct
// fields, replacing those fields which need a specific serialization
// logic (i.e., the versions) by their primitive counterparts.
type Marshalled struct {
	Logger   Logger
	Output   Output
	Usecases Usecases
	Vers     *vers.Marshalled `yaml:",inline"`
}

// MarshalYAML returns an instance of the Marshalled struct, as created
// by the Marshal method, so it may be marshalled instead of the `c`
// Config instance.
func (c *Config) MarshalYAML() (interface{}, error) {
	return c.Marshal(), nil
}

// Marshal creates an instance of the Marshalled struct and fills it
// with the `c` Config instance contents.
func (c *Config) Marshal() *Marshalled {
	return &Marshalled{
		Logger:   c.Logger,
		Output:   c.Output,
		Usecases: c.Usecases,
		Vers:     c.Vers.Marshal(),
	}
}

// Version returns the semantic version of this Config format.
func (c *Config) Version() model.SemVer {
	return Version
}
