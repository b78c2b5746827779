// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config is an adapter which accepts yaml formatted config
// files from its users and allows the oolabs to instantiate different
// components, from the adapter or use cases layers, using those loaded
// configuration settings.
// These settings are versioned and maintained by sub-packages.
// However, the parsed and validated configurations should be passed
// to their ultimate components as a series of individual params (for
// the mandatory items) and a series of functional options (for
// the optional items), so they may be validated again in the relevant
// end-component such as a UseCase instance.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/momeni/oolabs/pkg/adapter/config/cfg1"
	"github.com/momeni/oolabs/pkg/adapter/config/vers"
)

// Load function loads, validates, and normalizes the configuration
// file and returns its settings as an instance of the Config struct.
// Given path must belong to a configuration file which conforms with
// the latest known configuration settings format.
func Load(ctx context.Context, path string) (*cfg1.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	v, err := vers.Load(data)
	if err != nil {
		return nil, fmt.Errorf("loading versions: %w", err)
	}
	if err = v.Validate(cfg1.Major, cfg1.Minor); err != nil {
		return nil, fmt.Errorf("unexpected config version: %w", err)
	}
	c, err := cfg1.Load(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("loading cfg1.Config: %w", err)
	}
	return c, nil
}

// LoadOrDefault works like Load, but if the path does not exist, the
// default settings are returned (after applying the environment
// variables overrides). It is suitable for the implicit config paths
// which are not asked by users explicitly.
func LoadOrDefault(ctx context.Context, path string) (*cfg1.Config, error) {
	c, err := Load(ctx, path)
	switch {
	case err == nil:
		return c, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, err
	}
	c = cfg1.Default()
	if err = c.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("applying environment variables: %w", err)
	}
	if err = c.ValidateAndNormalize(ctx); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}
