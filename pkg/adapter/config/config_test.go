// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/momeni/oolabs/pkg/adapter/config"
	"github.com/momeni/oolabs/pkg/adapter/config/cfg1"
	"github.com/momeni/oolabs/pkg/adapter/config/vers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(data), 0o600))
	return p
}

func TestLoad(t *testing.T) {
	p := writeConfig(t, "versions:\n  config: 1.0.0\nlogger:\n  level: error\n")
	c, err := config.Load(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "error", *c.Logger.Level)
}

func TestLoadVersionMismatch(t *testing.T) {
	p := writeConfig(t, "versions:\n  config: 3.1.0\n")
	_, err := config.Load(context.Background(), p)
	var msve *vers.MismatchingSemVerError
	assert.ErrorAs(t, err, &msve)
}

func TestLoadOrDefault(t *testing.T) {
	ctx := context.Background()
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := config.Load(ctx, missing)
	require.Error(t, err)

	c, err := config.LoadOrDefault(ctx, missing)
	require.NoError(t, err)
	assert.Equal(t, cfg1.Default(), c)

	t.Setenv("OOLABS_LOG_LEVEL", "debug")
	c, err = config.LoadOrDefault(ctx, missing)
	require.NoError(t, err)
	assert.Equal(t, "debug", *c.Logger.Level)

	p := writeConfig(t, "versions:\n  config: 0.1.0\n")
	_, err = config.LoadOrDefault(ctx, p)
	assert.Error(t, err, "existing but invalid files are not ignored")
}
