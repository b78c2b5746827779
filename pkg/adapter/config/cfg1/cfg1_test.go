// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cfg1_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/momeni/oolabs/pkg/adapter/config/cfg1"
	"github.com/momeni/oolabs/pkg/adapter/db/memory/entitiesrp"
	"github.com/momeni/oolabs/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sample = `
versions:
  config: 1.0.0
logger:
  level: debug
  format: json
output:
  format: json
  indent: 4
usecases:
  labs:
    halt-on-error: true
`

func TestLoad(t *testing.T) {
	c, err := cfg1.Load(context.Background(), []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "debug", *c.Logger.Level)
	assert.Equal(t, "json", *c.Logger.Format)
	assert.Equal(t, "json", *c.Output.Format)
	assert.Equal(t, 4, *c.Output.Indent)
	assert.True(t, *c.Usecases.Labs.HaltOnError)
	assert.Equal(t, cfg1.Version, c.Vers.Versions.Config)
}

func TestLoadDefaults(t *testing.T) {
	c, err := cfg1.Load(
		context.Background(), []byte("versions:\n  config: 1.0.0\n"),
	)
	require.NoError(t, err)
	assert.Equal(t, "info", *c.Logger.Level)
	assert.Equal(t, "text", *c.Logger.Format)
	assert.Equal(t, "text", *c.Output.Format)
	assert.Equal(t, 2, *c.Output.Indent)
	assert.False(t, *c.Usecases.Labs.HaltOnError)
	assert.Equal(t, cfg1.Default(), c)
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()
	for _, tc := range []struct {
		name string
		data string
	}{
		{name: "no version", data: "logger:\n  level: info\n"},
		{name: "wrong major", data: "versions:\n  config: 2.0.0\n"},
		{name: "newer minor", data: "versions:\n  config: 1.9.0\n"},
		{
			name: "bad level",
			data: "versions:\n  config: 1.0.0\nlogger:\n  level: loud\n",
		},
		{
			name: "bad output format",
			data: "versions:\n  config: 1.0.0\noutput:\n  format: xml\n",
		},
		{name: "not yaml", data: "versions: [\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cfg1.Load(ctx, []byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestIndentIsClamped(t *testing.T) {
	c, err := cfg1.Load(context.Background(), []byte(
		"versions:\n  config: 1.0.0\noutput:\n  indent: 42\n",
	))
	require.NoError(t, err)
	assert.Equal(t, cfg1.MaxIndent, *c.Output.Indent)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("OOLABS_LOG_LEVEL", "warn")
	t.Setenv("OOLABS_OUTPUT_FORMAT", "json")
	t.Setenv("OOLABS_HALT_ON_ERROR", "true")
	c, err := cfg1.Load(context.Background(), []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "warn", *c.Logger.Level)
	assert.Equal(t, "json", *c.Output.Format)
	assert.True(t, *c.Usecases.Labs.HaltOnError)

	t.Setenv("OOLABS_HALT_ON_ERROR", "maybe")
	_, err = cfg1.Load(context.Background(), []byte(sample))
	assert.Error(t, err)

	t.Setenv("OOLABS_HALT_ON_ERROR", "")
	t.Setenv("OOLABS_LOG_FORMAT", "xml")
	_, err = cfg1.Load(context.Background(), []byte(sample))
	assert.Error(t, err, "env values must be validated too")
}

func TestNewLogger(t *testing.T) {
	c, err := cfg1.Load(context.Background(), []byte(sample))
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	l := c.NewLogger(buf)
	l.Debug("hello", "k", 1)
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"k":1`)

	c = cfg1.Default()
	buf.Reset()
	l = c.NewLogger(buf)
	l.Debug("hidden")
	assert.Empty(t, buf.String(), "debug is below the default level")
	l.Info("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNewLabsUseCase(t *testing.T) {
	ctx := context.Background()
	c, err := cfg1.Load(ctx, []byte(sample))
	require.NoError(t, err)
	uc, err := c.NewLabsUseCase(entitiesrp.New())
	require.NoError(t, err)
	k, err := model.NewKettle(1, 0, false)
	require.NoError(t, err)
	require.NoError(t, uc.Create(ctx, "k", k))
	_, err = uc.Run(ctx, []model.Step{
		{Entity: "k", Op: model.OpHeat},
		{Entity: "k", Op: model.OpStatus},
	})
	assert.Error(t, err, "halt-on-error was configured")
}

func TestMarshalYAML(t *testing.T) {
	b, err := yaml.Marshal(cfg1.Default())
	require.NoError(t, err)
	c, err := cfg1.Load(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, cfg1.Default(), c)
	assert.Contains(t, string(b), "config: 1.0.0")
}
