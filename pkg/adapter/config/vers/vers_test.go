// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package vers_test

import (
	"testing"

	"github.com/momeni/oolabs/pkg/adapter/config/vers"
	"github.com/momeni/oolabs/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAndValidate(t *testing.T) {
	vc, err := vers.Load([]byte("versions:\n  config: 1.0.2\nextra: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, model.SemVer{1, 0, 2}, vc.Versions.Config)
	assert.NoError(t, vc.Validate(1, 0))
	assert.NoError(t, vc.Validate(1, 3))

	err = vc.Validate(2, 0)
	var msve *vers.MismatchingSemVerError
	require.ErrorAs(t, err, &msve)
	assert.Equal(t, model.SemVer{1, 0, 2}, msve.Actual)
	assert.Equal(t, model.SemVer{2, 0, 0}, msve.Expected)
	assert.Equal(t,
		"expected v2.0.x (or older minor), but got v1.0.2", err.Error(),
	)
}

func TestValidateNewerMinor(t *testing.T) {
	vc := &vers.Config{}
	vc.Versions.Config = model.SemVer{1, 4, 0}
	assert.Error(t, vc.Validate(1, 2))
}

func TestMarshal(t *testing.T) {
	vc := &vers.Config{}
	vc.Versions.Config = model.SemVer{1, 2, 3}
	assert.Equal(t, "1.2.3", vc.Marshal().Versions.Config)
}
