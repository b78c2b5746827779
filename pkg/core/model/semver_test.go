// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"

	"github.com/momeni/oolabs/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSemVer(t *testing.T) {
	for s, expected := range map[string]model.SemVer{
		"1":      {1, 0, 0},
		"1.2":    {1, 2, 0},
		"10.0.3": {10, 0, 3},
	} {
		sv, err := model.ParseSemVer(s)
		require.NoError(t, err, s)
		assert.Equal(t, expected, sv, s)
	}
	for _, s := range []string{"", "1.x", "1.-2", "1.2.3.4"} {
		_, err := model.ParseSemVer(s)
		assert.Error(t, err, s)
	}

	sv := model.SemVer{1, 2, 3}
	assert.Error(t, sv.UnmarshalText([]byte("bad")))
	assert.Equal(t, model.SemVer{1, 2, 3}, sv, "must be left unchanged")
	text, err := sv.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", string(text))
}

func TestSemVerReadable(t *testing.T) {
	sv := model.SemVer{1, 2, 9}
	assert.True(t, sv.Readable(1, 2))
	assert.True(t, sv.Readable(1, 5))
	assert.False(t, sv.Readable(1, 1))
	assert.False(t, sv.Readable(2, 2))
}
