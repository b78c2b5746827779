// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings_test

import (
	"testing"

	"github.com/momeni/oolabs/pkg/adapter/config/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	var p *string
	settings.Default(&p, "info")
	require.NotNil(t, p)
	assert.Equal(t, "info", *p)

	settings.Default(&p, "debug")
	assert.Equal(t, "info", *p, "non-nil settings must be kept")
}

func TestOverride(t *testing.T) {
	v := 2
	p := &v
	settings.Override(&p, nil)
	assert.Equal(t, 2, *p)

	w := 4
	settings.Override(&p, &w)
	assert.Equal(t, 4, *p)
	w = 5
	assert.Equal(t, 4, *p, "override must copy the source value")
}

func TestClamp(t *testing.T) {
	for _, tc := range []struct {
		name     string
		value    *int
		expected *int
		lessMin  bool
		hasErr   bool
	}{
		{name: "nil value", value: nil, expected: nil},
		{name: "in range", value: intAddr(4), expected: intAddr(4)},
		{name: "on boundary", value: intAddr(8), expected: intAddr(8)},
		{
			name: "below min", value: intAddr(-1), expected: intAddr(0),
			lessMin: true, hasErr: true,
		},
		{
			name: "above max", value: intAddr(9), expected: intAddr(8),
			hasErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var original int
			if tc.value != nil {
				original = *tc.value
			}
			err := settings.Clamp(tc.value, 0, 8)
			assert.Equal(t, tc.expected, tc.value)
			if !tc.hasErr {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, original, err.Value)
			assert.Equal(t, tc.lessMin, err.LessThanMin())
		})
	}
}

func TestClampErrorMessage(t *testing.T) {
	err := settings.Clamp(intAddr(12), 0, 8)
	require.NotNil(t, err)
	assert.Equal(t, "12 is not in [0, 8]", err.Error())
	assert.Panics(t, func() { settings.Clamp(intAddr(3), 5, 1) })
}

func intAddr(i int) *int {
	return &i
}
