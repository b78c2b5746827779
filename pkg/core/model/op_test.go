// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"math"
	"testing"

	"github.com/momeni/oolabs/pkg/core/model"
	"github.com/stretchr/testify/assert"
)

func TestOpParseAndString(t *testing.T) {
	for op := model.OpStatus; op <= model.OpMove; op++ {
		assert.NoError(t, op.Validate())
		parsed, err := model.ParseOp(op.String())
		assert.NoError(t, err)
		assert.Equal(t, op, parsed)
	}
	_, err := model.ParseOp("boil")
	assert.ErrorIs(t, err, model.ErrUnknownOp)
	assert.Error(t, model.OpInvalid.Validate())
	assert.Panics(t, func() { _ = model.Op(99).String() })
}

func TestOpSupports(t *testing.T) {
	for k := model.EntityKindKettle; k <= model.EntityKindTruck; k++ {
		assert.True(t, model.OpStatus.Supports(k), k.String())
	}
	assert.True(t, model.OpFill.Supports(model.EntityKindKettle))
	assert.False(t, model.OpFill.Supports(model.EntityKindComputer))
	assert.True(t, model.OpPlayGame.Supports(model.EntityKindComputer))
	assert.True(t, model.OpSleep.Supports(model.EntityKindTamagotchi))
	assert.True(t, model.OpSetPages.Supports(model.EntityKindPaperBook))
	assert.False(t, model.OpSetPages.Supports(model.EntityKindAudioBook))
	assert.True(t, model.OpSetDuration.Supports(model.EntityKindAudioBook))
	assert.True(t, model.OpMove.Supports(model.EntityKindCar))
	assert.True(t, model.OpMove.Supports(model.EntityKindTruck))
	assert.False(t, model.OpMove.Supports(model.EntityKindKettle))
	assert.False(t, model.OpInvalid.Supports(model.EntityKindKettle))
	assert.False(t, model.OpStatus.Supports(model.EntityKindInvalid))
}

func TestStepArgs(t *testing.T) {
	v := func(f float64) *float64 { return &f }
	for _, tc := range []struct {
		name string
		arg  *float64
		n    int
		ok   bool
	}{
		{name: "integer", arg: v(20), n: 20, ok: true},
		{name: "negative", arg: v(-5), n: -5, ok: true},
		{name: "missing"},
		{name: "fractional", arg: v(1.5)},
		{name: "infinite", arg: v(math.Inf(1))},
		{name: "too large", arg: v(1e12)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			n, err := model.Step{Op: model.OpFeed, Arg: tc.arg}.IntArg()
			if tc.ok {
				assert.NoError(t, err)
				assert.Equal(t, tc.n, n)
			} else {
				assert.Error(t, err)
			}
		})
	}
	f, err := model.Step{Op: model.OpFill, Arg: v(0.25)}.FloatArg()
	assert.NoError(t, err)
	assert.Equal(t, 0.25, f)
	_, err = model.Step{Op: model.OpFill}.FloatArg()
	assert.Error(t, err)

	assert.True(t, model.OpFill.NeedsArg())
	assert.False(t, model.OpFill.Integral())
	assert.True(t, model.OpSetPages.Integral())
	assert.False(t, model.OpHeat.NeedsArg())
}

func TestEntityKind(t *testing.T) {
	for k := model.EntityKindKettle; k <= model.EntityKindTruck; k++ {
		parsed, err := model.ParseEntityKind(k.String())
		assert.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	_, err := model.ParseEntityKind("toaster")
	assert.ErrorIs(t, err, model.ErrUnknownEntityKind)
	assert.Panics(t, func() { _ = model.EntityKindInvalid.String() })
}
