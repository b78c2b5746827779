// Copyright (c) 2023 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"

	"github.com/momeni/oolabs/pkg/core/cerr"
)

// volumeTolerance absorbs the floating point residues of fill and pour
// sequences, e.g., 0.1+0.2-0.3, so they end at exactly 0 or capacity.
const volumeTolerance = 1e-9

// Kettle models a kettle which holds some water, up to its capacity,
// and may heat it. The volume is kept in [0, capacity] and the water
// may only be heated while there is some.
type Kettle struct {
	capacity float64 // maximum volume in liters
	volume   float64 // current volume of water in liters
	heated   bool    // a flag to indicate if water is heated
}

// NewKettle instantiates a Kettle with the given capacity and initial
// water volume (both in liters). The capacity must be positive and the
// volume must fall in the [0, capacity] range. A kettle with no water
// may not be created as heated.
func NewKettle(capacity, volume float64, heated bool) (*Kettle, error) {
	switch {
	case !finite(capacity) || capacity <= 0:
		return nil, cerr.InvalidArgument(fmt.Errorf(
			"capacity (%v) must be a positive number", capacity,
		))
	case !finite(volume) || volume < 0:
		return nil, cerr.InvalidArgument(fmt.Errorf(
			"volume (%v) must be a non-negative number", volume,
		))
	case volume > capacity:
		return nil, cerr.InvalidArgument(fmt.Errorf(
			"volume (%v) exceeds capacity (%v)", volume, capacity,
		))
	case heated && volume == 0:
		return nil, cerr.InvalidArgument(errors.New(
			"an empty kettle cannot be heated",
		))
	}
	return &Kettle{capacity: capacity, volume: volume, heated: heated}, nil
}

// Kind returns EntityKindKettle.
func (k *Kettle) Kind() EntityKind {
	return EntityKindKettle
}

// Capacity returns the maximum volume of water in liters.
func (k *Kettle) Capacity() float64 {
	return k.capacity
}

// Volume returns the current volume of water in liters.
func (k *Kettle) Volume() float64 {
	return k.volume
}

// Heated reports if the water is heated.
func (k *Kettle) Heated() bool {
	return k.heated
}

// Fill adds amount liters of water to the kettle. The amount may not
// be negative and may not exceed the free space of the kettle.
func (k *Kettle) Fill(amount float64) error {
	switch {
	case !finite(amount) || amount < 0:
		return cerr.InvalidArgument(fmt.Errorf(
			"fill amount (%v) must be a non-negative number", amount,
		))
	case amount > k.capacity-k.volume+volumeTolerance:
		return cerr.InvalidArgument(fmt.Errorf(
			"fill amount (%v) exceeds the free space (%v)",
			amount, k.capacity-k.volume,
		))
	}
	k.volume = min(k.volume+amount, k.capacity)
	return nil
}

// Heat heats the water. It fails with an invalid state error if
// there is no water in the kettle.
func (k *Kettle) Heat() error {
	if k.volume == 0 {
		return cerr.InvalidState(errors.New(
			"cannot heat a kettle without water",
		))
	}
	k.heated = true
	return nil
}

// PourOut removes amount liters of water from the kettle. The amount
// may not be negative and may not exceed the current volume.
// Pouring out the last drop leaves a cold empty kettle.
func (k *Kettle) PourOut(amount float64) error {
	switch {
	case !finite(amount) || amount < 0:
		return cerr.InvalidArgument(fmt.Errorf(
			"pour amount (%v) must be a non-negative number", amount,
		))
	case amount > k.volume+volumeTolerance:
		return cerr.InvalidArgument(fmt.Errorf(
			"pour amount (%v) exceeds the current volume (%v)",
			amount, k.volume,
		))
	}
	k.volume -= amount
	if k.volume < volumeTolerance {
		k.volume = 0
		k.heated = false
	}
	return nil
}

// Status returns the current volume and heating state, like
// "Current volume: 1.0 liters, Water is heated".
func (k *Kettle) Status() string {
	h := "not heated"
	if k.heated {
		h = "heated"
	}
	return fmt.Sprintf(
		"Current volume: %s liters, Water is %s", decimal(k.volume), h,
	)
}
