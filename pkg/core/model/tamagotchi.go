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

// MaxTiredness is the ceiling of the Tamagotchi tiredness level.
const MaxTiredness = 100

// Tamagotchi models a virtual pet which gets hungry and tired.
// Hunger has no ceiling but never drops below zero, while tiredness
// is clamped in the [0, MaxTiredness] range after every mutation.
type Tamagotchi struct {
	name      string
	age       int
	hunger    int
	tiredness int
}

// TamagotchiOption is a functional option for NewTamagotchi.
type TamagotchiOption func(t *Tamagotchi) error

// WithTiredness sets the initial tiredness level which defaults to 0.
func WithTiredness(tiredness int) TamagotchiOption {
	return func(t *Tamagotchi) error {
		if tiredness < 0 || tiredness > MaxTiredness {
			return fmt.Errorf(
				"tiredness (%d) is not in [0, %d]",
				tiredness, MaxTiredness,
			)
		}
		t.tiredness = tiredness
		return nil
	}
}

// NewTamagotchi instantiates a Tamagotchi. Name is required, while the
// age and hunger may not be negative.
func NewTamagotchi(
	name string, age, hunger int, opts ...TamagotchiOption,
) (*Tamagotchi, error) {
	switch {
	case name == "":
		return nil, cerr.InvalidArgument(errors.New("name is required"))
	case age < 0:
		return nil, cerr.InvalidArgument(fmt.Errorf(
			"age (%d) may not be negative", age,
		))
	case hunger < 0:
		return nil, cerr.InvalidArgument(fmt.Errorf(
			"hunger (%d) may not be negative", hunger,
		))
	}
	t := &Tamagotchi{name: name, age: age, hunger: hunger}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, cerr.InvalidArgument(
				fmt.Errorf("invalid option: %w", err),
			)
		}
	}
	return t, nil
}

// Kind returns EntityKindTamagotchi.
func (t *Tamagotchi) Kind() EntityKind {
	return EntityKindTamagotchi
}

// Name returns the tamagotchi name.
func (t *Tamagotchi) Name() string {
	return t.name
}

// Age returns the age in years.
func (t *Tamagotchi) Age() int {
	return t.age
}

// Hunger returns the hunger level, which is never negative.
func (t *Tamagotchi) Hunger() int {
	return t.hunger
}

// Tiredness returns the tiredness level in [0, MaxTiredness].
func (t *Tamagotchi) Tiredness() int {
	return t.tiredness
}

// Feed decreases the hunger by amount, down to zero.
func (t *Tamagotchi) Feed(amount int) error {
	if amount < 0 {
		return cerr.InvalidArgument(fmt.Errorf(
			"food amount (%d) may not be negative", amount,
		))
	}
	if amount >= t.hunger {
		t.hunger = 0
	} else {
		t.hunger -= amount
	}
	return nil
}

// Play increases the tiredness by time, up to MaxTiredness.
func (t *Tamagotchi) Play(time int) error {
	if time < 0 {
		return cerr.InvalidArgument(fmt.Errorf(
			"play time (%d) may not be negative", time,
		))
	}
	if time >= MaxTiredness-t.tiredness {
		t.tiredness = MaxTiredness
	} else {
		t.tiredness += time
	}
	return nil
}

// Sleep decreases the tiredness by duration, down to zero.
func (t *Tamagotchi) Sleep(duration int) error {
	if duration < 0 {
		return cerr.InvalidArgument(fmt.Errorf(
			"sleep duration (%d) may not be negative", duration,
		))
	}
	if duration >= t.tiredness {
		t.tiredness = 0
	} else {
		t.tiredness -= duration
	}
	return nil
}

// Status returns a string like
// "Tama, 2 years old, Hunger: 50, Tiredness: 0".
func (t *Tamagotchi) Status() string {
	return fmt.Sprintf(
		"%s, %d years old, Hunger: %d, Tiredness: %d",
		t.name, t.age, t.hunger, t.tiredness,
	)
}
