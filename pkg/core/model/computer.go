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

var errPoweredOff = errors.New("computer is powered off")

// Computer models a computer which can be powered on and used for
// work or for games. The mode is only meaningful while it is powered
// and turning it off resets the mode to ComputerModeWork.
type Computer struct {
	processor string // processor name, e.g., Intel i7
	ram       int    // RAM size in GB
	storage   int    // storage size in GB

	powered bool
	mode    ComputerMode
}

// NewComputer instantiates a powered off Computer.
func NewComputer(processor string, ram, storage int) (*Computer, error) {
	switch {
	case processor == "":
		return nil, cerr.InvalidArgument(errors.New(
			"processor name is required",
		))
	case ram <= 0:
		return nil, cerr.InvalidArgument(fmt.Errorf(
			"ram (%d) must be positive", ram,
		))
	case storage <= 0:
		return nil, cerr.InvalidArgument(fmt.Errorf(
			"storage (%d) must be positive", storage,
		))
	}
	return &Computer{
		processor: processor,
		ram:       ram,
		storage:   storage,
		mode:      ComputerModeWork,
	}, nil
}

// Kind returns EntityKindComputer.
func (c *Computer) Kind() EntityKind {
	return EntityKindComputer
}

// Processor returns the processor name.
func (c *Computer) Processor() string {
	return c.processor
}

// RAM returns the RAM size in GB.
func (c *Computer) RAM() int {
	return c.ram
}

// Storage returns the storage size in GB.
func (c *Computer) Storage() int {
	return c.storage
}

// Powered reports if the computer is turned on.
func (c *Computer) Powered() bool {
	return c.powered
}

// Mode returns the current usage mode.
func (c *Computer) Mode() ComputerMode {
	return c.mode
}

// TurnOn powers the computer on. It has no preconditions.
func (c *Computer) TurnOn() {
	c.powered = true
}

// TurnOff powers the computer off and leaves the game mode.
func (c *Computer) TurnOff() {
	c.powered = false
	c.mode = ComputerModeWork
}

// Work switches a powered computer to the work mode.
func (c *Computer) Work() error {
	if !c.powered {
		return cerr.InvalidState(errPoweredOff)
	}
	c.mode = ComputerModeWork
	return nil
}

// PlayGame switches a powered computer to the game mode.
func (c *Computer) PlayGame() error {
	if !c.powered {
		return cerr.InvalidState(errPoweredOff)
	}
	c.mode = ComputerModeGame
	return nil
}

// Status returns the power and mode description, e.g., "On, Mode: Game".
func (c *Computer) Status() string {
	p := "Off"
	if c.powered {
		p = "On"
	}
	m := "Work"
	if c.mode == ComputerModeGame {
		m = "Game"
	}
	return fmt.Sprintf("%s, Mode: %s", p, m)
}
