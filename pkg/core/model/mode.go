// Copyright (c) 2023 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
)

// ComputerMode specifies what a powered computer is being used for.
// Work and game modes are mutually exclusive. Although this enum is
// numeric, it is rendered as a string in statuses and snapshots.
type ComputerMode int

// Valid values for the ComputerMode enum.
const (
	ComputerModeInvalid ComputerMode = iota // zero value is invalid

	ComputerModeWork // ordinary work mode, also the powered off mode
	ComputerModeGame // gaming mode, only reachable while powered on
)

// ErrUnknownComputerMode indicates that a given string may not be
// parsed as a valid/known computer mode. This error does not carry the
// invalid string itself because the caller of ParseComputerMode knows
// about it already and should wrap the error with that information.
var ErrUnknownComputerMode = errors.New("unknown computer mode")

// ComputerModeError indicates an invalid computer mode, keeping the
// invalid mode as an integer.
type ComputerModeError int

// Error implements the error interface, returning a string
// representation of the ComputerModeError.
func (e ComputerModeError) Error() string {
	return fmt.Sprintf("invalid computer mode: %d", e)
}

// Validate returns nil if ComputerMode value is valid. For invalid
// values, an instance of the ComputerModeError will be returned.
func (m ComputerMode) Validate() error {
	switch m {
	case ComputerModeWork, ComputerModeGame:
		return nil
	default:
		return ComputerModeError(m)
	}
}

// String converts the ComputerMode enum to a string.
// Invalid computer mode causes a panic.
func (m ComputerMode) String() string {
	switch m {
	case ComputerModeWork:
		return "work"
	case ComputerModeGame:
		return "game"
	default:
		panic(ComputerModeError(m))
	}
}

// ParseComputerMode parses the given string and returns a ComputerMode.
// For invalid strings, ComputerModeInvalid and ErrUnknownComputerMode
// will be returned.
func ParseComputerMode(m string) (ComputerMode, error) {
	switch m {
	case "work":
		return ComputerModeWork, nil
	case "game":
		return ComputerModeGame, nil
	default:
		return ComputerModeInvalid, ErrUnknownComputerMode
	}
}
