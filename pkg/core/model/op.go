// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
	"math"
)

// Op names an operation which may be applied to an Entity by name,
// e.g., from a scenario file. Each Op is supported by a subset of the
// entity kinds (see Supports) and some of them need a numeric argument
// (see NeedsArg).
type Op int

// Valid values for the Op enum.
const (
	OpInvalid Op = iota // zero value is invalid

	OpStatus      // all entities
	OpFill        // kettle
	OpHeat        // kettle
	OpPourOut     // kettle
	OpTurnOn      // computer
	OpTurnOff     // computer
	OpWork        // computer
	OpPlayGame    // computer
	OpFeed        // tamagotchi
	OpPlay        // tamagotchi
	OpSleep       // tamagotchi
	OpSetPages    // paper book
	OpSetDuration // audio book
	OpMove        // car and truck
)

var opNames = [...]string{
	OpStatus:      "status",
	OpFill:        "fill",
	OpHeat:        "heat",
	OpPourOut:     "pour-out",
	OpTurnOn:      "turn-on",
	OpTurnOff:     "turn-off",
	OpWork:        "work",
	OpPlayGame:    "play-game",
	OpFeed:        "feed",
	OpPlay:        "play",
	OpSleep:       "sleep",
	OpSetPages:    "set-pages",
	OpSetDuration: "set-duration",
	OpMove:        "move",
}

// ErrUnknownOp indicates that a string could not be parsed as an Op.
var ErrUnknownOp = errors.New("unknown operation")

// OpError indicates an invalid Op integer.
type OpError int

func (e OpError) Error() string {
	return fmt.Sprintf("invalid operation: %d", e)
}

// Validate returns nil if op is a known operation.
func (op Op) Validate() error {
	if op <= OpInvalid || op > OpMove {
		return OpError(op)
	}
	return nil
}

// String returns the kebab-case name of op. Invalid ops panic.
func (op Op) String() string {
	if err := op.Validate(); err != nil {
		panic(err)
	}
	return opNames[op]
}

// ParseOp parses the kebab-case name of an operation.
func ParseOp(s string) (Op, error) {
	for op, name := range opNames {
		if name != "" && name == s {
			return Op(op), nil
		}
	}
	return OpInvalid, ErrUnknownOp
}

// NeedsArg reports if op takes a numeric argument.
func (op Op) NeedsArg() bool {
	switch op {
	case OpFill, OpPourOut, OpFeed, OpPlay, OpSleep,
		OpSetPages, OpSetDuration:
		return true
	default:
		return false
	}
}

// Integral reports if the op argument must be an integer.
func (op Op) Integral() bool {
	switch op {
	case OpFeed, OpPlay, OpSleep, OpSetPages:
		return true
	default:
		return false
	}
}

// Supports reports if op may be applied to entities of kind k.
func (op Op) Supports(k EntityKind) bool {
	switch op {
	case OpStatus:
		return k.Validate() == nil
	case OpFill, OpHeat, OpPourOut:
		return k == EntityKindKettle
	case OpTurnOn, OpTurnOff, OpWork, OpPlayGame:
		return k == EntityKindComputer
	case OpFeed, OpPlay, OpSleep:
		return k == EntityKindTamagotchi
	case OpSetPages:
		return k == EntityKindPaperBook
	case OpSetDuration:
		return k == EntityKindAudioBook
	case OpMove:
		return k == EntityKindCar || k == EntityKindTruck
	default:
		return false
	}
}

// Step describes one operation which should be applied to the named
// entity. Arg is nil for operations which need no argument.
type Step struct {
	Entity string
	Op     Op
	Arg    *float64
}

// IntArg returns the Arg as an int. It fails if Arg is missing, is
// fractional, or does not fit in an int.
func (s Step) IntArg() (int, error) {
	if s.Arg == nil {
		return 0, errors.New("missing argument")
	}
	v := *s.Arg
	if !finite(v) || v != math.Trunc(v) ||
		v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("argument (%v) is not an integer", v)
	}
	return int(v), nil
}

// FloatArg returns the Arg as a float64, failing if it is missing.
func (s Step) FloatArg() (float64, error) {
	if s.Arg == nil {
		return 0, errors.New("missing argument")
	}
	return *s.Arg, nil
}
