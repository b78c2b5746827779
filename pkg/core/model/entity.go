// Copyright (c) 2023 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the entities which are modeled after everyday objects,
// namely kettles, computers, tamagotchis, books, and vehicles.
// This layer may not depend on outter layers, while all other layers
// may depend on it (the pkg/core/cerr package is the only exception
// which is imported here in order to classify the returned errors).
//
// Every entity keeps its fields unexported and exposes a validating
// constructor and a series of guarded mutators. A mutator validates
// its arguments and the entity's current state before changing any
// field, so a failed call leaves the entity untouched.
package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Entity is implemented by all modeled objects. Status renders the
// current state as a human-readable string and must not mutate it.
type Entity interface {
	Kind() EntityKind
	Status() string
}

// EntityKind enumerates the concrete Entity types. It is serialized as
// a string in scenario files and snapshots.
type EntityKind int

// Valid values for the EntityKind enum.
const (
	EntityKindInvalid EntityKind = iota // zero value is invalid

	EntityKindKettle
	EntityKindComputer
	EntityKindTamagotchi
	EntityKindPaperBook
	EntityKindAudioBook
	EntityKindCar
	EntityKindTruck
)

var entityKindNames = [...]string{
	EntityKindKettle:     "kettle",
	EntityKindComputer:   "computer",
	EntityKindTamagotchi: "tamagotchi",
	EntityKindPaperBook:  "paper-book",
	EntityKindAudioBook:  "audio-book",
	EntityKindCar:        "car",
	EntityKindTruck:      "truck",
}

// ErrUnknownEntityKind indicates that a string could not be parsed as
// a known entity kind.
var ErrUnknownEntityKind = errors.New("unknown entity kind")

// EntityKindError indicates an invalid entity kind integer.
type EntityKindError int

// Error implements the error interface.
func (e EntityKindError) Error() string {
	return fmt.Sprintf("invalid entity kind: %d", e)
}

// Validate returns nil if k is a known kind and an EntityKindError
// otherwise.
func (k EntityKind) Validate() error {
	if k <= EntityKindInvalid || k > EntityKindTruck {
		return EntityKindError(k)
	}
	return nil
}

// String returns the kebab-case name of k. Invalid kinds panic.
func (k EntityKind) String() string {
	if err := k.Validate(); err != nil {
		panic(err)
	}
	return entityKindNames[k]
}

// ParseEntityKind parses the kebab-case name of an entity kind.
// For invalid strings, EntityKindInvalid and ErrUnknownEntityKind
// will be returned.
func ParseEntityKind(s string) (EntityKind, error) {
	for k, name := range entityKindNames {
		if name != "" && name == s {
			return EntityKind(k), nil
		}
	}
	return EntityKindInvalid, ErrUnknownEntityKind
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// decimal formats v as a decimal literal which always has a fraction
// part, e.g., 1.0 or 0.25.
func decimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// number formats v with the least digits, e.g., 10 or 2.07.
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
