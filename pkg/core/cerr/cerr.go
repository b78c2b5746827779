// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cerr provides the core-level error kinds. Each entity
// operation either succeeds or fails with an Error which wraps the
// actual description error and classifies it by a Kind, so outer
// layers (e.g., the CLI) can decide how to report it without parsing
// error strings.
package cerr

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind int

// Valid values for the Kind enum.
const (
	KindUnknown Kind = iota // zero value is not a known kind

	KindInvalidArgument // a supplied value violates a precondition
	KindInvalidState    // operation is illegal in the current state
	KindNotFound        // a named entity does not exist
	KindConflict        // a named entity exists already
)

// Sentinel errors which match an Error of the corresponding Kind when
// compared using errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
)

// String returns the kind name as used in error messages.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid-argument"
	case KindInvalidState:
		return "invalid-state"
	case KindNotFound:
		return "not-found"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidArgument:
		return ErrInvalidArgument
	case KindInvalidState:
		return ErrInvalidState
	case KindNotFound:
		return ErrNotFound
	case KindConflict:
		return ErrConflict
	default:
		return nil
	}
}

type Error struct {
	Err  error
	Kind Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Kind, e.Err.Error())
}

// Is reports whether target is the sentinel error of e.Kind, so
// errors.Is(err, ErrInvalidState) holds for any wrapped Error with
// the KindInvalidState kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && s == target
}

func InvalidArgument(err error) *Error {
	return &Error{Err: err, Kind: KindInvalidArgument}
}

func InvalidState(err error) *Error {
	return &Error{Err: err, Kind: KindInvalidState}
}

func NotFound(err error) *Error {
	return &Error{Err: err, Kind: KindNotFound}
}

func Conflict(err error) *Error {
	return &Error{Err: err, Kind: KindConflict}
}

// KindOf returns the Kind of the outermost Error in the err chain.
// KindUnknown is returned if err is nil or contains no Error.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}
