// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package settings provides generic helpers for the versioned config
// packages (such as cfg1) which keep their optional settings as
// pointers, so missing items can be told apart from zero values.
package settings

// Default makes (*t) point to a copy of def if it is nil. Non-nil
// settings are kept as they are.
func Default[T any](t **T, def T) {
	if (*t) != nil {
		return
	}
	(*t) = &def
}

// Override makes (*dst) point to a copy of (*src) if src is not nil.
// It is used for settings which may be overridden by environment
// variables (having src nil when the variable is not set).
func Override[T any](dst **T, src *T) {
	if src == nil {
		return
	}
	t := *src
	(*dst) = &t
}
