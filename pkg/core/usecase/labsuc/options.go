// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package labsuc

import (
	"errors"
)

// Option is a functional option for the labs use case.
type Option func(uc *UseCase) error

// WithHaltOnError option configures a labs UseCase instance in order to
// stop running a scenario as soon as one of its steps fails. By default,
// failed steps are recorded and remaining steps run. This option may be
// passed to the New() function at most once.
func WithHaltOnError(halt bool) Option {
	return func(uc *UseCase) error {
		if uc.haltOnError != nil {
			return errors.New("halt-on-error is already configured")
		}
		uc.haltOnError = &halt
		return nil
	}
}
