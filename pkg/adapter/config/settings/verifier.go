// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings

import (
	"cmp"
	"fmt"
)

// OutOfRangeError reports a setting Value which was not in the closed
// [Min, Max] range and so was replaced by its nearest boundary.
type OutOfRangeError[T cmp.Ordered] struct {
	Value T
	Min   T
	Max   T
}

func (e *OutOfRangeError[T]) Error() string {
	return fmt.Sprintf("%v is not in [%v, %v]", e.Value, e.Min, e.Max)
}

// LessThanMin is true if the Min boundary was violated.
func (e *OutOfRangeError[T]) LessThanMin() bool {
	return e.Value < e.Min
}

// Clamp ensures that the value is either nil or falls within the
// minb/maxb boundaries. An out of range value is replaced by minb or
// maxb in place and the original value is reported by the returned
// error. Passing minb greater than maxb is a programming error and
// causes a panic.
func Clamp[T cmp.Ordered](value *T, minb, maxb T) *OutOfRangeError[T] {
	if minb > maxb {
		panic(fmt.Sprintf("invalid range: [%v, %v]", minb, maxb))
	}
	if value == nil {
		return nil
	}
	v := *value
	if v >= minb && v <= maxb {
		return nil
	}
	*value = max(minb, min(v, maxb))
	return &OutOfRangeError[T]{Value: v, Min: minb, Max: maxb}
}
