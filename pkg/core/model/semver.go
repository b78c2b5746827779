// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"strconv"
	"strings"
)

// SemVer is a major.minor.patch semantic version, as used for the
// config file format. Omitted trailing components are zero, so "1"
// and "1.0" both stand for 1.0.0 when parsed.
type SemVer [3]uint

// ParseSemVer parses one to three dot-separated non-negative numbers.
func ParseSemVer(s string) (SemVer, error) {
	var sv SemVer
	p := strings.Split(s, ".")
	if len(p) > len(sv) {
		return sv, fmt.Errorf("the %q has too many components", s)
	}
	for i, c := range p {
		n, err := strconv.ParseUint(c, 10, 32)
		if err != nil {
			return SemVer{}, fmt.Errorf(
				"the %q component of %q is not a number", c, s,
			)
		}
		sv[i] = uint(n)
	}
	return sv, nil
}

// UnmarshalText implements encoding.TextUnmarshaler. In case of errors,
// sv is left unchanged.
func (sv *SemVer) UnmarshalText(text []byte) error {
	v, err := ParseSemVer(string(text))
	if err != nil {
		return err
	}
	*sv = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (sv SemVer) MarshalText() ([]byte, error) {
	return []byte(sv.String()), nil
}

// Readable reports whether a reader which knows the major.minor format
// may read sv. The major versions must match and sv may not carry a
// newer minor version, while its patch version is irrelevant.
func (sv SemVer) Readable(major, minor uint) bool {
	return sv[0] == major && sv[1] <= minor
}

func (sv SemVer) String() string {
	return fmt.Sprintf("%d.%d.%d", sv[0], sv[1], sv[2])
}
