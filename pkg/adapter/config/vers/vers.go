// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package vers parses the config file format version, so the matching
// config package (e.g., cfg1) can be chosen before the settings are
// parsed themselves.
package vers

import (
	"fmt"

	"github.com/momeni/oolabs/pkg/core/model"
	"gopkg.in/yaml.v3"
)

// Config keeps the config file format version. It is embedded inline
// in the versioned config structs.
type Config struct {
	Versions Versions `yaml:"versions"`
}

// Versions contains the config file format version.
type Versions struct {
	Config model.SemVer `yaml:"config"`
}

// Marshalled is the YAML form of Config with a string version. It is
// needed because MarshalYAML of the versioned config structs returns
// their own Marshalled structs which embed this one.
type Marshalled struct {
	Versions struct {
		Config string
	}
}

// Marshal returns the Marshalled form of vc.
func (vc *Config) Marshal() *Marshalled {
	m := &Marshalled{}
	m.Versions.Config = vc.Versions.Config.String()
	return m
}

// Load deserializes the versions from data, ignoring other fields.
func Load(data []byte) (*Config, error) {
	vc := &Config{}
	if err := yaml.Unmarshal(data, vc); err != nil {
		return nil, err
	}
	return vc, nil
}

// Validate returns a *MismatchingSemVerError if the stored version
// may not be read by a major.minor reader (see model.SemVer.Readable).
func (vc *Config) Validate(major, minor uint) error {
	v := vc.Versions.Config
	if !v.Readable(major, minor) {
		return &MismatchingSemVerError{
			Expected: model.SemVer{major, minor, 0},
			Actual:   v,
		}
	}
	return nil
}

// MismatchingSemVerError indicates that a config file has an Actual
// version which is not readable by the Expected format version.
type MismatchingSemVerError struct {
	Expected model.SemVer
	Actual   model.SemVer
}

func (e *MismatchingSemVerError) Error() string {
	return fmt.Sprintf(
		"expected v%d.%d.x (or older minor), but got v%s",
		e.Expected[0], e.Expected[1], e.Actual,
	)
}
