// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package scenario is an adapter which reads YAML scenario files,
// instantiates their entities through the model constructors, and
// converts their steps into model.Step instances, so they may be run
// by the labs use case. It also serializes the run outcomes as text
// or JSON for the CLI users.
//
// A scenario file looks like:
//
//	entities:
//	  - name: kettle
//	    kind: kettle
//	    capacity: 1.5
//	    volume: 0
//	steps:
//	  - entity: kettle
//	    op: fill
//	    arg: 1.0
package scenario

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/momeni/oolabs/pkg/core/cerr"
	"github.com/momeni/oolabs/pkg/core/model"
	"gopkg.in/yaml.v3"
)

// Scenario is the deserialized form of a scenario file.
type Scenario struct {
	Entities []Entity `yaml:"entities" validate:"dive"`
	Steps    []Step   `yaml:"steps" validate:"dive"`
}

// Entity describes one entity. Name identifies it in the steps (and
// is also used as the tamagotchi name). Kind chooses the constructor and
// so the relevant subset of fields. Numeric fields are pointers, so
// missing values can be reported instead of taking zero silently.
type Entity struct {
	Name string `yaml:"name" validate:"required"`
	Kind string `yaml:"kind" validate:"required,oneof=kettle computer tamagotchi paper-book audio-book car truck"`

	// kettle
	Capacity *float64 `yaml:"capacity"` // also truck capacity in tonnes
	Volume   *float64 `yaml:"volume"`
	Heated   bool     `yaml:"heated"`

	// computer
	Processor string `yaml:"processor"`
	RAM       *int   `yaml:"ram"`
	Storage   *int   `yaml:"storage"`

	// tamagotchi
	Age       *int `yaml:"age"`
	Hunger    *int `yaml:"hunger"`
	Tiredness *int `yaml:"tiredness"`

	// books, Title is the book name
	Title    string   `yaml:"title"`
	Author   string   `yaml:"author"`
	Pages    *int     `yaml:"pages"`
	Duration *float64 `yaml:"duration"`

	// vehicles
	Brand string `yaml:"brand"`
	Model string `yaml:"model"`
	Year  *int   `yaml:"year"`
	Color string `yaml:"color"`
}

// Step describes one operation on a named entity.
type Step struct {
	Entity string   `yaml:"entity" validate:"required"`
	Op     string   `yaml:"op" validate:"required"`
	Arg    *float64 `yaml:"arg"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load deserializes and validates a scenario from data.
func Load(data []byte) (*Scenario, error) {
	s := &Scenario{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, cerr.InvalidArgument(verrs)
		}
		return nil, fmt.Errorf("validating scenario: %w", err)
	}
	return s, nil
}

// Creator is implemented by the labs use case, registering entities.
type Creator interface {
	Create(ctx context.Context, name string, e model.Entity) error
}

// Build instantiates all entities of the scenario and registers them
// using the c Creator. It stops at the first invalid entity.
func (s *Scenario) Build(ctx context.Context, c Creator) error {
	for i, se := range s.Entities {
		e, err := se.NewEntity()
		if err != nil {
			return fmt.Errorf("entity #%d (%q): %w", i, se.Name, err)
		}
		if err = c.Create(ctx, se.Name, e); err != nil {
			return fmt.Errorf("entity #%d: %w", i, err)
		}
	}
	return nil
}

// ModelSteps converts the scenario steps into model.Step instances.
func (s *Scenario) ModelSteps() ([]model.Step, error) {
	steps := make([]model.Step, 0, len(s.Steps))
	for i, ss := range s.Steps {
		op, err := model.ParseOp(ss.Op)
		if err != nil {
			return nil, cerr.InvalidArgument(
				fmt.Errorf("step #%d: op %q: %w", i, ss.Op, err),
			)
		}
		steps = append(steps, model.Step{
			Entity: ss.Entity, Op: op, Arg: ss.Arg,
		})
	}
	return steps, nil
}

// NewEntity instantiates the described entity through the model
// constructor of its kind. All missing fields are reported together.
func (se Entity) NewEntity() (model.Entity, error) {
	kind, err := model.ParseEntityKind(se.Kind)
	if err != nil {
		return nil, cerr.InvalidArgument(
			fmt.Errorf("kind %q: %w", se.Kind, err),
		)
	}
	var errs []error
	f := func(name string, v *float64) float64 {
		if v == nil {
			errs = append(errs, fmt.Errorf("%s is required", name))
			return 0
		}
		return *v
	}
	n := func(name string, v *int) int {
		if v == nil {
			errs = append(errs, fmt.Errorf("%s is required", name))
			return 0
		}
		return *v
	}
	var build func() (model.Entity, error)
	switch kind {
	case model.EntityKindKettle:
		capacity, volume := f("capacity", se.Capacity), f("volume", se.Volume)
		build = func() (model.Entity, error) {
			return model.NewKettle(capacity, volume, se.Heated)
		}
	case model.EntityKindComputer:
		ram, storage := n("ram", se.RAM), n("storage", se.Storage)
		build = func() (model.Entity, error) {
			return model.NewComputer(se.Processor, ram, storage)
		}
	case model.EntityKindTamagotchi:
		age, hunger := n("age", se.Age), n("hunger", se.Hunger)
		build = func() (model.Entity, error) {
			var opts []model.TamagotchiOption
			if se.Tiredness != nil {
				opts = append(opts, model.WithTiredness(*se.Tiredness))
			}
			return model.NewTamagotchi(se.Name, age, hunger, opts...)
		}
	case model.EntityKindPaperBook:
		pages := n("pages", se.Pages)
		build = func() (model.Entity, error) {
			return model.NewPaperBook(se.Title, se.Author, pages)
		}
	case model.EntityKindAudioBook:
		duration := f("duration", se.Duration)
		build = func() (model.Entity, error) {
			return model.NewAudioBook(se.Title, se.Author, duration)
		}
	case model.EntityKindCar:
		year := n("year", se.Year)
		build = func() (model.Entity, error) {
			return model.NewCar(se.Brand, se.Model, year, se.Color)
		}
	case model.EntityKindTruck:
		year, capacity := n("year", se.Year), f("capacity", se.Capacity)
		build = func() (model.Entity, error) {
			return model.NewTruck(se.Brand, se.Model, year, capacity)
		}
	}
	if len(errs) > 0 {
		return nil, cerr.InvalidArgument(errors.Join(errs...))
	}
	return build()
}
