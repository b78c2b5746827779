// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package labsuc contains the labs UseCase which lets its callers
// exercise the modeled entities by name. Three use cases are supported:
//  1. Creating (registering) an entity,
//  2. Applying one operation (a model.Step) to a registered entity,
//  3. Running a series of steps as a scenario.
package labsuc

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/momeni/oolabs/pkg/core/cerr"
	"github.com/momeni/oolabs/pkg/core/log"
	"github.com/momeni/oolabs/pkg/core/model"
	"github.com/momeni/oolabs/pkg/core/repo"
)

// UseCase represents a labs use case. It holds the entities repository
// and the labs use case specific settings.
type UseCase struct {
	entities repo.Entities

	haltOnError *bool
}

// Outcome is the result of applying one Step. For successful steps,
// Err is nil and Status holds the entity status after the step (or the
// movement description for the model.OpMove steps). Failed steps keep
// their Err and an empty Status.
type Outcome struct {
	Step   model.Step
	Status string
	Err    error
}

// LogValue implements slog.LogValuer, so an Outcome may be logged as a
// group of its entity name, op, argument, and status or error.
func (o Outcome) LogValue() slog.Value {
	op := "invalid"
	if o.Step.Op.Validate() == nil {
		op = o.Step.Op.String()
	}
	attrs := []slog.Attr{
		slog.String("entity", o.Step.Entity),
		slog.String("op", op),
		log.OptFloat("arg", o.Step.Arg),
	}
	if o.Err != nil {
		attrs = append(attrs, log.Err("err", o.Err))
	} else {
		attrs = append(attrs, slog.String("status", o.Status))
	}
	return slog.GroupValue(attrs...)
}

// New instantiates a labs use case.
// Required parameters are passed individually, while the optional
// parameters are passed as a series of functional options.
func New(r repo.Entities, opts ...Option) (*UseCase, error) {
	uc := &UseCase{entities: r}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.haltOnError == nil {
		halt := false
		uc.haltOnError = &halt
	}
	return uc, nil
}

// Create registers the e entity with the given name, so it may be
// referred to by the following steps.
func (uc *UseCase) Create(
	ctx context.Context, name string, e model.Entity,
) error {
	id, err := uc.entities.Add(ctx, name, e)
	if err != nil {
		return fmt.Errorf("registering %q: %w", name, err)
	}
	log.Debug(
		ctx, "entity is created",
		slog.String("name", name),
		slog.String("id", id.String()),
		slog.String("kind", e.Kind().String()),
	)
	return nil
}

// Apply applies the s step to its entity and returns the entity status
// afterwards. Invalid steps (unknown op, unsupported op for the entity
// kind, or missing/wrong arguments) and invalid operations fail with a
// *cerr.Error and leave the entity unchanged.
func (uc *UseCase) Apply(ctx context.Context, s model.Step) (string, error) {
	if err := s.Op.Validate(); err != nil {
		return "", cerr.InvalidArgument(err)
	}
	rec, err := uc.entities.Get(ctx, s.Entity)
	if err != nil {
		return "", err
	}
	e := rec.Entity
	if !s.Op.Supports(e.Kind()) {
		return "", cerr.InvalidArgument(fmt.Errorf(
			"%s does not support %s", e.Kind(), s.Op,
		))
	}
	if !s.Op.NeedsArg() && s.Arg != nil {
		return "", cerr.InvalidArgument(fmt.Errorf(
			"%s takes no argument", s.Op,
		))
	}
	status, err := dispatch(e, s)
	if err != nil {
		return "", err
	}
	return status, nil
}

// dispatch applies s to e assuming that s.Op supports e.Kind().
func dispatch(e model.Entity, s model.Step) (string, error) {
	var err error
	switch x := e.(type) {
	case *model.Kettle:
		err = applyKettle(x, s)
	case *model.Computer:
		err = applyComputer(x, s)
	case *model.Tamagotchi:
		err = applyTamagotchi(x, s)
	case *model.PaperBook:
		if s.Op == model.OpSetPages {
			err = withInt(s, x.SetPages)
		}
	case *model.AudioBook:
		if s.Op == model.OpSetDuration {
			err = withFloat(s, x.SetDuration)
		}
	case model.Vehicle:
		if s.Op == model.OpMove {
			return x.Move(), nil
		}
	default:
		panic(model.EntityKindError(e.Kind()))
	}
	if err != nil {
		return "", err
	}
	return e.Status(), nil
}

func applyKettle(k *model.Kettle, s model.Step) error {
	switch s.Op {
	case model.OpFill:
		return withFloat(s, k.Fill)
	case model.OpPourOut:
		return withFloat(s, k.PourOut)
	case model.OpHeat:
		return k.Heat()
	}
	return nil
}

func applyComputer(c *model.Computer, s model.Step) error {
	switch s.Op {
	case model.OpTurnOn:
		c.TurnOn()
	case model.OpTurnOff:
		c.TurnOff()
	case model.OpWork:
		return c.Work()
	case model.OpPlayGame:
		return c.PlayGame()
	}
	return nil
}

func applyTamagotchi(t *model.Tamagotchi, s model.Step) error {
	switch s.Op {
	case model.OpFeed:
		return withInt(s, t.Feed)
	case model.OpPlay:
		return withInt(s, t.Play)
	case model.OpSleep:
		return withInt(s, t.Sleep)
	}
	return nil
}

func withInt(s model.Step, f func(int) error) error {
	v, err := s.IntArg()
	if err != nil {
		return cerr.InvalidArgument(fmt.Errorf("%s: %w", s.Op, err))
	}
	return f(v)
}

func withFloat(s model.Step, f func(float64) error) error {
	v, err := s.FloatArg()
	if err != nil {
		return cerr.InvalidArgument(fmt.Errorf("%s: %w", s.Op, err))
	}
	return f(v)
}

// Run applies all steps in order and returns one Outcome per applied
// step. Failed steps are logged and recorded in their Outcome. If the
// use case was configured to halt on errors, the first failure stops
// the run and is returned (wrapped) alongside the outcomes so far.
func (uc *UseCase) Run(
	ctx context.Context, steps []model.Step,
) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(steps))
	for i, s := range steps {
		status, err := uc.Apply(ctx, s)
		outcomes = append(outcomes, Outcome{
			Step: s, Status: status, Err: err,
		})
		if err == nil {
			log.Debug(
				ctx, "step is applied",
				slog.Int("index", i),
				slog.String("entity", s.Entity),
				slog.String("status", status),
			)
			continue
		}
		log.Warn(
			ctx, "step failed",
			slog.Int("index", i),
			log.Valuer("outcome", outcomes[i]),
		)
		if *uc.haltOnError {
			return outcomes, fmt.Errorf("step #%d: %w", i, err)
		}
	}
	log.Info(
		ctx, "scenario steps are applied",
		slog.Int("steps", len(steps)),
		slog.Int("failed", failed(outcomes)),
	)
	return outcomes, nil
}

func failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}

// Snapshot returns all registered entities in their creation order.
func (uc *UseCase) Snapshot(ctx context.Context) []repo.Record {
	return uc.entities.List(ctx)
}
