// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package entitiesrp realizes the repo.Entities interface by keeping
// the registered entities in memory. Nothing outlives the process.
package entitiesrp

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/momeni/oolabs/pkg/core/cerr"
	"github.com/momeni/oolabs/pkg/core/model"
	"github.com/momeni/oolabs/pkg/core/repo"
)

type Repo struct {
	byName  map[string]int
	records []repo.Record

	newID func() uuid.UUID
}

// New instantiates an empty Repo which assigns random (version 4)
// UUIDs to its records.
func New() *Repo {
	return &Repo{
		byName: make(map[string]int),
		newID:  uuid.New,
	}
}

// Add implements repo.Entities.Add method.
func (r *Repo) Add(
	_ context.Context, name string, e model.Entity,
) (uuid.UUID, error) {
	switch {
	case name == "":
		return uuid.Nil, cerr.InvalidArgument(errors.New(
			"entity name is required",
		))
	case isNil(e):
		return uuid.Nil, cerr.InvalidArgument(fmt.Errorf(
			"entity %q is nil", name,
		))
	}
	if _, ok := r.byName[name]; ok {
		return uuid.Nil, cerr.Conflict(fmt.Errorf(
			"entity %q is already registered", name,
		))
	}
	rec := repo.Record{ID: r.newID(), Name: name, Entity: e}
	r.byName[name] = len(r.records)
	r.records = append(r.records, rec)
	return rec.ID, nil
}

// Get implements repo.Entities.Get method.
func (r *Repo) Get(_ context.Context, name string) (repo.Record, error) {
	i, ok := r.byName[name]
	if !ok {
		return repo.Record{}, cerr.NotFound(fmt.Errorf(
			"entity %q is not registered", name,
		))
	}
	return r.records[i], nil
}

// List implements repo.Entities.List method. The returned slice is a
// copy, while entities are shared with the repository.
func (r *Repo) List(_ context.Context) []repo.Record {
	l := make([]repo.Record, len(r.records))
	copy(l, r.records)
	return l
}

// isNil reports if e is nil or holds a nil pointer, such as a
// (*model.Kettle)(nil) which would panic when its status is queried.
func isNil(e model.Entity) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
