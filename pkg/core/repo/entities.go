// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package repo lists the repository interfaces which are required by
// the use cases layer. Implementations live in the adapters layer, so
// the use cases may be tested with alternative implementations.
package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/momeni/oolabs/pkg/core/model"
)

// Record is an entity which is registered in an Entities repository.
// The Entity pointer is shared with the repository, so mutating it
// updates the registered entity in-place.
type Record struct {
	ID     uuid.UUID
	Name   string
	Entity model.Entity
}

// Entities keeps named entities for the lifetime of a scenario.
// Implementations are not required to be safe for concurrent use.
type Entities interface {
	// Add registers e with the given name and returns its new ID.
	// An empty name or nil e is an invalid argument and a name which
	// is registered already is a conflict.
	Add(ctx context.Context, name string, e model.Entity) (uuid.UUID, error)

	// Get finds the record of the named entity or fails with a
	// not found error.
	Get(ctx context.Context, name string) (Record, error)

	// List returns all records in their registration order.
	List(ctx context.Context) []Record
}
