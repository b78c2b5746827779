// Copyright (c) 2023 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"

	"github.com/momeni/oolabs/pkg/core/cerr"
)

// Vehicle is implemented by all vehicle variants, namely Car and Truck.
// The Move method is the variant-specific capability, so there is no
// concrete Vehicle which may be instantiated by itself.
type Vehicle interface {
	Entity
	fmt.Stringer
	fmt.GoStringer

	Info() VehicleInfo
	Move() string
}

// VehicleInfo is the identity which is shared by all vehicle variants.
type VehicleInfo struct {
	Brand string
	Model string
	Year  int
}

// String returns the brand, model, and year of a vehicle.
func (vi VehicleInfo) String() string {
	return fmt.Sprintf("%s %s %d", vi.Brand, vi.Model, vi.Year)
}

// validate ensures that all identity fields are present.
func (vi VehicleInfo) validate() error {
	switch {
	case vi.Brand == "":
		return cerr.InvalidArgument(errors.New("brand is required"))
	case vi.Model == "":
		return cerr.InvalidArgument(errors.New("model is required"))
	case vi.Year <= 0:
		return cerr.InvalidArgument(fmt.Errorf(
			"year (%d) must be positive", vi.Year,
		))
	}
	return nil
}

// Car is a passenger vehicle with a color.
type Car struct {
	VehicleInfo

	color string
}

// NewCar instantiates a Car, requiring all of its fields.
func NewCar(brand, model string, year int, color string) (*Car, error) {
	vi := VehicleInfo{Brand: brand, Model: model, Year: year}
	if err := vi.validate(); err != nil {
		return nil, err
	}
	if color == "" {
		return nil, cerr.InvalidArgument(errors.New("color is required"))
	}
	return &Car{VehicleInfo: vi, color: color}, nil
}

// Kind returns EntityKindCar.
func (c *Car) Kind() EntityKind {
	return EntityKindCar
}

// Info returns the vehicle identity.
func (c *Car) Info() VehicleInfo {
	return c.VehicleInfo
}

// Color returns the car color.
func (c *Car) Color() string {
	return c.color
}

// Move describes how a car moves.
func (c *Car) Move() string {
	return fmt.Sprintf("%s %s drives on the road.", c.Brand, c.Model)
}

// String describes the car with its color.
func (c *Car) String() string {
	return fmt.Sprintf("%s, color: %s", c.VehicleInfo.String(), c.color)
}

// GoString renders the car like a constructor call.
func (c *Car) GoString() string {
	return fmt.Sprintf(
		"Car(brand=%s, model=%s, year=%d, color=%s)",
		c.Brand, c.Model, c.Year, c.color,
	)
}

// Status returns the car description.
func (c *Car) Status() string {
	return c.String()
}

// Truck is a cargo vehicle with a load capacity in tonnes.
type Truck struct {
	VehicleInfo

	capacity float64
}

// NewTruck instantiates a Truck. Capacity must be positive.
func NewTruck(brand, model string, year int, capacity float64) (*Truck, error) {
	vi := VehicleInfo{Brand: brand, Model: model, Year: year}
	if err := vi.validate(); err != nil {
		return nil, err
	}
	if !finite(capacity) || capacity <= 0 {
		return nil, cerr.InvalidArgument(fmt.Errorf(
			"capacity (%v) must be a positive number", capacity,
		))
	}
	return &Truck{VehicleInfo: vi, capacity: capacity}, nil
}

// Kind returns EntityKindTruck.
func (t *Truck) Kind() EntityKind {
	return EntityKindTruck
}

// Info returns the vehicle identity.
func (t *Truck) Info() VehicleInfo {
	return t.VehicleInfo
}

// Capacity returns the load capacity in tonnes.
func (t *Truck) Capacity() float64 {
	return t.capacity
}

// Move describes how a truck moves.
func (t *Truck) Move() string {
	return fmt.Sprintf("%s %s hauls cargo.", t.Brand, t.Model)
}

// String describes the truck with its load capacity.
func (t *Truck) String() string {
	return fmt.Sprintf(
		"%s, capacity: %s t", t.VehicleInfo.String(), number(t.capacity),
	)
}

// GoString renders the truck like a constructor call.
func (t *Truck) GoString() string {
	return fmt.Sprintf(
		"Truck(brand=%s, model=%s, year=%d, capacity=%s)",
		t.Brand, t.Model, t.Year, number(t.capacity),
	)
}

// Status returns the truck description.
func (t *Truck) Status() string {
	return t.String()
}
