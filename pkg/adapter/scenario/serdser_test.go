// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package scenario_test

import (
	"os"

	"github.com/google/uuid"
	"github.com/momeni/oolabs/pkg/adapter/scenario"
	"github.com/momeni/oolabs/pkg/core/model"
	"github.com/momeni/oolabs/pkg/core/repo"
	"github.com/momeni/oolabs/pkg/core/usecase/labsuc"
)

func ExampleWriteJSON() {
	car, _ := model.NewCar("Toyota", "Supra", 1997, "White")
	arg := 3.0
	r := scenario.NewReport(
		[]labsuc.Outcome{{
			Step:   model.Step{Entity: "car", Op: model.OpMove},
			Status: car.Move(),
		}, {
			Step: model.Step{Entity: "car", Op: model.OpFeed, Arg: &arg},
			Err:  os.ErrInvalid,
		}},
		[]repo.Record{{
			ID:     uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
			Name:   "car",
			Entity: car,
		}},
	)
	_ = scenario.WriteJSON(os.Stdout, r, 0)
	// Output:
	// {"outcomes":[{"entity":"car","op":"move","status":"Toyota Supra drives on the road."},{"entity":"car","op":"feed","arg":3,"error":"invalid argument","error_kind":"unknown"}],"entities":[{"id":"6ba7b810-9dad-11d1-80b4-00c04fd430c8","name":"car","kind":"car","status":"Toyota Supra 1997, color: White","state":{"brand":"Toyota","model":"Supra","year":1997,"color":"White","move":"Toyota Supra drives on the road."}}]}
}

func ExampleWriteText() {
	k, _ := model.NewKettle(1.5, 1, true)
	arg := 0.5
	r := scenario.NewReport(
		[]labsuc.Outcome{{
			Step:   model.Step{Entity: "kettle", Op: model.OpPourOut, Arg: &arg},
			Status: "Current volume: 0.5 liters, Water is heated",
		}},
		[]repo.Record{{Name: "kettle", Entity: k}},
	)
	_ = scenario.WriteText(os.Stdout, r)
	// Output:
	// #0 kettle pour-out 0.5: Current volume: 0.5 liters, Water is heated
	// entities:
	//   kettle (kettle): Current volume: 1.0 liters, Water is heated
}
