// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package scenario

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/momeni/oolabs/pkg/core/cerr"
	"github.com/momeni/oolabs/pkg/core/model"
	"github.com/momeni/oolabs/pkg/core/repo"
	"github.com/momeni/oolabs/pkg/core/usecase/labsuc"
)

// Report is the JSON representation of a scenario run, containing
// the outcome of its steps and the final state of its entities.
type Report struct {
	Outcomes []OutcomeResp `json:"outcomes"`
	Entities []EntityResp  `json:"entities"`
}

// OutcomeResp reports one step. Exactly one of the Status or Error
// fields is populated.
type OutcomeResp struct {
	Entity    string   `json:"entity"`
	Op        string   `json:"op"`
	Arg       *float64 `json:"arg,omitempty"`
	Status    string   `json:"status,omitempty"`
	Error     string   `json:"error,omitempty"`
	ErrorKind string   `json:"error_kind,omitempty"`
}

// EntityResp reports one registered entity and its kind-specific state.
type EntityResp struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Kind   string    `json:"kind"`
	Status string    `json:"status"`
	State  any       `json:"state"`
}

type kettleState struct {
	Capacity float64 `json:"capacity"`
	Volume   float64 `json:"volume"`
	Heated   bool    `json:"heated"`
}

type computerState struct {
	Processor string `json:"processor"`
	RAM       int    `json:"ram"`
	Storage   int    `json:"storage"`
	Powered   bool   `json:"powered"`
	Mode      string `json:"mode"`
}

type tamagotchiState struct {
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Hunger    int    `json:"hunger"`
	Tiredness int    `json:"tiredness"`
}

type bookState struct {
	Name     string   `json:"name"`
	Author   string   `json:"author"`
	Pages    int      `json:"pages,omitempty"`
	Duration *float64 `json:"duration,omitempty"`
}

type vehicleState struct {
	Brand    string   `json:"brand"`
	Model    string   `json:"model"`
	Year     int      `json:"year"`
	Color    string   `json:"color,omitempty"`
	Capacity *float64 `json:"capacity,omitempty"`
	Move     string   `json:"move"`
}

// SerOutcome converts an Outcome to its response form.
func SerOutcome(o labsuc.Outcome) OutcomeResp {
	r := OutcomeResp{
		Entity: o.Step.Entity,
		Op:     opName(o.Step.Op),
		Arg:    o.Step.Arg,
		Status: o.Status,
	}
	if o.Err != nil {
		r.Error = o.Err.Error()
		r.ErrorKind = cerr.KindOf(o.Err).String()
	}
	return r
}

// SerEntity converts a repository record to its response form.
func SerEntity(rec repo.Record) EntityResp {
	r := EntityResp{
		ID:     rec.ID,
		Name:   rec.Name,
		Kind:   rec.Entity.Kind().String(),
		Status: rec.Entity.Status(),
	}
	switch e := rec.Entity.(type) {
	case *model.Kettle:
		r.State = kettleState{
			Capacity: e.Capacity(), Volume: e.Volume(), Heated: e.Heated(),
		}
	case *model.Computer:
		r.State = computerState{
			Processor: e.Processor(),
			RAM:       e.RAM(),
			Storage:   e.Storage(),
			Powered:   e.Powered(),
			Mode:      e.Mode().String(),
		}
	case *model.Tamagotchi:
		r.State = tamagotchiState{
			Name:      e.Name(),
			Age:       e.Age(),
			Hunger:    e.Hunger(),
			Tiredness: e.Tiredness(),
		}
	case *model.PaperBook:
		r.State = bookState{Name: e.Name, Author: e.Author, Pages: e.Pages()}
	case *model.AudioBook:
		d := e.Duration()
		r.State = bookState{Name: e.Name, Author: e.Author, Duration: &d}
	case *model.Car:
		r.State = vehicleState{
			Brand: e.Brand, Model: e.Model, Year: e.Year,
			Color: e.Color(), Move: e.Move(),
		}
	case *model.Truck:
		c := e.Capacity()
		r.State = vehicleState{
			Brand: e.Brand, Model: e.Model, Year: e.Year,
			Capacity: &c, Move: e.Move(),
		}
	}
	return r
}

// NewReport converts the outcomes and entity records into a Report.
func NewReport(outcomes []labsuc.Outcome, recs []repo.Record) *Report {
	r := &Report{
		Outcomes: make([]OutcomeResp, 0, len(outcomes)),
		Entities: make([]EntityResp, 0, len(recs)),
	}
	for _, o := range outcomes {
		r.Outcomes = append(r.Outcomes, SerOutcome(o))
	}
	for _, rec := range recs {
		r.Entities = append(r.Entities, SerEntity(rec))
	}
	return r
}

// WriteJSON writes the report as JSON. A positive indent produces an
// indented multi-line output, while zero produces a single line.
func WriteJSON(w io.Writer, r *Report, indent int) error {
	enc := json.NewEncoder(w)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report as JSON: %w", err)
	}
	return nil
}

// WriteText writes the report in a line-oriented human-readable form.
func WriteText(w io.Writer, r *Report) error {
	var sb strings.Builder
	for i, o := range r.Outcomes {
		fmt.Fprintf(&sb, "#%d %s %s", i, o.Entity, o.Op)
		if o.Arg != nil {
			sb.WriteString(" " + strconv.FormatFloat(*o.Arg, 'f', -1, 64))
		}
		if o.Error != "" {
			fmt.Fprintf(&sb, ": error: %s\n", o.Error)
		} else {
			fmt.Fprintf(&sb, ": %s\n", o.Status)
		}
	}
	if len(r.Entities) > 0 {
		sb.WriteString("entities:\n")
	}
	for _, e := range r.Entities {
		fmt.Fprintf(&sb, "  %s (%s): %s\n", e.Name, e.Kind, e.Status)
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing text report: %w", err)
	}
	return nil
}

// Write writes r in the given format which is either "text" or "json".
func Write(w io.Writer, format string, indent int, r *Report) error {
	switch format {
	case "json":
		return WriteJSON(w, r, indent)
	case "text":
		return WriteText(w, r)
	default:
		return cerr.InvalidArgument(
			fmt.Errorf("unknown output format %q", format),
		)
	}
}

func opName(op model.Op) string {
	if op.Validate() != nil {
		return "invalid"
	}
	return op.String()
}
