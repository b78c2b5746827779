// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/momeni/oolabs/pkg/adapter/config/cfg1"
	"github.com/momeni/oolabs/pkg/adapter/db/memory/entitiesrp"
	"github.com/momeni/oolabs/pkg/adapter/scenario"
	"github.com/momeni/oolabs/pkg/core/log"
	"github.com/spf13/cobra"
)

var outputFormat string

var runCmd = &cobra.Command{
	Use:   "run /path/of/scenario.yaml",
	Short: "Runs a scenario file",
	Long: `Runs a scenario file by creating its entities and applying its
steps in order. The outcome of each step and the final status of all
entities are written to the standard output, either as text or JSON.
Failed steps are reported and skipped, unless the labs use case is
configured to halt on errors.`,
	Args: cobra.ExactArgs(1),
	RunE: runScenarioFile,
}

func runScenarioFile(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading scenario file: %w", err)
	}
	ctx := log.WithAttrs(cmd.Context(), slog.String("scenario", args[0]))
	return runScenario(ctx, cfg, data, cmd.OutOrStdout())
}

// runScenario loads the scenario from data, runs it with an in-memory
// entities repository, and writes its report to w. The report is also
// written when the run halts, so the failed step may be inspected.
func runScenario(
	ctx context.Context, c *cfg1.Config, data []byte, w io.Writer,
) error {
	sc, err := scenario.Load(data)
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}
	uc, err := c.NewLabsUseCase(entitiesrp.New())
	if err != nil {
		return fmt.Errorf("creating labs use case: %w", err)
	}
	if err = sc.Build(ctx, uc); err != nil {
		return fmt.Errorf("building scenario entities: %w", err)
	}
	steps, err := sc.ModelSteps()
	if err != nil {
		return fmt.Errorf("parsing scenario steps: %w", err)
	}
	outcomes, runErr := uc.Run(ctx, steps)
	format := *c.Output.Format
	if outputFormat != "" {
		format = outputFormat
	}
	report := scenario.NewReport(outcomes, uc.Snapshot(ctx))
	if err = scenario.Write(w, format, *c.Output.Indent, report); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if runErr != nil {
		return fmt.Errorf("running scenario: %w", runErr)
	}
	return nil
}

func init() {
	for _, cmd := range []*cobra.Command{runCmd, demoCmd} {
		cmd.Flags().StringVarP(
			&outputFormat, "output", "o", "",
			"output format (text or json), overriding the config file",
		)
		rootCmd.AddCommand(cmd)
	}
}
