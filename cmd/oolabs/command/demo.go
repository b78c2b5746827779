// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	_ "embed"
	"log/slog"

	"github.com/momeni/oolabs/pkg/core/log"
	"github.com/spf13/cobra"
)

//go:embed demo.yaml
var demoScenario []byte

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Runs the embedded demo scenario",
	Long: `Runs the embedded demo scenario which creates one entity of each
kind and exercises its operations, similar to the run sub-command.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := log.WithAttrs(cmd.Context(), slog.String("scenario", "demo"))
		return runScenario(ctx, cfg, demoScenario, cmd.OutOrStdout())
	},
}
