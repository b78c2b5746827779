// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the oolabs
// project. Commands are organized using the cobra library.
// The "run" sub-command runs a scenario file, the "demo" sub-command
// runs an embedded scenario which exercises all entity kinds, and the
// "version" sub-command prints the supported config format version.
//
//	./oolabs run /path/of/scenario.yaml [-o json] [-c /path/of/config.yaml]
//	./oolabs demo [-o text] [-c /path/of/config.yaml]
//	./oolabs version
package command

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/momeni/oolabs/pkg/adapter/config"
	"github.com/momeni/oolabs/pkg/adapter/config/cfg1"
	"github.com/momeni/oolabs/pkg/core/cerr"
	"github.com/spf13/cobra"
)

var (
	cfgPath     string
	cfgImplicit bool
	cfg         *cfg1.Config
)

var rootCmd = &cobra.Command{
	Use:   "oolabs",
	Short: "Object-oriented modeling labs runner",
	Long: `Object-oriented modeling labs runner which instantiates a set of
small domain entities (a kettle, a computer, a tamagotchi, books, and
vehicles), applies a scenario of operations to them while enforcing
their invariants, and reports the outcome of each operation together
with the final state of every entity.
Settings are read from a versioned YAML config file and may be
overridden by the OOLABS_* environment variables (which may also be
placed in a .env file in the working directory).`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// loadConfig loads the configuration settings into cfg and installs
// the configured logger as the slog default logger.
func loadConfig(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env file: %w", err)
	}
	ctx := cmd.Context()
	var err error
	if cfgImplicit {
		cfg, err = config.LoadOrDefault(ctx, cfgPath)
	} else {
		cfg, err = config.Load(ctx, cfgPath)
	}
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	slog.SetDefault(cfg.NewLogger(os.Stderr))
	return nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command. The exit code is
// chosen based on the error kind, so scripts may distinguish between
// invalid arguments (2), invalid states (3), missing entities (4),
// duplicate entities (5), and other failures (1).
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch cerr.KindOf(err) {
	case cerr.KindInvalidArgument:
		return 2
	case cerr.KindInvalidState:
		return 3
	case cerr.KindNotFound:
		return 4
	case cerr.KindConflict:
		return 5
	default:
		return 1
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
// A missing file at the default path is not an error, so the default
// settings may be used without any config file.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		cfgPath = "configs/sample-config.yaml"
		cfgImplicit = true
	}
}
