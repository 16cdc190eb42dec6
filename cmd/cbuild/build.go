// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/cbuild/internal/config"
	"github.com/petar-djukic/cbuild/internal/deps"
	"github.com/petar-djukic/cbuild/internal/toolchain"
	"github.com/petar-djukic/cbuild/pkg/cbuild"
)

// loadConfig reads cbuild.json (or the --config path) and applies the
// --root override.
func loadConfig() (config.Config, bool, error) {
	cfg, found, err := config.Load(viper.GetString("config"))
	if err != nil {
		return cfg, found, err
	}
	if root := viper.GetString("root"); root != "" {
		cfg.ProjectRoot = root
	}
	return cfg, found, nil
}

// newBuilder constructs the public Builder from a loaded configuration.
func newBuilder(cfg config.Config) (cbuild.Builder, error) {
	return cbuild.New(cbuild.Config{
		ProjectRoot: cfg.ProjectRoot,
		CC:          cfg.CC,
		CFlags:      cfg.CFlags,
		LDFlags:     cfg.LDFlags,
		IgnoreDirs:  cfg.IgnoreDirs,
		BuildDir:    cfg.BuildDir,
		Binary:      cfg.Binary,
	})
}

// newBuildCmd creates the "build" command.
func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the project",
		Long:  "Build compiles every stale translation unit and links the final binary into the build directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}

			b, err := newBuilder(cfg)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			_, err = b.Build(ctx)
			return err
		},
	}
}

// newRunCmd creates the "run" command.
func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Build and run the project",
		Long:  "Run builds the project and, on success, executes the resulting binary from the project root.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}

			b, err := newBuilder(cfg)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			if _, err := b.Build(ctx); err != nil {
				return err
			}

			root, err := deps.CanonicalRoot(cfg.ProjectRoot)
			if err != nil {
				return fmt.Errorf("%w: %v", cbuild.ErrInvalidConfig, err)
			}

			tool := &toolchain.Tool{Dir: root}
			return tool.Run(ctx, filepath.Join(cfg.BuildDir, cfg.Binary))
		},
	}
}
