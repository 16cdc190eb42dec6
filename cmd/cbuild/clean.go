// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/cbuild/internal/deps"
)

// newCleanCmd creates the "clean" command.
func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the build directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}

			root, err := deps.CanonicalRoot(cfg.ProjectRoot)
			if err != nil {
				return err
			}

			buildDir := filepath.Join(root, cfg.BuildDir)
			if err := os.RemoveAll(buildDir); err != nil {
				return fmt.Errorf("removing %s: %w", cfg.BuildDir, err)
			}

			fmt.Printf("Removed %s\n", cfg.BuildDir)
			return nil
		},
	}
}

// newConfigCmd creates the "config" command.
func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, found, err := loadConfig()
			if err != nil {
				return err
			}

			if !found {
				fmt.Println("cbuild.json not found. Loading defaults.")
				fmt.Println()
			}

			out, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}
}
