// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/petar-djukic/cbuild/internal/config"
)

const configFileName = "cbuild.json"

// newInitCmd creates the "init" command, an interactive wizard that writes
// a starter cbuild.json in the current directory.
func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a cbuild.json interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(configFileName); err == nil {
				overwrite := false
				prompt := &survey.Confirm{
					Message: configFileName + " already exists. Overwrite?",
					Default: false,
				}
				if err := survey.AskOne(prompt, &overwrite); err != nil {
					return err
				}
				if !overwrite {
					fmt.Println("Aborted.")
					return nil
				}
			}

			cfg := config.Defaults()

			questions := []*survey.Question{
				{
					Name:   "cc",
					Prompt: &survey.Input{Message: "Compiler:", Default: cfg.CC},
				},
				{
					Name:   "cflags",
					Prompt: &survey.Input{Message: "Compile flags:", Default: cfg.CFlags},
				},
				{
					Name:   "ldflags",
					Prompt: &survey.Input{Message: "Link flags:", Default: cfg.LDFlags},
				},
				{
					Name:     "build_dir",
					Prompt:   &survey.Input{Message: "Build directory:", Default: cfg.BuildDir},
					Validate: survey.Required,
				},
				{
					Name:     "binary",
					Prompt:   &survey.Input{Message: "Binary name:", Default: cfg.Binary},
					Validate: survey.Required,
				},
			}

			answers := struct {
				CC       string `survey:"cc"`
				CFlags   string `survey:"cflags"`
				LDFlags  string `survey:"ldflags"`
				BuildDir string `survey:"build_dir"`
				Binary   string `survey:"binary"`
			}{}
			if err := survey.Ask(questions, &answers); err != nil {
				return err
			}

			cfg.CC = answers.CC
			cfg.CFlags = answers.CFlags
			cfg.LDFlags = answers.LDFlags
			cfg.BuildDir = answers.BuildDir
			cfg.Binary = answers.Binary

			out, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			if err := os.WriteFile(configFileName, append(out, '\n'), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", configFileName, err)
			}

			color.Green("Wrote %s", configFileName)
			return nil
		},
	}
}
