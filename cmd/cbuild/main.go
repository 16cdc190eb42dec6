// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command cbuild is an incremental build tool for C projects. It needs no
// build description file: sources are discovered under the project root and
// the header dependency graph is inferred from #include directives.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/cbuild/internal/config"
	"github.com/petar-djukic/cbuild/pkg/cbuild"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:          "cbuild",
		Short:        "Incremental build tool for C projects",
		Long:         "cbuild discovers .c files under the project root, tracks their #include dependencies, and recompiles only what changed.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if viper.GetBool("verbose") {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	// Global flags.
	rootCmd.PersistentFlags().String("config", "", "Path to cbuild.json (default: ./cbuild.json)")
	rootCmd.PersistentFlags().String("root", "", "Project root override")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	// Bind flags to viper.
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Env vars: CBUILD_CONFIG, CBUILD_ROOT, CBUILD_VERBOSE.
	viper.SetEnvPrefix("CBUILD")
	viper.AutomaticEnv()

	// Add commands.
	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newCleanCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		// Configuration problems get a distinguished exit status.
		if errors.Is(err, cbuild.ErrInvalidConfig) || errors.Is(err, config.ErrInvalid) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print cbuild version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cbuild %s\n", version)
		},
	}
}
