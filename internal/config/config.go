// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads and validates the cbuild.json build configuration.
// Every recognized field is defaulted explicitly; unrecognized fields are
// rejected rather than silently ignored.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// FileName is the config file base name searched for in the working
// directory (cbuild.json).
const FileName = "cbuild"

// ErrInvalid marks configuration errors: a malformed or unrecognized config
// file, or field values the build cannot proceed with. The CLI maps it to a
// distinguished exit status.
var ErrInvalid = errors.New("invalid configuration")

// Config is the build configuration. Field names mirror the cbuild.json
// keys.
type Config struct {
	ProjectRoot string   `mapstructure:"project_root" json:"project_root"` // Directory the build runs in (default ".")
	CC          string   `mapstructure:"cc" json:"cc"`                     // Compiler executable (default "gcc")
	CFlags      string   `mapstructure:"cflags" json:"cflags"`             // Compile flags, -I entries become search dirs
	LDFlags     string   `mapstructure:"ldflags" json:"ldflags"`           // Link flags
	IgnoreDirs  []string `mapstructure:"ignore_dirs" json:"ignore_dirs"`   // Directory names excluded from discovery
	BuildDir    string   `mapstructure:"build_dir" json:"build_dir"`       // Output directory (default "build")
	Binary      string   `mapstructure:"binary" json:"binary"`             // Final binary name (default "main")
}

// Defaults returns the configuration used when no cbuild.json exists.
func Defaults() Config {
	return Config{
		ProjectRoot: ".",
		CC:          "gcc",
		CFlags:      "",
		LDFlags:     "",
		IgnoreDirs:  []string{".git", ".ccls-cache"},
		BuildDir:    "build",
		Binary:      "main",
	}
}

// Load reads the configuration from path, or from cbuild.json in the
// working directory when path is empty. A missing file in the default
// location is not an error: defaults apply, and the returned bool reports
// whether a file was found. Environment variables with the CBUILD_ prefix
// override file values.
func Load(path string) (Config, bool, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("json")
		v.AddConfigPath(".")
	}

	defaults := Defaults()
	v.SetDefault("project_root", defaults.ProjectRoot)
	v.SetDefault("cc", defaults.CC)
	v.SetDefault("cflags", defaults.CFlags)
	v.SetDefault("ldflags", defaults.LDFlags)
	v.SetDefault("ignore_dirs", defaults.IgnoreDirs)
	v.SetDefault("build_dir", defaults.BuildDir)
	v.SetDefault("binary", defaults.Binary)

	v.SetEnvPrefix("CBUILD")
	v.AutomaticEnv()

	found := true
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			found = false
		} else {
			return Config{}, false, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}

	var cfg Config
	if err := v.UnmarshalExact(&cfg); err != nil {
		return Config{}, found, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, found, err
	}

	return cfg, found, nil
}

// Validate checks the fields the build cannot proceed without.
func (c Config) Validate() error {
	if c.CC == "" {
		return fmt.Errorf("%w: cc must not be empty", ErrInvalid)
	}
	if c.BuildDir == "" {
		return fmt.Errorf("%w: build_dir must not be empty", ErrInvalid)
	}
	if c.Binary == "" {
		return fmt.Errorf("%w: binary must not be empty", ErrInvalid)
	}
	if info, err := os.Stat(c.ProjectRoot); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: project_root %q does not exist or is not a directory", ErrInvalid, c.ProjectRoot)
	}
	return nil
}
