// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package cbuild

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/petar-djukic/cbuild/internal/builder"
	"github.com/petar-djukic/cbuild/internal/config"
	"github.com/petar-djukic/cbuild/internal/deps"
	"github.com/petar-djukic/cbuild/internal/toolchain"
)

// New validates the config, applies defaults, and returns a ready-to-use
// Builder. It does not touch the project tree; discovery happens in Build.
func New(cfg Config) (Builder, error) {
	applyDefaults(&cfg)

	internal := config.Config{
		ProjectRoot: cfg.ProjectRoot,
		CC:          cfg.CC,
		CFlags:      cfg.CFlags,
		LDFlags:     cfg.LDFlags,
		IgnoreDirs:  cfg.IgnoreDirs,
		BuildDir:    cfg.BuildDir,
		Binary:      cfg.Binary,
	}
	if err := internal.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	root, err := deps.CanonicalRoot(cfg.ProjectRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	runner := builder.NewRunner(builder.Deps{
		Config: internal,
		Tool:   &toolchain.Tool{Dir: root},
		Out:    cfg.Out,
	})

	return &builderAdapter{runner: runner}, nil
}

// builderAdapter adapts internal/builder.Runner to the public Builder
// interface, translating internal errors into the API sentinels.
type builderAdapter struct {
	runner *builder.Runner
}

func (a *builderAdapter) Build(ctx context.Context) (*Result, error) {
	ir, err := a.runner.Build(ctx)
	if err != nil {
		switch {
		case errors.Is(err, config.ErrInvalid):
			err = fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		case errors.Is(err, toolchain.ErrCommandFailed):
			err = fmt.Errorf("%w: %v", ErrToolFailure, err)
		}
	}
	if ir == nil {
		return &Result{}, err
	}
	return &Result{
		Compiled: ir.Compiled,
		Linked:   ir.Linked,
		UpToDate: ir.UpToDate,
	}, err
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	defaults := config.Defaults()
	if cfg.ProjectRoot == "" {
		cfg.ProjectRoot = defaults.ProjectRoot
	}
	if cfg.CC == "" {
		cfg.CC = defaults.CC
	}
	if cfg.IgnoreDirs == nil {
		cfg.IgnoreDirs = defaults.IgnoreDirs
	}
	if cfg.BuildDir == "" {
		cfg.BuildDir = defaults.BuildDir
	}
	if cfg.Binary == "" {
		cfg.Binary = defaults.Binary
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
}
