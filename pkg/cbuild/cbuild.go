// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cbuild defines the public interface for cbuild, an incremental
// build engine for C projects that infers its dependency graph from
// #include directives instead of a build description file.
package cbuild

import (
	"context"
	"errors"
	"io"
)

// Error types for the cbuild API.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrToolFailure   = errors.New("compiler invocation failed")
)

// Config configures a Builder instance. Zero values take the documented
// defaults.
type Config struct {
	ProjectRoot string    // Project directory (default ".")
	CC          string    // Compiler executable (default "gcc")
	CFlags      string    // Compile flags; -I entries become include search dirs
	LDFlags     string    // Link flags
	IgnoreDirs  []string  // Directory names excluded from source discovery (default .git, .ccls-cache)
	BuildDir    string    // Output directory (default "build")
	Binary      string    // Final binary name (default "main")
	Out         io.Writer // Progress output (default os.Stdout)
}

// Result holds the outcome of a Builder.Build invocation.
type Result struct {
	Compiled []string // Sources compiled this run, in discovery order
	Linked   bool     // Whether the link step ran
	UpToDate bool     // True when nothing needed compiling or linking
}

// Builder performs incremental builds of a C project.
type Builder interface {
	// Build discovers sources, recompiles every stale translation unit,
	// and links when anything was compiled or the binary is missing.
	// Staleness is recomputed from filesystem modification times on every
	// call; nothing is cached between calls.
	Build(ctx context.Context) (*Result, error)
}
