// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package builder orchestrates one build invocation: source discovery,
// dependency graph construction, staleness evaluation, and compiler/linker
// invocation. All state is rebuilt from the filesystem on every run; there
// is no persisted cache between invocations.
package builder

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"github.com/petar-djukic/cbuild/internal/config"
	"github.com/petar-djukic/cbuild/internal/deps"
)

const objectExt = ".o"

// Toolchain abstracts compiler and linker invocation so the orchestrator is
// testable without a real compiler.
type Toolchain interface {
	Compile(ctx context.Context, cc string, cflags []string, source, object string) error
	Link(ctx context.Context, cc string, ldflags, objects []string, binary string) error
}

// Deps holds injected dependencies for the runner.
type Deps struct {
	Config config.Config // Validated configuration
	Tool   Toolchain     // Compiler/linker invoker rooted at the project
	Out    io.Writer     // Progress output; defaults to os.Stdout
}

// Result holds the outcome of one build invocation.
type Result struct {
	Compiled []string // Sources compiled this run, in discovery order
	Linked   bool     // Whether the link step ran
	UpToDate bool     // True when no compile or link was needed
}

// Runner performs builds for a fixed configuration.
type Runner struct {
	deps Deps
}

// NewRunner creates a Runner with the given dependencies.
func NewRunner(deps Deps) *Runner {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	return &Runner{deps: deps}
}

var headline = color.New(color.FgCyan)

// Build runs one incremental build: discover sources, close the dependency
// graph over them, recompile every stale translation unit, and link when
// anything was compiled or the binary is missing.
func (r *Runner) Build(ctx context.Context) (*Result, error) {
	cfg := r.deps.Config
	result := &Result{}

	root, err := deps.CanonicalRoot(cfg.ProjectRoot)
	if err != nil {
		return result, fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}

	cflags, searchDirs, err := parseCFlags(cfg.CFlags)
	if err != nil {
		return result, err
	}
	ldflags, err := parseLDFlags(cfg.LDFlags)
	if err != nil {
		return result, err
	}

	ignore := effectiveIgnores(cfg.IgnoreDirs, cfg.BuildDir)
	sources, err := discoverSources(root, ignore)
	if err != nil {
		return result, fmt.Errorf("discovering sources: %w", err)
	}
	log.Debug("discovered sources", "count", len(sources), "search_dirs", searchDirs)

	resolver, err := deps.NewResolver(root, searchDirs)
	if err != nil {
		return result, fmt.Errorf("%w: %v", config.ErrInvalid, err)
	}
	graph := deps.Collect(resolver, sources)

	if len(sources) == 0 {
		fmt.Fprintln(r.deps.Out, "No files to compile.")
		result.UpToDate = true
		return result, nil
	}

	eval := deps.NewEvaluator(root, graph)

	var objects []string
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		object := filepath.Join(cfg.BuildDir, strings.TrimSuffix(src, sourceExt)+objectExt)
		objects = append(objects, object)

		if !eval.Stale(src, r.mtime(root, object)) {
			continue
		}

		if len(result.Compiled) == 0 {
			headline.Fprintln(r.deps.Out, "Compiling ..")
		}

		if err := os.MkdirAll(filepath.Dir(filepath.Join(root, object)), 0o755); err != nil {
			return result, fmt.Errorf("creating object directory: %w", err)
		}
		if err := r.deps.Tool.Compile(ctx, cfg.CC, cflags, src, object); err != nil {
			return result, err
		}
		result.Compiled = append(result.Compiled, src)
	}

	binary := filepath.Join(cfg.BuildDir, cfg.Binary)
	_, binErr := os.Stat(filepath.Join(root, binary))
	if binErr != nil || len(result.Compiled) > 0 {
		headline.Fprintln(r.deps.Out, "Linking ..")
		if err := r.deps.Tool.Link(ctx, cfg.CC, ldflags, objects, binary); err != nil {
			return result, err
		}
		result.Linked = true
	} else {
		fmt.Fprintln(r.deps.Out, "All up-to-date")
		result.UpToDate = true
	}

	return result, nil
}

// mtime returns a project-relative file's modification time, or the zero
// time when the file does not exist (maximal staleness).
func (r *Runner) mtime(root, rel string) time.Time {
	info, err := os.Stat(filepath.Join(root, rel))
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
