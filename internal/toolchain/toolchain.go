// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package toolchain invokes the external compiler, linker, and built binary
// as synchronous child processes rooted at the project directory.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// ErrCommandFailed is returned when an invoked tool exits with a non-zero
// status. Any such failure is fatal to the build; partially written objects
// are left in place for the next run to reconsider.
var ErrCommandFailed = errors.New("command failed")

// Tool runs external commands from a fixed working directory, echoing each
// command line before it runs. Output streams through to Stdout/Stderr.
type Tool struct {
	Dir    string    // Working directory for every invocation
	Stdout io.Writer // Defaults to os.Stdout
	Stderr io.Writer // Defaults to os.Stderr
}

// Run executes a single command and waits for it. A non-zero exit status is
// reported as ErrCommandFailed with the exit code.
func (t *Tool) Run(ctx context.Context, name string, args ...string) error {
	stdout, stderr := t.Stdout, t.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	fmt.Fprintf(stdout, "> %s\n", shellquote.Join(append([]string{name}, args...)...))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = t.Dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: %s exited with %d", ErrCommandFailed, name, exitErr.ExitCode())
		}
		return fmt.Errorf("%w: %s: %v", ErrCommandFailed, name, err)
	}
	return nil
}

// Compile invokes `cc <cflags> -c <source> -o <object>`.
func (t *Tool) Compile(ctx context.Context, cc string, cflags []string, source, object string) error {
	args := append(append([]string{}, cflags...), "-c", source, "-o", object)
	return t.Run(ctx, cc, args...)
}

// Link invokes `cc <ldflags> <objects...> -o <binary>`.
func (t *Tool) Link(ctx context.Context, cc string, ldflags, objects []string, binary string) error {
	args := append(append([]string{}, ldflags...), objects...)
	args = append(args, "-o", binary)
	return t.Run(ctx, cc, args...)
}
