// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package cbuild

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsApplied(t *testing.T) {
	b, err := New(Config{ProjectRoot: t.TempDir()})

	require.NoError(t, err)
	assert.NotNil(t, b)
}

func TestNew_MissingProjectRoot(t *testing.T) {
	_, err := New(Config{ProjectRoot: filepath.Join(t.TempDir(), "missing")})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNew_ProjectRootIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := New(Config{ProjectRoot: file})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

// stubCompiler writes an executable that creates whatever path follows -o,
// standing in for a real cc.
func stubCompiler(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cc-stub")
	script := `#!/bin/sh
while [ $# -gt 0 ]; do
  if [ "$1" = "-o" ]; then shift; : > "$1"; fi
  shift
done
`
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestBuild_EndToEndIdempotence(t *testing.T) {
	root := t.TempDir()
	past := time.Now().Add(-time.Hour)
	for name, content := range map[string]string{
		"src/foo.c": `#include "bar.h"`,
		"src/bar.h": "",
	} {
		full := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
		require.NoError(t, os.Chtimes(full, past, past))
	}

	var out bytes.Buffer
	b, err := New(Config{ProjectRoot: root, CC: stubCompiler(t), Out: &out})
	require.NoError(t, err)

	result, err := b.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("src", "foo.c")}, result.Compiled)
	assert.True(t, result.Linked)
	assert.Contains(t, out.String(), "Compiling ..")
	assert.Contains(t, out.String(), "Linking ..")

	// Second run with no changes performs no tool invocations.
	out.Reset()
	result, err = b.Build(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Compiled)
	assert.False(t, result.Linked)
	assert.True(t, result.UpToDate)
	assert.Contains(t, out.String(), "All up-to-date")

	// Touching the header makes the unit stale again.
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(root, "src", "bar.h"), future, future))

	result, err = b.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("src", "foo.c")}, result.Compiled)
	assert.True(t, result.Linked)
}
