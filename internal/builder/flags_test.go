// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/cbuild/internal/config"
)

func TestParseCFlags(t *testing.T) {
	tests := []struct {
		name       string
		cflags     string
		wantTokens []string
		wantDirs   []string
	}{
		{
			name:       "empty",
			cflags:     "",
			wantTokens: nil,
			wantDirs:   nil,
		},
		{
			name:       "separate form",
			cflags:     "-Wall -I include -O2",
			wantTokens: []string{"-Wall", "-I", "include", "-O2"},
			wantDirs:   []string{"include"},
		},
		{
			name:       "attached form",
			cflags:     "-Iinclude -Ivendor/include",
			wantTokens: []string{"-Iinclude", "-Ivendor/include"},
			wantDirs:   []string{"include", "vendor/include"},
		},
		{
			name:       "mixed forms preserve order",
			cflags:     "-Ifirst -I second -Ithird",
			wantTokens: []string{"-Ifirst", "-I", "second", "-Ithird"},
			wantDirs:   []string{"first", "second", "third"},
		},
		{
			name:       "quoted directory with space",
			cflags:     `-I "my include"`,
			wantTokens: []string{"-I", "my include"},
			wantDirs:   []string{"my include"},
		},
		{
			name:       "no include flags",
			cflags:     "-Wall -Werror -g",
			wantTokens: []string{"-Wall", "-Werror", "-g"},
			wantDirs:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, dirs, err := parseCFlags(tt.cflags)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTokens, tokens)
			assert.Equal(t, tt.wantDirs, dirs)
		})
	}
}

func TestParseCFlags_DanglingInclude(t *testing.T) {
	_, _, err := parseCFlags("-Wall -I")

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "expected a directory after -I")
}

func TestParseCFlags_UnbalancedQuote(t *testing.T) {
	_, _, err := parseCFlags(`-I "unterminated`)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestParseLDFlags(t *testing.T) {
	tokens, err := parseLDFlags("-lm -pthread")

	require.NoError(t, err)
	assert.Equal(t, []string{"-lm", "-pthread"}, tokens)
}
