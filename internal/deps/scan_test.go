// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package deps

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractIncludes_QuotedAndAngle(t *testing.T) {
	src := `#include <stdio.h>
#include "util.h"

int main(void) { return 0; }
`

	refs := ExtractIncludes(strings.NewReader(src))

	require.Len(t, refs, 2)
	assert.Equal(t, IncludeRef{Kind: AngleBracket, Path: "stdio.h"}, refs[0])
	assert.Equal(t, IncludeRef{Kind: Quoted, Path: "util.h"}, refs[1])
}

func TestExtractIncludes_PreservesFileOrder(t *testing.T) {
	src := `#include "c.h"
#include "a.h"
#include "b.h"
`

	refs := ExtractIncludes(strings.NewReader(src))

	require.Len(t, refs, 3)
	assert.Equal(t, "c.h", refs[0].Path)
	assert.Equal(t, "a.h", refs[1].Path)
	assert.Equal(t, "b.h", refs[2].Path)
}

func TestExtractIncludes_LeadingWhitespace(t *testing.T) {
	src := "   \t#include \"indented.h\"\n"

	refs := ExtractIncludes(strings.NewReader(src))

	require.Len(t, refs, 1)
	assert.Equal(t, "indented.h", refs[0].Path)
}

func TestExtractIncludes_SkipsMalformedDirectives(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"missing closing quote", `#include "broken.h`},
		{"missing closing bracket", `#include <broken.h`},
		{"no delimiter", `#include broken.h`},
		{"bare directive", `#include`},
		{"other preprocessor", `#define FOO 1`},
		{"plain code", `int include = 3;`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := ExtractIncludes(strings.NewReader(tt.line + "\n"))
			assert.Empty(t, refs)
		})
	}
}

func TestExtractIncludes_NoCommentAwareness(t *testing.T) {
	// The scan is textual: commented-out and conditionally excluded
	// includes are still extracted.
	src := `// #include "commented.h"
#ifdef NEVER
#include "inactive.h"
#endif
`

	refs := ExtractIncludes(strings.NewReader(src))

	require.Len(t, refs, 1)
	assert.Equal(t, "inactive.h", refs[0].Path)
}

func TestExtractIncludes_EmptyInput(t *testing.T) {
	refs := ExtractIncludes(strings.NewReader(""))
	assert.Empty(t, refs)
}
