// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package deps discovers the header dependency graph of a C project by
// scanning #include directives, and decides per translation unit whether
// its compiled artifact is stale.
package deps

import (
	"bufio"
	"io"
	"strings"
)

// RefKind distinguishes the two include delimiter styles.
type RefKind int

const (
	// Quoted is an include of the form #include "header.h".
	Quoted RefKind = iota
	// AngleBracket is an include of the form #include <header.h>.
	AngleBracket
)

// IncludeRef is a single include directive found in a source file. Path is
// the literal text between the delimiters, untouched.
type IncludeRef struct {
	Kind RefKind
	Path string
}

const includeToken = "#include"

// ExtractIncludes scans source text line by line and returns every include
// directive in file order. The scan is purely textual: directives inside
// comments or inactive preprocessor branches are still reported, and a
// directive whose closing delimiter is missing on the same line is skipped.
func ExtractIncludes(r io.Reader) []IncludeRef {
	var refs []IncludeRef

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, includeToken) {
			continue
		}
		rest := strings.TrimSpace(line[len(includeToken):])
		if rest == "" {
			continue
		}

		var kind RefKind
		var closing byte
		switch rest[0] {
		case '"':
			kind = Quoted
			closing = '"'
		case '<':
			kind = AngleBracket
			closing = '>'
		default:
			continue
		}

		end := strings.IndexByte(rest[1:], closing)
		if end < 0 {
			continue
		}

		refs = append(refs, IncludeRef{Kind: kind, Path: rest[1 : 1+end]})
	}

	return refs
}
