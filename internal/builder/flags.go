// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/petar-djukic/cbuild/internal/config"
)

// parseCFlags tokenizes a compile-flags string and extracts the include
// search directories. Both `-I dir` and `-Idir` are recognized; a trailing
// bare `-I` is a configuration error. The full token list is returned for
// the compiler invocation.
func parseCFlags(cflags string) (tokens, searchDirs []string, err error) {
	tokens, err = shellquote.Split(cflags)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: cflags: %v", config.ErrInvalid, err)
	}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok == "-I" {
			if i+1 >= len(tokens) {
				return nil, nil, fmt.Errorf("%w: expected a directory after -I: %s", config.ErrInvalid, cflags)
			}
			i++
			searchDirs = append(searchDirs, tokens[i])
			continue
		}
		if strings.HasPrefix(tok, "-I") {
			searchDirs = append(searchDirs, tok[2:])
		}
	}

	return tokens, searchDirs, nil
}

// parseLDFlags tokenizes a link-flags string.
func parseLDFlags(ldflags string) ([]string, error) {
	tokens, err := shellquote.Split(ldflags)
	if err != nil {
		return nil, fmt.Errorf("%w: ldflags: %v", config.ErrInvalid, err)
	}
	return tokens, nil
}
