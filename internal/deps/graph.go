// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package deps

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Graph maps each tracked file (project-relative path) to its direct
// in-project dependencies. Every path that appears in a dependency list is
// also present as a key: the graph is closed under the include relation.
type Graph map[string][]string

// Collect builds the dependency graph covering files and their full
// transitive closure. Each file is scanned at most once; a file already
// present as a key is skipped, which also terminates include cycles.
func Collect(r *Resolver, files []string) Graph {
	g := make(Graph)
	g.collect(r, files)
	return g
}

func (g Graph) collect(r *Resolver, files []string) {
	for _, file := range files {
		if _, ok := g[file]; ok {
			continue
		}

		deps := scanFile(r, file)
		g[file] = deps
		log.Debug("scanned", "file", file, "deps", len(deps))

		g.collect(r, deps)
	}
}

// scanFile extracts and resolves the direct dependencies of one file. An
// unreadable file (e.g. a quoted include of a path that does not exist yet)
// contributes an empty dependency list rather than an error; the compiler
// is the authority on whether the file is actually required.
func scanFile(r *Resolver, file string) []string {
	f, err := os.Open(filepath.Join(r.Root, file))
	if err != nil {
		log.Debug("skipping unreadable file", "file", file, "err", err)
		return nil
	}
	defer f.Close()

	return r.Resolve(file, ExtractIncludes(f))
}
