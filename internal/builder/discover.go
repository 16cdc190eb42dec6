// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package builder

import (
	"io/fs"
	"path/filepath"
)

const sourceExt = ".c"

// discoverSources walks the project root and returns every .c file as a
// root-relative path, in walk order. A directory whose name is in the
// ignore set is skipped at any depth; unreadable entries are skipped too.
func discoverSources(root string, ignore map[string]bool) ([]string, error) {
	var sources []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if d.IsDir() {
			if path != root && ignore[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != sourceExt {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		sources = append(sources, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sources, nil
}

// effectiveIgnores derives the ignore set for one build: the configured
// directory names plus the build output directory, so objects are never
// mistaken for sources. The caller's configuration is never mutated.
func effectiveIgnores(ignoreDirs []string, buildDir string) map[string]bool {
	ignore := make(map[string]bool, len(ignoreDirs)+1)
	for _, dir := range ignoreDirs {
		ignore[dir] = true
	}
	ignore[buildDir] = true
	return ignore
}
