// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package deps

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolver maps include references to project-relative file paths. Only
// references whose resolved location lies under Root are kept; everything
// else (system headers, headers without a configured search directory) is
// the compiler's concern and is silently dropped.
type Resolver struct {
	// Root is the canonical project root: absolute, symlinks resolved,
	// no trailing separator.
	Root string
	// SearchDirs are extra include directories, tried in order. Relative
	// entries are interpreted relative to Root.
	SearchDirs []string
}

// NewResolver canonicalizes root and returns a Resolver over it.
func NewResolver(root string, searchDirs []string) (*Resolver, error) {
	canonical, err := CanonicalRoot(root)
	if err != nil {
		return nil, err
	}
	return &Resolver{Root: canonical, SearchDirs: searchDirs}, nil
}

// CanonicalRoot makes root absolute, resolves symlinks, and strips any
// trailing separator. All containment and relative-path arithmetic in this
// package assumes a root in this form.
func CanonicalRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving project root %q: %w", root, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolving project root %q: %w", root, err)
	}
	return strings.TrimSuffix(resolved, string(os.PathSeparator)), nil
}

// Resolve translates the include references of fromFile (a project-relative
// path) into project-relative dependency paths, dropping references that do
// not resolve inside the project root. Duplicates are removed; first
// occurrence order is preserved.
func (r *Resolver) Resolve(fromFile string, refs []IncludeRef) []string {
	var deps []string
	seen := make(map[string]bool)

	fromDir := filepath.Dir(fromFile)

	for _, ref := range refs {
		if ref.Kind == Quoted {
			// Quoted includes are matched structurally relative to the
			// including file; existence is not checked.
			candidate := realPath(filepath.Join(r.Root, fromDir, ref.Path))
			if rel, ok := r.relative(candidate); ok {
				if !seen[rel] {
					seen[rel] = true
					deps = append(deps, rel)
				}
				continue
			}
		}

		for _, dir := range r.SearchDirs {
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(r.Root, dir)
			}
			candidate := filepath.Join(dir, ref.Path)
			if _, err := os.Stat(candidate); err != nil {
				continue
			}
			if rel, ok := r.relative(realPath(candidate)); ok {
				if !seen[rel] {
					seen[rel] = true
					deps = append(deps, rel)
				}
				break
			}
		}
	}

	return deps
}

// relative returns path relative to the root and true when path lies under
// the root. path must already be canonical.
func (r *Resolver) relative(path string) (string, bool) {
	prefix := r.Root + string(os.PathSeparator)
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}
	return path[len(prefix):], true
}

// realPath resolves symlinks in path. Unlike filepath.EvalSymlinks it
// tolerates a nonexistent suffix: the longest existing ancestor is resolved
// and the remainder is appended, so containment checks work for paths that
// are never created.
func realPath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	clean := filepath.Clean(path)
	parent := filepath.Dir(clean)
	if parent == clean {
		return clean
	}
	return filepath.Join(realPath(parent), filepath.Base(clean))
}
