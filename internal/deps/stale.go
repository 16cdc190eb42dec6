// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package deps

import (
	"os"
	"path/filepath"
	"time"
)

// Evaluator decides staleness of translation units against a completed
// dependency graph. File modification times are read once per file and
// cached for the lifetime of the evaluator, which matches the single-build
// lifetime of the graph itself.
type Evaluator struct {
	Root  string
	Graph Graph

	mtimes map[string]time.Time
}

// NewEvaluator returns an Evaluator over the given canonical root and graph.
func NewEvaluator(root string, g Graph) *Evaluator {
	return &Evaluator{
		Root:   root,
		Graph:  g,
		mtimes: make(map[string]time.Time),
	}
}

// Stale reports whether file's artifact, last written at artifact (zero if
// the artifact does not exist), is outdated. A unit is stale when its own
// modification time is strictly newer than the artifact, or when any
// transitive dependency is newer than that same artifact timestamp. The
// threshold never changes as the walk descends; only the file compared
// against it does.
func (e *Evaluator) Stale(file string, artifact time.Time) bool {
	if e.mtime(file).After(artifact) {
		return true
	}
	visited := map[string]bool{file: true}
	return e.anyDepNewer(file, artifact, visited)
}

// anyDepNewer walks the dependency lists depth-first. The visited set both
// guards against include cycles (a revisited file counts as not newer) and
// collapses diamonds so shared headers are checked once per query.
func (e *Evaluator) anyDepNewer(file string, artifact time.Time, visited map[string]bool) bool {
	for _, dep := range e.Graph[file] {
		if visited[dep] {
			continue
		}
		visited[dep] = true

		if e.mtime(dep).After(artifact) {
			return true
		}
		if e.anyDepNewer(dep, artifact, visited) {
			return true
		}
	}
	return false
}

// mtime returns the cached modification time of a project-relative file.
// A file that cannot be stat'd reports the zero time, which is never newer
// than any artifact.
func (e *Evaluator) mtime(file string) time.Time {
	if t, ok := e.mtimes[file]; ok {
		return t
	}
	var t time.Time
	if info, err := os.Stat(filepath.Join(e.Root, file)); err == nil {
		t = info.ModTime()
	}
	e.mtimes[file] = t
	return t
}
