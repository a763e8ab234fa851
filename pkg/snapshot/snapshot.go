// Package snapshot records the state of a directory tree as a mapping from
// content hash to path, and compares two such records.
//
// Because files are keyed by content, a rename shows up as the same hash at a
// different path (a move), while rewriting a file in place shows up as one
// hash disappearing and another appearing (a delete plus an add). Identical
// files collapse onto a single entry.
//
// Two concrete snapshots exist: Local, which owns a root directory, can be
// re-scanned and carries the staging area, and Remote, a read-only record
// used as a comparison target.
package snapshot

import (
	"sort"
)

// Snapshot is anything that can take part in a diff.
type Snapshot interface {
	// Files returns the hash to path mapping. Callers must not modify it.
	Files() map[Hash]string
	// Generation returns how many times the snapshot has been re-scanned.
	Generation() uint64
}

// Move is a file whose content is present in both snapshots under different paths.
type Move struct {
	From string // path in the previous snapshot
	To   string // path in the current snapshot
}

// Diff is the full comparison of a current snapshot against a previous one.
type Diff struct {
	Added     []string
	Deleted   []string
	Moved     []Move
	Unchanged int
}

// Empty reports whether the two compared snapshots hold the same content at
// the same paths.
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Deleted) == 0 && len(d.Moved) == 0
}

// Moved returns every hash present in both snapshots whose path changed.
// Each hash is reported on its own, so two files that swapped places yield
// two moves.
func Moved(current, previous Snapshot) []Move {
	files := current.Files()
	prevFiles := previous.Files()

	moves := make([]Move, 0)
	for hash, path := range files {
		prevPath, ok := prevFiles[hash]
		if ok && prevPath != path {
			moves = append(moves, Move{From: prevPath, To: path})
		}
	}

	sort.Slice(moves, func(i, j int) bool {
		if moves[i].From != moves[j].From {
			return moves[i].From < moves[j].From
		}
		return moves[i].To < moves[j].To
	})
	return moves
}

// Deleted returns the previous path of every hash that is absent from current.
func Deleted(current, previous Snapshot) []string {
	return missingFrom(current.Files(), previous.Files())
}

// Added returns the current path of every hash that is absent from previous.
func Added(current, previous Snapshot) []string {
	return missingFrom(previous.Files(), current.Files())
}

// Compare computes added, deleted and moved files of current relative to previous.
func Compare(current, previous Snapshot) Diff {
	d := Diff{
		Added:   Added(current, previous),
		Deleted: Deleted(current, previous),
		Moved:   Moved(current, previous),
	}

	prevFiles := previous.Files()
	for hash, path := range current.Files() {
		if prevPath, ok := prevFiles[hash]; ok && prevPath == path {
			d.Unchanged++
		}
	}
	return d
}

// missingFrom returns the sorted paths of entries in src whose hash is not a key of dst.
func missingFrom(dst, src map[Hash]string) []string {
	paths := make([]string, 0)
	for hash, path := range src {
		if _, ok := dst[hash]; !ok {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths
}
