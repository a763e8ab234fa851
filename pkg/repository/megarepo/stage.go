package megarepo

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/utkarsh5026/megadvc/pkg/snapshot"
)

// StageResult reports what a staging call changed.
type StageResult struct {
	// Staged holds the paths newly queued by this call.
	Staged []string
	// Unchanged holds the paths that were already queued.
	Unchanged []string
}

// Add queues paths for the next push.
//
// Every path is resolved and checked before anything is staged: if one is
// missing or outside the repository the whole batch is rejected and the
// lock is left untouched.
func (r *Repository) Add(paths []string) (*StageResult, error) {
	return r.stage("add", paths, (*snapshot.Local).StageAdd)
}

// Remove queues paths for removal from the remote. The same all-or-nothing
// validation as Add applies.
func (r *Repository) Remove(paths []string) (*StageResult, error) {
	return r.stage("remove", paths, (*snapshot.Local).StageRemove)
}

func (r *Repository) stage(op string, paths []string, apply func(*snapshot.Local, string) bool) (*StageResult, error) {
	if len(paths) == 0 {
		return nil, newInvalidInputError(op, "no paths given")
	}

	lock, err := r.loadLock()
	if err != nil {
		return nil, err
	}

	resolved := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := r.resolve(op, p)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, abs)
	}

	result := &StageResult{Staged: []string{}, Unchanged: []string{}}
	for _, abs := range resolved {
		if apply(lock, abs) {
			result.Staged = append(result.Staged, abs)
		} else {
			result.Unchanged = append(result.Unchanged, abs)
		}
	}

	if err := r.saveLock(lock); err != nil {
		return nil, err
	}

	r.log.Info("staging updated", "op", op, "staged", len(result.Staged), "unchanged", len(result.Unchanged))
	return result, nil
}

// resolve turns a user path into the canonical absolute path the scanner
// records for it.
func (r *Repository) resolve(op, p string) (string, error) {
	abs, err := r.root.Resolve(p)
	if err != nil {
		return "", newIOError(op, p, err)
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", newFileAbsentError(op, p, err)
		}
		return "", newIOError(op, p, err)
	}

	if !r.root.Contains(canonical) {
		return "", newOutsideRootError(op, p, r.root.String())
	}
	return canonical, nil
}
