package megarepo

import (
	"context"

	"github.com/utkarsh5026/megadvc/pkg/snapshot"
)

// StatusOptions configures Status.
type StatusOptions struct {
	// Persist writes the re-scanned snapshot back to the lock.
	Persist bool
}

// Status is the outcome of a re-scan.
type Status struct {
	Root               string
	Remote             string
	Generation         uint64
	PreviousGeneration uint64
	Staged             []string
	ToRemove           []string
	Diff               snapshot.Diff
}

// Status re-scans the working tree and compares it with the snapshot held
// in the lock. Pending staged changes are carried over to the new snapshot.
func (r *Repository) Status(ctx context.Context, in StatusOptions) (*Status, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lock, err := r.loadLock()
	if err != nil {
		return nil, err
	}

	previous, err := lock.Update(r.scanOptions()...)
	if err != nil {
		return nil, err
	}

	st := &Status{
		Root:               r.root.String(),
		Remote:             r.opts.RemotePath(),
		Generation:         lock.Generation(),
		PreviousGeneration: previous.Generation(),
		Staged:             lock.Staged(),
		ToRemove:           lock.ToRemove(),
		Diff:               snapshot.Compare(lock, previous),
	}

	if in.Persist {
		if err := r.saveLock(lock); err != nil {
			return nil, err
		}
	}

	r.log.Debug("status computed",
		"generation", st.Generation,
		"added", len(st.Diff.Added),
		"deleted", len(st.Diff.Deleted),
		"moved", len(st.Diff.Moved),
		"persisted", in.Persist)
	return st, nil
}
