package megarepo

import (
	"context"

	"github.com/utkarsh5026/megadvc/pkg/common/fileops"
	"github.com/utkarsh5026/megadvc/pkg/remote"
	"github.com/utkarsh5026/megadvc/pkg/snapshot"
)

// DefaultJobs is the number of concurrent uploads used when none is given.
const DefaultJobs = 4

// PushOptions configures Push.
type PushOptions struct {
	// Jobs bounds concurrent uploads. Zero or less means DefaultJobs.
	Jobs int
}

// PushResult reports what Push sent to the remote.
type PushResult struct {
	Pushed  []string
	Removed []string

	// Dropped holds staged additions that no longer exist locally. They are
	// taken out of the staging area instead of being uploaded.
	Dropped []string
}

// Push uploads the staged additions, deletes the staged removals on the
// remote, clears the staging area and publishes the updated lock.
//
// Staged additions whose file was deleted since staging are dropped rather
// than uploaded, and reported in PushResult.Dropped. If any remote command
// fails the staging area is kept, so the push can be retried; files already
// uploaded are uploaded again.
func (r *Repository) Push(ctx context.Context, in PushOptions) (*PushResult, error) {
	rem, err := r.requireRemote("push")
	if err != nil {
		return nil, err
	}

	lock, err := r.loadLock()
	if err != nil {
		return nil, err
	}

	jobs := in.Jobs
	if jobs <= 0 {
		jobs = DefaultJobs
	}

	dropped, err := r.dropVanished(lock)
	if err != nil {
		return nil, err
	}

	result := &PushResult{Pushed: lock.Staged(), Removed: lock.ToRemove(), Dropped: dropped}

	if err := remote.Extend(ctx, rem, result.Pushed, jobs); err != nil {
		return nil, err
	}
	for _, file := range result.Removed {
		if err := rem.Remove(ctx, file); err != nil {
			return nil, err
		}
	}

	lock.ClearStaged()
	if err := r.saveLock(lock); err != nil {
		return nil, err
	}
	if err := rem.PushMarker(ctx, r.root.LockPath()); err != nil {
		return nil, err
	}

	r.log.Info("push complete", "pushed", len(result.Pushed), "removed", len(result.Removed))
	return result, nil
}

// dropVanished unstages every staged addition whose file is gone.
func (r *Repository) dropVanished(lock *snapshot.Local) ([]string, error) {
	dropped := make([]string, 0)
	for _, file := range lock.Staged() {
		ok, err := fileops.Exists(file)
		if err != nil {
			return nil, newIOError("push", file, err)
		}
		if ok {
			continue
		}
		lock.Unstage(file)
		dropped = append(dropped, file)
		r.log.Warn("staged file no longer exists, dropping it", "path", file)
	}
	return dropped, nil
}
