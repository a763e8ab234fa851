// Package remote drives the storage service that mirrors a repository.
//
// The service is reached only through its command line client; this package
// builds the command lines and turns their outcome into errors. It has no
// knowledge of snapshots or staging.
package remote

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Remote is the set of operations a repository needs from its mirror.
type Remote interface {
	// Push uploads a local file to its counterpart on the remote.
	Push(ctx context.Context, file string) error
	// Remove deletes the remote counterpart of a local file.
	Remove(ctx context.Context, file string) error
	// LockExists reports whether the remote root already holds a lock file.
	LockExists(ctx context.Context) (bool, error)
	// PushMarker uploads file as the lock file of the remote root.
	PushMarker(ctx context.Context, file string) error
}

// Extend pushes every file, running at most jobs uploads at a time. The first
// failure cancels the uploads still pending and is returned.
func Extend(ctx context.Context, r Remote, files []string, jobs int) error {
	if jobs < 1 {
		jobs = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return r.Push(ctx, file)
		})
	}

	return g.Wait()
}
