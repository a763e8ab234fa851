package megarepo

import (
	"context"
	"errors"
	"os"

	"github.com/utkarsh5026/megadvc/pkg/common/fileops"
	"github.com/utkarsh5026/megadvc/pkg/options"
	"github.com/utkarsh5026/megadvc/pkg/repository/ignore"
	"github.com/utkarsh5026/megadvc/pkg/repository/scpath"
	"github.com/utkarsh5026/megadvc/pkg/snapshot"
)

// InitOptions configures Init.
type InitOptions struct {
	// Local is the directory to track. It must exist.
	Local string

	// RemoteDir is the remote directory to mirror to. Empty means the base
	// name of the local directory.
	RemoteDir string

	// Ignore holds extra patterns excluded from scans, stored as local.ignore.
	Ignore []string

	// Connect builds the remote checked for an existing lock. Nil skips the
	// check.
	Connect Connector
}

// Init creates a repository: it scans the local directory, writes the lock
// and the options, then asks the remote whether it already holds a
// repository.
//
// A RemoteExistsError is returned after the local metadata is written; the
// caller decides whether to keep it.
func Init(ctx context.Context, in InitOptions, opts ...Option) (*Repository, error) {
	root, err := scpath.NewRepositoryPath(in.Local)
	if err != nil {
		return nil, newIOError("init", in.Local, err)
	}

	isDir, err := fileops.IsDirectory(root.String())
	if err != nil {
		return nil, newIOError("init", root.String(), err)
	}
	if !isDir {
		return nil, newInvalidInputError("init", root.String()+" is not a directory")
	}

	exists, err := fileops.AnyExist(root.MetadataPaths()...)
	if err != nil {
		return nil, newIOError("init", root.String(), err)
	}
	if exists {
		return nil, newExistsError(root.String())
	}

	matcher, err := ignore.ForRepository(in.Ignore)
	if err != nil {
		return nil, newInvalidInputError("init", err.Error())
	}

	lock, err := snapshot.FromPath(root.String(), snapshot.WithIgnore(matcher.IsIgnored))
	if err != nil {
		return nil, err
	}

	remoteDir := in.RemoteDir
	if remoteDir == "" {
		remoteDir = root.Name()
	}
	o := options.New(remoteDir, root.String())
	o.Local.Ignore = in.Ignore

	if err := writeLock(root.LockPath(), lock); err != nil {
		return nil, err
	}
	if err := o.Save(root.OptionsPath()); err != nil {
		// A lock without options would block both Init and Open.
		if rmErr := os.Remove(root.LockPath()); rmErr != nil {
			return nil, errors.Join(err, newIOError("init", root.LockPath(), rmErr))
		}
		return nil, err
	}

	r, err := newRepository(root, o, in.Connect, opts...)
	if err != nil {
		return nil, err
	}
	r.log.Info("repository initialized", "root", root.String(), "remote", remoteDir, "files", len(lock.Files()))

	if r.remote == nil {
		return r, nil
	}

	remoteLock, err := r.remote.LockExists(ctx)
	if err != nil {
		return r, err
	}
	if remoteLock {
		return r, newRemoteExistsError(remoteDir)
	}
	return r, nil
}
