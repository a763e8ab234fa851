// Package megarepo implements the repository operations behind the command
// line: init, add, remove, status and push.
//
// A repository is a directory holding two metadata files:
// ┌─ <root>/
// │ ├─ .mega.toml ← options (remote path, local path, ignore patterns)
// │ ├─ .mega.lock ← persisted local snapshot with the staging area
// │ ├─ file1.bin  ← tracked files
// │ └─ ...
//
// Every operation loads the lock, works on the snapshot in memory and writes
// the lock back atomically. No state is shared between calls.
package megarepo

import (
	"log/slog"
	"os"

	"github.com/utkarsh5026/megadvc/pkg/common/fileops"
	"github.com/utkarsh5026/megadvc/pkg/common/logger"
	"github.com/utkarsh5026/megadvc/pkg/options"
	"github.com/utkarsh5026/megadvc/pkg/remote"
	"github.com/utkarsh5026/megadvc/pkg/repository/ignore"
	"github.com/utkarsh5026/megadvc/pkg/repository/scpath"
	"github.com/utkarsh5026/megadvc/pkg/snapshot"
)

// LockMode is the permission the lock file is written with.
const LockMode os.FileMode = 0644

// Connector builds the remote a repository mirrors to from its options.
type Connector func(o *options.Options) remote.Remote

// MegaCmdConnector returns a Connector driving the mega-cmd client tools.
func MegaCmdConnector(opts ...remote.Option) Connector {
	return func(o *options.Options) remote.Remote {
		return remote.NewMegaCmd(o.LocalPath(), o.RemotePath(), opts...)
	}
}

// Option configures a Repository.
type Option func(*Repository)

// WithLogger sets the logger operations are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(r *Repository) {
		r.log = l
	}
}

// Repository is an opened repository.
type Repository struct {
	root    scpath.RepositoryPath
	opts    *options.Options
	remote  remote.Remote
	matcher *ignore.Matcher
	log     *slog.Logger
}

// Open opens the repository rooted at dir. Both metadata files must exist.
// connect may be nil for operations that never reach the remote.
func Open(dir string, connect Connector, opts ...Option) (*Repository, error) {
	root, err := scpath.NewRepositoryPath(dir)
	if err != nil {
		return nil, newIOError("open", dir, err)
	}

	ok, missing, err := fileops.AllExist(root.MetadataPaths()...)
	if err != nil {
		return nil, newIOError("open", root.String(), err)
	}
	if !ok {
		return nil, newAbsentError(root.String(), missing)
	}

	o, err := options.Load(root.OptionsPath())
	if err != nil {
		return nil, err
	}

	return newRepository(root, o, connect, opts...)
}

func newRepository(root scpath.RepositoryPath, o *options.Options, connect Connector, opts ...Option) (*Repository, error) {
	matcher, err := ignore.ForRepository(o.IgnorePatterns())
	if err != nil {
		return nil, newInvalidInputError("ignore", err.Error())
	}

	r := &Repository{
		root:    root,
		opts:    o,
		matcher: matcher,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = logger.Component(nil, pkgName)
	}
	if connect != nil {
		r.remote = connect(o)
	}
	return r, nil
}

// Root returns the canonical repository root.
func (r *Repository) Root() scpath.RepositoryPath {
	return r.root
}

// Options returns the loaded options.
func (r *Repository) Options() *options.Options {
	return r.opts
}

// Snapshot loads the persisted local snapshot.
func (r *Repository) Snapshot() (*snapshot.Local, error) {
	return r.loadLock()
}

func (r *Repository) scanOptions() []snapshot.ScanOption {
	return []snapshot.ScanOption{snapshot.WithIgnore(r.matcher.IsIgnored)}
}

func (r *Repository) loadLock() (*snapshot.Local, error) {
	path := r.root.LockPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newAbsentError(r.root.String(), path)
		}
		return nil, newIOError("load lock", path, err)
	}
	return snapshot.UnmarshalLocal(data)
}

func (r *Repository) saveLock(l *snapshot.Local) error {
	return writeLock(r.root.LockPath(), l)
}

func writeLock(path string, l *snapshot.Local) error {
	data, err := snapshot.MarshalLocal(l)
	if err != nil {
		return err
	}
	if err := fileops.AtomicWrite(path, data, LockMode); err != nil {
		return newIOError("write lock", path, err)
	}
	return nil
}

func (r *Repository) requireRemote(op string) (remote.Remote, error) {
	if r.remote == nil {
		return nil, newInvalidInputError(op, "repository has no remote connection")
	}
	return r.remote, nil
}
