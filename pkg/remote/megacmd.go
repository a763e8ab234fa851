package remote

import (
	"bufio"
	"context"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/utkarsh5026/megadvc/pkg/common/logger"
)

// Program names of the storage client.
const (
	PutProgram    = "mega-put"
	RemoveProgram = "mega-rm"
	ListProgram   = "mega-ls"
)

// LockName is the name of the lock file looked up on the remote root.
const LockName = ".mega.lock"

// MegaCmd talks to the storage service through the mega-cmd client tools.
//
// Local paths are mapped onto the remote by stripping the local root and
// joining the remainder onto the remote root with forward slashes.
type MegaCmd struct {
	localRoot  string
	remoteRoot string
	runner     Runner
	log        *slog.Logger
}

// Option configures a MegaCmd.
type Option func(*MegaCmd)

// WithRunner replaces the command runner.
func WithRunner(r Runner) Option {
	return func(m *MegaCmd) {
		m.runner = r
	}
}

// WithLogger sets the logger commands are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(m *MegaCmd) {
		m.log = l
	}
}

// NewMegaCmd creates a client mirroring localRoot to remoteRoot.
func NewMegaCmd(localRoot, remoteRoot string, opts ...Option) *MegaCmd {
	m := &MegaCmd{
		localRoot:  filepath.Clean(localRoot),
		remoteRoot: remoteRoot,
		runner:     ExecRunner{},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.log == nil {
		m.log = logger.Component(nil, "remote")
	}
	return m
}

// LocalRoot returns the local directory being mirrored.
func (m *MegaCmd) LocalRoot() string {
	return m.localRoot
}

// RemoteRoot returns the remote directory files are mirrored to.
func (m *MegaCmd) RemoteRoot() string {
	return m.remoteRoot
}

// RemotePath maps a local file onto its remote path. The file is made
// absolute and symlinks are resolved before it is checked against the local
// root.
func (m *MegaCmd) RemotePath(file string) (string, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return "", newResolveError(err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", newResolveError(err)
	}

	root := m.localRoot
	if r, err := filepath.EvalSymlinks(root); err == nil {
		root = r
	}

	rel, err := filepath.Rel(root, resolved)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", newOutsideRootError(file, m.localRoot)
	}

	return path.Join(m.remoteRoot, filepath.ToSlash(rel)), nil
}

// Push implements Remote with "mega-put -c <local> <remote>".
func (m *MegaCmd) Push(ctx context.Context, file string) error {
	dst, err := m.RemotePath(file)
	if err != nil {
		return err
	}
	return m.run(ctx, "push", PutProgram, "-c", file, dst)
}

// Remove implements Remote with "mega-rm -r <remote>".
func (m *MegaCmd) Remove(ctx context.Context, file string) error {
	dst, err := m.remotePathLexical(file)
	if err != nil {
		return err
	}
	return m.run(ctx, "remove", RemoveProgram, "-r", dst)
}

// LockExists implements Remote by listing the remote root with "mega-ls".
//
// mega-ls exits non-zero when the remote root does not exist yet, which is
// the usual state before the first push, so only the listing is inspected:
// no entry named LockName means no lock. Failing to start mega-ls is still
// an error.
func (m *MegaCmd) LockExists(ctx context.Context) (bool, error) {
	args := []string{m.remoteRoot}
	res, err := m.runner.Run(ctx, ListProgram, args...)
	if err != nil {
		return false, newCommandError("list", append([]string{ListProgram}, args...), res, err)
	}
	if res.ExitCode != 0 {
		m.log.Debug("remote listing failed, assuming no lock",
			"dir", m.remoteRoot, "status", res.ExitCode, "stderr", strings.TrimSpace(res.Stderr))
	}

	for _, name := range listing(res.Stdout) {
		if path.Base(name) == LockName {
			return true, nil
		}
	}
	return false, nil
}

// PushMarker implements Remote by uploading file as the remote lock file.
func (m *MegaCmd) PushMarker(ctx context.Context, file string) error {
	return m.run(ctx, "push", PutProgram, "-c", file, path.Join(m.remoteRoot, LockName))
}

// listing splits mega-ls output into entry names.
func listing(stdout string) []string {
	var names []string
	sc := bufio.NewScanner(strings.NewReader(stdout))
	for sc.Scan() {
		if name := strings.TrimSpace(sc.Text()); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// remotePathLexical maps file without touching the filesystem, for files that
// may no longer exist locally.
func (m *MegaCmd) remotePathLexical(file string) (string, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return "", newResolveError(err)
	}
	rel, err := filepath.Rel(m.localRoot, abs)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", newOutsideRootError(file, m.localRoot)
	}
	return path.Join(m.remoteRoot, filepath.ToSlash(rel)), nil
}

func (m *MegaCmd) run(ctx context.Context, op, program string, args ...string) error {
	m.log.Debug("running remote command", "program", program, "args", args)

	res, err := m.runner.Run(ctx, program, args...)
	if err != nil || res.ExitCode != 0 {
		return newCommandError(op, append([]string{program}, args...), res, err)
	}
	return nil
}
