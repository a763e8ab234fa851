package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/utkarsh5026/megadvc/pkg/options"
	"github.com/utkarsh5026/megadvc/pkg/remote"
	"github.com/utkarsh5026/megadvc/pkg/repository/megarepo"
)

// fakeRemote records remote calls instead of running mega-cmd.
type fakeRemote struct {
	mu         sync.Mutex
	pushed     []string
	removed    []string
	markers    []string
	lockExists bool
}

func (f *fakeRemote) Push(_ context.Context, file string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushed = append(f.pushed, file)
	return nil
}

func (f *fakeRemote) Remove(_ context.Context, file string) error {
	f.removed = append(f.removed, file)
	return nil
}

func (f *fakeRemote) LockExists(context.Context) (bool, error) {
	return f.lockExists, nil
}

func (f *fakeRemote) PushMarker(_ context.Context, file string) error {
	f.markers = append(f.markers, file)
	return nil
}

// TestHelper provides utilities for CLI command testing
type TestHelper struct {
	t      *testing.T
	dir    string
	Remote *fakeRemote
}

// NewTestHelper creates a temp directory and routes remote calls to a fake
func NewTestHelper(t *testing.T) *TestHelper {
	t.Helper()

	th := &TestHelper{t: t, dir: t.TempDir(), Remote: &fakeRemote{}}

	orig := connect
	connect = func(*options.Options) remote.Remote { return th.Remote }
	t.Cleanup(func() { connect = orig })

	return th
}

// Dir returns the repository directory
func (th *TestHelper) Dir() string {
	return th.dir
}

// Path returns the canonical path of a file in the repository
func (th *TestHelper) Path(rel string) string {
	th.t.Helper()
	root, err := filepath.EvalSymlinks(th.dir)
	if err != nil {
		th.t.Fatalf("failed to resolve %s: %v", th.dir, err)
	}
	return filepath.Join(root, filepath.FromSlash(rel))
}

// WriteFile creates a test file with content
func (th *TestHelper) WriteFile(rel, content string) string {
	th.t.Helper()
	path := filepath.Join(th.dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		th.t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		th.t.Fatalf("failed to write file: %v", err)
	}
	return path
}

// Run executes the CLI against the test directory and returns its output
func (th *TestHelper) Run(args ...string) (string, error) {
	th.t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"-C", th.dir}, args...))

	err := cmd.Execute()
	return out.String(), err
}

// MustRun executes the CLI and fails the test on error
func (th *TestHelper) MustRun(args ...string) string {
	th.t.Helper()
	out, err := th.Run(args...)
	if err != nil {
		th.t.Fatalf("mdvc %v failed: %v\n%s", args, err, out)
	}
	return out
}

// Open opens the test repository directly
func (th *TestHelper) Open() *megarepo.Repository {
	th.t.Helper()
	repo, err := megarepo.Open(th.dir, nil)
	if err != nil {
		th.t.Fatalf("failed to open repository: %v", err)
	}
	return repo
}
