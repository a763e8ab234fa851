package main

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scerr "github.com/utkarsh5026/megadvc/pkg/common/err"
	"github.com/utkarsh5026/megadvc/pkg/repository/megarepo"
	"github.com/utkarsh5026/megadvc/pkg/repository/scpath"
)

func TestInitCommand(t *testing.T) {
	th := NewTestHelper(t)
	th.WriteFile("a.bin", "a")

	out := th.MustRun("init", "--remote-dir", "backup/set", "--ignore", "*.tmp")

	assert.Contains(t, out, "Initialized repository")
	assert.Contains(t, out, "backup/set")
	assert.Contains(t, out, "1 files tracked")
	assert.FileExists(t, filepath.Join(th.Dir(), scpath.OptionsFile))
	assert.FileExists(t, filepath.Join(th.Dir(), scpath.LockFile))

	repo := th.Open()
	assert.Equal(t, []string{"*.tmp"}, repo.Options().IgnorePatterns())
}

func TestInitCommand_PathArgument(t *testing.T) {
	th := NewTestHelper(t)
	require.NoError(t, os.Mkdir(filepath.Join(th.Dir(), "inner"), 0755))

	th.MustRun("init", "inner")

	assert.FileExists(t, filepath.Join(th.Dir(), "inner", scpath.LockFile))
}

func TestInitCommand_Twice(t *testing.T) {
	th := NewTestHelper(t)
	th.MustRun("init")

	_, err := th.Run("init")
	assert.True(t, scerr.IsCode(err, scerr.CodeAlreadyExists))
}

func TestInitCommand_RemoteExists(t *testing.T) {
	th := NewTestHelper(t)
	th.Remote.lockExists = true

	out, err := th.Run("init")

	var rerr *megarepo.RemoteExistsError
	require.True(t, errors.As(err, &rerr))
	assert.Contains(t, out, "local metadata written")
}

func TestCommands_OutsideRepository(t *testing.T) {
	th := NewTestHelper(t)

	for _, args := range [][]string{{"status"}, {"push"}, {"add", "x"}, {"options"}} {
		_, err := th.Run(args...)
		assert.True(t, scerr.IsCode(err, scerr.CodeRepositoryAbsent), "%v: %v", args, err)
	}
}

func TestAddAndRemoveCommands(t *testing.T) {
	th := NewTestHelper(t)
	th.WriteFile("keep.csv", "1")
	th.WriteFile("drop.csv", "2")
	th.MustRun("init")

	out := th.MustRun("add", "keep.csv")
	assert.Contains(t, out, th.Path("keep.csv"))
	assert.Contains(t, out, "1 file(s) staged for push")

	out = th.MustRun("add", "keep.csv")
	assert.Contains(t, out, "already staged for push")

	out = th.MustRun("rm", "drop.csv")
	assert.Contains(t, out, "1 file(s) staged for removal")

	lock, err := th.Open().Snapshot()
	require.NoError(t, err)
	assert.Equal(t, []string{th.Path("keep.csv")}, lock.Staged())
	assert.Equal(t, []string{th.Path("drop.csv")}, lock.ToRemove())
}

func TestAddCommand_MissingFile(t *testing.T) {
	th := NewTestHelper(t)
	th.WriteFile("real.csv", "1")
	th.MustRun("init")

	_, err := th.Run("add", "real.csv", "ghost.csv")
	assert.True(t, scerr.IsCode(err, scerr.CodeFileAbsent))

	lock, err := th.Open().Snapshot()
	require.NoError(t, err)
	assert.False(t, lock.HasStagedChanges())
}

func TestAddCommand_RequiresArgs(t *testing.T) {
	th := NewTestHelper(t)
	th.MustRun("init")

	_, err := th.Run("add")
	assert.Error(t, err)
}

func TestStatusCommand(t *testing.T) {
	th := NewTestHelper(t)
	th.WriteFile("old.bin", "same")
	th.WriteFile("gone.bin", "bye")
	th.MustRun("init")

	require.NoError(t, os.Rename(filepath.Join(th.Dir(), "old.bin"), filepath.Join(th.Dir(), "new.bin")))
	require.NoError(t, os.Remove(filepath.Join(th.Dir(), "gone.bin")))
	th.WriteFile("fresh.bin", "hi")

	out := th.MustRun("status", "--no-write")
	assert.Contains(t, out, "Moved:")
	assert.Contains(t, out, th.Path("new.bin"))
	assert.Contains(t, out, "Added:")
	assert.Contains(t, out, th.Path("fresh.bin"))
	assert.Contains(t, out, "Deleted:")
	assert.Contains(t, out, th.Path("gone.bin"))

	lock, err := th.Open().Snapshot()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), lock.Generation())

	th.MustRun("status")
	out = th.MustRun("status")
	assert.Contains(t, out, "No changes since last scan")

	lock, err = th.Open().Snapshot()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), lock.Generation())
}

func TestStatusCommand_Table(t *testing.T) {
	th := NewTestHelper(t)
	th.MustRun("init")
	th.WriteFile("fresh.bin", "hi")

	out := th.MustRun("status", "--table")
	assert.Contains(t, out, "added")
	assert.Contains(t, out, th.Path("fresh.bin"))
}

func TestPushCommand(t *testing.T) {
	th := NewTestHelper(t)
	th.WriteFile("a.bin", "a")
	th.WriteFile("b.bin", "b")
	th.WriteFile("c.bin", "c")
	th.MustRun("init")
	th.MustRun("add", "a.bin", "b.bin")
	th.MustRun("remove", "c.bin")

	out := th.MustRun("push", "--jobs", "2")
	assert.Contains(t, out, "Pushed 2 file(s), removed 1")

	sort.Strings(th.Remote.pushed)
	assert.Equal(t, []string{th.Path("a.bin"), th.Path("b.bin")}, th.Remote.pushed)
	assert.Equal(t, []string{th.Path("c.bin")}, th.Remote.removed)
	assert.Equal(t, []string{th.Path(scpath.LockFile)}, th.Remote.markers)

	lock, err := th.Open().Snapshot()
	require.NoError(t, err)
	assert.False(t, lock.HasStagedChanges())
}

func TestPushCommand_NothingStaged(t *testing.T) {
	th := NewTestHelper(t)
	th.WriteFile("a.bin", "a")
	th.MustRun("init")

	out := th.MustRun("push")
	assert.Contains(t, out, "Nothing staged")
	assert.Empty(t, th.Remote.pushed)
	assert.Equal(t, []string{th.Path(scpath.LockFile)}, th.Remote.markers)
}

func TestPushCommand_DropsDeletedFile(t *testing.T) {
	th := NewTestHelper(t)
	th.WriteFile("a.bin", "a")
	th.WriteFile("b.bin", "b")
	th.MustRun("init")
	th.MustRun("add", "a.bin", "b.bin")
	require.NoError(t, os.Remove(th.Path("a.bin")))

	out := th.MustRun("push")
	assert.Contains(t, out, "Dropped from staging")
	assert.Contains(t, out, "Pushed 1 file(s), removed 0")
	assert.Equal(t, []string{th.Path("b.bin")}, th.Remote.pushed)
}

func TestOptionsCommand(t *testing.T) {
	th := NewTestHelper(t)
	th.MustRun("init", "--remote-dir", "somewhere")

	out := th.MustRun("options")
	assert.Contains(t, out, "somewhere")
	assert.Contains(t, out, th.Path(""))
}

func TestLoggingFlags(t *testing.T) {
	th := NewTestHelper(t)

	_, err := th.Run("--log-level", "loud", "options")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "loud"))

	_, err = th.Run("--log-format", "xml", "options")
	require.Error(t, err)

	th.MustRun("init")
	th.MustRun("-v", "--log-format", "json", "options")
}
