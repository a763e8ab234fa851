package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocal() *Local {
	return &Local{
		root:   "/r",
		files:  map[Hash]string{},
		add:    map[string]struct{}{},
		remove: map[string]struct{}{},
	}
}

func TestFromPath(t *testing.T) {
	fs := memfs.New()
	writeMem(t, fs, "data.csv", "1,2,3")

	l, err := FromPath("/r", WithFilesystem(fs))
	require.NoError(t, err)

	assert.Equal(t, "/r", l.Root())
	assert.Equal(t, uint64(0), l.Generation())
	assert.Equal(t, []string{filepath.Join("/r", "data.csv")}, l.Paths())
	assert.False(t, l.HasStagedChanges())
	assert.Empty(t, l.Staged())
	assert.Empty(t, l.ToRemove())
}

func TestFromPath_ScanFailure(t *testing.T) {
	l, err := FromPath(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
	assert.Nil(t, l)
}

func TestStageAdd_Idempotent(t *testing.T) {
	l := newLocal()

	assert.True(t, l.StageAdd("/r/p"))
	assert.False(t, l.StageAdd("/r/p"))

	assert.Equal(t, []string{"/r/p"}, l.Staged())
	assert.True(t, l.HasStagedChanges())
}

func TestStageRemove_Idempotent(t *testing.T) {
	l := newLocal()

	assert.True(t, l.StageRemove("/r/p"))
	assert.False(t, l.StageRemove("/r/p"))

	assert.Equal(t, []string{"/r/p"}, l.ToRemove())
	assert.Empty(t, l.Staged())
}

func TestUnstage(t *testing.T) {
	l := newLocal()
	l.StageAdd("/r/p")
	l.StageRemove("/r/q")

	assert.True(t, l.Unstage("/r/p"))
	assert.False(t, l.Unstage("/r/p"))
	assert.False(t, l.Unstage("/r/q"))

	assert.Empty(t, l.Staged())
	assert.Equal(t, []string{"/r/q"}, l.ToRemove())
}

func TestStaging_OverlapCancels(t *testing.T) {
	l := newLocal()
	l.StageAdd("/p")
	l.StageRemove("/p")
	l.StageAdd("/only-add")
	l.StageRemove("/only-remove")

	assert.Equal(t, []string{"/only-add"}, l.Staged())
	assert.Equal(t, []string{"/only-remove"}, l.ToRemove())

	// Raw sets keep both intents.
	assert.Equal(t, []string{"/only-add", "/p"}, l.Additions())
	assert.Equal(t, []string{"/only-remove", "/p"}, l.Removals())
}

func TestClearStaged(t *testing.T) {
	l := newLocal()
	l.StageAdd("/a")
	l.StageRemove("/b")

	l.ClearStaged()

	assert.False(t, l.HasStagedChanges())
	assert.Empty(t, l.Additions())
	assert.Empty(t, l.Removals())
	assert.True(t, l.StageAdd("/a"))
}

func TestUpdate_ReplacesAndReturnsPrevious(t *testing.T) {
	fs := memfs.New()
	writeMem(t, fs, "a.txt", "first")

	l, err := FromPath("/r", WithFilesystem(fs))
	require.NoError(t, err)
	l.StageAdd("/r/a.txt")
	l.StageRemove("/r/old.txt")

	require.NoError(t, fs.Rename("a.txt", "renamed.txt"))
	writeMem(t, fs, "b.txt", "second")

	previous, err := l.Update(WithFilesystem(fs))
	require.NoError(t, err)

	assert.Equal(t, uint64(0), previous.Generation())
	assert.Equal(t, uint64(1), l.Generation())
	assert.Equal(t, []string{filepath.Join("/r", "a.txt")}, previous.Paths())
	assert.Equal(t, []string{filepath.Join("/r", "b.txt"), filepath.Join("/r", "renamed.txt")}, l.Paths())

	// Staging survives the re-scan on both values.
	assert.Equal(t, []string{"/r/a.txt"}, l.Staged())
	assert.Equal(t, []string{"/r/old.txt"}, l.ToRemove())
	assert.Equal(t, []string{"/r/a.txt"}, previous.Staged())

	d := Compare(l, previous)
	assert.Equal(t, []Move{{From: filepath.Join("/r", "a.txt"), To: filepath.Join("/r", "renamed.txt")}}, d.Moved)
	assert.Equal(t, []string{filepath.Join("/r", "b.txt")}, d.Added)
	assert.Empty(t, d.Deleted)
}

func TestUpdate_StagingIndependentAfterSwap(t *testing.T) {
	fs := memfs.New()
	l, err := FromPath("/r", WithFilesystem(fs))
	require.NoError(t, err)
	l.StageAdd("/r/x")

	previous, err := l.Update(WithFilesystem(fs))
	require.NoError(t, err)

	l.StageAdd("/r/y")
	assert.Equal(t, []string{"/r/x", "/r/y"}, l.Staged())
	assert.Equal(t, []string{"/r/x"}, previous.Staged())
}

func TestUpdate_FailureLeavesReceiverUntouched(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "f"), []byte("v1"), 0644))

	l, err := FromPath(root)
	require.NoError(t, err)
	l.StageAdd(filepath.Join(root, "f"))
	before := l.Paths()

	require.NoError(t, os.RemoveAll(root))

	previous, err := l.Update()
	require.Error(t, err)
	assert.Nil(t, previous)

	assert.Equal(t, uint64(0), l.Generation())
	assert.Equal(t, before, l.Paths())
	assert.Equal(t, []string{filepath.Join(root, "f")}, l.Staged())
}

func TestUpdate_GenerationIncrementsEachTime(t *testing.T) {
	fs := memfs.New()
	l, err := FromPath("/r", WithFilesystem(fs))
	require.NoError(t, err)

	for want := uint64(1); want <= 3; want++ {
		_, err := l.Update(WithFilesystem(fs))
		require.NoError(t, err)
		assert.Equal(t, want, l.Generation())
	}
}

func TestReference_IsIndependentCopy(t *testing.T) {
	l := newLocal()
	l.files[h("1")] = "/r/one"
	l.generation = 7

	ref := l.Reference()
	l.files[h("2")] = "/r/two"

	assert.Equal(t, uint64(7), ref.Generation())
	assert.Equal(t, map[Hash]string{h("1"): "/r/one"}, ref.Files())
}
