package megarepo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scerr "github.com/utkarsh5026/megadvc/pkg/common/err"
)

func TestAdd(t *testing.T) {
	repo, _ := newRepo(t, map[string]string{"a.txt": "a", "b.txt": "b"})
	a := repo.Root().Join("a.txt")
	b := repo.Root().Join("b.txt")

	res, err := repo.Add([]string{a, b})
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, res.Staged)
	assert.Empty(t, res.Unchanged)

	res, err = repo.Add([]string{a})
	require.NoError(t, err)
	assert.Empty(t, res.Staged)
	assert.Equal(t, []string{a}, res.Unchanged)

	lock, err := repo.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, lock.Staged())
}

func TestAdd_MissingPathRejectsWholeBatch(t *testing.T) {
	repo, _ := newRepo(t, map[string]string{"a.txt": "a"})
	before, err := os.ReadFile(repo.Root().LockPath())
	require.NoError(t, err)

	missing := repo.Root().Join("missing.txt")
	_, err = repo.Add([]string{repo.Root().Join("a.txt"), missing})

	var ferr *FileAbsentError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, missing, ferr.Path)
	assert.True(t, scerr.IsCode(err, scerr.CodeFileAbsent))

	after, err := os.ReadFile(repo.Root().LockPath())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAdd_OutsideRoot(t *testing.T) {
	repo, _ := newRepo(t, nil)
	outside := writeFile(t, t.TempDir(), "x.txt", "x")

	_, err := repo.Add([]string{outside})

	var oerr *OutsideRootError
	require.True(t, errors.As(err, &oerr))
	assert.True(t, scerr.IsCode(err, scerr.CodeOutsideRoot))

	_, err = repo.Add([]string{repo.Root().String()})
	assert.True(t, scerr.IsCode(err, scerr.CodeOutsideRoot))
}

func TestAdd_ResolvesToCanonicalPath(t *testing.T) {
	repo, _ := newRepo(t, map[string]string{"dir/f.bin": "f"})

	res, err := repo.Add([]string{filepath.Join(repo.Root().String(), "dir", "..", "dir", "f.bin")})
	require.NoError(t, err)
	assert.Equal(t, []string{repo.Root().Join("dir", "f.bin")}, res.Staged)
}

func TestAdd_NoPaths(t *testing.T) {
	repo, _ := newRepo(t, nil)
	_, err := repo.Add(nil)
	assert.True(t, scerr.IsCode(err, scerr.CodeInvalidInput))
}

func TestRemove_OverlapCancels(t *testing.T) {
	repo, _ := newRepo(t, map[string]string{"p": "p", "q": "q"})
	p := repo.Root().Join("p")
	q := repo.Root().Join("q")

	_, err := repo.Add([]string{p})
	require.NoError(t, err)
	res, err := repo.Remove([]string{p, q})
	require.NoError(t, err)
	assert.Equal(t, []string{p, q}, res.Staged)

	lock, err := repo.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, lock.Staged())
	assert.Equal(t, []string{q}, lock.ToRemove())
}

func TestRemove_MissingPath(t *testing.T) {
	repo, _ := newRepo(t, nil)
	_, err := repo.Remove([]string{repo.Root().Join("ghost")})
	assert.True(t, scerr.IsCode(err, scerr.CodeFileAbsent))
}
