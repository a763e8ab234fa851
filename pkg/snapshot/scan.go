package snapshot

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// IgnoreFunc decides whether an entry is left out of a scan. rel is the
// slash-separated path relative to the scan root. Returning true for a
// directory prunes everything below it.
type IgnoreFunc func(rel string, isDir bool) bool

// ScanOption configures a Scanner.
type ScanOption func(*Scanner)

// WithFilesystem scans fs instead of the operating system filesystem.
// fs must be rooted at the scan root.
func WithFilesystem(fs billy.Filesystem) ScanOption {
	return func(s *Scanner) {
		s.fs = fs
	}
}

// WithIgnore sets the filter applied to every walked entry.
func WithIgnore(fn IgnoreFunc) ScanOption {
	return func(s *Scanner) {
		s.ignore = fn
	}
}

// Scanner hashes every regular file under a root directory.
//
// Entries are visited in lexical order. Directories are descended but not
// recorded, and anything that is not a regular file (symlinks, devices,
// sockets) is skipped. Every file is read and hashed in full on every scan;
// there is no shortcut based on size or modification time.
type Scanner struct {
	root   string
	fs     billy.Filesystem
	ignore IgnoreFunc
}

// NewScanner creates a scanner for root.
func NewScanner(root string, opts ...ScanOption) *Scanner {
	s := &Scanner{root: root}
	for _, opt := range opts {
		opt(s)
	}
	if s.fs == nil {
		s.fs = osfs.New(root)
	}
	return s
}

// Root returns the directory being scanned.
func (s *Scanner) Root() string {
	return s.root
}

// Scan walks the tree and returns a mapping from content hash to the file's
// path (root joined with the walked relative path). When several files share
// content the one visited last wins.
//
// Any error while walking or reading aborts the scan; no partial mapping is
// ever returned.
func (s *Scanner) Scan() (map[Hash]string, error) {
	files := make(map[Hash]string)

	walkErr := util.Walk(s.fs, ".", func(rel string, info os.FileInfo, err error) error {
		if err != nil {
			return newScanError(s.root, s.abs(rel), err)
		}
		if rel == "." {
			return nil
		}

		if s.ignore != nil && s.ignore(filepath.ToSlash(rel), info.IsDir()) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		hash, err := s.hashFile(rel)
		if err != nil {
			return newScanError(s.root, s.abs(rel), err)
		}
		files[hash] = s.abs(rel)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return files, nil
}

func (s *Scanner) hashFile(rel string) (Hash, error) {
	f, err := s.fs.Open(rel)
	if err != nil {
		return Hash{}, err
	}
	defer f.Close()

	return HashReader(f)
}

func (s *Scanner) abs(rel string) string {
	return filepath.Join(s.root, rel)
}
