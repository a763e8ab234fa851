package snapshot

import (
	"maps"
	"sort"
)

// Local is the snapshot of a working tree together with its staging area.
//
// The file mapping reflects the last completed scan. The staging area is two
// independent path sets, additions and removals; a path may sit in both, in
// which case the two intents cancel and it appears in neither Staged nor
// ToRemove.
type Local struct {
	root       string
	generation uint64
	add        map[string]struct{}
	remove     map[string]struct{}
	files      map[Hash]string
}

// FromPath scans root and returns its snapshot at generation 0 with an empty
// staging area.
func FromPath(root string, opts ...ScanOption) (*Local, error) {
	files, err := NewScanner(root, opts...).Scan()
	if err != nil {
		return nil, err
	}

	return &Local{
		root:   root,
		files:  files,
		add:    make(map[string]struct{}),
		remove: make(map[string]struct{}),
	}, nil
}

// Update re-scans the root. On success the receiver holds the new scan at the
// next generation, keeps its staging area, and the state it held before the
// call is returned as an independent value. On failure the receiver is left
// exactly as it was.
//
// Pending staged changes do not block a re-scan.
func (l *Local) Update(opts ...ScanOption) (*Local, error) {
	files, err := NewScanner(l.root, opts...).Scan()
	if err != nil {
		return nil, err
	}

	previous := &Local{
		root:       l.root,
		generation: l.generation,
		add:        l.add,
		remove:     l.remove,
		files:      l.files,
	}

	*l = Local{
		root:       l.root,
		generation: l.generation + 1,
		add:        maps.Clone(l.add),
		remove:     maps.Clone(l.remove),
		files:      files,
	}

	return previous, nil
}

// Root returns the scanned directory.
func (l *Local) Root() string {
	return l.root
}

// Generation implements Snapshot.
func (l *Local) Generation() uint64 {
	return l.generation
}

// Files implements Snapshot.
func (l *Local) Files() map[Hash]string {
	return l.files
}

// Paths returns the sorted paths of every scanned file.
func (l *Local) Paths() []string {
	paths := make([]string, 0, len(l.files))
	for _, p := range l.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// StageAdd queues path for the next push. It reports whether path was not
// already queued.
func (l *Local) StageAdd(path string) bool {
	return insert(l.add, path)
}

// StageRemove queues path for removal. It reports whether path was not
// already queued.
func (l *Local) StageRemove(path string) bool {
	return insert(l.remove, path)
}

// Unstage takes path out of the addition queue. It reports whether path was
// queued.
func (l *Local) Unstage(path string) bool {
	if _, ok := l.add[path]; !ok {
		return false
	}
	delete(l.add, path)
	return true
}

// Staged returns the paths queued for addition and not for removal.
func (l *Local) Staged() []string {
	return difference(l.add, l.remove)
}

// ToRemove returns the paths queued for removal and not for addition.
func (l *Local) ToRemove() []string {
	return difference(l.remove, l.add)
}

// Additions returns every path queued for addition, overlap included.
func (l *Local) Additions() []string {
	return sortedKeys(l.add)
}

// Removals returns every path queued for removal, overlap included.
func (l *Local) Removals() []string {
	return sortedKeys(l.remove)
}

// HasStagedChanges reports whether either staging set is non-empty.
func (l *Local) HasStagedChanges() bool {
	return len(l.add) > 0 || len(l.remove) > 0
}

// ClearStaged empties both staging sets.
func (l *Local) ClearStaged() {
	l.add = make(map[string]struct{})
	l.remove = make(map[string]struct{})
}

// Reference returns a read-only copy of the file mapping and generation.
func (l *Local) Reference() *Remote {
	return NewRemote(l.generation, l.files)
}

func insert(set map[string]struct{}, path string) bool {
	if _, ok := set[path]; ok {
		return false
	}
	set[path] = struct{}{}
	return true
}

func difference(a, b map[string]struct{}) []string {
	out := make([]string, 0, len(a))
	for p := range a {
		if _, ok := b[p]; !ok {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
