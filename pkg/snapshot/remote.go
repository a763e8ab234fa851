package snapshot

import "maps"

// Remote is a read-only snapshot, typically a previously recorded state or the
// state last published to the remote store.
type Remote struct {
	generation uint64
	files      map[Hash]string
}

// NewRemote copies files into a new read-only snapshot.
func NewRemote(generation uint64, files map[Hash]string) *Remote {
	copied := maps.Clone(files)
	if copied == nil {
		copied = make(map[Hash]string)
	}
	return &Remote{generation: generation, files: copied}
}

// Generation implements Snapshot.
func (r *Remote) Generation() uint64 {
	return r.generation
}

// Files implements Snapshot.
func (r *Remote) Files() map[Hash]string {
	return r.files
}
