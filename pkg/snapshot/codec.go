package snapshot

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
)

// localRecord is the persisted form of a Local snapshot.
//
//	path = "/data/photos"
//	generation = 2
//	add = ["/data/photos/a.jpg"]
//	remove = []
//
//	[files]
//	4f1c...e0 = "/data/photos/a.jpg"
type localRecord struct {
	Path       string            `toml:"path"`
	Generation uint64            `toml:"generation"`
	Add        []string          `toml:"add"`
	Remove     []string          `toml:"remove"`
	Files      map[string]string `toml:"files"`
}

// remoteRecord is the persisted form of a Remote snapshot.
type remoteRecord struct {
	Generation uint64            `toml:"generation"`
	Files      map[string]string `toml:"files"`
}

// MarshalLocal renders l as TOML. Every path must be valid UTF-8, since TOML
// strings cannot carry anything else.
func MarshalLocal(l *Local) ([]byte, error) {
	files, err := encodeFiles(l.files)
	if err != nil {
		return nil, err
	}
	rec := localRecord{
		Path:       l.root,
		Generation: l.generation,
		Add:        sortedKeys(l.add),
		Remove:     sortedKeys(l.remove),
		Files:      files,
	}
	if err := checkPaths(append(append([]string{rec.Path}, rec.Add...), rec.Remove...)...); err != nil {
		return nil, err
	}

	data, err := toml.Marshal(rec)
	if err != nil {
		return nil, newSerializationError("encode", "render local snapshot", err)
	}
	return data, nil
}

// UnmarshalLocal parses a Local snapshot produced by MarshalLocal.
func UnmarshalLocal(data []byte) (*Local, error) {
	var rec localRecord
	if err := toml.Unmarshal(data, &rec); err != nil {
		return nil, newSerializationError("decode", "parse local snapshot", err)
	}
	if rec.Path == "" {
		return nil, newSerializationError("decode", "local snapshot has no path", nil)
	}

	files, err := decodeFiles(rec.Files)
	if err != nil {
		return nil, err
	}

	return &Local{
		root:       rec.Path,
		generation: rec.Generation,
		add:        toSet(rec.Add),
		remove:     toSet(rec.Remove),
		files:      files,
	}, nil
}

// MarshalRemote renders r as TOML. Paths must be valid UTF-8.
func MarshalRemote(r *Remote) ([]byte, error) {
	files, err := encodeFiles(r.files)
	if err != nil {
		return nil, err
	}
	rec := remoteRecord{
		Generation: r.generation,
		Files:      files,
	}

	data, err := toml.Marshal(rec)
	if err != nil {
		return nil, newSerializationError("encode", "render remote snapshot", err)
	}
	return data, nil
}

// UnmarshalRemote parses a Remote snapshot. The Local encoding is accepted as
// well, so a published lock file can be read back as a reference.
func UnmarshalRemote(data []byte) (*Remote, error) {
	var rec remoteRecord
	if err := toml.Unmarshal(data, &rec); err != nil {
		return nil, newSerializationError("decode", "parse remote snapshot", err)
	}

	files, err := decodeFiles(rec.Files)
	if err != nil {
		return nil, err
	}
	return &Remote{generation: rec.Generation, files: files}, nil
}

func encodeFiles(files map[Hash]string) (map[string]string, error) {
	out := make(map[string]string, len(files))
	for hash, path := range files {
		if err := checkPaths(path); err != nil {
			return nil, err
		}
		out[hash.String()] = path
	}
	return out, nil
}

func checkPaths(paths ...string) error {
	for _, p := range paths {
		if !utf8.ValidString(p) {
			return newSerializationError("encode", fmt.Sprintf("path %q is not valid UTF-8", p), nil)
		}
	}
	return nil
}

func decodeFiles(in map[string]string) (map[Hash]string, error) {
	out := make(map[Hash]string, len(in))

	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		hash, err := ParseHash(k)
		if err != nil {
			return nil, newSerializationError("decode", fmt.Sprintf("invalid file key %q", k), err)
		}
		out[hash] = in[k]
	}
	return out, nil
}

func toSet(paths []string) map[string]struct{} {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return set
}
