// Package options reads and writes the repository options file (.mega.toml).
//
//	[remote]
//	path = "photos"
//
//	[local]
//	path = "/data/photos"
//	ignore = ["*.tmp", "cache/"]
package options

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"github.com/utkarsh5026/megadvc/pkg/common/fileops"
)

// FileMode is the permission the options file is written with.
const FileMode os.FileMode = 0644

// Remote describes where the repository is mirrored.
type Remote struct {
	Path string `toml:"path"`
}

// Local describes the tracked working tree.
type Local struct {
	Path   string   `toml:"path"`
	Ignore []string `toml:"ignore,omitempty"`
}

// Options is the content of the options file.
type Options struct {
	Remote Remote `toml:"remote"`
	Local  Local  `toml:"local"`
}

// New returns options for a repository rooted at local mirrored to remote.
func New(remote, local string) *Options {
	return &Options{
		Remote: Remote{Path: remote},
		Local:  Local{Path: local},
	}
}

// RemotePath returns the remote root directory.
func (o *Options) RemotePath() string {
	return o.Remote.Path
}

// LocalPath returns the local root directory.
func (o *Options) LocalPath() string {
	return o.Local.Path
}

// IgnorePatterns returns the extra patterns excluded from scans.
func (o *Options) IgnorePatterns() []string {
	return o.Local.Ignore
}

// Parse decodes options from TOML.
func Parse(data []byte) (*Options, error) {
	var o Options
	if err := toml.Unmarshal(data, &o); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, newParseError("", row, col, err)
		}
		return nil, newParseError("", 0, 0, err)
	}

	if err := o.validate(); err != nil {
		return nil, err
	}
	return &o, nil
}

// Marshal validates the options and renders them as TOML.
func (o *Options) Marshal() ([]byte, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	data, err := toml.Marshal(o)
	if err != nil {
		return nil, newEncodeError(err)
	}
	return data, nil
}

// Load reads and parses the options file at path.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newIOError("load", path, err)
	}

	o, err := Parse(data)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return o, nil
}

// Save writes the options to path atomically.
func (o *Options) Save(path string) error {
	data, err := o.Marshal()
	if err != nil {
		return err
	}

	if err := fileops.AtomicWrite(path, data, FileMode); err != nil {
		return newIOError("save", path, err)
	}
	return nil
}

func (o *Options) validate() error {
	if o.Local.Path == "" {
		return newValidationError("local.path", "must not be empty")
	}
	if o.Remote.Path == "" {
		return newValidationError("remote.path", "must not be empty")
	}
	if !utf8.ValidString(o.Local.Path) {
		return newValidationError("local.path", "is not valid UTF-8")
	}
	if !utf8.ValidString(o.Remote.Path) {
		return newValidationError("remote.path", "is not valid UTF-8")
	}
	for i, p := range o.Local.Ignore {
		if !utf8.ValidString(p) {
			return newValidationError(fmt.Sprintf("local.ignore[%d]", i), "is not valid UTF-8")
		}
	}
	return nil
}
