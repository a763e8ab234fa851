package scpath

const (
	// OptionsFile is the name of the repository options file
	OptionsFile = ".mega.toml"

	// LockFile is the name of the file holding the persisted local snapshot
	LockFile = ".mega.lock"
)

// MetadataFiles lists every file that marks a directory as a repository.
var MetadataFiles = []string{OptionsFile, LockFile}
