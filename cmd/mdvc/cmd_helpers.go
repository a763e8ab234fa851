package main

import (
	"path/filepath"

	"github.com/utkarsh5026/megadvc/pkg/repository/megarepo"
)

// connect builds the remote for an opened repository. Tests replace it.
var connect = megarepo.MegaCmdConnector()

// openRepository opens the repository selected by --dir.
func openRepository() (*megarepo.Repository, error) {
	return megarepo.Open(repoDir, connect)
}

// resolveArgs makes relative paths relative to --dir instead of the
// process working directory.
func resolveArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if filepath.IsAbs(a) {
			out[i] = a
		} else {
			out[i] = filepath.Join(repoDir, a)
		}
	}
	return out
}
