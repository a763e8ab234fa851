package ignore

import (
	"github.com/utkarsh5026/megadvc/pkg/common/fileops"
	"github.com/utkarsh5026/megadvc/pkg/repository/scpath"
)

// MetadataSource is the source name of the built-in patterns.
const MetadataSource = "builtin"

// MetadataPatterns are always excluded from repository scans: the metadata
// files at the root and the temporary files left next to them while they are
// rewritten.
var MetadataPatterns = []string{
	"/" + scpath.OptionsFile,
	"/" + scpath.LockFile,
	"/" + fileops.TempPattern,
}

// Matcher combines the built-in patterns with the user's local.ignore
// entries. User negations cannot re-include a built-in exclusion.
type Matcher struct {
	builtin *PatternSet
	user    *PatternSet
}

// ForRepository returns the matcher used to scan a repository.
func ForRepository(userPatterns []string) (*Matcher, error) {
	builtin, err := FromPatterns(MetadataPatterns, MetadataSource)
	if err != nil {
		return nil, err
	}
	user, err := FromPatterns(userPatterns, DefaultSource)
	if err != nil {
		return nil, err
	}
	return &Matcher{builtin: builtin, user: user}, nil
}

// IsIgnored reports whether a slash-separated path relative to the
// repository root is left out of scans.
func (m *Matcher) IsIgnored(filePath string, isDirectory bool) bool {
	return m.builtin.IsIgnored(filePath, isDirectory) || m.user.IsIgnored(filePath, isDirectory)
}

// UserPatterns returns the set built from local.ignore.
func (m *Matcher) UserPatterns() *PatternSet {
	return m.user
}
