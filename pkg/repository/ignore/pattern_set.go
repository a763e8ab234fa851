package ignore

// PatternSet is a collection of ignore patterns
type PatternSet struct {
	patterns         []*IgnorePattern
	negationPatterns []*IgnorePattern
}

// NewPatternSet creates a new empty pattern set
func NewPatternSet() *PatternSet {
	return &PatternSet{}
}

// FromPatterns builds a set from a list of pattern entries. source names
// where the entries came from and is used in error messages.
func FromPatterns(entries []string, source string) (*PatternSet, error) {
	ps := NewPatternSet()
	if err := ps.AddPatterns(entries, source); err != nil {
		return nil, err
	}
	return ps, nil
}

// Add adds a pattern to the set
func (ps *PatternSet) Add(pattern *IgnorePattern) {
	if pattern.IsNegation {
		ps.negationPatterns = append(ps.negationPatterns, pattern)
	} else {
		ps.patterns = append(ps.patterns, pattern)
	}
}

// AddPatterns parses every entry and adds the valid patterns to the set.
// Nothing is added if any entry is malformed.
func (ps *PatternSet) AddPatterns(entries []string, source string) error {
	parsed := make([]*IgnorePattern, 0, len(entries))
	for i, entry := range entries {
		pattern, err := FromLine(entry, source, i+1)
		if err != nil {
			return err
		}
		if pattern != nil {
			parsed = append(parsed, pattern)
		}
	}

	for _, p := range parsed {
		ps.Add(p)
	}
	return nil
}

// IsIgnored checks if a path should be ignored
// filePath: Slash-separated path relative to the repository root
// isDirectory: Whether the path is a directory
func (ps *PatternSet) IsIgnored(filePath string, isDirectory bool) bool {
	ignored := false
	for _, pattern := range ps.patterns {
		if pattern.Matches(filePath, isDirectory) {
			ignored = true
			break
		}
	}
	if !ignored {
		return false
	}

	for _, pattern := range ps.negationPatterns {
		if pattern.Matches(filePath, isDirectory) {
			return false
		}
	}
	return true
}

// Len returns the number of patterns in the set
func (ps *PatternSet) Len() int {
	return len(ps.patterns) + len(ps.negationPatterns)
}

// IgnoredPatterns returns all ignore patterns (non-negation patterns)
func (ps *PatternSet) IgnoredPatterns() []*IgnorePattern {
	return ps.patterns
}

// UnignoredPatterns returns all negation patterns (patterns that un-ignore files)
func (ps *PatternSet) UnignoredPatterns() []*IgnorePattern {
	return ps.negationPatterns
}
