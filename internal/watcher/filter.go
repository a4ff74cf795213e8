package watcher

import (
	"path/filepath"
	"strings"
)

// DefaultIgnorePatterns returns patterns for files whose events never warrant
// a reformat: vim swap files, emacs backup/lock/autosave files, and generated
// declaration files.
func DefaultIgnorePatterns() []string {
	return []string{
		"*.tmp",
		"*.swp",
		"*.swx",
		"*~",
		".#*",
		"#*#",
		"*.d.ts",
	}
}

// FileFilter handles filtering of files based on ignore patterns.
type FileFilter struct {
	patterns []string
}

// NewFileFilter creates a FileFilter with the given extra patterns on top of
// the defaults.
func NewFileFilter(patterns []string) *FileFilter {
	return &FileFilter{
		patterns: append(DefaultIgnorePatterns(), patterns...),
	}
}

// ShouldIgnore checks if a file path matches any ignore pattern. Patterns use
// glob syntax and match against the base name only, except *.d.ts-style
// multi-extension patterns which match as a suffix.
func (f *FileFilter) ShouldIgnore(path string) bool {
	filename := filepath.Base(path)

	for _, pattern := range f.patterns {
		if matched, err := filepath.Match(pattern, filename); err == nil && matched {
			return true
		}
		if strings.Count(pattern, ".") > 1 && strings.HasPrefix(pattern, "*.") {
			if strings.HasSuffix(filename, pattern[1:]) {
				return true
			}
		}
	}
	return false
}

// Patterns returns the active ignore patterns.
func (f *FileFilter) Patterns() []string {
	result := make([]string, len(f.patterns))
	copy(result, f.patterns)
	return result
}
