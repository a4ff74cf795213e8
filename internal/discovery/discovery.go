// Package discovery locates the tailsort configuration file for a target
// directory.
package discovery

import (
	"os"
	"path/filepath"
)

// ConfigFilename is the file discovery looks for.
const ConfigFilename = "tailsort.json"

// FindConfig walks upward from startDir to the filesystem root looking for a
// tailsort.json. It returns the path of the nearest one, or "" when no
// configuration file exists. Absence is not an error: defaults apply.
func FindConfig(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, ConfigFilename)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
