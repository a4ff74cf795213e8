// Package scanner discovers candidate source files for tailsort.
package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ScanErrorType represents the type of scanning error.
type ScanErrorType string

const (
	// DirectoryNotFound indicates the directory does not exist.
	DirectoryNotFound ScanErrorType = "DIRECTORY_NOT_FOUND"
	// PermissionDenied indicates insufficient permissions to read the directory.
	PermissionDenied ScanErrorType = "PERMISSION_DENIED"
	// SymlinkError indicates a symlink was encountered with "error" policy.
	SymlinkError ScanErrorType = "SYMLINK_ERROR"
)

// Symlink policy constants
const (
	SymlinkPolicyFollow = "follow"
	SymlinkPolicySkip   = "skip"
	SymlinkPolicyError  = "error"
)

// ScanError represents an error that occurred during directory scanning.
type ScanError struct {
	Type ScanErrorType
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return string(e.Type) + ": " + e.Path
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// sourceExtensions are the file types tailsort rewrites.
var sourceExtensions = map[string]bool{
	".js":  true,
	".jsx": true,
	".ts":  true,
	".tsx": true,
}

// skipDirectories are dependency and build trees never worth descending into.
var skipDirectories = map[string]bool{
	"node_modules":     true,
	"bower_components": true,
	"dist":             true,
	"build":            true,
	"out":              true,
}

// ScanOptions configures scanning behavior.
type ScanOptions struct {
	SymlinkPolicy  string   // "follow", "skip", or "error"
	IgnorePatterns []string // glob patterns matched against the base name
}

// DefaultScanOptions returns the default scan options.
func DefaultScanOptions() ScanOptions {
	return ScanOptions{SymlinkPolicy: SymlinkPolicySkip}
}

// FileEntry represents a source file found during scanning.
type FileEntry struct {
	Name     string // Filename only
	FullPath string // Absolute path
}

// HasSourceExtension reports whether path names a file type tailsort handles.
func HasSourceExtension(path string) bool {
	return sourceExtensions[strings.ToLower(filepath.Ext(path))]
}

// SkippableDir reports whether a directory name is a dependency/build tree or
// hidden directory that scanning always bypasses.
func SkippableDir(name string) bool {
	if skipDirectories[name] {
		return true
	}
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// Scan recursively enumerates rewritable source files under directory using
// default options.
func Scan(directory string) ([]FileEntry, error) {
	return ScanWithOptions(directory, DefaultScanOptions())
}

// ScanWithOptions scans directory with configurable options. The walk is
// depth-first and fully recursive; dependency trees and dotdirs are skipped.
func ScanWithOptions(directory string, opts ScanOptions) ([]FileEntry, error) {
	info, err := os.Lstat(directory)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ScanError{Type: DirectoryNotFound, Path: directory, Err: err}
		}
		if os.IsPermission(err) {
			return nil, &ScanError{Type: PermissionDenied, Path: directory, Err: err}
		}
		return nil, err
	}

	if info.Mode()&os.ModeSymlink != 0 {
		switch opts.SymlinkPolicy {
		case SymlinkPolicyError:
			return nil, &ScanError{
				Type: SymlinkError,
				Path: directory,
				Err:  errors.New("symlink encountered with error policy"),
			}
		case SymlinkPolicySkip:
			return []FileEntry{}, nil
		case SymlinkPolicyFollow:
			info, err = os.Stat(directory)
			if err != nil {
				return nil, err
			}
		}
	}

	if !info.IsDir() {
		return nil, &ScanError{
			Type: DirectoryNotFound,
			Path: directory,
			Err:  errors.New("path is not a directory"),
		}
	}

	return scanDirectory(directory, opts)
}

func scanDirectory(directory string, opts ScanOptions) ([]FileEntry, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		if os.IsPermission(err) {
			return nil, &ScanError{Type: PermissionDenied, Path: directory, Err: err}
		}
		return nil, err
	}

	var files []FileEntry
	for _, entry := range entries {
		fullPath := filepath.Join(directory, entry.Name())

		info, err := os.Lstat(fullPath)
		if err != nil {
			continue // Skip entries we can't stat
		}

		if info.Mode()&os.ModeSymlink != 0 {
			switch opts.SymlinkPolicy {
			case SymlinkPolicyError:
				return nil, &ScanError{
					Type: SymlinkError,
					Path: fullPath,
					Err:  errors.New("symlink encountered with error policy"),
				}
			case SymlinkPolicySkip:
				continue
			case SymlinkPolicyFollow:
				info, err = os.Stat(fullPath)
				if err != nil {
					continue // Skip broken symlinks
				}
			}
		}

		if info.IsDir() {
			if SkippableDir(entry.Name()) {
				continue
			}
			subFiles, err := scanDirectory(fullPath, opts)
			if err != nil {
				return nil, err
			}
			files = append(files, subFiles...)
			continue
		}

		if !HasSourceExtension(entry.Name()) {
			continue
		}
		if matchesIgnorePattern(entry.Name(), opts.IgnorePatterns) {
			continue
		}

		absPath, err := filepath.Abs(fullPath)
		if err != nil {
			absPath = fullPath
		}
		files = append(files, FileEntry{
			Name:     entry.Name(),
			FullPath: absPath,
		})
	}

	return files, nil
}

func matchesIgnorePattern(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
