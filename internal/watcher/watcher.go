// Package watcher provides file system monitoring for continuous class-list
// formatting.
package watcher

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"tailsort/internal/scanner"
)

// WatchConfig contains watcher settings.
type WatchConfig struct {
	DebounceMs        int      // Delay before reformatting a changed file (default: 300)
	StableThresholdMs int      // File size stability threshold in milliseconds (default: 200)
	IgnorePatterns    []string // Glob patterns to ignore on top of the defaults
}

// DefaultWatchConfig returns a WatchConfig with sensible defaults.
func DefaultWatchConfig() *WatchConfig {
	return &WatchConfig{
		DebounceMs:        300,
		StableThresholdMs: 200,
	}
}

// WatchSummary contains stats from the watch session.
type WatchSummary struct {
	FilesRewritten int
	FilesUnchanged int
	FilesErrored   int
	Duration       time.Duration
}

// FileHandler reformats one file. It reports whether the file actually
// changed and any error that occurred.
type FileHandler func(path string) (changed bool, err error)

// Watcher monitors a source tree and reformats files as they change.
type Watcher struct {
	config      *WatchConfig
	fileHandler FileHandler
	fsWatcher   *fsnotify.Watcher
	fileFilter  *FileFilter
	debouncer   *Debouncer
	stability   *StabilityChecker
	done        chan struct{}
	wg          sync.WaitGroup
	startTime   time.Time

	mu             sync.Mutex
	filesRewritten int
	filesUnchanged int
	filesErrored   int
}

// New creates a Watcher. If config is nil, defaults are used. The fileHandler
// is called for every settled change to a rewritable source file.
func New(config *WatchConfig, fileHandler FileHandler) *Watcher {
	if config == nil {
		config = DefaultWatchConfig()
	}
	w := &Watcher{
		config:      config,
		fileHandler: fileHandler,
		fileFilter:  NewFileFilter(config.IgnorePatterns),
		done:        make(chan struct{}),
	}
	w.debouncer = NewDebouncer(
		time.Duration(config.DebounceMs)*time.Millisecond,
		w.handleSettledFile,
	)
	w.stability = NewStabilityChecker(
		time.Duration(config.StableThresholdMs) * time.Millisecond,
	)
	return w
}

// Start begins watching root and every non-skippable directory beneath it.
// The watcher runs until Stop is called.
func (w *Watcher) Start(root string) error {
	var err error
	w.fsWatcher, err = fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		w.fsWatcher.Close()
		return err
	}
	if err := w.addRecursive(absRoot); err != nil {
		w.fsWatcher.Close()
		return err
	}

	w.startTime = time.Now()
	w.done = make(chan struct{})

	w.wg.Add(1)
	go w.processEvents()

	return nil
}

// Stop gracefully shuts down the watcher and returns a summary of the session.
func (w *Watcher) Stop() *WatchSummary {
	close(w.done)
	w.wg.Wait()
	w.debouncer.CancelAll()

	if w.fsWatcher != nil {
		w.fsWatcher.Close()
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	return &WatchSummary{
		FilesRewritten: w.filesRewritten,
		FilesUnchanged: w.filesUnchanged,
		FilesErrored:   w.filesErrored,
		Duration:       time.Since(w.startTime),
	}
}

// addRecursive registers root and its subdirectories with fsnotify, skipping
// dependency and build trees.
func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree: watch what we can
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && scanner.SkippableDir(d.Name()) {
			return filepath.SkipDir
		}
		return w.fsWatcher.Add(path)
	})
}

// processEvents handles file system events from fsnotify.
func (w *Watcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			w.handleFileEvent(event.Name)
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			// Keep watching through transient errors.
		}
	}
}

// handleFileEvent filters an event and schedules the file for debounced
// processing. A newly created directory is added to the watch set.
func (w *Watcher) handleFileEvent(path string) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		if !scanner.SkippableDir(filepath.Base(path)) {
			w.fsWatcher.Add(path)
		}
		return
	}

	if !scanner.HasSourceExtension(path) || w.fileFilter.ShouldIgnore(path) {
		return
	}
	w.debouncer.Add(path)
}

// handleSettledFile runs once a file's events have settled: wait for the size
// to stabilize, then hand it to the file handler and count the outcome.
func (w *Watcher) handleSettledFile(path string) {
	select {
	case <-w.done:
		return
	default:
	}

	if err := w.stability.WaitForStable(path); err != nil {
		w.mu.Lock()
		w.filesErrored++
		w.mu.Unlock()
		return
	}

	changed, err := w.fileHandler(path)
	w.mu.Lock()
	defer w.mu.Unlock()
	switch {
	case err != nil:
		w.filesErrored++
	case changed:
		w.filesRewritten++
	default:
		w.filesUnchanged++
	}
}
