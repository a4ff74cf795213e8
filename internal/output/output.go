// Package output handles CLI output formatting including verbose mode and
// progress indicators.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Config holds output configuration.
type Config struct {
	Verbose   bool      // Enable verbose output
	Writer    io.Writer // Output destination (default: os.Stdout)
	ErrWriter io.Writer // Error output destination (default: os.Stderr)
	IsTTY     bool      // Whether output is a terminal
}

// Output handles formatted output with verbose and progress support.
type Output struct {
	config          Config
	progressActive  bool
	progressTotal   int
	progressCurrent int
	progressMu      sync.Mutex
}

// New creates a new Output instance with the given configuration.
func New(config Config) *Output {
	if config.Writer == nil {
		config.Writer = os.Stdout
	}
	if config.ErrWriter == nil {
		config.ErrWriter = os.Stderr
	}
	return &Output{config: config}
}

// DefaultConfig returns a Config with sensible defaults and TTY detection.
func DefaultConfig() Config {
	return Config{
		Verbose:   false,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		IsTTY:     term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// Verbose prints a message only when verbose mode is enabled.
func (o *Output) Verbose(format string, args ...interface{}) {
	if !o.config.Verbose {
		return
	}
	o.clearProgressLine()
	o.write(o.config.Writer, format, args...)
}

// Info prints an informational message (always shown).
func (o *Output) Info(format string, args ...interface{}) {
	o.clearProgressLine()
	o.write(o.config.Writer, format, args...)
}

// Changed reports one file whose class lists were (or would be) reordered.
// In check mode these lines are the tool's primary output.
func (o *Output) Changed(path string, written bool) {
	o.clearProgressLine()
	if written {
		o.write(o.config.Writer, "rewrote %s", path)
		return
	}
	o.write(o.config.Writer, "would rewrite %s", path)
}

// Error prints an error message to stderr.
func (o *Output) Error(format string, args ...interface{}) {
	o.clearProgressLine()
	o.write(o.config.ErrWriter, format, args...)
}

func (o *Output) write(w io.Writer, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprint(w, msg)
}

// clearProgressLine clears the current progress line if active.
func (o *Output) clearProgressLine() {
	o.progressMu.Lock()
	defer o.progressMu.Unlock()
	if o.progressActive && o.config.IsTTY {
		fmt.Fprint(o.config.Writer, "\r"+strings.Repeat(" ", 60)+"\r")
	}
}

// StartProgress begins a progress indicator session over total files.
// Progress is suppressed when output is not a TTY or verbose mode is on.
func (o *Output) StartProgress(total int) {
	if !o.config.IsTTY || o.config.Verbose {
		return
	}
	o.progressMu.Lock()
	defer o.progressMu.Unlock()
	o.progressActive = true
	o.progressTotal = total
	o.progressCurrent = 0
}

// UpdateProgress updates the progress indicator in place.
func (o *Output) UpdateProgress(current int) {
	if !o.config.IsTTY || o.config.Verbose {
		return
	}
	o.progressMu.Lock()
	defer o.progressMu.Unlock()
	if !o.progressActive {
		return
	}
	o.progressCurrent = current
	fmt.Fprintf(o.config.Writer, "\rFormatting file %d/%d...", current, o.progressTotal)
}

// EndProgress clears the progress indicator.
func (o *Output) EndProgress() {
	if !o.config.IsTTY || o.config.Verbose {
		return
	}
	o.progressMu.Lock()
	defer o.progressMu.Unlock()
	if !o.progressActive {
		return
	}
	o.progressActive = false
	fmt.Fprint(o.config.Writer, "\r"+strings.Repeat(" ", 60)+"\r")
}

// IsVerbose returns whether verbose mode is enabled.
func (o *Output) IsVerbose() bool {
	return o.config.Verbose
}
