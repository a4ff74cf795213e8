package audit

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// logFilename is the fixed name of the audit log inside the log directory.
const logFilename = "tailsort-audit.jsonl"

// Writer appends events to the audit log. It is append-only and fail-fast:
// a write error surfaces immediately rather than silently dropping events.
type Writer struct {
	mu         sync.Mutex
	file       *os.File
	writer     *bufio.Writer
	logPath    string
	currentRun RunID
}

// NewWriter opens (creating if necessary) the audit log under the configured
// directory. A brand-new log gets a LOG_INITIALIZED event as its first line.
func NewWriter(config AuditConfig) (*Writer, error) {
	if err := os.MkdirAll(config.LogDirectory, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath := filepath.Join(config.LogDirectory, logFilename)

	isNewLog := false
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		isNewLog = true
	}

	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}

	w := &Writer{
		file:    file,
		writer:  bufio.NewWriter(file),
		logPath: logPath,
	}

	if isNewLog {
		if err := w.append(Event{Timestamp: time.Now(), EventType: LogInitialized}); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to write LOG_INITIALIZED event: %w", err)
		}
	}

	return w, nil
}

// GenerateRunID generates a new UUID v4 format run ID.
func GenerateRunID() (RunID, error) {
	uuid := make([]byte, 16)
	if _, err := rand.Read(uuid); err != nil {
		return "", fmt.Errorf("failed to generate UUID: %w", err)
	}

	uuid[6] = (uuid[6] & 0x0f) | 0x40 // Version 4
	uuid[8] = (uuid[8] & 0x3f) | 0x80 // Variant RFC 4122

	return RunID(fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		uuid[0:4],
		uuid[4:6],
		uuid[6:8],
		uuid[8:10],
		uuid[10:16],
	)), nil
}

// StartRun records a RUN_STARTED event and makes the generated run ID the
// current run for subsequent file events.
func (w *Writer) StartRun(targetDir string) (RunID, error) {
	runID, err := GenerateRunID()
	if err != nil {
		return "", err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.currentRun = runID
	return runID, w.append(Event{
		Timestamp: time.Now(),
		RunID:     runID,
		EventType: RunStarted,
		Path:      targetDir,
	})
}

// RecordRewrite records that path was rewritten during the current run.
func (w *Writer) RecordRewrite(path string) error {
	return w.record(FileRewritten, path, "")
}

// RecordSkip records that path was examined and left unchanged.
func (w *Writer) RecordSkip(path string) error {
	return w.record(FileSkipped, path, "")
}

// RecordError records a per-file failure during the current run.
func (w *Writer) RecordError(path string, detail string) error {
	return w.record(FileError, path, detail)
}

// CompleteRun records a RUN_COMPLETED event with a summary line and ends the
// current run.
func (w *Writer) CompleteRun(summary string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	err := w.append(Event{
		Timestamp: time.Now(),
		RunID:     w.currentRun,
		EventType: RunCompleted,
		Detail:    summary,
	})
	w.currentRun = ""
	return err
}

// Close flushes buffered events and closes the underlying file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.writer.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to flush audit log: %w", err)
	}
	return w.file.Close()
}

func (w *Writer) record(eventType EventType, path, detail string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.append(Event{
		Timestamp: time.Now(),
		RunID:     w.currentRun,
		EventType: eventType,
		Path:      path,
		Detail:    detail,
	})
}

// append writes one event as a single JSON line and flushes it. Callers must
// hold w.mu.
func (w *Writer) append(e Event) error {
	line, err := e.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}
	if _, err := w.writer.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to write audit event: %w", err)
	}
	return w.writer.Flush()
}
