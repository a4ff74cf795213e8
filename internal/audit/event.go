// Package audit provides a JSONL run log of tailsort rewrite operations.
package audit

import (
	"encoding/json"
	"time"
)

// ISO8601Format is the time format used for audit event timestamps.
const ISO8601Format = time.RFC3339

// RunID identifies a single tailsort run across its events.
type RunID string

// EventType identifies the kind of audit event.
type EventType string

const (
	LogInitialized EventType = "LOG_INITIALIZED"
	RunStarted     EventType = "RUN_STARTED"
	FileRewritten  EventType = "FILE_REWRITTEN"
	FileSkipped    EventType = "FILE_SKIPPED"
	FileError      EventType = "FILE_ERROR"
	RunCompleted   EventType = "RUN_COMPLETED"
)

// Event is one line of the audit log.
type Event struct {
	Timestamp time.Time
	RunID     RunID
	EventType EventType
	Path      string // source file the event concerns, empty for run-level events
	Detail    string // error text, run summary, or empty
}

// eventJSON is the wire representation. Optional fields use omitempty so
// run-level events stay compact.
type eventJSON struct {
	Timestamp string    `json:"timestamp"`
	RunID     RunID     `json:"runId,omitempty"`
	EventType EventType `json:"eventType"`
	Path      string    `json:"path,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}

// MarshalJSON formats timestamps as ISO 8601 and omits empty optional fields.
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(eventJSON{
		Timestamp: e.Timestamp.Format(ISO8601Format),
		RunID:     e.RunID,
		EventType: e.EventType,
		Path:      e.Path,
		Detail:    e.Detail,
	})
}

// UnmarshalJSON parses the wire representation back into an Event.
func (e *Event) UnmarshalJSON(data []byte) error {
	var ej eventJSON
	if err := json.Unmarshal(data, &ej); err != nil {
		return err
	}
	t, err := time.Parse(ISO8601Format, ej.Timestamp)
	if err != nil {
		return err
	}
	e.Timestamp = t
	e.RunID = ej.RunID
	e.EventType = ej.EventType
	e.Path = ej.Path
	e.Detail = ej.Detail
	return nil
}

// AuditConfig controls whether and where the audit log is written.
type AuditConfig struct {
	Enabled      bool   `json:"enabled,omitempty"`
	LogDirectory string `json:"logDirectory,omitempty"`
}

// DefaultAuditConfig returns the default audit settings: disabled, logging
// under .tailsort in the target directory when enabled.
func DefaultAuditConfig() AuditConfig {
	return AuditConfig{
		Enabled:      false,
		LogDirectory: ".tailsort",
	}
}
