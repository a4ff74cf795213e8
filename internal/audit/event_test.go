package audit

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestEventSerializationRoundTrip(t *testing.T) {
	original := Event{
		Timestamp: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		RunID:     "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d",
		EventType: FileRewritten,
		Path:      "/project/src/app.jsx",
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatal(err)
	}

	var decoded Event
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}

	if !decoded.Timestamp.Equal(original.Timestamp) {
		t.Errorf("timestamp mismatch: %v vs %v", decoded.Timestamp, original.Timestamp)
	}
	if decoded.RunID != original.RunID {
		t.Errorf("runId mismatch: %s vs %s", decoded.RunID, original.RunID)
	}
	if decoded.EventType != original.EventType {
		t.Errorf("eventType mismatch: %s vs %s", decoded.EventType, original.EventType)
	}
	if decoded.Path != original.Path {
		t.Errorf("path mismatch: %s vs %s", decoded.Path, original.Path)
	}
}

func TestEventTimestampISO8601(t *testing.T) {
	e := Event{
		Timestamp: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		EventType: RunStarted,
	}
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"2026-03-14T09:26:53Z"`) {
		t.Errorf("expected RFC3339 timestamp, got %s", data)
	}
}

func TestEventOptionalFieldsOmitted(t *testing.T) {
	e := Event{Timestamp: time.Now(), EventType: LogInitialized}
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, field := range []string{"runId", "path", "detail"} {
		if strings.Contains(s, field) {
			t.Errorf("empty field %q should be omitted, got %s", field, s)
		}
	}
}

func TestEventErrorDetailPreserved(t *testing.T) {
	e := Event{
		Timestamp: time.Now(),
		RunID:     "run-1",
		EventType: FileError,
		Path:      "/project/src/bad.ts",
		Detail:    `parse failed: unterminated string at offset 42`,
	}
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	var decoded Event
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Detail != e.Detail {
		t.Errorf("detail mismatch: %q vs %q", decoded.Detail, e.Detail)
	}
}

func TestEventUnmarshalRejectsBadTimestamp(t *testing.T) {
	var e Event
	err := json.Unmarshal([]byte(`{"timestamp":"yesterday","eventType":"RUN_STARTED"}`), &e)
	if err == nil {
		t.Error("expected error for malformed timestamp")
	}
}
