package audit

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadStatsMissingLog(t *testing.T) {
	stats, err := ReadStats(filepath.Join(t.TempDir(), "nowhere"))
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalRuns != 0 || stats.TotalRewritten != 0 || stats.TotalErrors != 0 {
		t.Errorf("missing log should yield zero stats, got %+v", stats)
	}
}

func TestReadStatsAggregatesRuns(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(AuditConfig{Enabled: true, LogDirectory: dir})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := w.StartRun("/project"); err != nil {
		t.Fatal(err)
	}
	w.RecordRewrite("/project/a.jsx")
	w.RecordRewrite("/project/b.jsx")
	w.RecordRewrite("/project/c.ts")
	w.RecordSkip("/project/d.ts")
	w.RecordError("/project/e.js", "parse failed")
	w.CompleteRun("5 files, 3 changed, 1 unchanged, 1 errors")

	if _, err := w.StartRun("/project"); err != nil {
		t.Fatal(err)
	}
	w.RecordRewrite("/project/f.tsx")
	w.CompleteRun("1 files, 1 changed, 0 unchanged, 0 errors")

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	stats, err := ReadStats(dir)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalRuns != 2 {
		t.Errorf("TotalRuns = %d, want 2", stats.TotalRuns)
	}
	if stats.TotalRewritten != 4 {
		t.Errorf("TotalRewritten = %d, want 4", stats.TotalRewritten)
	}
	if stats.TotalErrors != 1 {
		t.Errorf("TotalErrors = %d, want 1", stats.TotalErrors)
	}
	if stats.ByExtension[".jsx"] != 2 || stats.ByExtension[".ts"] != 1 || stats.ByExtension[".tsx"] != 1 {
		t.Errorf("ByExtension = %v", stats.ByExtension)
	}
}

func TestReadStatsSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(AuditConfig{Enabled: true, LogDirectory: dir})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.StartRun("/project"); err != nil {
		t.Fatal(err)
	}
	w.RecordRewrite("/project/a.jsx")
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	logPath := filepath.Join(dir, logFilename)
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	f.WriteString("{truncated\n\n")
	f.Close()

	stats, err := ReadStats(dir)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalRuns != 1 || stats.TotalRewritten != 1 {
		t.Errorf("malformed tail should not affect totals, got %+v", stats)
	}
}
