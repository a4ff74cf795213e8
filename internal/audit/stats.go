package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Stats summarizes an audit log.
type Stats struct {
	TotalRuns      int
	TotalRewritten int
	TotalErrors    int
	ByExtension    map[string]int // rewritten files per extension
}

// ReadStats parses the audit log in logDirectory and aggregates totals.
// A missing log yields zero stats, not an error; malformed lines are skipped
// so a partially written log never blocks reporting.
func ReadStats(logDirectory string) (*Stats, error) {
	stats := &Stats{ByExtension: make(map[string]int)}

	logPath := filepath.Join(logDirectory, logFilename)
	file, err := os.Open(logPath)
	if os.IsNotExist(err) {
		return stats, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var event Event
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			continue
		}
		switch event.EventType {
		case RunStarted:
			stats.TotalRuns++
		case FileRewritten:
			stats.TotalRewritten++
			ext := strings.ToLower(filepath.Ext(event.Path))
			if ext != "" {
				stats.ByExtension[ext]++
			}
		case FileError:
			stats.TotalErrors++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read audit log: %w", err)
	}

	return stats, nil
}
