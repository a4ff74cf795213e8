package watcher

import (
	"context"
	"errors"
	"os"
	"time"
)

// ErrFileNotFound is returned when the file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrFileUnstable is returned when the file does not stabilize within the timeout.
var ErrFileUnstable = errors.New("file did not stabilize within timeout")

// StabilityChecker waits for a file's size to stop changing before the file
// is reformatted, so a save still in progress is never read half-written.
type StabilityChecker struct {
	threshold time.Duration // Time the file size must remain unchanged
	timeout   time.Duration // Maximum time to wait for stability
	interval  time.Duration // How often to check file size
}

// NewStabilityChecker creates a StabilityChecker with the specified
// threshold. Default timeout is 10 seconds, default check interval is
// threshold/4 with a 25ms floor.
func NewStabilityChecker(threshold time.Duration) *StabilityChecker {
	interval := threshold / 4
	if interval < 25*time.Millisecond {
		interval = 25 * time.Millisecond
	}
	return &StabilityChecker{
		threshold: threshold,
		timeout:   10 * time.Second,
		interval:  interval,
	}
}

// WaitForStable blocks until the file size is stable for the threshold
// duration, the file disappears, or the timeout expires.
func (s *StabilityChecker) WaitForStable(path string) error {
	return s.WaitForStableWithContext(context.Background(), path)
}

// WaitForStableWithContext is WaitForStable with cancellation support.
func (s *StabilityChecker) WaitForStableWithContext(ctx context.Context, path string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrFileNotFound
		}
		return err
	}
	lastSize := info.Size()
	stableSince := time.Now()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return ErrFileUnstable
			}
			return ctx.Err()
		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				if os.IsNotExist(err) {
					return ErrFileNotFound
				}
				return err
			}
			if info.Size() != lastSize {
				lastSize = info.Size()
				stableSince = time.Now()
				continue
			}
			if time.Since(stableSince) >= s.threshold {
				return nil
			}
		}
	}
}
