// Package orchestrator coordinates the tailsort formatting workflow.
package orchestrator

import (
	"fmt"
	"path/filepath"

	"tailsort/internal/audit"
	"tailsort/internal/config"
	"tailsort/internal/discovery"
	"tailsort/internal/output"
	"tailsort/internal/rewriter"
	"tailsort/internal/scanner"
)

// Options selects the run mode.
type Options struct {
	// ConfigPath points at an explicit configuration file. When empty, the
	// nearest tailsort.json above the target directory is used, and defaults
	// apply when none exists.
	ConfigPath string
	// Check previews changes without writing any file.
	Check bool
	// Merge replaces class strings with merge-helper calls per group chunk.
	Merge bool
	// Output receives run reporting; a default is built when nil.
	Output *output.Output
}

// Result represents the outcome of processing a single file.
type Result struct {
	Path    string
	Changed bool
	Written bool
	Success bool
	Error   error
}

// Summary represents the overall results of a tailsort run.
type Summary struct {
	TotalFiles     int
	ChangedCount   int
	UnchangedCount int
	ErrorCount     int
	Results        []Result
	Check          bool
}

// Run executes the tailsort workflow over targetDir: resolve configuration,
// scan for source files, and rewrite each one independently. Per-file
// failures land in the summary; only setup failures return an error.
func Run(targetDir string, opts Options) (*Summary, error) {
	out := opts.Output
	if out == nil {
		out = output.New(output.DefaultConfig())
	}

	cfg, cfgPath, err := LoadConfiguration(targetDir, opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cfgPath != "" {
		out.Verbose("using configuration %s", cfgPath)
	}

	files, err := scanner.ScanWithOptions(targetDir, scanner.ScanOptions{
		SymlinkPolicy:  scanner.SymlinkPolicySkip,
		IgnorePatterns: cfg.IgnorePatterns,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", targetDir, err)
	}

	var auditWriter *audit.Writer
	if cfg.Audit != nil && cfg.Audit.Enabled {
		auditCfg := *cfg.Audit
		if !filepath.IsAbs(auditCfg.LogDirectory) {
			auditCfg.LogDirectory = filepath.Join(targetDir, auditCfg.LogDirectory)
		}
		auditWriter, err = audit.NewWriter(auditCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open audit log: %w", err)
		}
		defer auditWriter.Close()
		if _, err := auditWriter.StartRun(targetDir); err != nil {
			return nil, fmt.Errorf("failed to record run start: %w", err)
		}
	}

	rw := NewRewriter(cfg, opts)

	summary := &Summary{
		TotalFiles: len(files),
		Results:    make([]Result, 0, len(files)),
		Check:      opts.Check,
	}

	out.StartProgress(len(files))
	for i, file := range files {
		out.UpdateProgress(i + 1)
		result := processFile(rw, file.FullPath)
		summary.Results = append(summary.Results, result)

		switch {
		case !result.Success:
			summary.ErrorCount++
			if auditWriter != nil {
				_ = auditWriter.RecordError(result.Path, result.Error.Error())
			}
		case result.Changed:
			summary.ChangedCount++
			out.Changed(displayPath(targetDir, result.Path), result.Written)
			if auditWriter != nil {
				_ = auditWriter.RecordRewrite(result.Path)
			}
		default:
			summary.UnchangedCount++
			out.Verbose("unchanged %s", displayPath(targetDir, result.Path))
			if auditWriter != nil {
				_ = auditWriter.RecordSkip(result.Path)
			}
		}
	}
	out.EndProgress()

	if auditWriter != nil {
		if err := auditWriter.CompleteRun(summary.oneLine()); err != nil {
			out.Error("failed to record run completion: %v", err)
		}
	}

	return summary, nil
}

// NewRewriter builds the file rewriter for a configuration and run options.
func NewRewriter(cfg *config.Configuration, opts Options) *rewriter.Rewriter {
	mode := rewriter.ModeFormat
	if opts.Merge {
		mode = rewriter.ModeMerge
	}
	return rewriter.New(rewriter.Options{
		Format:  cfg.FormatOptions(),
		Mode:    mode,
		Preview: opts.Check,
	})
}

// LoadConfiguration resolves the effective configuration: an explicit path,
// else the nearest discovered tailsort.json, else defaults. Returns the
// configuration and the path it came from ("" for defaults).
func LoadConfiguration(targetDir, explicit string) (*config.Configuration, string, error) {
	path := explicit
	if path == "" {
		found, err := discovery.FindConfig(targetDir)
		if err != nil {
			return nil, "", fmt.Errorf("failed to locate configuration: %w", err)
		}
		if found == "" {
			return config.Default(), "", nil
		}
		path = found
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, path, nil
}

// processFile rewrites a single file, isolating its failure from the rest of
// the run.
func processFile(rw *rewriter.Rewriter, path string) Result {
	result, err := rw.ProcessFile(path)
	if err != nil {
		return Result{Path: path, Success: false, Error: err}
	}
	return Result{
		Path:    result.Path,
		Changed: result.Changed,
		Written: result.Written,
		Success: true,
	}
}

// displayPath renders a path relative to the target directory when possible.
func displayPath(targetDir, path string) string {
	if rel, err := filepath.Rel(targetDir, path); err == nil && !filepath.IsAbs(rel) {
		return rel
	}
	return path
}

// HasErrors returns true if any file failed during the run.
func (s *Summary) HasErrors() bool {
	return s.ErrorCount > 0
}

// HasChanges returns true if any file changed (or would change in check
// mode).
func (s *Summary) HasChanges() bool {
	return s.ChangedCount > 0
}

// oneLine is the compact run summary recorded in the audit log.
func (s *Summary) oneLine() string {
	return fmt.Sprintf("%d files, %d changed, %d unchanged, %d errors",
		s.TotalFiles, s.ChangedCount, s.UnchangedCount, s.ErrorCount)
}

// PrintSummary returns a formatted human-readable summary.
func (s *Summary) PrintSummary() string {
	verb := "rewrote"
	if s.Check {
		verb = "would rewrite"
	}
	msg := fmt.Sprintf("Checked %d files: %s %d, %d already formatted",
		s.TotalFiles, verb, s.ChangedCount, s.UnchangedCount)
	if s.ErrorCount > 0 {
		msg += fmt.Sprintf(", %d errors", s.ErrorCount)
	}
	return msg
}
