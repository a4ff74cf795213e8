// Package main provides the CLI entry point for tailsort.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tailsort/internal/orchestrator"
	"tailsort/internal/output"
	"tailsort/internal/watcher"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("tailsort", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: tailsort [flags] <directory>")
		flags.PrintDefaults()
	}

	check := flags.Bool("check", false, "report files that would change without writing them")
	merge := flags.Bool("merge", false, "rewrite class strings into merge-helper calls per group")
	watch := flags.Bool("watch", false, "keep running and reformat files as they change")
	verbose := flags.Bool("verbose", false, "print per-file detail")
	configPath := flags.String("config", "", "path to a tailsort.json configuration file")

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return 2
	}
	targetDir := flags.Arg(0)

	outCfg := output.DefaultConfig()
	outCfg.Verbose = *verbose
	out := output.New(outCfg)

	opts := orchestrator.Options{
		ConfigPath: *configPath,
		Check:      *check,
		Merge:      *merge,
		Output:     out,
	}

	summary, err := orchestrator.Run(targetDir, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	for _, result := range summary.Results {
		if !result.Success {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", result.Path, result.Error)
		}
	}

	fmt.Println(summary.PrintSummary())

	if *watch {
		return watchLoop(targetDir, opts, out)
	}

	if summary.HasErrors() {
		return 1
	}
	if *check && summary.HasChanges() {
		return 1
	}
	return 0
}

// watchLoop keeps reformatting files as they change until interrupted.
func watchLoop(targetDir string, opts orchestrator.Options, out *output.Output) int {
	cfg, _, err := orchestrator.LoadConfiguration(targetDir, opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	rw := orchestrator.NewRewriter(cfg, opts)

	watchCfg := watcher.DefaultWatchConfig()
	watchCfg.IgnorePatterns = cfg.IgnorePatterns

	w := watcher.New(watchCfg, func(path string) (bool, error) {
		result, err := rw.ProcessFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", path, err)
			return false, err
		}
		if result.Changed {
			out.Changed(path, result.Written)
		}
		return result.Changed, nil
	})

	if err := w.Start(targetDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to start watcher: %v\n", err)
		return 1
	}
	out.Info("Watching %s for changes (Ctrl+C to stop)", targetDir)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	ws := w.Stop()
	out.Info("Watched for %s: rewrote %d, unchanged %d, errors %d",
		ws.Duration.Round(time.Second), ws.FilesRewritten, ws.FilesUnchanged, ws.FilesErrored)

	if ws.FilesErrored > 0 {
		return 1
	}
	return 0
}
