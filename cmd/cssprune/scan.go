package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"github.com/yacobolo/cssprune"
	"github.com/yacobolo/cssprune/internal/report"
	"github.com/yacobolo/cssprune/internal/watch"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan content files and report which classes survive",
	Long: `Resolve the configured content patterns, extract class-name
candidates from every matched file, merge in the safelist, and report
which stylesheet classes are kept or dropped.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runScan,
}

func init() {
	f := scanCmd.Flags()
	f.StringSlice("content", nil, "Glob patterns for content files to scan")
	f.String("stylesheet", "", "Stylesheet supplying the candidate class universe")
	f.String("output-format", "text", "Output format: text|json")
	f.Int("concurrency", 0, "Max files scanned in parallel (0 = GOMAXPROCS)")
	f.Bool("strict", false, "Exit 1 when no content files matched (CI mode)")
	f.Bool("watch", false, "Re-scan when matched content changes")
}

func runScan(_ *cobra.Command, _ []string) error {
	cfg := buildScanConfig()

	// Safelist regexes are validated here, before any scanning begins.
	safelist, err := cssprune.CompileSafelist(buildSafelistEntries())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := scanOnce(ctx, cfg, safelist); err != nil {
		return err
	}

	if getBoolWithFallback("watch", "scan.watch", false) {
		return watchLoop(ctx, cfg, safelist)
	}
	return nil
}

// scanOnce runs a single complete pass and writes the report.
func scanOnce(ctx context.Context, cfg cssprune.Config, safelist *cssprune.Safelist) error {
	result, err := cssprune.Scan(ctx, cfg)
	if err != nil {
		return err
	}

	if getBoolWithFallback("strict", "scan.strict", false) && result.Stats.FilesScanned == 0 {
		return fmt.Errorf("strict mode: no content files matched")
	}

	var universe []string
	stylesheet := getStringWithFallback("stylesheet", "scan.stylesheet", "")
	if stylesheet != "" {
		data, err := os.ReadFile(stylesheet)
		if err != nil {
			return fmt.Errorf("reading stylesheet: %w", err)
		}
		universe = cssprune.EnumerateClasses(string(data))
	}

	resolved := safelist.Resolve(universe)
	decider := cssprune.NewDecider(result.Tokens, resolved)
	kept, dropped := decider.Filter(universe)

	rep := report.Report{
		Stats:      result.Stats,
		TokenCount: result.Tokens.Len(),
		Universe:   len(universe),
		Safelisted: resolved.Len(),
		Kept:       kept,
		Dropped:    dropped,
	}

	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}

	format := getStringWithFallback("output-format", "scan.output-format", "text")
	if format == "json" {
		return report.WriteJSON(os.Stdout, rep)
	}

	reporter := report.NewReporter(os.Stdout, report.Options{
		UseColors: report.ShouldUseColors(getBoolWithFallback("color", "color", false)),
		Verbose:   getBoolWithFallback("verbose", "verbose", false),
	})
	reporter.Print(rep)
	return nil
}

// watchLoop re-runs the pass whenever matched content changes.
func watchLoop(ctx context.Context, cfg cssprune.Config, safelist *cssprune.Safelist) error {
	watcher, err := watch.New(250 * time.Millisecond)
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	for _, root := range watchRoots(cfg.Patterns) {
		if err := watcher.AddRecursive(root); err != nil {
			return fmt.Errorf("watching %s: %w", root, err)
		}
	}

	fmt.Fprintln(os.Stderr, "Watching for changes (Ctrl-C to stop)")
	err = watcher.Run(ctx, func([]string) {
		if err := scanOnce(ctx, cfg, safelist); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// watchRoots derives the static directory prefixes of the glob patterns,
// deduplicated. Raw entries have nothing to watch.
func watchRoots(patterns []cssprune.SourcePattern) []string {
	seen := make(map[string]bool)
	var roots []string
	for _, p := range patterns {
		if p.IsRaw() {
			continue
		}
		base, _ := doublestar.SplitPattern(p.Glob)
		if base == "" {
			base = "."
		}
		if !seen[base] {
			seen[base] = true
			roots = append(roots, base)
		}
	}
	return roots
}
