package cssprune

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config holds one build pass's scanning configuration. All fields are
// treated as read-only for the duration of the pass.
type Config struct {
	Patterns     []SourcePattern
	Extractors   Extractors
	Transformers Transformers

	// Concurrency caps the number of files scanned in parallel.
	// Zero means GOMAXPROCS.
	Concurrency int
}

// ScanResult is the outcome of one complete pass. Nothing persists
// across passes.
type ScanResult struct {
	Tokens TokenSet
	Stats  ScanStats
}

// Scan resolves the configured patterns and extracts candidate tokens
// from every matched file. Files are independent, so reads, transforms
// and extraction run in parallel; each worker fills an isolated local
// set, and a single reduction merges them after all workers finish. Any
// error aborts the pass and the partial results are discarded wholesale.
func Scan(ctx context.Context, cfg Config) (*ScanResult, error) {
	files, stats, err := ResolveFiles(cfg.Patterns)
	if err != nil {
		return nil, err
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	locals := make([]TokenSet, len(files))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)

	for i, h := range files {
		i, h := i, h
		group.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			tokens, err := scanFile(h, cfg)
			if err != nil {
				return err
			}
			locals[i] = tokens
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	merged := NewTokenSet()
	for _, local := range locals {
		merged.Union(local)
	}

	return &ScanResult{Tokens: merged, Stats: stats}, nil
}

// scanFile reads, transforms and extracts a single file into a local
// token set.
func scanFile(h FileHandle, cfg Config) (TokenSet, error) {
	content, err := h.Content()
	if err != nil {
		return nil, err
	}

	content, err = cfg.Transformers.Apply(h, content)
	if err != nil {
		return nil, err
	}

	extract := cfg.Extractors.ForExtension(h.Extension)
	tokens, err := extract(content)
	if err != nil {
		return nil, &ExtractError{File: h.Path, Err: err}
	}

	return NewTokenSet(tokens...), nil
}

// Decider answers whether a candidate rule is used. Queries are pure and
// safe to issue concurrently: both sets are read-only after construction.
type Decider struct {
	tokens     TokenSet
	safelisted TokenSet
}

// NewDecider builds a decision engine from a scan's token set and the
// resolved safelist (literals plus pattern expansions).
func NewDecider(tokens, safelisted TokenSet) *Decider {
	return &Decider{tokens: tokens, safelisted: safelisted}
}

// Used reports whether the fully-qualified class (base name plus zero or
// more variant prefixes, exactly as authored) should survive into output.
func (d *Decider) Used(class string) bool {
	return d.tokens.Has(class) || d.safelisted.Has(class)
}

// Filter splits a candidate universe into kept and dropped classes,
// preserving the universe's order.
func (d *Decider) Filter(universe []string) (kept, dropped []string) {
	for _, class := range universe {
		if d.Used(class) {
			kept = append(kept, class)
		} else {
			dropped = append(dropped, class)
		}
	}
	return kept, dropped
}
