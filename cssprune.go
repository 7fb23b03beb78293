// Package cssprune discovers which utility CSS classes a codebase actually
// uses, so a style pipeline can drop everything else.
//
// The engine scans source files matched by glob patterns, extracts
// class-name-like tokens from their content, merges in a configured
// safelist, and answers "is this class used?" for any candidate rule.
//
// # Scanning
//
//	cfg := cssprune.Config{
//		Patterns: []cssprune.SourcePattern{
//			{Glob: "web/**/*.{html,templ}"},
//			{Raw: `<div class="btn btn--ghost">`, Extension: "html"},
//		},
//	}
//	result, err := cssprune.Scan(ctx, cfg)
//
// # Deciding
//
//	safelist, err := cssprune.CompileSafelist(entries)
//	decider := cssprune.NewDecider(result.Tokens, safelist.Resolve(universe))
//	decider.Used("hover:bg-red-100")
//
// Extraction is purely lexical: a class name assembled through string
// concatenation or template interpolation in the source is never
// discovered. Over-inclusion is harmless (a stray token matches no real
// class); under-inclusion silently drops needed styles, so the default
// extractor errs on the side of emitting too much.
//
// # CLI Tool
//
// cssprune also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/cssprune/cmd/cssprune@latest
package cssprune
