package cssprune

import "fmt"

// PatternError reports a malformed glob pattern. A pattern that matches
// zero files is not an error.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// TransformError reports a failed content transform. Transforms are fatal
// on failure: extracting from unconverted content would produce
// meaningless tokens.
type TransformError struct {
	File string
	Err  error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform %s: %v", e.File, e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }

// ExtractError reports a failed custom extractor, with the offending file
// identity attached for diagnostics.
type ExtractError struct {
	File string
	Err  error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.File, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }

// SafelistError reports an invalid regular expression in a safelist rule.
// Raised at configuration time, before any scanning begins.
type SafelistError struct {
	Pattern string
	Err     error
}

func (e *SafelistError) Error() string {
	return fmt.Sprintf("safelist pattern %q: %v", e.Pattern, e.Err)
}

func (e *SafelistError) Unwrap() error { return e.Err }
