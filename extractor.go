package cssprune

import (
	"strings"
	"unicode"
)

// ExtractorFunc produces candidate class-name tokens from file content.
// Implementations see only the lexical surface of the content; they never
// evaluate interpolation or host-language expressions.
type ExtractorFunc func(content string) ([]string, error)

// Extractors maps a file extension (without dot) to the extractor used
// for files of that type. Unmapped extensions fall back to
// DefaultExtractor. A registered extractor fully replaces the default
// for its extension.
type Extractors map[string]ExtractorFunc

// ForExtension returns the extractor registered for ext, or
// DefaultExtractor when none is.
func (e Extractors) ForExtension(ext string) ExtractorFunc {
	if fn, ok := e[ext]; ok {
		return fn
	}
	return DefaultExtractor
}

// isTokenBoundary marks characters that terminate a candidate token:
// whitespace, quote marks, and angle brackets.
func isTokenBoundary(r rune) bool {
	switch r {
	case '"', '\'', '`', '<', '>':
		return true
	}
	return unicode.IsSpace(r)
}

// DefaultExtractor emits every maximal run of non-boundary characters in
// content. It deliberately over-approximates: any non-whitespace run is a
// candidate, and false positives simply never match a real class name.
// Parsing the content structurally would risk false negatives, which
// silently drop needed styles.
func DefaultExtractor(content string) ([]string, error) {
	var tokens []string
	var current strings.Builder

	for _, r := range content {
		if isTokenBoundary(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
			continue
		}
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens, nil
}
