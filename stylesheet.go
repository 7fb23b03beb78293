package cssprune

import (
	"sort"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// EnumerateClasses lexes stylesheet content and returns every class
// selector name it defines, deduplicated and sorted.
//
// This is how the CLI obtains the universe of candidate base names for
// safelist resolution and kept/dropped reporting; library callers that
// own a rule generator can supply the universe directly instead.
func EnumerateClasses(content string) []string {
	lexer := css.NewLexer(parse.NewInputString(content))
	seen := make(map[string]bool)

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			break
		}

		// A '.' delimiter followed by an identifier is a class selector.
		if tt == css.DelimToken && len(text) > 0 && text[0] == '.' {
			tt2, name := lexer.Next()
			if tt2 == css.IdentToken {
				seen[string(name)] = true
			}
		}
	}

	classes := make([]string, 0, len(seen))
	for name := range seen {
		classes = append(classes, name)
	}
	sort.Strings(classes)
	return classes
}
