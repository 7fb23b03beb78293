package cssprune

import (
	"regexp"
	"strings"
)

// SafelistEntry forces classes to be treated as used regardless of scan
// results. Either Literal is set, or Pattern (a regular expression over
// base utility names) with an optional list of variant prefixes to
// cross-product against matches.
type SafelistEntry struct {
	Literal  string
	Pattern  string
	Variants []string
}

type safelistRule struct {
	re       *regexp.Regexp
	variants []string
}

// Safelist is a compiled safelist, ready to resolve against a base-name
// universe.
type Safelist struct {
	literals TokenSet
	rules    []safelistRule
}

// CompileSafelist validates and compiles safelist entries. An invalid
// regular expression is a fatal *SafelistError, raised here at
// configuration time rather than mid-scan.
func CompileSafelist(entries []SafelistEntry) (*Safelist, error) {
	s := &Safelist{literals: NewTokenSet()}

	for _, entry := range entries {
		if entry.Pattern == "" {
			if entry.Literal != "" {
				s.literals.Add(entry.Literal)
			}
			continue
		}
		re, err := regexp.Compile(entry.Pattern)
		if err != nil {
			return nil, &SafelistError{Pattern: entry.Pattern, Err: err}
		}
		variants := make([]string, 0, len(entry.Variants))
		for _, v := range entry.Variants {
			variants = append(variants, strings.TrimSuffix(v, ":"))
		}
		s.rules = append(s.rules, safelistRule{re: re, variants: variants})
	}

	return s, nil
}

// Literals returns the literal class names, which are guaranteed present
// independent of the base-name universe and never variant-expanded.
func (s *Safelist) Literals() TokenSet {
	out := NewTokenSet()
	out.Union(s.literals)
	return out
}

// Resolve computes the full safelisted set against the universe of
// generated base utility names. Each pattern rule is evaluated against
// unprefixed base names only; matches are emitted as-is and once per
// declared variant prefix. A name carrying a variant prefix must never
// reach a rule, or it would be expanded twice.
func (s *Safelist) Resolve(universe []string) TokenSet {
	out := s.Literals()

	for _, rule := range s.rules {
		for _, base := range universe {
			if !rule.re.MatchString(base) {
				continue
			}
			out.Add(base)
			for _, variant := range rule.variants {
				out.Add(variant + ":" + base)
			}
		}
	}

	return out
}
