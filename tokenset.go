package cssprune

import "sort"

// TokenSet is the accumulated universe of class-name candidates seen
// during one build pass. It only grows; insertion order is irrelevant.
type TokenSet map[string]struct{}

// NewTokenSet creates a TokenSet from the given tokens.
func NewTokenSet(tokens ...string) TokenSet {
	s := make(TokenSet, len(tokens))
	for _, t := range tokens {
		s.Add(t)
	}
	return s
}

// Add inserts a token.
func (s TokenSet) Add(token string) {
	s[token] = struct{}{}
}

// Has reports whether token is in the set. Comparison is exact string
// match against the class name as authored.
func (s TokenSet) Has(token string) bool {
	_, ok := s[token]
	return ok
}

// Union merges other into s. Union is commutative and associative:
// merging per-file sets in any order yields the same result.
func (s TokenSet) Union(other TokenSet) {
	for t := range other {
		s[t] = struct{}{}
	}
}

// Len returns the number of tokens.
func (s TokenSet) Len() int { return len(s) }

// Sorted returns the tokens in lexical order, for deterministic output.
func (s TokenSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
