package cssprune

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerateClasses(t *testing.T) {
	tests := []struct {
		name     string
		css      string
		expected []string
	}{
		{
			name:     "simple classes",
			css:      ".btn { color: red; } .card { padding: 1rem; }",
			expected: []string{"btn", "card"},
		},
		{
			name:     "pseudo states collapse to the base selector",
			css:      ".btn:hover { color: blue; }",
			expected: []string{"btn"},
		},
		{
			name: "compound and nested selectors",
			css: `.btn.btn--primary { color: red; }
			      @media (min-width: 768px) { .card { margin: 0; } }`,
			expected: []string{"btn", "btn--primary", "card"},
		},
		{
			name:     "deduplicated and sorted",
			css:      ".z { } .a { } .z { }",
			expected: []string{"a", "z"},
		},
		{
			name:     "element selectors ignored",
			css:      "body { margin: 0; } .wrap { }",
			expected: []string{"wrap"},
		},
		{
			name:     "empty stylesheet",
			css:      "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classes := EnumerateClasses(tt.css)
			require.Equal(t, tt.expected, classes)
		})
	}
}

func TestEnumerateClassesFeedsSafelist(t *testing.T) {
	css := ".bg-red-100 { } .bg-green-200 { } .bg-blue-100 { }"
	universe := EnumerateClasses(css)

	safelist, err := CompileSafelist([]SafelistEntry{
		{Pattern: "bg-(red|green)-"},
	})
	require.NoError(t, err)

	resolved := safelist.Resolve(universe)
	assert.True(t, resolved.Has("bg-red-100"))
	assert.True(t, resolved.Has("bg-green-200"))
	assert.False(t, resolved.Has("bg-blue-100"))
}
