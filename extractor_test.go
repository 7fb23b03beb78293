package cssprune

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultExtractor(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantTokens  []string
		rejectedAny []string
	}{
		{
			name:       "class attribute",
			content:    `<div class="md:flex text-lg">`,
			wantTokens: []string{"div", "class=", "md:flex", "text-lg"},
		},
		{
			name:       "single quotes",
			content:    `<span class='btn btn--ghost'>`,
			wantTokens: []string{"btn", "btn--ghost"},
		},
		{
			name:       "plain text",
			content:    "p-4  m-2\n\tflex",
			wantTokens: []string{"p-4", "m-2", "flex"},
		},
		{
			name:       "variant stacks survive intact",
			content:    `class="lg:hover:flex dark:bg-black/50"`,
			wantTokens: []string{"lg:hover:flex", "dark:bg-black/50"},
		},
		{
			name:    "no interpolation evaluation",
			content: `text-{{cond ? 'red':'green'}}-600`,
			// The candidate classes are split across template syntax, so
			// they must not be reconstructed.
			rejectedAny: []string{"text-red-600", "text-green-600"},
			wantTokens:  []string{"red", "green"},
		},
		{
			name:       "empty content",
			content:    "",
			wantTokens: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := DefaultExtractor(tt.content)
			require.NoError(t, err)

			set := NewTokenSet(tokens...)
			for _, want := range tt.wantTokens {
				assert.True(t, set.Has(want), "missing token %q in %v", want, tokens)
			}
			for _, rejected := range tt.rejectedAny {
				assert.False(t, set.Has(rejected), "token %q must not be reconstructed", rejected)
			}
		})
	}
}

func TestDefaultExtractorSupersetOfFields(t *testing.T) {
	// Every whitespace-delimited run free of quotes and brackets must
	// survive extraction verbatim.
	content := "btn card--raised   p-4\nhover:underline"
	tokens, err := DefaultExtractor(content)
	require.NoError(t, err)

	set := NewTokenSet(tokens...)
	for _, field := range []string{"btn", "card--raised", "p-4", "hover:underline"} {
		require.True(t, set.Has(field), "field %q lost", field)
	}
}

func TestExtractorsForExtension(t *testing.T) {
	custom := func(content string) ([]string, error) {
		return []string{"custom"}, nil
	}
	extractors := Extractors{"vue": custom}

	t.Run("registered extension replaces default", func(t *testing.T) {
		tokens, err := extractors.ForExtension("vue")(`<div class="btn">`)
		require.NoError(t, err)
		assert.Equal(t, []string{"custom"}, tokens)
	})

	t.Run("unmapped extension falls back to default", func(t *testing.T) {
		tokens, err := extractors.ForExtension("html")(`btn card`)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"btn", "card"}, tokens)
	})

	t.Run("custom extractor error propagates", func(t *testing.T) {
		failing := Extractors{"jsx": func(string) ([]string, error) {
			return nil, errors.New("boom")
		}}
		_, err := failing.ForExtension("jsx")("content")
		require.Error(t, err)
	})
}
