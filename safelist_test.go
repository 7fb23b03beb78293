package cssprune

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileSafelistInvalidPattern(t *testing.T) {
	_, err := CompileSafelist([]SafelistEntry{
		{Pattern: "bg-(red"},
	})
	require.Error(t, err)

	var safelistErr *SafelistError
	require.True(t, errors.As(err, &safelistErr))
	assert.Equal(t, "bg-(red", safelistErr.Pattern)
}

func TestSafelistResolve(t *testing.T) {
	safelist, err := CompileSafelist([]SafelistEntry{
		{Literal: "bg-red-500"},
		{Pattern: "bg-(red|green)-(100|200)", Variants: []string{"hover"}},
	})
	require.NoError(t, err)

	universe := []string{"bg-red-100", "bg-green-200", "bg-blue-100"}
	resolved := safelist.Resolve(universe)

	expected := []string{
		"bg-red-500",
		"bg-red-100",
		"hover:bg-red-100",
		"bg-green-200",
		"hover:bg-green-200",
	}
	assert.ElementsMatch(t, expected, resolved.Sorted())

	assert.False(t, resolved.Has("bg-blue-100"))
	assert.False(t, resolved.Has("hover:bg-red-500"), "literals are never variant-expanded")
}

func TestSafelistResolveNoStackedVariants(t *testing.T) {
	safelist, err := CompileSafelist([]SafelistEntry{
		{Pattern: "^text-", Variants: []string{"hover", "focus", "lg"}},
	})
	require.NoError(t, err)

	resolved := safelist.Resolve([]string{"text-sm", "text-lg"})

	for _, token := range resolved.Sorted() {
		assert.LessOrEqual(t, strings.Count(token, ":"), 1,
			"a single rule application must not stack variant prefixes: %q", token)
	}
	assert.True(t, resolved.Has("text-sm"))
	assert.True(t, resolved.Has("hover:text-sm"))
	assert.True(t, resolved.Has("lg:text-lg"))
	assert.False(t, resolved.Has("lg:hover:text-sm"))
}

func TestSafelistVariantColonSuffixTrimmed(t *testing.T) {
	safelist, err := CompileSafelist([]SafelistEntry{
		{Pattern: "^btn$", Variants: []string{"hover:"}},
	})
	require.NoError(t, err)

	resolved := safelist.Resolve([]string{"btn"})
	assert.True(t, resolved.Has("hover:btn"))
	assert.False(t, resolved.Has("hover::btn"))
}

func TestSafelistLiteralsIndependentOfUniverse(t *testing.T) {
	safelist, err := CompileSafelist([]SafelistEntry{
		{Literal: "sr-only"},
	})
	require.NoError(t, err)

	resolved := safelist.Resolve(nil)
	assert.True(t, resolved.Has("sr-only"), "literals hold regardless of the universe")
}

func TestSafelistEmpty(t *testing.T) {
	safelist, err := CompileSafelist(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, safelist.Resolve([]string{"btn"}).Len())
}
