package skim_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/skim"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	t.Run("collapses whitespace runs to single spaces", func(t *testing.T) {
		t.Parallel()

		got := skim.NormalizeText("one  two\t three\n\nfour")
		assert.Equal(t, "one two three four", got)
	})

	t.Run("trims leading and trailing whitespace", func(t *testing.T) {
		t.Parallel()

		got := skim.NormalizeText("\n  padded text  \t")
		assert.Equal(t, "padded text", got)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", skim.NormalizeText("   \n\t  "))
	})
}

func TestClampText(t *testing.T) {
	t.Parallel()

	t.Run("leaves short text untouched", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "short", skim.ClampText("short", skim.MaxArticleChars))
	})

	t.Run("truncates to exactly the budget", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("word ", 4000) // 20,000 chars
		normalized := skim.NormalizeText(long)
		got := skim.ClampText(normalized, skim.MaxArticleChars)

		assert.Len(t, got, skim.MaxArticleChars)
		assert.True(t, strings.HasPrefix(normalized, got))
	})

	t.Run("may cut mid-word", func(t *testing.T) {
		t.Parallel()

		got := skim.ClampText("abcdef", 4)
		assert.Equal(t, "abcd", got)
	})

	t.Run("counts characters, not bytes", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("é", skim.MaxArticleChars+1) // 2 bytes per rune
		got := skim.ClampText(long, skim.MaxArticleChars)

		assert.Equal(t, skim.MaxArticleChars, utf8.RuneCountInString(got))
		assert.True(t, strings.HasPrefix(long, got))
	})

	t.Run("never cuts mid-rune", func(t *testing.T) {
		t.Parallel()

		long := "a" + strings.Repeat("é", skim.MaxArticleChars)
		got := skim.ClampText(long, skim.MaxArticleChars)

		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, skim.MaxArticleChars, utf8.RuneCountInString(got))
	})

	t.Run("non-positive budget yields empty string", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", skim.ClampText("anything", 0))
	})
}
