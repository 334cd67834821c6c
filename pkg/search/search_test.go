package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerms(t *testing.T) {
	t.Run("splits on whitespace", func(t *testing.T) {
		assert.Equal(t, []string{"foo", "bar"}, Terms("foo bar"))
	})

	t.Run("keeps quoted substrings together", func(t *testing.T) {
		assert.Equal(t, []string{"foo bar", "baz"}, Terms(`"foo bar" baz`))
	})

	t.Run("empty query yields no terms", func(t *testing.T) {
		assert.Empty(t, Terms(""))
	})

	t.Run("unterminated quote degrades to whitespace splitting", func(t *testing.T) {
		assert.Equal(t, []string{`"foo`, "bar"}, Terms(`"foo bar`))
	})
}

func TestFilters(t *testing.T) {
	t.Run("extracts field and value", func(t *testing.T) {
		assert.Equal(t, []Filter{{Field: "version", Value: "1.0"}}, Filters("version:1.0"))
	})

	t.Run("lowercases the field", func(t *testing.T) {
		assert.Equal(t, []Filter{{Field: "version", Value: "2.0"}}, Filters("VERSION:2.0"))
	})

	t.Run("splits on the first colon only", func(t *testing.T) {
		assert.Equal(t, []Filter{{Field: "version", Value: "1:2"}}, Filters("version:1:2"))
	})

	t.Run("drops terms without a colon", func(t *testing.T) {
		assert.Empty(t, Filters("foo bar"))
	})
}

func TestVersionTerms(t *testing.T) {
	t.Run("collects recognized version filters", func(t *testing.T) {
		assert.Equal(t, []string{"1.0", "2.0"}, VersionTerms("version:1.0 Version:2.0"))
	})

	t.Run("ignores unrecognized fields", func(t *testing.T) {
		assert.Empty(t, VersionTerms("author:alice foo"))
	})
}
