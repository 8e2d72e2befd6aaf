package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlyphSet(t *testing.T) {
	require.NotEmpty(t, glyphSet)
	assert.Equal(t, 'ｦ', glyphSet[0])
	assert.Contains(t, glyphSet, 'ﾝ')
	assert.Contains(t, glyphSet, '7')
	assert.Contains(t, glyphSet, '∞')

	for _, r := range glyphSet {
		assert.Equal(t, 1, glyphWidth.RuneWidth(r), "glyph %q must be one cell wide", r)
		assert.NotEqual(t, ' ', r)
	}
}

func TestRandomGlyphStaysInSet(t *testing.T) {
	random := seeded(4)
	set := string(glyphSet)
	for i := 0; i < 500; i++ {
		assert.True(t, strings.ContainsRune(set, randomGlyph(random)))
	}
}

func TestPhraseFitting(t *testing.T) {
	random := seeded(8)

	_, ok := phraseFitting(random, 1)
	assert.False(t, ok, "no phrase is a single rune")

	for i := 0; i < 100; i++ {
		p, ok := phraseFitting(random, 4)
		require.True(t, ok)
		assert.LessOrEqual(t, len([]rune(p)), 4)
	}
}

func TestPhrasesAreUppercase(t *testing.T) {
	for _, p := range phrases {
		assert.Equal(t, strings.ToUpper(p), p)
		assert.Equal(t, strings.TrimSpace(p), p)
	}
}
