package main

import "github.com/mattn/go-runewidth"

// === GLYPHS ===

// Half-width katakana block used for the rain, U+FF66 (ｦ) through U+FF9D (ﾝ).
const (
	katakanaFirst = 'ｦ'
	katakanaLast  = 'ﾝ'
)

// glyphSet is the fixed alphabet streams draw from: half-width katakana,
// ASCII digits and a small set of symbols.
var glyphSet = buildGlyphSet()

func buildGlyphSet() []rune {
	set := make([]rune, 0, katakanaLast-katakanaFirst+1+30)
	for r := katakanaFirst; r <= katakanaLast; r++ {
		set = append(set, r)
	}
	set = append(set, []rune("0123456789")...)
	set = append(set, []rune(`:."=*+-<>|¦╌┊∞≡±∓∴∵⊕`)...)
	return set
}

// randomGlyph picks a glyph from glyphSet.
func randomGlyph(random Random) rune {
	return glyphSet[random.IntN(len(glyphSet))]
}

// glyphWidth measures glyphs as a non-CJK terminal would, so ambiguous-width
// symbols count as one cell regardless of the user's locale.
var glyphWidth = &runewidth.Condition{EastAsianWidth: false}

// phrases are the easter-egg messages hidden in the rain.
var phrases = []string{
	"WAKE UP NEO",
	"FOLLOW THE WHITE RABBIT",
	"THERE IS NO SPOON",
	"THE ONE",
	"KNOCK KNOCK",
	"FREE YOUR MIND",
	"RED PILL",
	"BLUE PILL",
	"MORPHEUS",
	"TRINITY",
	"ZION",
	"WHOA",
	"I KNOW KUNG FU",
	"DEJA VU",
	"RABBIT HOLE",
	"MR ANDERSON",
	"THE MATRIX HAS YOU",
	"CHOICE IS AN ILLUSION",
	"NOT LIKE THIS",
	"DODGE THIS",
	"WHAT IS REAL",
	"BELIEVE",
	"SYSTEM FAILURE",
	"HE IS THE ONE",
	"DO NOT TRY TO BEND THE SPOON",
	"TAKE THE RED PILL",
	"42",
	"HELLO WORLD",
	"COGITO ERGO SUM",
	"WHY DO MY EYES HURT",
	"THE CAKE IS A LIE",
}

// phraseFitting picks a random phrase no longer than maxLen runes.
// It reports false when none fits.
func phraseFitting(random Random, maxLen int) (string, bool) {
	var fits []string
	for _, p := range phrases {
		if len([]rune(p)) <= maxLen {
			fits = append(fits, p)
		}
	}
	if len(fits) == 0 {
		return "", false
	}
	return fits[random.IntN(len(fits))], true
}
