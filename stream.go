package main

import "math"

// === STREAM ===

// Stream is a single falling column of glyphs. The head sits at row
// floor(Head) and Length trailing cells follow above it.
type Stream struct {
	ID     uint64
	Column int
	Head   float64 // Row of the head glyph; fractional for smooth speeds
	Speed  float64 // Cells per tick
	Length int     // Trailing cells behind the head

	// Glyphs holds Length+1 glyphs; index 0 is the head, index i is i rows above it.
	Glyphs []rune

	pinned []bool // glyphs owned by an embedded phrase
}

// newStream creates a stream in col with a random speed, length and glyphs.
func newStream(id uint64, col, height int, head float64, cfg *Config, random Random) Stream {
	maxLength := min(cfg.MaxLength, max(height, cfg.MinLength))
	length := intBetween(random, cfg.MinLength, maxLength)

	glyphs := make([]rune, length+1)
	for i := range glyphs {
		glyphs[i] = randomGlyph(random)
	}
	return Stream{
		ID:     id,
		Column: col,
		Head:   head,
		Speed:  floatBetween(random, cfg.MinSpeed, cfg.MaxSpeed),
		Length: length,
		Glyphs: glyphs,
		pinned: make([]bool, length+1),
	}
}

// HeadRow returns the grid row of the head glyph.
func (s *Stream) HeadRow() int {
	return int(math.Floor(s.Head))
}

// Retired reports whether the whole span has fallen past a grid of the given height.
func (s *Stream) Retired(height int) bool {
	return s.Head-float64(s.Length) >= float64(height)
}

// fall moves the stream down by one tick's worth of speed.
func (s *Stream) fall() {
	s.Head += s.Speed
}

// flicker re-rolls unpinned glyphs: the head with headChance, the trail with trailChance.
func (s *Stream) flicker(random Random, trailChance, headChance float64) {
	if !s.pinned[0] && chance(random, headChance) {
		s.Glyphs[0] = randomGlyph(random)
	}
	for i := 1; i < len(s.Glyphs); i++ {
		if s.pinned[i] {
			continue
		}
		if chance(random, trailChance) {
			s.Glyphs[i] = randomGlyph(random)
		}
	}
}

// embed writes phrase vertically into the trail so it reads top to bottom,
// with its last rune offset cells above the head. The cells are pinned
// against flicker. It reports false when the phrase does not fit.
func (s *Stream) embed(phrase string, offset int) bool {
	runes := []rune(phrase)
	n := len(runes)
	if n == 0 || offset < 1 || offset+n-1 > s.Length {
		return false
	}
	for k, r := range runes {
		i := offset + n - 1 - k
		s.Glyphs[i] = r
		s.pinned[i] = true
	}
	return true
}
