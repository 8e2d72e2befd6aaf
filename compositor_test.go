package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeHeadAndTrail(t *testing.T) {
	p := DefaultPalette()
	c := NewCompositor(p)
	s := fixedStream(1, 0, 9, 1, 8)
	s.Glyphs[0] = 'ｱ'

	frame := c.Compose(Snapshot{Streams: []Stream{s}}, 1, 10)

	head := frame.At(0, 9)
	assert.Equal(t, 'ｱ', head.Glyph)
	assert.Equal(t, p.Head, head.Color)
	assert.Equal(t, 1.0, head.Intensity)

	prev := frame.At(0, 8)
	assert.Equal(t, p.Trail, prev.Color)
	for y := 7; y >= 1; y-- {
		cell := frame.At(0, y)
		assert.Less(t, cell.Intensity, prev.Intensity, "row %d", y)
		assert.LessOrEqual(t, cell.Color.G, prev.Color.G, "row %d", y)
		prev = cell
	}
	assert.Equal(t, p.Floor, frame.At(0, 1).Color)
	assert.InDelta(t, p.FloorIntensity, frame.At(0, 1).Intensity, 1e-9)
	assert.True(t, frame.At(0, 0).Blank(), "nothing past the trail")
}

func TestComposeIsPure(t *testing.T) {
	e := newTestEngine(t, DefaultConfig(), 5)
	e.Populate(40, 15)
	for i := 0; i < 30; i++ {
		e.Step(40, 15)
	}
	e.TriggerGlitch(3, 2, 5)
	snap := e.Snapshot()

	before := make([]Stream, len(snap.Streams))
	for i, s := range snap.Streams {
		before[i] = s
		before[i].Glyphs = append([]rune(nil), s.Glyphs...)
	}

	c := NewCompositor(DefaultPalette())
	first := c.Compose(snap, 40, 15)
	second := c.Compose(snap, 40, 15)
	assert.Equal(t, first, second)

	for i, s := range snap.Streams {
		assert.Equal(t, before[i].Head, s.Head)
		assert.Equal(t, before[i].Glyphs, s.Glyphs)
	}
}

func TestComposeBrighterCellWins(t *testing.T) {
	p := DefaultPalette()
	c := NewCompositor(p)
	upper := fixedStream(1, 0, 3, 1, 5)
	upper.Glyphs[0] = 'U'
	lower := fixedStream(2, 0, 5, 1, 5)

	for _, streams := range [][]Stream{{upper, lower}, {lower, upper}} {
		frame := c.Compose(Snapshot{Streams: streams}, 1, 8)
		assert.Equal(t, 'U', frame.At(0, 3).Glyph)
		assert.Equal(t, p.Head, frame.At(0, 3).Color)
		assert.Equal(t, p.Head, frame.At(0, 5).Color)
	}
}

func TestComposeClipsToGrid(t *testing.T) {
	c := NewCompositor(DefaultPalette())
	streams := []Stream{
		fixedStream(1, 0, 2, 1, 5),  // top of the trail above row 0
		fixedStream(2, 1, 12, 1, 5), // head below the bottom
		fixedStream(3, 9, 3, 1, 2),  // column outside the grid
		fixedStream(4, 2, -4, 1, 3), // not on screen yet
	}

	frame := c.Compose(Snapshot{Streams: streams}, 3, 10)
	require.Equal(t, 3, frame.Width)
	require.Equal(t, 10, frame.Height)
	for y := 0; y <= 2; y++ {
		assert.False(t, frame.At(0, y).Blank())
	}
	assert.True(t, frame.At(1, 6).Blank())
	assert.False(t, frame.At(1, 7).Blank())
	assert.False(t, frame.At(1, 9).Blank())
	for y := 0; y < 10; y++ {
		assert.True(t, frame.At(2, y).Blank())
	}
}

func TestComposeDegenerateSize(t *testing.T) {
	c := NewCompositor(DefaultPalette())
	snap := Snapshot{Streams: []Stream{fixedStream(1, 0, 3, 1, 2)}}

	for _, size := range [][2]int{{0, 0}, {0, 10}, {10, 0}, {-1, 5}} {
		frame := c.Compose(snap, size[0], size[1])
		assert.True(t, frame.Empty(), "size %v", size)
	}
}

func TestComposeGlitchOverridesStreams(t *testing.T) {
	p := DefaultPalette()
	c := NewCompositor(p)
	snap := Snapshot{
		Tick:     4,
		Streams:  []Stream{fixedStream(1, 1, 5, 1, 5)},
		Glitches: []Glitch{{Row: 3, Rows: 2, Start: 2, Duration: 3}},
	}

	frame := c.Compose(snap, 4, 8)
	for _, y := range []int{3, 4} {
		assert.Equal(t, p.Glitch, frame.At(1, y).Color)
		assert.Equal(t, 1.0, frame.At(1, y).Intensity)
		for _, x := range []int{0, 2, 3} {
			assert.True(t, frame.At(x, y).Blank(), "blank cell (%d,%d) painted by glitch", x, y)
		}
	}
	assert.Equal(t, 'x', frame.At(1, 3).Glyph, "glitch keeps the glyph")
	assert.Equal(t, p.Head, frame.At(1, 5).Color)

	snap.Tick = 5
	frame = c.Compose(snap, 4, 8)
	assert.NotEqual(t, p.Glitch, frame.At(1, 3).Color, "inactive glitch is ignored")
}

func TestComposeOverlay(t *testing.T) {
	p := DefaultPalette()
	c := NewCompositor(p)
	snap := Snapshot{
		Tick:     10,
		Streams:  []Stream{fixedStream(1, 0, 5, 1, 5)},
		Glitches: []Glitch{{Row: 0, Rows: 1, Start: 10, Duration: 5}},
		Overlay:  &Overlay{Text: "FOLLOW THE WHITE RABBIT", Start: 10, Duration: 20},
	}

	frame := c.Compose(snap, 10, 7)
	assert.Equal(t, "          ", frame.Row(0), "overlay hides glitches")
	assert.Equal(t, "          ", frame.Row(1))
	assert.Equal(t, "FOLLOW THE", frame.Row(2))
	assert.Equal(t, "  WHITE   ", frame.Row(3))
	assert.Equal(t, "  RABBIT  ", frame.Row(4))
	assert.Equal(t, p.OverlayBright, frame.At(0, 2).Color)

	snap.Tick = 27
	frame = c.Compose(snap, 10, 7)
	assert.Equal(t, p.OverlayDim, frame.At(0, 2).Color)

	t.Run("taller than the screen", func(t *testing.T) {
		snap.Tick = 10
		frame := c.Compose(snap, 10, 2)
		assert.Equal(t, "FOLLOW THE", frame.Row(0))
		assert.Equal(t, "  WHITE   ", frame.Row(1))
	})
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "THE ONE", 20, []string{"THE ONE"}},
		{"wraps", "FOLLOW THE WHITE RABBIT", 10, []string{"FOLLOW THE", "WHITE", "RABBIT"}},
		{"truncates long words", "SUPERCALIFRAGILISTIC", 5, []string{"SUPER"}},
		{"collapses spaces", "  RED   PILL ", 20, []string{"RED PILL"}},
		{"empty", "", 10, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapText(tt.text, tt.width))
		})
	}
}

func TestOverlayStages(t *testing.T) {
	o := Overlay{Start: 10, Duration: 20}
	tests := []struct {
		tick uint64
		want FadeStage
	}{
		{10, FadeBright},
		{19, FadeBright},
		{20, FadeMedium},
		{25, FadeMedium},
		{26, FadeDim},
		{29, FadeDim},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, o.Stage(tt.tick), "tick %d", tt.tick)
	}
	assert.True(t, o.Active(29))
	assert.False(t, o.Active(30))
	assert.False(t, o.Active(9))
}
