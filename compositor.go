package main

import "strings"

// === COMPOSITOR ===

// Compositor turns an engine snapshot into a Frame. It keeps no state
// between calls.
type Compositor struct {
	palette Palette
}

// NewCompositor creates a Compositor painting with p.
func NewCompositor(p Palette) *Compositor {
	return &Compositor{palette: p}
}

// Compose renders the snapshot onto a width x height grid. The same snapshot
// and size always give the same frame.
func (c *Compositor) Compose(s Snapshot, width, height int) *Frame {
	frame := NewFrame(width, height)
	if frame.Empty() {
		return frame
	}
	if s.Overlay != nil && s.Overlay.Active(s.Tick) {
		c.drawOverlay(frame, *s.Overlay, s.Tick)
		return frame
	}
	for i := range s.Streams {
		c.drawStream(frame, &s.Streams[i])
	}
	for _, g := range s.Glitches {
		if g.Active(s.Tick) {
			c.drawGlitch(frame, g)
		}
	}
	return frame
}

// drawStream paints the head and trail of a stream. Where streams overlap
// the brighter cell wins.
func (c *Compositor) drawStream(frame *Frame, s *Stream) {
	if s.Column < 0 || s.Column >= frame.Width {
		return
	}
	head := s.HeadRow()
	for i := 0; i <= s.Length; i++ {
		y := head - i
		if y < 0 {
			break
		}
		if y >= frame.Height {
			continue
		}
		cell := Cell{Glyph: s.Glyphs[i], Color: c.palette.Head, Intensity: 1}
		if i > 0 {
			cell.Color, cell.Intensity = c.palette.trailShade(i, s.Length)
		}
		if cell.Intensity > frame.At(s.Column, y).Intensity {
			frame.set(s.Column, y, cell)
		}
	}
}

// drawGlitch recolors every painted cell of the glitched rows. Blank cells
// stay blank.
func (c *Compositor) drawGlitch(frame *Frame, g Glitch) {
	for y := max(g.Row, 0); y < min(g.Row+g.Rows, frame.Height); y++ {
		for x := 0; x < frame.Width; x++ {
			cell := frame.At(x, y)
			if cell.Blank() {
				continue
			}
			cell.Color = c.palette.Glitch
			cell.Intensity = 1
			frame.set(x, y, cell)
		}
	}
}

// drawOverlay writes the overlay text centered on an otherwise blank frame.
func (c *Compositor) drawOverlay(frame *Frame, o Overlay, tick uint64) {
	color, intensity := c.palette.overlayColor(o.Stage(tick))
	lines := wrapText(o.Text, frame.Width)
	if len(lines) > frame.Height {
		lines = lines[:frame.Height]
	}
	top := (frame.Height - len(lines)) / 2
	for n, line := range lines {
		x := (frame.Width - glyphWidth.StringWidth(line)) / 2
		for _, r := range line {
			w := glyphWidth.RuneWidth(r)
			if x+w > frame.Width {
				break
			}
			if r != ' ' {
				frame.set(x, top+n, Cell{Glyph: r, Color: color, Intensity: intensity})
			}
			x += max(w, 1)
		}
	}
}

// wrapText splits text into lines no wider than width, breaking on spaces.
// Words wider than a line are truncated.
func wrapText(text string, width int) []string {
	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, word := range strings.Fields(text) {
		if glyphWidth.StringWidth(word) > width {
			word = glyphWidth.Truncate(word, width, "")
		}
		w := glyphWidth.StringWidth(word)
		if lineWidth > 0 && lineWidth+1+w > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += w
	}
	if lineWidth > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
