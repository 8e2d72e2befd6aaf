package main

// === FRAME ===

// Cell is one character position of a composed frame.
type Cell struct {
	Glyph     rune
	Color     Color
	Intensity float64 // 0 for blank cells, 1 for the brightest
}

// blankCell is the background.
var blankCell = Cell{Glyph: ' '}

// Blank reports whether the cell shows nothing.
func (c Cell) Blank() bool {
	return c.Glyph == ' ' && c.Intensity == 0
}

// Frame is a composed grid of cells, stored row by row.
type Frame struct {
	Width, Height int
	Cells         []Cell
}

// NewFrame creates a blank Frame with the given dimensions. Degenerate
// dimensions give an empty frame.
func NewFrame(width, height int) *Frame {
	if width <= 0 || height <= 0 {
		return &Frame{}
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = blankCell
	}
	return &Frame{Width: width, Height: height, Cells: cells}
}

// Empty reports whether the frame has no cells.
func (f *Frame) Empty() bool {
	return len(f.Cells) == 0
}

// At returns the cell at column x, row y.
func (f *Frame) At(x, y int) Cell {
	return f.Cells[y*f.Width+x]
}

// inside reports whether (x, y) is on the grid.
func (f *Frame) inside(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

// set writes a cell at column x, row y.
func (f *Frame) set(x, y int, c Cell) {
	f.Cells[y*f.Width+x] = c
}

// Row returns the glyphs of row y as a string.
func (f *Frame) Row(y int) string {
	runes := make([]rune, f.Width)
	for x := range runes {
		runes[x] = f.At(x, y).Glyph
	}
	return string(runes)
}
