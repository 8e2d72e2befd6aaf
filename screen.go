package main

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// === SCREEN ===

// Intensity thresholds for terminal attributes.
const (
	boldIntensity = 0.95
	dimIntensity  = 0.3
)

// styleKey identifies a cached cell style.
type styleKey struct {
	color Color
	bold  bool
	dim   bool
}

// Screen draws frames onto a tcell screen, downsampling colors to what the
// terminal's color profile supports.
type Screen struct {
	screen  tcell.Screen
	profile termenv.Profile
	styles  map[styleKey]tcell.Style

	width, height int // size of the previous frame
	restore       sync.Once
}

// NewScreen wraps an initialized tcell screen.
func NewScreen(ts tcell.Screen, profile termenv.Profile) *Screen {
	return &Screen{
		screen:  ts,
		profile: profile,
		styles:  make(map[styleKey]tcell.Style),
	}
}

// openTerminal creates and initializes a tcell screen on the controlling
// terminal. It refuses to start when out is not a terminal.
func openTerminal(out *os.File) (tcell.Screen, error) {
	if !term.IsTerminal(int(out.Fd())) {
		return nil, errors.New("output is not a terminal")
	}
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := ts.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	return ts, nil
}

// colorProfile resolves a Config.ColorMode to a termenv profile; "auto"
// inspects the environment.
func colorProfile(mode string) termenv.Profile {
	switch mode {
	case "truecolor":
		return termenv.TrueColor
	case "256":
		return termenv.ANSI256
	case "16":
		return termenv.ANSI
	case "none":
		return termenv.Ascii
	default:
		return termenv.EnvColorProfile()
	}
}

// profileName returns a readable name for logs.
func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "256"
	case termenv.ANSI:
		return "16"
	default:
		return "none"
	}
}

// Setup prepares the screen for animation (hidden cursor, cleared screen).
func (s *Screen) Setup() {
	s.screen.HideCursor()
	s.screen.Clear()
}

// Restore resets the terminal to its original state. Only the first call
// has any effect.
func (s *Screen) Restore() {
	s.restore.Do(s.screen.Fini)
}

// Size returns the terminal width and height in cells.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// PollEvent blocks for the next terminal event. It returns nil once the
// screen is finalized.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Sync redraws the whole terminal, used after a resize.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// Draw renders a frame to the terminal. The screen is cleared first when the
// frame size changed; otherwise tcell only emits the cells that differ.
func (s *Screen) Draw(frame *Frame) {
	if frame.Width != s.width || frame.Height != s.height {
		s.screen.Clear()
		s.width, s.height = frame.Width, frame.Height
	}
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			cell := frame.At(x, y)
			if cell.Blank() {
				s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
				continue
			}
			s.screen.SetContent(x, y, cell.Glyph, nil, s.style(cell))
		}
	}
	s.screen.Show()
}

// style returns the tcell style for a cell, caching conversions.
func (s *Screen) style(cell Cell) tcell.Style {
	key := styleKey{
		color: cell.Color,
		bold:  cell.Intensity >= boldIntensity,
		dim:   cell.Intensity <= dimIntensity,
	}
	if st, ok := s.styles[key]; ok {
		return st
	}
	st := tcell.StyleDefault.Foreground(s.convert(cell.Color)).Bold(key.bold).Dim(key.dim)
	s.styles[key] = st
	return st
}

// convert maps an RGB color onto the closest color the profile can show.
func (s *Screen) convert(c Color) tcell.Color {
	switch v := s.profile.Convert(termenv.RGBColor(c.Hex())).(type) {
	case termenv.RGBColor:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	case termenv.ANSI256Color:
		return tcell.PaletteColor(int(v))
	case termenv.ANSIColor:
		return tcell.PaletteColor(int(v))
	default:
		return tcell.ColorDefault
	}
}
