package main

// === GLITCHES & EASTER EGGS ===

// Glitch flashes one or more full rows bright white for a few ticks.
type Glitch struct {
	Row      int    // First affected row
	Rows     int    // Number of consecutive rows
	Start    uint64 // Tick the glitch was triggered on
	Duration int    // Ticks
}

// Active reports whether the glitch is visible at tick.
func (g Glitch) Active(tick uint64) bool {
	return tick >= g.Start && tick < g.Start+uint64(g.Duration)
}

// Covers reports whether row is one of the glitched rows.
func (g Glitch) Covers(row int) bool {
	return row >= g.Row && row < g.Row+g.Rows
}

// FadeStage is the brightness step of an overlay.
type FadeStage int

const (
	FadeBright FadeStage = iota
	FadeMedium
	FadeDim
)

// Overlay is a full-screen easter egg: centered text that replaces the rain.
type Overlay struct {
	Text     string
	Start    uint64
	Duration int
}

// Active reports whether the overlay is visible at tick.
func (o Overlay) Active(tick uint64) bool {
	return tick >= o.Start && tick < o.Start+uint64(o.Duration)
}

// Stage returns the fade stage at tick: roughly the first half bright, the
// next 30% medium and the rest dim.
func (o Overlay) Stage(tick uint64) FadeStage {
	if tick <= o.Start {
		return FadeBright
	}
	elapsed := float64(tick-o.Start) / float64(o.Duration)
	switch {
	case elapsed < 0.5:
		return FadeBright
	case elapsed < 0.8:
		return FadeMedium
	default:
		return FadeDim
	}
}
