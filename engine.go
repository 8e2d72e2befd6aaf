package main

import (
	"fmt"
	"time"
)

// === STREAM ENGINE ===

// Snapshot is a read-only view of the engine state for one frame. Its
// slices belong to the engine and are only valid until the next Advance or Step.
type Snapshot struct {
	Tick     uint64
	Streams  []Stream
	Glitches []Glitch
	Overlay  *Overlay
}

// Stats counts what the engine has done so far.
type Stats struct {
	Tick     uint64
	Live     int
	Spawned  uint64
	Retired  uint64
	Glitches uint64
	Overlays uint64
	Phrases  uint64
}

// StreamEngine owns the falling streams and the glitch and easter-egg events,
// and advances them one fixed tick at a time.
type StreamEngine struct {
	cfg    Config
	random Random

	streams  []Stream
	glitches []Glitch
	overlay  *Overlay

	width, height int
	tick          uint64
	nextID        uint64
	pending       time.Duration
	stats         Stats

	occupied []bool // scratch: columns holding a stream
}

// NewStreamEngine creates an engine with no streams. It rejects
// configurations that would spawn streams which cannot fall.
func NewStreamEngine(cfg Config, random Random) (*StreamEngine, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &StreamEngine{
		cfg:    cfg,
		random: random,
	}, nil
}

// Advance reconciles the engine with the terminal size and runs one tick for
// every TickDuration of accumulated time, at most MaxCatchUpTicks per call.
// It returns the number of ticks run.
func (e *StreamEngine) Advance(dt time.Duration, width, height int) int {
	e.reconcile(width, height)
	if dt > 0 {
		e.pending += dt
	}
	steps := 0
	for e.pending >= e.cfg.TickDuration && steps < e.cfg.MaxCatchUpTicks {
		e.pending -= e.cfg.TickDuration
		e.step()
		steps++
	}
	if e.pending >= e.cfg.TickDuration {
		// Drop the backlog after a stall instead of fast-forwarding through it.
		e.pending %= e.cfg.TickDuration
	}
	return steps
}

// Step reconciles the engine with the terminal size and runs exactly one tick.
func (e *StreamEngine) Step(width, height int) {
	e.reconcile(width, height)
	e.step()
}

// Populate fills empty columns with streams at random heights so the first
// frame is not blank.
func (e *StreamEngine) Populate(width, height int) {
	e.reconcile(width, height)
	if width <= 0 || height <= 0 {
		return
	}
	occupied := e.occupiedColumns()
	for col := 0; col < width; col++ {
		if occupied[col] || !chance(e.random, e.cfg.PopulateChance) {
			continue
		}
		head := floatBetween(e.random, -float64(height), float64(height))
		e.spawn(col, head)
	}
}

// step runs one simulation tick.
func (e *StreamEngine) step() {
	e.tick++
	e.stats.Tick = e.tick
	e.expireEvents()

	for i := range e.streams {
		s := &e.streams[i]
		s.fall()
		s.flicker(e.random, e.cfg.FlickerChance, e.cfg.HeadFlickerChance)
	}
	e.retire()

	if e.width > 0 && e.height > 0 {
		e.spawnEmptyColumns()
		e.rollEvents()
	}
	e.stats.Live = len(e.streams)
}

// reconcile applies a terminal size change: streams and glitches that fell
// outside the new bounds are dropped. Missing columns are left for the spawn
// policy to refill.
func (e *StreamEngine) reconcile(width, height int) {
	if width == e.width && height == e.height {
		return
	}
	width, height = max(width, 0), max(height, 0)

	kept := e.streams[:0]
	for _, s := range e.streams {
		if s.Column < width {
			kept = append(kept, s)
		}
	}
	clear(e.streams[len(kept):])
	e.streams = kept

	glitches := e.glitches[:0]
	for _, g := range e.glitches {
		if g.Row < height {
			glitches = append(glitches, g)
		}
	}
	e.glitches = glitches

	e.width, e.height = width, height
	e.stats.Live = len(e.streams)
}

// retire removes streams whose whole span is below the bottom row.
func (e *StreamEngine) retire() {
	kept := e.streams[:0]
	for _, s := range e.streams {
		if s.Retired(e.height) {
			e.stats.Retired++
			continue
		}
		kept = append(kept, s)
	}
	clear(e.streams[len(kept):])
	e.streams = kept
}

// spawnEmptyColumns gives each column without a stream a chance to get one.
func (e *StreamEngine) spawnEmptyColumns() {
	occupied := e.occupiedColumns()
	for col := 0; col < e.width; col++ {
		if !occupied[col] && chance(e.random, e.cfg.SpawnChance) {
			e.spawn(col, 0)
		}
	}
}

// spawn adds a new stream in col with its head at row head.
func (e *StreamEngine) spawn(col int, head float64) {
	e.nextID++
	e.streams = append(e.streams, newStream(e.nextID, col, e.height, head, &e.cfg, e.random))
	e.stats.Spawned++
}

// occupiedColumns marks every column that holds a live stream.
func (e *StreamEngine) occupiedColumns() []bool {
	if cap(e.occupied) < e.width {
		e.occupied = make([]bool, e.width)
	}
	e.occupied = e.occupied[:e.width]
	clear(e.occupied)
	for _, s := range e.streams {
		if s.Column < e.width {
			e.occupied[s.Column] = true
		}
	}
	return e.occupied
}

// === EVENTS ===

// rollEvents randomly triggers a glitch or an easter egg.
func (e *StreamEngine) rollEvents() {
	if chance(e.random, e.cfg.GlitchChance) {
		rows := intBetween(e.random, 1, min(e.cfg.MaxGlitchRows, e.height))
		row := e.random.IntN(e.height - rows + 1)
		e.TriggerGlitch(row, rows, intBetween(e.random, e.cfg.MinGlitchTicks, e.cfg.MaxGlitchTicks))
	}
	if !chance(e.random, e.cfg.EasterEggChance) {
		return
	}
	if e.overlay == nil && chance(e.random, e.cfg.OverlayShare) {
		e.TriggerOverlay(phrases[e.random.IntN(len(phrases))], e.cfg.OverlayTicks)
		return
	}
	if len(e.streams) == 0 {
		return
	}
	idx := e.random.IntN(len(e.streams))
	if phrase, ok := phraseFitting(e.random, e.streams[idx].Length); ok {
		e.InjectPhrase(idx, phrase)
	}
}

// TriggerGlitch starts a glitch on rows [row, row+rows) lasting duration
// ticks, counted from the current tick.
func (e *StreamEngine) TriggerGlitch(row, rows, duration int) {
	if rows < 1 || duration < 1 || row < 0 {
		return
	}
	e.glitches = append(e.glitches, Glitch{Row: row, Rows: rows, Start: e.tick, Duration: duration})
	e.stats.Glitches++
}

// TriggerOverlay shows text full-screen for duration ticks, replacing any
// overlay already on screen.
func (e *StreamEngine) TriggerOverlay(text string, duration int) {
	if text == "" || duration < 1 {
		return
	}
	e.overlay = &Overlay{Text: text, Start: e.tick, Duration: duration}
	e.stats.Overlays++
}

// InjectPhrase writes phrase into the trail of the stream at index idx of
// the current snapshot, at a random offset below the top of the trail. It
// reports false when the index is invalid or the phrase is too long.
func (e *StreamEngine) InjectPhrase(idx int, phrase string) bool {
	if idx < 0 || idx >= len(e.streams) {
		return false
	}
	s := &e.streams[idx]
	n := len([]rune(phrase))
	if n == 0 || n > s.Length {
		return false
	}
	offset := intBetween(e.random, 1, s.Length-n+1)
	if !s.embed(phrase, offset) {
		return false
	}
	e.stats.Phrases++
	return true
}

// expireEvents drops glitches and overlays whose window has ended.
func (e *StreamEngine) expireEvents() {
	kept := e.glitches[:0]
	for _, g := range e.glitches {
		if g.Active(e.tick) {
			kept = append(kept, g)
		}
	}
	e.glitches = kept
	if e.overlay != nil && !e.overlay.Active(e.tick) {
		e.overlay = nil
	}
}

// Snapshot returns the state the compositor draws from.
func (e *StreamEngine) Snapshot() Snapshot {
	return Snapshot{
		Tick:     e.tick,
		Streams:  e.streams,
		Glitches: e.glitches,
		Overlay:  e.overlay,
	}
}

// Stats returns the engine counters.
func (e *StreamEngine) Stats() Stats {
	stats := e.stats
	stats.Live = len(e.streams)
	return stats
}
