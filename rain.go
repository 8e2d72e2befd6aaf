package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
)

// === MATRIX RAIN ===

// statsInterval is how often engine counters are logged.
const statsInterval = 5 * time.Second

type action int

const (
	actionNone action = iota
	actionExit
	actionResize
)

// MatrixRain holds the components of the rain animation.
type MatrixRain struct {
	cfg        Config
	engine     *StreamEngine
	compositor *Compositor
	screen     *Screen
	logger     *slog.Logger

	events   chan tcell.Event
	pollDone chan struct{}
}

// NewMatrixRain wires an engine and compositor to screen.
func NewMatrixRain(cfg Config, screen *Screen, random Random, logger *slog.Logger) (*MatrixRain, error) {
	engine, err := NewStreamEngine(cfg, random)
	if err != nil {
		return nil, err
	}
	return &MatrixRain{
		cfg:        cfg,
		engine:     engine,
		compositor: NewCompositor(DefaultPalette()),
		screen:     screen,
		logger:     logger,
		events:     make(chan tcell.Event, 10),
		pollDone:   make(chan struct{}),
	}, nil
}

// Run starts the animation and blocks until a quit key is pressed or ctx is done.
func (r *MatrixRain) Run(ctx context.Context) {
	r.screen.Setup()

	width, height := r.screen.Size()
	r.engine.Populate(width, height)
	r.logger.Info("rain started", "width", width, "height", height, "fps", r.cfg.FPS)
	r.draw(width, height)

	done := make(chan struct{})
	defer close(done)
	go r.pollEvents(done)

	frameDuration := time.Second / time.Duration(r.cfg.FPS)
	tick := time.NewTicker(frameDuration)
	defer tick.Stop()

	last := time.Now()
	lastStats := last
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("rain stopped", "reason", context.Cause(ctx))
			return
		case ev := <-r.events:
			if r.handleEvent(ev) == actionExit {
				r.logger.Info("rain stopped", "reason", "quit key")
				return
			}
		case now := <-tick.C:
			width, height = r.screen.Size()
			r.engine.Advance(now.Sub(last), width, height)
			last = now
			r.draw(width, height)

			if now.Sub(lastStats) >= statsInterval {
				r.logStats()
				lastStats = now
			}
		}
	}
}

// Close restores the terminal and waits briefly for the event pump to stop.
func (r *MatrixRain) Close() {
	r.screen.Restore()
	select {
	case <-r.pollDone:
	case <-time.After(100 * time.Millisecond):
	}
}

// draw composes the current engine state and hands it to the screen.
func (r *MatrixRain) draw(width, height int) {
	frame := r.compositor.Compose(r.engine.Snapshot(), width, height)
	r.screen.Draw(frame)
}

// pollEvents forwards terminal events until the screen is finalized, at
// which point PollEvent returns nil.
func (r *MatrixRain) pollEvents(done <-chan struct{}) {
	defer close(r.pollDone)
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case r.events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent reacts to a key press or a resize.
func (r *MatrixRain) handleEvent(ev tcell.Event) action {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		width, height := ev.Size()
		r.logger.Debug("terminal resized", "width", width, "height", height)
		r.screen.Sync()
		return actionResize
	case *tcell.EventKey:
		if isQuitKey(ev) {
			return actionExit
		}
	}
	return actionNone
}

// isQuitKey reports whether ev is q, Esc or Ctrl-C.
func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// logStats records the engine counters at debug level.
func (r *MatrixRain) logStats() {
	stats := r.engine.Stats()
	r.logger.Debug("engine stats",
		"tick", stats.Tick,
		"live", stats.Live,
		"spawned", stats.Spawned,
		"retired", stats.Retired,
		"glitches", stats.Glitches,
		"overlays", stats.Overlays,
		"phrases", stats.Phrases,
	)
}
