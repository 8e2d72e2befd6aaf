package main

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// === CONFIG ===

// Default configuration values for the animation.
const (
	defaultFPS       = 20
	defaultColorMode = "auto"
	defaultLogFile   = "matrix-rain.log"

	defaultTickDuration    = 50 * time.Millisecond
	defaultMaxCatchUpTicks = 5

	defaultSpawnChance       = 0.15
	defaultPopulateChance    = 0.7
	defaultFlickerChance     = 0.02
	defaultHeadFlickerChance = 0.33
	defaultGlitchChance      = 0.002
	defaultEasterEggChance   = 0.003
	defaultOverlayShare      = 0.3

	defaultMinSpeed  = 0.3
	defaultMaxSpeed  = 1.2
	defaultMinLength = 4
	defaultMaxLength = 30

	defaultMinGlitchTicks = 2
	defaultMaxGlitchTicks = 6
	defaultMaxGlitchRows  = 3
	defaultOverlayTicks   = 40
)

// colorModes lists the accepted values for Config.ColorMode.
var colorModes = []string{"auto", "truecolor", "256", "16", "none"}

// Config holds the configuration for the rain animation.
type Config struct {
	FPS       int    // Frames drawn per second
	ColorMode string // Color depth: auto, truecolor, 256, 16 or none
	Debug     bool   // Enable debug logging
	LogFile   string // Destination of debug logs

	TickDuration    time.Duration // Length of one simulation tick
	MaxCatchUpTicks int           // Cap on ticks run by a single Advance

	SpawnChance       float64 // Per empty column, per tick
	PopulateChance    float64 // Per empty column, initial fill
	FlickerChance     float64 // Per trail glyph, per tick
	HeadFlickerChance float64 // Head glyph, per tick
	GlitchChance      float64 // Per tick
	EasterEggChance   float64 // Per tick
	OverlayShare      float64 // Fraction of easter eggs that are full-screen overlays

	MinSpeed  float64 // Cells per tick
	MaxSpeed  float64
	MinLength int // Trailing cells behind the head
	MaxLength int

	MinGlitchTicks int
	MaxGlitchTicks int
	MaxGlitchRows  int
	OverlayTicks   int
}

// DefaultConfig returns a Config populated with the default values.
func DefaultConfig() Config {
	return Config{
		FPS:               defaultFPS,
		ColorMode:         defaultColorMode,
		LogFile:           defaultLogFile,
		TickDuration:      defaultTickDuration,
		MaxCatchUpTicks:   defaultMaxCatchUpTicks,
		SpawnChance:       defaultSpawnChance,
		PopulateChance:    defaultPopulateChance,
		FlickerChance:     defaultFlickerChance,
		HeadFlickerChance: defaultHeadFlickerChance,
		GlitchChance:      defaultGlitchChance,
		EasterEggChance:   defaultEasterEggChance,
		OverlayShare:      defaultOverlayShare,
		MinSpeed:          defaultMinSpeed,
		MaxSpeed:          defaultMaxSpeed,
		MinLength:         defaultMinLength,
		MaxLength:         defaultMaxLength,
		MinGlitchTicks:    defaultMinGlitchTicks,
		MaxGlitchTicks:    defaultMaxGlitchTicks,
		MaxGlitchRows:     defaultMaxGlitchRows,
		OverlayTicks:      defaultOverlayTicks,
	}
}

// validate checks the configuration for validity.
func (c *Config) validate() error {
	if c.FPS < 1 || c.FPS > 60 {
		return fmt.Errorf("fps out of range (1-60): got %d", c.FPS)
	}
	if !validColorMode(c.ColorMode) {
		return fmt.Errorf("unknown color mode %q (want one of %s)", c.ColorMode, strings.Join(colorModes, ", "))
	}
	if c.Debug && c.LogFile == "" {
		return errors.New("debug logging needs a log file")
	}
	if c.TickDuration <= 0 {
		return errors.New("tick duration must be positive")
	}
	if c.MaxCatchUpTicks < 1 {
		return errors.New("max catch-up ticks must be at least 1")
	}
	probabilities := []struct {
		name string
		p    float64
	}{
		{"spawn", c.SpawnChance},
		{"populate", c.PopulateChance},
		{"flicker", c.FlickerChance},
		{"head flicker", c.HeadFlickerChance},
		{"glitch", c.GlitchChance},
		{"easter egg", c.EasterEggChance},
		{"overlay", c.OverlayShare},
	}
	for _, prob := range probabilities {
		if prob.p < 0 || prob.p > 1 {
			return fmt.Errorf("%s probability out of range (0-1): got %g", prob.name, prob.p)
		}
	}
	if c.MinSpeed <= 0 || c.MaxSpeed < c.MinSpeed {
		return errors.New("invalid speed configuration")
	}
	if c.MinLength < 1 || c.MaxLength < c.MinLength {
		return errors.New("invalid trail length configuration")
	}
	if c.MinGlitchTicks < 1 || c.MaxGlitchTicks < c.MinGlitchTicks || c.MaxGlitchRows < 1 {
		return errors.New("invalid glitch configuration")
	}
	if c.OverlayTicks < 1 {
		return errors.New("overlay duration must be at least one tick")
	}
	return nil
}

// validColorMode reports whether mode is one of colorModes.
func validColorMode(mode string) bool {
	for _, m := range colorModes {
		if m == mode {
			return true
		}
	}
	return false
}
