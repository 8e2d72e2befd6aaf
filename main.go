package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// === MAIN ===

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCommand builds the matrix-rain command with its flags bound to a Config.
func newRootCommand() *cobra.Command {
	cfg := DefaultConfig()
	cmd := &cobra.Command{
		Use:   "matrix-rain",
		Short: "Digital rain in your terminal",
		Long: `Columns of falling glyphs with fading trails, the odd glitch and a few hidden messages.

Press q, Esc or Ctrl-C to quit.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.FPS, "fps", cfg.FPS, "frames per second (1-60)")
	flags.StringVar(&cfg.ColorMode, "color", cfg.ColorMode, "color mode: auto, truecolor, 256, 16, none")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write debug logs to --log-file")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "debug log destination")
	return cmd
}

// run opens the terminal and animates until a quit key or signal.
func run(ctx context.Context, cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	profile := colorProfile(cfg.ColorMode)
	ts, err := openTerminal(os.Stdout)
	if err != nil {
		return fmt.Errorf("cannot open terminal: %w", err)
	}
	screen := NewScreen(ts, profile)
	defer screen.Restore()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("rain crashed", "panic", r)
			reportPanic(screen, os.Stderr, r)
			os.Exit(1)
		}
	}()
	logger.Info("terminal opened", "profile", profileName(profile))

	rain, err := NewMatrixRain(cfg, screen, newRandom(), logger)
	if err != nil {
		return err
	}
	defer rain.Close()

	rain.Run(ctx)
	return nil
}

// reportPanic puts the terminal back into a usable state and writes the
// panic value and stack trace to w, so they stay visible after the reset.
func reportPanic(screen *Screen, w io.Writer, r any) {
	screen.Restore()
	fmt.Fprintf(w, "\nmatrix-rain crashed: %v\nStack Trace:\n%s\n", r, debug.Stack())
}
