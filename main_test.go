package main

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestRootCommandRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"fps", []string{"--fps", "0"}, "fps out of range"},
		{"color", []string{"--color", "sepia"}, "unknown color mode"},
		{"debug without file", []string{"--debug", "--log-file", ""}, "needs a log file"},
		{"positional args", []string{"extra"}, "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCommand()
			cmd.SetArgs(tt.args)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			assert.ErrorContains(t, cmd.Execute(), tt.wantErr)
		})
	}
}

func TestRootCommandVersion(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--version"})
	cmd.SetOut(&out)

	assert.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), version)
}

func TestReportPanicRestoresScreen(t *testing.T) {
	sim := newSimScreen(t, 10, 4)
	screen := NewScreen(sim, termenv.TrueColor)

	var out bytes.Buffer
	func() {
		defer func() {
			if r := recover(); r != nil {
				reportPanic(screen, &out, r)
			}
		}()
		panic("boom")
	}()

	assert.Contains(t, out.String(), "matrix-rain crashed: boom")
	assert.Contains(t, out.String(), "Stack Trace:")
	assert.Contains(t, out.String(), "goroutine")
	assert.NotPanics(t, screen.Restore, "second restore is a no-op")
}
