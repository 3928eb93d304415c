package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// printer writes user-facing messages; in simple mode only errors and the
// final path get through
type printer struct {
	out    io.Writer
	err    io.Writer
	simple bool
}

func newPrinter(out, errOut io.Writer, simple bool) *printer {
	return &printer{out: out, err: errOut, simple: simple}
}

// Success prints a success message
func (p *printer) Success(format string, args ...any) {
	if p.simple {
		return
	}
	color.New(color.FgGreen).Fprintf(p.out, format+"\n", args...)
}

// Warning prints a warning message
func (p *printer) Warning(format string, args ...any) {
	if p.simple {
		return
	}
	color.New(color.FgYellow).Fprintf(p.err, format+"\n", args...)
}

// Error prints an error message
func (p *printer) Error(format string, args ...any) {
	color.New(color.FgRed).Fprintf(p.err, format+"\n", args...)
}

// Print prints a plain line, also in simple mode
func (p *printer) Print(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// spinner animates on stderr until stop is called. It is a no-op in
// simple mode.
type spinner struct {
	bar  *progressbar.ProgressBar
	done chan struct{}
}

func (p *printer) Spin(description string) *spinner {
	s := &spinner{done: make(chan struct{})}
	if p.simple {
		close(s.done)
		return s
	}

	s.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetDescription(description),
		progressbar.OptionThrottle(120*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)

	go func() {
		ticker := time.NewTicker(120 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				_ = s.bar.Add(1)
			}
		}
	}()
	return s
}

// Describe replaces the text next to the spinner
func (s *spinner) Describe(description string) {
	if s.bar == nil {
		return
	}
	s.bar.Describe(description)
}

func (s *spinner) Stop() {
	if s.bar == nil {
		return
	}
	close(s.done)
	_ = s.bar.Finish()
}
