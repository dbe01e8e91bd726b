package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// Phase represents a stage of a run
type Phase string

const (
	PhaseSheets Phase = "Sheets"
)

// Progress is what the inspector reports sheet progress to
type Progress interface {
	Describe(description string)
	Increment() error
	Finish() error
}

// ProgressBar wraps the progressbar library with our custom styling
type ProgressBar struct {
	bar   *progressbar.ProgressBar
	phase string
	total int
}

// NewProgressBar creates a progress bar for a phase on stderr
func NewProgressBar(phase Phase, total int) *ProgressBar {
	return NewProgressBarWithOutput(phase, total, os.Stderr)
}

// NewProgressBarWithOutput creates a new progress bar with custom output
func NewProgressBarWithOutput(phase Phase, total int, output io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(output),
		progressbar.OptionSetDescription(fmt.Sprintf("[%s]", phase)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
	)

	return &ProgressBar{
		bar:   bar,
		phase: string(phase),
		total: total,
	}
}

// Increment increments the progress bar by 1
func (pb *ProgressBar) Increment() error {
	return pb.bar.Add(1)
}

// Finish completes the progress bar
func (pb *ProgressBar) Finish() error {
	return pb.bar.Finish()
}

// Describe updates the description of the progress bar
func (pb *ProgressBar) Describe(description string) {
	pb.bar.Describe(fmt.Sprintf("[%s] %s", pb.phase, description))
}

// nopProgress discards all progress updates
type nopProgress struct{}

func (nopProgress) Describe(string)  {}
func (nopProgress) Increment() error { return nil }
func (nopProgress) Finish() error    { return nil }

// Discard returns a Progress that reports nothing
func Discard() Progress { return nopProgress{} }

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ForSheets returns a sheet progress bar on stderr when enabled and stderr
// is a terminal, and a silent Progress otherwise.
func ForSheets(enabled bool, total int) Progress {
	if !enabled || total == 0 || !IsTerminal(os.Stderr) {
		return Discard()
	}
	return NewProgressBar(PhaseSheets, total)
}
