package ui

import (
	"fmt"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/forgeware/forge/pkg/settings"
	"github.com/forgeware/forge/pkg/toolset"
)

// Progress implements toolset.ProgressReporter, rendering one
// schollz/progressbar track per tool install, serialized behind a mutex
// since multiple install workers write concurrently.
type Progress struct {
	mu  *sync.Mutex
	bar *progressbar.ProgressBar
}

// NewProgress builds a root Progress. When Settings.Raw is set (CI, log
// capture) it falls back to plain log lines instead of an animated bar.
func NewProgress() *Progress {
	return &Progress{mu: &sync.Mutex{}}
}

// Add starts a sub-progress for one tool's install, labeled style.
func (p *Progress) Add(style string) toolset.ProgressReporter {
	p.mu.Lock()
	defer p.mu.Unlock()
	if settings.Get().Raw {
		fmt.Fprintf(os.Stderr, "installing %s\n", style)
		return &Progress{mu: p.mu}
	}
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(color.CyanString(style)),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	return &Progress{mu: p.mu, bar: bar}
}

// Println emits a status line to stderr. When a bar is active it first
// ends the spinner's line so the message starts on a line of its own.
func (p *Progress) Println(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.bar != nil {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, msg)
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}
