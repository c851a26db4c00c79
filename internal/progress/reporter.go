// Package progress provides progress feedback while building many prompt
// documents in one run.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides progress feedback during multi-manifest builds. Update
// takes the title of the document just built.
type Reporter interface {
	Start(total int)
	Update(current int, title string)
	Finish()
}

// NewReporter returns a TerminalReporter for interactive use, or a
// CIReporter when a CI environment variable is set.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{}
	}
	return &TerminalReporter{}
}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Building prompts"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, title string) {
	if r.bar != nil {
		r.bar.Describe(title)
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints line-by-line progress suitable for CI logs.
type CIReporter struct {
	out   io.Writer
	total int
}

func (r *CIReporter) Start(total int) {
	r.total = total
	fmt.Fprintf(r.writer(), "Building %d prompt documents\n", total)
}

func (r *CIReporter) Update(current int, title string) {
	fmt.Fprintf(r.writer(), "[%d/%d] %s\n", current, r.total, title)
}

func (r *CIReporter) Finish() {
	fmt.Fprintln(r.writer(), "Prompt build complete")
}

func (r *CIReporter) writer() io.Writer {
	if r.out != nil {
		return r.out
	}
	return os.Stderr
}
