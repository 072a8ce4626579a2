//go:generate mockgen -package=mocks -destination=../../mocks/mock_reporter.go github.com/solidrace/solidrace/core/telemetry Reporter

// Package telemetry carries the human-readable status lines a race emits.
package telemetry

import (
	"fmt"
	"io"
	"sync"
)

// Reporter receives one status line per call.
type Reporter interface {
	Report(line string)
}

// ConsoleReporter writes each line to an io.Writer followed by a newline.
type ConsoleReporter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleReporter creates a reporter that writes to w.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

func (r *ConsoleReporter) Report(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintln(r.w, line)
}

// Recorder keeps every reported line in memory.
type Recorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *Recorder) Report(line string) {
	r.mu.Lock()
	r.lines = append(r.lines, line)
	r.mu.Unlock()
}

// Lines returns a copy of the lines reported so far.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Tee fans a line out to several reporters.
type Tee []Reporter

func (t Tee) Report(line string) {
	for _, r := range t {
		r.Report(line)
	}
}

// Discard drops every line.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Report(string) {}
