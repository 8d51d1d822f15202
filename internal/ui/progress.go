package ui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Amr-9/SolHunter/pkg/generator"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
)

// BarReporter draws an open-ended progress bar with keys/s.
// Snapshots arriving while the bar is drawing are dropped so workers never
// wait on the terminal.
type BarReporter struct {
	mu  sync.Mutex
	bar *progressbar.ProgressBar
}

// NewBarReporter creates a spinner-style bar writing to w.
func NewBarReporter(w io.Writer) *BarReporter {
	bar := progressbar.NewOptions64(
		-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("🔍 Searching..."),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("keys"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionFullWidth(),
	)
	return &BarReporter{bar: bar}
}

// Report moves the bar to the snapshot's attempt count.
func (r *BarReporter) Report(s generator.Snapshot) {
	if !r.mu.TryLock() {
		return
	}
	defer r.mu.Unlock()
	_ = r.bar.Set64(int64(s.Attempts))
}

// Close removes the bar from the terminal.
func (r *BarReporter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bar.Clear()
}

// LineReporter rewrites a single status line, the way the search has always
// printed progress. Snapshots arriving while a line is being written are dropped.
type LineReporter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLineReporter returns a LineReporter writing to w.
func NewLineReporter(w io.Writer) *LineReporter {
	return &LineReporter{w: w}
}

// Report prints s unless another worker is printing.
func (r *LineReporter) Report(s generator.Snapshot) {
	if !r.mu.TryLock() {
		return
	}
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, "\rSearching... %s keys checked | %.0f keys/sec | Elapsed: %s",
		FormatNumber(s.Attempts), s.Rate, FormatElapsed(s))
}

// LogReporter emits snapshots as structured log entries.
type LogReporter struct {
	log logrus.FieldLogger
}

// NewLogReporter returns a LogReporter logging at info level.
func NewLogReporter(log logrus.FieldLogger) *LogReporter {
	return &LogReporter{log: log}
}

// Report logs s.
func (r *LogReporter) Report(s generator.Snapshot) {
	r.log.WithFields(logrus.Fields{
		"attempts": s.Attempts,
		"rate":     fmt.Sprintf("%.0f", s.Rate),
		"elapsed":  FormatElapsed(s),
	}).Info("searching")
}
