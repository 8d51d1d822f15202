package cpu

import (
	"sync/atomic"
	"time"

	"github.com/Amr-9/SolHunter/pkg/generator"
)

// progress decides when a flushed total crosses the next report boundary.
// Whichever worker moves the boundary emits the snapshot; under contention a
// boundary can be skipped, never reported twice.
type progress struct {
	interval uint64
	next     atomic.Uint64
	start    time.Time
	reporter generator.Reporter
}

func newProgress(interval uint64, start time.Time, reporter generator.Reporter) *progress {
	p := &progress{interval: interval, start: start, reporter: reporter}
	p.next.Store(interval)
	return p
}

// offer reports total if it reached the current boundary.
func (p *progress) offer(total uint64) {
	next := p.next.Load()
	if total < next {
		return
	}
	if !p.next.CompareAndSwap(next, total-total%p.interval+p.interval) {
		return
	}
	p.reporter.Report(generator.NewSnapshot(total, time.Since(p.start)))
}
