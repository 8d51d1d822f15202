package cpu

import (
	"context"
	"fmt"

	"github.com/Amr-9/SolHunter/pkg/generator"
	"github.com/sirupsen/logrus"
)

// worker is one generate-and-test loop. All fields except state are private
// to the goroutine running it.
type worker struct {
	id     int
	state  *searchState
	source generator.KeySource
	table  generator.PrefixTable
	encode generator.Encoder

	checkInterval uint64
	flushInterval uint64

	local   uint64 // Attempts made by this worker
	flushed uint64 // Part of local already added to state.attempts

	log logrus.FieldLogger
}

// run generates candidates until this worker wins, another worker wins,
// ctx is cancelled or the attempt budget is spent.
// The stop signal is only read every checkInterval attempts, so a worker may
// run up to checkInterval extra attempts after another one has won.
func (w *worker) run(ctx context.Context) error {
	defer func() {
		w.log.WithFields(logrus.Fields{"worker": w.id, "attempts": w.local}).Debug("worker stopped")
	}()

	for {
		if w.local%w.checkInterval == 0 && w.shouldStop(ctx) {
			w.flush()
			return nil
		}

		kp, err := w.source.NewKeypair()
		if err != nil {
			w.flush()
			return fmt.Errorf("worker %d: %w", w.id, err)
		}
		w.local++

		address := w.encode(kp.PublicKey)
		if e, ok := w.table.Match(address); ok {
			// Losers of the swap drop their match; only one result is reported.
			if w.state.found.CompareAndSwap(false, true) {
				w.state.winner = &candidate{keypair: kp, address: address, prefix: e.Text}
			}
			w.flush()
			return nil
		}

		if w.local-w.flushed >= w.flushInterval {
			w.state.progress.offer(w.flush())
		}
	}
}

func (w *worker) shouldStop(ctx context.Context) bool {
	if w.state.found.Load() || ctx.Err() != nil {
		return true
	}
	return w.state.maxAttempts > 0 && w.state.attempts.Load() >= w.state.maxAttempts
}

// flush adds the unflushed local attempts to the shared total and returns it.
func (w *worker) flush() uint64 {
	total := w.state.attempts.Add(w.local - w.flushed)
	w.flushed = w.local
	return total
}
