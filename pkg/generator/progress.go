package generator

import "time"

// Snapshot is a point-in-time view of search throughput.
type Snapshot struct {
	Attempts uint64        // Aggregate attempts at the time of the snapshot
	Rate     float64       // Attempts per second since start
	Elapsed  time.Duration // Time since start
}

// NewSnapshot derives a snapshot from an attempt count and elapsed time.
func NewSnapshot(attempts uint64, elapsed time.Duration) Snapshot {
	var rate float64
	if secs := elapsed.Seconds(); secs > 0 {
		rate = float64(attempts) / secs
	}
	return Snapshot{Attempts: attempts, Rate: rate, Elapsed: elapsed}
}

// Minutes returns the whole minutes of Elapsed.
func (s Snapshot) Minutes() uint64 {
	return uint64(s.Elapsed/time.Second) / 60
}

// Seconds returns the seconds part of Elapsed, below one minute.
func (s Snapshot) Seconds() uint64 {
	return uint64(s.Elapsed/time.Second) % 60
}

// Reporter receives progress snapshots.
// Report is called inline from worker goroutines, possibly concurrently,
// and must return quickly. Losing or repeating a snapshot is harmless.
type Reporter interface {
	Report(Snapshot)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Snapshot)

// Report calls f(s).
func (f ReporterFunc) Report(s Snapshot) { f(s) }

// NopReporter discards all snapshots.
type NopReporter struct{}

// Report does nothing.
func (NopReporter) Report(Snapshot) {}
