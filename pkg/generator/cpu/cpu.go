// Package cpu implements the vanity search engine on a fixed pool of goroutines.
package cpu

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/Amr-9/SolHunter/pkg/generator"
	"github.com/Amr-9/SolHunter/pkg/generator/solana"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrNoPrefixes is returned when a search is started without prefixes.
	ErrNoPrefixes = errors.New("no prefixes to search for")
	// ErrNoWorkers is returned for a non-positive worker count.
	ErrNoWorkers = errors.New("worker count must be positive")
	// ErrNoResult is returned when every worker stopped without a match.
	ErrNoResult = errors.New("search finished without a result")
	// ErrBadBatchSize is returned by GenerateBatch for a negative count.
	ErrBadBatchSize = errors.New("batch size must be non-negative")
)

var _ generator.Searcher = (*CPUGenerator)(nil)

// CPUGenerator implements the generator.Searcher interface using goroutines.
// Each search call gets its own shared state; the generator itself only keeps
// a pointer to the latest one for Stats.
type CPUGenerator struct {
	workers   int                     // Default number of workers
	newSource generator.SourceFactory // One KeySource per worker
	encode    generator.Encoder       // Public key to address text
	reporter  generator.Reporter
	log       logrus.FieldLogger

	current atomic.Pointer[searchState]
}

// Option configures a CPUGenerator.
type Option func(*CPUGenerator)

// WithSource replaces the Solana key source.
func WithSource(f generator.SourceFactory) Option {
	return func(g *CPUGenerator) { g.newSource = f }
}

// WithEncoder replaces the Base58 address encoding.
func WithEncoder(e generator.Encoder) Option {
	return func(g *CPUGenerator) { g.encode = e }
}

// WithReporter sets where progress snapshots go.
func WithReporter(r generator.Reporter) Option {
	return func(g *CPUGenerator) { g.reporter = r }
}

// WithLogger sets the logger for search lifecycle events.
func WithLogger(l logrus.FieldLogger) Option {
	return func(g *CPUGenerator) { g.log = l }
}

// NewCPUGenerator creates a new CPU-based generator.
// If workers is 0, it defaults to the number of CPU cores.
func NewCPUGenerator(workers int, opts ...Option) *CPUGenerator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	g := &CPUGenerator{
		workers:   workers,
		newSource: solana.NewSource,
		encode:    solana.Encode,
		reporter:  generator.NopReporter{},
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Search runs a Solana vanity search for prefixes on threads workers.
func Search(prefixes []string, threads int) (*generator.Result, error) {
	if threads <= 0 {
		return nil, ErrNoWorkers
	}
	return NewCPUGenerator(threads).Search(context.Background(), &generator.Config{
		Prefixes: prefixes,
		Workers:  threads,
	})
}

// Name returns the implementation name.
func (g *CPUGenerator) Name() string {
	return "CPU"
}

// Stats returns the performance statistics of the running or last search.
func (g *CPUGenerator) Stats() generator.Stats {
	s := g.current.Load()
	if s == nil {
		return generator.Stats{}
	}
	snap := generator.NewSnapshot(s.attempts.Load(), time.Since(s.start))
	return generator.Stats{
		Attempts:    snap.Attempts,
		HashRate:    snap.Rate,
		ElapsedSecs: snap.Elapsed.Seconds(),
	}
}

// searchState is shared by the workers of one Search call.
type searchState struct {
	found    atomic.Bool   // Set once, by the winning worker
	attempts atomic.Uint64 // Flushed attempts of all workers
	start    time.Time

	maxAttempts uint64
	progress    *progress

	// winner is written only by the worker that flipped found.
	winner *candidate
}

type candidate struct {
	keypair generator.Keypair
	address string
	prefix  string
}

// Search blocks until one worker finds a keypair matching config.Prefixes.
func (g *CPUGenerator) Search(ctx context.Context, config *generator.Config) (*generator.Result, error) {
	if len(config.Prefixes) == 0 {
		return nil, ErrNoPrefixes
	}
	workers := g.workers
	if config.Workers != 0 {
		workers = config.Workers
	}
	if workers < 0 {
		return nil, ErrNoWorkers
	}

	table := generator.NewPrefixTable(config.Prefixes)
	check := orDefault(config.CheckInterval, generator.DefaultCheckInterval)
	flush := orDefault(config.FlushInterval, generator.DefaultFlushInterval)

	state := &searchState{
		start:       time.Now(),
		maxAttempts: config.MaxAttempts,
	}
	state.progress = newProgress(orDefault(config.ReportInterval, generator.DefaultReportInterval), state.start, g.reporter)
	g.current.Store(state)

	log := g.log.WithFields(logrus.Fields{"workers": workers, "prefixes": table.Texts()})
	log.Debug("search started")

	eg, egCtx := errgroup.WithContext(ctx)
	for id := range workers {
		w := &worker{
			id:            id,
			state:         state,
			table:         table,
			encode:        g.encode,
			checkInterval: check,
			flushInterval: flush,
			log:           log,
		}
		eg.Go(func() error {
			// The source is created on the worker goroutine and never leaves it.
			w.source = g.newSource()
			return w.run(egCtx)
		})
	}
	err := eg.Wait()

	elapsed := time.Since(state.start)
	attempts := state.attempts.Load()

	if state.winner != nil {
		log.WithFields(logrus.Fields{
			"prefix":   state.winner.prefix,
			"address":  state.winner.address,
			"attempts": attempts,
		}).Debug("search finished")
		return &generator.Result{
			Keypair:       state.winner.keypair,
			Address:       state.winner.address,
			MatchedPrefix: state.winner.prefix,
			Elapsed:       elapsed,
			Attempts:      attempts,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("search aborted after %d attempts: %w", attempts, err)
	}
	if ctx.Err() != nil {
		return nil, fmt.Errorf("search cancelled after %d attempts: %w", attempts, ctx.Err())
	}
	return nil, fmt.Errorf("%w after %d attempts", ErrNoResult, attempts)
}

func orDefault(v, def uint64) uint64 {
	if v == 0 {
		return def
	}
	return v
}
