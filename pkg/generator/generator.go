// Package generator defines the types shared by the vanity address search engine,
// its key sources and the output layer.
// The engine itself lives in the cpu package; network specific key generation and
// encoding live in per-network packages (solana).
package generator

import (
	"context"
	"time"
)

// Default tuning for the worker loop. Counts are in local attempts per worker.
const (
	DefaultCheckInterval  = 10_000  // How often a worker looks at the stop signal
	DefaultFlushInterval  = 50_000  // How often a worker adds its attempts to the shared total
	DefaultReportInterval = 250_000 // Aggregate attempts between progress snapshots
)

// Config holds the configuration for one vanity address search.
type Config struct {
	Prefixes []string // Desired address prefixes, case-sensitive, first match wins
	Workers  int      // Number of concurrent workers

	// MaxAttempts stops the search once the shared total reaches it.
	// Zero means unbounded.
	MaxAttempts uint64

	CheckInterval  uint64 // Zero uses DefaultCheckInterval
	FlushInterval  uint64 // Zero uses DefaultFlushInterval
	ReportInterval uint64 // Zero uses DefaultReportInterval
}

// Keypair is raw asymmetric key material produced by a KeySource.
type Keypair struct {
	PublicKey  []byte // Public key bytes, the address is derived from these
	PrivateKey []byte // Exportable private key bytes
}

// Result contains a successfully found vanity keypair.
type Result struct {
	Keypair       Keypair       // Winning key material
	Address       string        // Encoded address of the winning keypair
	MatchedPrefix string        // The configured prefix the address starts with
	Elapsed       time.Duration // Time from search start to result assembly
	Attempts      uint64        // Keys generated by all workers
}

// Stats holds real-time performance statistics.
type Stats struct {
	Attempts    uint64  // Total number of keys generated
	HashRate    float64 // Keys per second
	ElapsedSecs float64 // Time elapsed since start
}

// KeySource produces candidate keypairs.
// A KeySource is owned by a single worker and is never called concurrently,
// so implementations may keep scratch buffers without locking.
type KeySource interface {
	NewKeypair() (Keypair, error)
}

// SourceFactory creates one KeySource per worker.
type SourceFactory func() KeySource

// Encoder maps raw public key bytes to address text.
type Encoder func(publicKey []byte) string

// Searcher defines the contract for search backends.
type Searcher interface {
	// Search blocks until a keypair matching one of config.Prefixes is found,
	// ctx is cancelled or config.MaxAttempts is exhausted.
	Search(ctx context.Context, config *Config) (*Result, error)

	// Stats returns the current performance statistics.
	// This method is safe to call concurrently from any goroutine.
	Stats() Stats

	// Name returns the implementation name (e.g., "CPU").
	Name() string
}
