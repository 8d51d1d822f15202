package cpu

import (
	"context"
	"fmt"

	"github.com/Amr-9/SolHunter/pkg/generator"
	"golang.org/x/sync/errgroup"
)

// GenerateBatch produces n independent keypairs on workers goroutines,
// without any matching. Used to benchmark a key source in isolation.
func GenerateBatch(ctx context.Context, newSource generator.SourceFactory, n, workers int) ([]generator.Keypair, error) {
	if workers <= 0 {
		return nil, ErrNoWorkers
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadBatchSize, n)
	}
	out := make([]generator.Keypair, n)
	if n == 0 {
		return out, nil
	}
	workers = min(workers, n)
	per := (n + workers - 1) / workers

	eg, egCtx := errgroup.WithContext(ctx)
	for lo := 0; lo < n; lo += per {
		hi := min(lo+per, n)
		eg.Go(func() error {
			src := newSource()
			for i := lo; i < hi; i++ {
				if i%1024 == 0 && egCtx.Err() != nil {
					return egCtx.Err()
				}
				kp, err := src.NewKeypair()
				if err != nil {
					return err
				}
				out[i] = kp
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
