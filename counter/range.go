package counter

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CountRange evaluates Count for every length in [lo, hi] and returns the
// results ordered by length. Bounds given in reverse are swapped. Lengths
// are evaluated concurrently over the shared read-only adjacency map; the
// first error cancels the remaining work.
func (e *Engine) CountRange(ctx context.Context, lo, hi int, s Strategy, opts ...Option) ([]Result, error) {
	if lo > hi {
		lo, hi = hi, lo
	}
	o := e.resolve(opts)
	if ctx == nil {
		ctx = o.Ctx
	}

	results := make([]Result, hi-lo+1)
	g, gctx := errgroup.WithContext(ctx)
	if o.Parallelism > 0 {
		g.SetLimit(o.Parallelism)
	}

	for i := range results {
		i := i
		length := lo + i
		callOpts := make([]Option, 0, len(opts)+1)
		callOpts = append(callOpts, opts...)
		callOpts = append(callOpts, WithContext(gctx))

		g.Go(func() error {
			c, err := e.Count(length, s, callOpts...)
			if err != nil {
				return fmt.Errorf("counter: CountRange length %d: %w", length, err)
			}
			results[i] = Result{Length: length, Count: c}
			o.Logger.Debug("length done", zap.Int("length", length), zap.Uint64("count", c))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
