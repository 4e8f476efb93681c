// Package parallel fans independent row computations out over a bounded
// number of goroutines.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Rows calls fn(i) for every i in [0, n).
// With workers <= 1 it runs sequentially in index order and stops at the
// first error. Otherwise at most workers calls run at once; after the first
// error no new row is started and that error is returned once the running
// calls finish.
// fn must only touch state owned by row i.
func Rows(n, workers int, fn func(i int) error) error {
	if workers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}

		return nil
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error { return fn(i) })
	}

	return g.Wait()
}
