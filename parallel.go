package gslice

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// checkEvery is how many elements a worker scans between context checks.
const checkEvery = 4096

// CountParallel is Count split across up to workers goroutines. workers <= 0
// uses GOMAXPROCS. The slice must not be mutated until it returns.
func (s *Slice[T]) CountParallel(ctx context.Context, v T, eq EqualFunc[T], workers int) (int, error) {
	eq = orEqual(eq)
	chunks := s.chunks(workers)
	counts := make([]int, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		g.Go(func() error {
			n := 0
			for j, x := range chunk {
				if j%checkEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				if eq(x, v) {
					n++
				}
			}
			counts[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	return total, nil
}

// ContainsParallel is Contains split across up to workers goroutines. Workers
// stop as soon as one of them finds v.
func (s *Slice[T]) ContainsParallel(ctx context.Context, v T, workers int) (bool, error) {
	var found atomic.Bool

	g, gctx := errgroup.WithContext(ctx)
	for _, chunk := range s.chunks(workers) {
		g.Go(func() error {
			for j, x := range chunk {
				if j%checkEvery == 0 {
					if found.Load() {
						return nil
					}
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				if x == v {
					found.Store(true)
					return nil
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil && !found.Load() {
		return false, err
	}
	return found.Load(), nil
}

func (s *Slice[T]) chunks(workers int) [][]T {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	n := len(s.items)
	if n == 0 {
		return nil
	}
	workers = min(workers, n)
	size := (n + workers - 1) / workers

	out := make([][]T, 0, workers)
	for lo := 0; lo < n; lo += size {
		out = append(out, s.items[lo:min(lo+size, n)])
	}
	return out
}
