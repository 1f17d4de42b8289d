// Package workerpool provides a static-partition parallel-for primitive used
// by the EDT engine to fan row and column transforms out across goroutines.
package workerpool

import "sync"

// Parallel partitions [0, n) into at most workers contiguous, disjoint
// chunks of ceil(n/workers) indices (the last may be shorter) and runs
// fn(lo, hi) once per chunk, each on its own goroutine, blocking until every
// call has returned. Handing the caller a whole [lo, hi) range, rather
// than calling fn once per index, lets it allocate one scratch buffer per
// worker and reuse it across every index in the chunk instead of once per
// index. n <= 0 does nothing; workers <= 1 or n == 1 runs fn(0, n) inline
// with no goroutines.
//
// A static partition with a single join at the end; no work-stealing, no
// ordering between workers because each index's work touches disjoint
// memory.
func Parallel(n, workers int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if workers <= 1 || n == 1 {
		fn(0, n)
		return
	}
	if workers > n {
		workers = n
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= n {
			break
		}
		end := start + chunk
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}

// Branches runs each function in fns concurrently and blocks until all
// have returned. Used to overlap independent 2-D EDT passes.
func Branches(fns ...func()) {
	if len(fns) == 0 {
		return
	}
	if len(fns) == 1 {
		fns[0]()
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(fns))
	for _, fn := range fns {
		go func(fn func()) {
			defer wg.Done()
			fn()
		}(fn)
	}
	wg.Wait()
}
