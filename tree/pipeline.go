package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
)

// Tree operations will be carried out by concurrent worker goroutines.
// A batch of n independent work packages is partitioned into contiguous
// chunks of ⌈n/W⌉ packages, W being the number of workers. Every chunk is
// processed by exactly one worker, which will never touch a package outside
// of its chunk. Small batches are processed on the calling goroutine, as
// forking would cost more than it saves.

// Minimum and maximum number of concurrent workers for a tree operation.
const (
	minWorkerCount int = 1
	maxWorkerCount int = 256
)

// ErrWorkerFailure is matched by errors reporting a panic inside a worker task.
var ErrWorkerFailure = errors.New("worker failure")

// WorkerError reports a panic recovered from a worker task.
type WorkerError struct {
	Value interface{} // value passed to panic()
	Stack []byte      // stack of the panicking goroutine
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("worker failure: %v", e.Value)
}

// Is lets errors.Is(err, ErrWorkerFailure) succeed.
func (e *WorkerError) Is(target error) bool {
	return target == ErrWorkerFailure
}

// Unwrap returns the panic value if it has been an error.
func (e *WorkerError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Options configure the concurrency of tree operations.
// The zero value is ready to use.
type Options struct {
	MaxWorkers int // ceiling for the number of workers; 0 means no ceiling
}

// Workers returns the number of workers to use, W.
func (o Options) Workers() int {
	return WorkerCount(o.MaxWorkers)
}

// WorkerCount returns the number of workers available to this process,
// clamped to ceiling if ceiling > 0. The result is at least 1.
func WorkerCount(ceiling int) int {
	n := runtime.GOMAXPROCS(0)
	if n > maxWorkerCount {
		n = maxWorkerCount
	}
	if ceiling > 0 && n > ceiling {
		n = ceiling
	}
	if n < minWorkerCount {
		n = minWorkerCount
	}
	return n
}

// ChunkSize returns ⌈n/workers⌉, the number of work packages per chunk.
func ChunkSize(n, workers int) int {
	if workers < 1 {
		workers = 1
	}
	if n <= 0 {
		return 0
	}
	return (n + workers - 1) / workers
}

// Sequential is a predicate: should a batch of n work packages be processed
// without forking, given W workers? This is the case for n ≤ 1.5·W.
func Sequential(n, workers int) bool {
	return workers <= 1 || 2*n <= 3*workers
}

// ForEachChunk partitions the half-open range [0,n) into balanced contiguous
// chunks and calls task(lo, hi) for each of them, concurrently for
// sufficiently large n. It returns after all chunks have been processed,
// with the first error any task reported.
func ForEachChunk(n, workers int, task func(lo, hi int) error) error {
	if n <= 0 {
		return nil
	}
	if Sequential(n, workers) {
		return protect(func() error { return task(0, n) })
	}
	size := ChunkSize(n, workers)
	var g errgroup.Group
	for lo := 0; lo < n; lo += size {
		lo, hi := lo, lo+size
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			return protect(func() error { return task(lo, hi) })
		})
	}
	return g.Wait()
}

// ForEach calls task(i) for every i in [0,n), with at most workers tasks
// running at a time. Tasks are started in ascending order of i. ForEach
// returns after all tasks have finished, with the first error reported.
func ForEach(n, workers int, task func(i int) error) error {
	if n <= 0 {
		return nil
	}
	if workers <= 1 || n == 1 {
		return protect(func() error {
			for i := 0; i < n; i++ {
				if err := task(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			return protect(func() error { return task(i) })
		})
	}
	return g.Wait()
}

// Run calls task on the calling goroutine. A panic inside task is reported
// as a *WorkerError, the same way ForEach and ForEachChunk report it.
func Run(task func() error) error {
	return protect(task)
}

// protect calls task and converts a panic into a *WorkerError.
func protect(task func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("recovered from panic in worker task: %v", r)
			err = &WorkerError{Value: r, Stack: debug.Stack()}
		}
	}()
	return task()
}
