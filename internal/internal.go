// Package internal provides helper functionality shared by the parallel
// subpackages.
package internal

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
)

// ComputeNofBatches divides the size of the range (high - low) by n. If n is 0,
// a default is used that takes runtime.GOMAXPROCS(0) into account.
func ComputeNofBatches(low, high, n int) (batches int) {
	switch size := high - low; {
	case size > 0:
		switch {
		case n == 0:
			batches = 2 * runtime.GOMAXPROCS(0)
		case n > 0:
			batches = n
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
		if batches > size {
			batches = size
		}
	case size == 0:
		batches = 1
	default:
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	return
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// WrapPanic adds stack trace information to a recovered panic.
func WrapPanic(p any) any {
	if p != nil {
		s := fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
		if _, isError := p.(error); isError {
			r := errors.New(s)
			if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
				return runtimeError{r}
			}
			return r
		}
		return s
	}
	return nil
}

// Team invokes body(t) for every t in [0, workers), each in its own
// goroutine except worker 0, which runs on the calling goroutine, and
// returns when all of them have terminated.
//
// If one or more workers panic, the corresponding goroutines recover the
// panics, and Team eventually panics with the recovered panic value of the
// lowest-numbered panicking worker.
func Team(workers int, body func(t int)) {
	if workers == 1 {
		body(0)
		return
	}
	panics := make([]any, workers)
	var wg sync.WaitGroup
	wg.Add(workers - 1)
	for t := 1; t < workers; t++ {
		go func() {
			defer func() {
				panics[t] = WrapPanic(recover())
				wg.Done()
			}()
			body(t)
		}()
	}
	func() {
		defer func() {
			panics[0] = recover()
		}()
		body(0)
	}()
	wg.Wait()
	for _, p := range panics {
		if p != nil {
			panic(p)
		}
	}
}
