package parallel

import "errors"

// An Integrand is a real-valued function of one real variable, as consumed
// by reduce.Integral.
type Integrand func(float64) float64

// ErrWorkerCount is returned when a caller requests a worker team of fewer
// than one worker. Invalid worker counts are rejected before any goroutine
// is spawned.
var ErrWorkerCount = errors.New("parallel: worker count must be at least 1")

// ErrRange is returned when a caller passes a negative range length. A
// length of zero is not an error; it denotes an empty computation.
var ErrRange = errors.New("parallel: range length must be non-negative")
