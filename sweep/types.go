package sweep

import "errors"

// DefaultThreshold is the highest total cost a successful path may have.
const DefaultThreshold = 50

// Sentinel errors returned by the sweep.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("sweep: grid must have at least one row and one column")

	// ErrBadWorkers indicates a worker count below 1.
	ErrBadWorkers = errors.New("sweep: workers must be at least 1")

	// ErrLengthMismatch indicates fold inputs whose row counts differ.
	ErrLengthMismatch = errors.New("sweep: fold columns must have the same length")

	// ErrNilPath indicates a nil continuation passed to a fold.
	ErrNilPath = errors.New("sweep: fold continuation is nil")
)

// Options configures Find.
//
// Threshold – highest total cost of a successful path. Default 50.
// Truncate  – cut a failing path before the step that overruns Threshold.
//
//	Default true.
//
// Workers   – goroutines sharing the rows of each fold. Default 1.
type Options struct {
	Threshold int
	Truncate  bool
	Workers   int
}

// Option represents a functional option for configuring Find.
type Option func(*Options)

// WithThreshold sets the success threshold.
func WithThreshold(n int) Option {
	return func(o *Options) {
		o.Threshold = n
	}
}

// WithoutTruncation reports the complete cheapest path even when it fails
// the threshold.
func WithoutTruncation() Option {
	return func(o *Options) {
		o.Truncate = false
	}
}

// WithWorkers spreads the rows of every fold over n goroutines.
// Results are identical to the sequential sweep.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// DefaultOptions returns Options with Threshold=DefaultThreshold,
// Truncate=true and Workers=1.
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		Truncate:  true,
		Workers:   1,
	}
}
