package builder

import "errors"

// Sentinel errors shared by the topology constructors.
var (
	// ErrNegativeCount indicates a size argument below zero.
	ErrNegativeCount = errors.New("builder: size must be non-negative")

	// ErrTooFewVertices indicates a topology that is undefined at the
	// requested size (e.g. a cycle on fewer than three vertices).
	ErrTooFewVertices = errors.New("builder: too few vertices for topology")
)
