package builder

import "errors"

// Sentinel errors for synthetic graph construction. Callers branch with
// errors.Is; context is attached with %w at the call site.
var (
	// ErrTooFewVertices indicates n is smaller than a constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates p is outside the closed interval [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor was called with a
	// nil *rand.Rand while 0 < p < 1.
	ErrNeedRandSource = errors.New("builder: rng is required")
)
