package alias

import "errors"

var (
	// ErrEmptyDistribution indicates Setup was called with zero outcomes.
	ErrEmptyDistribution = errors.New("alias: empty distribution")

	// ErrNegativeProbability indicates a negative entry in probs.
	ErrNegativeProbability = errors.New("alias: negative probability")

	// ErrZeroMass indicates every entry in probs was zero, so there is no
	// distribution to normalize. Callers in package transition treat this as
	// grounds to mark the node a trap rather than fail the whole build.
	ErrZeroMass = errors.New("alias: zero total probability mass")
)
