package walk

import "errors"

// Sentinel errors for the walk driver. Callers branch with errors.Is.
var (
	// ErrNotPreprocessed indicates NewDriver was given tables that were
	// never built for this graph (nil tables, or a table count mismatched
	// against the graph's node count).
	ErrNotPreprocessed = errors.New("walk: transition tables not preprocessed for this graph")

	// ErrInvalidLength indicates a requested walk length < 2.
	ErrInvalidLength = errors.New("walk: length must be >= 2")

	// ErrInvalidWindow indicates a co-occurrence window <= 0.
	ErrInvalidWindow = errors.New("walk: window must be > 0")
)
