package transition

import "errors"

// Sentinel errors for transition-table construction. Callers branch with
// errors.Is; context is attached with %w at the call site, never baked into
// the sentinel message itself.
var (
	// ErrInvalidP indicates the return-bias parameter p was not > 0.
	ErrInvalidP = errors.New("transition: p must be > 0")

	// ErrInvalidQ indicates the in-out-bias parameter q was not > 0.
	ErrInvalidQ = errors.New("transition: q must be > 0")

	// ErrInvalidGamma indicates the heterogeneous type-mixing parameter γ was
	// negative.
	ErrInvalidGamma = errors.New("transition: gamma must be >= 0")
)
