package config

import "errors"

var (
	// ErrInvalidMode indicates Mode is neither "homogeneous" nor "heterogeneous".
	ErrInvalidMode = errors.New("config: mode must be \"homogeneous\" or \"heterogeneous\"")

	// ErrMissingGraphPath indicates GraphPath was left empty.
	ErrMissingGraphPath = errors.New("config: graph path is required")
)
