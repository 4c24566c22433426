package edgelist

import "errors"

var (
	// ErrMalformedRow indicates a line had fewer than 2 comma-separated fields.
	ErrMalformedRow = errors.New("edgelist: malformed row")

	// ErrBadWeight indicates a weight field failed to parse as a float.
	ErrBadWeight = errors.New("edgelist: unparseable weight")
)
