package cache

import "errors"

// ErrNotFound indicates no cached tables exist for the requested key.
var ErrNotFound = errors.New("cache: key not found")
