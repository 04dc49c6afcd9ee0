package repository

import "errors"

// ErrNotFound signals a missing row. Stores return it unwrapped or wrapped;
// callers test with errors.Is.
var ErrNotFound = errors.New("not found")
