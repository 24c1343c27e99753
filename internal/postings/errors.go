package postings

import "errors"

// ErrNotFound is returned when a posting does not exist.
var ErrNotFound = errors.New("posting not found")
