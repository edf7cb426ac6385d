package intindex

import "github.com/cockroachdb/errors"

var (
	// ErrKeyNotFound is returned if a looked up value is not an element of the index.
	ErrKeyNotFound = errors.New("value is not contained in the index")
)
