package rangeindex

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidConstruction is returned if a RangeIndex is constructed without any of start,
	// stop and step.
	ErrInvalidConstruction = errors.New("at least one of start, stop and step must be given")
)
