package progression

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidStep is returned if a Progression is constructed with a step of zero.
	ErrInvalidStep = errors.New("step must not be zero")
	// ErrKeyNotFound is returned if a looked up value is not an element of the Progression.
	ErrKeyNotFound = errors.New("value is not contained in the progression")
	// ErrIndexOutOfRange is returned if a positional access lies outside of [-length, length).
	ErrIndexOutOfRange = errors.New("positional index is out of range")
	// ErrNotRepresentable is returned if the result of an operation can not be expressed as a
	// single Progression. It is a signal for the caller to switch to a dense representation and
	// must never be surfaced to the user of the library.
	ErrNotRepresentable = errors.New("result is not representable as a single progression")
	// ErrNotApplicable is returned if an operation is undefined for the given operands (e.g.
	// division by zero).
	ErrNotApplicable = errors.New("operation is not applicable to the given operands")
)
