// Package progression implements an immutable arithmetic progression of int64 values together
// with the set algebra and the scalar arithmetic that operate on it without materializing any
// elements.
package progression

import (
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"golang.org/x/xerrors"

	"github.com/iotaledger/rangeindex/packages/intmath"
)

// region Progression //////////////////////////////////////////////////////////////////////////////////////////////////

// Progression represents a finite monotonic sequence of integers through its start, stop and
// step parameters. The element at position i is start + i*step and the sequence ends before
// stop is reached. Progressions are immutable - every transformation allocates a new instance.
type Progression struct {
	start  int64
	stop   int64
	step   int64
	length int64
}

// New creates a new Progression from the given parameters. It returns an error if step is zero.
func New(start, stop, step int64) (progression *Progression, err error) {
	if step == 0 {
		err = xerrors.Errorf("failed to create Progression (start=%d, stop=%d): %w", start, stop, ErrInvalidStep)
		return
	}

	return newProgression(start, stop, step), nil
}

// Empty creates the canonical empty Progression (0, 0, 1).
func Empty() (progression *Progression) {
	return newProgression(0, 0, 1)
}

// FromBytes unmarshals a Progression from a sequence of bytes.
func FromBytes(progressionBytes []byte) (progression *Progression, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(progressionBytes)
	if progression, err = FromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse Progression from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// FromMarshalUtil unmarshals a Progression using a MarshalUtil (for easier unmarshaling).
func FromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (progression *Progression, err error) {
	start, err := marshalUtil.ReadInt64()
	if err != nil {
		err = xerrors.Errorf("failed to parse start (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	stop, err := marshalUtil.ReadInt64()
	if err != nil {
		err = xerrors.Errorf("failed to parse stop (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	step, err := marshalUtil.ReadInt64()
	if err != nil {
		err = xerrors.Errorf("failed to parse step (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if progression, err = New(start, stop, step); err != nil {
		err = xerrors.Errorf("failed to validate parsed Progression: %w", err)
		return
	}

	return
}

// newProgression creates a Progression without validating the step (callers guarantee step != 0).
func newProgression(start, stop, step int64) (progression *Progression) {
	length := intmath.CeilDiv(stop-start, step)
	if length < 0 {
		length = 0
	}

	return &Progression{
		start:  start,
		stop:   stop,
		step:   step,
		length: length,
	}
}

// Start returns the first parameter of the Progression.
func (p *Progression) Start() (start int64) {
	return p.start
}

// Stop returns the exclusive bound of the Progression. Note that the raw stop is not unique for
// a given element set - use Equal for semantic comparisons.
func (p *Progression) Stop() (stop int64) {
	return p.stop
}

// Step returns the distance between two consecutive elements of the Progression.
func (p *Progression) Step() (step int64) {
	return p.step
}

// Length returns the number of elements of the Progression.
func (p *Progression) Length() (length int) {
	return int(p.length)
}

// IsEmpty returns true if the Progression contains no elements.
func (p *Progression) IsEmpty() (isEmpty bool) {
	return p.length == 0
}

// End returns the value of the last element of the Progression. It is only defined for
// non-empty Progressions.
func (p *Progression) End() (end int64) {
	return p.start + p.step*(p.length-1)
}

// Contains returns true if the given value is an element of the Progression.
func (p *Progression) Contains(value int64) (contains bool) {
	if p.length == 0 || (value-p.start)%p.step != 0 {
		return false
	}

	position := (value - p.start) / p.step

	return position >= 0 && position < p.length
}

// PositionOf returns the ordinal position of the given value inside the Progression. It returns
// an ErrKeyNotFound if the value is not an element of the Progression.
func (p *Progression) PositionOf(value int64) (position int, err error) {
	if !p.Contains(value) {
		err = xerrors.Errorf("failed to locate value %d: %w", value, ErrKeyNotFound)
		return
	}

	return int((value - p.start) / p.step), nil
}

// ElementAt returns the element at the given position. Negative positions are counted from the
// end of the Progression. It returns an ErrIndexOutOfRange if the position lies outside of
// [-length, length).
func (p *Progression) ElementAt(position int) (element int64, err error) {
	index := int64(position)
	if index < 0 {
		index += p.length
	}
	if index < 0 || index >= p.length {
		err = xerrors.Errorf("failed to access position %d of a progression of length %d: %w", position, p.length, ErrIndexOutOfRange)
		return
	}

	return p.start + index*p.step, nil
}

// Min returns the smallest element of the Progression. The returned flag is false if the
// Progression is empty.
func (p *Progression) Min() (min int64, exists bool) {
	if p.length == 0 {
		return
	}
	if p.step > 0 {
		return p.start, true
	}

	return p.End(), true
}

// Max returns the largest element of the Progression. The returned flag is false if the
// Progression is empty.
func (p *Progression) Max() (max int64, exists bool) {
	if p.length == 0 {
		return
	}
	if p.step > 0 {
		return p.End(), true
	}

	return p.start, true
}

// Reversed returns the Progression that enumerates the same elements in the opposite order.
func (p *Progression) Reversed() (reversed *Progression) {
	if p.length == 0 {
		return Empty()
	}

	return newProgression(p.End(), p.start-p.step, -p.step)
}

// IsMonotonicIncreasing returns true if the elements never decrease from one position to the
// next (which is trivially satisfied by progressions with less than two elements).
func (p *Progression) IsMonotonicIncreasing() (isMonotonicIncreasing bool) {
	return p.step > 0 || p.length <= 1
}

// IsMonotonicDecreasing returns true if the elements never increase from one position to the
// next.
func (p *Progression) IsMonotonicDecreasing() (isMonotonicDecreasing bool) {
	return p.step < 0 || p.length <= 1
}

// Argsort returns the permutation of positions that enumerates the elements in ascending order.
func (p *Progression) Argsort() (permutation []int) {
	permutation = make([]int, p.length)
	for i := range permutation {
		if p.step > 0 {
			permutation[i] = i
		} else {
			permutation[i] = int(p.length) - 1 - i
		}
	}

	return
}

// Equal returns true if the other Progression denotes the same elements in the same order. The
// raw stop parameter is not unique for a given element set, so progressions of length >= 2 are
// compared after canonicalizing stop to start + length*step.
func (p *Progression) Equal(other *Progression) (equal bool) {
	if p.length != other.length {
		return false
	}

	switch p.length {
	case 0:
		return true
	case 1:
		return p.start == other.start
	default:
		return p.start == other.start && p.step == other.step
	}
}

// Values materializes the Progression into an explicit sequence of its elements.
func (p *Progression) Values() (values []int64) {
	values = make([]int64, p.length)
	element := p.start
	for i := range values {
		values[i] = element
		element += p.step
	}

	return
}

// Bytes returns a marshaled version of the Progression.
func (p *Progression) Bytes() (marshaledProgression []byte) {
	return marshalutil.New(3 * marshalutil.Int64Size).
		WriteInt64(p.start).
		WriteInt64(p.stop).
		WriteInt64(p.step).
		Bytes()
}

// String returns a human readable version of the Progression.
func (p *Progression) String() (humanReadableProgression string) {
	return stringify.Struct("Progression",
		stringify.StructField("start", p.start),
		stringify.StructField("stop", p.stop),
		stringify.StructField("step", p.step),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Slicing //////////////////////////////////////////////////////////////////////////////////////////////////////

// Slice returns the sub-Progression selected by the given bounds and stride, following the
// slicing rules of a native Python range: nil bounds default to the respective end, negative
// bounds are counted from the end, and out-of-range bounds are clamped. Degenerate slices
// (including a stride of zero) yield the empty Progression.
func (p *Progression) Slice(lower, upper *int, stride *int) (sliced *Progression) {
	strideValue := 1
	if stride != nil {
		strideValue = *stride
	}
	if strideValue == 0 {
		return Empty()
	}

	startIndex, stopIndex := p.sliceIndices(lower, upper, strideValue)

	count := intmath.CeilDiv(int64(stopIndex-startIndex), int64(strideValue))
	if count <= 0 {
		return Empty()
	}

	newStart := p.start + int64(startIndex)*p.step
	newStep := p.step * int64(strideValue)

	return newProgression(newStart, newStart+count*newStep, newStep)
}

// sliceIndices resolves the optional slice bounds against the length of the Progression the
// same way Python's slice.indices does.
func (p *Progression) sliceIndices(lower, upper *int, stride int) (startIndex, stopIndex int) {
	length := int(p.length)

	lowerClamp, upperClamp := 0, length
	startIndex, stopIndex = 0, length
	if stride < 0 {
		lowerClamp, upperClamp = -1, length-1
		startIndex, stopIndex = length-1, -1
	}

	resolve := func(index int) int {
		if index < 0 {
			index += length
		}
		if index < lowerClamp {
			return lowerClamp
		}
		if index > upperClamp {
			return upperClamp
		}
		return index
	}

	if lower != nil {
		startIndex = resolve(*lower)
	}
	if upper != nil {
		stopIndex = resolve(*upper)
	}

	return
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
