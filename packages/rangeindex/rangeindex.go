// Package rangeindex implements a lazily-materialized index over a monotonic integer
// progression. It exposes the full algebra of an ordered integer collection (membership,
// positional lookup, slicing, min/max, elementwise arithmetic, intersection and union) while
// storing nothing but the three parameters of the progression; a dense representation is only
// ever produced when an operation forces it.
package rangeindex

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"go.uber.org/atomic"
	"golang.org/x/xerrors"

	"github.com/iotaledger/rangeindex/packages/intindex"
	"github.com/iotaledger/rangeindex/packages/intmath"
	"github.com/iotaledger/rangeindex/packages/progression"
)

// region RangeIndex ///////////////////////////////////////////////////////////////////////////////////////////////////

// RangeIndex wraps a Progression with an optional label and a lazily populated materialization
// cache. It is immutable after construction - the cache is the only mutable slot, it is written
// exactly once, and its existence is only observable through IsMaterialized.
type RangeIndex struct {
	progression *progression.Progression
	label       string

	materializedValues []int64
	materialized       atomic.Bool
	materializeMutex   sync.Mutex
}

// New creates a new RangeIndex from the given Progression and label.
func New(wrappedProgression *progression.Progression, label string) (rangeIndex *RangeIndex) {
	return &RangeIndex{
		progression: wrappedProgression,
		label:       label,
	}
}

// FromBounds creates a new RangeIndex from optional start, stop and step parameters. A single
// given value is interpreted as the stop parameter (start defaults to 0 and step defaults to
// 1). It returns an ErrInvalidConstruction if all three parameters are absent and an
// ErrInvalidStep if the step resolves to zero.
func FromBounds(start, stop, step *int64, label string) (rangeIndex *RangeIndex, err error) {
	if start == nil && stop == nil && step == nil {
		err = xerrors.Errorf("failed to create RangeIndex: %w", ErrInvalidConstruction)
		return
	}

	startValue := int64(0)
	if start != nil {
		startValue = *start
	}
	stopValue := startValue
	if stop != nil {
		stopValue = *stop
	} else {
		startValue = 0
	}
	stepValue := int64(1)
	if step != nil {
		stepValue = *step
	}

	wrappedProgression, err := progression.New(startValue, stopValue, stepValue)
	if err != nil {
		err = xerrors.Errorf("failed to create RangeIndex: %w", err)
		return
	}

	return New(wrappedProgression, label), nil
}

// FromProgression creates a new RangeIndex that wraps the given Progression.
func FromProgression(wrappedProgression *progression.Progression, label string) (rangeIndex *RangeIndex) {
	return New(wrappedProgression, label)
}

// FromBytes unmarshals a RangeIndex from a sequence of bytes.
func FromBytes(rangeIndexBytes []byte) (rangeIndex *RangeIndex, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(rangeIndexBytes)
	if rangeIndex, err = FromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse RangeIndex from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// FromMarshalUtil unmarshals a RangeIndex using a MarshalUtil (for easier unmarshaling).
func FromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (rangeIndex *RangeIndex, err error) {
	wrappedProgression, err := progression.FromMarshalUtil(marshalUtil)
	if err != nil {
		err = xerrors.Errorf("failed to parse Progression from MarshalUtil: %w", err)
		return
	}
	labelLength, err := marshalUtil.ReadUint32()
	if err != nil {
		err = xerrors.Errorf("failed to parse label length (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	labelBytes, err := marshalUtil.ReadBytes(int(labelLength))
	if err != nil {
		err = xerrors.Errorf("failed to parse label (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	return New(wrappedProgression, string(labelBytes)), nil
}

// Progression returns the wrapped Progression.
func (i *RangeIndex) Progression() (wrappedProgression *progression.Progression) {
	return i.progression
}

// Label returns the optional label of the RangeIndex.
func (i *RangeIndex) Label() (label string) {
	return i.label
}

// Start returns the first parameter of the wrapped Progression.
func (i *RangeIndex) Start() (start int64) {
	return i.progression.Start()
}

// Stop returns the exclusive bound of the wrapped Progression.
func (i *RangeIndex) Stop() (stop int64) {
	return i.progression.Stop()
}

// Step returns the distance between two consecutive elements.
func (i *RangeIndex) Step() (step int64) {
	return i.progression.Step()
}

// Length returns the number of elements of the RangeIndex.
func (i *RangeIndex) Length() (length int) {
	return i.progression.Length()
}

// IsEmpty returns true if the RangeIndex contains no elements.
func (i *RangeIndex) IsEmpty() (isEmpty bool) {
	return i.progression.IsEmpty()
}

// ContainsValue returns true if the given value is an element of the RangeIndex.
func (i *RangeIndex) ContainsValue(value int64) (contains bool) {
	return i.progression.Contains(value)
}

// ContainsFloat returns true if the given float is an integral value that is an element of the
// RangeIndex. Non-integral keys are never contained (they do not cause an error).
func (i *RangeIndex) ContainsFloat(value float64) (contains bool) {
	if value != float64(int64(value)) {
		return false
	}

	return i.progression.Contains(int64(value))
}

// GetPosition returns the ordinal position of the given value inside the RangeIndex. It returns
// an error wrapping progression.ErrKeyNotFound if the value is not an element.
func (i *RangeIndex) GetPosition(value int64) (position int, err error) {
	if position, err = i.progression.PositionOf(value); err != nil {
		err = xerrors.Errorf("failed to look up value %d in RangeIndex: %w", value, err)
		return
	}

	return
}

// ElementAt returns the element at the given position. Negative positions are counted from the
// end.
func (i *RangeIndex) ElementAt(position int) (element int64, err error) {
	return i.progression.ElementAt(position)
}

// Slice returns the RangeIndex that is selected by the given bounds and stride (following the
// slicing rules of a native Python range). The label is preserved.
func (i *RangeIndex) Slice(lower, upper *int, stride *int) (sliced *RangeIndex) {
	return New(i.progression.Slice(lower, upper, stride), i.label)
}

// Min returns the smallest element of the RangeIndex. The returned flag is false if the index
// is empty.
func (i *RangeIndex) Min() (min int64, exists bool) {
	return i.progression.Min()
}

// Max returns the largest element of the RangeIndex. The returned flag is false if the index is
// empty.
func (i *RangeIndex) Max() (max int64, exists bool) {
	return i.progression.Max()
}

// All returns true if every element of the RangeIndex is non-zero.
func (i *RangeIndex) All() (all bool) {
	return !i.progression.Contains(0)
}

// Any returns true if at least one element of the RangeIndex is non-zero. A progression can
// only consist entirely of zeros if it has exactly one element, so this is an O(1) check.
func (i *RangeIndex) Any() (any bool) {
	return i.Length() > 1 || (i.Length() == 1 && i.Start() != 0)
}

// IsMonotonicIncreasing returns true if the elements never decrease from one position to the
// next.
func (i *RangeIndex) IsMonotonicIncreasing() (isMonotonicIncreasing bool) {
	return i.progression.IsMonotonicIncreasing()
}

// IsMonotonicDecreasing returns true if the elements never increase from one position to the
// next.
func (i *RangeIndex) IsMonotonicDecreasing() (isMonotonicDecreasing bool) {
	return i.progression.IsMonotonicDecreasing()
}

// Argsort returns the permutation of positions that enumerates the elements in ascending order.
func (i *RangeIndex) Argsort() (permutation []int) {
	return i.progression.Argsort()
}

// Reversed returns the RangeIndex that enumerates the same elements in the opposite order.
func (i *RangeIndex) Reversed() (reversed *RangeIndex) {
	return New(i.progression.Reversed(), i.label)
}

// Equal returns true if the other RangeIndex denotes the same elements in the same order.
// Labels are not part of the comparison.
func (i *RangeIndex) Equal(other *RangeIndex) (equal bool) {
	return i.progression.Equal(other.progression)
}

// Copy returns a new RangeIndex built from the same triple and label. The materialization cache
// is not carried over.
func (i *RangeIndex) Copy() (copied *RangeIndex) {
	return New(i.progression, i.label)
}

// Bytes returns a marshaled version of the RangeIndex.
func (i *RangeIndex) Bytes() (marshaledRangeIndex []byte) {
	marshalUtil := marshalutil.New()
	marshalUtil.WriteBytes(i.progression.Bytes())
	marshalUtil.WriteUint32(uint32(len(i.label)))
	marshalUtil.WriteBytes([]byte(i.label))

	return marshalUtil.Bytes()
}

// String returns a human readable version of the RangeIndex.
func (i *RangeIndex) String() (humanReadableRangeIndex string) {
	return stringify.Struct("RangeIndex",
		stringify.StructField("progression", i.progression),
		stringify.StructField("label", i.label),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Materialization //////////////////////////////////////////////////////////////////////////////////////////////

// Materialize populates the materialization cache on its first call and returns it. The
// returned slice is the cache itself and must not be mutated; use ToDense for an owned copy.
// Concurrent callers observe at most one materialization and never a partially written buffer.
func (i *RangeIndex) Materialize() (values []int64) {
	if i.materialized.Load() {
		return i.materializedValues
	}

	i.materializeMutex.Lock()
	defer i.materializeMutex.Unlock()

	if !i.materialized.Load() {
		i.materializedValues = i.progression.Values()
		i.materialized.Store(true)
	}

	return i.materializedValues
}

// IsMaterialized returns true if the materialization cache has been populated. This is the only
// way the existence of the cache is observable.
func (i *RangeIndex) IsMaterialized() (isMaterialized bool) {
	return i.materialized.Load()
}

// ToDense forces materialization and returns an independent dense snapshot of the elements,
// carrying the label of the RangeIndex.
func (i *RangeIndex) ToDense() (dense *intindex.Int64Index) {
	return intindex.NewInt64Index(i.label, i.Materialize())
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Set algebra //////////////////////////////////////////////////////////////////////////////////////////////////

// Intersect returns the RangeIndex that contains the elements that are present in both
// operands. The intersection of two progressions is always expressible as a progression, so
// the result never degrades to a dense representation. The label is kept if both operands
// agree on it.
func (i *RangeIndex) Intersect(other *RangeIndex, sortResult bool) (intersection *RangeIndex) {
	return New(progression.Intersect(i.progression, other.progression, sortResult), i.mergedLabel(other))
}

// Union returns the set union of the two operands. With a SortAscending hint the union is
// attempted in closed form first and only degrades to a sorted dense collection if no single
// progression can describe it. With a SortNone hint the result is the dense concatenation of
// the operands with duplicates removed (after the trivial fast paths).
func (i *RangeIndex) Union(other *RangeIndex, hint SortHint) (result Result) {
	label := i.mergedLabel(other)

	if other.IsEmpty() || i.Equal(other) {
		return newRangeResult(New(i.progression, label))
	}
	if i.IsEmpty() {
		return newRangeResult(New(other.progression, label))
	}

	if hint == SortNone {
		return newDenseResult(intindex.NewInt64Index(label, intindex.ConcatDedup(i.Materialize(), other.Materialize())))
	}

	merged, err := progression.Union(i.progression, other.progression)
	if err == nil {
		return newRangeResult(New(merged, label))
	}

	// no closed form exists - the exact dense union is always correct
	return newDenseResult(intindex.NewInt64Index(label, intindex.SortedUnion(i.Materialize(), other.Materialize())))
}

// mergedLabel resolves the label of a combined result: it is kept if both operands agree on it
// and dropped otherwise.
func (i *RangeIndex) mergedLabel(other *RangeIndex) (label string) {
	if i.label == other.label {
		return i.label
	}

	return ""
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Arithmetic ///////////////////////////////////////////////////////////////////////////////////////////////////

// ApplyScalar applies the given elementwise operator with the given scalar to the RangeIndex.
// Whenever the algebra stays integral the result keeps its closed form; otherwise it degrades
// to the matching dense representation (integer for floor division and multiplication by zero,
// float for non-integral true division). The only returned errors are for operands the
// operation is undefined on (division by zero, unknown operators) - an awkward progression is
// never an error.
func (i *RangeIndex) ApplyScalar(scalar int64, op progression.Op) (result Result, err error) {
	transformed, applyErr := progression.ApplyScalar(i.progression, scalar, op)
	if applyErr == nil {
		return newRangeResult(New(transformed, i.label)), nil
	}
	if errors.Is(applyErr, progression.ErrNotApplicable) {
		err = xerrors.Errorf("failed to apply %s with scalar %d: %w", op, scalar, applyErr)
		return
	}

	switch op {
	case progression.OpMul:
		values := i.Materialize()
		products := make([]int64, len(values))
		for index, value := range values {
			products[index] = value * scalar
		}

		return newDenseResult(intindex.NewInt64Index(i.label, products)), nil
	case progression.OpFloorDiv:
		values := i.Materialize()
		quotients := make([]int64, len(values))
		for index, value := range values {
			quotients[index] = intmath.FloorDiv(value, scalar)
		}

		return newDenseResult(intindex.NewInt64Index(i.label, quotients)), nil
	case progression.OpDiv:
		values := i.Materialize()
		quotients := make([]float64, len(values))
		for index, value := range values {
			quotients[index] = float64(value) / float64(scalar)
		}

		return newDenseFloatResult(intindex.NewFloat64Index(i.label, quotients)), nil
	default:
		err = xerrors.Errorf("failed to apply %s with scalar %d: %w", op, scalar, applyErr)
		return
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
