package rangeindex

import (
	"github.com/iotaledger/hive.go/stringify"

	"github.com/iotaledger/rangeindex/packages/intindex"
)

// region SortHint /////////////////////////////////////////////////////////////////////////////////////////////////////

// SortHint states whether the caller of a set operation wants an ascending result. An unsorted
// union has no canonical progression form, so SortNone always produces a dense result (except
// for the trivial fast paths).
type SortHint int8

const (
	// SortAscending requests a monotonically increasing result.
	SortAscending SortHint = iota
	// SortNone requests the concatenation order of the operands.
	SortNone
)

// String returns a human readable version of the SortHint.
func (s SortHint) String() (humanReadableSortHint string) {
	switch s {
	case SortAscending:
		return "SortHint(ascending)"
	case SortNone:
		return "SortHint(none)"
	default:
		return "SortHint(unknown)"
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Result ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Result is the outcome of a set or arithmetic operation. Exactly one of its variants is
// populated: either the result stayed in closed form as a RangeIndex, or it degraded to a dense
// integer or float collection. Callers are expected to switch on the Is* accessors instead of
// relying on any implicit conversion.
type Result struct {
	rangeIndex *RangeIndex
	dense      *intindex.Int64Index
	denseFloat *intindex.Float64Index
}

// newRangeResult wraps a RangeIndex into a Result.
func newRangeResult(rangeIndex *RangeIndex) (result Result) {
	return Result{rangeIndex: rangeIndex}
}

// newDenseResult wraps an Int64Index into a Result.
func newDenseResult(dense *intindex.Int64Index) (result Result) {
	return Result{dense: dense}
}

// newDenseFloatResult wraps a Float64Index into a Result.
func newDenseFloatResult(denseFloat *intindex.Float64Index) (result Result) {
	return Result{denseFloat: denseFloat}
}

// IsRange returns true if the Result stayed in closed form.
func (r Result) IsRange() (isRange bool) {
	return r.rangeIndex != nil
}

// Range returns the closed form variant of the Result (nil if IsRange is false).
func (r Result) Range() (rangeIndex *RangeIndex) {
	return r.rangeIndex
}

// IsDense returns true if the Result degraded to a dense integer collection.
func (r Result) IsDense() (isDense bool) {
	return r.dense != nil
}

// Dense returns the dense integer variant of the Result (nil if IsDense is false).
func (r Result) Dense() (dense *intindex.Int64Index) {
	return r.dense
}

// IsDenseFloat returns true if the Result degraded to a dense float collection.
func (r Result) IsDenseFloat() (isDenseFloat bool) {
	return r.denseFloat != nil
}

// DenseFloat returns the dense float variant of the Result (nil if IsDenseFloat is false).
func (r Result) DenseFloat() (denseFloat *intindex.Float64Index) {
	return r.denseFloat
}

// String returns a human readable version of the Result.
func (r Result) String() (humanReadableResult string) {
	switch {
	case r.rangeIndex != nil:
		return stringify.Struct("Result", stringify.StructField("range", r.rangeIndex))
	case r.dense != nil:
		return stringify.Struct("Result", stringify.StructField("dense", r.dense))
	case r.denseFloat != nil:
		return stringify.Struct("Result", stringify.StructField("denseFloat", r.denseFloat))
	default:
		return stringify.Struct("Result")
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
