// Package intindex implements the dense ordered collections that the range algebra falls back
// to when a result can not be described by a single progression.
package intindex

import (
	"sort"

	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"golang.org/x/xerrors"
)

// region Int64Index ///////////////////////////////////////////////////////////////////////////////////////////////////

// Int64Index is an explicitly enumerated ordered collection of int64 values with an optional
// label. It is the exact (but memory-hungry) counterpart of a Progression.
type Int64Index struct {
	label  string
	values []int64
}

// NewInt64Index creates a new Int64Index that owns a copy of the given values.
func NewInt64Index(label string, values []int64) (int64Index *Int64Index) {
	ownedValues := make([]int64, len(values))
	copy(ownedValues, values)

	return &Int64Index{
		label:  label,
		values: ownedValues,
	}
}

// Int64IndexFromBytes unmarshals an Int64Index from a sequence of bytes.
func Int64IndexFromBytes(int64IndexBytes []byte) (int64Index *Int64Index, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(int64IndexBytes)
	if int64Index, err = Int64IndexFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse Int64Index from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// Int64IndexFromMarshalUtil unmarshals an Int64Index using a MarshalUtil (for easier
// unmarshaling).
func Int64IndexFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (int64Index *Int64Index, err error) {
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
	valuesCount, err := marshalUtil.ReadUint32()
	if err != nil {
		err = xerrors.Errorf("failed to parse values count (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	int64Index = &Int64Index{
		label:  string(labelBytes),
		values: make([]int64, valuesCount),
	}
	for i := 0; i < int(valuesCount); i++ {
		if int64Index.values[i], err = marshalUtil.ReadInt64(); err != nil {
			err = xerrors.Errorf("failed to parse value at position %d (%v): %w", i, err, cerrors.ErrParseBytesFailed)
			return
		}
	}

	return
}

// Label returns the optional label of the Int64Index.
func (i *Int64Index) Label() (label string) {
	return i.label
}

// Length returns the number of elements of the Int64Index.
func (i *Int64Index) Length() (length int) {
	return len(i.values)
}

// Values returns a copy of the elements of the Int64Index.
func (i *Int64Index) Values() (values []int64) {
	values = make([]int64, len(i.values))
	copy(values, i.values)

	return
}

// Contains returns true if the given value is an element of the Int64Index.
func (i *Int64Index) Contains(value int64) (contains bool) {
	for _, element := range i.values {
		if element == value {
			return true
		}
	}

	return false
}

// PositionOf returns the position of the first occurrence of the given value. It returns an
// ErrKeyNotFound if the value is not an element of the Int64Index.
func (i *Int64Index) PositionOf(value int64) (position int, err error) {
	for index, element := range i.values {
		if element == value {
			return index, nil
		}
	}

	err = xerrors.Errorf("failed to locate value %d: %w", value, ErrKeyNotFound)

	return
}

// ElementAt returns the element at the given position (negative positions are counted from the
// end).
func (i *Int64Index) ElementAt(position int) (element int64, exists bool) {
	if position < 0 {
		position += len(i.values)
	}
	if position < 0 || position >= len(i.values) {
		return
	}

	return i.values[position], true
}

// Min returns the smallest element of the Int64Index. The returned flag is false if the index
// is empty.
func (i *Int64Index) Min() (min int64, exists bool) {
	for index, element := range i.values {
		if index == 0 || element < min {
			min = element
		}
		exists = true
	}

	return
}

// Max returns the largest element of the Int64Index. The returned flag is false if the index is
// empty.
func (i *Int64Index) Max() (max int64, exists bool) {
	for index, element := range i.values {
		if index == 0 || element > max {
			max = element
		}
		exists = true
	}

	return
}

// Equal returns true if the other Int64Index holds the same elements in the same order.
func (i *Int64Index) Equal(other *Int64Index) (equal bool) {
	if len(i.values) != len(other.values) {
		return false
	}
	for index, element := range i.values {
		if other.values[index] != element {
			return false
		}
	}

	return true
}

// Bytes returns a marshaled version of the Int64Index.
func (i *Int64Index) Bytes() (marshaledInt64Index []byte) {
	marshalUtil := marshalutil.New()
	marshalUtil.WriteUint32(uint32(len(i.label)))
	marshalUtil.WriteBytes([]byte(i.label))
	marshalUtil.WriteUint32(uint32(len(i.values)))
	for _, element := range i.values {
		marshalUtil.WriteInt64(element)
	}

	return marshalUtil.Bytes()
}

// String returns a human readable version of the Int64Index.
func (i *Int64Index) String() (humanReadableInt64Index string) {
	return stringify.Struct("Int64Index",
		stringify.StructField("label", i.label),
		stringify.StructField("length", len(i.values)),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region merge helpers ////////////////////////////////////////////////////////////////////////////////////////////////

// SortedUnion returns the sorted, deduplicated union of the two value sequences.
func SortedUnion(a, b []int64) (union []int64) {
	union = make([]int64, 0, len(a)+len(b))
	union = append(union, a...)
	union = append(union, b...)
	sort.Slice(union, func(i, j int) bool { return union[i] < union[j] })

	deduplicated := union[:0]
	for i, element := range union {
		if i == 0 || deduplicated[len(deduplicated)-1] != element {
			deduplicated = append(deduplicated, element)
		}
	}

	return deduplicated
}

// ConcatDedup concatenates the two value sequences, dropping every element that occurred
// before. The relative order of the first occurrences is preserved.
func ConcatDedup(a, b []int64) (concatenated []int64) {
	seen := make(map[int64]struct{}, len(a)+len(b))
	concatenated = make([]int64, 0, len(a)+len(b))
	for _, sequence := range [][]int64{a, b} {
		for _, element := range sequence {
			if _, exists := seen[element]; exists {
				continue
			}
			seen[element] = struct{}{}
			concatenated = append(concatenated, element)
		}
	}

	return
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
