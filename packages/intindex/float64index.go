package intindex

import (
	"math"

	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"golang.org/x/xerrors"
)

// region Float64Index /////////////////////////////////////////////////////////////////////////////////////////////////

// Float64Index is an explicitly enumerated ordered collection of float64 values with an
// optional label. It is the target of arithmetic results that leave the integers.
type Float64Index struct {
	label  string
	values []float64
}

// NewFloat64Index creates a new Float64Index that owns a copy of the given values.
func NewFloat64Index(label string, values []float64) (float64Index *Float64Index) {
	ownedValues := make([]float64, len(values))
	copy(ownedValues, values)

	return &Float64Index{
		label:  label,
		values: ownedValues,
	}
}

// Float64IndexFromBytes unmarshals a Float64Index from a sequence of bytes.
func Float64IndexFromBytes(float64IndexBytes []byte) (float64Index *Float64Index, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(float64IndexBytes)
	if float64Index, err = Float64IndexFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse Float64Index from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// Float64IndexFromMarshalUtil unmarshals a Float64Index using a MarshalUtil (for easier
// unmarshaling).
func Float64IndexFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (float64Index *Float64Index, err error) {
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

	float64Index = &Float64Index{
		label:  string(labelBytes),
		values: make([]float64, valuesCount),
	}
	for i := 0; i < int(valuesCount); i++ {
		valueBits, valueErr := marshalUtil.ReadUint64()
		if valueErr != nil {
			err = xerrors.Errorf("failed to parse value at position %d (%v): %w", i, valueErr, cerrors.ErrParseBytesFailed)
			return
		}
		float64Index.values[i] = math.Float64frombits(valueBits)
	}

	return
}

// Label returns the optional label of the Float64Index.
func (f *Float64Index) Label() (label string) {
	return f.label
}

// Length returns the number of elements of the Float64Index.
func (f *Float64Index) Length() (length int) {
	return len(f.values)
}

// Values returns a copy of the elements of the Float64Index.
func (f *Float64Index) Values() (values []float64) {
	values = make([]float64, len(f.values))
	copy(values, f.values)

	return
}

// Equal returns true if the other Float64Index holds the same elements in the same order.
func (f *Float64Index) Equal(other *Float64Index) (equal bool) {
	if len(f.values) != len(other.values) {
		return false
	}
	for index, element := range f.values {
		if other.values[index] != element {
			return false
		}
	}

	return true
}

// Bytes returns a marshaled version of the Float64Index.
func (f *Float64Index) Bytes() (marshaledFloat64Index []byte) {
	marshalUtil := marshalutil.New()
	marshalUtil.WriteUint32(uint32(len(f.label)))
	marshalUtil.WriteBytes([]byte(f.label))
	marshalUtil.WriteUint32(uint32(len(f.values)))
	for _, element := range f.values {
		marshalUtil.WriteUint64(math.Float64bits(element))
	}

	return marshalUtil.Bytes()
}

// String returns a human readable version of the Float64Index.
func (f *Float64Index) String() (humanReadableFloat64Index string) {
	return stringify.Struct("Float64Index",
		stringify.StructField("label", f.label),
		stringify.StructField("length", len(f.values)),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
