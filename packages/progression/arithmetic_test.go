package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyScalarAddSub(t *testing.T) {
	progression := mustNew(t, 0, 10, 2)

	shifted, err := ApplyScalar(progression, 3, OpAdd)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 5, 7, 9, 11}, shifted.Values())

	shifted, err = ApplyScalar(progression, 3, OpSub)
	require.NoError(t, err)
	assert.Equal(t, []int64{-3, -1, 1, 3, 5}, shifted.Values())

	// shifting preserves the length even for decreasing progressions
	shifted, err = ApplyScalar(mustNew(t, 10, 0, -2), 5, OpAdd)
	require.NoError(t, err)
	assert.Equal(t, []int64{15, 13, 11, 9, 7}, shifted.Values())
}

func TestApplyScalarMul(t *testing.T) {
	progression := mustNew(t, 0, 10, 2)

	scaled, err := ApplyScalar(progression, 3, OpMul)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 6, 12, 18, 24}, scaled.Values())

	// negative scalars flip the orientation but keep the length
	scaled, err = ApplyScalar(progression, -2, OpMul)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, -4, -8, -12, -16}, scaled.Values())

	// a scalar of zero would require a step of zero
	_, err = ApplyScalar(progression, 0, OpMul)
	assert.ErrorIs(t, err, ErrNotRepresentable)
}

func TestApplyScalarHomomorphism(t *testing.T) {
	operands := []*Progression{
		mustNew(t, -7, 21, 4),
		mustNew(t, 13, -8, -3),
		mustNew(t, 0, 1, 1),
	}

	for _, progression := range operands {
		for _, scalar := range []int64{-3, 1, 5} {
			for _, op := range []Op{OpAdd, OpSub, OpMul} {
				transformed, err := ApplyScalar(progression, scalar, op)
				require.NoError(t, err, "progression=%s scalar=%d op=%s", progression, scalar, op)

				expected := make([]int64, 0, progression.Length())
				for _, value := range progression.Values() {
					switch op {
					case OpAdd:
						expected = append(expected, value+scalar)
					case OpSub:
						expected = append(expected, value-scalar)
					case OpMul:
						expected = append(expected, value*scalar)
					}
				}
				assert.Equal(t, expected, transformed.Values(), "progression=%s scalar=%d op=%s", progression, scalar, op)
			}
		}
	}
}

func TestFloorDivScalar(t *testing.T) {
	// the scalar divides both start and step - the progression form survives
	quotient, err := ApplyScalar(mustNew(t, 0, 10, 2), 2, OpFloorDiv)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2, 3, 4}, quotient.Values())

	// 3 does not divide the step of 2 - the shortcut fails and the caller goes dense
	_, err = ApplyScalar(mustNew(t, 0, 10, 2), 3, OpFloorDiv)
	assert.ErrorIs(t, err, ErrNotRepresentable)

	// single element progressions only need the start to divide... and it floors instead
	quotient, err = ApplyScalar(mustNew(t, 7, 8, 1), 3, OpFloorDiv)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, quotient.Values())

	quotient, err = ApplyScalar(Empty(), 3, OpFloorDiv)
	require.NoError(t, err)
	assert.True(t, quotient.IsEmpty())

	_, err = ApplyScalar(mustNew(t, 0, 10, 2), 0, OpFloorDiv)
	assert.ErrorIs(t, err, ErrNotApplicable)
}

func TestDivScalar(t *testing.T) {
	quotient, err := DivScalar(mustNew(t, 0, 12, 4), 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, 4}, quotient.Values())

	// any non-integral descriptor makes the result a float sequence
	_, err = DivScalar(mustNew(t, 0, 12, 4), 3)
	assert.ErrorIs(t, err, ErrNotRepresentable)

	_, err = DivScalar(mustNew(t, 0, 12, 4), 0)
	assert.ErrorIs(t, err, ErrNotApplicable)

	quotient, err = DivScalar(Empty(), 7)
	require.NoError(t, err)
	assert.True(t, quotient.IsEmpty())
}
