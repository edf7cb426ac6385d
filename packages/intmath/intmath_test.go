package intmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtendedGCD(t *testing.T) {
	gcd, s, x := ExtendedGCD(240, 46)
	assert.Equal(t, int64(2), gcd)
	assert.Equal(t, int64(240*s+46*x), gcd)

	gcd, s, x = ExtendedGCD(6, 0)
	assert.Equal(t, int64(6), gcd)
	assert.Equal(t, int64(6*s), gcd)
	assert.Equal(t, int64(0*x), int64(0))

	gcd, s, x = ExtendedGCD(0, 7)
	assert.Equal(t, int64(7), gcd)
	assert.Equal(t, int64(7*x), gcd)

	gcd, s, x = ExtendedGCD(-6, 0)
	assert.Equal(t, int64(6), gcd)
	assert.Equal(t, int64(-6*s), gcd)
	assert.Equal(t, int64(0*x), int64(0))

	// the gcd has to stay positive and the Bezout identity has to hold for
	// every sign combination
	for _, a := range []int64{-12, -5, -1, 1, 4, 18} {
		for _, b := range []int64{-9, -3, -1, 1, 6, 15} {
			gcd, s, x = ExtendedGCD(a, b)
			assert.Positive(t, gcd, "a=%d b=%d", a, b)
			assert.Equal(t, gcd, a*s+b*x, "a=%d b=%d", a, b)
			assert.Zero(t, a%gcd, "a=%d b=%d", a, b)
			assert.Zero(t, b%gcd, "a=%d b=%d", a, b)
		}
	}
}

func TestCeilDiv(t *testing.T) {
	assert.Equal(t, int64(3), CeilDiv(7, 3))
	assert.Equal(t, int64(-2), CeilDiv(-7, 3))
	assert.Equal(t, int64(-2), CeilDiv(7, -3))
	assert.Equal(t, int64(3), CeilDiv(-7, -3))
	assert.Equal(t, int64(2), CeilDiv(6, 3))
	assert.Equal(t, int64(-2), CeilDiv(-6, 3))
	assert.Equal(t, int64(0), CeilDiv(0, 5))
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, int64(2), FloorDiv(7, 3))
	assert.Equal(t, int64(-3), FloorDiv(-7, 3))
	assert.Equal(t, int64(-3), FloorDiv(7, -3))
	assert.Equal(t, int64(2), FloorDiv(-7, -3))
	assert.Equal(t, int64(2), FloorDiv(6, 3))
	assert.Equal(t, int64(-2), FloorDiv(-6, 3))
	assert.Equal(t, int64(0), FloorDiv(0, 5))
}

func TestFitting(t *testing.T) {
	// the multiples of 3 starting at 1: 1, 4, 7, 10, ...
	assert.Equal(t, int64(7), MinFitting(1, 3, 6))
	assert.Equal(t, int64(7), MinFitting(1, 3, 7))
	assert.Equal(t, int64(-2), MinFitting(1, 3, -4))
	assert.Equal(t, int64(4), MaxFitting(1, 3, 6))
	assert.Equal(t, int64(7), MaxFitting(1, 3, 7))
	assert.Equal(t, int64(-5), MaxFitting(1, 3, -4))

	// the sign of the step does not matter, only the covered lattice does
	assert.Equal(t, MinFitting(1, 3, 6), MinFitting(1, -3, 6))
}

func TestAbsSign(t *testing.T) {
	assert.Equal(t, int64(4), Abs(-4))
	assert.Equal(t, int64(4), Abs(4))
	assert.Equal(t, int64(-1), Sign(-10))
	assert.Equal(t, int64(0), Sign(0))
	assert.Equal(t, int64(1), Sign(3))
}
