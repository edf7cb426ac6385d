// Package intmath provides the integer arithmetic primitives that the range
// algebra is built on.
package intmath

// ExtendedGCD solves Bezout's identity a*s + b*t = gcd(|a|, |b|) using the
// iterative extended Euclidean algorithm and returns the gcd together with one
// particular solution for s and t. The inputs are sign-normalized, so the
// returned gcd is never negative; the Bezout coefficients carry the signs of
// the original operands instead.
func ExtendedGCD(a, b int64) (gcd, s, t int64) {
	s, oldS := int64(0), int64(1)
	t, oldT := int64(1), int64(0)
	r, oldR := Abs(b), Abs(a)

	for r != 0 {
		quotient := oldR / r
		oldR, r = r, oldR-quotient*r
		oldS, s = s, oldS-quotient*s
		oldT, t = t, oldT-quotient*t
	}

	return oldR, oldS * Sign(a), oldT * Sign(b)
}

// CeilDiv divides n by d rounding the result towards positive infinity. Go's
// native integer division truncates towards zero, which gives the wrong result
// for exactly one of the two operand sign combinations.
func CeilDiv(n, d int64) int64 {
	quotient := n / d
	if (n%d != 0) && ((n < 0) == (d < 0)) {
		quotient++
	}

	return quotient
}

// FloorDiv divides n by d rounding the result towards negative infinity.
func FloorDiv(n, d int64) int64 {
	quotient := n / d
	if (n%d != 0) && ((n < 0) != (d < 0)) {
		quotient--
	}

	return quotient
}

// MinFitting returns the smallest element of the infinite progression given by start and step
// that is greater than or equal to the given limit.
func MinFitting(start, step, lowerLimit int64) (element int64) {
	steps := CeilDiv(lowerLimit-start, Abs(step))

	return start + Abs(step)*steps
}

// MaxFitting returns the largest element of the infinite progression given by start and step
// that is smaller than or equal to the given limit.
func MaxFitting(start, step, upperLimit int64) (element int64) {
	steps := FloorDiv(upperLimit-start, Abs(step))

	return start + Abs(step)*steps
}

// Abs returns the absolute value of x.
func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}

// Sign returns -1, 0 or 1 depending on the sign of x.
func Sign(x int64) int64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
