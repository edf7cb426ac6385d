package progression

import (
	"golang.org/x/xerrors"

	"github.com/iotaledger/rangeindex/packages/intmath"
)

// region Intersect ////////////////////////////////////////////////////////////////////////////////////////////////////

// Intersect determines the elements that are contained in both Progressions and returns them as
// a new Progression. The calculation operates purely on the two parameter triples by solving the
// linear Diophantine equation that describes the alignment of the two progressions, so it never
// enumerates any elements.
//
// The orientation of the result follows the inputs: only if both inputs are decreasing the
// result is decreasing as well. If sortResult is true, a decreasing result is reversed once
// more.
//
// The intermediate products of the Diophantine solution can overflow for progressions whose
// parameters approach the int64 limits; like the lcm-based step they are assumed to stay in
// range.
func Intersect(a, b *Progression, sortResult bool) (intersection *Progression) {
	if a.Equal(b) {
		return newProgression(a.start, a.stop, a.step)
	}
	if a.IsEmpty() || b.IsEmpty() {
		return Empty()
	}

	first, second := a, b
	if first.step < 0 {
		first = first.Reversed()
	}
	if second.step < 0 {
		second = second.Reversed()
	}

	// check whether the real intervals overlap before touching any number theory
	intervalLow := first.start
	if second.start > intervalLow {
		intervalLow = second.start
	}
	intervalHigh := first.stop
	if second.stop < intervalHigh {
		intervalHigh = second.stop
	}
	if intervalHigh <= intervalLow {
		return Empty()
	}

	// the progressions only share elements if the difference of their phases is a multiple of
	// the gcd of their steps
	gcd, bezoutS, _ := intmath.ExtendedGCD(first.step, second.step)
	if (first.start-second.start)%gcd != 0 {
		return Empty()
	}

	// one particular common element (disregarding the interval bounds) and the combined step
	tmpStart := first.start + (second.start-first.start)/gcd*first.step*bezoutS
	newStep := first.step / gcd * second.step

	// clip to the overlapping interval
	newStart := intmath.MinFitting(tmpStart, newStep, intervalLow)
	intersection = newProgression(newStart, intervalHigh, newStep)
	if intersection.IsEmpty() {
		return Empty()
	}

	if (a.step < 0 && b.step < 0) != (intersection.step < 0) {
		intersection = intersection.Reversed()
	}
	if sortResult && intersection.step < 0 {
		intersection = intersection.Reversed()
	}

	return
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Union ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Union attempts to describe the set union of the two Progressions as a single ascending
// Progression. This only succeeds under a number of geometric conditions (matching steps that
// touch or overlap, interleaved progressions that combine into a denser one, or one step being
// a multiple of the other with compatible phase); if none of them hold, an ErrNotRepresentable
// is returned and the caller has to fall back to a dense representation.
func Union(a, b *Progression) (union *Progression, err error) {
	if b.IsEmpty() || a.Equal(b) {
		return newProgression(a.start, a.stop, a.step), nil
	}
	if a.IsEmpty() {
		return newProgression(b.start, b.stop, b.step), nil
	}

	startA, stepA, endA := a.start, a.step, a.End()
	if a.step < 0 {
		startA, stepA, endA = endA, -stepA, startA
	}
	startB, stepB, endB := b.start, b.step, b.End()
	if b.step < 0 {
		startB, stepB, endB = endB, -stepB, startB
	}

	// the step of a single element progression carries no information - substitute a value that
	// makes the following rules applicable
	if a.length == 1 && b.length == 1 {
		stepA = intmath.Abs(a.start - b.start)
		stepB = stepA
	} else if a.length == 1 {
		stepA = stepB
	} else if b.length == 1 {
		stepB = stepA
	}

	startR := startA
	if startB < startR {
		startR = startB
	}
	endR := endA
	if endB > endR {
		endR = endB
	}

	switch {
	case stepA == stepB:
		if (startA-startB)%stepA == 0 && startA-endB <= stepA && startB-endA <= stepA {
			return newProgression(startR, endR+stepA, stepA), nil
		}
		// the offset has to be exactly half a step on both ends - a smaller offset leaves
		// elements that the merged progression would not contain
		if stepA%2 == 0 && intmath.Abs(startA-startB) == stepA/2 && intmath.Abs(endA-endB) == stepA/2 {
			return newProgression(startR, endR+stepA/2, stepA/2), nil
		}
	case stepB%stepA == 0:
		if (startB-startA)%stepA == 0 && startB+stepA >= startA && endB-stepA <= endA {
			return newProgression(startR, endR+stepA, stepA), nil
		}
	case stepA%stepB == 0:
		if (startA-startB)%stepB == 0 && startA+stepB >= startB && endA-stepB <= endB {
			return newProgression(startR, endR+stepB, stepB), nil
		}
	}

	err = xerrors.Errorf("failed to merge %s and %s: %w", a, b, ErrNotRepresentable)

	return
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
