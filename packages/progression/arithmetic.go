package progression

import (
	"golang.org/x/xerrors"

	"github.com/iotaledger/rangeindex/packages/intmath"
)

// region Op ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// Op is the type of the elementwise binary operators that can be applied to a Progression.
type Op int8

const (
	// OpAdd shifts every element by the scalar.
	OpAdd Op = iota
	// OpSub shifts every element by the negated scalar.
	OpSub
	// OpMul scales every element (and therefore also the step) by the scalar.
	OpMul
	// OpDiv divides every element by the scalar using true division.
	OpDiv
	// OpFloorDiv divides every element by the scalar rounding towards negative infinity.
	OpFloorDiv
)

// String returns a human readable version of the Op.
func (o Op) String() (humanReadableOp string) {
	switch o {
	case OpAdd:
		return "Op(+)"
	case OpSub:
		return "Op(-)"
	case OpMul:
		return "Op(*)"
	case OpDiv:
		return "Op(/)"
	case OpFloorDiv:
		return "Op(//)"
	default:
		return "Op(unknown)"
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ApplyScalar //////////////////////////////////////////////////////////////////////////////////////////////////

// ApplyScalar applies the given elementwise operator with the given scalar to the Progression
// and returns the transformed triple. Addition and subtraction only shift the parameters and
// always succeed. Multiplication scales the step together with the bounds and fails with an
// ErrNotRepresentable for a scalar of zero (the step of a Progression must not be zero). Floor
// division preserves the Progression form only if the scalar evenly divides both start and step
// (or just start, for progressions with at most one element); otherwise it fails with an
// ErrNotRepresentable and the caller performs the division elementwise on a dense
// representation. True division is handled by DivScalar.
func ApplyScalar(p *Progression, scalar int64, op Op) (transformed *Progression, err error) {
	switch op {
	case OpAdd:
		return newProgression(p.start+scalar, p.stop+scalar, p.step), nil
	case OpSub:
		return newProgression(p.start-scalar, p.stop-scalar, p.step), nil
	case OpMul:
		if scalar == 0 {
			err = xerrors.Errorf("failed to scale %s by zero: %w", p, ErrNotRepresentable)
			return
		}

		return newProgression(p.start*scalar, p.stop*scalar, p.step*scalar), nil
	case OpFloorDiv:
		return floorDivScalar(p, scalar)
	case OpDiv:
		return DivScalar(p, scalar)
	default:
		err = xerrors.Errorf("failed to apply %s: %w", op, ErrNotApplicable)
		return
	}
}

// DivScalar divides the Progression by the given scalar using true division. The Progression
// form is preserved only if the scalar evenly divides start, stop and step; any non-integral
// descriptor makes the result a floating point sequence, which is signaled with an
// ErrNotRepresentable. A scalar of zero is rejected with an ErrNotApplicable.
func DivScalar(p *Progression, scalar int64) (quotient *Progression, err error) {
	if scalar == 0 {
		err = xerrors.Errorf("failed to divide %s by zero: %w", p, ErrNotApplicable)
		return
	}
	if p.length == 0 {
		return Empty(), nil
	}
	if p.start%scalar != 0 || p.stop%scalar != 0 || p.step%scalar != 0 {
		err = xerrors.Errorf("failed to divide %s by %d without leaving the integers: %w", p, scalar, ErrNotRepresentable)
		return
	}

	return newProgression(p.start/scalar, p.stop/scalar, p.step/scalar), nil
}

// floorDivScalar implements the floor division shortcut of ApplyScalar.
func floorDivScalar(p *Progression, scalar int64) (quotient *Progression, err error) {
	if scalar == 0 {
		err = xerrors.Errorf("failed to floor-divide %s by zero: %w", p, ErrNotApplicable)
		return
	}
	if p.length == 0 {
		return Empty(), nil
	}
	if p.start%scalar == 0 && p.step%scalar == 0 {
		newStart := p.start / scalar
		newStep := p.step / scalar

		return newProgression(newStart, newStart+p.length*newStep, newStep), nil
	}
	if p.length == 1 {
		newStart := intmath.FloorDiv(p.start, scalar)

		return newProgression(newStart, newStart+1, 1), nil
	}

	err = xerrors.Errorf("failed to floor-divide %s by %d in closed form: %w", p, scalar, ErrNotRepresentable)

	return
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
