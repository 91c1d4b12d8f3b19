package dualquat

import (
	"errors"
	"fmt"
)

var (
	// ErrOperand is returned when a value is neither a DualQuaternion, a
	// Quaternion nor an element of the scalar domain.
	ErrOperand = errors.New("unsupported operand")

	// ErrInvalidScrew is returned by FromScrew when the screw axis is not a
	// unit vector or the moment is not orthogonal to it.
	ErrInvalidScrew = errors.New("invalid screw")

	// ErrNotDifferentiable is returned by Diff for domains without
	// derivative support.
	ErrNotDifferentiable = errors.New("domain does not support differentiation")
)

// OperandError describes a rejected operand.
type OperandError struct {
	Op    string // "construct", "add" or "multiply"
	Value any
}

func (e *OperandError) Error() string {
	switch e.Op {
	case "add":
		return fmt.Sprintf("operand of type %T cannot be added to a dual quaternion", e.Value)
	case "multiply":
		return fmt.Sprintf("operand of type %T cannot be multiplied with a dual quaternion", e.Value)
	}
	return fmt.Sprintf("cannot build a dual quaternion part from %T", e.Value)
}

func (e *OperandError) Unwrap() error { return ErrOperand }

// Screw constraints reported by ScrewError.
const (
	ConstraintUnitAxis         = "unit-axis"
	ConstraintOrthogonalMoment = "orthogonal-moment"
)

// ScrewError reports which screw precondition failed and the simplified
// value that violated it.
type ScrewError struct {
	Constraint string
	Value      string
}

func (e *ScrewError) Error() string {
	if e.Constraint == ConstraintUnitAxis {
		return fmt.Sprintf("invalid screw: axis l must be a unit vector (|l|^2 = %s)", e.Value)
	}
	return fmt.Sprintf("invalid screw: moment m must be perpendicular to l (l.m = %s)", e.Value)
}

func (e *ScrewError) Unwrap() error { return ErrInvalidScrew }
