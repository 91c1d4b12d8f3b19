package chain

import (
	"github.com/aretw0/symdq/pkg/dualquat"
	"github.com/aretw0/symdq/pkg/scalar"
)

// Twist returns 2 · (dD/dvariable) · conj(D), the velocity screw of the
// unit dual quaternion d with respect to one joint variable. For a unit d
// the result is a pure vector in both parts after trigonometric
// simplification: angular velocity in the real part, linear in the dual.
func Twist[S any](dom scalar.Domain[S], d dualquat.DualQuaternion[S], variable string) (dualquat.DualQuaternion[S], error) {
	dd, err := dualquat.Diff(d, variable)
	if err != nil {
		return dualquat.DualQuaternion[S]{}, err
	}
	return dd.Mul(d.QuaternionConjugate()).Scale(dom.Int(2)).TrigSimplify(), nil
}
