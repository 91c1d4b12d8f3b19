// Package dualquat implements dual quaternions P + εQ (ε² = 0) over a
// scalar.Domain, the algebra of rigid-body motions.
//
// Values are immutable. Typed methods cover the homogeneous cases:
//
//	d.Add(e), d.Sub(e), d.Neg(), d.Mul(e), d.Scale(s)
//	d.AddQuaternion(q), d.AddScalar(s), d.MulQuaternion(q), d.LeftMulQuaternion(q)
//
// Mixed operands go through Algebra, which tags each operand as a scalar,
// quaternion or dual quaternion and picks the rule from the pair of tags:
//
//	alg := dualquat.NewAlgebra[cas.Expr](scalar.NewSymbolic())
//	sum, err := alg.Add(1, d)   // same as alg.Add(d, 1)
//	prod, err := alg.Mul(q, d)  // q on the left: qP + εqQ
//
// Three conjugates are provided and are not interchangeable:
// QuaternionConjugate (used by Norm), DualNumberConjugate and
// CombinedConjugate (the inverse of a unit dual quaternion, used by
// TransformPoint).
//
// FromScrew builds the unit dual quaternion of a screw motion after
// validating the axis and moment with the domain's trigonometric
// simplification. IsUnit performs the same kind of check on demand.
package dualquat
