package dualquat

import (
	"github.com/aretw0/symdq/pkg/quaternion"
	"github.com/aretw0/symdq/pkg/scalar"
)

// Screw parameterizes a rigid motion: rotation by Theta about the line with
// unit direction L and moment M, coupled with translation D along L.
type Screw[S any] struct {
	L, M  [3]S
	Theta S
	D     S
}

// DualQuaternion returns FromScrew(dom, s.L, s.M, s.Theta, s.D).
func (s Screw[S]) DualQuaternion(dom scalar.Domain[S]) (DualQuaternion[S], error) {
	return FromScrew(dom, s.L, s.M, s.Theta, s.D)
}

// FromScrew returns the unit dual quaternion of a screw motion:
//
//	P = cos(θ/2) + sin(θ/2) l
//	Q = -(d/2) sin(θ/2) + (d/2) cos(θ/2) l + sin(θ/2) m
//
// l must satisfy |l|² ≡ 1 and m must satisfy l·m ≡ 0; both are checked
// after trigonometric simplification. An expression that does not reduce
// to the required constant is rejected, so free symbols fail the check
// unless they cancel.
func FromScrew[S any](dom scalar.Domain[S], l, m [3]S, theta, d S) (DualQuaternion[S], error) {
	if n := dom.TrigSimplify(scalar.Dot(dom, l[:], l[:])); !dom.Equal(n, dom.One()) {
		return DualQuaternion[S]{}, &ScrewError{Constraint: ConstraintUnitAxis, Value: dom.Format(n)}
	}
	if dot := dom.TrigSimplify(scalar.Dot(dom, l[:], m[:])); !dom.Equal(dot, dom.Zero()) {
		return DualQuaternion[S]{}, &ScrewError{Constraint: ConstraintOrthogonalMoment, Value: dom.Format(dot)}
	}

	half := scalar.Half(dom, theta)
	sin, cos := dom.Sin(half), dom.Cos(half)
	halfD := scalar.Half(dom, d)

	var rv, dv [3]S
	for i := range l {
		rv[i] = dom.Mul(sin, l[i])
		dv[i] = dom.Add(dom.Mul(dom.Mul(halfD, cos), l[i]), dom.Mul(sin, m[i]))
	}
	rq := quaternion.New(dom, cos, rv[0], rv[1], rv[2])
	dq := quaternion.New(dom, dom.Neg(dom.Mul(halfD, sin)), dv[0], dv[1], dv[2])
	return Of(rq, dq), nil
}

// TransformPoint applies the unit dual quaternion t to the point p through
// the sandwich product t (1 + ε(0,p)) t.CombinedConjugate() and returns the
// vector part of the dual result. Unit-ness of t is not checked.
func TransformPoint[S any](p [3]S, t DualQuaternion[S]) [3]S {
	dom := t.dom
	x := Of(quaternion.One(dom), quaternion.FromVector(dom, p))
	return t.Mul(x).Mul(t.CombinedConjugate()).q.Vector()
}

// Translation returns the unit dual quaternion 1 + ε(0, v/2) of a pure
// translation by v.
func Translation[S any](dom scalar.Domain[S], v [3]S) DualQuaternion[S] {
	var h [3]S
	for i := range v {
		h[i] = scalar.Half(dom, v[i])
	}
	return Of(quaternion.One(dom), quaternion.FromVector(dom, h))
}

// Rotation returns the pure rotation by angle about a line through the
// origin with the given unit direction. The axis is not validated.
func Rotation[S any](dom scalar.Domain[S], axis [3]S, angle S) DualQuaternion[S] {
	half := scalar.Half(dom, angle)
	sin := dom.Sin(half)
	rq := quaternion.New(dom, dom.Cos(half), dom.Mul(sin, axis[0]), dom.Mul(sin, axis[1]), dom.Mul(sin, axis[2]))
	return Of(rq, quaternion.Zero(dom))
}
