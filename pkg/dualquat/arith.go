package dualquat

import (
	"github.com/aretw0/symdq/pkg/quaternion"
)

// Add returns (P1+P2) + ε(Q1+Q2).
func (d DualQuaternion[S]) Add(o DualQuaternion[S]) DualQuaternion[S] {
	return Of(d.p.Add(o.p), d.q.Add(o.q))
}

// AddQuaternion treats q as q + ε0: the real part absorbs it.
func (d DualQuaternion[S]) AddQuaternion(q quaternion.Quaternion[S]) DualQuaternion[S] {
	return Of(d.p.Add(q), d.q)
}

// AddScalar treats s as s + ε0.
func (d DualQuaternion[S]) AddScalar(s S) DualQuaternion[S] {
	return d.AddQuaternion(quaternion.FromScalar(d.dom, s))
}

// Neg returns -P - εQ.
func (d DualQuaternion[S]) Neg() DualQuaternion[S] {
	return Of(d.p.Neg(), d.q.Neg())
}

// Sub returns d + (o * -1).
func (d DualQuaternion[S]) Sub(o DualQuaternion[S]) DualQuaternion[S] {
	return d.Add(o.Scale(d.dom.Int(-1)))
}

// Mul returns the dual quaternion product
//
//	(P1 + εQ1)(P2 + εQ2) = P1P2 + ε(P1Q2 + Q1P2)
//
// Operand order matters: the Hamilton product is not commutative.
func (d DualQuaternion[S]) Mul(o DualQuaternion[S]) DualQuaternion[S] {
	return Of(d.p.Mul(o.p), d.p.Mul(o.q).Add(d.q.Mul(o.p)))
}

// Scale returns sP + εsQ. Scalars commute, so this is both s*d and d*s.
func (d DualQuaternion[S]) Scale(s S) DualQuaternion[S] {
	return Of(d.p.Scale(s), d.q.Scale(s))
}

// MulQuaternion returns d*q = Pq + εQq.
func (d DualQuaternion[S]) MulQuaternion(q quaternion.Quaternion[S]) DualQuaternion[S] {
	return Of(d.p.Mul(q), d.q.Mul(q))
}

// LeftMulQuaternion returns q*d = qP + εqQ.
func (d DualQuaternion[S]) LeftMulQuaternion(q quaternion.Quaternion[S]) DualQuaternion[S] {
	return Of(q.Mul(d.p), q.Mul(d.q))
}
