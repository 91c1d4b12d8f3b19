package dualquat

import (
	"github.com/aretw0/symdq/pkg/scalar"
)

// Norm returns d * d.QuaternionConjugate(). It is 1 + ε0 for unit dual
// quaternions and a general dual quaternion otherwise.
func (d DualQuaternion[S]) Norm() DualQuaternion[S] {
	return d.Mul(d.QuaternionConjugate())
}

// IsUnit reports whether |P|² ≡ 1 and P·Q ≡ 0 after trigonometric
// simplification, i.e. whether d represents a rigid motion.
func (d DualQuaternion[S]) IsUnit() bool {
	p, q := d.p.Components(), d.q.Components()
	if !scalar.IsOne(d.dom, scalar.Dot(d.dom, p[:], p[:])) {
		return false
	}
	return scalar.IsZero(d.dom, scalar.Dot(d.dom, p[:], q[:]))
}
