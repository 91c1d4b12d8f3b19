package dualquat

// QuaternionConjugate returns conj(P) + ε conj(Q).
func (d DualQuaternion[S]) QuaternionConjugate() DualQuaternion[S] {
	return Of(d.p.Conjugate(), d.q.Conjugate())
}

// DualNumberConjugate returns P - εQ, the ε ↦ -ε involution.
func (d DualQuaternion[S]) DualNumberConjugate() DualQuaternion[S] {
	return Of(d.p, d.q.Neg())
}

// CombinedConjugate returns conj(P) - ε conj(Q). For a unit dual
// quaternion this is the inverse rigid motion; TransformPoint uses it on
// the right of the sandwich product.
func (d DualQuaternion[S]) CombinedConjugate() DualQuaternion[S] {
	return Of(d.p.Conjugate(), d.q.Conjugate().Neg())
}
