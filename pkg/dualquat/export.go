package dualquat

// RotationMatrix returns the rotation matrix of the real part. The real
// part is assumed to be a unit quaternion.
func (d DualQuaternion[S]) RotationMatrix() [3][3]S {
	return d.p.RotationMatrix()
}

// TranslationVector returns the vector part of 2·Q·conj(P), the
// translation of a unit dual quaternion.
func (d DualQuaternion[S]) TranslationVector() [3]S {
	t := d.q.Mul(d.p.Conjugate()).Scale(d.dom.Int(2))
	return t.Vector()
}
