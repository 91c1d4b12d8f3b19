package dualquat

import (
	"github.com/go-gl/mathgl/mgl64"
	gdq "gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"

	"github.com/aretw0/symdq/pkg/quaternion"
	"github.com/aretw0/symdq/pkg/scalar"
)

// ToGonum converts a numeric dual quaternion to gonum's representation.
func ToGonum(d DualQuaternion[float64]) gdq.Number {
	return gdq.Number{Real: toQuat(d.p), Dual: toQuat(d.q)}
}

// FromGonum converts a gonum dual quaternion into the numeric domain dom.
func FromGonum(dom scalar.Domain[float64], n gdq.Number) DualQuaternion[float64] {
	return Of(fromQuat(dom, n.Real), fromQuat(dom, n.Dual))
}

func toQuat(q quaternion.Quaternion[float64]) quat.Number {
	return quat.Number{Real: q.A(), Imag: q.B(), Jmag: q.C(), Kmag: q.D()}
}

func fromQuat(dom scalar.Domain[float64], n quat.Number) quaternion.Quaternion[float64] {
	return quaternion.New(dom, n.Real, n.Imag, n.Jmag, n.Kmag)
}

// Mat4 returns the homogeneous transform of a numeric unit dual quaternion:
// translation applied after rotation.
func Mat4(d DualQuaternion[float64]) mgl64.Mat4 {
	rot := mgl64.Quat{W: d.p.A(), V: mgl64.Vec3{d.p.B(), d.p.C(), d.p.D()}}
	t := d.TranslationVector()
	return mgl64.Translate3D(t[0], t[1], t[2]).Mul4(rot.Mat4())
}
