package quaternion

import (
	"fmt"

	"github.com/aretw0/symdq/pkg/scalar"
)

// Quaternion is the immutable value a + bi + cj + dk over a scalar domain.
// Build values with New, FromScalar or Zero; the zero Quaternion has no
// domain and is not usable.
type Quaternion[S any] struct {
	dom        scalar.Domain[S]
	a, b, c, d S
}

// New returns a + bi + cj + dk.
func New[S any](dom scalar.Domain[S], a, b, c, d S) Quaternion[S] {
	return Quaternion[S]{dom: dom, a: a, b: b, c: c, d: d}
}

// FromScalar returns s + 0i + 0j + 0k.
func FromScalar[S any](dom scalar.Domain[S], s S) Quaternion[S] {
	z := dom.Zero()
	return New(dom, s, z, z, z)
}

// FromVector returns the pure quaternion 0 + v0 i + v1 j + v2 k.
func FromVector[S any](dom scalar.Domain[S], v [3]S) Quaternion[S] {
	return New(dom, dom.Zero(), v[0], v[1], v[2])
}

// Zero returns the additive identity.
func Zero[S any](dom scalar.Domain[S]) Quaternion[S] {
	return FromScalar(dom, dom.Zero())
}

// One returns the multiplicative identity.
func One[S any](dom scalar.Domain[S]) Quaternion[S] {
	return FromScalar(dom, dom.One())
}

// Domain returns the scalar domain of q.
func (q Quaternion[S]) Domain() scalar.Domain[S] { return q.dom }

// A returns the scalar part.
func (q Quaternion[S]) A() S { return q.a }

// B returns the i component.
func (q Quaternion[S]) B() S { return q.b }

// C returns the j component.
func (q Quaternion[S]) C() S { return q.c }

// D returns the k component.
func (q Quaternion[S]) D() S { return q.d }

// Components returns (a, b, c, d).
func (q Quaternion[S]) Components() [4]S { return [4]S{q.a, q.b, q.c, q.d} }

// Vector returns the vector part (b, c, d).
func (q Quaternion[S]) Vector() [3]S { return [3]S{q.b, q.c, q.d} }

func (q Quaternion[S]) Add(o Quaternion[S]) Quaternion[S] {
	dm := q.dom
	return New(dm, dm.Add(q.a, o.a), dm.Add(q.b, o.b), dm.Add(q.c, o.c), dm.Add(q.d, o.d))
}

func (q Quaternion[S]) Sub(o Quaternion[S]) Quaternion[S] {
	dm := q.dom
	return New(dm, dm.Sub(q.a, o.a), dm.Sub(q.b, o.b), dm.Sub(q.c, o.c), dm.Sub(q.d, o.d))
}

func (q Quaternion[S]) Neg() Quaternion[S] {
	dm := q.dom
	return New(dm, dm.Neg(q.a), dm.Neg(q.b), dm.Neg(q.c), dm.Neg(q.d))
}

// Scale returns s*q. Scalars commute with quaternions.
func (q Quaternion[S]) Scale(s S) Quaternion[S] {
	dm := q.dom
	return New(dm, dm.Mul(s, q.a), dm.Mul(s, q.b), dm.Mul(s, q.c), dm.Mul(s, q.d))
}

// Mul returns the Hamilton product q*o. It is not commutative.
func (q Quaternion[S]) Mul(o Quaternion[S]) Quaternion[S] {
	dm := q.dom
	sum := func(xs ...S) S {
		acc := xs[0]
		for _, x := range xs[1:] {
			acc = dm.Add(acc, x)
		}
		return acc
	}
	a := sum(dm.Mul(q.a, o.a), dm.Neg(dm.Mul(q.b, o.b)), dm.Neg(dm.Mul(q.c, o.c)), dm.Neg(dm.Mul(q.d, o.d)))
	b := sum(dm.Mul(q.a, o.b), dm.Mul(q.b, o.a), dm.Mul(q.c, o.d), dm.Neg(dm.Mul(q.d, o.c)))
	c := sum(dm.Mul(q.a, o.c), dm.Neg(dm.Mul(q.b, o.d)), dm.Mul(q.c, o.a), dm.Mul(q.d, o.b))
	d := sum(dm.Mul(q.a, o.d), dm.Mul(q.b, o.c), dm.Neg(dm.Mul(q.c, o.b)), dm.Mul(q.d, o.a))
	return New(dm, a, b, c, d)
}

// Conjugate returns a - bi - cj - dk.
func (q Quaternion[S]) Conjugate() Quaternion[S] {
	dm := q.dom
	return New(dm, q.a, dm.Neg(q.b), dm.Neg(q.c), dm.Neg(q.d))
}

// NormSquared returns a² + b² + c² + d².
func (q Quaternion[S]) NormSquared() S {
	c := q.Components()
	return scalar.Dot(q.dom, c[:], c[:])
}

// Map applies fn to every component.
func (q Quaternion[S]) Map(fn func(S) S) Quaternion[S] {
	return New(q.dom, fn(q.a), fn(q.b), fn(q.c), fn(q.d))
}

// Equal compares components with the domain's equality.
func (q Quaternion[S]) Equal(o Quaternion[S]) bool {
	dm := q.dom
	return dm.Equal(q.a, o.a) && dm.Equal(q.b, o.b) && dm.Equal(q.c, o.c) && dm.Equal(q.d, o.d)
}

// RotationMatrix returns the 3x3 rotation matrix of a unit quaternion.
func (q Quaternion[S]) RotationMatrix() [3][3]S {
	dm := q.dom
	two := dm.Int(2)
	sq := func(x S) S { return dm.Mul(x, x) }
	prod := func(x, y S) S { return dm.Mul(two, dm.Mul(x, y)) }
	one := dm.One()

	var m [3][3]S
	m[0][0] = dm.Sub(one, dm.Mul(two, dm.Add(sq(q.c), sq(q.d))))
	m[0][1] = dm.Sub(prod(q.b, q.c), prod(q.d, q.a))
	m[0][2] = dm.Add(prod(q.b, q.d), prod(q.c, q.a))
	m[1][0] = dm.Add(prod(q.b, q.c), prod(q.d, q.a))
	m[1][1] = dm.Sub(one, dm.Mul(two, dm.Add(sq(q.b), sq(q.d))))
	m[1][2] = dm.Sub(prod(q.c, q.d), prod(q.b, q.a))
	m[2][0] = dm.Sub(prod(q.b, q.d), prod(q.c, q.a))
	m[2][1] = dm.Add(prod(q.c, q.d), prod(q.b, q.a))
	m[2][2] = dm.Sub(one, dm.Mul(two, dm.Add(sq(q.b), sq(q.c))))
	return m
}

// String renders q as "(a) + (b)*i + (c)*j + (d)*k".
func (q Quaternion[S]) String() string {
	if q.dom == nil {
		return "<nil quaternion>"
	}
	f := q.dom.Format
	return fmt.Sprintf("(%s) + (%s)*i + (%s)*j + (%s)*k", f(q.a), f(q.b), f(q.c), f(q.d))
}
