package dualquat

import (
	"fmt"

	"github.com/aretw0/symdq/pkg/quaternion"
	"github.com/aretw0/symdq/pkg/scalar"
)

// Kind tags the variant held by an Operand.
type Kind int

const (
	KindScalar Kind = iota + 1
	KindQuaternion
	KindDual
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindQuaternion:
		return "quaternion"
	case KindDual:
		return "dual quaternion"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Operand is a tagged union of the three values the algebra mixes.
type Operand[S any] struct {
	kind Kind
	s    S
	q    quaternion.Quaternion[S]
	dq   DualQuaternion[S]
}

// ScalarOperand wraps s.
func ScalarOperand[S any](s S) Operand[S] { return Operand[S]{kind: KindScalar, s: s} }

// QuaternionOperand wraps q.
func QuaternionOperand[S any](q quaternion.Quaternion[S]) Operand[S] {
	return Operand[S]{kind: KindQuaternion, q: q}
}

// DualOperand wraps d.
func DualOperand[S any](d DualQuaternion[S]) Operand[S] { return Operand[S]{kind: KindDual, dq: d} }

func (o Operand[S]) Kind() Kind { return o.kind }

func (o Operand[S]) Scalar() (S, bool) { return o.s, o.kind == KindScalar }

func (o Operand[S]) Quaternion() (quaternion.Quaternion[S], bool) {
	return o.q, o.kind == KindQuaternion
}

func (o Operand[S]) DualQuaternion() (DualQuaternion[S], bool) { return o.dq, o.kind == KindDual }

// usable reports whether o has a kind and its value was built with a domain.
func (o Operand[S]) usable() bool {
	switch o.kind {
	case KindScalar:
		return true
	case KindQuaternion:
		return o.q.Domain() != nil
	case KindDual:
		return o.dq.usable()
	}
	return false
}

// Value returns the wrapped value.
func (o Operand[S]) Value() any {
	switch o.kind {
	case KindScalar:
		return o.s
	case KindQuaternion:
		return o.q
	case KindDual:
		return o.dq
	}
	return nil
}

// Algebra is the single entry point for mixed-operand arithmetic. Every
// operand is classified first, then the pair of kinds selects the rule, so
// left and right promotion are symmetric by construction.
type Algebra[S any] struct {
	dom scalar.Domain[S]
}

// NewAlgebra returns the mixed-operand algebra over dom.
func NewAlgebra[S any](dom scalar.Domain[S]) *Algebra[S] {
	return &Algebra[S]{dom: dom}
}

// Domain returns the scalar domain.
func (a *Algebra[S]) Domain() scalar.Domain[S] { return a.dom }

// Classify tags v. Operands, dual quaternions and quaternions are taken
// as-is; anything the domain can lift is a scalar.
func (a *Algebra[S]) Classify(v any) (Operand[S], error) {
	switch x := v.(type) {
	case Operand[S]:
		if !x.usable() {
			return Operand[S]{}, &OperandError{Op: "construct", Value: v}
		}
		return x, nil
	case DualQuaternion[S]:
		if !x.usable() {
			return Operand[S]{}, &OperandError{Op: "construct", Value: v}
		}
		return DualOperand(x), nil
	case quaternion.Quaternion[S]:
		if x.Domain() == nil {
			return Operand[S]{}, &OperandError{Op: "construct", Value: v}
		}
		return QuaternionOperand(x), nil
	}
	if s, ok := a.dom.Lift(v); ok {
		return ScalarOperand(s), nil
	}
	return Operand[S]{}, &OperandError{Op: "construct", Value: v}
}

func (a *Algebra[S]) classifyFor(op string, x, y any) (Operand[S], Operand[S], error) {
	l, err := a.Classify(x)
	if err != nil {
		return l, l, &OperandError{Op: op, Value: x}
	}
	r, err := a.Classify(y)
	if err != nil {
		return l, r, &OperandError{Op: op, Value: y}
	}
	return l, r, nil
}

// Add returns x + y. A quaternion or scalar added to a dual quaternion
// joins its real part, from either side.
func (a *Algebra[S]) Add(x, y any) (Operand[S], error) {
	l, r, err := a.classifyFor("add", x, y)
	if err != nil {
		return Operand[S]{}, err
	}
	if l.kind != KindDual && r.kind == KindDual {
		l, r = r, l
	}
	if l.kind == KindDual {
		switch r.kind {
		case KindDual:
			return DualOperand(l.dq.Add(r.dq)), nil
		case KindQuaternion:
			return DualOperand(l.dq.AddQuaternion(r.q)), nil
		default:
			return DualOperand(l.dq.AddScalar(r.s)), nil
		}
	}
	if l.kind == KindScalar && r.kind == KindScalar {
		return ScalarOperand(a.dom.Add(l.s, r.s)), nil
	}
	return QuaternionOperand(a.asQuaternion(l).Add(a.asQuaternion(r))), nil
}

// Sub returns x + (y * -1).
func (a *Algebra[S]) Sub(x, y any) (Operand[S], error) {
	neg, err := a.Mul(y, ScalarOperand(a.dom.Int(-1)))
	if err != nil {
		return Operand[S]{}, &OperandError{Op: "add", Value: y}
	}
	return a.Add(x, neg)
}

// Mul returns x * y, preserving operand order. Scalars commute with
// everything; quaternions multiply each part from the side they appear on.
func (a *Algebra[S]) Mul(x, y any) (Operand[S], error) {
	l, r, err := a.classifyFor("multiply", x, y)
	if err != nil {
		return Operand[S]{}, err
	}
	switch {
	case l.kind == KindDual && r.kind == KindDual:
		return DualOperand(l.dq.Mul(r.dq)), nil
	case l.kind == KindDual && r.kind == KindQuaternion:
		return DualOperand(l.dq.MulQuaternion(r.q)), nil
	case l.kind == KindQuaternion && r.kind == KindDual:
		return DualOperand(r.dq.LeftMulQuaternion(l.q)), nil
	case l.kind == KindDual:
		return DualOperand(l.dq.Scale(r.s)), nil
	case r.kind == KindDual:
		return DualOperand(r.dq.Scale(l.s)), nil
	case l.kind == KindScalar && r.kind == KindScalar:
		return ScalarOperand(a.dom.Mul(l.s, r.s)), nil
	case l.kind == KindScalar:
		return QuaternionOperand(r.q.Scale(l.s)), nil
	case r.kind == KindScalar:
		return QuaternionOperand(l.q.Scale(r.s)), nil
	}
	return QuaternionOperand(l.q.Mul(r.q)), nil
}

func (a *Algebra[S]) asQuaternion(o Operand[S]) quaternion.Quaternion[S] {
	if o.kind == KindScalar {
		return quaternion.FromScalar(a.dom, o.s)
	}
	return o.q
}
