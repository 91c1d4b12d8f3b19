package dualquat

import (
	"fmt"

	"github.com/aretw0/symdq/pkg/quaternion"
	"github.com/aretw0/symdq/pkg/scalar"
)

// DualQuaternion is the immutable value P + εQ with ε² = 0. P is the real
// part (rotation) and Q the dual part (rotation coupled with translation).
// Build values with New, Of, Zero or Identity; the zero DualQuaternion has
// no domain and is not usable.
type DualQuaternion[S any] struct {
	dom  scalar.Domain[S]
	p, q quaternion.Quaternion[S]
}

// New builds a dual quaternion from up to two parts, real then dual. Each
// part may be a quaternion.Quaternion[S], an element of the domain or a Go
// number; scalars are promoted to s + 0i + 0j + 0k. Missing or nil parts
// are zero.
func New[S any](dom scalar.Domain[S], parts ...any) (DualQuaternion[S], error) {
	if len(parts) > 2 {
		return DualQuaternion[S]{}, fmt.Errorf("%w: a dual quaternion has 2 parts, got %d", ErrOperand, len(parts))
	}
	qs := [2]quaternion.Quaternion[S]{quaternion.Zero(dom), quaternion.Zero(dom)}
	for i, part := range parts {
		q, err := promote(dom, part)
		if err != nil {
			return DualQuaternion[S]{}, err
		}
		qs[i] = q
	}
	return Of(qs[0], qs[1]), nil
}

// MustNew is like New but panics on error.
func MustNew[S any](dom scalar.Domain[S], parts ...any) DualQuaternion[S] {
	d, err := New(dom, parts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Of builds p + εq.
func Of[S any](p, q quaternion.Quaternion[S]) DualQuaternion[S] {
	return DualQuaternion[S]{dom: p.Domain(), p: p, q: q}
}

// Zero returns 0 + ε0.
func Zero[S any](dom scalar.Domain[S]) DualQuaternion[S] {
	return Of(quaternion.Zero(dom), quaternion.Zero(dom))
}

// Identity returns 1 + ε0, the identity rigid motion.
func Identity[S any](dom scalar.Domain[S]) DualQuaternion[S] {
	return Of(quaternion.One(dom), quaternion.Zero(dom))
}

func promote[S any](dom scalar.Domain[S], v any) (quaternion.Quaternion[S], error) {
	switch x := v.(type) {
	case nil:
		return quaternion.Zero(dom), nil
	case quaternion.Quaternion[S]:
		if x.Domain() == nil {
			return quaternion.Quaternion[S]{}, &OperandError{Op: "construct", Value: v}
		}
		return x, nil
	}
	if s, ok := dom.Lift(v); ok {
		return quaternion.FromScalar(dom, s), nil
	}
	return quaternion.Quaternion[S]{}, &OperandError{Op: "construct", Value: v}
}

// Domain returns the scalar domain.
func (d DualQuaternion[S]) Domain() scalar.Domain[S] { return d.dom }

func (d DualQuaternion[S]) usable() bool {
	return d.dom != nil && d.p.Domain() != nil && d.q.Domain() != nil
}

// Real returns P.
func (d DualQuaternion[S]) Real() quaternion.Quaternion[S] { return d.p }

// Dual returns Q.
func (d DualQuaternion[S]) Dual() quaternion.Quaternion[S] { return d.q }

// Equal compares both parts with the domain's canonical equality.
func (d DualQuaternion[S]) Equal(o DualQuaternion[S]) bool {
	return d.p.Equal(o.p) && d.q.Equal(o.q)
}

// Map applies fn to all eight components.
func (d DualQuaternion[S]) Map(fn func(S) S) DualQuaternion[S] {
	return Of(d.p.Map(fn), d.q.Map(fn))
}

// Simplify canonicalizes every component.
func (d DualQuaternion[S]) Simplify() DualQuaternion[S] {
	return d.Map(d.dom.Simplify)
}

// TrigSimplify canonicalizes every component with trigonometric reduction.
func (d DualQuaternion[S]) TrigSimplify() DualQuaternion[S] {
	return d.Map(d.dom.TrigSimplify)
}

func (d DualQuaternion[S]) String() string {
	return fmt.Sprintf("[%s] + ε[%s]", d.p, d.q)
}
