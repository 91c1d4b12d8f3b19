package symdq

import (
	"fmt"

	"github.com/aretw0/symdq/pkg/dualquat"
	"github.com/aretw0/symdq/pkg/quaternion"
	"github.com/aretw0/symdq/pkg/scalar"
)

// codec converts between request strings and domain values.
type codec[S any] struct {
	dom scalar.Domain[S]
}

// scalar parses s; the empty string is zero.
func (c codec[S]) scalar(field, s string) (S, error) {
	var zero S
	if s == "" {
		return c.dom.Zero(), nil
	}
	s, err := SanitizeExpression(s)
	if err != nil {
		return zero, &InputError{Field: field, Err: err}
	}
	v, err := c.dom.Parse(s)
	if err != nil {
		return zero, &InputError{Field: field, Err: err}
	}
	return v, nil
}

func (c codec[S]) vector(field string, v Vector3) ([3]S, error) {
	var out [3]S
	for i, s := range v {
		x, err := c.scalar(fmt.Sprintf("%s[%d]", field, i), s)
		if err != nil {
			return out, err
		}
		out[i] = x
	}
	return out, nil
}

func (c codec[S]) quaternion(field string, q Quat) (quaternion.Quaternion[S], error) {
	var parts [4]S
	for i, s := range q {
		x, err := c.scalar(fmt.Sprintf("%s[%d]", field, i), s)
		if err != nil {
			return quaternion.Quaternion[S]{}, err
		}
		parts[i] = x
	}
	return quaternion.New(c.dom, parts[0], parts[1], parts[2], parts[3]), nil
}

func (c codec[S]) dual(field string, d Dual) (dualquat.DualQuaternion[S], error) {
	p, err := c.quaternion(field+".real", d.Real)
	if err != nil {
		return dualquat.DualQuaternion[S]{}, err
	}
	q, err := c.quaternion(field+".dual", d.Dual)
	if err != nil {
		return dualquat.DualQuaternion[S]{}, err
	}
	return dualquat.Of(p, q), nil
}

func (c codec[S]) screw(field string, s ScrewParams) (dualquat.Screw[S], error) {
	var out dualquat.Screw[S]
	var err error
	if out.L, err = c.vector(field+".l", s.L); err != nil {
		return out, err
	}
	if out.M, err = c.vector(field+".m", s.M); err != nil {
		return out, err
	}
	if out.Theta, err = c.scalar(field+".theta", s.Theta); err != nil {
		return out, err
	}
	if out.D, err = c.scalar(field+".d", s.D); err != nil {
		return out, err
	}
	return out, nil
}

func (c codec[S]) motion(field string, m Motion) (dualquat.DualQuaternion[S], error) {
	switch {
	case m.Dual != nil && m.Screw == nil:
		return c.dual(field+".dual", *m.Dual)
	case m.Screw != nil && m.Dual == nil:
		s, err := c.screw(field+".screw", *m.Screw)
		if err != nil {
			return dualquat.DualQuaternion[S]{}, err
		}
		return s.DualQuaternion(c.dom)
	}
	return dualquat.DualQuaternion[S]{}, &InputError{Field: field, Err: fmt.Errorf("exactly one of dual or screw must be set")}
}

func (c codec[S]) operand(field string, o Operand) (dualquat.Operand[S], error) {
	switch {
	case o.Scalar != nil && o.Quaternion == nil && o.Dual == nil:
		s, err := c.scalar(field+".scalar", *o.Scalar)
		if err != nil {
			return dualquat.Operand[S]{}, err
		}
		return dualquat.ScalarOperand(s), nil
	case o.Quaternion != nil && o.Scalar == nil && o.Dual == nil:
		q, err := c.quaternion(field+".quaternion", *o.Quaternion)
		if err != nil {
			return dualquat.Operand[S]{}, err
		}
		return dualquat.QuaternionOperand(q), nil
	case o.Dual != nil && o.Scalar == nil && o.Quaternion == nil:
		d, err := c.dual(field+".dual", *o.Dual)
		if err != nil {
			return dualquat.Operand[S]{}, err
		}
		return dualquat.DualOperand(d), nil
	}
	return dualquat.Operand[S]{}, &InputError{Field: field, Err: fmt.Errorf("exactly one of scalar, quaternion or dual must be set")}
}

func (c codec[S]) formatQuat(q quaternion.Quaternion[S]) Quat {
	var out Quat
	for i, x := range q.Components() {
		out[i] = c.dom.Format(x)
	}
	return out
}

func (c codec[S]) formatVector(v [3]S) Vector3 {
	var out Vector3
	for i, x := range v {
		out[i] = c.dom.Format(x)
	}
	return out
}

func (c codec[S]) result(d dualquat.DualQuaternion[S]) *Result {
	return &Result{
		Domain: c.dom.Name(),
		Real:   c.formatQuat(d.Real()),
		Dual:   c.formatQuat(d.Dual()),
		Text:   d.String(),
	}
}

func (c codec[S]) operandResult(o dualquat.Operand[S]) *OperandResult {
	res := &OperandResult{Domain: c.dom.Name(), Kind: o.Kind().String()}
	switch o.Kind() {
	case dualquat.KindScalar:
		s, _ := o.Scalar()
		res.Scalar = c.dom.Format(s)
		res.Text = res.Scalar
	case dualquat.KindQuaternion:
		q, _ := o.Quaternion()
		fq := c.formatQuat(q)
		res.Quaternion = &fq
		res.Text = q.String()
	case dualquat.KindDual:
		d, _ := o.DualQuaternion()
		res.Dual = &Dual{Real: c.formatQuat(d.Real()), Dual: c.formatQuat(d.Dual())}
		res.Text = d.String()
	}
	return res
}
