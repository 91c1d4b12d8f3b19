package symdq

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/symdq/pkg/cas"
	"github.com/aretw0/symdq/pkg/dualquat"
	"github.com/aretw0/symdq/pkg/scalar"
)

// Screw returns the unit dual quaternion of a screw motion. An axis that
// is not unit, or a moment not orthogonal to it, fails with an error
// wrapping dualquat.ErrInvalidScrew.
func (e *Engine) Screw(ctx context.Context, p ScrewParams) (res *Result, err error) {
	start := time.Now()
	defer func() { e.observe(ctx, OpScrew, e.domain, start, err) }()

	return dispatch(e, e.domain, nil,
		func(d *scalar.Float) (*Result, error) { return screwOp[float64](d, p) },
		func(d scalar.Symbolic) (*Result, error) { return screwOp[cas.Expr](d, p) },
	)
}

func screwOp[S any](dom scalar.Domain[S], p ScrewParams) (*Result, error) {
	c := codec[S]{dom: dom}
	s, err := c.screw("screw", p)
	if err != nil {
		return nil, err
	}
	d, err := s.DualQuaternion(dom)
	if err != nil {
		return nil, err
	}
	return c.result(d), nil
}

// Transform applies the motion m to point. The motion is not checked for
// unit-ness.
func (e *Engine) Transform(ctx context.Context, m Motion, point Vector3) (res *PointResult, err error) {
	start := time.Now()
	defer func() { e.observe(ctx, OpTransform, e.domain, start, err) }()

	return dispatch(e, e.domain, nil,
		func(d *scalar.Float) (*PointResult, error) { return transformOp[float64](d, m, point) },
		func(d scalar.Symbolic) (*PointResult, error) { return transformOp[cas.Expr](d, m, point) },
	)
}

func transformOp[S any](dom scalar.Domain[S], m Motion, point Vector3) (*PointResult, error) {
	c := codec[S]{dom: dom}
	t, err := c.motion("motion", m)
	if err != nil {
		return nil, err
	}
	p, err := c.vector("point", point)
	if err != nil {
		return nil, err
	}
	out := dualquat.TransformPoint(p, t)
	for i := range out {
		out[i] = dom.TrigSimplify(out[i])
	}
	return &PointResult{Domain: dom.Name(), Point: c.formatVector(out)}, nil
}

// Norm returns D * D.QuaternionConjugate(), trigonometrically simplified.
func (e *Engine) Norm(ctx context.Context, m Motion) (res *Result, err error) {
	start := time.Now()
	defer func() { e.observe(ctx, OpNorm, e.domain, start, err) }()

	return dispatch(e, e.domain, nil,
		func(d *scalar.Float) (*Result, error) { return normOp[float64](d, m) },
		func(d scalar.Symbolic) (*Result, error) { return normOp[cas.Expr](d, m) },
	)
}

func normOp[S any](dom scalar.Domain[S], m Motion) (*Result, error) {
	c := codec[S]{dom: dom}
	d, err := c.motion("motion", m)
	if err != nil {
		return nil, err
	}
	return c.result(d.Norm().TrigSimplify()), nil
}

// IsUnit reports whether m is a unit dual quaternion.
func (e *Engine) IsUnit(ctx context.Context, m Motion) (res *UnitResult, err error) {
	start := time.Now()
	defer func() { e.observe(ctx, OpIsUnit, e.domain, start, err) }()

	return dispatch(e, e.domain, nil,
		func(d *scalar.Float) (*UnitResult, error) { return unitOp[float64](d, m) },
		func(d scalar.Symbolic) (*UnitResult, error) { return unitOp[cas.Expr](d, m) },
	)
}

func unitOp[S any](dom scalar.Domain[S], m Motion) (*UnitResult, error) {
	d, err := codec[S]{dom: dom}.motion("motion", m)
	if err != nil {
		return nil, err
	}
	return &UnitResult{Domain: dom.Name(), Unit: d.IsUnit()}, nil
}

// Add sums the operands left to right with mixed-operand promotion.
func (e *Engine) Add(ctx context.Context, operands ...Operand) (res *OperandResult, err error) {
	start := time.Now()
	defer func() { e.observe(ctx, OpAdd, e.domain, start, err) }()
	return e.fold(OpAdd, operands)
}

// Multiply multiplies the operands left to right, preserving their order.
func (e *Engine) Multiply(ctx context.Context, operands ...Operand) (res *OperandResult, err error) {
	start := time.Now()
	defer func() { e.observe(ctx, OpMultiply, e.domain, start, err) }()
	return e.fold(OpMultiply, operands)
}

func (e *Engine) fold(op string, operands []Operand) (*OperandResult, error) {
	if len(operands) == 0 {
		return nil, &InputError{Field: "operands", Err: fmt.Errorf("at least one operand is required")}
	}
	return dispatch(e, e.domain, nil,
		func(d *scalar.Float) (*OperandResult, error) { return foldOp[float64](d, op, operands) },
		func(d scalar.Symbolic) (*OperandResult, error) { return foldOp[cas.Expr](d, op, operands) },
	)
}

func foldOp[S any](dom scalar.Domain[S], op string, operands []Operand) (*OperandResult, error) {
	c := codec[S]{dom: dom}
	alg := dualquat.NewAlgebra(dom)

	acc, err := c.operand("operands[0]", operands[0])
	if err != nil {
		return nil, err
	}
	for i, o := range operands[1:] {
		next, err := c.operand(fmt.Sprintf("operands[%d]", i+1), o)
		if err != nil {
			return nil, err
		}
		if op == OpAdd {
			acc, err = alg.Add(acc, next)
		} else {
			acc, err = alg.Mul(acc, next)
		}
		if err != nil {
			return nil, err
		}
	}
	return c.operandResult(acc), nil
}
