package scalar

import (
	"fmt"
	"math"
	"strconv"

	fscalar "gonum.org/v1/gonum/floats/scalar"

	"github.com/aretw0/symdq/pkg/cas"
)

// DefaultTolerance is the absolute and relative tolerance of Float domains
// created with NewFloat.
const DefaultTolerance = 1e-9

// Float is the numeric domain over float64. Simplification is the
// identity; equality is approximate.
type Float struct {
	tol      float64
	bindings map[string]float64
}

// FloatOption configures a Float domain.
type FloatOption func(*Float)

// WithTolerance sets the comparison tolerance.
func WithTolerance(tol float64) FloatOption {
	return func(f *Float) {
		f.tol = tol
	}
}

// WithBindings sets the symbol values used by Parse.
func WithBindings(b map[string]float64) FloatOption {
	return func(f *Float) {
		f.bindings = make(map[string]float64, len(b))
		for k, v := range b {
			f.bindings[k] = v
		}
	}
}

// NewFloat creates a numeric domain.
func NewFloat(opts ...FloatOption) *Float {
	f := &Float{tol: DefaultTolerance}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ Domain[float64] = (*Float)(nil)

func (f *Float) Name() string { return "numeric" }

// Tolerance returns the comparison tolerance.
func (f *Float) Tolerance() float64 { return f.tol }

func (f *Float) Zero() float64            { return 0 }
func (f *Float) One() float64             { return 1 }
func (f *Float) Int(n int64) float64      { return float64(n) }
func (f *Float) Rat(p, q int64) float64   { return float64(p) / float64(q) }
func (f *Float) Add(a, b float64) float64 { return a + b }
func (f *Float) Sub(a, b float64) float64 { return a - b }
func (f *Float) Mul(a, b float64) float64 { return a * b }
func (f *Float) Neg(a float64) float64    { return -a }
func (f *Float) Sin(a float64) float64    { return math.Sin(a) }
func (f *Float) Cos(a float64) float64    { return math.Cos(a) }
func (f *Float) Sqrt(a float64) float64   { return math.Sqrt(a) }

func (f *Float) Simplify(a float64) float64     { return a }
func (f *Float) TrigSimplify(a float64) float64 { return a }

func (f *Float) Equal(a, b float64) bool {
	return fscalar.EqualWithinAbsOrRel(a, b, f.tol, f.tol)
}

func (f *Float) Lift(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// Parse accepts plain numbers and any expression cas can parse whose
// symbols are bound in the domain.
func (f *Float) Parse(s string) (float64, error) {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}
	e, err := cas.Parse(s)
	if err != nil {
		return 0, err
	}
	v, err := cas.Eval(e, f.bindings)
	if err != nil {
		return 0, fmt.Errorf("evaluate %q: %w", s, err)
	}
	return v, nil
}

func (f *Float) Format(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}
