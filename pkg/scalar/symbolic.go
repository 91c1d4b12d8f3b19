package scalar

import (
	"math/big"

	"github.com/aretw0/symdq/pkg/cas"
)

// Symbolic is the exact domain backed by the cas engine.
type Symbolic struct{}

// NewSymbolic returns the symbolic domain.
func NewSymbolic() Symbolic { return Symbolic{} }

var (
	_ Domain[cas.Expr] = Symbolic{}
	_ Differ[cas.Expr] = Symbolic{}
)

func (Symbolic) Name() string { return "symbolic" }

func (Symbolic) Zero() cas.Expr             { return cas.Expr{} }
func (Symbolic) One() cas.Expr              { return cas.Num(1) }
func (Symbolic) Int(n int64) cas.Expr       { return cas.Num(n) }
func (Symbolic) Rat(p, q int64) cas.Expr    { return cas.Rat(p, q) }
func (Symbolic) Add(a, b cas.Expr) cas.Expr { return a.Add(b) }
func (Symbolic) Sub(a, b cas.Expr) cas.Expr { return a.Sub(b) }
func (Symbolic) Mul(a, b cas.Expr) cas.Expr { return a.Mul(b) }
func (Symbolic) Neg(a cas.Expr) cas.Expr    { return a.Neg() }
func (Symbolic) Sin(a cas.Expr) cas.Expr    { return cas.Sin(a) }
func (Symbolic) Cos(a cas.Expr) cas.Expr    { return cas.Cos(a) }
func (Symbolic) Sqrt(a cas.Expr) cas.Expr   { return cas.Sqrt(a) }

func (Symbolic) Simplify(a cas.Expr) cas.Expr     { return cas.Simplify(a) }
func (Symbolic) TrigSimplify(a cas.Expr) cas.Expr { return cas.TrigSimplify(a) }

// Equal reports whether a - b trig-simplifies to zero.
func (Symbolic) Equal(a, b cas.Expr) bool {
	return cas.IsZeroSimplified(a.Sub(b))
}

func (Symbolic) Diff(a cas.Expr, variable string) cas.Expr {
	return cas.Diff(a, variable)
}

func (Symbolic) Lift(v any) (cas.Expr, bool) {
	switch n := v.(type) {
	case cas.Expr:
		return n, true
	case *big.Rat:
		return cas.FromRat(n), true
	case float64:
		return cas.Float(n)
	case float32:
		return cas.Float(float64(n))
	case int:
		return cas.Num(int64(n)), true
	case int8:
		return cas.Num(int64(n)), true
	case int16:
		return cas.Num(int64(n)), true
	case int32:
		return cas.Num(int64(n)), true
	case int64:
		return cas.Num(n), true
	case uint8:
		return cas.Num(int64(n)), true
	case uint16:
		return cas.Num(int64(n)), true
	case uint32:
		return cas.Num(int64(n)), true
	case uint:
		return liftUint(uint64(n)), true
	case uint64:
		return liftUint(n), true
	}
	return cas.Expr{}, false
}

func liftUint(n uint64) cas.Expr {
	return cas.FromRat(new(big.Rat).SetInt(new(big.Int).SetUint64(n)))
}

func (Symbolic) Parse(s string) (cas.Expr, error) { return cas.Parse(s) }

func (Symbolic) Format(a cas.Expr) string { return a.String() }
