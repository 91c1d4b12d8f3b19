package cas

import (
	"math/big"
)

type atomKind int

const (
	atomSymbol atomKind = iota
	atomSin
	atomCos
	atomSqrt
)

var funcNames = map[atomKind]string{
	atomSin:  "sin",
	atomCos:  "cos",
	atomSqrt: "sqrt",
}

// atom is an indivisible factor: a symbol or a function applied to a
// canonical argument. key is its canonical rendering and identifies it.
type atom struct {
	kind atomKind
	name string
	arg  Expr
	key  string
}

func funcAtom(kind atomKind, arg Expr) *atom {
	return &atom{kind: kind, arg: arg, key: funcNames[kind] + "(" + arg.String() + ")"}
}

// Sin returns sin(e). sin(0) is 0 and odd parity is pulled out so that
// sin(-u) and -sin(u) share one canonical form.
func Sin(e Expr) Expr {
	if e.IsZero() {
		return Expr{}
	}
	if e.negativeLead() {
		return single(funcAtom(atomSin, e.Neg()), 1).Neg()
	}
	return single(funcAtom(atomSin, e), 1)
}

// Cos returns cos(e). cos(0) is 1 and cos(-u) is cos(u).
func Cos(e Expr) Expr {
	if e.IsZero() {
		return Num(1)
	}
	if e.negativeLead() {
		e = e.Neg()
	}
	return single(funcAtom(atomCos, e), 1)
}

// Sqrt returns the principal square root of e. Rational perfect squares
// are evaluated; anything else stays symbolic.
func Sqrt(e Expr) Expr {
	if r, ok := e.Const(); ok && r.Sign() >= 0 {
		if root, ok := ratSqrt(r); ok {
			return constant(root)
		}
	}
	return single(funcAtom(atomSqrt, e), 1)
}

// Half returns e/2.
func Half(e Expr) Expr {
	return e.Mul(Rat(1, 2))
}

func (e Expr) negativeLead() bool {
	return len(e.terms) > 0 && e.terms[0].coeff.Sign() < 0
}

func ratSqrt(r *big.Rat) (*big.Rat, bool) {
	if r.Sign() == 0 {
		return new(big.Rat), true
	}
	num, ok := intSqrt(r.Num())
	if !ok {
		return nil, false
	}
	den, ok := intSqrt(r.Denom())
	if !ok {
		return nil, false
	}
	return new(big.Rat).SetFrac(num, den), true
}

func intSqrt(n *big.Int) (*big.Int, bool) {
	root := new(big.Int).Sqrt(n)
	if new(big.Int).Mul(root, root).Cmp(n) != 0 {
		return nil, false
	}
	return root, true
}
