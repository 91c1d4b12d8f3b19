package cas

import (
	"math/big"
	"sort"
	"strings"
)

// Expr is an immutable scalar expression kept in expanded canonical form:
// a sum of monomials with exact rational coefficients over symbols and
// function atoms. The zero value is the constant 0.
type Expr struct {
	terms []term
}

type term struct {
	coeff   *big.Rat
	factors []factor
}

type factor struct {
	atom *atom
	pow  int
}

// Num returns the integer constant n.
func Num(n int64) Expr {
	return constant(new(big.Rat).SetInt64(n))
}

// Rat returns the rational constant p/q. It panics if q is zero.
func Rat(p, q int64) Expr {
	if q == 0 {
		panic("cas: zero denominator")
	}
	return constant(new(big.Rat).SetFrac64(p, q))
}

// FromRat returns the constant r. The argument is copied.
func FromRat(r *big.Rat) Expr {
	return constant(new(big.Rat).Set(r))
}

// Float returns the exact rational value of f. It reports false for NaN
// and infinities.
func Float(f float64) (Expr, bool) {
	r := new(big.Rat)
	if r.SetFloat64(f) == nil {
		return Expr{}, false
	}
	return constant(r), true
}

// Sym returns the symbol with the given name.
func Sym(name string) Expr {
	return single(&atom{kind: atomSymbol, name: name, key: name}, 1)
}

// Symbols returns one symbol per name, in order.
func Symbols(names ...string) []Expr {
	out := make([]Expr, len(names))
	for i, n := range names {
		out[i] = Sym(n)
	}
	return out
}

func constant(r *big.Rat) Expr {
	if r.Sign() == 0 {
		return Expr{}
	}
	return Expr{terms: []term{{coeff: r}}}
}

func single(a *atom, pow int) Expr {
	if pow == 0 {
		return Num(1)
	}
	return Expr{terms: []term{{coeff: big.NewRat(1, 1), factors: []factor{{atom: a, pow: pow}}}}}
}

// IsZero reports whether e is the constant 0.
func (e Expr) IsZero() bool { return len(e.terms) == 0 }

// Const returns the value of e when it has no symbolic part.
func (e Expr) Const() (*big.Rat, bool) {
	switch {
	case len(e.terms) == 0:
		return new(big.Rat), true
	case len(e.terms) == 1 && len(e.terms[0].factors) == 0:
		return new(big.Rat).Set(e.terms[0].coeff), true
	}
	return nil, false
}

// Equal reports structural equality of the canonical forms.
func (e Expr) Equal(o Expr) bool {
	if len(e.terms) != len(o.terms) {
		return false
	}
	for i := range e.terms {
		if e.terms[i].key() != o.terms[i].key() || e.terms[i].coeff.Cmp(o.terms[i].coeff) != 0 {
			return false
		}
	}
	return true
}

// Add returns e + o.
func (e Expr) Add(o Expr) Expr {
	ts := make([]term, 0, len(e.terms)+len(o.terms))
	ts = append(ts, e.terms...)
	ts = append(ts, o.terms...)
	return normalize(ts)
}

// Sub returns e - o.
func (e Expr) Sub(o Expr) Expr { return e.Add(o.Neg()) }

// Neg returns -e.
func (e Expr) Neg() Expr {
	ts := make([]term, len(e.terms))
	for i, t := range e.terms {
		ts[i] = term{coeff: new(big.Rat).Neg(t.coeff), factors: t.factors}
	}
	return Expr{terms: ts}
}

// Mul returns the expanded product e * o.
func (e Expr) Mul(o Expr) Expr {
	ts := make([]term, 0, len(e.terms)*len(o.terms))
	for _, a := range e.terms {
		for _, b := range o.terms {
			ts = append(ts, a.mul(b))
		}
	}
	return normalize(ts)
}

// Scale returns r * e.
func (e Expr) Scale(r *big.Rat) Expr {
	return e.Mul(constant(new(big.Rat).Set(r)))
}

// Pow returns e raised to the integer power n. Negative powers are only
// defined for monomials. |n| may not exceed MaxExponent and the expanded
// result may not exceed MaxTerms terms; either limit fails with a
// *LimitError.
func (e Expr) Pow(n int) (Expr, error) {
	if n > MaxExponent || n < -MaxExponent {
		return Expr{}, &LimitError{Limit: "exponent", Value: n, Max: MaxExponent}
	}
	base := e
	if n < 0 {
		inv, err := e.Inv()
		if err != nil {
			return Expr{}, err
		}
		base, n = inv, -n
	}
	out := Num(1)
	for i := 0; i < n; i++ {
		out = out.Mul(base)
		if len(out.terms) > MaxTerms {
			return Expr{}, &LimitError{Limit: "terms", Value: len(out.terms), Max: MaxTerms}
		}
	}
	return out, nil
}

// pow is Pow without size limits, for rewrites of already parsed input.
func (e Expr) pow(n int) (Expr, error) {
	if n < 0 {
		inv, err := e.Inv()
		if err != nil {
			return Expr{}, err
		}
		return inv.pow(-n)
	}
	out := Num(1)
	base := e
	for n > 0 {
		if n&1 == 1 {
			out = out.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return out, nil
}

// Inv returns 1/e for a nonzero monomial e.
func (e Expr) Inv() (Expr, error) {
	if e.IsZero() {
		return Expr{}, ErrDivision
	}
	if len(e.terms) != 1 {
		return Expr{}, &DivisionError{Divisor: e.String()}
	}
	t := e.terms[0]
	fs := make([]factor, len(t.factors))
	for i, f := range t.factors {
		fs[i] = factor{atom: f.atom, pow: -f.pow}
	}
	return Expr{terms: []term{{coeff: new(big.Rat).Inv(t.coeff), factors: fs}}}, nil
}

// Div returns e / o for a nonzero monomial o.
func (e Expr) Div(o Expr) (Expr, error) {
	inv, err := o.Inv()
	if err != nil {
		return Expr{}, err
	}
	return e.Mul(inv), nil
}

// Sum adds all operands.
func Sum(xs ...Expr) Expr {
	var ts []term
	for _, x := range xs {
		ts = append(ts, x.terms...)
	}
	return normalize(ts)
}

// Product multiplies all operands left to right.
func Product(xs ...Expr) Expr {
	out := Num(1)
	for _, x := range xs {
		out = out.Mul(x)
	}
	return out
}

func (t term) mul(o term) term {
	fs := make([]factor, 0, len(t.factors)+len(o.factors))
	fs = append(fs, t.factors...)
	fs = append(fs, o.factors...)
	return term{coeff: new(big.Rat).Mul(t.coeff, o.coeff), factors: mergeFactors(fs)}
}

func (t term) key() string {
	var b strings.Builder
	for i, f := range t.factors {
		if i > 0 {
			b.WriteByte('*')
		}
		writeFactor(&b, f)
	}
	return b.String()
}

// mergeFactors combines powers of equal atoms and orders factors by atom key.
func mergeFactors(fs []factor) []factor {
	if len(fs) == 0 {
		return nil
	}
	byKey := make(map[string]int, len(fs))
	out := make([]factor, 0, len(fs))
	for _, f := range fs {
		if i, ok := byKey[f.atom.key]; ok {
			out[i].pow += f.pow
			continue
		}
		byKey[f.atom.key] = len(out)
		out = append(out, f)
	}
	kept := out[:0]
	for _, f := range out {
		if f.pow != 0 {
			kept = append(kept, f)
		}
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].atom.key < kept[j].atom.key })
	if len(kept) == 0 {
		return nil
	}
	return kept
}

// normalize collects like terms, drops zero coefficients and orders terms
// by their monomial key. Constants sort first.
func normalize(ts []term) Expr {
	if len(ts) == 0 {
		return Expr{}
	}
	byKey := make(map[string]int, len(ts))
	out := make([]term, 0, len(ts))
	for _, t := range ts {
		k := t.key()
		if i, ok := byKey[k]; ok {
			out[i].coeff = new(big.Rat).Add(out[i].coeff, t.coeff)
			continue
		}
		byKey[k] = len(out)
		out = append(out, term{coeff: new(big.Rat).Set(t.coeff), factors: t.factors})
	}
	kept := out[:0]
	for _, t := range out {
		if t.coeff.Sign() != 0 {
			kept = append(kept, t)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].key() < kept[j].key() })
	if len(kept) == 0 {
		return Expr{}
	}
	return Expr{terms: kept}
}
