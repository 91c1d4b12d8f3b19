package cas

import "math/big"

// rewrite rebuilds e by replacing every factor atom^pow with fn(atom, pow).
func (e Expr) rewrite(fn func(a *atom, pow int) Expr) Expr {
	parts := make([]Expr, 0, len(e.terms))
	for _, t := range e.terms {
		acc := constant(t.coeff)
		for _, f := range t.factors {
			acc = acc.Mul(fn(f.atom, f.pow))
		}
		parts = append(parts, acc)
	}
	return Sum(parts...)
}

// power returns a^pow as an expression, rebuilding function atoms from
// arg so their normalization rules apply again.
func power(a *atom, arg Expr, pow int) Expr {
	var base Expr
	switch a.kind {
	case atomSin:
		base = Sin(arg)
	case atomCos:
		base = Cos(arg)
	case atomSqrt:
		base = Sqrt(arg)
	default:
		return single(a, pow)
	}
	out, err := base.pow(pow)
	if err != nil {
		// base collapsed to a non-monomial or zero; keep the atom form.
		return single(funcAtom(a.kind, arg), pow)
	}
	return out
}

// Simplify returns the canonical form of e: function arguments are
// simplified recursively, even powers of square roots are resolved and
// functions of constant arguments fold where exact.
func Simplify(e Expr) Expr {
	return e.rewrite(func(a *atom, pow int) Expr {
		if a.kind == atomSymbol {
			return single(a, pow)
		}
		arg := Simplify(a.arg)
		if a.kind == atomSqrt && pow >= 2 {
			inner, _ := arg.pow(pow / 2)
			return inner.Mul(power(a, arg, pow%2))
		}
		return power(a, arg, pow)
	})
}

// TrigSimplify simplifies e, rewrites sines and cosines whose arguments
// are rational multiples of one monomial in terms of a common base angle
// (sin(theta) becomes 2*sin(1/2*theta)*cos(1/2*theta) when theta/2 also
// occurs), and then eliminates sin(u)^2 in favour of 1 - cos(u)^2. This
// gives polynomials in sin and cos of such arguments a unique
// representation. Angle sums such as sin(a + b) are not expanded, so
// identities that need them are not recognized.
func TrigSimplify(e Expr) Expr {
	e = Simplify(e).rewrite(func(a *atom, pow int) Expr {
		if a.kind == atomSymbol {
			return single(a, pow)
		}
		return power(a, TrigSimplify(a.arg), pow)
	})
	e = commonAngles(e)
	return e.rewrite(func(a *atom, pow int) Expr {
		if a.kind == atomSin && pow >= 2 {
			c := Cos(a.arg)
			sq := Num(1).Sub(c.Mul(c))
			lowered, _ := sq.pow(pow / 2)
			return lowered.Mul(single(a, pow%2))
		}
		return single(a, pow)
	})
}

// maxMultiple bounds the multiple-angle expansion of commonAngles.
const maxMultiple = 12

// angleGroup collects the coefficients c of sin(c*m) and cos(c*m) for one
// monomial m.
type angleGroup struct {
	unit  Expr
	coeff []*big.Rat
}

// commonAngles rewrites sin(c*m) and cos(c*m) as polynomials in sin(g*m)
// and cos(g*m), where g is the largest rational dividing every c that
// occurs with m in e.
func commonAngles(e Expr) Expr {
	groups := map[string]*angleGroup{}
	for _, t := range e.terms {
		for _, f := range t.factors {
			unit, c, ok := angleOf(f.atom)
			if !ok {
				continue
			}
			key := unit.String()
			g := groups[key]
			if g == nil {
				g = &angleGroup{unit: unit}
				groups[key] = g
			}
			g.coeff = append(g.coeff, c)
		}
	}

	bases := map[string]*big.Rat{}
	for key, g := range groups {
		base := ratGCD(g.coeff)
		mixed := false
		for _, c := range g.coeff {
			n := new(big.Rat).Quo(c, base)
			if !n.IsInt() || n.Num().Cmp(big.NewInt(maxMultiple)) > 0 {
				mixed = false
				break
			}
			if !n.Num().IsInt64() || n.Num().Int64() != 1 {
				mixed = true
			}
		}
		if mixed {
			bases[key] = base
		}
	}
	if len(bases) == 0 {
		return e
	}

	return e.rewrite(func(a *atom, pow int) Expr {
		unit, c, ok := angleOf(a)
		if !ok {
			return single(a, pow)
		}
		base, ok := bases[unit.String()]
		if !ok {
			return single(a, pow)
		}
		n := int(new(big.Rat).Quo(c, base).Num().Int64())
		sinN, cosN := multipleAngle(unit.Mul(constant(new(big.Rat).Set(base))), n)
		out := cosN
		if a.kind == atomSin {
			out = sinN
		}
		p, _ := out.pow(pow)
		return p
	})
}

// angleOf splits the argument of a sine or cosine atom into c*unit, where
// unit is a monomial with coefficient 1 and c > 0.
func angleOf(a *atom) (unit Expr, c *big.Rat, ok bool) {
	if a.kind != atomSin && a.kind != atomCos {
		return Expr{}, nil, false
	}
	if len(a.arg.terms) != 1 || len(a.arg.terms[0].factors) == 0 {
		return Expr{}, nil, false
	}
	t := a.arg.terms[0]
	if t.coeff.Sign() <= 0 {
		return Expr{}, nil, false
	}
	return Expr{terms: []term{{coeff: big.NewRat(1, 1), factors: t.factors}}}, t.coeff, true
}

// multipleAngle returns sin(n*b) and cos(n*b) expanded in sin(b) and cos(b).
func multipleAngle(b Expr, n int) (Expr, Expr) {
	s1, c1 := Sin(b), Cos(b)
	s, c := s1, c1
	for k := 1; k < n; k++ {
		s, c = s.Mul(c1).Add(c.Mul(s1)), c.Mul(c1).Sub(s.Mul(s1))
	}
	return s, c
}

// ratGCD returns the largest positive rational g such that every r/g is an
// integer.
func ratGCD(rs []*big.Rat) *big.Rat {
	num := new(big.Int)
	den := big.NewInt(1)
	for _, r := range rs {
		num.GCD(nil, nil, num, r.Num())
		d := new(big.Int).GCD(nil, nil, den, r.Denom())
		den.Mul(den, r.Denom())
		den.Quo(den, d)
	}
	return new(big.Rat).SetFrac(num, den)
}

// IsZeroSimplified reports whether e simplifies to 0 under TrigSimplify.
func IsZeroSimplified(e Expr) bool {
	return TrigSimplify(e).IsZero()
}
