package cas

// Diff returns the derivative of e with respect to the symbol named v.
func Diff(e Expr, v string) Expr {
	parts := make([]Expr, 0, len(e.terms))
	for _, t := range e.terms {
		for i, f := range t.factors {
			d := diffAtom(f.atom, v)
			if d.IsZero() {
				continue
			}
			// coeff * pow * atom^(pow-1) * d(atom) * rest
			acc := constant(t.coeff).Mul(Num(int64(f.pow))).Mul(single(f.atom, f.pow-1)).Mul(d)
			for j, g := range t.factors {
				if j != i {
					acc = acc.Mul(single(g.atom, g.pow))
				}
			}
			parts = append(parts, acc)
		}
	}
	return Sum(parts...)
}

func diffAtom(a *atom, v string) Expr {
	switch a.kind {
	case atomSymbol:
		if a.name == v {
			return Num(1)
		}
		return Expr{}
	case atomSin:
		return Cos(a.arg).Mul(Diff(a.arg, v))
	case atomCos:
		return Sin(a.arg).Neg().Mul(Diff(a.arg, v))
	case atomSqrt:
		du := Diff(a.arg, v)
		if du.IsZero() {
			return Expr{}
		}
		return Rat(1, 2).Mul(single(a, -1)).Mul(du)
	}
	return Expr{}
}
