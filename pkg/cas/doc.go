// Package cas is a small symbolic scalar engine.
//
// Expressions are kept in expanded canonical form: a sum of monomials with
// exact rational coefficients (math/big.Rat) over symbols and the function
// atoms sin, cos and sqrt. Two expressions that expand to the same
// polynomial therefore compare equal structurally:
//
//	x := cas.Sym("x")
//	a := x.Add(cas.Num(1)).Mul(x.Sub(cas.Num(1)))
//	b := x.Mul(x).Sub(cas.Num(1))
//	a.Equal(b) // true
//
// Trigonometric identities are not applied on construction. TrigSimplify
// rewrites sin(u)^2 as 1 - cos(u)^2, which is enough to decide identities
// such as sin(u)^2 + cos(u)^2 = 1 for polynomials in sin and cos:
//
//	t := cas.Half(cas.Sym("theta"))
//	s, c := cas.Sin(t), cas.Cos(t)
//	cas.TrigSimplify(s.Mul(s).Add(c.Mul(c))) // 1
//
// The engine also differentiates (Diff), substitutes (Subs), evaluates
// numerically (Eval) and parses the textual form produced by String.
//
// It is not a general computer algebra system: there is no rational
// function support beyond division by monomials, no solving and no
// integration.
package cas
