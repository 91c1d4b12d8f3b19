package cas

import (
	"fmt"
	"math"
	"sort"
)

// Constants are symbols Eval resolves when the caller does not bind them.
var Constants = map[string]float64{
	"pi": math.Pi,
}

// Eval evaluates e numerically with the given symbol bindings.
func Eval(e Expr, bindings map[string]float64) (float64, error) {
	var sum float64
	for _, t := range e.terms {
		v, _ := t.coeff.Float64()
		for _, f := range t.factors {
			x, err := evalAtom(f.atom, bindings)
			if err != nil {
				return 0, err
			}
			v *= math.Pow(x, float64(f.pow))
		}
		sum += v
	}
	return sum, nil
}

func evalAtom(a *atom, bindings map[string]float64) (float64, error) {
	if a.kind == atomSymbol {
		if v, ok := bindings[a.name]; ok {
			return v, nil
		}
		if v, ok := Constants[a.name]; ok {
			return v, nil
		}
		return 0, fmt.Errorf("%w: %s", ErrUnbound, a.name)
	}
	x, err := Eval(a.arg, bindings)
	if err != nil {
		return 0, err
	}
	switch a.kind {
	case atomSin:
		return math.Sin(x), nil
	case atomCos:
		return math.Cos(x), nil
	default:
		return math.Sqrt(x), nil
	}
}

// Subs replaces symbols by expressions. A symbol raised to a negative power
// can only be replaced by a monomial.
func Subs(e Expr, repl map[string]Expr) (Expr, error) {
	var failed error
	out := e.rewrite(func(a *atom, pow int) Expr {
		if a.kind == atomSymbol {
			v, ok := repl[a.name]
			if !ok {
				return single(a, pow)
			}
			p, err := v.Pow(pow)
			if err != nil && failed == nil {
				failed = err
			}
			return p
		}
		arg, err := Subs(a.arg, repl)
		if err != nil && failed == nil {
			failed = err
		}
		return power(a, arg, pow)
	})
	if failed != nil {
		return Expr{}, failed
	}
	return out, nil
}

// FreeSymbols returns the sorted names of the symbols occurring in e.
func FreeSymbols(e Expr) []string {
	seen := map[string]bool{}
	e.collect(seen)
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (e Expr) collect(seen map[string]bool) {
	for _, t := range e.terms {
		for _, f := range t.factors {
			if f.atom.kind == atomSymbol {
				seen[f.atom.name] = true
				continue
			}
			f.atom.arg.collect(seen)
		}
	}
}
