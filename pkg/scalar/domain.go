package scalar

// Domain is the capability set the quaternion layers need from their
// scalars. Implementations must be safe for concurrent use; values of S
// are treated as immutable.
type Domain[S any] interface {
	// Name identifies the domain ("numeric", "symbolic").
	Name() string

	Zero() S
	One() S
	// Int returns the integer n.
	Int(n int64) S
	// Rat returns the rational p/q.
	Rat(p, q int64) S

	Add(a, b S) S
	Sub(a, b S) S
	Mul(a, b S) S
	Neg(a S) S

	Sin(a S) S
	Cos(a S) S
	Sqrt(a S) S

	// Simplify returns a canonical, comparison-ready form of a.
	Simplify(a S) S
	// TrigSimplify is Simplify plus trigonometric reduction.
	TrigSimplify(a S) S
	// Equal compares canonical forms.
	Equal(a, b S) bool

	// Lift converts v to S when v is an element of the domain or a Go
	// numeric literal. It reports false for anything else.
	Lift(v any) (S, bool)
	// Parse reads the textual form of a scalar.
	Parse(s string) (S, error)
	// Format renders a scalar.
	Format(a S) string
}

// Differ is implemented by domains that can differentiate with respect to
// a named variable.
type Differ[S any] interface {
	Diff(a S, variable string) S
}

// Half returns a/2 in dom.
func Half[S any](dom Domain[S], a S) S {
	return dom.Mul(dom.Rat(1, 2), a)
}

// Dot returns the sum of pairwise products of equal-length slices.
func Dot[S any](dom Domain[S], a, b []S) S {
	acc := dom.Zero()
	for i := range a {
		acc = dom.Add(acc, dom.Mul(a[i], b[i]))
	}
	return acc
}

// IsOne reports whether a trig-simplifies to 1.
func IsOne[S any](dom Domain[S], a S) bool {
	return dom.Equal(dom.TrigSimplify(a), dom.One())
}

// IsZero reports whether a trig-simplifies to 0.
func IsZero[S any](dom Domain[S], a S) bool {
	return dom.Equal(dom.TrigSimplify(a), dom.Zero())
}
