package cas

import (
	"math/big"
	"strconv"
	"strings"
)

// String renders e in a form Parse accepts, e.g. "1 - sin(1/2*theta)*x".
func (e Expr) String() string {
	if len(e.terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, t := range e.terms {
		neg := t.coeff.Sign() < 0
		switch {
		case i == 0 && neg:
			b.WriteByte('-')
		case i > 0 && neg:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		writeTerm(&b, t, new(big.Rat).Abs(t.coeff))
	}
	return b.String()
}

func writeTerm(b *strings.Builder, t term, abs *big.Rat) {
	one := abs.Cmp(big.NewRat(1, 1)) == 0
	if len(t.factors) == 0 {
		b.WriteString(abs.RatString())
		return
	}
	if !one {
		b.WriteString(abs.RatString())
		b.WriteByte('*')
	}
	b.WriteString(t.key())
}

func writeFactor(b *strings.Builder, f factor) {
	b.WriteString(f.atom.key)
	if f.pow != 1 {
		b.WriteByte('^')
		if f.pow < 0 {
			b.WriteByte('(')
			b.WriteString(strconv.Itoa(f.pow))
			b.WriteByte(')')
			return
		}
		b.WriteString(strconv.Itoa(f.pow))
	}
}
