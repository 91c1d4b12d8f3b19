package cas

import (
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// Parse reads an infix expression such as "x*sin(theta/2) - 3/2*y^2".
//
// Supported: rational and decimal literals, identifiers, + - * / ^,
// parentheses and the functions sin, cos and sqrt. Exponents must be
// integers; divisors must be single terms.
func Parse(input string) (Expr, error) {
	p := &parser{input: input}
	p.next()
	e, err := p.expr()
	if err != nil {
		return Expr{}, err
	}
	if p.tok.kind != tokEOF {
		return Expr{}, p.fail("unexpected " + p.tok.String())
	}
	return e, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level constants.
func MustParse(input string) Expr {
	e, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return e
}

type tokKind int

const (
	tokEOF tokKind = iota
	tokNum
	tokIdent
	tokOp
)

type token struct {
	kind tokKind
	text string
	pos  int
}

func (t token) String() string {
	if t.kind == tokEOF {
		return "end of input"
	}
	return strconv.Quote(t.text)
}

type parser struct {
	input string
	pos   int
	tok   token
}

func (p *parser) fail(reason string) error {
	return &SyntaxError{Input: p.input, Offset: p.tok.pos, Reason: reason}
}

func (p *parser) next() {
	for p.pos < len(p.input) && unicode.IsSpace(rune(p.input[p.pos])) {
		p.pos++
	}
	start := p.pos
	if p.pos >= len(p.input) {
		p.tok = token{kind: tokEOF, pos: start}
		return
	}
	c := rune(p.input[p.pos])
	switch {
	case unicode.IsDigit(c) || c == '.':
		for p.pos < len(p.input) && (unicode.IsDigit(rune(p.input[p.pos])) || p.input[p.pos] == '.') {
			p.pos++
		}
		p.tok = token{kind: tokNum, text: p.input[start:p.pos], pos: start}
	case unicode.IsLetter(c) || c == '_':
		for p.pos < len(p.input) {
			r := rune(p.input[p.pos])
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				break
			}
			p.pos++
		}
		p.tok = token{kind: tokIdent, text: p.input[start:p.pos], pos: start}
	default:
		p.pos++
		p.tok = token{kind: tokOp, text: string(c), pos: start}
	}
}

func (p *parser) isOp(op string) bool {
	return p.tok.kind == tokOp && p.tok.text == op
}

func (p *parser) expr() (Expr, error) {
	left, err := p.term()
	if err != nil {
		return Expr{}, err
	}
	for p.isOp("+") || p.isOp("-") {
		op := p.tok.text
		p.next()
		right, err := p.term()
		if err != nil {
			return Expr{}, err
		}
		if op == "+" {
			left = left.Add(right)
		} else {
			left = left.Sub(right)
		}
		if err := p.checkSize(left); err != nil {
			return Expr{}, err
		}
	}
	return left, nil
}

func (p *parser) checkSize(e Expr) error {
	if n := len(e.terms); n > MaxTerms {
		return p.fail((&LimitError{Limit: "terms", Value: n, Max: MaxTerms}).Error())
	}
	return nil
}

func (p *parser) term() (Expr, error) {
	left, err := p.unary()
	if err != nil {
		return Expr{}, err
	}
	for p.isOp("*") || p.isOp("/") {
		op := p.tok
		p.next()
		right, err := p.unary()
		if err != nil {
			return Expr{}, err
		}
		if op.text == "*" {
			left = left.Mul(right)
			if err := p.checkSize(left); err != nil {
				return Expr{}, err
			}
			continue
		}
		left, err = left.Div(right)
		if err != nil {
			return Expr{}, &SyntaxError{Input: p.input, Offset: op.pos, Reason: err.Error()}
		}
	}
	return left, nil
}

func (p *parser) unary() (Expr, error) {
	if p.isOp("-") {
		p.next()
		e, err := p.unary()
		return e.Neg(), err
	}
	if p.isOp("+") {
		p.next()
		return p.unary()
	}
	return p.power()
}

func (p *parser) power() (Expr, error) {
	base, err := p.primary()
	if err != nil {
		return Expr{}, err
	}
	if !p.isOp("^") {
		return base, nil
	}
	p.next()
	n, err := p.exponent()
	if err != nil {
		return Expr{}, err
	}
	out, err := base.Pow(n)
	if err != nil {
		return Expr{}, p.fail(err.Error())
	}
	return out, nil
}

func (p *parser) exponent() (int, error) {
	paren := p.isOp("(")
	if paren {
		p.next()
	}
	sign := 1
	if p.isOp("-") {
		sign = -1
		p.next()
	}
	if p.tok.kind != tokNum {
		return 0, p.fail("exponent must be an integer")
	}
	n, err := strconv.Atoi(p.tok.text)
	if err != nil {
		return 0, p.fail("exponent must be an integer")
	}
	p.next()
	if paren {
		if !p.isOp(")") {
			return 0, p.fail("expected )")
		}
		p.next()
	}
	return sign * n, nil
}

func (p *parser) primary() (Expr, error) {
	switch p.tok.kind {
	case tokNum:
		r, ok := new(big.Rat).SetString(p.tok.text)
		if !ok {
			return Expr{}, p.fail("bad number " + p.tok.String())
		}
		p.next()
		return constant(r), nil
	case tokIdent:
		name := p.tok.text
		p.next()
		if !p.isOp("(") {
			return Sym(name), nil
		}
		fn, ok := functions[strings.ToLower(name)]
		if !ok {
			return Expr{}, p.fail("unknown function " + strconv.Quote(name))
		}
		p.next()
		arg, err := p.expr()
		if err != nil {
			return Expr{}, err
		}
		if !p.isOp(")") {
			return Expr{}, p.fail("expected )")
		}
		p.next()
		return fn(arg), nil
	case tokOp:
		if p.tok.text == "(" {
			p.next()
			e, err := p.expr()
			if err != nil {
				return Expr{}, err
			}
			if !p.isOp(")") {
				return Expr{}, p.fail("expected )")
			}
			p.next()
			return e, nil
		}
	}
	return Expr{}, p.fail("unexpected " + p.tok.String())
}

var functions = map[string]func(Expr) Expr{
	"sin":  Sin,
	"cos":  Cos,
	"sqrt": Sqrt,
}
