package chain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/symdq/pkg/cas"
	"github.com/aretw0/symdq/pkg/chain"
	"github.com/aretw0/symdq/pkg/dualquat"
	"github.com/aretw0/symdq/pkg/quaternion"
	"github.com/aretw0/symdq/pkg/scalar"
)

const planar = `
name: planar
domain: symbolic
links:
  - dh: {theta: theta1, d: 0, a: l1, alpha: 0}
  - screw: {l: [0, 0, 1], m: [0, -x, 0], theta: theta2}
  - rotate: {axis: [0, 0, 1], angle: phi}
  - translate: [tx, 0, 0.5]
`

var sym = scalar.NewSymbolic()

func TestParseDocument(t *testing.T) {
	doc, err := chain.ParseDocument([]byte(planar))
	require.NoError(t, err)

	assert.Equal(t, "planar", doc.Name)
	assert.Equal(t, chain.DomainSymbolic, doc.Domain)
	require.Len(t, doc.Links, 4)

	assert.Equal(t, "dh", doc.Links[0].Kind())
	assert.Equal(t, &chain.DH{Theta: "theta1", D: "0", A: "l1", Alpha: "0"}, doc.Links[0].DH)
	assert.Equal(t, "screw", doc.Links[1].Kind())
	assert.Equal(t, []string{"0", "-x", "0"}, doc.Links[1].Screw.M)
	assert.Equal(t, "rotate", doc.Links[2].Kind())
	assert.Equal(t, []string{"tx", "0", "0.5"}, doc.Links[3].Translate)
}

func TestParseDocument_Bindings(t *testing.T) {
	doc, err := chain.ParseDocument([]byte(`
name: arm
domain: numeric
bindings: {l1: 0.3, l2: "2"}
links:
  - translate: [l1, l2, 0]
`))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"l1": 0.3, "l2": 2}, doc.Bindings)
}

func TestParseDocument_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		link  int
		field string
	}{
		{"no links", "name: x\nlinks: []\n", -1, "links"},
		{"unknown domain", "name: x\ndomain: complex\nlinks:\n  - translate: [0, 0, 0]\n", -1, "domain"},
		{"empty link", "name: x\nlinks:\n  - {}\n", 0, "kind"},
		{"two kinds", "name: x\nlinks:\n  - translate: [0, 0, 0]\n    rotate: {axis: [0, 0, 1], angle: 1}\n", 0, "kind"},
		{"short axis", "name: x\nlinks:\n  - translate: [0, 0, 0]\n  - rotate: {axis: [0, 1], angle: 1}\n", 1, "rotate.axis"},
		{"missing angle", "name: x\nlinks:\n  - rotate: {axis: [0, 0, 1]}\n", 0, "rotate.angle"},
		{"short moment", "name: x\nlinks:\n  - screw: {l: [0, 0, 1], m: [0], theta: t}\n", 0, "screw.m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := chain.ParseDocument([]byte(tt.input))
			require.ErrorIs(t, err, chain.ErrInvalidDocument)

			var vErr *chain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.link, vErr.Link)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}

	t.Run("unknown field", func(t *testing.T) {
		_, err := chain.ParseDocument([]byte("name: x\nlinkz: []\n"))
		assert.ErrorIs(t, err, chain.ErrInvalidDocument)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := chain.ParseDocument([]byte("name: [x\n"))
		assert.ErrorIs(t, err, chain.ErrInvalidDocument)
	})
}

func TestDocumentMarshal(t *testing.T) {
	doc, err := chain.ParseDocument([]byte(planar))
	require.NoError(t, err)

	data, err := doc.Marshal()
	require.NoError(t, err)

	again, err := chain.ParseDocument(data)
	require.NoError(t, err)
	assert.Equal(t, doc, again)
}

func TestMapExpressions(t *testing.T) {
	doc, err := chain.ParseDocument([]byte(planar))
	require.NoError(t, err)

	var fields []string
	mapped, err := doc.MapExpressions(func(field, expr string) (string, error) {
		fields = append(fields, field)
		return "(" + expr + ")", nil
	})
	require.NoError(t, err)

	assert.Len(t, fields, 18)
	assert.Contains(t, fields, "links[0].dh.theta")
	assert.Contains(t, fields, "links[1].screw.m[1]")
	assert.Contains(t, fields, "links[2].rotate.angle")
	assert.Contains(t, fields, "links[3].translate[2]")
	assert.NotContains(t, fields, "links[1].screw.d")

	assert.Equal(t, "(phi)", mapped.Links[2].Rotate.Angle)
	assert.Equal(t, "phi", doc.Links[2].Rotate.Angle)

	_, err = doc.MapExpressions(func(field, expr string) (string, error) {
		if field == "links[1].screw.theta" {
			return "", assert.AnError
		}
		return expr, nil
	})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_SingleDHLink(t *testing.T) {
	doc, err := chain.ParseDocument([]byte(`
name: link
links:
  - dh: {theta: theta, d: d, a: a, alpha: alpha}
`))
	require.NoError(t, err)

	got, err := chain.Build[cas.Expr](sym, doc)
	require.NoError(t, err)

	s := cas.Symbols("theta", "d", "a", "alpha")
	zero, one := cas.Num(0), cas.Num(1)
	want := dualquat.Translation[cas.Expr](sym, [3]cas.Expr{zero, zero, s[1]}).
		Mul(dualquat.Rotation[cas.Expr](sym, [3]cas.Expr{zero, zero, one}, s[0])).
		Mul(dualquat.Translation[cas.Expr](sym, [3]cas.Expr{s[2], zero, zero})).
		Mul(dualquat.Rotation[cas.Expr](sym, [3]cas.Expr{one, zero, zero}, s[3]))

	assert.True(t, want.Equal(got), "want %s\n got %s", want, got)
	assert.True(t, got.IsUnit())
}

func TestBuild_Numeric(t *testing.T) {
	doc, err := chain.ParseDocument([]byte(`
name: arm
domain: numeric
bindings: {l1: 2}
links:
  - dh: {theta: pi/2, d: 1, a: l1, alpha: 0}
`))
	require.NoError(t, err)

	num := scalar.NewFloat(scalar.WithBindings(doc.Bindings))
	d, err := chain.Build[float64](num, doc)
	require.NoError(t, err)

	p := dualquat.TransformPoint([3]float64{}, d)
	assert.InDeltaSlice(t, []float64{0, 2, 1}, p[:], 1e-12)

	tip := dualquat.TransformPoint([3]float64{1, 0, 0}, d)
	assert.InDeltaSlice(t, []float64{0, 3, 1}, tip[:], 1e-12)
	assert.InDelta(t, math.Sqrt(9+1), math.Hypot(tip[1], tip[2]), 1e-12)
}

func TestBuild_Errors(t *testing.T) {
	t.Run("invalid screw", func(t *testing.T) {
		doc := &chain.Document{Name: "bad", Links: []chain.Link{
			{Screw: &chain.Screw{L: []string{"0", "0", "2"}, M: []string{"0", "0", "0"}, Theta: "t"}},
		}}
		_, err := chain.Build[cas.Expr](sym, doc)
		assert.ErrorIs(t, err, dualquat.ErrInvalidScrew)
		assert.Contains(t, err.Error(), "link 0 (screw)")
	})

	t.Run("syntax error", func(t *testing.T) {
		doc := &chain.Document{Name: "bad", Links: []chain.Link{
			{Translate: []string{"0", "1 +", "0"}},
		}}
		_, err := chain.Build[cas.Expr](sym, doc)
		assert.ErrorIs(t, err, cas.ErrSyntax)
		assert.Contains(t, err.Error(), "translate[1]")
	})

	t.Run("unbound symbol in the numeric domain", func(t *testing.T) {
		doc := &chain.Document{Name: "bad", Links: []chain.Link{
			{Rotate: &chain.Rotate{Axis: []string{"0", "0", "1"}, Angle: "q1"}},
		}}
		_, err := chain.Build[float64](scalar.NewFloat(), doc)
		assert.ErrorIs(t, err, cas.ErrUnbound)
	})

	t.Run("invalid document", func(t *testing.T) {
		_, err := chain.Build[cas.Expr](sym, &chain.Document{Name: "empty"})
		assert.ErrorIs(t, err, chain.ErrInvalidDocument)
	})
}

func TestTwist(t *testing.T) {
	zero := quaternion.Zero[cas.Expr](sym)

	t.Run("revolute joint", func(t *testing.T) {
		d := dualquat.Rotation[cas.Expr](sym, [3]cas.Expr{cas.Num(0), cas.Num(0), cas.Num(1)}, cas.Sym("theta"))
		tw, err := chain.Twist[cas.Expr](sym, d, "theta")
		require.NoError(t, err)

		want := dualquat.Of(quaternion.New[cas.Expr](sym, cas.Num(0), cas.Num(0), cas.Num(0), cas.Num(1)), zero)
		assert.True(t, want.Equal(tw), "got %s", tw)
	})

	t.Run("prismatic joint", func(t *testing.T) {
		d := dualquat.Translation[cas.Expr](sym, [3]cas.Expr{cas.Num(0), cas.Num(0), cas.Sym("d")})
		tw, err := chain.Twist[cas.Expr](sym, d, "d")
		require.NoError(t, err)

		want := dualquat.Of(zero, quaternion.New[cas.Expr](sym, cas.Num(0), cas.Num(0), cas.Num(0), cas.Num(1)))
		assert.True(t, want.Equal(tw), "got %s", tw)
	})

	t.Run("dh link is a pure vector", func(t *testing.T) {
		s := cas.Symbols("theta", "d", "a", "alpha")
		d := chain.DHLink[cas.Expr](sym, s[0], s[1], s[2], s[3])
		tw, err := chain.Twist[cas.Expr](sym, d, "theta")
		require.NoError(t, err)

		assert.True(t, sym.Equal(cas.Num(0), tw.Real().A()), "real scalar part: %s", tw.Real().A())
		assert.True(t, sym.Equal(cas.Num(0), tw.Dual().A()), "dual scalar part: %s", tw.Dual().A())
	})

	t.Run("numeric domain", func(t *testing.T) {
		_, err := chain.Twist[float64](scalar.NewFloat(), dualquat.Identity[float64](scalar.NewFloat()), "theta")
		assert.ErrorIs(t, err, dualquat.ErrNotDifferentiable)
	})
}
