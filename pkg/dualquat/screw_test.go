package dualquat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/symdq/pkg/cas"
	"github.com/aretw0/symdq/pkg/dualquat"
	"github.com/aretw0/symdq/pkg/scalar"
)

func vec(a, b, c string) [3]expr {
	return [3]expr{cas.MustParse(a), cas.MustParse(b), cas.MustParse(c)}
}

func TestFromScrew(t *testing.T) {
	theta, x := cas.Sym("theta"), cas.Sym("x")

	t.Run("rotation about an offset z axis", func(t *testing.T) {
		d, err := dualquat.FromScrew[expr](sym, vec("0", "0", "1"), vec("0", "-x", "0"), theta, cas.Num(0))
		require.NoError(t, err)

		assertQuat(t, q("cos(1/2*theta)", "0", "0", "sin(1/2*theta)"), d.Real())
		assertQuat(t, q("0", "0", "-x*sin(1/2*theta)", "0"), d.Dual())
		assert.True(t, d.IsUnit())
	})

	t.Run("screw with translation", func(t *testing.T) {
		d, err := dualquat.FromScrew[expr](sym, vec("1", "0", "0"), vec("0", "0", "0"), theta, cas.Sym("h"))
		require.NoError(t, err)

		assertQuat(t, q("-1/2*h*sin(1/2*theta)", "1/2*h*cos(1/2*theta)", "0", "0"), d.Dual())
		assert.True(t, d.IsUnit())
	})

	t.Run("screw value type", func(t *testing.T) {
		s := dualquat.Screw[expr]{L: vec("0", "0", "1"), M: vec("0", "-x", "0"), Theta: theta, D: cas.Num(0)}
		d, err := s.DualQuaternion(sym)
		require.NoError(t, err)
		want, err := dualquat.FromScrew[expr](sym, s.L, s.M, s.Theta, s.D)
		require.NoError(t, err)
		assert.True(t, want.Equal(d))
	})

	t.Run("rejects a non-unit axis", func(t *testing.T) {
		_, err := dualquat.FromScrew[expr](sym, vec("0", "0", "2"), vec("0", "0", "0"), theta, cas.Num(0))
		require.ErrorIs(t, err, dualquat.ErrInvalidScrew)

		var screwErr *dualquat.ScrewError
		require.ErrorAs(t, err, &screwErr)
		assert.Equal(t, dualquat.ConstraintUnitAxis, screwErr.Constraint)
		assert.Equal(t, "4", screwErr.Value)
	})

	t.Run("rejects a moment along the axis", func(t *testing.T) {
		_, err := dualquat.FromScrew[expr](sym, vec("0", "0", "1"), vec("0", "0", "x"), theta, cas.Num(0))
		require.ErrorIs(t, err, dualquat.ErrInvalidScrew)

		var screwErr *dualquat.ScrewError
		require.ErrorAs(t, err, &screwErr)
		assert.Equal(t, dualquat.ConstraintOrthogonalMoment, screwErr.Constraint)
		assert.Equal(t, x.String(), screwErr.Value)
	})

	t.Run("accepts an axis that is unit after trigonometric reduction", func(t *testing.T) {
		_, err := dualquat.FromScrew[expr](sym, vec("cos(phi)", "sin(phi)", "0"), vec("0", "0", "0"), theta, cas.Num(0))
		assert.NoError(t, err)
	})

	t.Run("rejects an axis with free symbols", func(t *testing.T) {
		_, err := dualquat.FromScrew[expr](sym, vec("u", "0", "0"), vec("0", "0", "0"), theta, cas.Num(0))
		assert.ErrorIs(t, err, dualquat.ErrInvalidScrew)
	})
}

func TestNorm(t *testing.T) {
	d := dualquat.Of(q("0", "0", "0", "1"), q("0", "0", "-x", "0"))

	n := d.Norm()
	assertQuat(t, qs("1"), n.Real())
	assertQuat(t, qs("0"), n.Dual())
	assert.True(t, d.IsUnit())

	general := dualquat.Of(q1, q2)
	assert.False(t, general.IsUnit())
	assertQuat(t, q1.Mul(q1.Conjugate()), general.Norm().Real())
}

func TestIsUnit(t *testing.T) {
	assert.True(t, dualquat.Identity[expr](sym).IsUnit())
	assert.False(t, dualquat.Zero[expr](sym).IsUnit())
	assert.False(t, dualquat.MustNew[expr](sym, 2).IsUnit())

	theta := cas.Sym("theta")
	rot := dualquat.Rotation[expr](sym, vec("0", "1", "0"), theta)
	assert.True(t, rot.IsUnit())

	motion := rot.Mul(dualquat.Translation[expr](sym, vec("a", "b", "c")))
	assert.True(t, motion.IsUnit())
}

func TestRotationComposition(t *testing.T) {
	theta := cas.Sym("theta")
	axis := vec("0", "0", "1")
	rot := dualquat.Rotation[expr](sym, axis, theta)

	twice := rot.Mul(rot).TrigSimplify()
	assert.True(t, twice.Equal(dualquat.Rotation[expr](sym, axis, cas.Num(2).Mul(theta))), "got %s", twice)
	assert.True(t, twice.IsUnit())
	assert.False(t, twice.Equal(rot))
}

func TestTransformPoint(t *testing.T) {
	t.Run("identity leaves points fixed", func(t *testing.T) {
		p := vec("a", "b", "c")
		got := dualquat.TransformPoint(p, dualquat.Identity[expr](sym))
		for i := range p {
			assert.True(t, sym.Equal(p[i], got[i]), "component %d: %s", i, got[i])
		}
	})

	t.Run("translation adds the offset", func(t *testing.T) {
		p := vec("a", "b", "c")
		got := dualquat.TransformPoint(p, dualquat.Translation[expr](sym, vec("x", "y", "z")))
		want := vec("a + x", "b + y", "c + z")
		for i := range want {
			assert.True(t, sym.Equal(want[i], got[i]), "component %d: %s", i, got[i])
		}
	})

	t.Run("rotation about an offset axis", func(t *testing.T) {
		d, err := dualquat.FromScrew[expr](sym, vec("0", "0", "1"), vec("0", "-x", "0"), cas.MustParse("theta"), cas.Num(0))
		require.NoError(t, err)

		got := dualquat.TransformPoint(vec("x", "0", "0"), d)
		for i, want := range vec("x", "0", "0") {
			assert.True(t, sym.Equal(want, sym.TrigSimplify(got[i])), "component %d: %s", i, got[i])
		}
	})

	t.Run("numeric quarter turn", func(t *testing.T) {
		num := scalar.NewFloat()
		d, err := dualquat.FromScrew[float64](num, [3]float64{0, 0, 1}, [3]float64{}, math.Pi/2, 2)
		require.NoError(t, err)

		got := dualquat.TransformPoint([3]float64{1, 0, 0}, d)
		assert.InDeltaSlice(t, []float64{0, 1, 2}, got[:], 1e-12)
	})

	t.Run("numeric half turn about an offset axis", func(t *testing.T) {
		num := scalar.NewFloat()
		d, err := dualquat.FromScrew[float64](num, [3]float64{0, 0, 1}, [3]float64{0, -1, 0}, math.Pi, 0)
		require.NoError(t, err)

		got := dualquat.TransformPoint([3]float64{}, d)
		assert.InDeltaSlice(t, []float64{2, 0, 0}, got[:], 1e-12)
	})
}

func TestExport(t *testing.T) {
	num := scalar.NewFloat()
	d, err := dualquat.FromScrew[float64](num, [3]float64{0, 0, 1}, [3]float64{0, -1, 0}, math.Pi, 0)
	require.NoError(t, err)

	tv := d.TranslationVector()
	assert.InDeltaSlice(t, []float64{2, 0, 0}, tv[:], 1e-12)

	m := d.RotationMatrix()
	assert.InDelta(t, -1, m[0][0], 1e-12)
	assert.InDelta(t, -1, m[1][1], 1e-12)
	assert.InDelta(t, 1, m[2][2], 1e-12)
}
