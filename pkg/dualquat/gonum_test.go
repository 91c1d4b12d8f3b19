package dualquat_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gdq "gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"

	"github.com/aretw0/symdq/pkg/dualquat"
	"github.com/aretw0/symdq/pkg/scalar"
)

var (
	num = scalar.NewFloat(scalar.WithTolerance(1e-12))

	g1 = gdq.Number{
		Real: quat.Number{Real: 1, Imag: 2, Jmag: -3, Kmag: 0.5},
		Dual: quat.Number{Real: -0.25, Imag: 4, Jmag: 1, Kmag: 2},
	}
	g2 = gdq.Number{
		Real: quat.Number{Real: 0.5, Imag: -1, Jmag: 2, Kmag: 3},
		Dual: quat.Number{Real: 1.5, Imag: 0, Jmag: -2, Kmag: 1},
	}
)

func assertGonum(t *testing.T, want gdq.Number, got dualquat.DualQuaternion[float64]) {
	t.Helper()
	assert.True(t, dualquat.FromGonum(num, want).Equal(got), "want %v\n got %s", want, got)
}

func TestGonumRoundTrip(t *testing.T) {
	d := dualquat.FromGonum(num, g1)
	assert.Equal(t, g1, dualquat.ToGonum(d))
}

func TestGonumAgreement(t *testing.T) {
	d1, d2 := dualquat.FromGonum(num, g1), dualquat.FromGonum(num, g2)

	assertGonum(t, gdq.Add(g1, g2), d1.Add(d2))
	assertGonum(t, gdq.Sub(g1, g2), d1.Sub(d2))
	assertGonum(t, gdq.Mul(g1, g2), d1.Mul(d2))
	assertGonum(t, gdq.Mul(g2, g1), d2.Mul(d1))
	assertGonum(t, gdq.Scale(3, g1), d1.Scale(3))

	assertGonum(t, gdq.ConjQuat(g1), d1.QuaternionConjugate())
	assertGonum(t, gdq.ConjDual(g1), d1.DualNumberConjugate())
	assertGonum(t, gdq.Conj(g1), d1.CombinedConjugate())
}

func TestGonumTransform(t *testing.T) {
	d, err := dualquat.FromScrew[float64](num, [3]float64{0, 0, 1}, [3]float64{0, -1, 0}, math.Pi/3, 0.5)
	require.NoError(t, err)

	p := [3]float64{0.3, -2, 1}
	got := dualquat.TransformPoint(p, d)

	g := dualquat.ToGonum(d)
	gp := gdq.Number{Real: quat.Number{Real: 1}, Dual: quat.Number{Imag: p[0], Jmag: p[1], Kmag: p[2]}}
	want := gdq.Mul(gdq.Mul(g, gp), gdq.Conj(g)).Dual
	assert.InDeltaSlice(t, []float64{want.Imag, want.Jmag, want.Kmag}, got[:], 1e-12)
}

func TestMat4(t *testing.T) {
	d, err := dualquat.FromScrew[float64](num, [3]float64{0, 1, 0}, [3]float64{1, 0, 0}, 1.2, -0.7)
	require.NoError(t, err)

	p := [3]float64{1.5, 0.25, -3}
	want := dualquat.TransformPoint(p, d)

	got := dualquat.Mat4(d).Mul4x1(mgl64.Vec4{p[0], p[1], p[2], 1})
	assert.InDeltaSlice(t, want[:], []float64{got.X(), got.Y(), got.Z()}, 1e-12)
	assert.InDelta(t, 1, got.W(), 1e-12)
}
