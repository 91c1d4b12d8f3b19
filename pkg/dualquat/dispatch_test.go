package dualquat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/symdq/pkg/cas"
	"github.com/aretw0/symdq/pkg/dualquat"
	"github.com/aretw0/symdq/pkg/quaternion"
	"github.com/aretw0/symdq/pkg/scalar"
)

func mustDual(t *testing.T) func(dualquat.Operand[expr], error) dq {
	return func(o dualquat.Operand[expr], err error) dq {
		t.Helper()
		require.NoError(t, err)
		d, ok := o.DualQuaternion()
		require.True(t, ok, "expected a dual quaternion, got %s", o.Kind())
		return d
	}
}

func TestAlgebraClassify(t *testing.T) {
	alg := dualquat.NewAlgebra[expr](sym)

	tests := []struct {
		name string
		in   any
		want dualquat.Kind
	}{
		{"dual quaternion", dualquat.Of(q1, q2), dualquat.KindDual},
		{"quaternion", q1, dualquat.KindQuaternion},
		{"expression", cas.Sym("a"), dualquat.KindScalar},
		{"int", 3, dualquat.KindScalar},
		{"float", 0.25, dualquat.KindScalar},
		{"operand", dualquat.QuaternionOperand(q2), dualquat.KindQuaternion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := alg.Classify(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, o.Kind())
		})
	}

	_, err := alg.Classify("a")
	assert.ErrorIs(t, err, dualquat.ErrOperand)

	_, err = alg.Classify(quaternion.One[float64](scalar.NewFloat()))
	assert.ErrorIs(t, err, dualquat.ErrOperand)

	_, err = alg.Classify(dualquat.Operand[expr]{})
	assert.ErrorIs(t, err, dualquat.ErrOperand)
}

func TestAlgebraAdd(t *testing.T) {
	alg := dualquat.NewAlgebra[expr](sym)
	d := dualquat.Of(q1, q2)

	t.Run("scalar from either side", func(t *testing.T) {
		left := mustDual(t)(alg.Add(1, d))
		right := mustDual(t)(alg.Add(d, 1))
		assert.True(t, left.Equal(right))
		assertQuat(t, q("a + 1", "b", "c", "d"), left.Real())
		assertQuat(t, q2, left.Dual())
	})

	t.Run("quaternion from either side", func(t *testing.T) {
		left := mustDual(t)(alg.Add(q3, d))
		right := mustDual(t)(alg.Add(d, q3))
		assert.True(t, left.Equal(right))
		assertQuat(t, q1.Add(q3), left.Real())
		assertQuat(t, q2, left.Dual())
	})

	t.Run("two dual quaternions", func(t *testing.T) {
		got := mustDual(t)(alg.Add(d, dualquat.Of(q3, q4)))
		assert.True(t, got.Equal(d.Add(dualquat.Of(q3, q4))))
	})

	t.Run("without dual operands", func(t *testing.T) {
		o, err := alg.Add(q1, 2)
		require.NoError(t, err)
		got, ok := o.Quaternion()
		require.True(t, ok)
		assertQuat(t, q("a + 2", "b", "c", "d"), got)

		o, err = alg.Add(cas.Sym("a"), cas.Sym("b"))
		require.NoError(t, err)
		s, ok := o.Scalar()
		require.True(t, ok)
		assert.True(t, sym.Equal(cas.MustParse("a + b"), s))
	})

	t.Run("rejects unsupported operands", func(t *testing.T) {
		_, err := alg.Add(d, "x")
		require.ErrorIs(t, err, dualquat.ErrOperand)

		var opErr *dualquat.OperandError
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, "add", opErr.Op)
		assert.Equal(t, "x", opErr.Value)
		assert.Contains(t, opErr.Error(), "cannot be added")
	})
}

func TestAlgebraSub(t *testing.T) {
	alg := dualquat.NewAlgebra[expr](sym)
	d1, d2 := dualquat.Of(q1, q2), dualquat.Of(q3, q4)

	got := mustDual(t)(alg.Sub(d1, d2))
	assert.True(t, got.Equal(d1.Sub(d2)))

	got = mustDual(t)(alg.Sub(1, d1))
	assertQuat(t, qs("1").Sub(q1), got.Real())
	assertQuat(t, q2.Neg(), got.Dual())

	got = mustDual(t)(alg.Sub(d1, q3))
	assertQuat(t, q1.Sub(q3), got.Real())
	assertQuat(t, q2, got.Dual())

	_, err := alg.Sub(d1, []int{1})
	assert.ErrorIs(t, err, dualquat.ErrOperand)
}

func TestAlgebraMul(t *testing.T) {
	alg := dualquat.NewAlgebra[expr](sym)
	d1, d2 := dualquat.Of(q1, q2), dualquat.Of(q3, q4)

	t.Run("dual quaternions", func(t *testing.T) {
		got := mustDual(t)(alg.Mul(d1, d2))
		assert.True(t, got.Equal(d1.Mul(d2)))
	})

	t.Run("scalars commute", func(t *testing.T) {
		k := cas.Sym("k")
		left := mustDual(t)(alg.Mul(k, d1))
		right := mustDual(t)(alg.Mul(d1, k))
		assert.True(t, left.Equal(right))
		assert.True(t, left.Equal(d1.Scale(k)))
	})

	t.Run("quaternions keep their side", func(t *testing.T) {
		left := mustDual(t)(alg.Mul(q3, d1))
		assertQuat(t, q3.Mul(q1), left.Real())
		assertQuat(t, q3.Mul(q2), left.Dual())

		right := mustDual(t)(alg.Mul(d1, q3))
		assertQuat(t, q1.Mul(q3), right.Real())
		assertQuat(t, q2.Mul(q3), right.Dual())

		assert.False(t, left.Equal(right))
	})

	t.Run("promotion matches the dual rule", func(t *testing.T) {
		viaPromotion := mustDual(t)(alg.Mul(q3, d1))
		assert.True(t, viaPromotion.Equal(dualquat.Of(q3, qs("0")).Mul(d1)))
	})

	t.Run("without dual operands", func(t *testing.T) {
		o, err := alg.Mul(q1, q2)
		require.NoError(t, err)
		got, ok := o.Quaternion()
		require.True(t, ok)
		assertQuat(t, q1.Mul(q2), got)

		o, err = alg.Mul(2, q1)
		require.NoError(t, err)
		got, ok = o.Quaternion()
		require.True(t, ok)
		assertQuat(t, q1.Scale(cas.Num(2)), got)

		o, err = alg.Mul(2, 3)
		require.NoError(t, err)
		s, ok := o.Scalar()
		require.True(t, ok)
		assert.True(t, sym.Equal(cas.Num(6), s))
	})

	t.Run("rejects unsupported operands", func(t *testing.T) {
		_, err := alg.Mul(map[string]int{}, d1)
		var opErr *dualquat.OperandError
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, "multiply", opErr.Op)
		assert.Contains(t, opErr.Error(), "cannot be multiplied")
	})
}

func TestAlgebra_RejectsZeroValues(t *testing.T) {
	alg := dualquat.NewAlgebra[expr](sym)

	tests := []struct {
		name string
		in   any
	}{
		{"dual quaternion", dualquat.DualQuaternion[expr]{}},
		{"dual with zero parts", dualquat.Of(quaternion.Quaternion[expr]{}, q1)},
		{"quaternion", quaternion.Quaternion[expr]{}},
		{"operand", dualquat.Operand[expr]{}},
		{"wrapped dual", dualquat.DualOperand(dualquat.DualQuaternion[expr]{})},
		{"wrapped quaternion", dualquat.QuaternionOperand(quaternion.Quaternion[expr]{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := alg.Classify(tt.in)
			assert.ErrorIs(t, err, dualquat.ErrOperand)

			_, err = alg.Add(tt.in, 1)
			var opErr *dualquat.OperandError
			require.ErrorAs(t, err, &opErr)
			assert.Equal(t, "add", opErr.Op)

			_, err = alg.Mul(dualquat.Of(q1, q2), tt.in)
			require.ErrorAs(t, err, &opErr)
			assert.Equal(t, "multiply", opErr.Op)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "scalar", dualquat.KindScalar.String())
	assert.Equal(t, "quaternion", dualquat.KindQuaternion.String())
	assert.Equal(t, "dual quaternion", dualquat.KindDual.String())
	assert.Equal(t, "Kind(9)", dualquat.Kind(9).String())
}
