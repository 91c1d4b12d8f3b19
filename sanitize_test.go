package symdq_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/symdq"
)

func TestSanitizeExpression_SizeLimit(t *testing.T) {
	limit := symdq.DefaultMaxExpressionSize

	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"Under Limit", limit - 1, false},
		{"Exact Limit", limit, false},
		{"Over Limit", limit + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := symdq.SanitizeExpression(strings.Repeat("a", tt.size))
			if tt.wantErr {
				assert.ErrorIs(t, err, symdq.ErrExpressionTooLarge)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitizeExpression_ControlChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Normal", "cos(theta) + 1", "cos(theta) + 1"},
		{"Tab and newline", "a\t+\nb", "a + b"},
		{"ANSI Code", "\x1b[31mx", " [31mx"},
		{"Null Byte", "x\x00", "x "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := symdq.SanitizeExpression(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := symdq.SanitizeExpression("bad\xff")
	assert.ErrorIs(t, err, symdq.ErrInvalidUTF8)
}

func TestSanitizeExpression_EnvOverride(t *testing.T) {
	t.Setenv(symdq.EnvMaxExpressionSize, "10")

	_, err := symdq.SanitizeExpression("12345678901")
	assert.ErrorIs(t, err, symdq.ErrExpressionTooLarge)

	_, err = symdq.SanitizeExpression("12345")
	assert.NoError(t, err)
}

func TestEngine_RejectsOversizedExpressions(t *testing.T) {
	t.Setenv(symdq.EnvMaxExpressionSize, "8")
	eng := newEngine(t)

	_, err := eng.Screw(context.Background(), symdq.ScrewParams{
		L:     symdq.Vector3{"0", "0", "1"},
		Theta: "theta + theta",
	})
	assert.ErrorIs(t, err, symdq.ErrExpressionTooLarge)
	assert.ErrorIs(t, err, symdq.ErrInvalidInput)
}
