package symdq

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/symdq/pkg/chain"
)

var (
	// DefaultMaxExpressionSize bounds a single expression in bytes.
	DefaultMaxExpressionSize = 4096
	// EnvMaxExpressionSize overrides DefaultMaxExpressionSize.
	EnvMaxExpressionSize = "SYMDQ_MAX_EXPRESSION_SIZE"
)

var (
	ErrExpressionTooLarge = errors.New("expression exceeds maximum allowed size")
	ErrInvalidUTF8        = errors.New("expression contains invalid UTF-8 sequences")
)

// SanitizeExpression enforces the size limit, validates UTF-8 and replaces
// control characters with spaces.
func SanitizeExpression(s string) (string, error) {
	limit := maxExpressionSize()
	if len(s) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrExpressionTooLarge, len(s), limit)
	}
	if !utf8.ValidString(s) {
		return "", ErrInvalidUTF8
	}

	clean := true
	for _, r := range s {
		if unicode.IsControl(r) {
			clean = false
			break
		}
	}
	if clean {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsControl(r) {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// sanitizeDocument runs SanitizeExpression over every expression of doc.
func sanitizeDocument(doc *chain.Document) (*chain.Document, error) {
	return doc.MapExpressions(func(field, s string) (string, error) {
		clean, err := SanitizeExpression(s)
		if err != nil {
			return "", &InputError{Field: field, Err: err}
		}
		return clean, nil
	})
}

func maxExpressionSize() int {
	if val := os.Getenv(EnvMaxExpressionSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxExpressionSize
}
