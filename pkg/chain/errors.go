package chain

import (
	"errors"
	"fmt"
)

// ErrInvalidDocument is wrapped by every ValidationError.
var ErrInvalidDocument = errors.New("invalid chain document")

// ValidationError names the link and field a document was rejected for.
// Link is -1 for document-level fields.
type ValidationError struct {
	Link   int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Link < 0 {
		return fmt.Sprintf("chain: field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("chain: link %d: field %q: %s", e.Link, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidDocument }
