package symdq

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDomain is returned for domain names other than "symbolic"
	// and "numeric".
	ErrUnknownDomain = errors.New("unknown scalar domain")

	// ErrInvalidInput is wrapped by InputError.
	ErrInvalidInput = errors.New("invalid input")
)

// InputError reports a request field that could not be parsed in the
// selected domain.
type InputError struct {
	Field string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

// Unwrap exposes both ErrInvalidInput and the parse error.
func (e *InputError) Unwrap() []error { return []error{ErrInvalidInput, e.Err} }
