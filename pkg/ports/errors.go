package ports

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrChainNotFound is returned by ChainStore.Load for unknown names.
	ErrChainNotFound = errors.New("chain not found")

	// ErrInvalidName is returned for names a store cannot key by.
	ErrInvalidName = errors.New("invalid chain name")
)

// ValidateName rejects empty names and names that would escape a
// directory or key namespace.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if strings.ContainsAny(name, `/\:`) || name == "." || name == ".." || strings.TrimSpace(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
