package ports

import (
	"context"

	"github.com/aretw0/symdq/pkg/chain"
)

// ChainStore persists named chain documents.
type ChainStore interface {
	// Save stores doc under name, replacing any previous document.
	Save(ctx context.Context, name string, doc *chain.Document) error

	// Load retrieves the document stored under name.
	// Returns ErrChainNotFound if there is none.
	Load(ctx context.Context, name string) (*chain.Document, error)

	// Delete removes the document. Deleting a missing name is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the stored names in ascending order.
	List(ctx context.Context) ([]string, error)
}
