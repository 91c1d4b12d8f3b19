package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/symdq/pkg/chain"
	"github.com/aretw0/symdq/pkg/ports"
)

// Store implements ports.ChainStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*chain.Document
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*chain.Document),
	}
}

// NewFromDocuments creates a store seeded with docs, keyed by their names.
func NewFromDocuments(docs ...*chain.Document) (*Store, error) {
	s := NewStore()
	for _, d := range docs {
		if err := ports.ValidateName(d.Name); err != nil {
			return nil, fmt.Errorf("seed document: %w", err)
		}
		s.data[d.Name] = d.Clone()
	}
	return s, nil
}

// Save stores a copy of doc.
func (s *Store) Save(ctx context.Context, name string, doc *chain.Document) error {
	if err := ports.ValidateName(name); err != nil {
		return err
	}
	copied := doc.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = copied
	return nil
}

// Load returns a copy so callers cannot mutate stored documents.
func (s *Store) Load(ctx context.Context, name string) (*chain.Document, error) {
	if err := ports.ValidateName(name); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.data[name]
	if !ok {
		return nil, ports.ErrChainNotFound
	}
	return doc.Clone(), nil
}

// Delete removes the document.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns the stored names, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
