package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/aretw0/symdq/pkg/chain"
	"github.com/aretw0/symdq/pkg/ports"
)

const ext = ".yaml"

// DefaultPath is the store directory used when New is given none.
var DefaultPath = filepath.Join(".symdq", "chains")

// Store implements ports.ChainStore using the local filesystem.
// It stores chains as YAML files in a configured directory.
type Store struct {
	BasePath string

	mu sync.Mutex
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to DefaultPath.
func New(basePath string) *Store {
	if basePath == "" {
		basePath = DefaultPath
	}
	return &Store{BasePath: basePath}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.BasePath, name+ext)
}

// Save writes the chain document atomically: to a temporary file first,
// fsynced, then renamed over the destination.
func (s *Store) Save(ctx context.Context, name string, doc *chain.Document) error {
	if err := ports.ValidateName(name); err != nil {
		return err
	}
	data, err := doc.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal chain: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.BasePath, 0o755); err != nil {
		return fmt.Errorf("failed to ensure chain directory: %w", err)
	}

	// Same directory as the destination so the rename stays on one filesystem.
	// The .tmp extension keeps it out of List.
	tmpFile, err := os.CreateTemp(s.BasePath, "."+name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Windows cannot rename an open file.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	destPath := s.path(name)
	// os.Rename fails on Windows when the destination exists.
	if _, err := os.Stat(destPath); err == nil {
		if err := os.Remove(destPath); err != nil {
			return fmt.Errorf("failed to remove existing chain file for overwrite: %w", err)
		}
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Load reads and validates the chain document stored under name.
func (s *Store) Load(ctx context.Context, name string) (*chain.Document, error) {
	if err := ports.ValidateName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ports.ErrChainNotFound
		}
		return nil, fmt.Errorf("failed to read chain file: %w", err)
	}

	doc, err := chain.ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("chain file %s: %w", s.path(name), err)
	}
	return doc, nil
}

// Delete removes the chain file.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ports.ValidateName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete chain file: %w", err)
	}
	return nil
}

// List returns the names of all stored chains.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list chains: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		n := entry.Name()
		if entry.IsDir() || filepath.Ext(n) != ext {
			continue
		}
		names = append(names, strings.TrimSuffix(n, ext))
	}
	sort.Strings(names)
	return names, nil
}
