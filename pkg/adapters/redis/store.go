package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/symdq/pkg/chain"
	"github.com/aretw0/symdq/pkg/ports"
)

// DefaultPrefix namespaces every key the store writes.
const DefaultPrefix = "symdq:chain:"

// noExpiry is the index score of chains saved without a TTL (2100-01-01).
const noExpiry = 4102444800

// Store implements ports.ChainStore using Redis. Documents are stored as
// JSON strings; a sorted set indexes the names by expiry time.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for saved chains.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: DefaultPrefix,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(name string) string {
	return s.prefix + name
}

// indexKey contains a colon right after the prefix. Chain names cannot
// contain colons, so no chain key can collide with it.
func (s *Store) indexKey() string {
	return s.prefix + ":index"
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Save persists the document and records it in the index.
func (s *Store) Save(ctx context.Context, name string, doc *chain.Document) error {
	if err := ports.ValidateName(name); err != nil {
		return err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal chain: %w", err)
	}

	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = noExpiry
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(name), data, s.ttl)
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{Score: score, Member: name})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves the document stored under name.
func (s *Store) Load(ctx context.Context, name string) (*chain.Document, error) {
	if err := ports.ValidateName(name); err != nil {
		return nil, err
	}
	val, err := s.client.Get(ctx, s.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, ports.ErrChainNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var doc chain.Document
	if err := json.Unmarshal(val, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chain: %w", err)
	}
	return &doc, nil
}

// Delete removes the document and its index entry.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ports.ValidateName(name); err != nil {
		return err
	}
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(name))
	pipe.ZRem(ctx, s.indexKey(), name)
	_, err := pipe.Exec(ctx)
	return err
}

// List prunes expired index entries, then returns the remaining names.
func (s *Store) List(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())
	if err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err(); err != nil {
		return nil, fmt.Errorf("failed to prune expired chains: %w", err)
	}

	names, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list chains: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
