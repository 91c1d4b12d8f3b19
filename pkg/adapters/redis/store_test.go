package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/symdq/pkg/adapters/redis"
	"github.com/aretw0/symdq/pkg/chain"
	"github.com/aretw0/symdq/pkg/ports"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func sampleDoc() *chain.Document {
	return &chain.Document{
		Name:  "arm",
		Links: []chain.Link{{Rotate: &chain.Rotate{Axis: []string{"0", "0", "1"}, Angle: "theta"}}},
	}
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newClient(t)
	store := redis.NewFromClient(client)
	ports.RunChainStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newClient(t)

	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "arm", sampleDoc()))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, "arm")

	// Key expiry is driven by miniredis' clock.
	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "arm")
	assert.ErrorIs(t, err, ports.ErrChainNotFound)

	// Index pruning uses the wall clock.
	time.Sleep(1200 * time.Millisecond)

	names, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newClient(t)

	store := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "my-chain", sampleDoc()))

	assert.True(t, mr.Exists("custom:app:my-chain"), "Expected key with custom prefix to exist")
	assert.True(t, mr.Exists("custom:app::index"), "Expected index with custom prefix to exist")

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"my-chain"}, names)
}

func TestRedisStore_IndexNameIsAChain(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a", sampleDoc()))
	require.NoError(t, store.Save(ctx, "index", sampleDoc()))

	assert.True(t, mr.Exists(redis.DefaultPrefix+"index"))
	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "index"}, names)

	require.NoError(t, store.Delete(ctx, "index"))
	names, err = store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, names)

	assert.ErrorIs(t, store.Delete(ctx, ":index"), ports.ErrInvalidName)
}

func TestRedisStore_Ping(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	store := redis.New(mr.Addr(), "", 0)
	defer store.Close()

	assert.NoError(t, store.Ping(context.Background()))

	mr.Close()
	assert.Error(t, store.Ping(context.Background()))
}

func TestRedisStore_CorruptValue(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client)

	require.NoError(t, mr.Set(redis.DefaultPrefix+"broken", "{not json"))

	_, err := store.Load(context.Background(), "broken")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrChainNotFound)
}
