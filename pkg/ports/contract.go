package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/symdq/pkg/chain"
)

// RunChainStoreContract runs a suite of tests to verify that a ChainStore
// implementation adheres to the defined interface contract.
func RunChainStoreContract(t *testing.T, store ChainStore) {
	ctx := context.Background()
	name := "contract-chain-" + time.Now().Format("20060102150405")

	newDoc := func(angle string) *chain.Document {
		return &chain.Document{
			Name:     name,
			Domain:   chain.DomainSymbolic,
			Bindings: map[string]float64{"l1": 0.5},
			Links: []chain.Link{
				{DH: &chain.DH{Theta: "theta1", D: "0", A: "l1", Alpha: "0"}},
				{Rotate: &chain.Rotate{Axis: []string{"0", "0", "1"}, Angle: angle}},
				{Translate: []string{"tx", "0", "0"}},
			},
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		doc := newDoc("phi")
		require.NoError(t, store.Save(ctx, name, doc), "Save should not return error")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, doc, loaded)
	})

	t.Run("Save overwrites", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, newDoc("psi")))

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, "psi", loaded.Links[1].Rotate.Angle)
	})

	t.Run("Load returns a copy", func(t *testing.T) {
		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		loaded.Links[0].DH.Theta = "mutated"

		again, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, "theta1", again.Links[0].DH.Theta)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, ErrChainNotFound)
	})

	t.Run("Invalid Name", func(t *testing.T) {
		assert.ErrorIs(t, store.Save(ctx, "../escape", newDoc("phi")), ErrInvalidName)
		_, err := store.Load(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, newDoc("phi")))

		require.NoError(t, store.Delete(ctx, name), "Delete should not return error")

		_, err := store.Load(ctx, name)
		assert.ErrorIs(t, err, ErrChainNotFound, "Load after Delete should return ErrChainNotFound")

		assert.NoError(t, store.Delete(ctx, name), "Delete of a missing chain should not fail")
	})

	t.Run("Names that look like store internals", func(t *testing.T) {
		reserved := []string{"index", "__index", "meta", "tmp-" + name}
		for _, n := range reserved {
			require.NoError(t, store.Save(ctx, n, newDoc("phi")), "Save %q", n)
		}
		defer func() {
			for _, n := range reserved {
				_ = store.Delete(ctx, n)
			}
		}()

		names, err := store.List(ctx)
		require.NoError(t, err, "List must survive chains named like internal keys")
		for _, n := range reserved {
			assert.Contains(t, names, n)
			loaded, err := store.Load(ctx, n)
			require.NoError(t, err, "Load %q", n)
			assert.Equal(t, "phi", loaded.Links[1].Rotate.Angle)
		}
	})

	t.Run("List", func(t *testing.T) {
		id1 := name + "-b"
		id2 := name + "-a"
		require.NoError(t, store.Save(ctx, id1, newDoc("phi")))
		require.NoError(t, store.Save(ctx, id2, newDoc("phi")))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, id1)
		assert.Contains(t, names, id2)
		assert.IsNonDecreasing(t, names)
	})
}
