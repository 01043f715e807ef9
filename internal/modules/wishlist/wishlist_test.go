package wishlist

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amardimiaty/storefront-backend/internal/platform/kv"
	"github.com/amardimiaty/storefront-backend/internal/platform/pubsub"
)

func TestSet_AddIsIdempotent(t *testing.T) {
	s := NewSet()
	before := s.Count()

	assert.True(t, s.Add(Item{ProductID: "p1", Name: "Tee", Price: 19.99}))
	assert.Equal(t, before+1, s.Count())

	assert.False(t, s.Add(Item{ProductID: "p1", Name: "Tee", Price: 19.99}))
	assert.Equal(t, before+1, s.Count(), "re-adding the same identity must not grow the set")
}

func TestSet_RemoveMissingIsNoOp(t *testing.T) {
	s := NewSet()
	s.Add(Item{ProductID: "p1"})

	assert.False(t, s.Remove("ghost"))
	assert.Equal(t, 1, s.Count())

	assert.True(t, s.Remove("p1"))
	assert.Equal(t, 0, s.Count())
}

func TestSet_HasAndOrder(t *testing.T) {
	s := NewSet()
	s.Add(Item{ProductID: "p2"})
	s.Add(Item{ProductID: "p1"})
	s.Add(Item{ProductID: "p3"})

	assert.True(t, s.Has("p1"))
	assert.False(t, s.Has("p9"))

	var got []string
	for _, item := range s.Items() {
		got = append(got, item.ProductID)
	}
	assert.Equal(t, []string{"p2", "p1", "p3"}, got)
}

func TestSet_RestoreDeduplicates(t *testing.T) {
	s := NewSet()
	s.restore([]Item{
		{ProductID: "p1", Name: "first"},
		{ProductID: "p1", Name: "dup"},
		{ProductID: "p2"},
	})

	assert.Equal(t, 2, s.Count())
	assert.Equal(t, "first", s.Items()[0].Name)
}

func TestStore_HydratesOnceAndPersistsMutations(t *testing.T) {
	ctx := context.Background()
	backing := kv.NewMemoryStore()
	bus := pubsub.NewBus[ChangeEvent]()

	store := NewStore(backing, bus, "s1")
	require.NoError(t, store.Add(ctx, Item{ProductID: "p1", Name: "Tee", Price: 19.99}))

	reloaded := NewStore(backing, bus, "s1")
	items, err := reloaded.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)
}

func TestStore_CorruptStateFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	backing := kv.NewMemoryStore()
	require.NoError(t, backing.Write(ctx, "wishlist:s1", `<<not json>>`))

	store := NewStore(backing, pubsub.NewBus[ChangeEvent](), "s1")
	items, err := store.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStore_IdempotentAddSkipsWriteAndEvent(t *testing.T) {
	ctx := context.Background()
	bus := pubsub.NewBus[ChangeEvent]()
	store := NewStore(kv.NewMemoryStore(), bus, "s1")

	require.NoError(t, store.Add(ctx, Item{ProductID: "p1"}))

	events, cancel := bus.Subscribe()
	defer cancel()

	// Duplicate add mutates nothing and publishes nothing.
	require.NoError(t, store.Add(ctx, Item{ProductID: "p1"}))
	select {
	case <-events:
		t.Fatal("duplicate add must not publish a change event")
	case <-time.After(50 * time.Millisecond):
	}
}
