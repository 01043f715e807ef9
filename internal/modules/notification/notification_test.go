package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amardimiaty/storefront-backend/internal/platform/kv"
)

func TestManager_NewNotificationsStartInactive(t *testing.T) {
	ctx := context.Background()
	m := NewManager(kv.NewMemoryStore())

	n, err := m.Add(ctx, "Free shipping this week", "over $50")
	require.NoError(t, err)
	assert.False(t, n.Active)

	active, err := m.Active(ctx)
	require.NoError(t, err)
	assert.Empty(t, active, "inactive notifications must not surface")
}

func TestManager_ToggleControlsVisibility(t *testing.T) {
	ctx := context.Background()
	m := NewManager(kv.NewMemoryStore())

	a, err := m.Add(ctx, "Banner A", "")
	require.NoError(t, err)
	b, err := m.Add(ctx, "Banner B", "hot")
	require.NoError(t, err)

	_, err = m.Toggle(ctx, a.ID)
	require.NoError(t, err)
	_, err = m.Toggle(ctx, b.ID)
	require.NoError(t, err)

	active, err := m.Active(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 2, "multiple notifications can be active at once")

	_, err = m.Toggle(ctx, a.ID)
	require.NoError(t, err)
	active, err = m.Active(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, b.ID, active[0].ID)
}

func TestManager_UpdateAndRemove(t *testing.T) {
	ctx := context.Background()
	m := NewManager(kv.NewMemoryStore())

	n, err := m.Add(ctx, "old text", "")
	require.NoError(t, err)

	updated, err := m.Update(ctx, n.ID, "new text", "sale")
	require.NoError(t, err)
	assert.Equal(t, "new text", updated.Text)
	assert.Equal(t, "sale", updated.Highlight)

	require.NoError(t, m.Remove(ctx, n.ID))
	err = m.Remove(ctx, n.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = m.Toggle(ctx, "ghost")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestManager_StateSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	backing := kv.NewMemoryStore()

	m := NewManager(backing)
	n, err := m.Add(ctx, "persisted banner", "hi")
	require.NoError(t, err)
	_, err = m.Toggle(ctx, n.ID)
	require.NoError(t, err)
	require.NoError(t, m.SetColor(ctx, "#ff0000"))

	fresh := NewManager(backing)
	active, err := fresh.Active(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "persisted banner", active[0].Text)

	color, err := fresh.Color(ctx)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", color)
}

func TestManager_CorruptStateFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	backing := kv.NewMemoryStore()
	require.NoError(t, backing.Write(ctx, "admin:notifications", `][`))

	m := NewManager(backing)
	items, err := m.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	color, err := m.Color(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultColor, color)
}
