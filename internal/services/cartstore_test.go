package services

import (
	"testing"

	"ticket-storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartStore_ScopedPerSession(t *testing.T) {
	store := NewCartStore()

	a := store.GetOrCreate("sess-a", "evt-1")
	b := store.GetOrCreate("sess-b", "evt-1")

	require.NoError(t, a.AddOrMerge(models.TicketType{ID: "tt-1", EventID: "evt-1", Price: 100}, 1))
	assert.True(t, b.IsEmpty(), "carts must not leak between sessions")
	assert.Same(t, a, store.Get("sess-a"))
}

func TestCartStore_ReplacedWhenEventChanges(t *testing.T) {
	store := NewCartStore()

	a := store.GetOrCreate("sess-a", "evt-1")
	require.NoError(t, a.AddOrMerge(models.TicketType{ID: "tt-1", EventID: "evt-1", Price: 100}, 2))

	// Browsing to a different event's page starts over: one cart, one event
	b := store.GetOrCreate("sess-a", "evt-2")
	assert.NotSame(t, a, b)
	assert.True(t, b.IsEmpty())
	assert.Equal(t, "evt-2", b.EventID())
}

func TestCartStore_GetUnknownKeyReturnsNil(t *testing.T) {
	store := NewCartStore()
	assert.Nil(t, store.Get("nope"))
}

func TestCartStore_Delete(t *testing.T) {
	store := NewCartStore()
	store.GetOrCreate("sess-a", "evt-1")
	store.Delete("sess-a")
	assert.Nil(t, store.Get("sess-a"))
}
