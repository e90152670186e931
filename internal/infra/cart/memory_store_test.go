package cart

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"skyvault/internal/domain/entity"
	domainerrors "skyvault/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(creatorID uuid.UUID) entity.CartItem {
	return entity.CartItem{
		ContentID: uuid.New(),
		CreatorID: creatorID,
		Title:     "Aerial clip",
		Price:     49.90,
		AddedAt:   time.Now(),
	}
}

func TestMemoryStore_GetEmptyCart(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	cart, err := store.Get(ctx, uuid.New())

	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.Empty(t, cart.Items)
}

func TestMemoryStore_AddItem(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	userID := uuid.New()
	item := newItem(uuid.New())

	cart, err := store.AddItem(ctx, userID, item)

	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, item.ContentID, cart.Items[0].ContentID)
	assert.Equal(t, item.Price, cart.Items[0].Price)
}

func TestMemoryStore_AddItem_Duplicate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	userID := uuid.New()
	item := newItem(uuid.New())

	_, err := store.AddItem(ctx, userID, item)
	require.NoError(t, err)

	cart, err := store.AddItem(ctx, userID, item)

	require.ErrorIs(t, err, domainerrors.ErrCartDuplicateItem)
	assert.Nil(t, cart)
}

func TestMemoryStore_AddItem_CreatorMismatch(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	userID := uuid.New()

	_, err := store.AddItem(ctx, userID, newItem(uuid.New()))
	require.NoError(t, err)

	cart, err := store.AddItem(ctx, userID, newItem(uuid.New()))

	require.ErrorIs(t, err, domainerrors.ErrCartCreatorMismatch)
	assert.Nil(t, cart)
}

func TestMemoryStore_AddItem_SameCreatorAccumulates(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	userID := uuid.New()
	creatorID := uuid.New()

	_, err := store.AddItem(ctx, userID, newItem(creatorID))
	require.NoError(t, err)

	cart, err := store.AddItem(ctx, userID, newItem(creatorID))

	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, creatorID, cart.CreatorID())
}

func TestMemoryStore_RemoveItem(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	userID := uuid.New()
	creatorID := uuid.New()
	first := newItem(creatorID)
	second := newItem(creatorID)

	_, err := store.AddItem(ctx, userID, first)
	require.NoError(t, err)
	_, err = store.AddItem(ctx, userID, second)
	require.NoError(t, err)

	cart, err := store.RemoveItem(ctx, userID, first.ContentID)

	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, second.ContentID, cart.Items[0].ContentID)
}

func TestMemoryStore_RemoveItem_AbsentIsNoop(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	userID := uuid.New()

	cart, err := store.RemoveItem(ctx, userID, uuid.New())

	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestMemoryStore_RemoveLastItemResetsCreatorLock(t *testing.T) {
	// After the cart is emptied, an item from a different creator must be
	// accepted again.
	store := NewMemoryStore()
	ctx := context.Background()
	userID := uuid.New()
	item := newItem(uuid.New())

	_, err := store.AddItem(ctx, userID, item)
	require.NoError(t, err)

	_, err = store.RemoveItem(ctx, userID, item.ContentID)
	require.NoError(t, err)

	cart, err := store.AddItem(ctx, userID, newItem(uuid.New()))

	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestMemoryStore_Clear(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	userID := uuid.New()

	_, err := store.AddItem(ctx, userID, newItem(uuid.New()))
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx, userID))

	cart, err := store.Get(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestMemoryStore_SnapshotIsolation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	userID := uuid.New()

	cart, err := store.AddItem(ctx, userID, newItem(uuid.New()))
	require.NoError(t, err)

	// Mutating the returned copy must not leak into the store.
	cart.Items[0].Title = "tampered"

	fresh, err := store.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Aerial clip", fresh.Items[0].Title)
}

func TestMemoryStore_ConcurrentUsers(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	const users = 16
	const itemsPerUser = 8

	userIDs := make([]uuid.UUID, users)
	for i := range userIDs {
		userIDs[i] = uuid.New()
	}

	var wg sync.WaitGroup
	for i := range userIDs {
		wg.Add(1)
		go func(userID uuid.UUID, seed int) {
			defer wg.Done()

			creatorID := uuid.New()
			for j := 0; j < itemsPerUser; j++ {
				item := newItem(creatorID)
				item.Title = fmt.Sprintf("clip-%d-%d", seed, j)
				if _, err := store.AddItem(ctx, userID, item); err != nil {
					t.Errorf("AddItem: %v", err)
				}
			}
		}(userIDs[i], i)
	}
	wg.Wait()

	for _, userID := range userIDs {
		cart, err := store.Get(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, cart.Items, itemsPerUser)
	}
}
