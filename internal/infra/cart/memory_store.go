// Package cart provides the in-memory cart store. Carts never outlive the
// process; checkout re-validates everything against the database anyway.
package cart

import (
	"context"
	"sync"

	"skyvault/internal/domain/entity"
	domainerrors "skyvault/internal/domain/errors"
	"skyvault/internal/domain/repository"

	"github.com/google/uuid"
)

// memoryStore implements repository.CartStore with a map guarded by a
// single RWMutex. Cart traffic is light enough that sharding would be
// premature.
type memoryStore struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*entity.Cart
}

// NewMemoryStore is the constructor for memoryStore.
func NewMemoryStore() repository.CartStore {
	return &memoryStore{
		carts: make(map[uuid.UUID]*entity.Cart),
	}
}

// Get returns a copy of the user's cart.
func (s *memoryStore) Get(_ context.Context, userID uuid.UUID) (*entity.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot(userID), nil
}

// AddItem appends an item, enforcing the single-creator invariant.
func (s *memoryStore) AddItem(_ context.Context, userID uuid.UUID, item entity.CartItem) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		cart = &entity.Cart{UserID: userID}
		s.carts[userID] = cart
	}

	if cart.Contains(item.ContentID) {
		return nil, domainerrors.ErrCartDuplicateItem
	}
	if len(cart.Items) > 0 && cart.CreatorID() != item.CreatorID {
		return nil, domainerrors.ErrCartCreatorMismatch
	}

	cart.Items = append(cart.Items, item)

	return s.snapshot(userID), nil
}

// RemoveItem deletes one item. Removing an absent item is a no-op.
func (s *memoryStore) RemoveItem(_ context.Context, userID uuid.UUID, contentID uuid.UUID) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if ok {
		items := cart.Items[:0]
		for _, item := range cart.Items {
			if item.ContentID != contentID {
				items = append(items, item)
			}
		}
		cart.Items = items
		if len(cart.Items) == 0 {
			delete(s.carts, userID)
		}
	}

	return s.snapshot(userID), nil
}

// Clear empties the user's cart.
func (s *memoryStore) Clear(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)

	return nil
}

// snapshot copies the cart so callers never share the internal slice.
// Callers must hold at least the read lock.
func (s *memoryStore) snapshot(userID uuid.UUID) *entity.Cart {
	cart, ok := s.carts[userID]
	if !ok {
		return &entity.Cart{UserID: userID, Items: []entity.CartItem{}}
	}

	items := make([]entity.CartItem, len(cart.Items))
	copy(items, cart.Items)

	return &entity.Cart{UserID: userID, Items: items}
}
