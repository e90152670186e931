package repository

import (
	"context"

	"skyvault/internal/domain/entity"

	"github.com/google/uuid"
)

// CartStore holds per-user shopping carts. Carts are process-local and
// non-durable: a restart empties them, which is acceptable because a cart
// only snapshots intent until checkout.
type CartStore interface {
	// Get returns the user's cart, materializing an empty one on first use.
	Get(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// AddItem appends an item, enforcing the single-creator invariant and
	// rejecting duplicates.
	AddItem(ctx context.Context, userID uuid.UUID, item entity.CartItem) (*entity.Cart, error)

	// RemoveItem deletes one item. Removing an absent item is a no-op.
	RemoveItem(ctx context.Context, userID uuid.UUID, contentID uuid.UUID) (*entity.Cart, error)

	// Clear empties the user's cart.
	Clear(ctx context.Context, userID uuid.UUID) error
}
