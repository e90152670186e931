package usecase

import (
	"context"

	"skyvault/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase defines the interface for cart operations. Carts live in
// process memory only.
type CartUsecase interface {
	// Get returns the buyer's cart.
	Get(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// Add puts an approved listing into the cart, enforcing the
	// single-creator invariant.
	Add(ctx context.Context, userID, contentID uuid.UUID) (*entity.Cart, error)

	// Remove takes one listing out of the cart.
	Remove(ctx context.Context, userID, contentID uuid.UUID) (*entity.Cart, error)

	// Clear empties the cart.
	Clear(ctx context.Context, userID uuid.UUID) error
}
