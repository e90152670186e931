package usecase

import (
	"context"

	"skyvault/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput defines the data required to place an order from the
// current cart.
type CheckoutInput struct {
	BuyerID uuid.UUID
	Slip    *UploadFileInput
}

// OrderUsecase defines the interface for the checkout and order decision flow.
type OrderUsecase interface {
	// Checkout turns the buyer's cart into a pending order. The cart must
	// be non-empty, hold listings from exactly one creator, and a payment
	// slip must be attached. The cart is cleared on success.
	Checkout(ctx context.Context, input *CheckoutInput) (*entity.Order, error)

	// ListMine returns the buyer's orders, newest first, optionally
	// narrowed to one status.
	ListMine(ctx context.Context, buyerID uuid.UUID, status *entity.OrderStatus) ([]*entity.Order, error)

	// ListForCreator returns the orders addressed to the creator,
	// optionally filtered by status.
	ListForCreator(ctx context.Context, creatorID uuid.UUID, status *entity.OrderStatus) ([]*entity.Order, error)

	// Approve confirms the bank transfer. Only the creator owning the
	// order may approve, and only while the order is pending.
	Approve(ctx context.Context, creatorID, orderID uuid.UUID, note string) (*entity.Order, error)

	// Reject declines the slip. Same guards as Approve.
	Reject(ctx context.Context, creatorID, orderID uuid.UUID, note string) (*entity.Order, error)

	// SlipURL issues a short-lived presigned URL for the payment slip.
	// Only the order's creator, its buyer or an admin may look.
	SlipURL(ctx context.Context, viewer *ViewerInfo, orderID uuid.UUID) (string, error)
}
