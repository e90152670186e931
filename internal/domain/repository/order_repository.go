package repository

import (
	"context"
	"errors"
	"time"

	"skyvault/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// ErrOrderNotPending is returned by UpdateStatusIfPending when the order
// was already decided by a concurrent request.
var ErrOrderNotPending = errors.New("order is not pending")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByBuyer returns a buyer's orders, newest first, optionally
	// narrowed to one status.
	FindByBuyer(ctx context.Context, buyerID uuid.UUID, status *entity.OrderStatus) ([]*entity.Order, error)

	// FindByCreator returns the orders addressed to a creator, optionally
	// filtered by status, newest first.
	FindByCreator(ctx context.Context, creatorID uuid.UUID, status *entity.OrderStatus) ([]*entity.Order, error)

	// HasApproved reports whether the buyer holds an approved order
	// covering the listing.
	HasApproved(ctx context.Context, buyerID, contentID uuid.UUID) (bool, error)

	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// UpdateStatusIfPending atomically moves a pending order to its final
	// status. Returns ErrOrderNotPending when the order was already
	// decided, so concurrent approve and reject cannot both win.
	UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status entity.OrderStatus, note string, decidedAt time.Time) error
}
