package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of a purchase order.
type OrderStatus string

const (
	// OrderStatusPending indicates the order awaits the creator's slip review.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusApproved indicates the creator confirmed the bank transfer.
	OrderStatusApproved OrderStatus = "approved"
	// OrderStatusRejected indicates the creator rejected the slip.
	OrderStatusRejected OrderStatus = "rejected"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusApproved, OrderStatusRejected:
		return true
	default:
		return false
	}
}

// Order records a buyer's purchase of one or more listings from a single
// creator, paid by bank transfer and verified manually through an uploaded
// payment slip.
type Order struct {
	ID        uuid.UUID
	BuyerID   uuid.UUID
	CreatorID uuid.UUID
	// ContentIDs and ContentTitles are parallel slices snapshotting the
	// purchased listings at checkout time.
	ContentIDs    []uuid.UUID
	ContentTitles []string
	TotalAmount   float64
	// SlipKey is the object storage key of the uploaded payment slip.
	SlipKey      string
	Status       OrderStatus
	DecisionNote string
	DecidedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Covers reports whether the order includes the given listing.
func (o *Order) Covers(contentID uuid.UUID) bool {
	for _, id := range o.ContentIDs {
		if id == contentID {
			return true
		}
	}

	return false
}
