package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one listing placed in a buyer's cart, snapshotting the
// price and title at the moment it was added.
type CartItem struct {
	ContentID uuid.UUID `json:"contentId"`
	CreatorID uuid.UUID `json:"creatorId"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	AddedAt   time.Time `json:"addedAt"`
}

// Cart is a buyer's in-memory shopping cart. All items must belong to
// the same creator so a checkout produces exactly one order.
type Cart struct {
	UserID uuid.UUID  `json:"userId"`
	Items  []CartItem `json:"items"`
}

// CreatorID returns the creator owning the carted items, or uuid.Nil for
// an empty cart.
func (c *Cart) CreatorID() uuid.UUID {
	if len(c.Items) == 0 {
		return uuid.Nil
	}

	return c.Items[0].CreatorID
}

// Total sums the snapshotted item prices.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price
	}

	return total
}

// Contains reports whether the listing is already carted.
func (c *Cart) Contains(contentID uuid.UUID) bool {
	for _, item := range c.Items {
		if item.ContentID == contentID {
			return true
		}
	}

	return false
}
