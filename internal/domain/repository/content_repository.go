package repository

import (
	"context"
	"errors"

	"skyvault/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrContentNotFound is returned when a content listing does not exist.
var ErrContentNotFound = errors.New("content not found")

// ContentSearch holds the optional filters for browsing the public catalog.
// Only approved listings are ever matched.
type ContentSearch struct {
	Query      string // case-insensitive substring over title, description, tags and location
	Category   string
	Location   string
	Resolution string
	MinPrice   *float64
	MaxPrice   *float64
}

// PageRequest is a zero-based page selector.
type PageRequest struct {
	Page int
	Size int
}

// Offset returns the row offset for the page.
func (p PageRequest) Offset() int {
	if p.Page < 0 {
		return 0
	}

	return p.Page * p.Limit()
}

// Limit returns the page size, defaulting to 20 and capping at 100.
func (p PageRequest) Limit() int {
	if p.Size <= 0 {
		return 20
	}
	if p.Size > 100 {
		return 100
	}

	return p.Size
}

// Page is one page of results with the total match count.
type Page[T any] struct {
	Items []T
	Total int64
}

// ContentRepository defines the standard operations for content persistence.
type ContentRepository interface {
	// FindByID retrieves a single listing by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Content, error)

	// FindByIDs retrieves the listings for the given IDs. Missing IDs are
	// silently skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Content, error)

	// FindByCreator returns all listings owned by a creator, newest first.
	FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]*entity.Content, error)

	// FindByStatus returns listings in a moderation state, newest first.
	FindByStatus(ctx context.Context, status entity.ContentStatus, page PageRequest) (*Page[*entity.Content], error)

	// Search pages through approved listings matching the filters.
	Search(ctx context.Context, search ContentSearch, page PageRequest) (*Page[*entity.Content], error)

	// Create persists a new listing.
	Create(ctx context.Context, content *entity.Content) error

	// Update modifies an existing listing.
	Update(ctx context.Context, content *entity.Content) error

	// Delete removes a listing.
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementViews bumps the view counter without a read-modify-write.
	IncrementViews(ctx context.Context, id uuid.UUID) error

	// RecordPurchase bumps the download counter of each listing in an
	// approved order and adds its own price to its accumulated earnings.
	RecordPurchase(ctx context.Context, ids []uuid.UUID) error
}
