package usecase

import (
	"context"
	"io"
	"time"

	"skyvault/internal/domain/entity"
	"skyvault/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateContentInput defines the data required to create a listing.
type CreateContentInput struct {
	CreatorID         uuid.UUID
	Title             string
	Description       string
	Category          string
	Tags              []string
	Location          string
	Coordinates       *entity.Coordinates
	Resolution        string
	Duration          int
	YoutubePreview    string
	Price             float64
	LicenseType       entity.LicenseType
	DroneModel        string
	ShootingDate      *time.Time
	WeatherConditions string
	Altitude          float64
}

// UpdateContentInput carries the mutable listing fields. Nil pointers
// leave the current value untouched.
type UpdateContentInput struct {
	Title             *string
	Description       *string
	Category          *string
	Tags              []string
	Location          *string
	Resolution        *string
	YoutubePreview    *string
	Price             *float64
	LicenseType       *entity.LicenseType
	DroneModel        *string
	WeatherConditions *string
}

// UploadFileInput describes one uploaded file stream.
type UploadFileInput struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// SearchContentInput wraps the public catalog filters with paging.
type SearchContentInput struct {
	Search repository.ContentSearch
	Page   repository.PageRequest
}

// ContentUsecase defines the interface for content listing operations.
type ContentUsecase interface {
	// Create registers a new listing in pending_review state. Only an
	// approved creator may create listings.
	Create(ctx context.Context, input *CreateContentInput) (*entity.Content, error)

	// Update modifies a listing. Only the owning creator may update, and
	// an update moves an approved listing back to pending_review.
	Update(ctx context.Context, creatorID, contentID uuid.UUID, input *UpdateContentInput) (*entity.Content, error)

	// Delete removes a listing and best-effort deletes its stored objects.
	Delete(ctx context.Context, creatorID, contentID uuid.UUID) error

	// AddMedia uploads one media file and attaches it to the listing.
	AddMedia(ctx context.Context, creatorID, contentID uuid.UUID, file *UploadFileInput) (*entity.Content, error)

	// SetThumbnail uploads the listing's thumbnail, replacing any
	// previous one.
	SetThumbnail(ctx context.Context, creatorID, contentID uuid.UUID, file *UploadFileInput) (*entity.Content, error)

	// RemoveMedia detaches one media file and best-effort deletes the blob.
	RemoveMedia(ctx context.Context, creatorID, contentID uuid.UUID, mediaID string) (*entity.Content, error)

	// GetPublic returns an approved listing and bumps its view counter.
	// Owners and admins may also fetch their unapproved listings.
	GetPublic(ctx context.Context, viewer *ViewerInfo, contentID uuid.UUID) (*entity.Content, error)

	// Search pages through the approved catalog.
	Search(ctx context.Context, input *SearchContentInput) (*repository.Page[*entity.Content], error)

	// ListMine returns all of a creator's own listings.
	ListMine(ctx context.Context, creatorID uuid.UUID) ([]*entity.Content, error)
}

// ViewerInfo identifies an optionally authenticated caller.
type ViewerInfo struct {
	UserID uuid.UUID
	Role   entity.Role
}
