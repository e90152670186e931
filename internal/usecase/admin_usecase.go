package usecase

import (
	"context"

	"skyvault/internal/domain/entity"
	"skyvault/internal/domain/repository"

	"github.com/google/uuid"
)

// AdminUsecase defines the moderation operations reserved for admins.
type AdminUsecase interface {
	// ListUsers returns accounts filtered by role and approval state.
	ListUsers(ctx context.Context, role *entity.Role, approved *bool) ([]*entity.User, error)

	// SetUserApproval flips an account's approval flag. Approving a
	// creator unlocks uploads and login.
	SetUserApproval(ctx context.Context, userID uuid.UUID, approved bool) (*entity.User, error)

	// RejectCreator removes a creator application that never passed
	// review. Approved accounts cannot be rejected this way.
	RejectCreator(ctx context.Context, userID uuid.UUID) error

	// ListContentByStatus pages through listings in one moderation state.
	ListContentByStatus(ctx context.Context, status entity.ContentStatus, page repository.PageRequest) (*repository.Page[*entity.Content], error)

	// ReviewContent moves a listing to approved, rejected or suspended.
	ReviewContent(ctx context.Context, adminID, contentID uuid.UUID, status entity.ContentStatus) (*entity.Content, error)
}
