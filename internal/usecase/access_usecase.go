package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PresignedLink is one issued access URL with its effective TTL.
type PresignedLink struct {
	URL       string
	ExpiresIn time.Duration
}

// MediaLink pairs one media file with its issued URL, for the bulk
// operations that link every file of a listing at once.
type MediaLink struct {
	MediaID  string
	FileName string
	Link     PresignedLink
}

// AccessUsecase is the gate in front of every presigned URL. All checks
// fail closed: a lookup error denies access rather than granting it.
type AccessUsecase interface {
	// Check reports whether the viewer may read the content's media.
	// Admins always may, creators may read their own listings regardless
	// of status, buyers only approved listings covered by one of their
	// approved orders.
	Check(ctx context.Context, viewer *ViewerInfo, contentID uuid.UUID) (bool, error)

	// DownloadURL issues an attachment-disposition link for one media
	// file. The requested TTL is clamped to the download ceiling.
	DownloadURL(ctx context.Context, viewer *ViewerInfo, contentID uuid.UUID, mediaID string, ttl time.Duration) (*PresignedLink, error)

	// ViewURL issues an inline link for one media file, clamped to the
	// view ceiling.
	ViewURL(ctx context.Context, viewer *ViewerInfo, contentID uuid.UUID, mediaID string, ttl time.Duration) (*PresignedLink, error)

	// ViewAllURLs issues inline links for every media file of the
	// listing, clamped to the view ceiling. A file whose presign fails is
	// skipped rather than failing the whole batch.
	ViewAllURLs(ctx context.Context, viewer *ViewerInfo, contentID uuid.UUID, ttl time.Duration) ([]MediaLink, error)

	// DownloadAllURLs issues attachment links for every media file,
	// clamped to the download ceiling, with the same skip-on-failure
	// behavior as ViewAllURLs.
	DownloadAllURLs(ctx context.Context, viewer *ViewerInfo, contentID uuid.UUID, ttl time.Duration) ([]MediaLink, error)

	// PreviewURL issues a fixed short-lived inline link to the listing's
	// first media file.
	PreviewURL(ctx context.Context, viewer *ViewerInfo, contentID uuid.UUID) (*PresignedLink, error)

	// ThumbnailURL issues a very short inline link to the thumbnail. No
	// authentication is required; the listing just has to exist and have
	// something to show.
	ThumbnailURL(ctx context.Context, contentID uuid.UUID) (*PresignedLink, error)
}
