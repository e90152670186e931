package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "skyvault/internal/delivery/context"
	"skyvault/internal/domain/entity"
	domainerrors "skyvault/internal/domain/errors"
	"skyvault/internal/domain/repository"
	"skyvault/internal/domain/service"
	"skyvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TTL ceilings per link kind. Requested TTLs are clamped, never extended.
const (
	downloadTTLCeiling = 60 * time.Minute
	downloadTTLDefault = 30 * time.Minute
	viewTTLCeiling     = 120 * time.Minute
	viewTTLDefault     = 60 * time.Minute
	previewTTL         = 15 * time.Minute
	thumbnailTTL       = 5 * time.Minute
)

// accessService implements the AccessUsecase interface.
type accessService struct {
	contentRepo repository.ContentRepository
	orderRepo   repository.OrderRepository
	storage     service.ObjectStorage
	logger      *slog.Logger
}

// AccessServiceParams holds dependencies for AccessService, injected by Fx.
type AccessServiceParams struct {
	fx.In

	ContentRepo repository.ContentRepository
	OrderRepo   repository.OrderRepository
	Storage     service.ObjectStorage
	Logger      *slog.Logger
}

// NewAccessService is the constructor for accessService.
func NewAccessService(params AccessServiceParams) usecase.AccessUsecase {
	return &accessService{
		contentRepo: params.ContentRepo,
		orderRepo:   params.OrderRepo,
		storage:     params.Storage,
		logger:      params.Logger,
	}
}

func (srv *accessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Check reports whether the viewer may read the content's media. Any
// lookup failure denies rather than grants.
func (srv *accessService) Check(ctx context.Context, viewer *usecase.ViewerInfo, contentID uuid.UUID) (bool, error) {
	content, err := srv.contentRepo.FindByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return false, errors.Wrap(domainerrors.ErrContentNotFound, "access check failed")
		}

		return false, errors.Wrap(err, "failed to load content for access check")
	}

	allowed, err := srv.allowed(ctx, viewer, content)
	if err != nil {
		return false, err
	}

	return allowed, nil
}

// allowed holds the single source of truth for media access.
func (srv *accessService) allowed(ctx context.Context, viewer *usecase.ViewerInfo, content *entity.Content) (bool, error) {
	if viewer == nil {
		return false, nil
	}
	if viewer.Role == entity.RoleAdmin {
		return true, nil
	}
	// A creator always sees their own listings, whatever the status.
	if content.CreatorID == viewer.UserID {
		return true, nil
	}
	if !content.IsApproved() {
		return false, nil
	}

	purchased, err := srv.orderRepo.HasApproved(ctx, viewer.UserID, content.ID)
	if err != nil {
		srv.log(ctx).Error("Purchase lookup failed, denying access",
			slog.Any("contentID", content.ID),
			slog.Any("viewerID", viewer.UserID),
			slog.Any("error", err),
		)

		return false, errors.Wrap(err, "failed to check purchase")
	}

	return purchased, nil
}

// DownloadURL issues an attachment link for one media file.
func (srv *accessService) DownloadURL(ctx context.Context, viewer *usecase.ViewerInfo, contentID uuid.UUID, mediaID string, ttl time.Duration) (*usecase.PresignedLink, error) {
	content, err := srv.gate(ctx, viewer, contentID)
	if err != nil {
		return nil, err
	}

	media, ok := content.MediaFileByID(mediaID)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrMediaNotFound, "download link failed")
	}

	return srv.presign(ctx, service.PresignRequest{
		Key:         media.ID,
		TTL:         clampTTL(ttl, downloadTTLDefault, downloadTTLCeiling),
		Disposition: service.DispositionAttachment,
		FileName:    media.FileName,
	})
}

// ViewURL issues an inline link for one media file.
func (srv *accessService) ViewURL(ctx context.Context, viewer *usecase.ViewerInfo, contentID uuid.UUID, mediaID string, ttl time.Duration) (*usecase.PresignedLink, error) {
	content, err := srv.gate(ctx, viewer, contentID)
	if err != nil {
		return nil, err
	}

	media, ok := content.MediaFileByID(mediaID)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrMediaNotFound, "view link failed")
	}

	return srv.presign(ctx, service.PresignRequest{
		Key:         media.ID,
		TTL:         clampTTL(ttl, viewTTLDefault, viewTTLCeiling),
		Disposition: service.DispositionInline,
	})
}

// ViewAllURLs issues inline links for every media file of the listing.
func (srv *accessService) ViewAllURLs(ctx context.Context, viewer *usecase.ViewerInfo, contentID uuid.UUID, ttl time.Duration) ([]usecase.MediaLink, error) {
	return srv.allURLs(ctx, viewer, contentID, func(media *entity.MediaFile) service.PresignRequest {
		return service.PresignRequest{
			Key:         media.ID,
			TTL:         clampTTL(ttl, viewTTLDefault, viewTTLCeiling),
			Disposition: service.DispositionInline,
		}
	})
}

// DownloadAllURLs issues attachment links for every media file.
func (srv *accessService) DownloadAllURLs(ctx context.Context, viewer *usecase.ViewerInfo, contentID uuid.UUID, ttl time.Duration) ([]usecase.MediaLink, error) {
	return srv.allURLs(ctx, viewer, contentID, func(media *entity.MediaFile) service.PresignRequest {
		return service.PresignRequest{
			Key:         media.ID,
			TTL:         clampTTL(ttl, downloadTTLDefault, downloadTTLCeiling),
			Disposition: service.DispositionAttachment,
			FileName:    media.FileName,
		}
	})
}

// allURLs runs the gate once and presigns every media file. A failed
// presign skips that file rather than failing the whole batch.
func (srv *accessService) allURLs(ctx context.Context, viewer *usecase.ViewerInfo, contentID uuid.UUID, request func(*entity.MediaFile) service.PresignRequest) ([]usecase.MediaLink, error) {
	content, err := srv.gate(ctx, viewer, contentID)
	if err != nil {
		return nil, err
	}

	if len(content.MediaFiles) == 0 {
		return nil, errors.Wrap(domainerrors.ErrMediaNotFound, "listing has no media files")
	}

	links := make([]usecase.MediaLink, 0, len(content.MediaFiles))
	for i := range content.MediaFiles {
		media := &content.MediaFiles[i]

		req := request(media)
		url, err := srv.storage.Presign(ctx, req)
		if err != nil {
			srv.log(ctx).Warn("Skipping media file, presign failed",
				slog.String("key", media.ID),
				slog.Any("error", err),
			)

			continue
		}

		links = append(links, usecase.MediaLink{
			MediaID:  media.ID,
			FileName: media.FileName,
			Link:     usecase.PresignedLink{URL: url, ExpiresIn: req.TTL},
		})
	}
	if len(links) == 0 {
		return nil, errors.Wrap(domainerrors.ErrPresignFailed, "no media file could be presigned")
	}

	return links, nil
}

// PreviewURL issues a fixed short-lived inline link to the first media file.
func (srv *accessService) PreviewURL(ctx context.Context, viewer *usecase.ViewerInfo, contentID uuid.UUID) (*usecase.PresignedLink, error) {
	content, err := srv.gate(ctx, viewer, contentID)
	if err != nil {
		return nil, err
	}

	if len(content.MediaFiles) == 0 {
		return nil, errors.Wrap(domainerrors.ErrMediaNotFound, "listing has no media to preview")
	}

	return srv.presign(ctx, service.PresignRequest{
		Key:         content.MediaFiles[0].ID,
		TTL:         previewTTL,
		Disposition: service.DispositionInline,
	})
}

// ThumbnailURL issues a very short inline link to the thumbnail. No viewer
// is required, so the TTL is the tightest of all.
func (srv *accessService) ThumbnailURL(ctx context.Context, contentID uuid.UUID) (*usecase.PresignedLink, error) {
	content, err := srv.contentRepo.FindByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrContentNotFound, "thumbnail link failed")
		}

		return nil, errors.Wrap(err, "failed to load content")
	}

	source := content.ThumbnailSource()
	if source == nil {
		return nil, errors.Wrap(domainerrors.ErrMediaNotFound, "listing has no thumbnail source")
	}

	return srv.presign(ctx, service.PresignRequest{
		Key:         source.ID,
		TTL:         thumbnailTTL,
		Disposition: service.DispositionInline,
	})
}

// gate loads the content and enforces the access rules, mapping a denial
// to the error a caller can act on. A buyer who could have access by
// purchasing gets ErrPurchaseRequired; everyone else gets ErrForbidden.
func (srv *accessService) gate(ctx context.Context, viewer *usecase.ViewerInfo, contentID uuid.UUID) (*entity.Content, error) {
	content, err := srv.contentRepo.FindByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrContentNotFound, "access denied")
		}

		return nil, errors.Wrap(err, "failed to load content")
	}

	allowed, err := srv.allowed(ctx, viewer, content)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "access check failed")
	}
	if !allowed {
		if viewer != nil && content.IsApproved() {
			return nil, errors.Wrap(domainerrors.ErrPurchaseRequired, "access denied")
		}

		return nil, errors.Wrap(domainerrors.ErrForbidden, "access denied")
	}

	return content, nil
}

func (srv *accessService) presign(ctx context.Context, req service.PresignRequest) (*usecase.PresignedLink, error) {
	url, err := srv.storage.Presign(ctx, req)
	if err != nil {
		srv.log(ctx).Error("Presign failed", slog.String("key", req.Key), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPresignFailed, "presign failed")
	}

	return &usecase.PresignedLink{URL: url, ExpiresIn: req.TTL}, nil
}

// clampTTL applies the default when unset and the ceiling otherwise.
func clampTTL(requested, fallback, ceiling time.Duration) time.Duration {
	if requested <= 0 {
		return fallback
	}
	if requested > ceiling {
		return ceiling
	}

	return requested
}
