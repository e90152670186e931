package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "skyvault/internal/delivery/context"
	"skyvault/internal/domain/constants"
	"skyvault/internal/domain/entity"
	domainerrors "skyvault/internal/domain/errors"
	"skyvault/internal/domain/repository"
	"skyvault/internal/domain/service"
	"skyvault/internal/usecase"
	"skyvault/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxMediaFileSize bounds a single uploaded media file.
const maxMediaFileSize = 2 << 30 // 2 GiB

// allowedMediaTypes lists the content types a creator may upload as media.
var allowedMediaTypes = map[string]bool{
	"video/mp4":        true,
	"video/quicktime":  true,
	"video/x-matroska": true,
	"image/jpeg":       true,
	"image/png":        true,
	"image/webp":       true,
}

// allowedImageTypes lists the content types accepted for thumbnails.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// contentService implements the ContentUsecase interface.
type contentService struct {
	contentRepo repository.ContentRepository
	userRepo    repository.UserRepository
	storage     service.ObjectStorage
	logger      *slog.Logger
}

// ContentServiceParams holds dependencies for ContentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	ContentRepo repository.ContentRepository
	UserRepo    repository.UserRepository
	Storage     service.ObjectStorage
	Logger      *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	return &contentService{
		contentRepo: params.ContentRepo,
		userRepo:    params.UserRepo,
		storage:     params.Storage,
		logger:      params.Logger,
	}
}

func (srv *contentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create registers a new listing in pending_review state.
func (srv *contentService) Create(ctx context.Context, input *usecase.CreateContentInput) (*entity.Content, error) {
	creator, err := srv.userRepo.FindByID(ctx, input.CreatorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load creator")
	}
	if !creator.IsCreator() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only creators may list content")
	}
	if !creator.Approved {
		return nil, errors.Wrap(domainerrors.ErrPendingApproval, "creator account is not approved yet")
	}

	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "title is required")
	}
	if input.Price < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "price must not be negative")
	}
	if input.LicenseType != "" && !input.LicenseType.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown license type")
	}

	now := time.Now()
	content := &entity.Content{
		ID:                uuid.New(),
		CreatorID:         input.CreatorID,
		Title:             input.Title,
		Description:       input.Description,
		Category:          input.Category,
		Tags:              input.Tags,
		Location:          input.Location,
		Coordinates:       input.Coordinates,
		Resolution:        input.Resolution,
		Duration:          input.Duration,
		YoutubePreview:    input.YoutubePreview,
		Price:             input.Price,
		LicenseType:       input.LicenseType,
		DroneModel:        input.DroneModel,
		ShootingDate:      input.ShootingDate,
		WeatherConditions: input.WeatherConditions,
		Altitude:          input.Altitude,
		Status:            entity.ContentStatusPendingReview,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := srv.contentRepo.Create(ctx, content); err != nil {
		return nil, errors.Wrap(err, "failed to create content")
	}

	srv.log(ctx).Info("Content created",
		slog.Any("contentID", content.ID),
		slog.Any("creatorID", content.CreatorID),
	)

	return content, nil
}

// Update modifies a listing. An update to an approved listing sends it
// back through review.
func (srv *contentService) Update(ctx context.Context, creatorID, contentID uuid.UUID, input *usecase.UpdateContentInput) (*entity.Content, error) {
	content, err := srv.ownedContent(ctx, creatorID, contentID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "title must not be empty")
		}
		content.Title = *input.Title
	}
	if input.Description != nil {
		content.Description = *input.Description
	}
	if input.Category != nil {
		content.Category = *input.Category
	}
	if input.Tags != nil {
		content.Tags = input.Tags
	}
	if input.Location != nil {
		content.Location = *input.Location
	}
	if input.Resolution != nil {
		content.Resolution = *input.Resolution
	}
	if input.YoutubePreview != nil {
		content.YoutubePreview = *input.YoutubePreview
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "price must not be negative")
		}
		content.Price = *input.Price
	}
	if input.LicenseType != nil {
		if !input.LicenseType.IsValid() {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown license type")
		}
		content.LicenseType = *input.LicenseType
	}
	if input.DroneModel != nil {
		content.DroneModel = *input.DroneModel
	}
	if input.WeatherConditions != nil {
		content.WeatherConditions = *input.WeatherConditions
	}

	if content.Status == entity.ContentStatusApproved {
		content.Status = entity.ContentStatusPendingReview
	}
	content.UpdatedAt = time.Now()

	if err := srv.contentRepo.Update(ctx, content); err != nil {
		return nil, errors.Wrap(err, "failed to update content")
	}

	return content, nil
}

// Delete removes a listing and best-effort deletes its stored objects.
// A storage failure is logged but never blocks the database deletion.
func (srv *contentService) Delete(ctx context.Context, creatorID, contentID uuid.UUID) error {
	content, err := srv.ownedContent(ctx, creatorID, contentID)
	if err != nil {
		return err
	}

	if err := srv.contentRepo.Delete(ctx, contentID); err != nil {
		return errors.Wrap(err, "failed to delete content")
	}

	for _, media := range content.MediaFiles {
		srv.deleteObject(ctx, media.ID)
	}
	if content.ThumbnailFile != nil {
		srv.deleteObject(ctx, content.ThumbnailFile.ID)
	}

	srv.log(ctx).Info("Content deleted", slog.Any("contentID", contentID))

	return nil
}

// AddMedia uploads one media file and attaches it to the listing.
func (srv *contentService) AddMedia(ctx context.Context, creatorID, contentID uuid.UUID, file *usecase.UploadFileInput) (*entity.Content, error) {
	content, err := srv.ownedContent(ctx, creatorID, contentID)
	if err != nil {
		return nil, err
	}

	media, err := srv.storeFile(ctx, file, constants.StoragePrefixMedia, allowedMediaTypes)
	if err != nil {
		return nil, err
	}

	content.MediaFiles = append(content.MediaFiles, *media)
	content.UpdatedAt = time.Now()

	if err := srv.contentRepo.Update(ctx, content); err != nil {
		// The blob is orphaned if the row update fails; reclaim it.
		srv.deleteObject(ctx, media.ID)

		return nil, errors.Wrap(err, "failed to attach media file")
	}

	srv.log(ctx).Info("Media file attached",
		slog.Any("contentID", contentID),
		slog.String("mediaID", media.ID),
		slog.String("size", util.FormatBytes(media.Size)),
	)

	return content, nil
}

// SetThumbnail uploads the listing's thumbnail, replacing any previous one.
func (srv *contentService) SetThumbnail(ctx context.Context, creatorID, contentID uuid.UUID, file *usecase.UploadFileInput) (*entity.Content, error) {
	content, err := srv.ownedContent(ctx, creatorID, contentID)
	if err != nil {
		return nil, err
	}

	thumbnail, err := srv.storeFile(ctx, file, constants.StoragePrefixThumbnail, allowedImageTypes)
	if err != nil {
		return nil, err
	}

	previous := content.ThumbnailFile
	content.ThumbnailFile = thumbnail
	content.UpdatedAt = time.Now()

	if err := srv.contentRepo.Update(ctx, content); err != nil {
		srv.deleteObject(ctx, thumbnail.ID)

		return nil, errors.Wrap(err, "failed to set thumbnail")
	}

	if previous != nil {
		srv.deleteObject(ctx, previous.ID)
	}

	return content, nil
}

// RemoveMedia detaches one media file and best-effort deletes the blob.
func (srv *contentService) RemoveMedia(ctx context.Context, creatorID, contentID uuid.UUID, mediaID string) (*entity.Content, error) {
	content, err := srv.ownedContent(ctx, creatorID, contentID)
	if err != nil {
		return nil, err
	}

	found := false
	media := content.MediaFiles[:0]
	for _, m := range content.MediaFiles {
		if m.ID == mediaID {
			found = true

			continue
		}
		media = append(media, m)
	}
	if !found {
		return nil, errors.Wrap(domainerrors.ErrMediaNotFound, "media file is not attached to this content")
	}

	content.MediaFiles = media
	content.UpdatedAt = time.Now()

	if err := srv.contentRepo.Update(ctx, content); err != nil {
		return nil, errors.Wrap(err, "failed to detach media file")
	}

	srv.deleteObject(ctx, mediaID)

	return content, nil
}

// GetPublic returns an approved listing and bumps its view counter.
func (srv *contentService) GetPublic(ctx context.Context, viewer *usecase.ViewerInfo, contentID uuid.UUID) (*entity.Content, error) {
	content, err := srv.contentRepo.FindByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrContentNotFound, "content lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load content")
	}

	if !content.IsApproved() && !canSeeUnapproved(viewer, content) {
		// Hide the existence of unapproved listings from the public.
		return nil, errors.Wrap(domainerrors.ErrContentNotFound, "content is not public")
	}

	if content.IsApproved() {
		if err := srv.contentRepo.IncrementViews(ctx, contentID); err != nil {
			// A lost view count is not worth failing the read.
			srv.log(ctx).Warn("Failed to increment views", slog.Any("contentID", contentID), slog.Any("error", err))
		} else {
			content.Views++
		}
	}

	return content, nil
}

// Search pages through the approved catalog.
func (srv *contentService) Search(ctx context.Context, input *usecase.SearchContentInput) (*repository.Page[*entity.Content], error) {
	page, err := srv.contentRepo.Search(ctx, input.Search, input.Page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search contents")
	}

	return page, nil
}

// ListMine returns all of a creator's own listings.
func (srv *contentService) ListMine(ctx context.Context, creatorID uuid.UUID) ([]*entity.Content, error) {
	contents, err := srv.contentRepo.FindByCreator(ctx, creatorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list creator contents")
	}

	return contents, nil
}

// ownedContent loads a listing and verifies ownership.
func (srv *contentService) ownedContent(ctx context.Context, creatorID, contentID uuid.UUID) (*entity.Content, error) {
	content, err := srv.contentRepo.FindByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrContentNotFound, "content lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load content")
	}
	if content.CreatorID != creatorID {
		return nil, errors.Wrap(domainerrors.ErrContentOwnershipViolation, "content belongs to another creator")
	}

	return content, nil
}

// storeFile validates and uploads one file, returning its media record.
func (srv *contentService) storeFile(ctx context.Context, file *usecase.UploadFileInput, prefix string, allowed map[string]bool) (*entity.MediaFile, error) {
	if file == nil || file.Body == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "file is required")
	}
	if !allowed[file.ContentType] {
		return nil, errors.Wrap(domainerrors.ErrUnsupportedFileType, "content type "+file.ContentType)
	}
	if file.Size <= 0 || file.Size > maxMediaFileSize {
		return nil, errors.Wrap(domainerrors.ErrFileTooLarge, "file size "+util.FormatBytes(file.Size))
	}

	key := util.NewStorageKey(prefix, file.FileName)
	if err := srv.storage.Put(ctx, key, file.Body, file.Size, file.ContentType); err != nil {
		srv.log(ctx).Error("Storage upload failed", slog.String("key", key), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStorageUploadFailed, "upload failed")
	}

	return &entity.MediaFile{
		ID:          key,
		FileName:    util.SanitizeFileName(file.FileName),
		ContentType: file.ContentType,
		Size:        file.Size,
		UploadedAt:  time.Now(),
	}, nil
}

// deleteObject removes a blob best-effort. Failures are logged, never
// propagated.
func (srv *contentService) deleteObject(ctx context.Context, key string) {
	if err := srv.storage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Best-effort storage delete failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

// canSeeUnapproved reports whether the viewer may read a non-approved
// listing: the owning creator and admins.
func canSeeUnapproved(viewer *usecase.ViewerInfo, content *entity.Content) bool {
	if viewer == nil {
		return false
	}
	if viewer.Role == entity.RoleAdmin {
		return true
	}

	return viewer.Role == entity.RoleCreator && content.CreatorID == viewer.UserID
}
