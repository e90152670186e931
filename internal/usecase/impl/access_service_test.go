package impl

import (
	"context"
	"testing"
	"time"

	"skyvault/internal/domain/entity"
	domainerrors "skyvault/internal/domain/errors"
	"skyvault/internal/domain/service"
	mockRepo "skyvault/internal/mocks/repository"
	mockSvc "skyvault/internal/mocks/service"
	"skyvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accessServiceFixtures struct {
	service     usecase.AccessUsecase
	contentRepo *mockRepo.MockContentRepository
	orderRepo   *mockRepo.MockOrderRepository
	storage     *mockSvc.MockObjectStorage
}

func createTestAccessService(t *testing.T) accessServiceFixtures {
	contentRepo := mockRepo.NewMockContentRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	storage := mockSvc.NewMockObjectStorage(t)

	svc := NewAccessService(AccessServiceParams{
		ContentRepo: contentRepo,
		OrderRepo:   orderRepo,
		Storage:     storage,
		Logger:      newDiscardLogger(),
	})

	return accessServiceFixtures{
		service:     svc,
		contentRepo: contentRepo,
		orderRepo:   orderRepo,
		storage:     storage,
	}
}

func contentWithMedia(creatorID uuid.UUID, status entity.ContentStatus) *entity.Content {
	content := testContent(creatorID, status)
	content.MediaFiles = []entity.MediaFile{
		{ID: "media/clip.mp4", FileName: "clip.mp4", ContentType: "video/mp4", Size: 1 << 20},
	}
	content.ThumbnailFile = &entity.MediaFile{
		ID: "thumbnails/clip.jpg", FileName: "clip.jpg", ContentType: "image/jpeg", Size: 1 << 12,
	}

	return content
}

func TestAccessService_Check(t *testing.T) {
	creatorID := uuid.New()
	buyerID := uuid.New()

	tests := []struct {
		name      string
		viewer    *usecase.ViewerInfo
		status    entity.ContentStatus
		purchased *bool // nil means no purchase lookup expected
		want      bool
	}{
		{
			name:   "anonymous denied",
			viewer: nil,
			status: entity.ContentStatusApproved,
			want:   false,
		},
		{
			name:   "admin always allowed",
			viewer: &usecase.ViewerInfo{UserID: uuid.New(), Role: entity.RoleAdmin},
			status: entity.ContentStatusPendingReview,
			want:   true,
		},
		{
			name:   "owner allowed regardless of status",
			viewer: &usecase.ViewerInfo{UserID: creatorID, Role: entity.RoleCreator},
			status: entity.ContentStatusRejected,
			want:   true,
		},
		{
			name:   "buyer denied on unapproved listing",
			viewer: &usecase.ViewerInfo{UserID: buyerID, Role: entity.RoleBuyer},
			status: entity.ContentStatusPendingReview,
			want:   false,
		},
		{
			name:      "buyer with approved order allowed",
			viewer:    &usecase.ViewerInfo{UserID: buyerID, Role: entity.RoleBuyer},
			status:    entity.ContentStatusApproved,
			purchased: boolPtr(true),
			want:      true,
		},
		{
			name:      "buyer without purchase denied",
			viewer:    &usecase.ViewerInfo{UserID: buyerID, Role: entity.RoleBuyer},
			status:    entity.ContentStatusApproved,
			purchased: boolPtr(false),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccessService(t)

			ctx := context.Background()
			content := contentWithMedia(creatorID, tt.status)

			fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)
			if tt.purchased != nil {
				fx.orderRepo.EXPECT().
					HasApproved(ctx, tt.viewer.UserID, content.ID).
					Return(*tt.purchased, nil)
			}

			allowed, err := fx.service.Check(ctx, tt.viewer, content.ID)

			require.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestAccessService_Check_PurchaseLookupFailureDenies(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	content := contentWithMedia(uuid.New(), entity.ContentStatusApproved)
	viewer := &usecase.ViewerInfo{UserID: uuid.New(), Role: entity.RoleBuyer}

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)
	fx.orderRepo.EXPECT().
		HasApproved(ctx, viewer.UserID, content.ID).
		Return(false, errors.New("replica lagging"))

	allowed, err := fx.service.Check(ctx, viewer, content.ID)

	require.Error(t, err)
	assert.False(t, allowed)
}

func TestAccessService_DownloadURL_ClampsTTL(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	content := contentWithMedia(uuid.New(), entity.ContentStatusApproved)
	admin := &usecase.ViewerInfo{UserID: uuid.New(), Role: entity.RoleAdmin}

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)
	fx.storage.EXPECT().
		Presign(ctx, service.PresignRequest{
			Key:         "media/clip.mp4",
			TTL:         60 * time.Minute, // ceiling, not the requested 4 hours
			Disposition: service.DispositionAttachment,
			FileName:    "clip.mp4",
		}).
		Return("https://storage.example.com/signed", nil)

	link, err := fx.service.DownloadURL(ctx, admin, content.ID, "media/clip.mp4", 4*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, 60*time.Minute, link.ExpiresIn)
}

func TestAccessService_DownloadURL_DefaultTTL(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	content := contentWithMedia(uuid.New(), entity.ContentStatusApproved)
	admin := &usecase.ViewerInfo{UserID: uuid.New(), Role: entity.RoleAdmin}

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)
	fx.storage.EXPECT().
		Presign(ctx, service.PresignRequest{
			Key:         "media/clip.mp4",
			TTL:         30 * time.Minute,
			Disposition: service.DispositionAttachment,
			FileName:    "clip.mp4",
		}).
		Return("https://storage.example.com/signed", nil)

	link, err := fx.service.DownloadURL(ctx, admin, content.ID, "media/clip.mp4", 0)

	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, link.ExpiresIn)
}

func TestAccessService_DownloadURL_PurchaseRequired(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	content := contentWithMedia(uuid.New(), entity.ContentStatusApproved)
	buyer := &usecase.ViewerInfo{UserID: uuid.New(), Role: entity.RoleBuyer}

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)
	fx.orderRepo.EXPECT().HasApproved(ctx, buyer.UserID, content.ID).Return(false, nil)

	link, err := fx.service.DownloadURL(ctx, buyer, content.ID, "media/clip.mp4", 0)

	require.Error(t, err)
	assert.Nil(t, link)
	assert.True(t, errors.Is(err, domainerrors.ErrPurchaseRequired))
}

func TestAccessService_DownloadURL_AnonymousForbidden(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	content := contentWithMedia(uuid.New(), entity.ContentStatusApproved)

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)

	link, err := fx.service.DownloadURL(ctx, nil, content.ID, "media/clip.mp4", 0)

	require.Error(t, err)
	assert.Nil(t, link)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAccessService_DownloadURL_UnknownMedia(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	content := contentWithMedia(uuid.New(), entity.ContentStatusApproved)
	admin := &usecase.ViewerInfo{UserID: uuid.New(), Role: entity.RoleAdmin}

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)

	link, err := fx.service.DownloadURL(ctx, admin, content.ID, "media/other.mp4", 0)

	require.Error(t, err)
	assert.Nil(t, link)
	assert.True(t, errors.Is(err, domainerrors.ErrMediaNotFound))
}

func TestAccessService_ViewURL_InlineDisposition(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	content := contentWithMedia(creatorID, entity.ContentStatusPendingReview)
	owner := &usecase.ViewerInfo{UserID: creatorID, Role: entity.RoleCreator}

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)
	fx.storage.EXPECT().
		Presign(ctx, service.PresignRequest{
			Key:         "media/clip.mp4",
			TTL:         120 * time.Minute, // clamped to the view ceiling
			Disposition: service.DispositionInline,
		}).
		Return("https://storage.example.com/signed", nil)

	link, err := fx.service.ViewURL(ctx, owner, content.ID, "media/clip.mp4", 6*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, 120*time.Minute, link.ExpiresIn)
}

func TestAccessService_PreviewURL_FixedTTL(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	content := contentWithMedia(uuid.New(), entity.ContentStatusApproved)
	admin := &usecase.ViewerInfo{UserID: uuid.New(), Role: entity.RoleAdmin}

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)
	fx.storage.EXPECT().
		Presign(ctx, service.PresignRequest{
			Key:         "media/clip.mp4",
			TTL:         15 * time.Minute,
			Disposition: service.DispositionInline,
		}).
		Return("https://storage.example.com/signed", nil)

	link, err := fx.service.PreviewURL(ctx, admin, content.ID)

	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, link.ExpiresIn)
}

func TestAccessService_PreviewURL_NoMedia(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	content := testContent(uuid.New(), entity.ContentStatusApproved)
	admin := &usecase.ViewerInfo{UserID: uuid.New(), Role: entity.RoleAdmin}

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)

	link, err := fx.service.PreviewURL(ctx, admin, content.ID)

	require.Error(t, err)
	assert.Nil(t, link)
	assert.True(t, errors.Is(err, domainerrors.ErrMediaNotFound))
}

func TestAccessService_ThumbnailURL_NoViewerNeeded(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	content := contentWithMedia(uuid.New(), entity.ContentStatusApproved)

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)
	fx.storage.EXPECT().
		Presign(ctx, service.PresignRequest{
			Key:         "thumbnails/clip.jpg",
			TTL:         5 * time.Minute,
			Disposition: service.DispositionInline,
		}).
		Return("https://storage.example.com/signed", nil)

	link, err := fx.service.ThumbnailURL(ctx, content.ID)

	require.NoError(t, err)
	assert.NotEmpty(t, link.URL)
	assert.Equal(t, 5*time.Minute, link.ExpiresIn)
}

func TestAccessService_ThumbnailURL_Missing(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	content := testContent(uuid.New(), entity.ContentStatusApproved)

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)

	link, err := fx.service.ThumbnailURL(ctx, content.ID)

	require.Error(t, err)
	assert.Nil(t, link)
	assert.True(t, errors.Is(err, domainerrors.ErrMediaNotFound))
}

func TestAccessService_PresignFailure(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	content := contentWithMedia(uuid.New(), entity.ContentStatusApproved)
	admin := &usecase.ViewerInfo{UserID: uuid.New(), Role: entity.RoleAdmin}

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)
	fx.storage.EXPECT().
		Presign(ctx, service.PresignRequest{
			Key:         "media/clip.mp4",
			TTL:         30 * time.Minute,
			Disposition: service.DispositionAttachment,
			FileName:    "clip.mp4",
		}).
		Return("", errors.New("signature error"))

	link, err := fx.service.DownloadURL(ctx, admin, content.ID, "media/clip.mp4", 0)

	require.Error(t, err)
	assert.Nil(t, link)
	assert.True(t, errors.Is(err, domainerrors.ErrPresignFailed))
}

func boolPtr(b bool) *bool {
	return &b
}

func TestAccessService_DownloadAllURLs(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	content := contentWithMedia(uuid.New(), entity.ContentStatusApproved)
	content.MediaFiles = append(content.MediaFiles, entity.MediaFile{
		ID: "media/clip2.mp4", FileName: "clip2.mp4", ContentType: "video/mp4", Size: 2 << 20,
	})
	admin := &usecase.ViewerInfo{UserID: uuid.New(), Role: entity.RoleAdmin}

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)
	fx.storage.EXPECT().
		Presign(ctx, service.PresignRequest{
			Key:         "media/clip.mp4",
			TTL:         30 * time.Minute,
			Disposition: service.DispositionAttachment,
			FileName:    "clip.mp4",
		}).
		Return("https://storage.example.com/signed-1", nil)
	fx.storage.EXPECT().
		Presign(ctx, service.PresignRequest{
			Key:         "media/clip2.mp4",
			TTL:         30 * time.Minute,
			Disposition: service.DispositionAttachment,
			FileName:    "clip2.mp4",
		}).
		Return("https://storage.example.com/signed-2", nil)

	links, err := fx.service.DownloadAllURLs(ctx, admin, content.ID, 0)

	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "media/clip.mp4", links[0].MediaID)
	assert.Equal(t, "clip2.mp4", links[1].FileName)
	assert.Equal(t, "https://storage.example.com/signed-2", links[1].Link.URL)
}

func TestAccessService_DownloadAllURLs_SkipsFailedPresign(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	content := contentWithMedia(uuid.New(), entity.ContentStatusApproved)
	content.MediaFiles = append(content.MediaFiles, entity.MediaFile{
		ID: "media/clip2.mp4", FileName: "clip2.mp4", ContentType: "video/mp4", Size: 2 << 20,
	})
	admin := &usecase.ViewerInfo{UserID: uuid.New(), Role: entity.RoleAdmin}

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)
	fx.storage.EXPECT().
		Presign(ctx, service.PresignRequest{
			Key:         "media/clip.mp4",
			TTL:         30 * time.Minute,
			Disposition: service.DispositionAttachment,
			FileName:    "clip.mp4",
		}).
		Return("", errors.New("signing key rotated"))
	fx.storage.EXPECT().
		Presign(ctx, service.PresignRequest{
			Key:         "media/clip2.mp4",
			TTL:         30 * time.Minute,
			Disposition: service.DispositionAttachment,
			FileName:    "clip2.mp4",
		}).
		Return("https://storage.example.com/signed-2", nil)

	links, err := fx.service.DownloadAllURLs(ctx, admin, content.ID, 0)

	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "media/clip2.mp4", links[0].MediaID)
}

func TestAccessService_DownloadAllURLs_AllPresignsFail(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	content := contentWithMedia(uuid.New(), entity.ContentStatusApproved)
	admin := &usecase.ViewerInfo{UserID: uuid.New(), Role: entity.RoleAdmin}

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)
	fx.storage.EXPECT().
		Presign(ctx, service.PresignRequest{
			Key:         "media/clip.mp4",
			TTL:         30 * time.Minute,
			Disposition: service.DispositionAttachment,
			FileName:    "clip.mp4",
		}).
		Return("", errors.New("signing key rotated"))

	links, err := fx.service.DownloadAllURLs(ctx, admin, content.ID, 0)

	require.Error(t, err)
	assert.Nil(t, links)
	assert.True(t, errors.Is(err, domainerrors.ErrPresignFailed))
}

func TestAccessService_ViewAllURLs_NoMedia(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	content := testContent(uuid.New(), entity.ContentStatusApproved)
	admin := &usecase.ViewerInfo{UserID: uuid.New(), Role: entity.RoleAdmin}

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)

	links, err := fx.service.ViewAllURLs(ctx, admin, content.ID, 0)

	require.Error(t, err)
	assert.Nil(t, links)
	assert.True(t, errors.Is(err, domainerrors.ErrMediaNotFound))
}

func TestAccessService_ViewAllURLs_Inline(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	content := contentWithMedia(uuid.New(), entity.ContentStatusApproved)
	admin := &usecase.ViewerInfo{UserID: uuid.New(), Role: entity.RoleAdmin}

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)
	fx.storage.EXPECT().
		Presign(ctx, service.PresignRequest{
			Key:         "media/clip.mp4",
			TTL:         60 * time.Minute,
			Disposition: service.DispositionInline,
		}).
		Return("https://storage.example.com/signed", nil)

	links, err := fx.service.ViewAllURLs(ctx, admin, content.ID, 0)

	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, 60*time.Minute, links[0].Link.ExpiresIn)
}

func TestAccessService_DownloadAllURLs_GateStillApplies(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	content := contentWithMedia(uuid.New(), entity.ContentStatusApproved)

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)

	links, err := fx.service.DownloadAllURLs(ctx, nil, content.ID, 0)

	require.Error(t, err)
	assert.Nil(t, links)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAccessService_ThumbnailURL_FallsBackToImageFile(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	content := testContent(uuid.New(), entity.ContentStatusApproved)
	content.MediaFiles = []entity.MediaFile{
		{ID: "media/clip.mp4", FileName: "clip.mp4", ContentType: "video/mp4", Size: 1 << 20},
		{ID: "media/still.jpg", FileName: "still.jpg", ContentType: "image/jpeg", Size: 1 << 12},
	}

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)
	fx.storage.EXPECT().
		Presign(ctx, service.PresignRequest{
			Key:         "media/still.jpg",
			TTL:         5 * time.Minute,
			Disposition: service.DispositionInline,
		}).
		Return("https://storage.example.com/signed", nil)

	link, err := fx.service.ThumbnailURL(ctx, content.ID)

	require.NoError(t, err)
	assert.NotEmpty(t, link.URL)
}

func TestAccessService_ThumbnailURL_FallsBackToFirstFile(t *testing.T) {
	fx := createTestAccessService(t)

	ctx := context.Background()
	content := testContent(uuid.New(), entity.ContentStatusApproved)
	content.MediaFiles = []entity.MediaFile{
		{ID: "media/clip.mp4", FileName: "clip.mp4", ContentType: "video/mp4", Size: 1 << 20},
	}

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)
	fx.storage.EXPECT().
		Presign(ctx, service.PresignRequest{
			Key:         "media/clip.mp4",
			TTL:         5 * time.Minute,
			Disposition: service.DispositionInline,
		}).
		Return("https://storage.example.com/signed", nil)

	link, err := fx.service.ThumbnailURL(ctx, content.ID)

	require.NoError(t, err)
	assert.NotEmpty(t, link.URL)
}
