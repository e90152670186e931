package impl

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"skyvault/internal/domain/entity"
	domainerrors "skyvault/internal/domain/errors"
	"skyvault/internal/domain/repository"
	mockRepo "skyvault/internal/mocks/repository"
	mockSvc "skyvault/internal/mocks/service"
	"skyvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contentServiceFixtures struct {
	service     usecase.ContentUsecase
	contentRepo *mockRepo.MockContentRepository
	userRepo    *mockRepo.MockUserRepository
	storage     *mockSvc.MockObjectStorage
}

func createTestContentService(t *testing.T) contentServiceFixtures {
	contentRepo := mockRepo.NewMockContentRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	storage := mockSvc.NewMockObjectStorage(t)

	service := NewContentService(ContentServiceParams{
		ContentRepo: contentRepo,
		UserRepo:    userRepo,
		Storage:     storage,
		Logger:      newDiscardLogger(),
	})

	return contentServiceFixtures{
		service:     service,
		contentRepo: contentRepo,
		userRepo:    userRepo,
		storage:     storage,
	}
}

func approvedCreator() *entity.User {
	creator := entity.NewUser("pilot@example.com", "Pilot", "hash", entity.RoleCreator)
	creator.Approved = true

	return creator
}

func testContent(creatorID uuid.UUID, status entity.ContentStatus) *entity.Content {
	now := time.Now()

	return &entity.Content{
		ID:        uuid.New(),
		CreatorID: creatorID,
		Title:     "Aerial coastline at dawn",
		Price:     49.90,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestContentService_Create_Success(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	creator := approvedCreator()

	fx.userRepo.EXPECT().FindByID(ctx, creator.ID).Return(creator, nil)
	fx.contentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Content")).
		Return(nil)

	content, err := fx.service.Create(ctx, &usecase.CreateContentInput{
		CreatorID:   creator.ID,
		Title:       "Mountain ridge flyover",
		Price:       120,
		LicenseType: entity.LicenseRoyaltyFree,
	})

	require.NoError(t, err)
	require.NotNil(t, content)
	assert.Equal(t, entity.ContentStatusPendingReview, content.Status)
	assert.Equal(t, creator.ID, content.CreatorID)
}

func TestContentService_Create_BuyerForbidden(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	buyer := entity.NewUser("buyer@example.com", "Buyer", "hash", entity.RoleBuyer)

	fx.userRepo.EXPECT().FindByID(ctx, buyer.ID).Return(buyer, nil)

	content, err := fx.service.Create(ctx, &usecase.CreateContentInput{
		CreatorID: buyer.ID,
		Title:     "Nope",
		Price:     10,
	})

	require.Error(t, err)
	assert.Nil(t, content)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestContentService_Create_UnapprovedCreator(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	creator := entity.NewUser("pilot@example.com", "Pilot", "hash", entity.RoleCreator)
	require.False(t, creator.Approved)

	fx.userRepo.EXPECT().FindByID(ctx, creator.ID).Return(creator, nil)

	content, err := fx.service.Create(ctx, &usecase.CreateContentInput{
		CreatorID: creator.ID,
		Title:     "Too early",
		Price:     10,
	})

	require.Error(t, err)
	assert.Nil(t, content)
	assert.True(t, errors.Is(err, domainerrors.ErrPendingApproval))
}

func TestContentService_Create_Validation(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	creator := approvedCreator()

	tests := []struct {
		name  string
		input *usecase.CreateContentInput
	}{
		{
			name: "blank title",
			input: &usecase.CreateContentInput{
				CreatorID: creator.ID,
				Title:     "   ",
				Price:     10,
			},
		},
		{
			name: "negative price",
			input: &usecase.CreateContentInput{
				CreatorID: creator.ID,
				Title:     "Valid title",
				Price:     -1,
			},
		},
		{
			name: "unknown license",
			input: &usecase.CreateContentInput{
				CreatorID:   creator.ID,
				Title:       "Valid title",
				Price:       10,
				LicenseType: entity.LicenseType("bogus"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx.userRepo.EXPECT().FindByID(ctx, creator.ID).Return(creator, nil).Once()

			content, err := fx.service.Create(ctx, tt.input)

			require.Error(t, err)
			assert.Nil(t, content)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestContentService_Update_ApprovedGoesBackToReview(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	creator := approvedCreator()
	content := testContent(creator.ID, entity.ContentStatusApproved)

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)
	fx.contentRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Content")).
		Return(nil)

	newTitle := "Re-cut coastline at dawn"
	updated, err := fx.service.Update(ctx, creator.ID, content.ID, &usecase.UpdateContentInput{
		Title: &newTitle,
	})

	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, entity.ContentStatusPendingReview, updated.Status)
}

func TestContentService_Update_OwnershipViolation(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	content := testContent(uuid.New(), entity.ContentStatusApproved)

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)

	updated, err := fx.service.Update(ctx, uuid.New(), content.ID, &usecase.UpdateContentInput{})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrContentOwnershipViolation))
}

func TestContentService_Delete_StorageFailureDoesNotBlock(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	creator := approvedCreator()
	content := testContent(creator.ID, entity.ContentStatusApproved)
	content.MediaFiles = []entity.MediaFile{
		{ID: "media/abc.mp4", FileName: "abc.mp4", ContentType: "video/mp4", Size: 1024},
	}
	content.ThumbnailFile = &entity.MediaFile{ID: "thumbnails/abc.jpg", FileName: "abc.jpg", ContentType: "image/jpeg", Size: 64}

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)
	fx.contentRepo.EXPECT().Delete(ctx, content.ID).Return(nil)
	fx.storage.EXPECT().Delete(ctx, "media/abc.mp4").Return(errors.New("bucket unreachable"))
	fx.storage.EXPECT().Delete(ctx, "thumbnails/abc.jpg").Return(nil)

	err := fx.service.Delete(ctx, creator.ID, content.ID)

	require.NoError(t, err)
}

func TestContentService_AddMedia_RejectsUnsupportedType(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	creator := approvedCreator()
	content := testContent(creator.ID, entity.ContentStatusPendingReview)

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)

	got, err := fx.service.AddMedia(ctx, creator.ID, content.ID, &usecase.UploadFileInput{
		FileName:    "notes.txt",
		ContentType: "text/plain",
		Size:        12,
		Body:        strings.NewReader("hello"),
	})

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedFileType))
}

func TestContentService_AddMedia_ReclaimsBlobOnUpdateFailure(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	creator := approvedCreator()
	content := testContent(creator.ID, entity.ContentStatusPendingReview)

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)

	var storedKey string
	fx.storage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), mock.Anything, int64(1024), "video/mp4").
		Run(func(ctx context.Context, key string, body io.Reader, size int64, contentType string) {
			storedKey = key
		}).
		Return(nil)
	fx.contentRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Content")).
		Return(errors.New("deadlock"))
	fx.storage.EXPECT().
		Delete(ctx, mock.AnythingOfType("string")).
		Run(func(ctx context.Context, key string) {
			assert.Equal(t, storedKey, key)
		}).
		Return(nil)

	got, err := fx.service.AddMedia(ctx, creator.ID, content.ID, &usecase.UploadFileInput{
		FileName:    "clip.mp4",
		ContentType: "video/mp4",
		Size:        1024,
		Body:        strings.NewReader("fake bytes"),
	})

	require.Error(t, err)
	assert.Nil(t, got)
}

func TestContentService_RemoveMedia_NotAttached(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	creator := approvedCreator()
	content := testContent(creator.ID, entity.ContentStatusApproved)

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)

	got, err := fx.service.RemoveMedia(ctx, creator.ID, content.ID, "media/missing.mp4")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrMediaNotFound))
}

func TestContentService_GetPublic_HidesUnapprovedFromStrangers(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	content := testContent(uuid.New(), entity.ContentStatusPendingReview)

	stranger := &usecase.ViewerInfo{UserID: uuid.New(), Role: entity.RoleBuyer}

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil).Times(2)

	got, err := fx.service.GetPublic(ctx, stranger, content.ID)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrContentNotFound))

	got, err = fx.service.GetPublic(ctx, nil, content.ID)
	require.Error(t, err)
	assert.Nil(t, got)
}

func TestContentService_GetPublic_OwnerSeesPendingListing(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	content := testContent(creatorID, entity.ContentStatusPendingReview)
	owner := &usecase.ViewerInfo{UserID: creatorID, Role: entity.RoleCreator}

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)

	got, err := fx.service.GetPublic(ctx, owner, content.ID)

	require.NoError(t, err)
	assert.Equal(t, content.ID, got.ID)
}

func TestContentService_GetPublic_CountsViewOnApproved(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	content := testContent(uuid.New(), entity.ContentStatusApproved)
	content.Views = 7

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)
	fx.contentRepo.EXPECT().IncrementViews(ctx, content.ID).Return(nil)

	got, err := fx.service.GetPublic(ctx, nil, content.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(8), got.Views)
}

func TestContentService_GetPublic_LostViewCountIsNotFatal(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	content := testContent(uuid.New(), entity.ContentStatusApproved)

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)
	fx.contentRepo.EXPECT().IncrementViews(ctx, content.ID).Return(errors.New("timeout"))

	got, err := fx.service.GetPublic(ctx, nil, content.ID)

	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestContentService_Search(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	search := repository.ContentSearch{Query: "coastline"}
	page := repository.PageRequest{Page: 0, Size: 20}

	fx.contentRepo.EXPECT().
		Search(ctx, search, page).
		Return(&repository.Page[*entity.Content]{Total: 0}, nil)

	result, err := fx.service.Search(ctx, &usecase.SearchContentInput{Search: search, Page: page})

	require.NoError(t, err)
	assert.Zero(t, result.Total)
}
