package impl

import (
	"context"
	"testing"

	"skyvault/internal/domain/entity"
	domainerrors "skyvault/internal/domain/errors"
	"skyvault/internal/domain/repository"
	mockRepo "skyvault/internal/mocks/repository"
	"skyvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartStore   *mockRepo.MockCartStore
	contentRepo *mockRepo.MockContentRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartStore := mockRepo.NewMockCartStore(t)
	contentRepo := mockRepo.NewMockContentRepository(t)

	service := NewCartService(CartServiceParams{
		CartStore:   cartStore,
		ContentRepo: contentRepo,
		Logger:      newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:     service,
		cartStore:   cartStore,
		contentRepo: contentRepo,
	}
}

func TestCartService_Add_SnapshotsPriceAndTitle(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	content := testContent(uuid.New(), entity.ContentStatusApproved)

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)
	fx.cartStore.EXPECT().
		AddItem(ctx, userID, mock.AnythingOfType("entity.CartItem")).
		Run(func(ctx context.Context, uid uuid.UUID, item entity.CartItem) {
			assert.Equal(t, content.Title, item.Title)
			assert.Equal(t, content.Price, item.Price)
			assert.Equal(t, content.CreatorID, item.CreatorID)
		}).
		Return(&entity.Cart{UserID: userID}, nil)

	cart, err := fx.service.Add(ctx, userID, content.ID)

	require.NoError(t, err)
	assert.NotNil(t, cart)
}

func TestCartService_Add_UnapprovedContent(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	content := testContent(uuid.New(), entity.ContentStatusPendingReview)

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)

	cart, err := fx.service.Add(ctx, uuid.New(), content.ID)

	require.Error(t, err)
	assert.Nil(t, cart)
	assert.True(t, errors.Is(err, domainerrors.ErrContentNotAvailable))
}

func TestCartService_Add_OwnContent(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	content := testContent(creatorID, entity.ContentStatusApproved)

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)

	cart, err := fx.service.Add(ctx, creatorID, content.ID)

	require.Error(t, err)
	assert.Nil(t, cart)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCartService_Add_ContentMissing(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	contentID := uuid.New()

	fx.contentRepo.EXPECT().
		FindByID(ctx, contentID).
		Return(nil, repository.ErrContentNotFound)

	cart, err := fx.service.Add(ctx, uuid.New(), contentID)

	require.Error(t, err)
	assert.Nil(t, cart)
	assert.True(t, errors.Is(err, domainerrors.ErrContentNotFound))
}

func TestCartService_Add_StorePropagatesMismatch(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	content := testContent(uuid.New(), entity.ContentStatusApproved)

	fx.contentRepo.EXPECT().FindByID(ctx, content.ID).Return(content, nil)
	fx.cartStore.EXPECT().
		AddItem(ctx, userID, mock.AnythingOfType("entity.CartItem")).
		Return(nil, domainerrors.ErrCartCreatorMismatch)

	cart, err := fx.service.Add(ctx, userID, content.ID)

	require.Error(t, err)
	assert.Nil(t, cart)
	assert.True(t, errors.Is(err, domainerrors.ErrCartCreatorMismatch))
}

func TestCartService_GetRemoveClear(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	contentID := uuid.New()
	empty := &entity.Cart{UserID: userID, Items: []entity.CartItem{}}

	fx.cartStore.EXPECT().Get(ctx, userID).Return(empty, nil)
	fx.cartStore.EXPECT().RemoveItem(ctx, userID, contentID).Return(empty, nil)
	fx.cartStore.EXPECT().Clear(ctx, userID).Return(nil)

	cart, err := fx.service.Get(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	cart, err = fx.service.Remove(ctx, userID, contentID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	require.NoError(t, fx.service.Clear(ctx, userID))
}
