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
	"skyvault/internal/domain/service"
	mockRepo "skyvault/internal/mocks/repository"
	mockSvc "skyvault/internal/mocks/service"
	"skyvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	orderRepo   *mockRepo.MockOrderRepository
	contentRepo *mockRepo.MockContentRepository
	userRepo    *mockRepo.MockUserRepository
	cartStore   *mockRepo.MockCartStore
	storage     *mockSvc.MockObjectStorage
	mailer      *mockSvc.MockMailSender
	publisher   *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	contentRepo := mockRepo.NewMockContentRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	cartStore := mockRepo.NewMockCartStore(t)
	storage := mockSvc.NewMockObjectStorage(t)
	mailer := mockSvc.NewMockMailSender(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewOrderService(OrderServiceParams{
		OrderRepo:   orderRepo,
		ContentRepo: contentRepo,
		UserRepo:    userRepo,
		CartStore:   cartStore,
		Storage:     storage,
		Mailer:      mailer,
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:     svc,
		orderRepo:   orderRepo,
		contentRepo: contentRepo,
		userRepo:    userRepo,
		cartStore:   cartStore,
		storage:     storage,
		mailer:      mailer,
		publisher:   publisher,
	}
}

func testSlip() *usecase.UploadFileInput {
	return &usecase.UploadFileInput{
		FileName:    "slip.jpg",
		ContentType: "image/jpeg",
		Size:        2048,
		Body:        strings.NewReader("fake slip bytes"),
	}
}

func testCart(buyerID uuid.UUID, contents ...*entity.Content) *entity.Cart {
	cart := &entity.Cart{UserID: buyerID}
	for _, c := range contents {
		cart.Items = append(cart.Items, entity.CartItem{
			ContentID: c.ID,
			CreatorID: c.CreatorID,
			Title:     c.Title,
			Price:     c.Price,
			AddedAt:   time.Now(),
		})
	}

	return cart
}

func testOrder(buyerID, creatorID uuid.UUID, status entity.OrderStatus) *entity.Order {
	now := time.Now()

	return &entity.Order{
		ID:            uuid.New(),
		BuyerID:       buyerID,
		CreatorID:     creatorID,
		ContentIDs:    []uuid.UUID{uuid.New()},
		ContentTitles: []string{"Aerial coastline at dawn"},
		TotalAmount:   49.90,
		SlipKey:       "slips/abc.jpg",
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestOrderService_Checkout_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	creatorID := uuid.New()
	first := testContent(creatorID, entity.ContentStatusApproved)
	second := testContent(creatorID, entity.ContentStatusApproved)
	second.Title = "Vineyard rows in autumn"
	second.Price = 80.10

	fx.cartStore.EXPECT().Get(ctx, buyerID).Return(testCart(buyerID, first, second), nil)
	fx.contentRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{first.ID, second.ID}).
		Return([]*entity.Content{first, second}, nil)
	fx.storage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), mock.Anything, int64(2048), "image/jpeg").
		Return(nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)
	fx.cartStore.EXPECT().Clear(ctx, buyerID).Return(nil)

	creator := approvedCreator()
	fx.userRepo.EXPECT().FindByID(ctx, creatorID).Return(creator, nil)
	fx.mailer.EXPECT().
		Send(ctx, creator.Email, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Run(func(ctx context.Context, event *service.DomainEvent) {
			assert.Equal(t, service.EventOrderPlaced, event.Type)
			assert.Equal(t, buyerID.String(), event.ActorID)
		}).
		Return(nil)

	order, err := fx.service.Checkout(ctx, &usecase.CheckoutInput{BuyerID: buyerID, Slip: testSlip()})

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, creatorID, order.CreatorID)
	assert.InDelta(t, 130.0, order.TotalAmount, 0.001)
	assert.Len(t, order.ContentIDs, 2)
	assert.NotEmpty(t, order.SlipKey)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()

	fx.cartStore.EXPECT().Get(ctx, buyerID).Return(&entity.Cart{UserID: buyerID}, nil)

	order, err := fx.service.Checkout(ctx, &usecase.CheckoutInput{BuyerID: buyerID, Slip: testSlip()})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrCartEmpty))
}

func TestOrderService_Checkout_MissingSlip(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	content := testContent(uuid.New(), entity.ContentStatusApproved)

	fx.cartStore.EXPECT().Get(ctx, buyerID).Return(testCart(buyerID, content), nil)

	order, err := fx.service.Checkout(ctx, &usecase.CheckoutInput{BuyerID: buyerID})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentSlipRequired))
}

func TestOrderService_Checkout_CartedItemVanished(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	content := testContent(uuid.New(), entity.ContentStatusApproved)

	fx.cartStore.EXPECT().Get(ctx, buyerID).Return(testCart(buyerID, content), nil)
	fx.contentRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{content.ID}).
		Return([]*entity.Content{}, nil)

	order, err := fx.service.Checkout(ctx, &usecase.CheckoutInput{BuyerID: buyerID, Slip: testSlip()})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrContentNotAvailable))
}

func TestOrderService_Checkout_CartedItemNoLongerApproved(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	content := testContent(uuid.New(), entity.ContentStatusApproved)

	fx.cartStore.EXPECT().Get(ctx, buyerID).Return(testCart(buyerID, content), nil)

	// Pulled from the catalog between carting and checkout.
	content.Status = entity.ContentStatusSuspended
	fx.contentRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{content.ID}).
		Return([]*entity.Content{content}, nil)

	order, err := fx.service.Checkout(ctx, &usecase.CheckoutInput{BuyerID: buyerID, Slip: testSlip()})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrContentNotAvailable))
}

func TestOrderService_Checkout_MixedCreators(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	first := testContent(uuid.New(), entity.ContentStatusApproved)
	second := testContent(uuid.New(), entity.ContentStatusApproved)

	fx.cartStore.EXPECT().Get(ctx, buyerID).Return(testCart(buyerID, first, second), nil)
	fx.contentRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{first.ID, second.ID}).
		Return([]*entity.Content{first, second}, nil)

	order, err := fx.service.Checkout(ctx, &usecase.CheckoutInput{BuyerID: buyerID, Slip: testSlip()})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrCartCreatorMismatch))
}

func TestOrderService_Checkout_ReclaimsSlipWhenOrderInsertFails(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	content := testContent(uuid.New(), entity.ContentStatusApproved)

	fx.cartStore.EXPECT().Get(ctx, buyerID).Return(testCart(buyerID, content), nil)
	fx.contentRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{content.ID}).
		Return([]*entity.Content{content}, nil)

	var slipKey string
	fx.storage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), mock.Anything, int64(2048), "image/jpeg").
		Run(func(ctx context.Context, key string, body io.Reader, size int64, contentType string) {
			slipKey = key
		}).
		Return(nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(errors.New("insert failed"))
	fx.storage.EXPECT().
		Delete(ctx, mock.AnythingOfType("string")).
		Run(func(ctx context.Context, key string) {
			assert.Equal(t, slipKey, key)
		}).
		Return(nil)

	order, err := fx.service.Checkout(ctx, &usecase.CheckoutInput{BuyerID: buyerID, Slip: testSlip()})

	require.Error(t, err)
	assert.Nil(t, order)
}

func TestOrderService_Checkout_RejectsOversizedSlip(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	content := testContent(uuid.New(), entity.ContentStatusApproved)

	fx.cartStore.EXPECT().Get(ctx, buyerID).Return(testCart(buyerID, content), nil)
	fx.contentRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{content.ID}).
		Return([]*entity.Content{content}, nil)

	slip := testSlip()
	slip.Size = 21 << 20

	order, err := fx.service.Checkout(ctx, &usecase.CheckoutInput{BuyerID: buyerID, Slip: slip})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrFileTooLarge))
}

func TestOrderService_Approve_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyer := entity.NewUser("buyer@example.com", "Buyer", "hash", entity.RoleBuyer)
	creator := approvedCreator()
	order := testOrder(buyer.ID, creator.ID, entity.OrderStatusPending)

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().
		UpdateStatusIfPending(ctx, order.ID, entity.OrderStatusApproved, "looks good", mock.AnythingOfType("time.Time")).
		Return(nil)
	fx.contentRepo.EXPECT().RecordPurchase(ctx, order.ContentIDs).Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, buyer.ID).Return(buyer, nil)
	fx.userRepo.EXPECT().FindByID(ctx, creator.ID).Return(creator, nil)
	fx.mailer.EXPECT().
		Send(ctx, buyer.Email, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil)
	fx.mailer.EXPECT().
		Send(ctx, creator.Email, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Run(func(ctx context.Context, event *service.DomainEvent) {
			assert.Equal(t, service.EventOrderApproved, event.Type)
		}).
		Return(nil)

	decided, err := fx.service.Approve(ctx, creator.ID, order.ID, "looks good")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusApproved, decided.Status)
	assert.Equal(t, "looks good", decided.DecisionNote)
	require.NotNil(t, decided.DecidedAt)
}

func TestOrderService_Reject_StatsNotTouched(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyer := entity.NewUser("buyer@example.com", "Buyer", "hash", entity.RoleBuyer)
	creator := approvedCreator()
	order := testOrder(buyer.ID, creator.ID, entity.OrderStatusPending)

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().
		UpdateStatusIfPending(ctx, order.ID, entity.OrderStatusRejected, "slip unreadable", mock.AnythingOfType("time.Time")).
		Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, buyer.ID).Return(buyer, nil)
	fx.userRepo.EXPECT().FindByID(ctx, creator.ID).Return(creator, nil)
	fx.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil).
		Times(2)
	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Run(func(ctx context.Context, event *service.DomainEvent) {
			assert.Equal(t, service.EventOrderRejected, event.Type)
		}).
		Return(nil)

	decided, err := fx.service.Reject(ctx, creator.ID, order.ID, "slip unreadable")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusRejected, decided.Status)
}

func TestOrderService_Decide_OwnershipViolation(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := testOrder(uuid.New(), uuid.New(), entity.OrderStatusPending)

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	decided, err := fx.service.Approve(ctx, uuid.New(), order.ID, "")

	require.Error(t, err)
	assert.Nil(t, decided)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderOwnershipViolation))
}

func TestOrderService_Decide_AlreadyProcessed(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	order := testOrder(uuid.New(), creatorID, entity.OrderStatusApproved)

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	decided, err := fx.service.Reject(ctx, creatorID, order.ID, "")

	require.Error(t, err)
	assert.Nil(t, decided)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderAlreadyProcessed))
}

func TestOrderService_Decide_LostRace(t *testing.T) {
	// The read sees pending, but another decision lands first. The
	// conditional update reports the conflict.
	fx := createTestOrderService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	order := testOrder(uuid.New(), creatorID, entity.OrderStatusPending)

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().
		UpdateStatusIfPending(ctx, order.ID, entity.OrderStatusApproved, "", mock.AnythingOfType("time.Time")).
		Return(repository.ErrOrderNotPending)

	decided, err := fx.service.Approve(ctx, creatorID, order.ID, "")

	require.Error(t, err)
	assert.Nil(t, decided)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderAlreadyProcessed))
}

func TestOrderService_SlipURL_Permissions(t *testing.T) {
	buyerID := uuid.New()
	creatorID := uuid.New()

	tests := []struct {
		name    string
		viewer  *usecase.ViewerInfo
		allowed bool
	}{
		{name: "anonymous", viewer: nil, allowed: false},
		{name: "buyer", viewer: &usecase.ViewerInfo{UserID: buyerID, Role: entity.RoleBuyer}, allowed: true},
		{name: "creator", viewer: &usecase.ViewerInfo{UserID: creatorID, Role: entity.RoleCreator}, allowed: true},
		{name: "admin", viewer: &usecase.ViewerInfo{UserID: uuid.New(), Role: entity.RoleAdmin}, allowed: true},
		{name: "stranger", viewer: &usecase.ViewerInfo{UserID: uuid.New(), Role: entity.RoleBuyer}, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			ctx := context.Background()
			order := testOrder(buyerID, creatorID, entity.OrderStatusPending)

			fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			if tt.allowed {
				fx.storage.EXPECT().
					Presign(ctx, service.PresignRequest{
						Key:         order.SlipKey,
						TTL:         15 * time.Minute,
						Disposition: service.DispositionInline,
					}).
					Return("https://storage.example.com/signed", nil)
			}

			url, err := fx.service.SlipURL(ctx, tt.viewer, order.ID)

			if tt.allowed {
				require.NoError(t, err)
				assert.NotEmpty(t, url)
			} else {
				require.Error(t, err)
				assert.Empty(t, url)
				assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
			}
		})
	}
}

func TestOrderService_ListMine_ApprovedOnly(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	approved := entity.OrderStatusApproved
	order := testOrder(buyerID, uuid.New(), entity.OrderStatusApproved)

	fx.orderRepo.EXPECT().
		FindByBuyer(ctx, buyerID, &approved).
		Return([]*entity.Order{order}, nil)

	orders, err := fx.service.ListMine(ctx, buyerID, &approved)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, entity.OrderStatusApproved, orders[0].Status)
}

func TestOrderService_ListMine_Unfiltered(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	pending := testOrder(buyerID, uuid.New(), entity.OrderStatusPending)
	rejected := testOrder(buyerID, uuid.New(), entity.OrderStatusRejected)

	fx.orderRepo.EXPECT().
		FindByBuyer(ctx, buyerID, (*entity.OrderStatus)(nil)).
		Return([]*entity.Order{pending, rejected}, nil)

	orders, err := fx.service.ListMine(ctx, buyerID, nil)

	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
