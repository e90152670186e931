package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "skyvault/internal/delivery/context"
	"skyvault/internal/domain/entity"
	domainerrors "skyvault/internal/domain/errors"
	"skyvault/internal/domain/repository"
	"skyvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartStore   repository.CartStore
	contentRepo repository.ContentRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartStore   repository.CartStore
	ContentRepo repository.ContentRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartStore:   params.CartStore,
		contentRepo: params.ContentRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns the buyer's cart.
func (srv *cartService) Get(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartStore.Get(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

// Add puts an approved listing into the cart. The item snapshots price
// and title so a later price change does not silently change the order.
func (srv *cartService) Add(ctx context.Context, userID, contentID uuid.UUID) (*entity.Cart, error) {
	content, err := srv.contentRepo.FindByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrContentNotFound, "cart add failed")
		}

		return nil, errors.Wrap(err, "failed to load content for cart")
	}
	if !content.IsApproved() {
		return nil, errors.Wrap(domainerrors.ErrContentNotAvailable, "only approved content can be purchased")
	}
	if content.CreatorID == userID {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "creators cannot buy their own content")
	}

	cart, err := srv.cartStore.AddItem(ctx, userID, entity.CartItem{
		ContentID: content.ID,
		CreatorID: content.CreatorID,
		Title:     content.Title,
		Price:     content.Price,
		AddedAt:   time.Now(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add cart item")
	}

	srv.log(ctx).Debug("Cart item added",
		slog.Any("userID", userID),
		slog.Any("contentID", contentID),
	)

	return cart, nil
}

// Remove takes one listing out of the cart.
func (srv *cartService) Remove(ctx context.Context, userID, contentID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartStore.RemoveItem(ctx, userID, contentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return cart, nil
}

// Clear empties the cart.
func (srv *cartService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := srv.cartStore.Clear(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}
