package impl

import (
	"context"
	"fmt"
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

const (
	// slipURLTTL bounds payment slip links. Slips carry bank details, so
	// they get the shortest ceiling of all presigned objects.
	slipURLTTL = 15 * time.Minute

	// maxSlipFileSize bounds an uploaded payment slip.
	maxSlipFileSize = 20 << 20 // 20 MiB
)

// allowedSlipTypes lists the content types accepted as payment slips.
var allowedSlipTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo   repository.OrderRepository
	contentRepo repository.ContentRepository
	userRepo    repository.UserRepository
	cartStore   repository.CartStore
	storage     service.ObjectStorage
	mailer      service.MailSender
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	ContentRepo repository.ContentRepository
	UserRepo    repository.UserRepository
	CartStore   repository.CartStore
	Storage     service.ObjectStorage
	Mailer      service.MailSender
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:   params.OrderRepo,
		contentRepo: params.ContentRepo,
		userRepo:    params.UserRepo,
		cartStore:   params.CartStore,
		storage:     params.Storage,
		mailer:      params.Mailer,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout turns the buyer's cart into a pending order.
func (srv *orderService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*entity.Order, error) {
	srv.log(ctx).Info("Starting checkout", slog.Any("buyerID", input.BuyerID))

	cart, err := srv.cartStore.Get(ctx, input.BuyerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart for checkout")
	}
	if len(cart.Items) == 0 {
		return nil, errors.Wrap(domainerrors.ErrCartEmpty, "checkout failed")
	}
	if input.Slip == nil || input.Slip.Body == nil {
		return nil, errors.Wrap(domainerrors.ErrPaymentSlipRequired, "checkout failed")
	}

	// Re-validate against the database. The cart only snapshots intent;
	// listings may have been deleted or pulled since they were added.
	contentIDs := make([]uuid.UUID, 0, len(cart.Items))
	for _, item := range cart.Items {
		contentIDs = append(contentIDs, item.ContentID)
	}

	contents, err := srv.contentRepo.FindByIDs(ctx, contentIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load carted contents")
	}
	if len(contents) != len(contentIDs) {
		return nil, errors.Wrap(domainerrors.ErrContentNotAvailable, "a carted item no longer exists")
	}

	creatorID := contents[0].CreatorID
	total := 0.0
	titles := make([]string, 0, len(contents))
	for _, content := range contents {
		if !content.IsApproved() {
			return nil, errors.Wrap(domainerrors.ErrContentNotAvailable, "a carted item is no longer approved")
		}
		// Single-creator-per-order, enforced again as defense in depth.
		if content.CreatorID != creatorID {
			return nil, errors.Wrap(domainerrors.ErrCartCreatorMismatch, "checkout failed")
		}
		total += content.Price
		titles = append(titles, content.Title)
	}

	slipKey, err := srv.uploadSlip(ctx, input.Slip)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.Order{
		ID:            uuid.New(),
		BuyerID:       input.BuyerID,
		CreatorID:     creatorID,
		ContentIDs:    contentIDs,
		ContentTitles: titles,
		TotalAmount:   total,
		SlipKey:       slipKey,
		Status:        entity.OrderStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		// Reclaim the slip blob so a failed checkout leaves nothing behind.
		if delErr := srv.storage.Delete(ctx, slipKey); delErr != nil {
			srv.log(ctx).Warn("Failed to delete orphaned slip", slog.String("key", slipKey), slog.Any("error", delErr))
		}

		return nil, errors.Wrap(err, "failed to create order")
	}

	if err := srv.cartStore.Clear(ctx, input.BuyerID); err != nil {
		srv.log(ctx).Warn("Failed to clear cart after checkout", slog.Any("buyerID", input.BuyerID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", order.ID),
		slog.Any("creatorID", creatorID),
		slog.Float64("total", total),
		slog.Int("items", len(contentIDs)),
	)

	srv.notifyOrderPlaced(ctx, order)
	srv.publishEvent(ctx, service.EventOrderPlaced, order.ID.String(), input.BuyerID.String(), "")

	return order, nil
}

// ListMine returns the buyer's orders, newest first.
func (srv *orderService) ListMine(ctx context.Context, buyerID uuid.UUID, status *entity.OrderStatus) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByBuyer(ctx, buyerID, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list buyer orders")
	}

	return orders, nil
}

// ListForCreator returns the orders addressed to the creator.
func (srv *orderService) ListForCreator(ctx context.Context, creatorID uuid.UUID, status *entity.OrderStatus) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByCreator(ctx, creatorID, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list creator orders")
	}

	return orders, nil
}

// Approve confirms the bank transfer and unlocks buyer access.
func (srv *orderService) Approve(ctx context.Context, creatorID, orderID uuid.UUID, note string) (*entity.Order, error) {
	return srv.decide(ctx, creatorID, orderID, entity.OrderStatusApproved, note)
}

// Reject declines the payment slip.
func (srv *orderService) Reject(ctx context.Context, creatorID, orderID uuid.UUID, note string) (*entity.Order, error) {
	return srv.decide(ctx, creatorID, orderID, entity.OrderStatusRejected, note)
}

// decide runs the shared pending-to-terminal transition. The conditional
// update makes two concurrent decisions race-safe: exactly one wins, the
// other gets a conflict.
func (srv *orderService) decide(ctx context.Context, creatorID, orderID uuid.UUID, status entity.OrderStatus, note string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order decision failed")
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	if order.CreatorID != creatorID {
		return nil, errors.Wrap(domainerrors.ErrOrderOwnershipViolation, "order belongs to another creator")
	}
	if order.Status != entity.OrderStatusPending {
		return nil, errors.Wrap(domainerrors.ErrOrderAlreadyProcessed, "order decision failed")
	}

	decidedAt := time.Now()
	if err := srv.orderRepo.UpdateStatusIfPending(ctx, orderID, status, note, decidedAt); err != nil {
		if errors.Is(err, repository.ErrOrderNotPending) {
			return nil, errors.Wrap(domainerrors.ErrOrderAlreadyProcessed, "order was decided concurrently")
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	order.Status = status
	order.DecisionNote = note
	order.DecidedAt = &decidedAt

	if status == entity.OrderStatusApproved {
		if err := srv.contentRepo.RecordPurchase(ctx, order.ContentIDs); err != nil {
			// Stats are advisory; the approval itself already stands.
			srv.log(ctx).Warn("Failed to record purchase stats", slog.Any("orderID", orderID), slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Order decided",
		slog.Any("orderID", orderID),
		slog.String("status", status.String()),
	)

	srv.notifyOrderDecided(ctx, order)

	eventType := service.EventOrderApproved
	if status == entity.OrderStatusRejected {
		eventType = service.EventOrderRejected
	}
	srv.publishEvent(ctx, eventType, orderID.String(), creatorID.String(), note)

	return order, nil
}

// SlipURL issues a short-lived presigned URL for the payment slip.
func (srv *orderService) SlipURL(ctx context.Context, viewer *usecase.ViewerInfo, orderID uuid.UUID) (string, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return "", errors.Wrap(domainerrors.ErrOrderNotFound, "slip lookup failed")
		}

		return "", errors.Wrap(err, "failed to load order")
	}

	if viewer == nil {
		return "", errors.Wrap(domainerrors.ErrForbidden, "slip access denied")
	}
	allowed := viewer.Role == entity.RoleAdmin ||
		viewer.UserID == order.BuyerID ||
		viewer.UserID == order.CreatorID
	if !allowed {
		return "", errors.Wrap(domainerrors.ErrForbidden, "slip access denied")
	}

	url, err := srv.storage.Presign(ctx, service.PresignRequest{
		Key:         order.SlipKey,
		TTL:         slipURLTTL,
		Disposition: service.DispositionInline,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to presign slip", slog.Any("orderID", orderID), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrPresignFailed, "slip presign failed")
	}

	return url, nil
}

// uploadSlip validates and stores the payment slip.
func (srv *orderService) uploadSlip(ctx context.Context, slip *usecase.UploadFileInput) (string, error) {
	if !allowedSlipTypes[slip.ContentType] {
		return "", errors.Wrap(domainerrors.ErrUnsupportedFileType, "slip content type "+slip.ContentType)
	}
	if slip.Size <= 0 || slip.Size > maxSlipFileSize {
		return "", errors.Wrap(domainerrors.ErrFileTooLarge, "slip size "+util.FormatBytes(slip.Size))
	}

	key := util.NewStorageKey(constants.StoragePrefixSlip, slip.FileName)
	if err := srv.storage.Put(ctx, key, slip.Body, slip.Size, slip.ContentType); err != nil {
		srv.log(ctx).Error("Slip upload failed", slog.String("key", key), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrStorageUploadFailed, "slip upload failed")
	}

	return key, nil
}

// notifyOrderPlaced mails the creator about a new pending order.
// Mail is fire-and-forget: a failure is logged and swallowed.
func (srv *orderService) notifyOrderPlaced(ctx context.Context, order *entity.Order) {
	creator, err := srv.userRepo.FindByID(ctx, order.CreatorID)
	if err != nil {
		srv.log(ctx).Warn("Cannot notify creator, lookup failed", slog.Any("creatorID", order.CreatorID), slog.Any("error", err))

		return
	}

	subject := "New order awaiting your review"
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>A buyer placed an order for <b>%s</b> totalling <b>%.2f</b>.</p><p>Please review the payment slip and approve or reject the order.</p>",
		creator.Name, strings.Join(order.ContentTitles, ", "), order.TotalAmount,
	)
	srv.sendMail(ctx, creator.Email, subject, body)
}

// notifyOrderDecided mails both parties about the decision.
func (srv *orderService) notifyOrderDecided(ctx context.Context, order *entity.Order) {
	verdict := "approved"
	if order.Status == entity.OrderStatusRejected {
		verdict = "rejected"
	}
	titles := strings.Join(order.ContentTitles, ", ")

	if buyer, err := srv.userRepo.FindByID(ctx, order.BuyerID); err == nil {
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>Your order for <b>%s</b> was <b>%s</b>.</p>",
			buyer.Name, titles, verdict,
		)
		if order.Status == entity.OrderStatusApproved {
			body += "<p>You can now view and download the purchased footage.</p>"
		} else if order.DecisionNote != "" {
			body += fmt.Sprintf("<p>Reason: %s</p>", order.DecisionNote)
		}
		srv.sendMail(ctx, buyer.Email, fmt.Sprintf("Your order was %s", verdict), body)
	} else {
		srv.log(ctx).Warn("Cannot notify buyer, lookup failed", slog.Any("buyerID", order.BuyerID), slog.Any("error", err))
	}

	if creator, err := srv.userRepo.FindByID(ctx, order.CreatorID); err == nil {
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>You %s the order for <b>%s</b>.</p>",
			creator.Name, verdict, titles,
		)
		srv.sendMail(ctx, creator.Email, fmt.Sprintf("Order %s", verdict), body)
	}
}

func (srv *orderService) sendMail(ctx context.Context, to, subject, body string) {
	if err := srv.mailer.Send(ctx, to, subject, body); err != nil {
		srv.log(ctx).Warn("Best-effort mail failed",
			slog.String("to", to),
			slog.String("subject", subject),
			slog.Any("error", err),
		)
	}
}

func (srv *orderService) publishEvent(ctx context.Context, eventType, subjectID, actorID, detail string) {
	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		SubjectID:  subjectID,
		ActorID:    actorID,
		OccurredAt: time.Now(),
		Detail:     detail,
	}
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish event",
			slog.String("type", eventType),
			slog.String("subject_id", subjectID),
			slog.Any("error", err),
		)
	}
}
