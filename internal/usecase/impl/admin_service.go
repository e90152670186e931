package impl

import (
	"context"
	"fmt"
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

// adminService implements the AdminUsecase interface.
type adminService struct {
	userRepo    repository.UserRepository
	contentRepo repository.ContentRepository
	mailer      service.MailSender
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ContentRepo repository.ContentRepository
	Mailer      service.MailSender
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		userRepo:    params.UserRepo,
		contentRepo: params.ContentRepo,
		mailer:      params.Mailer,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns accounts filtered by role and approval state.
func (srv *adminService) ListUsers(ctx context.Context, role *entity.Role, approved *bool) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx, role, approved)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// SetUserApproval flips an account's approval flag.
func (srv *adminService) SetUserApproval(ctx context.Context, userID uuid.UUID, approved bool) (*entity.User, error) {
	if err := srv.userRepo.SetApproved(ctx, userID, approved); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "approval update failed")
		}

		return nil, errors.Wrap(err, "failed to update approval")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload user")
	}

	srv.log(ctx).Info("User approval updated",
		slog.Any("userID", userID),
		slog.Bool("approved", approved),
	)

	if approved {
		srv.publishEvent(ctx, service.EventUserApproved, userID.String())
		srv.notifyApproval(ctx, user)
	}

	return user, nil
}

// RejectCreator removes a creator application that never passed review.
func (srv *adminService) RejectCreator(ctx context.Context, userID uuid.UUID) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "creator rejection failed")
		}

		return errors.Wrap(err, "failed to load user for rejection")
	}

	if !user.IsCreator() || user.Approved {
		// Rejection only ends a pending application; live accounts go
		// through approval revocation instead.
		return errors.Wrap(domainerrors.ErrValidationFailed, "only pending creator applications can be rejected")
	}

	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete rejected creator")
	}

	srv.log(ctx).Info("Creator application rejected", slog.Any("userID", userID))

	srv.publishEvent(ctx, service.EventUserRejected, userID.String())
	srv.notifyRejection(ctx, user)

	return nil
}

// ListContentByStatus pages through listings in one moderation state.
func (srv *adminService) ListContentByStatus(ctx context.Context, status entity.ContentStatus, page repository.PageRequest) (*repository.Page[*entity.Content], error) {
	if !status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown content status "+status.String())
	}

	result, err := srv.contentRepo.FindByStatus(ctx, status, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list content by status")
	}

	return result, nil
}

// ReviewContent moves a listing to approved, rejected or suspended.
func (srv *adminService) ReviewContent(ctx context.Context, adminID, contentID uuid.UUID, status entity.ContentStatus) (*entity.Content, error) {
	if !status.IsValid() || status == entity.ContentStatusPendingReview {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid review status "+status.String())
	}

	content, err := srv.contentRepo.FindByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrContentNotFound, "review failed")
		}

		return nil, errors.Wrap(err, "failed to load content for review")
	}

	content.Status = status
	content.UpdatedAt = time.Now()
	if err := srv.contentRepo.Update(ctx, content); err != nil {
		return nil, errors.Wrap(err, "failed to update content status")
	}

	srv.log(ctx).Info("Content reviewed",
		slog.Any("contentID", contentID),
		slog.Any("adminID", adminID),
		slog.String("status", status.String()),
	)

	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.EventContentReviewed,
		SubjectID:  contentID.String(),
		ActorID:    adminID.String(),
		OccurredAt: time.Now(),
		Detail:     status.String(),
	}
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish review event", slog.Any("contentID", contentID), slog.Any("error", err))
	}

	srv.notifyReview(ctx, content)

	return content, nil
}

// notifyApproval mails a freshly approved creator. Best effort.
func (srv *adminService) notifyApproval(ctx context.Context, user *entity.User) {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your creator account has been approved. You can now sign in and publish footage.</p>",
		user.Name,
	)
	if err := srv.mailer.Send(ctx, user.Email, "Your account was approved", body); err != nil {
		srv.log(ctx).Warn("Best-effort mail failed", slog.String("to", user.Email), slog.Any("error", err))
	}
}

// notifyRejection mails a rejected creator applicant. Best effort.
func (srv *adminService) notifyRejection(ctx context.Context, user *entity.User) {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your creator application was not approved. You are welcome to apply again with updated details.</p>",
		user.Name,
	)
	if err := srv.mailer.Send(ctx, user.Email, "Your creator application", body); err != nil {
		srv.log(ctx).Warn("Best-effort mail failed", slog.String("to", user.Email), slog.Any("error", err))
	}
}

// notifyReview mails the listing's creator about the verdict. Best effort.
func (srv *adminService) notifyReview(ctx context.Context, content *entity.Content) {
	creator, err := srv.userRepo.FindByID(ctx, content.CreatorID)
	if err != nil {
		srv.log(ctx).Warn("Cannot notify creator, lookup failed", slog.Any("creatorID", content.CreatorID), slog.Any("error", err))

		return
	}

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your listing <b>%s</b> was moved to <b>%s</b>.</p>",
		creator.Name, content.Title, content.Status.String(),
	)
	if err := srv.mailer.Send(ctx, creator.Email, "Listing review result", body); err != nil {
		srv.log(ctx).Warn("Best-effort mail failed", slog.String("to", creator.Email), slog.Any("error", err))
	}
}

func (srv *adminService) publishEvent(ctx context.Context, eventType, subjectID string) {
	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		SubjectID:  subjectID,
		OccurredAt: time.Now(),
	}
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish event", slog.String("type", eventType), slog.Any("error", err))
	}
}
