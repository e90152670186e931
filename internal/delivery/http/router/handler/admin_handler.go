package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"skyvault/internal/delivery/http/response"
	"skyvault/internal/domain/entity"
	"skyvault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for moderation handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

type setApprovalRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

type reviewContentRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected suspended"`
}

// ListUsers returns accounts, filterable with ?role= and ?approved=.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	var role *entity.Role
	if raw := c.QueryParam("role"); raw != "" {
		parsed := entity.Role(raw)
		if !parsed.IsValid() {
			return response.BadRequest(c, "INVALID_INPUT", "Unknown role '"+raw+"'")
		}
		role = &parsed
	}

	var approved *bool
	if raw := c.QueryParam("approved"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "approved must be true or false")
		}
		approved = &parsed
	}

	users, err := h.uc.ListUsers(c.Request().Context(), role, approved)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserViews(users))
}

// SetApproval flips an account's approval flag.
func (h *AdminHandler) SetApproval(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req setApprovalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid approval input")
	}
	if req.Approved == nil {
		return response.BadRequest(c, "INVALID_INPUT", "approved is required")
	}

	user, err := h.uc.SetUserApproval(c.Request().Context(), userID, *req.Approved)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user))
}

// RejectCreator deletes a creator application that is still awaiting
// review. Approved accounts are revoked through SetApproval instead.
func (h *AdminHandler) RejectCreator(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.RejectCreator(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Creator application rejected"})
}

// ListContent pages through listings in one moderation state, selected
// with ?status=.
func (h *AdminHandler) ListContent(c echo.Context) error {
	status := entity.ContentStatus(c.QueryParam("status"))
	if status == "" {
		status = entity.ContentStatusPendingReview
	}
	pageReq := pageFromQuery(c)

	page, err := h.uc.ListContentByStatus(c.Request().Context(), status, pageReq)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newContentPageView(page, pageReq, true))
}

// ReviewContent moves a listing to approved, rejected or suspended.
func (h *AdminHandler) ReviewContent(c echo.Context) error {
	adminID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	contentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req reviewContentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	content, err := h.uc.ReviewContent(c.Request().Context(), adminID, contentID, entity.ContentStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOwnerContentView(content))
}
