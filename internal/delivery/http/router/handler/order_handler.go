package handler

import (
	"context"
	"log/slog"
	"net/http"

	"skyvault/internal/delivery/http/response"
	"skyvault/internal/domain/entity"
	"skyvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for checkout and order decision handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type orderDecisionRequest struct {
	Note string `json:"note" validate:"max=500"`
}

// Checkout turns the caller's cart into a pending order. The payment
// slip arrives as the multipart "slip" part.
func (h *OrderHandler) Checkout(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	header, err := c.FormFile("slip")
	if err != nil {
		return response.BadRequest(c, "PAYMENT_SLIP_REQUIRED", "A multipart 'slip' part is required")
	}
	src, err := header.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded slip")
	}
	defer src.Close()

	order, err := h.uc.Checkout(c.Request().Context(), &usecase.CheckoutInput{
		BuyerID: userID,
		Slip: &usecase.UploadFileInput{
			FileName:    header.Filename,
			ContentType: header.Header.Get(echo.HeaderContentType),
			Size:        header.Size,
			Body:        src,
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newOrderView(order))
}

// ListMine returns the caller's orders as a buyer, optionally filtered
// with ?status=approved.
func (h *OrderHandler) ListMine(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var status *entity.OrderStatus
	if raw := c.QueryParam("status"); raw != "" {
		parsed := entity.OrderStatus(raw)
		if !parsed.IsValid() {
			return response.BadRequest(c, "INVALID_INPUT", "Unknown order status '"+raw+"'")
		}
		status = &parsed
	}

	orders, err := h.uc.ListMine(c.Request().Context(), userID, status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderViews(orders))
}

// ListReceived returns the orders addressed to the caller as a creator,
// optionally filtered with ?status=pending.
func (h *OrderHandler) ListReceived(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var status *entity.OrderStatus
	if raw := c.QueryParam("status"); raw != "" {
		parsed := entity.OrderStatus(raw)
		if !parsed.IsValid() {
			return response.BadRequest(c, "INVALID_INPUT", "Unknown order status '"+raw+"'")
		}
		status = &parsed
	}

	orders, err := h.uc.ListForCreator(c.Request().Context(), userID, status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderViews(orders))
}

// Approve confirms the bank transfer for a pending order.
func (h *OrderHandler) Approve(c echo.Context) error {
	return h.decide(c, h.uc.Approve)
}

// Reject declines the payment slip for a pending order.
func (h *OrderHandler) Reject(c echo.Context) error {
	return h.decide(c, h.uc.Reject)
}

func (h *OrderHandler) decide(c echo.Context, apply func(ctx context.Context, creatorID, orderID uuid.UUID, note string) (*entity.Order, error)) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req orderDecisionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid decision input")
	}

	order, err := apply(c.Request().Context(), userID, orderID, req.Note)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderView(order))
}

// SlipURL issues a short-lived link to the order's payment slip.
func (h *OrderHandler) SlipURL(c echo.Context) error {
	viewer := viewerFromContext(c)
	if viewer == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	url, err := h.uc.SlipURL(c.Request().Context(), viewer, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url})
}
