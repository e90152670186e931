// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	deliverymiddleware "skyvault/internal/delivery/http/middleware"
	"skyvault/internal/delivery/http/response"
	"skyvault/internal/domain/entity"
	"skyvault/internal/domain/repository"
	"skyvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// userIDFromContext reads the authenticated caller's ID planted by the
// auth middleware.
func userIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(deliverymiddleware.ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

// viewerFromContext builds the viewer identity, or nil for anonymous
// callers on optionally authenticated routes.
func viewerFromContext(c echo.Context) *usecase.ViewerInfo {
	userID, ok := c.Get(deliverymiddleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return nil
	}
	role, ok := c.Get(deliverymiddleware.ContextKeyRole).(entity.Role)
	if !ok {
		return nil
	}

	return &usecase.ViewerInfo{UserID: userID, Role: role}
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}

	return id, nil
}

// pageFromQuery reads the page and size query parameters, leaving the
// repository defaults in place when absent.
func pageFromQuery(c echo.Context) repository.PageRequest {
	var page repository.PageRequest
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		page.Page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("size")); err == nil {
		page.Size = v
	}

	return page
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
