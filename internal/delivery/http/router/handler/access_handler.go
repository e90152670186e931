package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"skyvault/internal/delivery/http/response"
	"skyvault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccessHandler holds dependencies for the presigned URL endpoints.
type AccessHandler struct {
	uc     usecase.AccessUsecase
	logger *slog.Logger
}

// NewAccessHandler is the constructor for AccessHandler, injected by Fx.
func NewAccessHandler(uc usecase.AccessUsecase, logger *slog.Logger) *AccessHandler {
	return &AccessHandler{
		uc:     uc,
		logger: logger,
	}
}

// Check reports whether the caller may read the listing's media.
func (h *AccessHandler) Check(c echo.Context) error {
	contentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	allowed, err := h.uc.Check(c.Request().Context(), viewerFromContext(c), contentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"allowed": allowed})
}

// Download issues an attachment link for one media file. An optional
// ?ttl= query gives the requested lifetime in minutes.
func (h *AccessHandler) Download(c echo.Context) error {
	contentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	link, err := h.uc.DownloadURL(c.Request().Context(), viewerFromContext(c), contentID, c.Param("mediaID"), ttlFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newLinkView(link))
}

// View issues an inline link for one media file.
func (h *AccessHandler) View(c echo.Context) error {
	contentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	link, err := h.uc.ViewURL(c.Request().Context(), viewerFromContext(c), contentID, c.Param("mediaID"), ttlFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newLinkView(link))
}

// DownloadAll issues attachment links for every media file on the listing.
// Files whose presign fails are skipped rather than failing the batch.
func (h *AccessHandler) DownloadAll(c echo.Context) error {
	contentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	links, err := h.uc.DownloadAllURLs(c.Request().Context(), viewerFromContext(c), contentID, ttlFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newMediaLinkViews(links))
}

// ViewAll issues inline links for every media file on the listing.
func (h *AccessHandler) ViewAll(c echo.Context) error {
	contentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	links, err := h.uc.ViewAllURLs(c.Request().Context(), viewerFromContext(c), contentID, ttlFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newMediaLinkViews(links))
}

// Preview issues a fixed short-lived link to the listing's first media file.
func (h *AccessHandler) Preview(c echo.Context) error {
	contentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	link, err := h.uc.PreviewURL(c.Request().Context(), viewerFromContext(c), contentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newLinkView(link))
}

// Thumbnail issues a very short inline link to the listing's thumbnail.
// The route is public.
func (h *AccessHandler) Thumbnail(c echo.Context) error {
	contentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	link, err := h.uc.ThumbnailURL(c.Request().Context(), contentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newLinkView(link))
}

// ttlFromQuery parses the requested link lifetime in minutes. Zero means
// use the per-kind default.
func ttlFromQuery(c echo.Context) time.Duration {
	minutes, err := strconv.Atoi(c.QueryParam("ttl"))
	if err != nil || minutes <= 0 {
		return 0
	}

	return time.Duration(minutes) * time.Minute
}
