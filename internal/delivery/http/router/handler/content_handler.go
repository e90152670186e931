package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"skyvault/internal/delivery/http/response"
	"skyvault/internal/domain/entity"
	"skyvault/internal/domain/repository"
	"skyvault/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContentHandler holds dependencies for listing-related handlers.
type ContentHandler struct {
	uc     usecase.ContentUsecase
	logger *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(uc usecase.ContentUsecase, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		uc:     uc,
		logger: logger,
	}
}

type createContentRequest struct {
	Title             string              `json:"title" validate:"required,max=200"`
	Description       string              `json:"description"`
	Category          string              `json:"category"`
	Tags              []string            `json:"tags"`
	Location          string              `json:"location"`
	Coordinates       *entity.Coordinates `json:"coordinates"`
	Resolution        string              `json:"resolution"`
	Duration          int                 `json:"duration" validate:"gte=0"`
	YoutubePreview    string              `json:"youtubePreview"`
	Price             float64             `json:"price" validate:"gt=0"`
	LicenseType       string              `json:"licenseType" validate:"required,oneof=royalty_free limited_use exclusive"`
	DroneModel        string              `json:"droneModel"`
	ShootingDate      *time.Time          `json:"shootingDate"`
	WeatherConditions string              `json:"weatherConditions"`
	Altitude          float64             `json:"altitude"`
}

type updateContentRequest struct {
	Title             *string  `json:"title"`
	Description       *string  `json:"description"`
	Category          *string  `json:"category"`
	Tags              []string `json:"tags"`
	Location          *string  `json:"location"`
	Resolution        *string  `json:"resolution"`
	YoutubePreview    *string  `json:"youtubePreview"`
	Price             *float64 `json:"price"`
	LicenseType       *string  `json:"licenseType"`
	DroneModel        *string  `json:"droneModel"`
	WeatherConditions *string  `json:"weatherConditions"`
}

// Create handles the creation of a new listing.
func (h *ContentHandler) Create(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createContentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid listing input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	content, err := h.uc.Create(c.Request().Context(), &usecase.CreateContentInput{
		CreatorID:         userID,
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		Tags:              req.Tags,
		Location:          req.Location,
		Coordinates:       req.Coordinates,
		Resolution:        req.Resolution,
		Duration:          req.Duration,
		YoutubePreview:    req.YoutubePreview,
		Price:             req.Price,
		LicenseType:       entity.LicenseType(req.LicenseType),
		DroneModel:        req.DroneModel,
		ShootingDate:      req.ShootingDate,
		WeatherConditions: req.WeatherConditions,
		Altitude:          req.Altitude,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newOwnerContentView(content))
}

// Update handles edits to an existing listing.
func (h *ContentHandler) Update(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	contentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateContentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid listing input")
	}

	input := &usecase.UpdateContentInput{
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		Tags:              req.Tags,
		Location:          req.Location,
		Resolution:        req.Resolution,
		YoutubePreview:    req.YoutubePreview,
		Price:             req.Price,
		DroneModel:        req.DroneModel,
		WeatherConditions: req.WeatherConditions,
	}
	if req.LicenseType != nil {
		license := entity.LicenseType(*req.LicenseType)
		input.LicenseType = &license
	}

	content, err := h.uc.Update(c.Request().Context(), userID, contentID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOwnerContentView(content))
}

// Delete removes one of the caller's listings.
func (h *ContentHandler) Delete(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	contentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID, contentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Listing deleted"})
}

// ListMine returns all listings owned by the caller.
func (h *ContentHandler) ListMine(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	contents, err := h.uc.ListMine(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newContentViews(contents, true))
}

// Search pages through the public catalog.
func (h *ContentHandler) Search(c echo.Context) error {
	search := repository.ContentSearch{
		Query:      c.QueryParam("q"),
		Category:   c.QueryParam("category"),
		Location:   c.QueryParam("location"),
		Resolution: c.QueryParam("resolution"),
	}
	if v, err := strconv.ParseFloat(c.QueryParam("minPrice"), 64); err == nil {
		search.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.QueryParam("maxPrice"), 64); err == nil {
		search.MaxPrice = &v
	}
	pageReq := pageFromQuery(c)

	page, err := h.uc.Search(c.Request().Context(), &usecase.SearchContentInput{
		Search: search,
		Page:   pageReq,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newContentPageView(page, pageReq, false))
}

// GetDetail returns one listing. Anonymous callers only see approved
// listings; owners and admins also see unpublished ones.
func (h *ContentHandler) GetDetail(c echo.Context) error {
	contentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	viewer := viewerFromContext(c)
	content, err := h.uc.GetPublic(c.Request().Context(), viewer, contentID)
	if err != nil {
		return errors.WithStack(err)
	}

	if viewer != nil && (viewer.Role == entity.RoleAdmin || viewer.UserID == content.CreatorID) {
		return response.Success(c, http.StatusOK, newOwnerContentView(content))
	}

	return response.Success(c, http.StatusOK, newContentView(content))
}

// UploadMedia attaches one uploaded media file to a listing.
func (h *ContentHandler) UploadMedia(c echo.Context) error {
	return h.upload(c, h.uc.AddMedia)
}

// UploadThumbnail sets the listing's thumbnail image.
func (h *ContentHandler) UploadThumbnail(c echo.Context) error {
	return h.upload(c, h.uc.SetThumbnail)
}

func (h *ContentHandler) upload(c echo.Context, apply func(ctx context.Context, creatorID, contentID uuid.UUID, file *usecase.UploadFileInput) (*entity.Content, error)) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	contentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	header, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "MISSING_FILE", "A multipart 'file' part is required")
	}
	src, err := header.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	content, err := apply(c.Request().Context(), userID, contentID, &usecase.UploadFileInput{
		FileName:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Body:        src,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOwnerContentView(content))
}

// RemoveMedia detaches one media file from a listing.
func (h *ContentHandler) RemoveMedia(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	contentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	mediaID := c.Param("mediaID")
	if mediaID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Media ID is required")
	}

	content, err := h.uc.RemoveMedia(c.Request().Context(), userID, contentID, mediaID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOwnerContentView(content))
}
