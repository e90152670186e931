package handler

import (
	"time"

	"skyvault/internal/domain/entity"
	"skyvault/internal/domain/repository"
	"skyvault/internal/usecase"

	"github.com/google/uuid"
)

// View models keep entity internals, the password hash above all, out of
// API responses.

type userView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserView(u *entity.User) userView {
	return userView{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role.String(),
		Approved:  u.Approved,
		CreatedAt: u.CreatedAt,
	}
}

func newUserViews(users []*entity.User) []userView {
	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, newUserView(u))
	}

	return views
}

type contentView struct {
	ID                uuid.UUID           `json:"id"`
	CreatorID         uuid.UUID           `json:"creatorId"`
	Title             string              `json:"title"`
	Description       string              `json:"description"`
	Category          string              `json:"category"`
	Tags              []string            `json:"tags"`
	Location          string              `json:"location"`
	Coordinates       *entity.Coordinates `json:"coordinates,omitempty"`
	Resolution        string              `json:"resolution"`
	Duration          int                 `json:"duration"`
	YoutubePreview    string              `json:"youtubePreview,omitempty"`
	Price             float64             `json:"price"`
	LicenseType       string              `json:"licenseType"`
	DroneModel        string              `json:"droneModel,omitempty"`
	ShootingDate      *time.Time          `json:"shootingDate,omitempty"`
	WeatherConditions string              `json:"weatherConditions,omitempty"`
	Altitude          float64             `json:"altitude,omitempty"`
	MediaFiles        []entity.MediaFile  `json:"mediaFiles"`
	ThumbnailFile     *entity.MediaFile   `json:"thumbnailFile,omitempty"`
	Status            string              `json:"status"`
	Views             int64               `json:"views"`
	Downloads         int64               `json:"downloads"`
	Earnings          *float64            `json:"earnings,omitempty"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

func newContentView(content *entity.Content) contentView {
	return contentView{
		ID:                content.ID,
		CreatorID:         content.CreatorID,
		Title:             content.Title,
		Description:       content.Description,
		Category:          content.Category,
		Tags:              content.Tags,
		Location:          content.Location,
		Coordinates:       content.Coordinates,
		Resolution:        content.Resolution,
		Duration:          content.Duration,
		YoutubePreview:    content.YoutubePreview,
		Price:             content.Price,
		LicenseType:       string(content.LicenseType),
		DroneModel:        content.DroneModel,
		ShootingDate:      content.ShootingDate,
		WeatherConditions: content.WeatherConditions,
		Altitude:          content.Altitude,
		MediaFiles:        content.MediaFiles,
		ThumbnailFile:     content.ThumbnailFile,
		Status:            content.Status.String(),
		Views:             content.Views,
		Downloads:         content.Downloads,
		CreatedAt:         content.CreatedAt,
		UpdatedAt:         content.UpdatedAt,
	}
}

// newOwnerContentView includes the earnings figure, which only the owner
// and moderators get to see.
func newOwnerContentView(content *entity.Content) contentView {
	view := newContentView(content)
	earnings := content.Earnings
	view.Earnings = &earnings

	return view
}

func newContentViews(contents []*entity.Content, owner bool) []contentView {
	views := make([]contentView, 0, len(contents))
	for _, content := range contents {
		if owner {
			views = append(views, newOwnerContentView(content))
		} else {
			views = append(views, newContentView(content))
		}
	}

	return views
}

type pageView[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
}

func newContentPageView(page *repository.Page[*entity.Content], req repository.PageRequest, owner bool) pageView[contentView] {
	pageNum := req.Page
	if pageNum < 0 {
		pageNum = 0
	}

	return pageView[contentView]{
		Items: newContentViews(page.Items, owner),
		Total: page.Total,
		Page:  pageNum,
		Size:  req.Limit(),
	}
}

type orderView struct {
	ID            uuid.UUID   `json:"id"`
	BuyerID       uuid.UUID   `json:"buyerId"`
	CreatorID     uuid.UUID   `json:"creatorId"`
	ContentIDs    []uuid.UUID `json:"contentIds"`
	ContentTitles []string    `json:"contentTitles"`
	TotalAmount   float64     `json:"totalAmount"`
	Status        string      `json:"status"`
	DecisionNote  string      `json:"decisionNote,omitempty"`
	DecidedAt     *time.Time  `json:"decidedAt,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
}

func newOrderView(order *entity.Order) orderView {
	return orderView{
		ID:            order.ID,
		BuyerID:       order.BuyerID,
		CreatorID:     order.CreatorID,
		ContentIDs:    order.ContentIDs,
		ContentTitles: order.ContentTitles,
		TotalAmount:   order.TotalAmount,
		Status:        order.Status.String(),
		DecisionNote:  order.DecisionNote,
		DecidedAt:     order.DecidedAt,
		CreatedAt:     order.CreatedAt,
	}
}

func newOrderViews(orders []*entity.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, newOrderView(order))
	}

	return views
}

type linkView struct {
	URL       string `json:"url"`
	ExpiresIn int64  `json:"expiresInSeconds"`
}

func newLinkView(link *usecase.PresignedLink) linkView {
	return linkView{
		URL:       link.URL,
		ExpiresIn: int64(link.ExpiresIn.Seconds()),
	}
}

type mediaLinkView struct {
	MediaID  string   `json:"mediaId"`
	FileName string   `json:"fileName"`
	Link     linkView `json:"link"`
}

func newMediaLinkViews(links []usecase.MediaLink) []mediaLinkView {
	views := make([]mediaLinkView, 0, len(links))
	for _, link := range links {
		views = append(views, mediaLinkView{
			MediaID:  link.MediaID,
			FileName: link.FileName,
			Link:     newLinkView(&link.Link),
		})
	}

	return views
}
