package model

import (
	"time"

	"github.com/google/uuid"

	"skyvault/internal/domain/entity"
)

// ContentModel mirrors the 'contents' table. Tags, media files and
// coordinates are stored as jsonb through the gorm json serializer.
type ContentModel struct {
	ID                uuid.UUID           `gorm:"type:uuid;primary_key"`
	CreatorID         uuid.UUID           `gorm:"type:uuid;not null;index"`
	Title             string              `gorm:"type:varchar(255);not null"`
	Description       string              `gorm:"type:text"`
	Category          string              `gorm:"type:varchar(100);index"`
	Tags              []string            `gorm:"type:jsonb;serializer:json"`
	Location          string              `gorm:"type:varchar(255)"`
	Coordinates       *entity.Coordinates `gorm:"type:jsonb;serializer:json"`
	Resolution        string              `gorm:"type:varchar(20)"`
	Duration          int
	YoutubePreview    string  `gorm:"type:varchar(512)"`
	Price             float64 `gorm:"not null"`
	LicenseType       string  `gorm:"type:varchar(20);not null"`
	DroneModel        string  `gorm:"type:varchar(100)"`
	ShootingDate      *time.Time
	WeatherConditions string `gorm:"type:varchar(100)"`
	Altitude          float64
	MediaFiles        []entity.MediaFile `gorm:"type:jsonb;serializer:json"`
	ThumbnailFile     *entity.MediaFile  `gorm:"type:jsonb;serializer:json"`
	Status            string             `gorm:"type:varchar(20);not null;index"`
	Views             int64              `gorm:"not null;default:0"`
	Downloads         int64              `gorm:"not null;default:0"`
	Earnings          float64            `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContentModel) TableName() string {
	return "contents"
}

// ToEntity converts the persistence model to the domain entity.
func (m *ContentModel) ToEntity() *entity.Content {
	return &entity.Content{
		ID:                m.ID,
		CreatorID:         m.CreatorID,
		Title:             m.Title,
		Description:       m.Description,
		Category:          m.Category,
		Tags:              m.Tags,
		Location:          m.Location,
		Coordinates:       m.Coordinates,
		Resolution:        m.Resolution,
		Duration:          m.Duration,
		YoutubePreview:    m.YoutubePreview,
		Price:             m.Price,
		LicenseType:       entity.LicenseType(m.LicenseType),
		DroneModel:        m.DroneModel,
		ShootingDate:      m.ShootingDate,
		WeatherConditions: m.WeatherConditions,
		Altitude:          m.Altitude,
		MediaFiles:        m.MediaFiles,
		ThumbnailFile:     m.ThumbnailFile,
		Status:            entity.ContentStatus(m.Status),
		Views:             m.Views,
		Downloads:         m.Downloads,
		Earnings:          m.Earnings,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// ContentModelFromEntity converts the domain entity to the persistence model.
func ContentModelFromEntity(content *entity.Content) *ContentModel {
	return &ContentModel{
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
		Status:            string(content.Status),
		Views:             content.Views,
		Downloads:         content.Downloads,
		Earnings:          content.Earnings,
		CreatedAt:         content.CreatedAt,
		UpdatedAt:         content.UpdatedAt,
	}
}
