package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContentStatus represents the moderation state of a content listing.
type ContentStatus string

const (
	// ContentStatusPendingReview indicates the listing awaits admin review.
	ContentStatusPendingReview ContentStatus = "pending_review"
	// ContentStatusApproved indicates the listing is publicly visible.
	ContentStatusApproved ContentStatus = "approved"
	// ContentStatusRejected indicates the listing failed review.
	ContentStatusRejected ContentStatus = "rejected"
	// ContentStatusSuspended indicates the listing was pulled after approval.
	ContentStatusSuspended ContentStatus = "suspended"
)

// String returns the string representation of the ContentStatus.
func (s ContentStatus) String() string {
	return string(s)
}

// IsValid checks if the ContentStatus is a valid value.
func (s ContentStatus) IsValid() bool {
	switch s {
	case ContentStatusPendingReview, ContentStatusApproved, ContentStatusRejected, ContentStatusSuspended:
		return true
	default:
		return false
	}
}

// LicenseType represents the usage license sold with a listing.
type LicenseType string

const (
	LicenseRoyaltyFree LicenseType = "royalty_free"
	LicenseLimitedUse  LicenseType = "limited_use"
	LicenseExclusive   LicenseType = "exclusive"
)

// IsValid checks if the LicenseType is a valid value.
func (l LicenseType) IsValid() bool {
	switch l {
	case LicenseRoyaltyFree, LicenseLimitedUse, LicenseExclusive:
		return true
	default:
		return false
	}
}

// Coordinates holds the shooting location of a recording.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MediaFile describes one object stored for a listing. The ID doubles as
// the object storage key, so a media file can always be resolved back to
// its blob without a join.
type MediaFile struct {
	ID          string    `json:"id"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// Content is a drone footage listing offered on the marketplace.
type Content struct {
	ID          uuid.UUID
	CreatorID   uuid.UUID
	Title       string
	Description string
	Category    string
	Tags        []string
	Location    string
	Coordinates *Coordinates
	Resolution  string
	// Duration of the full recording in seconds.
	Duration          int
	YoutubePreview    string
	Price             float64
	LicenseType       LicenseType
	DroneModel        string
	ShootingDate      *time.Time
	WeatherConditions string
	// Altitude above ground in meters at which the footage was shot.
	Altitude      float64
	MediaFiles    []MediaFile
	ThumbnailFile *MediaFile
	Status        ContentStatus
	Views         int64
	Downloads     int64
	Earnings      float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsApproved reports whether the listing is publicly visible.
func (c *Content) IsApproved() bool {
	return c.Status == ContentStatusApproved
}

// MediaFileByID returns the media file with the given storage key,
// including the thumbnail.
func (c *Content) MediaFileByID(id string) (*MediaFile, bool) {
	for i := range c.MediaFiles {
		if c.MediaFiles[i].ID == id {
			return &c.MediaFiles[i], true
		}
	}
	if c.ThumbnailFile != nil && c.ThumbnailFile.ID == id {
		return c.ThumbnailFile, true
	}

	return nil, false
}

// ThumbnailSource picks the media file backing the public thumbnail: the
// uploaded thumbnail when present, otherwise the first image file,
// otherwise the first media file.
func (c *Content) ThumbnailSource() *MediaFile {
	if c.ThumbnailFile != nil {
		return c.ThumbnailFile
	}
	for i := range c.MediaFiles {
		if strings.HasPrefix(c.MediaFiles[i].ContentType, "image/") {
			return &c.MediaFiles[i]
		}
	}
	if len(c.MediaFiles) > 0 {
		return &c.MediaFiles[0]
	}

	return nil
}
