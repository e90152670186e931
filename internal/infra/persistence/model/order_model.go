package model

import (
	"time"

	"github.com/google/uuid"

	"skyvault/internal/domain/entity"
)

// OrderModel mirrors the 'orders' table. The purchased listing snapshot
// is stored as jsonb because it is never queried relationally.
type OrderModel struct {
	ID            uuid.UUID   `gorm:"type:uuid;primary_key"`
	BuyerID       uuid.UUID   `gorm:"type:uuid;not null;index"`
	CreatorID     uuid.UUID   `gorm:"type:uuid;not null;index"`
	ContentIDs    []uuid.UUID `gorm:"type:jsonb;serializer:json"`
	ContentTitles []string    `gorm:"type:jsonb;serializer:json"`
	TotalAmount   float64     `gorm:"not null"`
	SlipKey       string      `gorm:"type:varchar(512);not null"`
	Status        string      `gorm:"type:varchar(20);not null;index"`
	DecisionNote  string      `gorm:"type:text"`
	DecidedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// ToEntity converts the persistence model to the domain entity.
func (m *OrderModel) ToEntity() *entity.Order {
	return &entity.Order{
		ID:            m.ID,
		BuyerID:       m.BuyerID,
		CreatorID:     m.CreatorID,
		ContentIDs:    m.ContentIDs,
		ContentTitles: m.ContentTitles,
		TotalAmount:   m.TotalAmount,
		SlipKey:       m.SlipKey,
		Status:        entity.OrderStatus(m.Status),
		DecisionNote:  m.DecisionNote,
		DecidedAt:     m.DecidedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// OrderModelFromEntity converts the domain entity to the persistence model.
func OrderModelFromEntity(order *entity.Order) *OrderModel {
	return &OrderModel{
		ID:            order.ID,
		BuyerID:       order.BuyerID,
		CreatorID:     order.CreatorID,
		ContentIDs:    order.ContentIDs,
		ContentTitles: order.ContentTitles,
		TotalAmount:   order.TotalAmount,
		SlipKey:       order.SlipKey,
		Status:        order.Status.String(),
		DecisionNote:  order.DecisionNote,
		DecidedAt:     order.DecidedAt,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}
