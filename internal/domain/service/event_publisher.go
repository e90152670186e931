package service

import (
	"context"
	"time"
)

// Event types published to the message queue.
const (
	EventOrderPlaced     = "order.placed"
	EventOrderApproved   = "order.approved"
	EventOrderRejected   = "order.rejected"
	EventContentReviewed = "content.reviewed"
	EventUserApproved    = "user.approved"
	EventUserRejected    = "user.rejected"
)

// DomainEvent is the envelope published for every marketplace event.
type DomainEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	SubjectID  string    `json:"subject_id"`         // Order, content or user ID
	ActorID    string    `json:"actor_id,omitempty"` // Who triggered the event
	OccurredAt time.Time `json:"occurred_at"`
	Detail     string    `json:"detail,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish emits a domain event for async consumers.
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
