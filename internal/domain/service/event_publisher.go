package service

import (
	"context"
	"time"
)

// LinkClickEvent represents a click to be recorded by the click worker
type LinkClickEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	ClickID   string    `json:"click_id"`
	LinkID    string    `json:"link_id"`
	UserID    string    `json:"user_id"`
	Referrer  string    `json:"referrer,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	IPHash    string    `json:"ip_hash,omitempty"`
	ClickedAt time.Time `json:"clicked_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLinkClickEvent publishes a click event for async processing
	PublishLinkClickEvent(ctx context.Context, event *LinkClickEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
