// Package events carries the notification side channel: domain events are
// published fire-and-forget, so a failed publish never rolls back the
// mutation that produced it.
package events

import (
	"context"
	"time"
)

// Topics published by the task service.
const (
	TopicUserRegistered = "studyflow.users.registered"
	TopicEmailSent      = "studyflow.emails.sent"
)

// EventPublisher abstracts the message transport (in-process channel,
// Kafka, or a recording mock in tests).
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event interface{}) error
	Close() error
}

type UserRegisteredEvent struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	RegisteredAt time.Time `json:"registered_at"`
}

type EmailSentEvent struct {
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Type    string    `json:"type"`
	Status  string    `json:"status"`
	SentAt  time.Time `json:"sent_at"`
}
