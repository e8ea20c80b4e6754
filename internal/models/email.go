package models

import "time"

type EmailType string

const (
	EmailConfirmation EmailType = "confirmation"
	EmailNotification EmailType = "notification"
)

const (
	EmailStatusSent   = "sent"
	EmailStatusFailed = "failed"
)

// EmailRecord is what the notification side channel persists for each
// simulated send; admins can inspect the full list.
type EmailRecord struct {
	ID      string    `json:"id"`
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Type    EmailType `json:"type"`
	SentAt  time.Time `json:"sent_at"`
	Status  string    `json:"status"`
}
