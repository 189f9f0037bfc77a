// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finantrack/backend/internal/domain/entity"
)

// SendEmailInput holds the data needed to send an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult holds the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails.
type EmailSender interface {
	// Send sends an email.
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// NotificationDigestSender delivers a rendered digest of a user's
// notifications by email.
type NotificationDigestSender interface {
	// Send renders and sends the digest. Implementations return a nil result
	// when there is nothing to send.
	Send(ctx context.Context, user *entity.User, notifications []*entity.Notification) (*SendEmailResult, error)
}
