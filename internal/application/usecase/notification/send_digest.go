// Package notification contains the notification generation use cases.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finantrack/backend/internal/application/adapter"
	domainerror "github.com/finantrack/backend/internal/domain/error"
)

// SendDigestInput represents the input for sending a notification digest.
type SendDigestInput struct {
	UserID uuid.UUID
}

// SendDigestOutput represents the output of sending a notification digest.
type SendDigestOutput struct {
	Sent       bool
	ProviderID string
}

// SendDigestUseCase emails a user the current ranked notification digest.
type SendDigestUseCase struct {
	userRepo         adapter.UserRepository
	getNotifications *GetNotificationsUseCase
	digest           adapter.NotificationDigestSender
}

// NewSendDigestUseCase creates a new SendDigestUseCase instance. digest may
// be nil when email delivery is not configured.
func NewSendDigestUseCase(
	userRepo adapter.UserRepository,
	getNotifications *GetNotificationsUseCase,
	digest adapter.NotificationDigestSender,
) *SendDigestUseCase {
	return &SendDigestUseCase{
		userRepo:         userRepo,
		getNotifications: getNotifications,
		digest:           digest,
	}
}

// Execute generates the user's notifications and sends them as a digest
// email. A user with no notifications gets no email.
func (uc *SendDigestUseCase) Execute(ctx context.Context, input SendDigestInput) (*SendDigestOutput, error) {
	if uc.digest == nil {
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodePermanentEmailFailure,
			"email delivery is not configured",
			domainerror.ErrPermanentEmailFailure,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	notifications, err := uc.getNotifications.Execute(ctx, GetNotificationsInput{UserID: input.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to generate notifications: %w", err)
	}

	result, err := uc.digest.Send(ctx, user, notifications.Notifications)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return &SendDigestOutput{Sent: false}, nil
	}

	return &SendDigestOutput{Sent: true, ProviderID: result.ProviderID}, nil
}
