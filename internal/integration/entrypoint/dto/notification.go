// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finantrack/backend/internal/domain/entity"
)

// NotificationResponse represents a single notification in API responses.
type NotificationResponse struct {
	ID        string                 `json:"id"`
	Severity  string                 `json:"severity"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// NotificationListResponse represents the ranked notification list.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// ToNotificationListResponse converts ranked notifications to a
// NotificationListResponse.
func ToNotificationListResponse(notifications []*entity.Notification) NotificationListResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = NotificationResponse{
			ID:        n.ID,
			Severity:  string(n.Severity),
			Title:     n.Title,
			Message:   n.Message,
			Data:      n.Data,
			CreatedAt: n.CreatedAt,
		}
	}
	return NotificationListResponse{
		Notifications: responses,
	}
}
