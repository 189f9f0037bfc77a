// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finantrack/backend/internal/application/usecase/notification"
	domainerror "github.com/finantrack/backend/internal/domain/error"
	"github.com/finantrack/backend/internal/integration/entrypoint/dto"
	"github.com/finantrack/backend/internal/integration/entrypoint/middleware"
)

// NotificationController handles notification endpoints.
type NotificationController struct {
	getUseCase    *notification.GetNotificationsUseCase
	digestUseCase *notification.SendDigestUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(
	getUseCase *notification.GetNotificationsUseCase,
	digestUseCase *notification.SendDigestUseCase,
) *NotificationController {
	return &NotificationController{
		getUseCase:    getUseCase,
		digestUseCase: digestUseCase,
	}
}

// List handles GET /notifications requests. Notifications are derived from
// the current ledger state on every request; there is nothing to mark as read
// or dismiss.
func (c *NotificationController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), notification.GetNotificationsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to generate notifications",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(output.Notifications))
}

// Digest handles POST /notifications/digest requests, emailing the caller a
// summary of their current notifications.
func (c *NotificationController) Digest(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.digestUseCase.Execute(ctx.Request.Context(), notification.SendDigestInput{
		UserID: userID,
	})
	if err != nil {
		var emailErr *domainerror.EmailError
		if errors.As(err, &emailErr) {
			ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
				Error: emailErr.Message,
				Code:  string(emailErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to send notification digest",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"sent": output.Sent})
}
