// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finantrack/backend/internal/domain/entity"
)

// NotificationCache caches a user's ranked notification list for a short
// period. A cache miss is not an error; callers recompute and Set.
type NotificationCache interface {
	// Get retrieves the cached notifications for a user. The second return
	// value reports whether a cached entry was found.
	Get(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, bool, error)

	// Set stores the notifications for a user with the given TTL.
	Set(ctx context.Context, userID uuid.UUID, notifications []*entity.Notification, ttl time.Duration) error

	// Invalidate removes the cached entry for a user.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
