// Package cache implements Redis-backed caching for the integration layer.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finantrack/backend/internal/application/adapter"
	"github.com/finantrack/backend/internal/domain/entity"
)

// notificationKeyPrefix namespaces notification entries in Redis.
const notificationKeyPrefix = "notifications:"

// notificationRecord is the JSON shape stored in Redis.
type notificationRecord struct {
	ID        string                 `json:"id"`
	Severity  string                 `json:"severity"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// notificationCache implements the adapter.NotificationCache interface on
// top of Redis.
type notificationCache struct {
	client *redis.Client
}

// NewNotificationCache creates a new Redis notification cache instance.
func NewNotificationCache(client *redis.Client) adapter.NotificationCache {
	return &notificationCache{
		client: client,
	}
}

// Get retrieves the cached notifications for a user.
func (c *notificationCache) Get(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, bool, error) {
	payload, err := c.client.Get(ctx, notificationKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read notification cache: %w", err)
	}

	var records []notificationRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached notifications: %w", err)
	}

	notifications := make([]*entity.Notification, len(records))
	for i, r := range records {
		notifications[i] = &entity.Notification{
			ID:        r.ID,
			Severity:  entity.NotificationSeverity(r.Severity),
			Title:     r.Title,
			Message:   r.Message,
			Data:      r.Data,
			CreatedAt: r.CreatedAt,
		}
	}
	return notifications, true, nil
}

// Set stores the notifications for a user with the given TTL.
func (c *notificationCache) Set(ctx context.Context, userID uuid.UUID, notifications []*entity.Notification, ttl time.Duration) error {
	records := make([]notificationRecord, len(notifications))
	for i, n := range notifications {
		records[i] = notificationRecord{
			ID:        n.ID,
			Severity:  string(n.Severity),
			Title:     n.Title,
			Message:   n.Message,
			Data:      n.Data,
			CreatedAt: n.CreatedAt,
		}
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode notifications: %w", err)
	}

	if err := c.client.Set(ctx, notificationKey(userID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write notification cache: %w", err)
	}
	return nil
}

// Invalidate removes the cached entry for a user.
func (c *notificationCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Del(ctx, notificationKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate notification cache: %w", err)
	}
	return nil
}

func notificationKey(userID uuid.UUID) string {
	return notificationKeyPrefix + userID.String()
}
