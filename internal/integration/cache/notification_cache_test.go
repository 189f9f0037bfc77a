// Package cache implements Redis-backed caching for the integration layer.
package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finantrack/backend/internal/domain/entity"
)

func testCacheClient(t *testing.T) *redis.Client {
	t.Helper()

	server := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: server.Addr()})
}

func TestNotificationCache(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)

	notifications := []*entity.Notification{
		{
			ID:        "expense-over-abc-6-2025",
			Severity:  entity.SeverityDanger,
			Title:     "Gastos acima da meta",
			Message:   "Você já gastou R$ 2000.00 este mês.",
			Data:      map[string]interface{}{"percentage": 200.0},
			CreatedAt: createdAt,
		},
		{
			ID:        "tip-set-goal-abc",
			Severity:  entity.SeverityInfo,
			Title:     "Defina suas metas",
			Message:   "Você ainda não definiu uma meta financeira para este mês.",
			CreatedAt: createdAt,
		},
	}

	t.Run("miss on unknown user", func(t *testing.T) {
		cache := NewNotificationCache(testCacheClient(t))

		cached, found, err := cache.Get(ctx, uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Error("expected cache miss")
		}
		if cached != nil {
			t.Errorf("expected nil result on miss, got %v", cached)
		}
	})

	t.Run("set then get round-trips order and fields", func(t *testing.T) {
		cache := NewNotificationCache(testCacheClient(t))
		userID := uuid.New()

		if err := cache.Set(ctx, userID, notifications, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cached, found, err := cache.Get(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found {
			t.Fatal("expected cache hit")
		}
		if len(cached) != 2 {
			t.Fatalf("expected 2 notifications, got %d", len(cached))
		}
		if cached[0].ID != notifications[0].ID || cached[1].ID != notifications[1].ID {
			t.Error("expected cached order preserved")
		}
		if cached[0].Severity != entity.SeverityDanger {
			t.Errorf("expected danger severity, got %s", cached[0].Severity)
		}
		if cached[0].Title != notifications[0].Title {
			t.Errorf("expected title %q, got %q", notifications[0].Title, cached[0].Title)
		}
		if !cached[0].CreatedAt.Equal(createdAt) {
			t.Errorf("expected created_at %v, got %v", createdAt, cached[0].CreatedAt)
		}
	})

	t.Run("entry expires after the TTL", func(t *testing.T) {
		server := miniredis.RunT(t)
		cache := NewNotificationCache(redis.NewClient(&redis.Options{Addr: server.Addr()}))
		userID := uuid.New()

		if err := cache.Set(ctx, userID, notifications, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		server.FastForward(2 * time.Minute)

		_, found, err := cache.Get(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Error("expected entry to expire")
		}
	})

	t.Run("invalidate removes the entry", func(t *testing.T) {
		cache := NewNotificationCache(testCacheClient(t))
		userID := uuid.New()

		if err := cache.Set(ctx, userID, notifications, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := cache.Invalidate(ctx, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, found, err := cache.Get(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Error("expected entry removed")
		}
	})

	t.Run("entries are per-user", func(t *testing.T) {
		cache := NewNotificationCache(testCacheClient(t))
		userID := uuid.New()

		if err := cache.Set(ctx, userID, notifications, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, found, err := cache.Get(ctx, uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Error("expected miss for a different user")
		}
	})
}
