// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finantrack/backend/internal/domain/entity"
)

// LedgerFilter defines filter options for reading transactions.
type LedgerFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
	Limit     int // 0 means no limit
}

// LedgerRepository is the engine's single data source. It is read-only: the
// analytics and notification engine never mutates financial records.
type LedgerRepository interface {
	// FetchTransactions retrieves transactions matching the filter, ordered by
	// date descending.
	FetchTransactions(ctx context.Context, filter LedgerFilter) ([]*entity.Transaction, error)

	// FetchWithCategories retrieves transactions with their categories
	// matching the filter, ordered by date descending.
	FetchWithCategories(ctx context.Context, filter LedgerFilter) ([]*entity.TransactionWithCategory, error)

	// FetchRecentExpenses retrieves the most recent expense transactions for
	// the user, most recent first, limited to limit entries.
	FetchRecentExpenses(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error)

	// CountSince counts the user's transactions dated on or after since.
	CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error)

	// FetchUnusedCategories retrieves active categories with no transactions
	// dated on or after since, together with their historical usage counts.
	FetchUnusedCategories(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.CategoryUsage, error)

	// FetchGoal retrieves the monthly goal for the given month and year, or
	// nil when none is defined.
	FetchGoal(ctx context.Context, userID uuid.UUID, month, year int) (*entity.MonthlyGoal, error)
}
