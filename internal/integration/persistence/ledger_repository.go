// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finantrack/backend/internal/application/adapter"
	"github.com/finantrack/backend/internal/domain/entity"
	"github.com/finantrack/backend/internal/integration/persistence/model"
)

// ledgerRepository implements the adapter.LedgerRepository interface. It is
// the analytics engine's read-only view over transactions, categories and
// goals.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB) adapter.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// applyFilter translates a LedgerFilter into query conditions.
func (r *ledgerRepository) applyFilter(ctx context.Context, filter adapter.LedgerFilter) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("user_id = ?", filter.UserID)

	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", filter.EndDate)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query
}

// FetchTransactions retrieves transactions matching the filter, ordered by
// date descending.
func (r *ledgerRepository) FetchTransactions(ctx context.Context, filter adapter.LedgerFilter) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.applyFilter(ctx, filter).
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// FetchWithCategories retrieves transactions with their categories matching
// the filter, ordered by date descending.
func (r *ledgerRepository) FetchWithCategories(ctx context.Context, filter adapter.LedgerFilter) ([]*entity.TransactionWithCategory, error) {
	var transactionModels []model.TransactionModel
	result := r.applyFilter(ctx, filter).
		Preload("Category").
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.TransactionWithCategory, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntityWithCategory()
	}
	return transactions, nil
}

// FetchRecentExpenses retrieves the most recent expense transactions for the
// user, most recent first.
func (r *ledgerRepository) FetchRecentExpenses(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error) {
	expenseType := entity.TransactionTypeExpense
	return r.FetchTransactions(ctx, adapter.LedgerFilter{
		UserID: userID,
		Type:   &expenseType,
		Limit:  limit,
	})
}

// CountSince counts the user's transactions dated on or after since.
func (r *ledgerRepository) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("user_id = ? AND date >= ?", userID, since).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// FetchUnusedCategories retrieves active categories with no transactions
// dated on or after since, together with their historical usage counts.
func (r *ledgerRepository) FetchUnusedCategories(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.CategoryUsage, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("name ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(categoryModels) == 0 {
		return []*entity.CategoryUsage{}, nil
	}

	type categoryCount struct {
		CategoryID uuid.UUID `gorm:"column:category_id"`
		Count      int       `gorm:"column:count"`
	}

	var totalCounts []categoryCount
	if err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("category_id, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("category_id").
		Find(&totalCounts).Error; err != nil {
		return nil, err
	}

	var recentCounts []categoryCount
	if err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("category_id, COUNT(*) as count").
		Where("user_id = ? AND date >= ?", userID, since).
		Group("category_id").
		Find(&recentCounts).Error; err != nil {
		return nil, err
	}

	totalByCategory := make(map[uuid.UUID]int, len(totalCounts))
	for _, tc := range totalCounts {
		totalByCategory[tc.CategoryID] = tc.Count
	}
	recentByCategory := make(map[uuid.UUID]int, len(recentCounts))
	for _, rc := range recentCounts {
		recentByCategory[rc.CategoryID] = rc.Count
	}

	unused := make([]*entity.CategoryUsage, 0, len(categoryModels))
	for i := range categoryModels {
		cm := &categoryModels[i]
		if recentByCategory[cm.ID] > 0 {
			continue
		}
		unused = append(unused, &entity.CategoryUsage{
			Category:         cm.ToEntity(),
			TransactionCount: totalByCategory[cm.ID],
		})
	}
	return unused, nil
}

// FetchGoal retrieves the monthly goal for the given month and year, or nil
// when none is defined.
func (r *ledgerRepository) FetchGoal(ctx context.Context, userID uuid.UUID, month, year int) (*entity.MonthlyGoal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}
