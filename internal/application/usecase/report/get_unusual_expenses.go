// Package report contains the financial analytics engine.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finantrack/backend/internal/application/adapter"
	"github.com/finantrack/backend/internal/domain/entity"
)

// DefaultAnomalyWindow is the default number of recent expenses examined by
// the outlier detector.
const DefaultAnomalyWindow = 100

// GetUnusualExpensesInput represents the input for unusual expense detection.
type GetUnusualExpensesInput struct {
	UserID uuid.UUID
}

// GetUnusualExpensesOutput represents detected unusual expenses.
type GetUnusualExpensesOutput struct {
	Transactions []*entity.Transaction
}

// GetUnusualExpensesUseCase handles statistical outlier detection over the
// user's recent expenses.
type GetUnusualExpensesUseCase struct {
	ledger    adapter.LedgerRepository
	threshold float64
	window    int
}

// NewGetUnusualExpensesUseCase creates a new GetUnusualExpensesUseCase
// instance. threshold is the standard-deviation multiplier and window the
// number of recent expenses examined.
func NewGetUnusualExpensesUseCase(ledger adapter.LedgerRepository, threshold float64, window int) *GetUnusualExpensesUseCase {
	if threshold <= 0 {
		threshold = DefaultAnomalyThreshold
	}
	if window <= 0 {
		window = DefaultAnomalyWindow
	}

	return &GetUnusualExpensesUseCase{
		ledger:    ledger,
		threshold: threshold,
		window:    window,
	}
}

// Execute fetches the recent expense window and returns the statistical
// outliers, most recent first. Fewer than the minimum sample size yields an
// empty result.
func (uc *GetUnusualExpensesUseCase) Execute(ctx context.Context, input GetUnusualExpensesInput) (*GetUnusualExpensesOutput, error) {
	expenses, err := uc.ledger.FetchRecentExpenses(ctx, input.UserID, uc.window)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent expenses: %w", err)
	}

	return &GetUnusualExpensesOutput{
		Transactions: DetectUnusualExpenses(expenses, uc.threshold),
	}, nil
}
