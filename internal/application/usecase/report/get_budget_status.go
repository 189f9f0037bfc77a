// Package report contains the financial analytics engine.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/finantrack/backend/internal/application/adapter"
	"github.com/finantrack/backend/internal/domain/entity"
	domainerror "github.com/finantrack/backend/internal/domain/error"
)

// GetBudgetStatusInput represents the input for budget status evaluation.
type GetBudgetStatusInput struct {
	UserID uuid.UUID
	Month  int
	Year   int
}

// GetBudgetStatusUseCase handles budget-compliance evaluation for one month.
type GetBudgetStatusUseCase struct {
	ledger adapter.LedgerRepository
}

// NewGetBudgetStatusUseCase creates a new GetBudgetStatusUseCase instance.
func NewGetBudgetStatusUseCase(ledger adapter.LedgerRepository) *GetBudgetStatusUseCase {
	return &GetBudgetStatusUseCase{
		ledger: ledger,
	}
}

// Execute fetches the month's transactions and goal concurrently and
// evaluates budget compliance. A missing goal yields a neutral status, not
// an error.
func (uc *GetBudgetStatusUseCase) Execute(ctx context.Context, input GetBudgetStatusInput) (*BudgetStatus, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}

	monthStart, monthEnd := MonthBounds(input.Year, input.Month)

	var (
		transactions []*entity.Transaction
		goal         *entity.MonthlyGoal
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		transactions, err = uc.ledger.FetchTransactions(gctx, adapter.LedgerFilter{
			UserID:    input.UserID,
			StartDate: &monthStart,
			EndDate:   &monthEnd,
		})
		return err
	})

	g.Go(func() error {
		var err error
		goal, err = uc.ledger.FetchGoal(gctx, input.UserID, input.Month, input.Year)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch budget data: %w", err)
	}

	status := EvaluateBudget(goal, Summarize(transactions))
	return &status, nil
}
