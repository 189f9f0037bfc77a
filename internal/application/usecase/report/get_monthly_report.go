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

// GetMonthlyReportInput represents the input for getting a monthly report.
type GetMonthlyReportInput struct {
	UserID uuid.UUID
	Month  int
	Year   int
}

// GetMonthlyReportOutput represents the full report of one calendar month.
type GetMonthlyReportOutput struct {
	Month        int
	Year         int
	Summary      Summary
	Categories   []CategorySummary
	Goal         *entity.MonthlyGoal
	Transactions []*entity.TransactionWithCategory
}

// GetMonthlyReportUseCase handles monthly report generation.
type GetMonthlyReportUseCase struct {
	ledger adapter.LedgerRepository
}

// NewGetMonthlyReportUseCase creates a new GetMonthlyReportUseCase instance.
func NewGetMonthlyReportUseCase(ledger adapter.LedgerRepository) *GetMonthlyReportUseCase {
	return &GetMonthlyReportUseCase{
		ledger: ledger,
	}
}

// Execute retrieves the report for the given month: totals, category
// breakdown, the month's goal and the transactions themselves.
func (uc *GetMonthlyReportUseCase) Execute(ctx context.Context, input GetMonthlyReportInput) (*GetMonthlyReportOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}
	if input.Year < 2020 || input.Year > 2100 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidYear,
			"year must be between 2020 and 2100",
			domainerror.ErrInvalidYear,
		)
	}

	monthStart, monthEnd := MonthBounds(input.Year, input.Month)

	var (
		transactions []*entity.TransactionWithCategory
		goal         *entity.MonthlyGoal
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		transactions, err = uc.ledger.FetchWithCategories(gctx, adapter.LedgerFilter{
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
		return nil, fmt.Errorf("failed to fetch monthly report data: %w", err)
	}

	bare := make([]*entity.Transaction, len(transactions))
	for i, tc := range transactions {
		bare[i] = tc.Transaction
	}

	return &GetMonthlyReportOutput{
		Month:        input.Month,
		Year:         input.Year,
		Summary:      Summarize(bare),
		Categories:   SummarizeByCategory(transactions),
		Goal:         goal,
		Transactions: transactions,
	}, nil
}
