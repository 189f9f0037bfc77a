// Package report contains the financial analytics engine.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finantrack/backend/internal/application/adapter"
	domainerror "github.com/finantrack/backend/internal/domain/error"
)

// DefaultTrendMonths is the default monthly trend window.
const DefaultTrendMonths = 12

// GetMonthlyTrendInput represents the input for getting the monthly trend.
type GetMonthlyTrendInput struct {
	UserID uuid.UUID
	Months int
}

// GetMonthlyTrendOutput represents the monthly trend series.
type GetMonthlyTrendOutput struct {
	Months int
	Trend  []MonthlyTrendPoint
}

// GetMonthlyTrendUseCase handles monthly trend computation.
type GetMonthlyTrendUseCase struct {
	ledger adapter.LedgerRepository
	clock  adapter.Clock
}

// NewGetMonthlyTrendUseCase creates a new GetMonthlyTrendUseCase instance.
func NewGetMonthlyTrendUseCase(ledger adapter.LedgerRepository, clock adapter.Clock) *GetMonthlyTrendUseCase {
	return &GetMonthlyTrendUseCase{
		ledger: ledger,
		clock:  clock,
	}
}

// Execute computes the zero-filled monthly trend series for the window ending
// at the current month.
func (uc *GetMonthlyTrendUseCase) Execute(ctx context.Context, input GetMonthlyTrendInput) (*GetMonthlyTrendOutput, error) {
	if input.Months <= 0 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidTrendWindow,
			"months must be a positive number",
			domainerror.ErrInvalidTrendWindow,
		)
	}

	now := uc.clock.Now()
	anchorMonthStart, _ := MonthBounds(now.Year(), int(now.Month()))
	windowStart := anchorMonthStart.AddDate(0, -(input.Months-1), 0)

	transactions, err := uc.ledger.FetchTransactions(ctx, adapter.LedgerFilter{
		UserID:    input.UserID,
		StartDate: &windowStart,
		EndDate:   &now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trend data: %w", err)
	}

	return &GetMonthlyTrendOutput{
		Months: input.Months,
		Trend:  MonthlyTrend(transactions, input.Months, now),
	}, nil
}
