// Package report contains the financial analytics engine.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finantrack/backend/internal/application/adapter"
	"github.com/finantrack/backend/internal/domain/entity"
	domainerror "github.com/finantrack/backend/internal/domain/error"
)

// GetCustomPeriodReportInput represents the input for a custom period report.
type GetCustomPeriodReportInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GetCustomPeriodReportOutput represents the report of an arbitrary period.
type GetCustomPeriodReportOutput struct {
	StartDate    time.Time
	EndDate      time.Time
	Summary      Summary
	Categories   []CategorySummary
	Transactions []*entity.TransactionWithCategory
}

// GetCustomPeriodReportUseCase handles custom period report generation.
type GetCustomPeriodReportUseCase struct {
	ledger adapter.LedgerRepository
}

// NewGetCustomPeriodReportUseCase creates a new GetCustomPeriodReportUseCase instance.
func NewGetCustomPeriodReportUseCase(ledger adapter.LedgerRepository) *GetCustomPeriodReportUseCase {
	return &GetCustomPeriodReportUseCase{
		ledger: ledger,
	}
}

// Execute retrieves totals and the category breakdown for an arbitrary
// date range.
func (uc *GetCustomPeriodReportUseCase) Execute(ctx context.Context, input GetCustomPeriodReportInput) (*GetCustomPeriodReportOutput, error) {
	if input.StartDate.IsZero() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}
	if input.EndDate.IsZero() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must be after start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	transactions, err := uc.ledger.FetchWithCategories(ctx, adapter.LedgerFilter{
		UserID:    input.UserID,
		StartDate: &input.StartDate,
		EndDate:   &input.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch custom period data: %w", err)
	}

	bare := make([]*entity.Transaction, len(transactions))
	for i, tc := range transactions {
		bare[i] = tc.Transaction
	}

	return &GetCustomPeriodReportOutput{
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Summary:      Summarize(bare),
		Categories:   SummarizeByCategory(transactions),
		Transactions: transactions,
	}, nil
}
