// Package report contains the financial analytics engine.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/finantrack/backend/internal/application/adapter"
	"github.com/finantrack/backend/internal/domain/entity"
)

// recentTransactionsLimit is how many recent transactions the dashboard
// summary includes.
const recentTransactionsLimit = 5

// GetSummaryInput represents the input for getting the dashboard summary.
type GetSummaryInput struct {
	UserID uuid.UUID
}

// GetSummaryOutput represents the dashboard summary: current-month totals,
// lifetime balance, the month's goal and the most recent transactions.
type GetSummaryOutput struct {
	Month              int
	Year               int
	MonthSummary       Summary
	LifetimeSummary    Summary
	Goal               *entity.MonthlyGoal
	RecentTransactions []*entity.TransactionWithCategory
}

// GetSummaryUseCase handles the dashboard financial summary.
type GetSummaryUseCase struct {
	ledger adapter.LedgerRepository
	clock  adapter.Clock
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(ledger adapter.LedgerRepository, clock adapter.Clock) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		ledger: ledger,
		clock:  clock,
	}
}

// Execute retrieves the dashboard summary for the current month. The four
// ledger reads have no ordering dependency and run concurrently; the output
// is computed only after all of them are materialized. A failed read fails
// the request as a whole.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	now := uc.clock.Now()
	month := int(now.Month())
	year := now.Year()
	monthStart, monthEnd := MonthBounds(year, month)

	var (
		monthTransactions []*entity.Transaction
		allTransactions   []*entity.Transaction
		goal              *entity.MonthlyGoal
		recent            []*entity.TransactionWithCategory
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		monthTransactions, err = uc.ledger.FetchTransactions(gctx, adapter.LedgerFilter{
			UserID:    input.UserID,
			StartDate: &monthStart,
			EndDate:   &monthEnd,
		})
		return err
	})

	g.Go(func() error {
		var err error
		allTransactions, err = uc.ledger.FetchTransactions(gctx, adapter.LedgerFilter{
			UserID:  input.UserID,
			EndDate: &monthEnd,
		})
		return err
	})

	g.Go(func() error {
		var err error
		goal, err = uc.ledger.FetchGoal(gctx, input.UserID, month, year)
		return err
	})

	g.Go(func() error {
		var err error
		recent, err = uc.ledger.FetchWithCategories(gctx, adapter.LedgerFilter{
			UserID: input.UserID,
			Limit:  recentTransactionsLimit,
		})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch summary data: %w", err)
	}

	return &GetSummaryOutput{
		Month:              month,
		Year:               year,
		MonthSummary:       Summarize(monthTransactions),
		LifetimeSummary:    Summarize(allTransactions),
		Goal:               goal,
		RecentTransactions: recent,
	}, nil
}
