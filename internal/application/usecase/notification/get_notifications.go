// Package notification turns the analytics engine's outputs into a ranked
// list of user-facing alerts and tips.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/finantrack/backend/internal/application/adapter"
	"github.com/finantrack/backend/internal/application/usecase/report"
	"github.com/finantrack/backend/internal/domain/entity"
)

// Presence-check windows.
const (
	recentActivityWindow = 7 * 24 * time.Hour
	unusedCategoryWindow = 30 * 24 * time.Hour
)

// tipAnalysisMonths is the trailing window used for the spending-pattern tips.
const tipAnalysisMonths = 3

// DefaultCacheTTL is the default lifetime of a cached notification list.
const DefaultCacheTTL = 5 * time.Minute

// GetNotificationsInput represents the input for notification generation.
type GetNotificationsInput struct {
	UserID uuid.UUID
}

// GetNotificationsOutput represents the ranked notification list.
type GetNotificationsOutput struct {
	Notifications []*entity.Notification
}

// GetNotificationsUseCase generates the user's alerts and tips from the
// current ledger state, ranks them, and caches the result briefly.
type GetNotificationsUseCase struct {
	ledger           adapter.LedgerRepository
	cache            adapter.NotificationCache
	clock            adapter.Clock
	anomalyThreshold float64
	anomalyWindow    int
	cacheTTL         time.Duration
}

// NewGetNotificationsUseCase creates a new GetNotificationsUseCase instance.
// cache may be nil, in which case every request recomputes.
func NewGetNotificationsUseCase(
	ledger adapter.LedgerRepository,
	cache adapter.NotificationCache,
	clock adapter.Clock,
	anomalyThreshold float64,
	anomalyWindow int,
	cacheTTL time.Duration,
) *GetNotificationsUseCase {
	if anomalyThreshold <= 0 {
		anomalyThreshold = report.DefaultAnomalyThreshold
	}
	if anomalyWindow <= 0 {
		anomalyWindow = report.DefaultAnomalyWindow
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}

	return &GetNotificationsUseCase{
		ledger:           ledger,
		cache:            cache,
		clock:            clock,
		anomalyThreshold: anomalyThreshold,
		anomalyWindow:    anomalyWindow,
		cacheTTL:         cacheTTL,
	}
}

// Execute returns the ranked notifications for a user. The ledger reads have
// no ordering dependency and run concurrently; generation happens only after
// all inputs are materialized, so the result is independent of fetch order.
// Cache failures are non-fatal; a failed ledger read fails the request as a
// whole.
func (uc *GetNotificationsUseCase) Execute(ctx context.Context, input GetNotificationsInput) (*GetNotificationsOutput, error) {
	if uc.cache != nil {
		cached, found, err := uc.cache.Get(ctx, input.UserID)
		if err != nil {
			slog.Warn("Notification cache read failed", "user_id", input.UserID, "error", err)
		} else if found {
			return &GetNotificationsOutput{Notifications: cached}, nil
		}
	}

	now := uc.clock.Now()
	month := int(now.Month())
	year := now.Year()
	monthStart, monthEnd := report.MonthBounds(year, month)

	trendStart := monthStart.AddDate(0, -(tipAnalysisMonths - 1), 0)
	threeMonthsAgo := now.AddDate(0, -tipAnalysisMonths, 0)
	sevenDaysAgo := now.Add(-recentActivityWindow)
	thirtyDaysAgo := now.Add(-unusedCategoryWindow)

	var (
		monthTransactions []*entity.Transaction
		goal              *entity.MonthlyGoal
		recentExpenses    []*entity.Transaction
		recentCount       int64
		unusedCategories  []*entity.CategoryUsage
		patternCategories []*entity.TransactionWithCategory
		trendTransactions []*entity.Transaction
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
		goal, err = uc.ledger.FetchGoal(gctx, input.UserID, month, year)
		return err
	})

	g.Go(func() error {
		var err error
		recentExpenses, err = uc.ledger.FetchRecentExpenses(gctx, input.UserID, uc.anomalyWindow)
		return err
	})

	g.Go(func() error {
		var err error
		recentCount, err = uc.ledger.CountSince(gctx, input.UserID, sevenDaysAgo)
		return err
	})

	g.Go(func() error {
		var err error
		unusedCategories, err = uc.ledger.FetchUnusedCategories(gctx, input.UserID, thirtyDaysAgo)
		return err
	})

	g.Go(func() error {
		var err error
		patternCategories, err = uc.ledger.FetchWithCategories(gctx, adapter.LedgerFilter{
			UserID:    input.UserID,
			StartDate: &threeMonthsAgo,
		})
		return err
	})

	g.Go(func() error {
		var err error
		trendTransactions, err = uc.ledger.FetchTransactions(gctx, adapter.LedgerFilter{
			UserID:    input.UserID,
			StartDate: &trendStart,
			EndDate:   &now,
		})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch notification data: %w", err)
	}

	budget := report.EvaluateBudget(goal, report.Summarize(monthTransactions))
	unusual := report.DetectUnusualExpenses(recentExpenses, uc.anomalyThreshold)
	trend := report.MonthlyTrend(trendTransactions, tipAnalysisMonths, now)

	alerts := BuildAlerts(AlertsInput{
		UserID:           input.UserID,
		Budget:           budget,
		UnusualExpenses:  unusual,
		RecentCount:      recentCount,
		UnusedCategories: unusedCategories,
	}, now)

	tips := BuildTips(TipsInput{
		UserID:            input.UserID,
		CategorySummaries: report.SummarizeByCategory(patternCategories),
		Trend:             trend,
		HasGoal:           goal != nil,
	}, now)

	ranked := Rank(append(alerts, tips...))

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, input.UserID, ranked, uc.cacheTTL); err != nil {
			slog.Warn("Notification cache write failed", "user_id", input.UserID, "error", err)
		}
	}

	return &GetNotificationsOutput{Notifications: ranked}, nil
}
