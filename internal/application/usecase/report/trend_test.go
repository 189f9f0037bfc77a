// Package report contains the financial analytics engine.
package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finantrack/backend/internal/domain/entity"
)

func trendTx(txType entity.TransactionType, amount string, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:     uuid.New(),
		Date:   date,
		Amount: decimal.RequireFromString(amount),
		Type:   txType,
	}
}

func TestMonthlyTrend(t *testing.T) {
	anchor := time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)

	t.Run("returns one zero-filled point per month in ascending order", func(t *testing.T) {
		points := MonthlyTrend(nil, 6, anchor)

		if len(points) != 6 {
			t.Fatalf("expected 6 points, got %d", len(points))
		}
		expected := []struct{ month, year int }{
			{1, 2025}, {2, 2025}, {3, 2025}, {4, 2025}, {5, 2025}, {6, 2025},
		}
		for i, want := range expected {
			if points[i].Month != want.month || points[i].Year != want.year {
				t.Errorf("point %d: expected %d/%d, got %d/%d", i, want.month, want.year, points[i].Month, points[i].Year)
			}
			if !points[i].Income.IsZero() || !points[i].Expense.IsZero() || !points[i].Balance.IsZero() {
				t.Errorf("point %d: expected zero values", i)
			}
		}
	})

	t.Run("window crosses year boundaries", func(t *testing.T) {
		points := MonthlyTrend(nil, 4, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))

		expected := []struct{ month, year int }{
			{11, 2024}, {12, 2024}, {1, 2025}, {2, 2025},
		}
		for i, want := range expected {
			if points[i].Month != want.month || points[i].Year != want.year {
				t.Errorf("point %d: expected %d/%d, got %d/%d", i, want.month, want.year, points[i].Month, points[i].Year)
			}
		}
	})

	t.Run("buckets transactions into their calendar month", func(t *testing.T) {
		points := MonthlyTrend([]*entity.Transaction{
			trendTx(entity.TransactionTypeIncome, "1000.00", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)),
			trendTx(entity.TransactionTypeExpense, "400.00", time.Date(2025, 5, 31, 23, 59, 0, 0, time.UTC)),
			trendTx(entity.TransactionTypeExpense, "100.00", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)),
		}, 3, anchor)

		may := points[1]
		if !may.Income.Equal(decimal.RequireFromString("1000.00")) {
			t.Errorf("expected May income 1000.00, got %s", may.Income)
		}
		if !may.Expense.Equal(decimal.RequireFromString("400.00")) {
			t.Errorf("expected May expense 400.00, got %s", may.Expense)
		}
		if !may.Balance.Equal(decimal.RequireFromString("600.00")) {
			t.Errorf("expected May balance 600.00, got %s", may.Balance)
		}

		june := points[2]
		if !june.Expense.Equal(decimal.RequireFromString("100.00")) {
			t.Errorf("expected June expense 100.00, got %s", june.Expense)
		}
		if !june.Balance.Equal(decimal.RequireFromString("-100.00")) {
			t.Errorf("expected June balance -100.00, got %s", june.Balance)
		}
	})

	t.Run("transactions outside the window are ignored", func(t *testing.T) {
		points := MonthlyTrend([]*entity.Transaction{
			trendTx(entity.TransactionTypeExpense, "999.00", time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)),
			trendTx(entity.TransactionTypeExpense, "999.00", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)),
		}, 3, anchor)

		for i, p := range points {
			if !p.Expense.IsZero() {
				t.Errorf("point %d: expected out-of-window transactions ignored, got %s", i, p.Expense)
			}
		}
	})

	t.Run("non-positive window yields empty series", func(t *testing.T) {
		if points := MonthlyTrend(nil, 0, anchor); len(points) != 0 {
			t.Errorf("expected empty series for 0 months, got %d", len(points))
		}
		if points := MonthlyTrend(nil, -3, anchor); len(points) != 0 {
			t.Errorf("expected empty series for negative months, got %d", len(points))
		}
	})
}
