// Package report contains the financial analytics engine.
package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finantrack/backend/internal/domain/entity"
)

func tx(txType entity.TransactionType, amount string) *entity.Transaction {
	return &entity.Transaction{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Date:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Amount: decimal.RequireFromString(amount),
		Type:   txType,
	}
}

func TestSummarize(t *testing.T) {
	t.Run("empty input yields all zeros", func(t *testing.T) {
		summary := Summarize(nil)

		if !summary.TotalIncome.IsZero() {
			t.Errorf("expected zero income, got %s", summary.TotalIncome)
		}
		if !summary.TotalExpense.IsZero() {
			t.Errorf("expected zero expense, got %s", summary.TotalExpense)
		}
		if !summary.Balance.IsZero() {
			t.Errorf("expected zero balance, got %s", summary.Balance)
		}
		if summary.TransactionCount != 0 {
			t.Errorf("expected count 0, got %d", summary.TransactionCount)
		}
	})

	t.Run("totals income and expense separately", func(t *testing.T) {
		summary := Summarize([]*entity.Transaction{
			tx(entity.TransactionTypeIncome, "5000.00"),
			tx(entity.TransactionTypeIncome, "250.50"),
			tx(entity.TransactionTypeExpense, "1200.00"),
			tx(entity.TransactionTypeExpense, "99.90"),
		})

		if !summary.TotalIncome.Equal(decimal.RequireFromString("5250.50")) {
			t.Errorf("expected income 5250.50, got %s", summary.TotalIncome)
		}
		if !summary.TotalExpense.Equal(decimal.RequireFromString("1299.90")) {
			t.Errorf("expected expense 1299.90, got %s", summary.TotalExpense)
		}
		if !summary.Balance.Equal(decimal.RequireFromString("3950.60")) {
			t.Errorf("expected balance 3950.60, got %s", summary.Balance)
		}
		if summary.TransactionCount != 4 {
			t.Errorf("expected count 4, got %d", summary.TransactionCount)
		}
	})

	t.Run("balance goes negative when expenses exceed income", func(t *testing.T) {
		summary := Summarize([]*entity.Transaction{
			tx(entity.TransactionTypeIncome, "100.00"),
			tx(entity.TransactionTypeExpense, "300.00"),
		})

		if !summary.Balance.Equal(decimal.RequireFromString("-200.00")) {
			t.Errorf("expected balance -200.00, got %s", summary.Balance)
		}
	})

	t.Run("result is independent of input order", func(t *testing.T) {
		a := tx(entity.TransactionTypeIncome, "10.00")
		b := tx(entity.TransactionTypeExpense, "4.00")
		c := tx(entity.TransactionTypeIncome, "6.00")

		first := Summarize([]*entity.Transaction{a, b, c})
		second := Summarize([]*entity.Transaction{c, a, b})

		if !first.Balance.Equal(second.Balance) {
			t.Errorf("expected equal balances, got %s and %s", first.Balance, second.Balance)
		}
		if !first.TotalIncome.Equal(second.TotalIncome) {
			t.Errorf("expected equal incomes, got %s and %s", first.TotalIncome, second.TotalIncome)
		}
	})
}
