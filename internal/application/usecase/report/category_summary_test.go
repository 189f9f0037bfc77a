// Package report contains the financial analytics engine.
package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finantrack/backend/internal/domain/entity"
)

func categorized(category *entity.Category, amount string) *entity.TransactionWithCategory {
	return &entity.TransactionWithCategory{
		Transaction: &entity.Transaction{
			ID:         uuid.New(),
			Date:       time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			Amount:     decimal.RequireFromString(amount),
			Type:       entity.TransactionType(category.Type),
			CategoryID: category.ID,
		},
		Category: category,
	}
}

func expenseCategory(name string) *entity.Category {
	return &entity.Category{
		ID:   uuid.New(),
		Name: name,
		Type: entity.CategoryTypeExpense,
	}
}

func TestSummarizeByCategory(t *testing.T) {
	t.Run("empty input yields empty result", func(t *testing.T) {
		result := SummarizeByCategory(nil)
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d entries", len(result))
		}
	})

	t.Run("groups by category and sorts by descending total", func(t *testing.T) {
		food := expenseCategory("Alimentação")
		transport := expenseCategory("Transporte")

		result := SummarizeByCategory([]*entity.TransactionWithCategory{
			categorized(transport, "50.00"),
			categorized(food, "200.00"),
			categorized(food, "100.00"),
			categorized(transport, "30.00"),
		})

		if len(result) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(result))
		}
		if result[0].CategoryID != food.ID {
			t.Errorf("expected food first, got %s", result[0].Name)
		}
		if !result[0].Total.Equal(decimal.RequireFromString("300.00")) {
			t.Errorf("expected food total 300.00, got %s", result[0].Total)
		}
		if result[0].TransactionCount != 2 {
			t.Errorf("expected food count 2, got %d", result[0].TransactionCount)
		}
		if !result[1].Total.Equal(decimal.RequireFromString("80.00")) {
			t.Errorf("expected transport total 80.00, got %s", result[1].Total)
		}
	})

	t.Run("percentage is share of the same-kind total", func(t *testing.T) {
		food := expenseCategory("Alimentação")
		transport := expenseCategory("Transporte")
		salary := &entity.Category{ID: uuid.New(), Name: "Salário", Type: entity.CategoryTypeIncome}

		result := SummarizeByCategory([]*entity.TransactionWithCategory{
			categorized(food, "75.00"),
			categorized(transport, "25.00"),
			categorized(salary, "1000.00"),
		})

		if len(result) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(result))
		}
		// Income percentages divide by the income total, not the grand total.
		if result[0].Percentage != 100 {
			t.Errorf("expected salary at 100%%, got %v", result[0].Percentage)
		}
		if result[1].Percentage != 75 {
			t.Errorf("expected food at 75%%, got %v", result[1].Percentage)
		}
		if result[2].Percentage != 25 {
			t.Errorf("expected transport at 25%%, got %v", result[2].Percentage)
		}
	})

	t.Run("percentage rounds to two decimal places", func(t *testing.T) {
		a := expenseCategory("A")
		b := expenseCategory("B")
		c := expenseCategory("C")

		result := SummarizeByCategory([]*entity.TransactionWithCategory{
			categorized(a, "1.00"),
			categorized(b, "1.00"),
			categorized(c, "1.00"),
		})

		for _, summary := range result {
			if summary.Percentage != 33.33 {
				t.Errorf("expected 33.33, got %v", summary.Percentage)
			}
		}
	})

	t.Run("ties keep first-appearance order", func(t *testing.T) {
		first := expenseCategory("Primeiro")
		second := expenseCategory("Segundo")

		result := SummarizeByCategory([]*entity.TransactionWithCategory{
			categorized(first, "50.00"),
			categorized(second, "50.00"),
		})

		if result[0].CategoryID != first.ID {
			t.Errorf("expected tie to keep input order, got %s first", result[0].Name)
		}
	})
}
