// Package report contains the financial analytics engine.
package report

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finantrack/backend/internal/domain/entity"
)

func monthlyGoal(income, expense string) *entity.MonthlyGoal {
	return &entity.MonthlyGoal{
		ID:      uuid.New(),
		UserID:  uuid.New(),
		Month:   6,
		Year:    2025,
		Income:  decimal.RequireFromString(income),
		Expense: decimal.RequireFromString(expense),
	}
}

func actualSummary(income, expense string) Summary {
	totalIncome := decimal.RequireFromString(income)
	totalExpense := decimal.RequireFromString(expense)
	return Summary{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome.Sub(totalExpense),
	}
}

func TestEvaluateBudget(t *testing.T) {
	t.Run("nil goal yields neutral status", func(t *testing.T) {
		status := EvaluateBudget(nil, actualSummary("1000.00", "5000.00"))

		if status.HasGoal {
			t.Error("expected HasGoal false")
		}
		if status.IncomeState != BudgetStateOnTrack {
			t.Errorf("expected income on_track, got %s", status.IncomeState)
		}
		if status.ExpenseState != BudgetStateOnTrack {
			t.Errorf("expected expense on_track, got %s", status.ExpenseState)
		}
		if status.Overall != BudgetOverallGood {
			t.Errorf("expected overall good, got %s", status.Overall)
		}
	})

	t.Run("income below 80 percent of target is under", func(t *testing.T) {
		status := EvaluateBudget(monthlyGoal("6000.00", "3000.00"), actualSummary("4000.00", "2500.00"))

		if status.IncomeState != BudgetStateUnder {
			t.Errorf("expected income under, got %s", status.IncomeState)
		}
		if status.ExpenseState != BudgetStateOnTrack {
			t.Errorf("expected expense on_track, got %s", status.ExpenseState)
		}
		if status.Overall != BudgetOverallWarning {
			t.Errorf("expected overall warning, got %s", status.Overall)
		}
	})

	t.Run("expense above 120 percent of target is over", func(t *testing.T) {
		status := EvaluateBudget(monthlyGoal("4000.00", "4000.00"), actualSummary("4000.00", "5000.00"))

		if status.ExpenseState != BudgetStateOver {
			t.Errorf("expected expense over, got %s", status.ExpenseState)
		}
		if status.Overall != BudgetOverallDanger {
			t.Errorf("expected overall danger with negative balance, got %s", status.Overall)
		}
	})

	t.Run("band boundaries are inclusive of on_track", func(t *testing.T) {
		// Ratio exactly 0.8 and exactly 1.2 are both on track.
		status := EvaluateBudget(monthlyGoal("1000.00", "1000.00"), actualSummary("800.00", "1200.00"))

		if status.IncomeState != BudgetStateOnTrack {
			t.Errorf("expected income on_track at ratio 0.8, got %s", status.IncomeState)
		}
		if status.ExpenseState != BudgetStateOnTrack {
			t.Errorf("expected expense on_track at ratio 1.2, got %s", status.ExpenseState)
		}
	})

	t.Run("over expense with positive balance is warning not danger", func(t *testing.T) {
		status := EvaluateBudget(monthlyGoal("1000.00", "100.00"), actualSummary("1000.00", "200.00"))

		if status.ExpenseState != BudgetStateOver {
			t.Errorf("expected expense over, got %s", status.ExpenseState)
		}
		if status.Overall != BudgetOverallWarning {
			t.Errorf("expected overall warning with positive balance, got %s", status.Overall)
		}
	})

	t.Run("zero income target never flags income", func(t *testing.T) {
		status := EvaluateBudget(monthlyGoal("0", "1000.00"), actualSummary("0", "500.00"))

		if status.IncomeState != BudgetStateOnTrack {
			t.Errorf("expected income on_track with zero target, got %s", status.IncomeState)
		}
	})

	t.Run("zero expense target can never be over", func(t *testing.T) {
		status := EvaluateBudget(monthlyGoal("1000.00", "0"), actualSummary("1000.00", "9999.00"))

		if status.ExpenseState == BudgetStateOver {
			t.Errorf("expected expense not over with zero target, got %s", status.ExpenseState)
		}
		if status.Overall != BudgetOverallGood {
			t.Errorf("expected overall good, got %s", status.Overall)
		}
	})

	t.Run("on-track month is good overall", func(t *testing.T) {
		status := EvaluateBudget(monthlyGoal("5000.00", "3000.00"), actualSummary("5000.00", "3000.00"))

		if status.Overall != BudgetOverallGood {
			t.Errorf("expected overall good, got %s", status.Overall)
		}
		if !status.HasGoal {
			t.Error("expected HasGoal true")
		}
	})
}
