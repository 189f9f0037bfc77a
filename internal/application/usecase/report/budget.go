// Package report contains the financial analytics engine.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/finantrack/backend/internal/domain/entity"
)

// BudgetState classifies how actual income/expense compares to its target.
type BudgetState string

const (
	BudgetStateUnder   BudgetState = "under"
	BudgetStateOnTrack BudgetState = "on_track"
	BudgetStateOver    BudgetState = "over"
)

// BudgetOverall classifies the combined budget situation.
type BudgetOverall string

const (
	BudgetOverallGood    BudgetOverall = "good"
	BudgetOverallWarning BudgetOverall = "warning"
	BudgetOverallDanger  BudgetOverall = "danger"
)

// Budget classification cut points. These are behavioral contracts: a ratio
// below 0.8 is under, above 1.2 is over, anything between is on track.
var (
	budgetUnderRatio = decimal.NewFromFloat(0.8)
	budgetOverRatio  = decimal.NewFromFloat(1.2)
)

// BudgetStatus represents the budget-compliance verdict for one month.
type BudgetStatus struct {
	HasGoal      bool                `json:"has_goal"`
	Goal         *entity.MonthlyGoal `json:"goal,omitempty"`
	Actual       Summary             `json:"actual"`
	IncomeState  BudgetState         `json:"income_state"`
	ExpenseState BudgetState         `json:"expense_state"`
	Overall      BudgetOverall       `json:"overall"`
}

// EvaluateBudget compares one month's actual totals against its goal.
// Without a goal the status is neutral: both states on_track, overall good.
// The income ratio is defined as exactly 1 when the income target is zero and
// the expense ratio as 0 when the expense target is zero, so zero targets
// never flag a state.
func EvaluateBudget(goal *entity.MonthlyGoal, actual Summary) BudgetStatus {
	if goal == nil {
		return BudgetStatus{
			HasGoal:      false,
			Actual:       actual,
			IncomeState:  BudgetStateOnTrack,
			ExpenseState: BudgetStateOnTrack,
			Overall:      BudgetOverallGood,
		}
	}

	incomeRatio := decimal.NewFromInt(1)
	if goal.Income.IsPositive() {
		incomeRatio = actual.TotalIncome.Div(goal.Income)
	}

	expenseRatio := decimal.Zero
	if goal.Expense.IsPositive() {
		expenseRatio = actual.TotalExpense.Div(goal.Expense)
	}

	incomeState := classifyRatio(incomeRatio)
	expenseState := classifyRatio(expenseRatio)

	overall := BudgetOverallGood
	if expenseState == BudgetStateOver || incomeState == BudgetStateUnder {
		if actual.Balance.IsNegative() {
			overall = BudgetOverallDanger
		} else {
			overall = BudgetOverallWarning
		}
	}

	return BudgetStatus{
		HasGoal:      true,
		Goal:         goal,
		Actual:       actual,
		IncomeState:  incomeState,
		ExpenseState: expenseState,
		Overall:      overall,
	}
}

// classifyRatio applies the 0.8/1.2 band to a ratio.
func classifyRatio(ratio decimal.Decimal) BudgetState {
	switch {
	case ratio.LessThan(budgetUnderRatio):
		return BudgetStateUnder
	case ratio.GreaterThan(budgetOverRatio):
		return BudgetStateOver
	default:
		return BudgetStateOnTrack
	}
}
