// Package report contains the financial analytics engine: aggregate
// summaries, category breakdowns, monthly trends, budget evaluation and
// statistical outlier detection. All computations here are pure functions of
// their inputs; data access happens in the use cases that wrap them.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/finantrack/backend/internal/domain/entity"
)

// Summary represents aggregated totals over a set of transactions.
type Summary struct {
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpense     decimal.Decimal `json:"total_expense"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transaction_count"`
}

// Summarize computes income/expense totals and balance over an arbitrary
// transaction set. The input does not need to be sorted; an empty input
// yields all zeros.
func Summarize(transactions []*entity.Transaction) Summary {
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero

	for _, t := range transactions {
		switch t.Type {
		case entity.TransactionTypeIncome:
			totalIncome = totalIncome.Add(t.Amount)
		case entity.TransactionTypeExpense:
			totalExpense = totalExpense.Add(t.Amount)
		}
	}

	return Summary{
		TotalIncome:      totalIncome,
		TotalExpense:     totalExpense,
		Balance:          totalIncome.Sub(totalExpense),
		TransactionCount: len(transactions),
	}
}
