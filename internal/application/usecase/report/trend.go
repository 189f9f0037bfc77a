// Package report contains the financial analytics engine.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finantrack/backend/internal/domain/entity"
)

// MonthlyTrendPoint represents the income/expense/balance of one calendar
// month. Points exist even for months with zero transactions.
type MonthlyTrendPoint struct {
	Month   int             `json:"month"`
	Year    int             `json:"year"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// MonthlyTrend buckets transactions into months consecutive calendar-month
// buckets ending at the anchor's month and returns them in ascending
// chronological order, zero-filled. Transactions are bucketed by the local
// calendar month/year of their date; anything outside the window is ignored.
func MonthlyTrend(transactions []*entity.Transaction, months int, anchor time.Time) []MonthlyTrendPoint {
	if months <= 0 {
		return []MonthlyTrendPoint{}
	}

	// Index of the first bucket, counted in whole months since year zero.
	anchorIndex := anchor.Year()*12 + int(anchor.Month()) - 1
	startIndex := anchorIndex - months + 1

	points := make([]MonthlyTrendPoint, months)
	for i := range points {
		monthIndex := startIndex + i
		points[i] = MonthlyTrendPoint{
			Month:   monthIndex%12 + 1,
			Year:    monthIndex / 12,
			Income:  decimal.Zero,
			Expense: decimal.Zero,
			Balance: decimal.Zero,
		}
	}

	for _, t := range transactions {
		offset := t.Date.Year()*12 + int(t.Date.Month()) - 1 - startIndex
		if offset < 0 || offset >= months {
			continue
		}

		switch t.Type {
		case entity.TransactionTypeIncome:
			points[offset].Income = points[offset].Income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			points[offset].Expense = points[offset].Expense.Add(t.Amount)
		}
	}

	for i := range points {
		points[i].Balance = points[i].Income.Sub(points[i].Expense)
	}

	return points
}
