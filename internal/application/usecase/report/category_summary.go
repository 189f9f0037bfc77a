// Package report contains the financial analytics engine.
package report

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finantrack/backend/internal/domain/entity"
)

// CategorySummary represents the aggregated totals for a single category.
// Percentage is the category's share of the total of the same kind (income or
// expense) across the whole set, rounded to 2 decimal places.
type CategorySummary struct {
	CategoryID       uuid.UUID           `json:"category_id"`
	Name             string              `json:"name"`
	Color            string              `json:"color"`
	Type             entity.CategoryType `json:"type"`
	Total            decimal.Decimal     `json:"total"`
	Percentage       float64             `json:"percentage"`
	TransactionCount int                 `json:"transaction_count"`
}

// SummarizeByCategory groups a transaction set by category, computing
// per-category totals, counts and percentage shares. The result is ordered by
// descending total; ties keep the order in which categories first appear in
// the input.
func SummarizeByCategory(transactions []*entity.TransactionWithCategory) []CategorySummary {
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero

	byCategory := make(map[uuid.UUID]*CategorySummary)
	summaries := make([]*CategorySummary, 0)

	for _, tc := range transactions {
		switch tc.Transaction.Type {
		case entity.TransactionTypeIncome:
			totalIncome = totalIncome.Add(tc.Transaction.Amount)
		case entity.TransactionTypeExpense:
			totalExpense = totalExpense.Add(tc.Transaction.Amount)
		}

		summary, ok := byCategory[tc.Category.ID]
		if !ok {
			summary = &CategorySummary{
				CategoryID: tc.Category.ID,
				Name:       tc.Category.Name,
				Color:      tc.Category.Color,
				Type:       tc.Category.Type,
				Total:      decimal.Zero,
			}
			byCategory[tc.Category.ID] = summary
			summaries = append(summaries, summary)
		}

		summary.Total = summary.Total.Add(tc.Transaction.Amount)
		summary.TransactionCount++
	}

	for _, summary := range summaries {
		kindTotal := totalExpense
		if summary.Type == entity.CategoryTypeIncome {
			kindTotal = totalIncome
		}

		// Guard the zero denominator explicitly; percentage stays 0.
		if kindTotal.IsPositive() {
			pct := summary.Total.Mul(decimal.NewFromInt(100)).Div(kindTotal)
			summary.Percentage, _ = pct.Round(2).Float64()
		}
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Total.GreaterThan(summaries[j].Total)
	})

	result := make([]CategorySummary, len(summaries))
	for i, summary := range summaries {
		result[i] = *summary
	}
	return result
}
