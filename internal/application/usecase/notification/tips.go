// Package notification turns the analytics engine's outputs into a ranked
// list of user-facing alerts and tips.
package notification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finantrack/backend/internal/application/usecase/report"
	"github.com/finantrack/backend/internal/domain/entity"
)

// dominantCategoryShare is the percentage of total expenses above which a
// single category triggers the savings tip.
const dominantCategoryShare = 40.0

// Month-over-month cut points: expenses above 1.2x or income below 0.8x the
// previous month trigger a tip.
var (
	monthOverMonthIncrease = decimal.NewFromFloat(1.2)
	monthOverMonthDecrease = decimal.NewFromFloat(0.8)
	hundred                = decimal.NewFromInt(100)
)

// minExpenseCategories is the number of distinct expense categories below
// which the diversification tip fires.
const minExpenseCategories = 3

// TipsInput bundles everything the tip generator inspects.
type TipsInput struct {
	UserID uuid.UUID

	// CategorySummaries is the category breakdown over the trailing 3 months,
	// ordered by descending total.
	CategorySummaries []report.CategorySummary

	// Trend is the trailing monthly trend series in ascending order; the last
	// point is the current month.
	Trend []report.MonthlyTrendPoint

	// HasGoal reports whether a goal is defined for the current month.
	HasGoal bool
}

// BuildTips produces personalized financial tips. Each check is independent
// and emits at most one notification.
func BuildTips(input TipsInput, now time.Time) []*entity.Notification {
	tips := make([]*entity.Notification, 0)

	expenseCategories := make([]report.CategorySummary, 0, len(input.CategorySummaries))
	for _, c := range input.CategorySummaries {
		if c.Type == entity.CategoryTypeExpense {
			expenseCategories = append(expenseCategories, c)
		}
	}

	if len(expenseCategories) > 0 {
		top := expenseCategories[0]
		if top.Percentage > dominantCategoryShare {
			tips = append(tips, &entity.Notification{
				ID:       fmt.Sprintf("tip-top-expense-%s", input.UserID),
				Severity: entity.SeverityInfo,
				Title:    "Dica de economia",
				Message: fmt.Sprintf(
					"%.1f%% dos seus gastos são com \"%s\". Considere revisar esses gastos para encontrar oportunidades de economia.",
					top.Percentage, top.Name,
				),
				Data: map[string]interface{}{
					"category": top,
				},
				CreatedAt: now,
			})
		}

		if len(expenseCategories) < minExpenseCategories {
			tips = append(tips, &entity.Notification{
				ID:        fmt.Sprintf("tip-diversification-%s", input.UserID),
				Severity:  entity.SeverityInfo,
				Title:     "Organize melhor seus gastos",
				Message:   "Você usa poucas categorias para seus gastos. Criar mais categorias específicas pode ajudar a ter um controle mais detalhado.",
				CreatedAt: now,
			})
		}
	}

	if len(input.Trend) >= 2 {
		current := input.Trend[len(input.Trend)-1]
		previous := input.Trend[len(input.Trend)-2]

		// The month-over-month checks need a positive previous value; a zero
		// baseline produces no meaningful ratio.
		if previous.Expense.IsPositive() && current.Expense.GreaterThan(previous.Expense.Mul(monthOverMonthIncrease)) {
			increase := current.Expense.Sub(previous.Expense)
			increasePct := increase.Mul(hundred).Div(previous.Expense).InexactFloat64()
			tips = append(tips, &entity.Notification{
				ID:       fmt.Sprintf("tip-expense-increase-%s", input.UserID),
				Severity: entity.SeverityWarning,
				Title:    "Gastos em alta",
				Message: fmt.Sprintf(
					"Seus gastos aumentaram %.1f%% em relação ao mês anterior. Revise seus gastos recentes.",
					increasePct,
				),
				Data: map[string]interface{}{
					"current_month":  current.Expense,
					"previous_month": previous.Expense,
					"increase":       increase,
				},
				CreatedAt: now,
			})
		}

		if previous.Income.IsPositive() && current.Income.LessThan(previous.Income.Mul(monthOverMonthDecrease)) {
			tips = append(tips, &entity.Notification{
				ID:       fmt.Sprintf("tip-income-decrease-%s", input.UserID),
				Severity: entity.SeverityInfo,
				Title:    "Receita em baixa",
				Message:  "Sua receita diminuiu em relação ao mês anterior. Considere buscar fontes de renda complementares.",
				Data: map[string]interface{}{
					"current_month":  current.Income,
					"previous_month": previous.Income,
					"decrease":       previous.Income.Sub(current.Income),
				},
				CreatedAt: now,
			})
		}
	}

	if !input.HasGoal {
		tips = append(tips, &entity.Notification{
			ID:        fmt.Sprintf("tip-set-goal-%s", input.UserID),
			Severity:  entity.SeverityInfo,
			Title:     "Defina suas metas",
			Message:   "Você ainda não definiu uma meta financeira para este mês. Definir metas ajuda a manter o controle dos gastos.",
			CreatedAt: now,
		})
	}

	return tips
}
