// Package notification turns the analytics engine's outputs into a ranked
// list of user-facing alerts and tips. Generation is deterministic: for a
// given input bundle and clock reading, the same notifications (including
// their IDs) are produced.
package notification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finantrack/backend/internal/application/usecase/report"
	"github.com/finantrack/backend/internal/domain/entity"
)

// expenseWarningFloor is the share of the expense goal (in percent) above
// which the approaching-limit warning fires. At 100% and beyond the over-goal
// alert takes over.
const expenseWarningFloor = 80.0

// maxAnomalySamples is how many flagged transactions are embedded in the
// unusual-expenses alert payload.
const maxAnomalySamples = 3

// maxUnusedCategoryNames is how many category names are embedded in the
// unused-categories alert payload.
const maxUnusedCategoryNames = 5

// AlertsInput bundles everything the alert generator inspects. All fields are
// outputs of the analytics engine or simple ledger presence checks; the
// generator itself performs no data access.
type AlertsInput struct {
	UserID uuid.UUID

	// Budget is the current month's budget-compliance verdict.
	Budget report.BudgetStatus

	// UnusualExpenses are the flagged outliers, most recent first.
	UnusualExpenses []*entity.Transaction

	// RecentCount is the number of transactions recorded in the last 7 days.
	RecentCount int64

	// UnusedCategories are active categories without transactions in the last
	// 30 days, with their historical usage counts.
	UnusedCategories []*entity.CategoryUsage
}

// BuildAlerts produces the financial alerts for a user. Each check emits at
// most one notification; absent conditions emit nothing. now is the
// generation instant and also determines the period baked into alert IDs.
func BuildAlerts(input AlertsInput, now time.Time) []*entity.Notification {
	alerts := make([]*entity.Notification, 0)
	month := int(now.Month())
	year := now.Year()

	if input.Budget.HasGoal {
		goal := input.Budget.Goal
		actual := input.Budget.Actual

		if input.Budget.ExpenseState == report.BudgetStateOver {
			percentage := ratioPercent(actual.TotalExpense, goal.Expense)
			alerts = append(alerts, &entity.Notification{
				ID:       fmt.Sprintf("expense-over-%s-%d-%d", input.UserID, month, year),
				Severity: entity.SeverityDanger,
				Title:    "Gastos acima da meta",
				Message: fmt.Sprintf(
					"Você já gastou %s este mês, ultrapassando sua meta de %s.",
					formatBRL(actual.TotalExpense), formatBRL(goal.Expense),
				),
				Data: map[string]interface{}{
					"actual":     actual.TotalExpense,
					"goal":       goal.Expense,
					"percentage": percentage,
				},
				CreatedAt: now,
			})
		}

		if input.Budget.IncomeState == report.BudgetStateUnder {
			percentage := ratioPercent(actual.TotalIncome, goal.Income)
			alerts = append(alerts, &entity.Notification{
				ID:       fmt.Sprintf("income-under-%s-%d-%d", input.UserID, month, year),
				Severity: entity.SeverityWarning,
				Title:    "Receita abaixo da meta",
				Message: fmt.Sprintf(
					"Sua receita atual de %s está abaixo da meta de %s.",
					formatBRL(actual.TotalIncome), formatBRL(goal.Income),
				),
				Data: map[string]interface{}{
					"actual":     actual.TotalIncome,
					"goal":       goal.Income,
					"percentage": percentage,
				},
				CreatedAt: now,
			})
		}

		if actual.Balance.IsNegative() {
			alerts = append(alerts, &entity.Notification{
				ID:       fmt.Sprintf("negative-balance-%s-%d-%d", input.UserID, month, year),
				Severity: entity.SeverityDanger,
				Title:    "Saldo negativo",
				Message: fmt.Sprintf(
					"Seu saldo atual está negativo em %s.",
					formatBRL(actual.Balance.Abs()),
				),
				Data: map[string]interface{}{
					"balance": actual.Balance,
				},
				CreatedAt: now,
			})
		}

		if goal.Expense.IsPositive() {
			expensePercentage := ratioPercent(actual.TotalExpense, goal.Expense)
			if expensePercentage >= expenseWarningFloor && expensePercentage < 100 {
				alerts = append(alerts, &entity.Notification{
					ID:       fmt.Sprintf("expense-warning-%s-%d-%d", input.UserID, month, year),
					Severity: entity.SeverityWarning,
					Title:    "Aproximando do limite de gastos",
					Message: fmt.Sprintf(
						"Você já gastou %.1f%% da sua meta mensal de despesas.",
						expensePercentage,
					),
					Data: map[string]interface{}{
						"percentage": expensePercentage,
						"remaining":  goal.Expense.Sub(actual.TotalExpense),
					},
					CreatedAt: now,
				})
			}
		}
	}

	if len(input.UnusualExpenses) > 0 {
		total := decimal.Zero
		for _, t := range input.UnusualExpenses {
			total = total.Add(t.Amount)
		}

		samples := input.UnusualExpenses
		if len(samples) > maxAnomalySamples {
			samples = samples[:maxAnomalySamples]
		}
		sampleIDs := make([]string, len(samples))
		for i, t := range samples {
			sampleIDs[i] = t.ID.String()
		}

		alerts = append(alerts, &entity.Notification{
			ID:       fmt.Sprintf("unusual-expenses-%s-%d", input.UserID, now.UnixMilli()),
			Severity: entity.SeverityInfo,
			Title:    "Gastos incomuns detectados",
			Message: fmt.Sprintf(
				"Detectamos %d transação(ões) com valores acima do seu padrão usual, totalizando %s.",
				len(input.UnusualExpenses), formatBRL(total),
			),
			Data: map[string]interface{}{
				"count":           len(input.UnusualExpenses),
				"total":           total,
				"transaction_ids": sampleIDs,
			},
			CreatedAt: now,
		})
	}

	if input.RecentCount == 0 {
		alerts = append(alerts, &entity.Notification{
			ID:       fmt.Sprintf("no-recent-transactions-%s", input.UserID),
			Severity: entity.SeverityInfo,
			Title:    "Nenhuma transação recente",
			Message:  "Você não registrou nenhuma transação nos últimos 7 dias. Lembre-se de manter seu controle financeiro atualizado.",
			CreatedAt: now,
		})
	}

	used := make([]*entity.CategoryUsage, 0, len(input.UnusedCategories))
	for _, cu := range input.UnusedCategories {
		if cu.TransactionCount > 0 {
			used = append(used, cu)
		}
	}
	if len(used) > 0 {
		names := make([]string, 0, maxUnusedCategoryNames)
		for _, cu := range used {
			if len(names) == maxUnusedCategoryNames {
				break
			}
			names = append(names, cu.Category.Name)
		}

		alerts = append(alerts, &entity.Notification{
			ID:       fmt.Sprintf("unused-categories-%s", input.UserID),
			Severity: entity.SeverityInfo,
			Title:    "Categorias sem uso recente",
			Message: fmt.Sprintf(
				"Você tem %d categoria(s) que não são usadas há mais de 30 dias.",
				len(used),
			),
			Data: map[string]interface{}{
				"count":      len(used),
				"categories": names,
			},
			CreatedAt: now,
		})
	}

	return alerts
}

// formatBRL formats a decimal amount as Brazilian currency.
func formatBRL(amount decimal.Decimal) string {
	return "R$ " + amount.StringFixed(2)
}

// ratioPercent returns actual/target as a percentage, 0 when the target is
// not positive.
func ratioPercent(actual, target decimal.Decimal) float64 {
	if !target.IsPositive() {
		return 0
	}
	return actual.Mul(decimal.NewFromInt(100)).Div(target).InexactFloat64()
}
