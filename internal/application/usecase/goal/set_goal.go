// Package goal contains monthly goal use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finantrack/backend/internal/application/adapter"
	"github.com/finantrack/backend/internal/domain/entity"
	domainerror "github.com/finantrack/backend/internal/domain/error"
)

// SetGoalInput represents the input for setting a monthly goal.
type SetGoalInput struct {
	UserID  uuid.UUID
	Month   int
	Year    int
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// SetGoalOutput represents the output of setting a monthly goal.
type SetGoalOutput struct {
	Goal    *entity.MonthlyGoal
	Created bool
}

// SetGoalUseCase creates or replaces the goal for a given month. The
// (user, month, year) pair is unique, so a second set for the same period
// updates the existing goal in place.
type SetGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewSetGoalUseCase creates a new SetGoalUseCase instance.
func NewSetGoalUseCase(goalRepo adapter.GoalRepository) *SetGoalUseCase {
	return &SetGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal upsert.
func (uc *SetGoalUseCase) Execute(ctx context.Context, input SetGoalInput) (*SetGoalOutput, error) {
	if err := validatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}
	if err := validateAmounts(input.Income, input.Expense); err != nil {
		return nil, err
	}

	existing, err := uc.goalRepo.FindByMonthYear(ctx, input.UserID, input.Month, input.Year)
	if err != nil && !errors.Is(err, domainerror.ErrGoalNotFound) {
		return nil, fmt.Errorf("failed to check goal existence: %w", err)
	}

	if existing != nil {
		existing.Income = input.Income
		existing.Expense = input.Expense
		if err := uc.goalRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update goal: %w", err)
		}
		return &SetGoalOutput{Goal: existing, Created: false}, nil
	}

	goal := entity.NewMonthlyGoal(input.UserID, input.Month, input.Year, input.Income, input.Expense)
	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &SetGoalOutput{Goal: goal, Created: true}, nil
}

// validatePeriod checks the month and year ranges shared by the goal use cases.
func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalPeriod,
			"month must be between 1 and 12",
			domainerror.ErrInvalidGoalPeriod,
		)
	}
	if year < 2020 || year > 2100 {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalPeriod,
			"year must be between 2020 and 2100",
			domainerror.ErrInvalidGoalPeriod,
		)
	}
	return nil
}

// validateAmounts rejects negative goal targets. Zero is allowed and means
// the target is not set for that side.
func validateAmounts(income, expense decimal.Decimal) error {
	if income.IsNegative() || expense.IsNegative() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalAmount,
			"goal amounts must be non-negative",
			domainerror.ErrInvalidGoalAmount,
		)
	}
	return nil
}
