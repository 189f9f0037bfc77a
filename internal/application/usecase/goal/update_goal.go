// Package goal contains monthly goal use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finantrack/backend/internal/application/adapter"
	"github.com/finantrack/backend/internal/domain/entity"
	domainerror "github.com/finantrack/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for updating a goal by ID.
type UpdateGoalInput struct {
	GoalID  uuid.UUID
	UserID  uuid.UUID
	Income  *decimal.Decimal
	Expense *decimal.Decimal
}

// UpdateGoalOutput represents the output of updating a goal.
type UpdateGoalOutput struct {
	Goal *entity.MonthlyGoal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute updates the provided fields of an existing goal.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	if goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"goal does not belong to user",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	if input.Income != nil {
		goal.Income = *input.Income
	}
	if input.Expense != nil {
		goal.Expense = *input.Expense
	}
	if err := validateAmounts(goal.Income, goal.Expense); err != nil {
		return nil, err
	}

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: goal}, nil
}
