// Package goal contains monthly goal use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finantrack/backend/internal/application/adapter"
	"github.com/finantrack/backend/internal/domain/entity"
	domainerror "github.com/finantrack/backend/internal/domain/error"
)

// GetGoalInput represents the input for getting a single month's goal.
type GetGoalInput struct {
	UserID uuid.UUID
	Month  int
	Year   int
}

// GetGoalOutput represents the output of getting a goal.
type GetGoalOutput struct {
	Goal *entity.MonthlyGoal
}

// GetGoalUseCase handles goal retrieval by period.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute retrieves the goal for the given month and year.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	if err := validatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}

	goal, err := uc.goalRepo.FindByMonthYear(ctx, input.UserID, input.Month, input.Year)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"no goal defined for this month",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	return &GetGoalOutput{Goal: goal}, nil
}
