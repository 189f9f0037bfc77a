// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finantrack/backend/internal/domain/entity"
)

// GoalRepository defines the interface for monthly goal persistence operations.
type GoalRepository interface {
	// Create creates a new monthly goal in the database.
	Create(ctx context.Context, goal *entity.MonthlyGoal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MonthlyGoal, error)

	// FindByUserID retrieves all goals for a given user, newest period first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.MonthlyGoal, error)

	// FindByMonthYear retrieves the goal for a given user, month and year.
	// Returns ErrGoalNotFound when none exists.
	FindByMonthYear(ctx context.Context, userID uuid.UUID, month, year int) (*entity.MonthlyGoal, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.MonthlyGoal) error

	// Delete removes a goal from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
