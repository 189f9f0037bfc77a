// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finantrack/backend/internal/domain/entity"
)

// SetGoalRequest represents the request body for setting a monthly goal.
type SetGoalRequest struct {
	Month   int             `json:"month" binding:"required,min=1,max=12"`
	Year    int             `json:"year" binding:"required"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// UpdateGoalRequest represents the request body for updating a goal.
type UpdateGoalRequest struct {
	Income  *decimal.Decimal `json:"income,omitempty"`
	Expense *decimal.Decimal `json:"expense,omitempty"`
}

// GoalResponse represents a single monthly goal in API responses.
type GoalResponse struct {
	ID        string          `json:"id"`
	Month     int             `json:"month"`
	Year      int             `json:"year"`
	Income    decimal.Decimal `json:"income"`
	Expense   decimal.Decimal `json:"expense"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain MonthlyGoal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.MonthlyGoal) GoalResponse {
	return GoalResponse{
		ID:        g.ID.String(),
		Month:     g.Month,
		Year:      g.Year,
		Income:    g.Income,
		Expense:   g.Expense,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// ToGoalListResponse converts a list of goals to a GoalListResponse.
func ToGoalListResponse(goals []*entity.MonthlyGoal) GoalListResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g)
	}
	return GoalListResponse{
		Goals: responses,
	}
}
