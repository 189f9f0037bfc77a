// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyGoal represents a monthly income/expense target in the FinanTrack
// system. At most one goal exists per (user, month, year).
type MonthlyGoal struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Month     int // 1-12
	Year      int
	Income    decimal.Decimal
	Expense   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMonthlyGoal creates a new MonthlyGoal entity.
func NewMonthlyGoal(userID uuid.UUID, month, year int, income, expense decimal.Decimal) *MonthlyGoal {
	now := time.Now().UTC()

	return &MonthlyGoal{
		ID:        uuid.New(),
		UserID:    userID,
		Month:     month,
		Year:      year,
		Income:    income,
		Expense:   expense,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
