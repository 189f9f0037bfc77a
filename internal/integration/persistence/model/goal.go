// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finantrack/backend/internal/domain/entity"
)

// GoalModel represents the monthly_goals table in the database.
type GoalModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_goal_period"`
	Month     int             `gorm:"not null;uniqueIndex:idx_goal_period"`
	Year      int             `gorm:"not null;uniqueIndex:idx_goal_period"`
	Income    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Expense   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "monthly_goals"
}

// ToEntity converts a GoalModel to a domain MonthlyGoal entity.
func (m *GoalModel) ToEntity() *entity.MonthlyGoal {
	return &entity.MonthlyGoal{
		ID:        m.ID,
		UserID:    m.UserID,
		Month:     m.Month,
		Year:      m.Year,
		Income:    m.Income,
		Expense:   m.Expense,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain MonthlyGoal entity.
func GoalFromEntity(goal *entity.MonthlyGoal) *GoalModel {
	return &GoalModel{
		ID:        goal.ID,
		UserID:    goal.UserID,
		Month:     goal.Month,
		Year:      goal.Year,
		Income:    goal.Income,
		Expense:   goal.Expense,
		CreatedAt: goal.CreatedAt,
		UpdatedAt: goal.UpdatedAt,
	}
}
