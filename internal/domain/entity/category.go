// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (income or expense).
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "INCOME"
	CategoryTypeExpense CategoryType = "EXPENSE"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#6366F1"

// Category represents a transaction category in the FinanTrack system.
// A transaction's type must always equal its category's type; this is
// enforced when transactions are created.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Color     string
	Type      CategoryType
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(userID uuid.UUID, name, color string, categoryType CategoryType) *Category {
	now := time.Now().UTC()

	if color == "" {
		color = DefaultCategoryColor
	}

	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Color:     color,
		Type:      categoryType,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CategoryUsage pairs a category with its total historical transaction count.
type CategoryUsage struct {
	Category         *Category
	TransactionCount int
}
