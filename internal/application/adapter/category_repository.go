// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finantrack/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByUserID retrieves all active categories for a given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// ExistsByNameAndType checks if the user already has a category with the
	// given name and type.
	ExistsByNameAndType(ctx context.Context, userID uuid.UUID, name string, categoryType entity.CategoryType) (bool, error)

	// CountTransactions counts the transactions recorded under a category.
	CountTransactions(ctx context.Context, categoryID uuid.UUID) (int64, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
