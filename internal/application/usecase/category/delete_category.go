// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finantrack/backend/internal/application/adapter"
	domainerror "github.com/finantrack/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
	UserID     uuid.UUID
}

// DeleteCategoryUseCase handles category deletion logic. Categories with
// recorded transactions are deactivated instead of removed so historical
// reports stay consistent.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// DeleteCategoryOutput reports whether the category was removed or only
// deactivated.
type DeleteCategoryOutput struct {
	Deactivated bool
}

// Execute deletes or deactivates a category after checking ownership.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	if category.UserID != input.UserID {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeUnauthorizedCategoryAccess,
			"category does not belong to user",
			domainerror.ErrUnauthorizedCategoryAccess,
		)
	}

	count, err := uc.categoryRepo.CountTransactions(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to count category transactions: %w", err)
	}

	if count > 0 {
		category.IsActive = false
		if err := uc.categoryRepo.Update(ctx, category); err != nil {
			return nil, fmt.Errorf("failed to deactivate category: %w", err)
		}
		return &DeleteCategoryOutput{Deactivated: true}, nil
	}

	if err := uc.categoryRepo.Delete(ctx, input.CategoryID); err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	return &DeleteCategoryOutput{Deactivated: false}, nil
}
