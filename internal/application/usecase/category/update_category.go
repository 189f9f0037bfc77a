// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finantrack/backend/internal/application/adapter"
	"github.com/finantrack/backend/internal/domain/entity"
	domainerror "github.com/finantrack/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update. Nil fields
// are left unchanged. The type of a category cannot change once created.
type UpdateCategoryInput struct {
	CategoryID uuid.UUID
	UserID     uuid.UUID
	Name       *string
	Color      *string
	IsActive   *bool
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute updates the provided fields of an existing category.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
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

	if input.Name != nil && *input.Name != category.Name {
		exists, err := uc.categoryRepo.ExistsByNameAndType(ctx, input.UserID, *input.Name, category.Type)
		if err != nil {
			return nil, fmt.Errorf("failed to check category existence: %w", err)
		}
		if exists {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryAlreadyExists,
				"a category with this name and type already exists",
				domainerror.ErrCategoryAlreadyExists,
			)
		}
		category.Name = *input.Name
	}
	if input.Color != nil {
		category.Color = *input.Color
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	category.UpdatedAt = time.Now().UTC()
	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{Category: category}, nil
}
