// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finantrack/backend/internal/application/adapter"
	"github.com/finantrack/backend/internal/domain/entity"
	domainerror "github.com/finantrack/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update. Nil
// fields are left unchanged.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Date          *time.Time
	Description   *string
	Amount        *decimal.Decimal
	Type          *entity.TransactionType
	CategoryID    *uuid.UUID
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute updates the provided fields of an existing transaction, re-checking
// the type/category consistency with the final field values.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if transaction.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeUnauthorizedTransactionAccess,
			"transaction does not belong to user",
			domainerror.ErrUnauthorizedTransactionAccess,
		)
	}

	if input.Date != nil {
		transaction.Date = *input.Date
	}
	if input.Description != nil {
		transaction.Description = *input.Description
	}
	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidAmount,
				"amount must be greater than zero",
				domainerror.ErrInvalidAmount,
			)
		}
		transaction.Amount = *input.Amount
	}
	if input.Type != nil {
		if !isValidTransactionType(*input.Type) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"type must be INCOME or EXPENSE",
				domainerror.ErrInvalidTransactionType,
			)
		}
		transaction.Type = *input.Type
	}
	if input.CategoryID != nil {
		transaction.CategoryID = *input.CategoryID
	}

	category, err := uc.categoryRepo.FindByID(ctx, transaction.CategoryID)
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
	if string(category.Type) != string(transaction.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTypeMismatch,
			"transaction type must match category type",
			domainerror.ErrTypeMismatch,
		)
	}

	transaction.UpdatedAt = time.Now().UTC()
	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: transaction}, nil
}
