// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/finantrack/backend/internal/application/adapter"
)

// Pagination defaults and bounds.
const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	Filter     adapter.TransactionFilter
	Pagination adapter.TransactionPagination
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Result *adapter.TransactionListResult
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute lists transactions matching the filter, newest first.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	pagination := input.Pagination
	if pagination.Page < 1 {
		pagination.Page = defaultPage
	}
	if pagination.Limit < 1 {
		pagination.Limit = defaultLimit
	}
	if pagination.Limit > maxLimit {
		pagination.Limit = maxLimit
	}

	result, err := uc.transactionRepo.FindByFilter(ctx, input.Filter, pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{Result: result}, nil
}
