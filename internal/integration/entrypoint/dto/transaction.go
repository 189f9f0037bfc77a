// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finantrack/backend/internal/application/adapter"
	"github.com/finantrack/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date        string          `json:"date" binding:"required"`
	Description string          `json:"description" binding:"required,max=255"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	CategoryID  string          `json:"category_id" binding:"required,uuid"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Date        *string          `json:"date,omitempty"`
	Description *string          `json:"description,omitempty" binding:"omitempty,max=255"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Type        *string          `json:"type,omitempty" binding:"omitempty,oneof=INCOME EXPENSE"`
	CategoryID  *string          `json:"category_id,omitempty" binding:"omitempty,uuid"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string            `json:"id"`
	Date        string            `json:"date"`
	Description string            `json:"description"`
	Amount      decimal.Decimal   `json:"amount"`
	Type        string            `json:"type"`
	CategoryID  string            `json:"category_id"`
	Category    *CategoryResponse `json:"category,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	TotalPages   int                   `json:"total_pages"`
}

// ToTransactionResponse converts a domain Transaction entity to a
// TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID.String(),
		Date:        t.Date.Format("2006-01-02"),
		Description: t.Description,
		Amount:      t.Amount,
		Type:        string(t.Type),
		CategoryID:  t.CategoryID.String(),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToTransactionWithCategoryResponse converts a TransactionWithCategory to a
// TransactionResponse DTO with its category embedded.
func ToTransactionWithCategoryResponse(tc *entity.TransactionWithCategory) TransactionResponse {
	response := ToTransactionResponse(tc.Transaction)
	if tc.Category != nil {
		catResponse := ToCategoryResponse(tc.Category)
		response.Category = &catResponse
	}
	return response
}

// ToTransactionListResponse converts a TransactionListResult to a
// TransactionListResponse.
func ToTransactionListResponse(result *adapter.TransactionListResult) TransactionListResponse {
	transactions := make([]TransactionResponse, len(result.Transactions))
	for i, tc := range result.Transactions {
		transactions[i] = ToTransactionWithCategoryResponse(tc)
	}
	return TransactionListResponse{
		Transactions: transactions,
		Total:        result.Total,
		Page:         result.Page,
		Limit:        result.Limit,
		TotalPages:   result.TotalPages,
	}
}
