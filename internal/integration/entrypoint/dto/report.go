// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finantrack/backend/internal/application/usecase/report"
)

// SummaryResponse represents the dashboard summary response.
type SummaryResponse struct {
	Month              int                   `json:"month"`
	Year               int                   `json:"year"`
	MonthSummary       report.Summary        `json:"month_summary"`
	LifetimeSummary    report.Summary        `json:"lifetime_summary"`
	Goal               *GoalResponse         `json:"goal,omitempty"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
}

// MonthlyReportResponse represents the monthly report response.
type MonthlyReportResponse struct {
	Month        int                      `json:"month"`
	Year         int                      `json:"year"`
	Summary      report.Summary           `json:"summary"`
	Categories   []report.CategorySummary `json:"categories"`
	Goal         *GoalResponse            `json:"goal,omitempty"`
	Transactions []TransactionResponse    `json:"transactions"`
}

// CustomPeriodReportResponse represents the custom period report response.
type CustomPeriodReportResponse struct {
	StartDate    string                   `json:"start_date"`
	EndDate      string                   `json:"end_date"`
	Summary      report.Summary           `json:"summary"`
	Categories   []report.CategorySummary `json:"categories"`
	Transactions []TransactionResponse    `json:"transactions"`
}

// TrendResponse represents the monthly trend response.
type TrendResponse struct {
	Months int                        `json:"months"`
	Trend  []report.MonthlyTrendPoint `json:"trend"`
}

// UnusualExpensesResponse represents the unusual expenses response.
type UnusualExpensesResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToSummaryResponse converts a GetSummaryOutput to a SummaryResponse DTO.
func ToSummaryResponse(output *report.GetSummaryOutput) SummaryResponse {
	response := SummaryResponse{
		Month:              output.Month,
		Year:               output.Year,
		MonthSummary:       output.MonthSummary,
		LifetimeSummary:    output.LifetimeSummary,
		RecentTransactions: make([]TransactionResponse, len(output.RecentTransactions)),
	}

	if output.Goal != nil {
		goalResponse := ToGoalResponse(output.Goal)
		response.Goal = &goalResponse
	}
	for i, tc := range output.RecentTransactions {
		response.RecentTransactions[i] = ToTransactionWithCategoryResponse(tc)
	}

	return response
}

// ToMonthlyReportResponse converts a GetMonthlyReportOutput to a
// MonthlyReportResponse DTO.
func ToMonthlyReportResponse(output *report.GetMonthlyReportOutput) MonthlyReportResponse {
	response := MonthlyReportResponse{
		Month:        output.Month,
		Year:         output.Year,
		Summary:      output.Summary,
		Categories:   output.Categories,
		Transactions: make([]TransactionResponse, len(output.Transactions)),
	}

	if output.Goal != nil {
		goalResponse := ToGoalResponse(output.Goal)
		response.Goal = &goalResponse
	}
	for i, tc := range output.Transactions {
		response.Transactions[i] = ToTransactionWithCategoryResponse(tc)
	}

	return response
}

// ToCustomPeriodReportResponse converts a GetCustomPeriodReportOutput to a
// CustomPeriodReportResponse DTO.
func ToCustomPeriodReportResponse(output *report.GetCustomPeriodReportOutput) CustomPeriodReportResponse {
	response := CustomPeriodReportResponse{
		StartDate:    output.StartDate.Format("2006-01-02"),
		EndDate:      output.EndDate.Format("2006-01-02"),
		Summary:      output.Summary,
		Categories:   output.Categories,
		Transactions: make([]TransactionResponse, len(output.Transactions)),
	}

	for i, tc := range output.Transactions {
		response.Transactions[i] = ToTransactionWithCategoryResponse(tc)
	}

	return response
}

// ToUnusualExpensesResponse converts a GetUnusualExpensesOutput to an
// UnusualExpensesResponse DTO.
func ToUnusualExpensesResponse(output *report.GetUnusualExpensesOutput) UnusualExpensesResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, t := range output.Transactions {
		transactions[i] = ToTransactionResponse(t)
	}
	return UnusualExpensesResponse{
		Transactions: transactions,
	}
}
