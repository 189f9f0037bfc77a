// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finantrack/backend/internal/application/usecase/report"
	domainerror "github.com/finantrack/backend/internal/domain/error"
	"github.com/finantrack/backend/internal/integration/entrypoint/dto"
	"github.com/finantrack/backend/internal/integration/entrypoint/middleware"
)

// dateLayout is the date format accepted in report query parameters.
const dateLayout = "2006-01-02"

// ReportController handles financial report endpoints.
type ReportController struct {
	summaryUseCase         *report.GetSummaryUseCase
	monthlyReportUseCase   *report.GetMonthlyReportUseCase
	customReportUseCase    *report.GetCustomPeriodReportUseCase
	trendUseCase           *report.GetMonthlyTrendUseCase
	budgetStatusUseCase    *report.GetBudgetStatusUseCase
	unusualExpensesUseCase *report.GetUnusualExpensesUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	summaryUseCase *report.GetSummaryUseCase,
	monthlyReportUseCase *report.GetMonthlyReportUseCase,
	customReportUseCase *report.GetCustomPeriodReportUseCase,
	trendUseCase *report.GetMonthlyTrendUseCase,
	budgetStatusUseCase *report.GetBudgetStatusUseCase,
	unusualExpensesUseCase *report.GetUnusualExpensesUseCase,
) *ReportController {
	return &ReportController{
		summaryUseCase:         summaryUseCase,
		monthlyReportUseCase:   monthlyReportUseCase,
		customReportUseCase:    customReportUseCase,
		trendUseCase:           trendUseCase,
		budgetStatusUseCase:    budgetStatusUseCase,
		unusualExpensesUseCase: unusualExpensesUseCase,
	}
}

// Summary handles GET /reports/summary requests.
func (c *ReportController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), report.GetSummaryInput{
		UserID: userID,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// Monthly handles GET /reports/monthly requests.
func (c *ReportController) Monthly(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "month must be a number",
			Code:  string(domainerror.ErrCodeInvalidMonth),
		})
		return
	}
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "year must be a number",
			Code:  string(domainerror.ErrCodeInvalidYear),
		})
		return
	}

	output, err := c.monthlyReportUseCase.Execute(ctx.Request.Context(), report.GetMonthlyReportInput{
		UserID: userID,
		Month:  month,
		Year:   year,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyReportResponse(output))
}

// Custom handles GET /reports/custom requests.
func (c *ReportController) Custom(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	startDate, err := parseDateParam(ctx.Query("start_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "start_date must be in YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}
	endDate, err := parseDateParam(ctx.Query("end_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "end_date must be in YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	output, err := c.customReportUseCase.Execute(ctx.Request.Context(), report.GetCustomPeriodReportInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomPeriodReportResponse(output))
}

// Trend handles GET /reports/trend requests.
func (c *ReportController) Trend(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	months := report.DefaultTrendMonths
	if monthsParam := ctx.Query("months"); monthsParam != "" {
		parsed, err := strconv.Atoi(monthsParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "months must be a number",
				Code:  string(domainerror.ErrCodeInvalidTrendWindow),
			})
			return
		}
		months = parsed
	}

	output, err := c.trendUseCase.Execute(ctx.Request.Context(), report.GetMonthlyTrendInput{
		UserID: userID,
		Months: months,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TrendResponse{
		Months: output.Months,
		Trend:  output.Trend,
	})
}

// BudgetStatus handles GET /reports/budget-status requests. month and year
// default to the current month when omitted.
func (c *ReportController) BudgetStatus(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	now := time.Now().UTC()
	month := int(now.Month())
	year := now.Year()

	if monthParam := ctx.Query("month"); monthParam != "" {
		parsed, err := strconv.Atoi(monthParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "month must be a number",
				Code:  string(domainerror.ErrCodeInvalidMonth),
			})
			return
		}
		month = parsed
	}
	if yearParam := ctx.Query("year"); yearParam != "" {
		parsed, err := strconv.Atoi(yearParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "year must be a number",
				Code:  string(domainerror.ErrCodeInvalidYear),
			})
			return
		}
		year = parsed
	}

	status, err := c.budgetStatusUseCase.Execute(ctx.Request.Context(), report.GetBudgetStatusInput{
		UserID: userID,
		Month:  month,
		Year:   year,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, status)
}

// UnusualExpenses handles GET /reports/unusual-expenses requests.
func (c *ReportController) UnusualExpenses(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.unusualExpensesUseCase.Execute(ctx.Request.Context(), report.GetUnusualExpensesInput{
		UserID: userID,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUnusualExpensesResponse(output))
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// parseDateParam parses a YYYY-MM-DD query parameter.
func parseDateParam(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, value)
}

// respondUnauthenticated writes the standard missing-authentication response.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
