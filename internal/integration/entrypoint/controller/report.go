// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duitku/backend/internal/application/usecase/report"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
	"github.com/duitku/backend/internal/integration/entrypoint/dto"
	"github.com/duitku/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles reporting endpoints.
type ReportController struct {
	breakdownUseCase *report.GetCategoryBreakdownUseCase
	trendUseCase     *report.GetDailyTrendUseCase
	balanceUseCase   *report.GetBalanceOverviewUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	breakdownUseCase *report.GetCategoryBreakdownUseCase,
	trendUseCase *report.GetDailyTrendUseCase,
	balanceUseCase *report.GetBalanceOverviewUseCase,
) *ReportController {
	return &ReportController{
		breakdownUseCase: breakdownUseCase,
		trendUseCase:     trendUseCase,
		balanceUseCase:   balanceUseCase,
	}
}

// CategoryBreakdown handles GET /reports/category-breakdown requests. The
// type query parameter selects expense (default) or income.
func (c *ReportController) CategoryBreakdown(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	period, err := parsePeriodQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	transactionType := entity.TransactionTypeExpense
	if rawType := ctx.Query("type"); rawType != "" {
		transactionType = entity.TransactionType(rawType)
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), report.GetCategoryBreakdownInput{
		UserID:    userID,
		Type:      transactionType,
		Preset:    period.Preset,
		StartDate: period.StartDate,
		EndDate:   period.EndDate,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// DailyTrend handles GET /reports/daily-trend requests.
func (c *ReportController) DailyTrend(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	period, err := parsePeriodQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := c.trendUseCase.Execute(ctx.Request.Context(), report.GetDailyTrendInput{
		UserID:    userID,
		Preset:    period.Preset,
		StartDate: period.StartDate,
		EndDate:   period.EndDate,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// BalanceOverview handles GET /reports/balance requests.
func (c *ReportController) BalanceOverview(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	period, err := parsePeriodQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := c.balanceUseCase.Execute(ctx.Request.Context(), report.GetBalanceOverviewInput{
		UserID:    userID,
		Preset:    period.Preset,
		StartDate: period.StartDate,
		EndDate:   period.EndDate,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// handleReportError maps report errors to HTTP responses.
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
