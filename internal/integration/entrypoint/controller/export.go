// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/usecase/export"
	"github.com/duitku/backend/internal/application/usecase/transaction"
	domainerror "github.com/duitku/backend/internal/domain/error"
	"github.com/duitku/backend/internal/integration/entrypoint/dto"
	"github.com/duitku/backend/internal/integration/entrypoint/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportController handles spreadsheet export endpoints.
type ExportController struct {
	exportUseCase *export.ExportSpreadsheetUseCase
}

// NewExportController creates a new export controller instance.
func NewExportController(exportUseCase *export.ExportSpreadsheetUseCase) *ExportController {
	return &ExportController{
		exportUseCase: exportUseCase,
	}
}

// Spreadsheet handles GET /export/spreadsheet requests. It accepts the same
// filter query parameters as the transaction list and responds with an xlsx
// attachment.
func (c *ExportController) Spreadsheet(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	input := export.ExportSpreadsheetInput{
		UserID: userID,
		Search: ctx.Query("search"),
	}

	if rawType := ctx.Query("type"); rawType != "" {
		filter, err := transaction.ParseTypeFilter(rawType)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		input.Type = filter
	}

	if rawCategory := ctx.Query("category_id"); rawCategory != "" {
		categoryID, err := uuid.Parse(rawCategory)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid category_id"})
			return
		}
		input.CategoryID = &categoryID
	}

	period, err := parsePeriodQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	input.Preset = period.Preset
	input.StartDate = period.StartDate
	input.EndDate = period.EndDate

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExportError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	ctx.Data(http.StatusOK, xlsxContentType, output.Content)
}

// handleExportError maps export errors to HTTP responses.
func (c *ExportController) handleExportError(ctx *gin.Context, err error) {
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
