// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/usecase/loan"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
	"github.com/duitku/backend/internal/integration/entrypoint/dto"
	"github.com/duitku/backend/internal/integration/entrypoint/middleware"
)

// LoanController handles loan tracking endpoints.
type LoanController struct {
	createUseCase    *loan.CreateLoanUseCase
	updateUseCase    *loan.UpdateLoanUseCase
	deleteUseCase    *loan.DeleteLoanUseCase
	listUseCase      *loan.ListLoansUseCase
	setStatusUseCase *loan.SetLoanStatusUseCase
}

// NewLoanController creates a new loan controller instance.
func NewLoanController(
	createUseCase *loan.CreateLoanUseCase,
	updateUseCase *loan.UpdateLoanUseCase,
	deleteUseCase *loan.DeleteLoanUseCase,
	listUseCase *loan.ListLoansUseCase,
	setStatusUseCase *loan.SetLoanStatusUseCase,
) *LoanController {
	return &LoanController{
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		listUseCase:      listUseCase,
		setStatusUseCase: setStatusUseCase,
	}
}

// List handles GET /loans requests. The status query parameter filters by
// unpaid or paid.
func (c *LoanController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	input := loan.ListLoansInput{UserID: userID}
	if rawStatus := ctx.Query("status"); rawStatus != "" {
		status := entity.LoanStatus(rawStatus)
		if status != entity.LoanStatusUnpaid && status != entity.LoanStatusPaid {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "status must be unpaid or paid",
				Code:  string(domainerror.ErrCodeInvalidLoanStatus),
			})
			return
		}
		input.Status = &status
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLoanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanListResponse(output.Loans, output.TotalOutstanding))
}

// Create handles POST /loans requests.
func (c *LoanController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateLoanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	loanDate, err := time.Parse("2006-01-02", req.LoanDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "loan_date must use format YYYY-MM-DD",
		})
		return
	}

	input := loan.CreateLoanInput{
		UserID:   userID,
		Name:     req.Name,
		Amount:   req.Amount,
		LoanDate: loanDate,
		Notes:    req.Notes,
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "due_date must use format YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDueDate),
			})
			return
		}
		input.DueDate = &dueDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLoanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLoanResponse(output.Loan))
}

// Update handles PATCH /loans/:id requests.
func (c *LoanController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	loanID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid loan ID",
		})
		return
	}

	var req dto.UpdateLoanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := loan.UpdateLoanInput{
		LoanID: loanID,
		UserID: userID,
		Name:   req.Name,
		Amount: req.Amount,
		Notes:  req.Notes,
	}
	if req.LoanDate != nil {
		loanDate, err := time.Parse("2006-01-02", *req.LoanDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "loan_date must use format YYYY-MM-DD",
			})
			return
		}
		input.LoanDate = &loanDate
	}
	if req.DueDate.Set {
		if !req.DueDate.Valid {
			input.ClearDueDate = true
		} else {
			dueDate, err := time.Parse("2006-01-02", req.DueDate.Value)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error: "due_date must use format YYYY-MM-DD",
					Code:  string(domainerror.ErrCodeInvalidDueDate),
				})
				return
			}
			input.DueDate = &dueDate
		}
	}
	if req.Status != nil {
		status := entity.LoanStatus(*req.Status)
		input.Status = &status
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLoanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanResponse(output.Loan))
}

// SetStatus handles PATCH /loans/:id/status requests.
func (c *LoanController) SetStatus(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	loanID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid loan ID",
		})
		return
	}

	var req dto.SetLoanStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.setStatusUseCase.Execute(ctx.Request.Context(), loan.SetLoanStatusInput{
		LoanID: loanID,
		UserID: userID,
		Status: entity.LoanStatus(req.Status),
	})
	if err != nil {
		c.handleLoanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanResponse(output.Loan))
}

// Delete handles DELETE /loans/:id requests.
func (c *LoanController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	loanID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid loan ID",
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), loan.DeleteLoanInput{
		LoanID: loanID,
		UserID: userID,
	}); err != nil {
		c.handleLoanError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleLoanError maps loan errors to HTTP responses.
func (c *LoanController) handleLoanError(ctx *gin.Context, err error) {
	var loanErr *domainerror.LoanError
	if errors.As(err, &loanErr) {
		ctx.JSON(statusCodeForLoanError(loanErr.Code), dto.ErrorResponse{
			Error: loanErr.Message,
			Code:  string(loanErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForLoanError maps loan error codes to HTTP status codes.
func statusCodeForLoanError(code domainerror.LoanErrorCode) int {
	switch code {
	case domainerror.ErrCodeLoanNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedLoan:
		return http.StatusForbidden
	case domainerror.ErrCodeLoanNameRequired,
		domainerror.ErrCodeInvalidLoanAmount,
		domainerror.ErrCodeInvalidLoanStatus,
		domainerror.ErrCodeInvalidDueDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
