package handlers

import (
	"errors"
	"net/http"

	request "primefinish/internal/adapter/http/dto/request"
	response "primefinish/internal/adapter/http/dto/response"
	"primefinish/internal/usecase"
	"primefinish/internal/usecase/interfaces"
	"primefinish/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidExpensePayload = pkg.NewDomainErrorSimple("INVALID_EXPENSE_INPUT", "Invalid expense payload", http.StatusBadRequest)

// ExpenseHandler handles direct job expenses and the expense report document.

type ExpenseHandler struct {
	usecase  usecase.IExpenseUseCase
	renderer interfaces.IDocumentRenderer
}

func NewExpenseHandler(uc usecase.IExpenseUseCase, renderer interfaces.IDocumentRenderer) *ExpenseHandler {
	return &ExpenseHandler{usecase: uc, renderer: renderer}
}

// ListExpenses returns the expenses, optionally narrowed by ?job= substring
// match on the job number.
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.usecase.List(c.Request.Context(), c.Query("job"))
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromExpenses(expenses))
}

func (h *ExpenseHandler) AddExpense(c *gin.Context) {
	var payload request.ExpenseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
		return
	}

	expense, err := h.usecase.Add(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromExpense(expense))
}

func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}

	var payload request.ExpenseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
		return
	}

	expense, err := h.usecase.UpdateAt(c.Request.Context(), index, payload.ToEntity())
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromExpense(expense))
}

func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteAt(c.Request.Context(), index); err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ExpenseReport renders the expense report for the current ?job= filter.
func (h *ExpenseHandler) ExpenseReport(c *gin.Context) {
	expenses, err := h.usecase.List(c.Request.Context(), c.Query("job"))
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	data, filename, err := h.renderer.ExpenseReportPDF(expenses)
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	servePDF(c, data, filename)
}

func mapExpenseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrExpenseIndexOutOfRange):
		return pkg.NewDomainErrorSimple("INDEX_OUT_OF_RANGE", "Index out of range", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
