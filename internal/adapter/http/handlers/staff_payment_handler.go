package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "primefinish/internal/adapter/http/dto/request"
	response "primefinish/internal/adapter/http/dto/response"
	"primefinish/internal/usecase"
	"primefinish/internal/usecase/interfaces"
	"primefinish/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPayoutPayload = pkg.NewDomainErrorSimple("INVALID_PAYOUT_INPUT", "Invalid payout payload", http.StatusBadRequest)

// StaffPaymentHandler handles staff payouts and the payout report document.

type StaffPaymentHandler struct {
	usecase  usecase.IStaffPaymentUseCase
	renderer interfaces.IDocumentRenderer
}

func NewStaffPaymentHandler(uc usecase.IStaffPaymentUseCase, renderer interfaces.IDocumentRenderer) *StaffPaymentHandler {
	return &StaffPaymentHandler{usecase: uc, renderer: renderer}
}

// ListPayouts returns the payouts, optionally narrowed by ?name= and ?year=.
func (h *StaffPaymentHandler) ListPayouts(c *gin.Context) {
	payments, err := h.usecase.List(c.Request.Context(), c.Query("name"), yearQuery(c))
	if err != nil {
		appErr := mapPayoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStaffPayments(payments))
}

func (h *StaffPaymentHandler) AddPayout(c *gin.Context) {
	var payload request.StaffPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayoutPayload.HTTPStatus, errInvalidPayoutPayload.ToHTTPError())
		return
	}

	payment, err := h.usecase.Add(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapPayoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromStaffPayment(payment))
}

func (h *StaffPaymentHandler) DeletePayout(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteAt(c.Request.Context(), index); err != nil {
		appErr := mapPayoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// PayoutReport renders the payout report for the current filters. The file
// name carries the name filter when one was applied.
func (h *StaffPaymentHandler) PayoutReport(c *gin.Context) {
	name := c.Query("name")
	payments, err := h.usecase.List(c.Request.Context(), name, yearQuery(c))
	if err != nil {
		appErr := mapPayoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	data, filename, err := h.renderer.PayoutReportPDF(payments, name)
	if err != nil {
		appErr := mapPayoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	servePDF(c, data, filename)
}

// yearQuery reads ?year=. Absent or unparseable means no year filter.
func yearQuery(c *gin.Context) int {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return 0
	}
	return year
}

func mapPayoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentIndexOutOfRange):
		return pkg.NewDomainErrorSimple("INDEX_OUT_OF_RANGE", "Index out of range", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
