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

// EstimateHandler handles HTTP requests for estimate records, including the
// printable estimate documents.

type EstimateHandler struct {
	usecase  usecase.IEstimateUseCase
	renderer interfaces.IDocumentRenderer
}

func NewEstimateHandler(uc usecase.IEstimateUseCase, renderer interfaces.IDocumentRenderer) *EstimateHandler {
	return &EstimateHandler{usecase: uc, renderer: renderer}
}

func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	records, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRecords(records))
}

// SaveEstimate upserts by estimate number. A blank number is assigned the
// next free record number before totals are stamped.
func (h *EstimateHandler) SaveEstimate(c *gin.Context) {
	var payload request.RecordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return
	}

	record, err := h.usecase.Save(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromRecord(record))
}

func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteAt(c.Request.Context(), index); err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EstimateHandler) NextNumber(c *gin.Context) {
	number, err := h.usecase.NextNumber(c.Request.Context())
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NextNumberResponse{Number: number})
}

// PreviewTotals computes subtotal, tax and total for unsaved line items.
func (h *EstimateHandler) PreviewTotals(c *gin.Context) {
	var payload request.PreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return
	}

	rooms, extras := payload.ToEntities()
	totals, err := h.usecase.Preview(c.Request.Context(), rooms, extras)
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTotals(totals))
}

// EstimatePDF renders the estimate document. ?detailed=true switches to the
// per-line-item layout.
func (h *EstimateHandler) EstimatePDF(c *gin.Context) {
	record, err := h.usecase.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	render := h.renderer.EstimatePDF
	if c.Query("detailed") == "true" {
		render = h.renderer.DetailedEstimatePDF
	}
	data, filename, err := render(record)
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	servePDF(c, data, filename)
}

func mapRecordError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRecordNotFound):
		return pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "Record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIndexOutOfRange):
		return pkg.NewDomainErrorSimple("INDEX_OUT_OF_RANGE", "Index out of range", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
