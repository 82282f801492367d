package handlers

import (
	"net/http"

	request "primefinish/internal/adapter/http/dto/request"
	response "primefinish/internal/adapter/http/dto/response"
	"primefinish/internal/usecase"
	"primefinish/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles HTTP requests for invoice records and the printable
// invoice documents. Invoices share the record shape with estimates but are
// priced against the invoice catalog.

type InvoiceHandler struct {
	usecase  usecase.IInvoiceUseCase
	renderer interfaces.IDocumentRenderer
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase, renderer interfaces.IDocumentRenderer) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc, renderer: renderer}
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	records, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRecords(records))
}

func (h *InvoiceHandler) SaveInvoice(c *gin.Context) {
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

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
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

func (h *InvoiceHandler) InvoicePDF(c *gin.Context) {
	record, err := h.usecase.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	render := h.renderer.InvoicePDF
	if c.Query("detailed") == "true" {
		render = h.renderer.DetailedInvoicePDF
	}
	data, filename, err := render(record)
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	servePDF(c, data, filename)
}
