package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "primefinish/internal/adapter/http/dto/request"
	response "primefinish/internal/adapter/http/dto/response"
	"primefinish/internal/usecase"
	"primefinish/pkg"

	"github.com/gin-gonic/gin"
)

// JobHandler handles the estimate lifecycle: opening jobs, tracking room
// progress, closing jobs and creating the invoice from a closed job.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

func (h *JobHandler) OpenJob(c *gin.Context) {
	record, err := h.usecase.OpenJob(c.Request.Context(), c.Param("number"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromRecord(record))
}

func (h *JobHandler) CloseJob(c *gin.Context) {
	record, err := h.usecase.CloseJob(c.Request.Context(), c.Param("number"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromRecord(record))
}

func (h *JobHandler) CreateInvoiceFromJob(c *gin.Context) {
	record, err := h.usecase.CreateInvoiceFromJob(c.Request.Context(), c.Param("number"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromRecord(record))
}

func (h *JobHandler) ListOpenJobs(c *gin.Context) {
	records, err := h.usecase.ListOpen(c.Request.Context())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRecords(records))
}

func (h *JobHandler) ListClosedJobs(c *gin.Context) {
	records, err := h.usecase.ListClosed(c.Request.Context())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRecords(records))
}

func (h *JobHandler) DeleteOpenJob(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteOpenAt(c.Request.Context(), index); err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *JobHandler) DeleteClosedJob(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	if err := h.usecase.DeleteClosedAt(c.Request.Context(), index); err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleRoomProgress flips one checklist option on a room of an open job.
func (h *JobHandler) ToggleRoomProgress(c *gin.Context) {
	roomIndex, ok := roomParam(c)
	if !ok {
		return
	}

	var payload request.ProgressToggleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return
	}

	record, err := h.usecase.ToggleRoomProgress(c.Request.Context(), c.Param("number"), roomIndex, payload.Option)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRecord(record))
}

func (h *JobHandler) SetRoomNote(c *gin.Context) {
	roomIndex, ok := roomParam(c)
	if !ok {
		return
	}

	var payload request.RoomNoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return
	}

	record, err := h.usecase.SetRoomNote(c.Request.Context(), c.Param("number"), roomIndex, payload.Note)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRecord(record))
}

func roomParam(c *gin.Context) (int, bool) {
	roomIndex, err := strconv.Atoi(c.Param("room"))
	if err != nil || roomIndex < 0 {
		c.JSON(errInvalidIndex.HTTPStatus, errInvalidIndex.ToHTTPError())
		return 0, false
	}
	return roomIndex, true
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateNumber):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRecordNotFound):
		return pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "Record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobAlreadyOpen):
		return pkg.NewDomainErrorSimple("JOB_ALREADY_OPEN", "Job already open for this estimate", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobAlreadyClosed):
		return pkg.NewDomainErrorSimple("JOB_ALREADY_CLOSED", "Job already closed for this estimate", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceAlreadyCreated):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_CREATED", "Invoice already created for this job", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnknownProgressOption):
		return pkg.NewDomainErrorSimple("UNKNOWN_PROGRESS_OPTION", "Unknown progress option", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRoomIndexOutOfRange):
		return pkg.NewDomainErrorSimple("ROOM_INDEX_OUT_OF_RANGE", "Room index out of range", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIndexOutOfRange):
		return pkg.NewDomainErrorSimple("INDEX_OUT_OF_RANGE", "Index out of range", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
