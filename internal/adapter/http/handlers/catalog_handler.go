package handlers

import (
	"errors"
	"net/http"

	request "primefinish/internal/adapter/http/dto/request"
	response "primefinish/internal/adapter/http/dto/response"
	"primefinish/internal/usecase"
	"primefinish/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)

// CatalogHandler handles the price catalogs. Reads always return the merged
// view: defaults overlaid with the stored overrides.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	options, err := h.usecase.Merged(c.Request.Context(), usecase.CatalogSide(c.Param("side")))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCostOptions(options))
}

// PutCatalog replaces the stored overrides and returns the resulting merged
// catalog.
func (h *CatalogHandler) PutCatalog(c *gin.Context) {
	var payload request.CatalogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	side := usecase.CatalogSide(c.Param("side"))
	if err := h.usecase.SavePrices(c.Request.Context(), side, payload.ToEntities()); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	options, err := h.usecase.Merged(c.Request.Context(), side)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCostOptions(options))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownCatalogSide):
		return pkg.NewDomainErrorSimple("UNKNOWN_CATALOG_SIDE", "Catalog side must be estimate or invoice", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
