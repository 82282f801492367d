package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"primefinish/internal/adapter/http/handlers/mocks"
	"primefinish/internal/domain/entities"
	"primefinish/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_GetCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("merged catalog returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().Merged(gomock.Any(), usecase.CatalogSideEstimate).
			Return([]entities.CostOption{{Label: "Just ceiling", Value: 150}}, nil)

		r := gin.New()
		r.GET("/v1/catalogs/:side", h.GetCatalog)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalogs/estimate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Just ceiling") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown side maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().Merged(gomock.Any(), usecase.CatalogSide("payroll")).
			Return(nil, usecase.ErrUnknownCatalogSide)

		r := gin.New()
		r.GET("/v1/catalogs/:side", h.GetCatalog)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalogs/payroll", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_PutCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/catalogs/:side", h.PutCatalog)

		req := httptest.NewRequest(http.MethodPut, "/v1/catalogs/estimate", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("saves then returns merged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().SavePrices(gomock.Any(), usecase.CatalogSideInvoice,
			[]entities.CostOption{{Label: "Just ceiling", Value: 175}}).Return(nil)
		uc.EXPECT().Merged(gomock.Any(), usecase.CatalogSideInvoice).
			Return([]entities.CostOption{{Label: "Just ceiling", Value: 175}}, nil)

		r := gin.New()
		r.PUT("/v1/catalogs/:side", h.PutCatalog)

		body := `{"options":[{"label":"Just ceiling","value":175}]}`
		req := httptest.NewRequest(http.MethodPut, "/v1/catalogs/invoice", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}
