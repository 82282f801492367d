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

func TestJobHandler_OpenJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		uc.EXPECT().OpenJob(gomock.Any(), "01").
			Return(entities.Record{EstimateNumber: "01"}, nil)

		r := gin.New()
		r.POST("/v1/estimates/:number/open", h.OpenJob)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/01/open", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("duplicate maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		uc.EXPECT().OpenJob(gomock.Any(), "01").
			Return(entities.Record{}, usecase.ErrJobAlreadyOpen)

		r := gin.New()
		r.POST("/v1/estimates/:number/open", h.OpenJob)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/01/open", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "JOB_ALREADY_OPEN") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown estimate maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		uc.EXPECT().OpenJob(gomock.Any(), "99").
			Return(entities.Record{}, usecase.ErrRecordNotFound)

		r := gin.New()
		r.POST("/v1/estimates/:number/open", h.OpenJob)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/99/open", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestJobHandler_CreateInvoiceFromJob(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIJobUseCase(ctrl)
	h := NewJobHandler(uc)

	uc.EXPECT().CreateInvoiceFromJob(gomock.Any(), "01").
		Return(entities.Record{}, usecase.ErrInvoiceAlreadyCreated)

	r := gin.New()
	r.POST("/v1/jobs/closed/:number/invoice", h.CreateInvoiceFromJob)

	req := httptest.NewRequest(http.MethodPost, "/v1/jobs/closed/01/invoice", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestJobHandler_ToggleRoomProgress(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown option maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		uc.EXPECT().ToggleRoomProgress(gomock.Any(), "01", 0, "nope").
			Return(entities.Record{}, usecase.ErrUnknownProgressOption)

		r := gin.New()
		r.PATCH("/v1/jobs/open/:number/rooms/:room/progress", h.ToggleRoomProgress)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/open/01/rooms/0/progress", bytes.NewBufferString(`{"option":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("toggled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		uc.EXPECT().ToggleRoomProgress(gomock.Any(), "01", 1, "1 coat cut in").
			Return(entities.Record{EstimateNumber: "01"}, nil)

		r := gin.New()
		r.PATCH("/v1/jobs/open/:number/rooms/:room/progress", h.ToggleRoomProgress)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/open/01/rooms/1/progress", bytes.NewBufferString(`{"option":"1 coat cut in"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("non-numeric room index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/open/:number/rooms/:room/progress", h.ToggleRoomProgress)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/open/01/rooms/x/progress", bytes.NewBufferString(`{"option":"1 coat cut in"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestJobHandler_SetRoomNote(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIJobUseCase(ctrl)
	h := NewJobHandler(uc)

	uc.EXPECT().SetRoomNote(gomock.Any(), "01", 0, "needs second coat").
		Return(entities.Record{EstimateNumber: "01"}, nil)

	r := gin.New()
	r.PATCH("/v1/jobs/open/:number/rooms/:room/note", h.SetRoomNote)

	req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/open/01/rooms/0/note", bytes.NewBufferString(`{"note":"needs second coat"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
