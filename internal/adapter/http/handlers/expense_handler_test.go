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
	mock_interfaces "primefinish/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestExpenseHandler_ListExpenses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIExpenseUseCase(ctrl)
	h := NewExpenseHandler(uc, nil)

	uc.EXPECT().List(gomock.Any(), "12").
		Return([]entities.Expense{{JobNumber: "12", Description: "Brushes"}}, nil)

	r := gin.New()
	r.GET("/v1/expenses", h.ListExpenses)

	req := httptest.NewRequest(http.MethodGet, "/v1/expenses?job=12", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Brushes") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestExpenseHandler_AddExpense(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing job number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExpenseUseCase(ctrl)
		h := NewExpenseHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/expenses", h.AddExpense)

		req := httptest.NewRequest(http.MethodPost, "/v1/expenses", bytes.NewBufferString(`{"description":"Paint"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExpenseUseCase(ctrl)
		h := NewExpenseHandler(uc, nil)

		expected := entities.Expense{JobNumber: "01", Description: "Paint", Amount: 89.99}
		uc.EXPECT().Add(gomock.Any(), expected).Return(expected, nil)

		r := gin.New()
		r.POST("/v1/expenses", h.AddExpense)

		body := `{"jobNumber":"01","description":"Paint","amount":"89.99"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/expenses", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestExpenseHandler_UpdateExpense(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIExpenseUseCase(ctrl)
	h := NewExpenseHandler(uc, nil)

	uc.EXPECT().UpdateAt(gomock.Any(), 4, gomock.Any()).
		Return(entities.Expense{}, usecase.ErrExpenseIndexOutOfRange)

	r := gin.New()
	r.PUT("/v1/expenses/:index", h.UpdateExpense)

	body := `{"jobNumber":"01","description":"Paint"}`
	req := httptest.NewRequest(http.MethodPut, "/v1/expenses/4", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestExpenseHandler_ExpenseReport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIExpenseUseCase(ctrl)
	renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
	h := NewExpenseHandler(uc, renderer)

	expenses := []entities.Expense{{JobNumber: "01", Description: "Paint", Amount: 50}}
	uc.EXPECT().List(gomock.Any(), "").Return(expenses, nil)
	renderer.EXPECT().ExpenseReportPDF(expenses).Return([]byte("%PDF-1.3"), "expenses_report.pdf", nil)

	r := gin.New()
	r.GET("/v1/expenses/report", h.ExpenseReport)

	req := httptest.NewRequest(http.MethodGet, "/v1/expenses/report", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "expenses_report.pdf") {
		t.Fatalf("unexpected disposition: %s", cd)
	}
}
