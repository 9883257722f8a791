package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autoshop_billing/internal/adapter/http/dto/response"
	"autoshop_billing/internal/adapter/http/handlers/mocks"
	"autoshop_billing/internal/domain/entities"
	"autoshop_billing/internal/domain/pricing"
	"autoshop_billing/internal/usecase"
	"autoshop_billing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCustomerPaymentHandler_Calculate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerPaymentUseCase(ctrl)
		h := NewCustomerPaymentHandler(uc)

		r := gin.New()
		r.POST("/api/finance/customer-payments/calculate", h.Calculate)

		req := httptest.NewRequest(http.MethodPost, "/api/finance/customer-payments/calculate", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("service cost not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerPaymentUseCase(ctrl)
		h := NewCustomerPaymentHandler(uc)

		r := gin.New()
		r.POST("/api/finance/customer-payments/calculate", h.Calculate)

		uc.EXPECT().Preview(gomock.Any(), "sc-missing").Return(usecase.PaymentPreview{}, usecase.ErrServiceCostNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/finance/customer-payments/calculate", bytes.NewBufferString(`{"service_cost_id":"sc-missing"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerPaymentUseCase(ctrl)
		h := NewCustomerPaymentHandler(uc)

		r := gin.New()
		r.POST("/api/finance/customer-payments/calculate", h.Calculate)

		uc.EXPECT().Preview(gomock.Any(), "sc-1").Return(usecase.PaymentPreview{
			ServiceCost: entities.ServiceCost{ID: "sc-1", Status: entities.ServiceCostStatusApproved},
			Breakdown:   pricing.Calculate(1000, 0),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/finance/customer-payments/calculate", bytes.NewBufferString(`{"service_cost_id":"sc-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		breakdown, _ := body["breakdown"].(map[string]any)
		if breakdown["final_customer_payment"] != 2195.20 {
			t.Fatalf("unexpected breakdown: %s", w.Body.String())
		}
	})
}

func TestCustomerPaymentHandler_Process(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.ICustomerPaymentUseCase) *gin.Engine {
		h := NewCustomerPaymentHandler(uc)
		r := gin.New()
		r.POST("/api/finance/customer-payments/process", func(c *gin.Context) {
			c.Set("user_id", "mgr-1")
			h.Process(c)
		})
		return r
	}

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerPaymentUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/finance/customer-payments/process", bytes.NewBufferString(`{"service_cost_id":"sc-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already paid maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerPaymentUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Process(gomock.Any(), gomock.Any()).Return(entities.CustomerPayment{}, usecase.ErrServiceCostAlreadyPaid)

		req := httptest.NewRequest(http.MethodPost, "/api/finance/customer-payments/process", bytes.NewBufferString(`{"service_cost_id":"sc-1","payment_method":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("not payable maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerPaymentUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Process(gomock.Any(), gomock.Any()).Return(entities.CustomerPayment{}, usecase.ErrServiceCostNotPayable)

		req := httptest.NewRequest(http.MethodPost, "/api/finance/customer-payments/process", bytes.NewBufferString(`{"service_cost_id":"sc-1","payment_method":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway rejection maps to bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerPaymentUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Process(gomock.Any(), gomock.Any()).Return(entities.CustomerPayment{}, usecase.ErrPaymentGatewayFailed)

		req := httptest.NewRequest(http.MethodPost, "/api/finance/customer-payments/process", bytes.NewBufferString(`{"service_cost_id":"sc-1","payment_method":"card"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success attributes processor identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerPaymentUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Process(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.ProcessPaymentCommand) (entities.CustomerPayment, error) {
				if cmd.ProcessedBy != "mgr-1" {
					t.Fatalf("expected processed_by mgr-1, got %q", cmd.ProcessedBy)
				}
				if cmd.Method != entities.PaymentMethodCash {
					t.Fatalf("expected cash, got %q", cmd.Method)
				}
				return entities.CustomerPayment{
					ID:            "pay-1",
					ServiceCostID: cmd.ServiceCostID,
					Status:        entities.CustomerPaymentStatusCompleted,
					ReceiptNumber: "RCP-20260901-ABCD1234",
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/finance/customer-payments/process", bytes.NewBufferString(`{"service_cost_id":"sc-1","payment_method":"Cash"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["receipt_number"] != "RCP-20260901-ABCD1234" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCustomerPaymentHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid date range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerPaymentUseCase(ctrl)
		h := NewCustomerPaymentHandler(uc)

		r := gin.New()
		r.GET("/api/finance/customer-payments/summary", h.Summary)

		req := httptest.NewRequest(http.MethodGet, "/api/finance/customer-payments/summary?start=not-a-date", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("explicit range forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerPaymentUseCase(ctrl)
		h := NewCustomerPaymentHandler(uc)

		r := gin.New()
		r.GET("/api/finance/customer-payments/summary", h.Summary)

		uc.EXPECT().Summary(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, start, end time.Time) (usecase.PaymentSummary, error) {
				if start.Format("2006-01-02") != "2026-08-01" {
					t.Fatalf("unexpected start: %v", start)
				}
				if end.Before(start) || end.Format("2006-01-02") != "2026-08-31" {
					t.Fatalf("unexpected end: %v", end)
				}
				return usecase.PaymentSummary{
					Start:        start,
					End:          end,
					PaymentCount: 2,
					GrossRevenue: 3382.40,
					NetRevenue:   3382.40,
					Pricing:      pricing.Summarize([]float64{1000, 500}),
				}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/api/finance/customer-payments/summary?start=2026-08-01&end=2026-08-31", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_count"] != float64(2) || body["gross_revenue"] != 3382.40 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("camel case range params accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerPaymentUseCase(ctrl)
		h := NewCustomerPaymentHandler(uc)

		r := gin.New()
		r.GET("/api/finance/customer-payments/summary", h.Summary)

		uc.EXPECT().Summary(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, start, end time.Time) (usecase.PaymentSummary, error) {
				if start.Format("2006-01-02") != "2026-07-01" || end.Format("2006-01-02") != "2026-07-31" {
					t.Fatalf("unexpected range: %v .. %v", start, end)
				}
				return usecase.PaymentSummary{Start: start, End: end}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/api/finance/customer-payments/summary?startDate=2026-07-01&endDate=2026-07-31", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestCustomerPaymentHandler_ListAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list payable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerPaymentUseCase(ctrl)
		h := NewCustomerPaymentHandler(uc)

		r := gin.New()
		r.GET("/api/finance/customer-payments/service-costs", h.ListPayableServiceCosts)

		uc.EXPECT().ListPayable(gomock.Any(), entities.ServiceCostStatusApproved).Return(usecase.PayableServiceCosts{
			Items: []usecase.PayableServiceCost{
				{ServiceCost: entities.ServiceCost{ID: "sc-1"}, Breakdown: pricing.Calculate(1000, 0)},
			},
			Summary: pricing.Summarize([]float64{1000}),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/finance/customer-payments/service-costs?status=approved", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerPaymentUseCase(ctrl)
		h := NewCustomerPaymentHandler(uc)

		r := gin.New()
		r.GET("/api/finance/customer-payments/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "pay-missing").Return(entities.CustomerPayment{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/finance/customer-payments/pay-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get by receipt number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerPaymentUseCase(ctrl)
		h := NewCustomerPaymentHandler(uc)

		r := gin.New()
		r.GET("/api/finance/customer-payments/receipts/:receipt", h.GetByReceiptNumber)

		uc.EXPECT().GetByReceiptNumber(gomock.Any(), "RCP-20260901-ABCD1234").Return(entities.CustomerPayment{
			ID:            "pay-1",
			ReceiptNumber: "RCP-20260901-ABCD1234",
			Status:        entities.CustomerPaymentStatusCompleted,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/finance/customer-payments/receipts/RCP-20260901-ABCD1234", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res response.CustomerPaymentResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if res.ReceiptNumber != "RCP-20260901-ABCD1234" {
			t.Fatalf("unexpected receipt number: %s", res.ReceiptNumber)
		}
	})

	t.Run("list forwards filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerPaymentUseCase(ctrl)
		h := NewCustomerPaymentHandler(uc)

		r := gin.New()
		r.GET("/api/finance/customer-payments", h.List)

		uc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, filter interfaces.CustomerPaymentFilter) ([]entities.CustomerPayment, error) {
				if filter.Status != entities.CustomerPaymentStatusCompleted || filter.CustomerID != "cust-1" {
					t.Fatalf("unexpected filter: %+v", filter)
				}
				if filter.Page != 2 || filter.Limit != 10 {
					t.Fatalf("unexpected paging: %+v", filter)
				}
				return []entities.CustomerPayment{{ID: "pay-1"}}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/api/finance/customer-payments?status=completed&customer_id=cust-1&page=2&limit=10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
