package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"autoshop_billing/internal/adapter/http/handlers/mocks"
	"autoshop_billing/internal/domain/entities"
	"autoshop_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestLoyaltyDiscountHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILoyaltyDiscountUseCase(ctrl)
		h := NewLoyaltyDiscountHandler(uc)

		r := gin.New()
		r.POST("/api/loyalty-discounts", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/api/loyalty-discounts", bytes.NewBufferString(`{"total_bookings":7}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILoyaltyDiscountUseCase(ctrl)
		h := NewLoyaltyDiscountHandler(uc)

		r := gin.New()
		r.POST("/api/loyalty-discounts", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.LoyaltyDiscountRequest{
			ID:         "loy-1",
			CustomerID: "cust-1",
			Eligible:   true,
			Status:     entities.LoyaltyDiscountStatusPending,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/loyalty-discounts", bytes.NewBufferString(`{"customer_id":"cust-1","total_bookings":7,"discount_percent":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["eligible"] != true || body["status"] != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestLoyaltyDiscountHandler_Review(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.ILoyaltyDiscountUseCase) *gin.Engine {
		h := NewLoyaltyDiscountHandler(uc)
		r := gin.New()
		r.PATCH("/api/loyalty-discounts/:id/review", func(c *gin.Context) {
			c.Set("user_id", "mgr-1")
			h.Review(c)
		})
		return r
	}

	t.Run("unknown action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILoyaltyDiscountUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPatch, "/api/loyalty-discounts/loy-1/review", bytes.NewBufferString(`{"action":"maybe"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("approve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILoyaltyDiscountUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Approve(gomock.Any(), "loy-1", "mgr-1", "ok").Return(entities.LoyaltyDiscountRequest{
			ID: "loy-1", Status: entities.LoyaltyDiscountStatusApproved, ReviewerID: "mgr-1",
		}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/api/loyalty-discounts/loy-1/review", bytes.NewBufferString(`{"action":"APPROVE","notes":"ok"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("decline already reviewed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILoyaltyDiscountUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Decline(gomock.Any(), "loy-1", "mgr-1", "").Return(entities.LoyaltyDiscountRequest{}, usecase.ErrLoyaltyAlreadyReviewed)

		req := httptest.NewRequest(http.MethodPatch, "/api/loyalty-discounts/loy-1/review", bytes.NewBufferString(`{"action":"decline"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestLoyaltyDiscountHandler_Reads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILoyaltyDiscountUseCase(ctrl)
		h := NewLoyaltyDiscountHandler(uc)

		r := gin.New()
		r.GET("/api/loyalty-discounts/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "loy-missing").Return(entities.LoyaltyDiscountRequest{}, usecase.ErrLoyaltyRequestNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/loyalty-discounts/loy-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list by customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILoyaltyDiscountUseCase(ctrl)
		h := NewLoyaltyDiscountHandler(uc)

		r := gin.New()
		r.GET("/api/loyalty-discounts", h.ListByCustomer)

		uc.EXPECT().ListByCustomer(gomock.Any(), "cust-1").Return([]entities.LoyaltyDiscountRequest{{ID: "loy-1"}, {ID: "loy-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/loyalty-discounts?customer_id=cust-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("expected 2 items, got %s", w.Body.String())
		}
	})
}
