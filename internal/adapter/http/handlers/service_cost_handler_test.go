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

func TestServiceCostHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceCostUseCase(ctrl)
		h := NewServiceCostHandler(uc)

		r := gin.New()
		r.POST("/api/service-costs", h.Submit)

		req := httptest.NewRequest(http.MethodPost, "/api/service-costs", bytes.NewBufferString(`{"booking_id":"bk-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success attributes advisor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceCostUseCase(ctrl)
		h := NewServiceCostHandler(uc)

		r := gin.New()
		r.POST("/api/service-costs", func(c *gin.Context) {
			c.Set("user_id", "adv-1")
			h.Submit(c)
		})

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.SubmitServiceCostCommand) (entities.ServiceCost, error) {
				if cmd.AdvisorID != "adv-1" {
					t.Fatalf("expected advisor adv-1, got %q", cmd.AdvisorID)
				}
				return entities.ServiceCost{ID: "sc-1", BookingID: cmd.BookingID, Status: entities.ServiceCostStatusPendingReview}, nil
			})

		body := `{"booking_id":"bk-1","customer_id":"cust-1","vehicle_plate":"ABC-1234","service_type":"brake_service","labor_cost":500,"parts_cost":300}`
		req := httptest.NewRequest(http.MethodPost, "/api/service-costs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["status"] != "pending_review" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestServiceCostHandler_Review(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceCostUseCase(ctrl)
		h := NewServiceCostHandler(uc)

		r := gin.New()
		r.PATCH("/api/service-costs/:id/review", h.Review)

		req := httptest.NewRequest(http.MethodPatch, "/api/service-costs/sc-1/review", bytes.NewBufferString(`{"notes":"no decision"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already reviewed maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceCostUseCase(ctrl)
		h := NewServiceCostHandler(uc)

		r := gin.New()
		r.PATCH("/api/service-costs/:id/review", h.Review)

		uc.EXPECT().Review(gomock.Any(), gomock.Any()).Return(entities.ServiceCost{}, usecase.ErrInvalidStatusTransition)

		req := httptest.NewRequest(http.MethodPatch, "/api/service-costs/sc-1/review", bytes.NewBufferString(`{"approved":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceCostUseCase(ctrl)
		h := NewServiceCostHandler(uc)

		r := gin.New()
		r.PATCH("/api/service-costs/:id/review", func(c *gin.Context) {
			c.Set("user_id", "mgr-1")
			h.Review(c)
		})

		uc.EXPECT().Review(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.ReviewServiceCostCommand) (entities.ServiceCost, error) {
				if cmd.ServiceCostID != "sc-1" || cmd.ReviewerID != "mgr-1" || !cmd.Approved {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.ServiceCost{ID: "sc-1", Status: entities.ServiceCostStatusApproved}, nil
			})

		req := httptest.NewRequest(http.MethodPatch, "/api/service-costs/sc-1/review", bytes.NewBufferString(`{"approved":true,"discount_amount":50}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestServiceCostHandler_ImmutableAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("paid record rejects estimate update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceCostUseCase(ctrl)
		h := NewServiceCostHandler(uc)

		r := gin.New()
		r.PUT("/api/service-costs/:id/estimate", h.UpdateEstimate)

		uc.EXPECT().UpdateEstimate(gomock.Any(), "sc-1", gomock.Any()).Return(entities.ServiceCost{}, usecase.ErrServiceCostImmutable)

		req := httptest.NewRequest(http.MethodPut, "/api/service-costs/sc-1/estimate", bytes.NewBufferString(`{"labor_cost":700}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceCostUseCase(ctrl)
		h := NewServiceCostHandler(uc)

		r := gin.New()
		r.DELETE("/api/service-costs/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), "sc-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/service-costs/sc-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceCostUseCase(ctrl)
		h := NewServiceCostHandler(uc)

		r := gin.New()
		r.GET("/api/service-costs/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "sc-missing").Return(entities.ServiceCost{}, usecase.ErrServiceCostNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/service-costs/sc-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
