package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "autoshop_billing/internal/adapter/http/dto/request"
	response "autoshop_billing/internal/adapter/http/dto/response"
	"autoshop_billing/internal/adapter/http/middleware"
	"autoshop_billing/internal/domain/entities"
	"autoshop_billing/internal/usecase"
	"autoshop_billing/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidServiceCostPayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_COST_INPUT", "Invalid service cost payload", http.StatusBadRequest)

// ServiceCostHandler handles HTTP requests for advisor estimates and the
// finance review workflow.

type ServiceCostHandler struct {
	usecase usecase.IServiceCostUseCase
}

func NewServiceCostHandler(uc usecase.IServiceCostUseCase) *ServiceCostHandler {
	return &ServiceCostHandler{usecase: uc}
}

// Submit records a new advisor estimate as pending review.
func (h *ServiceCostHandler) Submit(c *gin.Context) {
	var payload request.SubmitServiceCostRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceCostPayload.HTTPStatus, errInvalidServiceCostPayload.ToHTTPError())
		return
	}

	advisorID := c.GetString(middleware.ContextUserID)
	log.Printf("[service-cost][handler] submit start booking_id=%s advisor_id=%s", payload.BookingID, advisorID)

	created, err := h.usecase.Submit(c.Request.Context(), payload.ToCommand(advisorID))
	if err != nil {
		log.Printf("[service-cost][handler] submit failed booking_id=%s err=%v", payload.BookingID, err)
		appErr := mapServiceCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceCost(created))
}

// StartReview moves a pending estimate into under_review.
func (h *ServiceCostHandler) StartReview(c *gin.Context) {
	id := c.Param("id")

	updated, err := h.usecase.StartReview(c.Request.Context(), id)
	if err != nil {
		log.Printf("[service-cost][handler] start-review failed id=%s err=%v", id, err)
		appErr := mapServiceCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceCost(updated))
}

// Review records the finance manager's decision and, on approval, the final
// reviewed cost.
func (h *ServiceCostHandler) Review(c *gin.Context) {
	id := c.Param("id")
	var payload request.ReviewServiceCostRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceCostPayload.HTTPStatus, errInvalidServiceCostPayload.ToHTTPError())
		return
	}

	reviewerID := c.GetString(middleware.ContextUserID)
	log.Printf("[service-cost][handler] review start id=%s reviewer_id=%s", id, reviewerID)

	updated, err := h.usecase.Review(c.Request.Context(), payload.ToCommand(id, reviewerID))
	if err != nil {
		log.Printf("[service-cost][handler] review failed id=%s err=%v", id, err)
		appErr := mapServiceCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceCost(updated))
}

// MarkInvoiced links an approved estimate to its generated invoice.
func (h *ServiceCostHandler) MarkInvoiced(c *gin.Context) {
	id := c.Param("id")
	var payload request.MarkInvoicedRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceCostPayload.HTTPStatus, errInvalidServiceCostPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.MarkInvoiced(c.Request.Context(), id, strings.TrimSpace(payload.InvoiceID))
	if err != nil {
		log.Printf("[service-cost][handler] mark-invoiced failed id=%s err=%v", id, err)
		appErr := mapServiceCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceCost(updated))
}

// UpdateEstimate replaces the advisor estimate on a not-yet-paid job.
func (h *ServiceCostHandler) UpdateEstimate(c *gin.Context) {
	id := c.Param("id")
	var payload request.UpdateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceCostPayload.HTTPStatus, errInvalidServiceCostPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateEstimate(c.Request.Context(), id, payload.ToEstimate())
	if err != nil {
		log.Printf("[service-cost][handler] update-estimate failed id=%s err=%v", id, err)
		appErr := mapServiceCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceCost(updated))
}

// Delete removes a not-yet-paid service cost record.
func (h *ServiceCostHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[service-cost][handler] delete failed id=%s err=%v", id, err)
		appErr := mapServiceCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// GetByID returns one service cost record.
func (h *ServiceCostHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	sc, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapServiceCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceCost(sc))
}

// ListByStatus lists service costs filtered by workflow status.
func (h *ServiceCostHandler) ListByStatus(c *gin.Context) {
	status := entities.ServiceCostStatus(strings.ToLower(strings.TrimSpace(c.Query("status"))))

	costs, err := h.usecase.ListByStatus(c.Request.Context(), status)
	if err != nil {
		log.Printf("[service-cost][handler] list failed status=%s err=%v", status, err)
		appErr := mapServiceCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceCosts(costs))
}

func mapServiceCostError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceCostID), errors.Is(err, usecase.ErrInvalidServiceCostInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceCostNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_COST_NOT_FOUND", "Service cost not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Service cost cannot change to the requested status", http.StatusConflict)
	case errors.Is(err, usecase.ErrServiceCostImmutable):
		return pkg.NewDomainErrorSimple("SERVICE_COST_IMMUTABLE", "Paid service costs are immutable", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
