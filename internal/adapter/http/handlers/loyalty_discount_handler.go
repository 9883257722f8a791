package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "autoshop_billing/internal/adapter/http/dto/request"
	response "autoshop_billing/internal/adapter/http/dto/response"
	"autoshop_billing/internal/adapter/http/middleware"
	"autoshop_billing/internal/usecase"
	"autoshop_billing/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLoyaltyPayload = pkg.NewDomainErrorSimple("INVALID_LOYALTY_INPUT", "Invalid loyalty discount payload", http.StatusBadRequest)

// LoyaltyDiscountHandler handles HTTP requests for loyalty discount claims.

type LoyaltyDiscountHandler struct {
	usecase usecase.ILoyaltyDiscountUseCase
}

func NewLoyaltyDiscountHandler(uc usecase.ILoyaltyDiscountUseCase) *LoyaltyDiscountHandler {
	return &LoyaltyDiscountHandler{usecase: uc}
}

// Create registers a customer's loyalty discount claim.
func (h *LoyaltyDiscountHandler) Create(c *gin.Context) {
	var payload request.CreateLoyaltyDiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoyaltyPayload.HTTPStatus, errInvalidLoyaltyPayload.ToHTTPError())
		return
	}

	log.Printf("[loyalty][handler] create start customer_id=%s", payload.CustomerID)

	created, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		log.Printf("[loyalty][handler] create failed customer_id=%s err=%v", payload.CustomerID, err)
		appErr := mapLoyaltyDiscountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLoyaltyDiscountRequest(created))
}

// Review approves or declines a pending claim.
func (h *LoyaltyDiscountHandler) Review(c *gin.Context) {
	id := c.Param("id")
	var payload request.ReviewLoyaltyDiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoyaltyPayload.HTTPStatus, errInvalidLoyaltyPayload.ToHTTPError())
		return
	}

	reviewerID := c.GetString(middleware.ContextUserID)

	switch payload.ResolveAction() {
	case request.LoyaltyReviewActionApprove:
		updated, err := h.usecase.Approve(c.Request.Context(), id, reviewerID, payload.Notes)
		if err != nil {
			log.Printf("[loyalty][handler] approve failed id=%s err=%v", id, err)
			appErr := mapLoyaltyDiscountError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromLoyaltyDiscountRequest(updated))
	case request.LoyaltyReviewActionDecline:
		updated, err := h.usecase.Decline(c.Request.Context(), id, reviewerID, payload.Notes)
		if err != nil {
			log.Printf("[loyalty][handler] decline failed id=%s err=%v", id, err)
			appErr := mapLoyaltyDiscountError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromLoyaltyDiscountRequest(updated))
	default:
		c.JSON(errInvalidLoyaltyPayload.HTTPStatus, errInvalidLoyaltyPayload.ToHTTPError())
	}
}

// GetByID returns one loyalty discount request.
func (h *LoyaltyDiscountHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	req, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapLoyaltyDiscountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLoyaltyDiscountRequest(req))
}

// ListByCustomer lists a customer's loyalty discount requests.
func (h *LoyaltyDiscountHandler) ListByCustomer(c *gin.Context) {
	customerID := strings.TrimSpace(c.Query("customer_id"))

	reqs, err := h.usecase.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		log.Printf("[loyalty][handler] list failed customer_id=%s err=%v", customerID, err)
		appErr := mapLoyaltyDiscountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLoyaltyDiscountRequests(reqs))
}

func mapLoyaltyDiscountError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLoyaltyRequestID), errors.Is(err, usecase.ErrInvalidLoyaltyInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLoyaltyRequestNotFound):
		return pkg.NewDomainErrorSimple("LOYALTY_REQUEST_NOT_FOUND", "Loyalty discount request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLoyaltyAlreadyReviewed):
		return pkg.NewDomainErrorSimple("LOYALTY_REQUEST_ALREADY_REVIEWED", "Loyalty discount request already reviewed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
