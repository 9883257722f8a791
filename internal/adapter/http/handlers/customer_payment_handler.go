package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	request "autoshop_billing/internal/adapter/http/dto/request"
	response "autoshop_billing/internal/adapter/http/dto/response"
	"autoshop_billing/internal/adapter/http/middleware"
	"autoshop_billing/internal/domain/entities"
	"autoshop_billing/internal/usecase"
	"autoshop_billing/internal/usecase/interfaces"
	"autoshop_billing/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// summaryDateLayout is the wire format for the summary range query params.
const summaryDateLayout = "2006-01-02"

// CustomerPaymentHandler handles HTTP requests for the customer payment
// pipeline: price preview, payable listing, processing and ledger reads.

type CustomerPaymentHandler struct {
	usecase usecase.ICustomerPaymentUseCase
}

func NewCustomerPaymentHandler(uc usecase.ICustomerPaymentUseCase) *CustomerPaymentHandler {
	return &CustomerPaymentHandler{usecase: uc}
}

// Calculate returns the read-only price preview for one service cost.
func (h *CustomerPaymentHandler) Calculate(c *gin.Context) {
	var payload request.CalculatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	serviceCostID := payload.ResolveServiceCostID()
	log.Printf("[payment][handler] calculate start service_cost_id=%s", serviceCostID)

	preview, err := h.usecase.Preview(c.Request.Context(), serviceCostID)
	if err != nil {
		log.Printf("[payment][handler] calculate failed service_cost_id=%s err=%v", serviceCostID, err)
		appErr := mapCustomerPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentPreview(preview))
}

// ListPayableServiceCosts lists approved or invoiced service costs awaiting
// payment, with per-item breakdowns and an aggregate summary.
func (h *CustomerPaymentHandler) ListPayableServiceCosts(c *gin.Context) {
	status := entities.ServiceCostStatus(strings.ToLower(strings.TrimSpace(c.Query("status"))))

	payable, err := h.usecase.ListPayable(c.Request.Context(), status)
	if err != nil {
		log.Printf("[payment][handler] list-payable failed status=%s err=%v", status, err)
		appErr := mapCustomerPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayableServiceCosts(payable))
}

// Process runs the payment pipeline for one service cost and returns the
// recorded ledger entry.
func (h *CustomerPaymentHandler) Process(c *gin.Context) {
	var payload request.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	processedBy := c.GetString(middleware.ContextUserID)
	cmd := payload.ToCommand(processedBy)
	log.Printf("[payment][handler] process start service_cost_id=%s method=%s processed_by=%s", cmd.ServiceCostID, cmd.Method, processedBy)

	payment, err := h.usecase.Process(c.Request.Context(), cmd)
	if err != nil {
		log.Printf("[payment][handler] process failed service_cost_id=%s err=%v", cmd.ServiceCostID, err)
		appErr := mapCustomerPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] process success service_cost_id=%s payment_id=%s receipt=%s", cmd.ServiceCostID, payment.ID, payment.ReceiptNumber)

	c.JSON(http.StatusCreated, response.FromCustomerPayment(payment))
}

// Summary aggregates completed payments inside a date range. Both bounds
// default to the trailing 30 days when absent; end is inclusive of its day.
func (h *CustomerPaymentHandler) Summary(c *gin.Context) {
	start, end, err := resolveSummaryRange(queryAlias(c, "startDate", "start"), queryAlias(c, "endDate", "end"))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "Invalid summary date range", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	summary, err := h.usecase.Summary(c.Request.Context(), start, end)
	if err != nil {
		log.Printf("[payment][handler] summary failed start=%s end=%s err=%v", start.Format(summaryDateLayout), end.Format(summaryDateLayout), err)
		appErr := mapCustomerPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentSummary(summary))
}

// List returns ledger records, optionally filtered by status and customer.
func (h *CustomerPaymentHandler) List(c *gin.Context) {
	filter := interfaces.CustomerPaymentFilter{
		Status:     entities.CustomerPaymentStatus(strings.ToLower(strings.TrimSpace(c.Query("status")))),
		CustomerID: strings.TrimSpace(c.Query("customer_id")),
		Page:       queryInt(c, "page", 1),
		Limit:      queryInt(c, "limit", 50),
	}

	payments, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[payment][handler] list failed err=%v", err)
		appErr := mapCustomerPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomerPayments(payments))
}

// GetByID returns one ledger record.
func (h *CustomerPaymentHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	payment, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] get failed id=%s err=%v", id, err)
		appErr := mapCustomerPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomerPayment(payment))
}

// GetByReceiptNumber looks a payment up by the receipt handed to the customer.
func (h *CustomerPaymentHandler) GetByReceiptNumber(c *gin.Context) {
	receipt := c.Param("receipt")

	payment, err := h.usecase.GetByReceiptNumber(c.Request.Context(), receipt)
	if err != nil {
		log.Printf("[payment][handler] get by receipt failed receipt=%s err=%v", receipt, err)
		appErr := mapCustomerPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomerPayment(payment))
}

func resolveSummaryRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -30)
	end := now

	if s := strings.TrimSpace(startRaw); s != "" {
		parsed, err := time.Parse(summaryDateLayout, s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = parsed
	}
	if e := strings.TrimSpace(endRaw); e != "" {
		parsed, err := time.Parse(summaryDateLayout, e)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end before start")
	}
	return start, end, nil
}

// queryAlias returns the first non-empty query value among the given keys.
func queryAlias(c *gin.Context, keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(c.Query(key)); v != "" {
			return v
		}
	}
	return ""
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

func mapCustomerPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceCostID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidPaymentMethod), errors.Is(err, usecase.ErrInvalidPaymentInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceCostNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_COST_NOT_FOUND", "Service cost not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceCostAlreadyPaid):
		return pkg.NewDomainErrorSimple("SERVICE_COST_ALREADY_PAID", "Service cost already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrServiceCostNotPayable):
		return pkg.NewDomainErrorSimple("SERVICE_COST_NOT_PAYABLE", "Service cost is not approved or invoiced", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayNotSetUp):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayFailed):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_REJECTED", "Payment provider rejected the charge", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentCommitIncomplete):
		return pkg.NewDomainError("PAYMENT_COMMIT_INCOMPLETE", "Payment recorded partially; reconciliation required", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
