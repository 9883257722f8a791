package request

import (
	"strings"

	"autoshop_billing/internal/domain/entities"
	"autoshop_billing/internal/usecase"
)

// SubmitServiceCostRequest is the advisor's estimate submission payload.
type SubmitServiceCostRequest struct {
	BookingID              string  `json:"booking_id" binding:"required"`
	CustomerID             string  `json:"customer_id" binding:"required"`
	CustomerName           string  `json:"customer_name"`
	CustomerEmail          string  `json:"customer_email"`
	VehiclePlate           string  `json:"vehicle_plate" binding:"required"`
	ServiceType            string  `json:"service_type" binding:"required"`
	LaborCost              float64 `json:"labor_cost"`
	PartsCost              float64 `json:"parts_cost"`
	AdditionalServicesCost float64 `json:"additional_services_cost"`
	Notes                  string  `json:"notes"`
}

// ToCommand maps the payload onto the submit command, attributing the
// authenticated advisor.
func (r SubmitServiceCostRequest) ToCommand(advisorID string) usecase.SubmitServiceCostCommand {
	return usecase.SubmitServiceCostCommand{
		BookingID:     strings.TrimSpace(r.BookingID),
		AdvisorID:     advisorID,
		CustomerID:    strings.TrimSpace(r.CustomerID),
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		VehiclePlate:  r.VehiclePlate,
		ServiceType:   r.ServiceType,
		Estimate: entities.AdvisorEstimate{
			LaborCost:              r.LaborCost,
			PartsCost:              r.PartsCost,
			AdditionalServicesCost: r.AdditionalServicesCost,
			Notes:                  r.Notes,
		},
	}
}

// ReviewAdjustmentRequest is one finance-manager adjustment line.
type ReviewAdjustmentRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
}

// ReviewServiceCostRequest is the finance manager's decision payload.
// Approved is a pointer so an absent field binds as invalid, not as reject.
type ReviewServiceCostRequest struct {
	Approved       *bool                     `json:"approved" binding:"required"`
	Adjustments    []ReviewAdjustmentRequest `json:"adjustments"`
	DiscountAmount float64                   `json:"discount_amount"`
	Notes          string                    `json:"notes"`
}

func (r ReviewServiceCostRequest) ToCommand(serviceCostID, reviewerID string) usecase.ReviewServiceCostCommand {
	adjustments := make([]entities.ReviewAdjustment, 0, len(r.Adjustments))
	for _, a := range r.Adjustments {
		adjustments = append(adjustments, entities.ReviewAdjustment{Description: a.Description, Amount: a.Amount})
	}
	approved := false
	if r.Approved != nil {
		approved = *r.Approved
	}
	return usecase.ReviewServiceCostCommand{
		ServiceCostID:  serviceCostID,
		ReviewerID:     reviewerID,
		Approved:       approved,
		Adjustments:    adjustments,
		DiscountAmount: r.DiscountAmount,
		Notes:          r.Notes,
	}
}

// MarkInvoicedRequest links an approved estimate to its generated invoice.
type MarkInvoicedRequest struct {
	InvoiceID string `json:"invoice_id" binding:"required"`
}

// UpdateEstimateRequest replaces the advisor estimate on an unreviewed job.
type UpdateEstimateRequest struct {
	LaborCost              float64 `json:"labor_cost"`
	PartsCost              float64 `json:"parts_cost"`
	AdditionalServicesCost float64 `json:"additional_services_cost"`
	Notes                  string  `json:"notes"`
}

func (r UpdateEstimateRequest) ToEstimate() entities.AdvisorEstimate {
	return entities.AdvisorEstimate{
		LaborCost:              r.LaborCost,
		PartsCost:              r.PartsCost,
		AdditionalServicesCost: r.AdditionalServicesCost,
		Notes:                  r.Notes,
	}
}
