package entities

import "time"

// ServiceCostStatus represents the approval lifecycle of a service cost estimate.
//
// Domain notes:
//   - The advisor submits a raw estimate (pending_review).
//   - The finance manager reviews it (under_review -> approved/rejected).
//   - An invoice is generated for an approved estimate (invoiced).
//   - Only the payment processor moves it to paid; paid is terminal and the
//     record becomes immutable afterwards.

type ServiceCostStatus string

const (
	ServiceCostStatusPendingReview ServiceCostStatus = "pending_review"
	ServiceCostStatusUnderReview   ServiceCostStatus = "under_review"
	ServiceCostStatusApproved      ServiceCostStatus = "approved"
	ServiceCostStatusRejected      ServiceCostStatus = "rejected"
	ServiceCostStatusInvoiced      ServiceCostStatus = "invoiced"
	ServiceCostStatusPaid          ServiceCostStatus = "paid"
)

// AdvisorEstimate is the raw cost estimate submitted by the service advisor.
type AdvisorEstimate struct {
	LaborCost              float64 `json:"labor_cost"`
	PartsCost              float64 `json:"parts_cost"`
	AdditionalServicesCost float64 `json:"additional_services_cost"`
	Notes                  string  `json:"notes,omitempty"`
}

// ReviewAdjustment is a single line adjustment applied by the finance manager.
type ReviewAdjustment struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// FinanceReview captures the finance manager's decision on an estimate.
type FinanceReview struct {
	Approved    bool               `json:"approved"`
	ReviewerID  string             `json:"reviewer_id"`
	Adjustments []ReviewAdjustment `json:"adjustments,omitempty"`
	Notes       string             `json:"notes,omitempty"`
	ReviewedAt  time.Time          `json:"reviewed_at"`
}

// FinalCost is the computed cost of the job after review.
//
// Invariant: TotalAmount = Subtotal + TaxAmount - DiscountAmount, where
// Subtotal is labor + parts + additional services + review adjustments.
type FinalCost struct {
	Subtotal       float64 `json:"subtotal"`
	TaxAmount      float64 `json:"tax_amount"`
	DiscountAmount float64 `json:"discount_amount"`
	TotalAmount    float64 `json:"total_amount"`
}

// ServiceCost is one vehicle-service job's cost estimate and its approval
// lifecycle, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
type ServiceCost struct {
	ID            string            `json:"id"`
	BookingID     string            `json:"booking_id"`
	AdvisorID     string            `json:"advisor_id"`
	CustomerID    string            `json:"customer_id"`
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	VehiclePlate  string            `json:"vehicle_plate"`
	ServiceType   string            `json:"service_type"`
	Estimate      AdvisorEstimate   `json:"estimate"`
	Review        *FinanceReview    `json:"review,omitempty"`
	FinalCost     FinalCost         `json:"final_cost"`
	Status        ServiceCostStatus `json:"status"`

	PaymentReceived bool   `json:"payment_received"`
	PaymentID       string `json:"payment_id,omitempty"`
	InvoiceID       string `json:"invoice_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Payable reports whether a payment may be accepted for this service cost.
// Payment requires a reviewed estimate: approved or already invoiced.
func (s ServiceCost) Payable() bool {
	return s.Status == ServiceCostStatusApproved || s.Status == ServiceCostStatusInvoiced
}
