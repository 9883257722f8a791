package entities

import "time"

// LoyaltyDiscountStatus represents the review state of a loyalty claim.

type LoyaltyDiscountStatus string

const (
	LoyaltyDiscountStatusPending  LoyaltyDiscountStatus = "pending"
	LoyaltyDiscountStatusApproved LoyaltyDiscountStatus = "approved"
	LoyaltyDiscountStatusDeclined LoyaltyDiscountStatus = "declined"
)

// LoyaltyDiscountRequest is a customer's claim to a loyalty-tier discount.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// Invariant: an approved request is consumed (AppliedToPayment=true) by at
// most one payment; consumption is guarded by a conditional update on
// applied_to_payment=false.
type LoyaltyDiscountRequest struct {
	ID            string  `json:"id"`
	CustomerID    string  `json:"customer_id"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	TotalBookings int     `json:"total_bookings"`
	Eligible      bool    `json:"eligible"`
	DiscountPct   float64 `json:"discount_percent"`

	Status      LoyaltyDiscountStatus `json:"status"`
	ReviewerID  string                `json:"reviewer_id,omitempty"`
	ReviewNotes string                `json:"review_notes,omitempty"`

	AppliedToPayment bool   `json:"applied_to_payment"`
	PaymentID        string `json:"payment_id,omitempty"`
	ServiceCostID    string `json:"service_cost_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
