package response

import (
	"time"

	"autoshop_billing/internal/domain/entities"
)

type LoyaltyDiscountResponse struct {
	ID            string  `json:"id"`
	CustomerID    string  `json:"customer_id"`
	CustomerName  string  `json:"customer_name,omitempty"`
	CustomerEmail string  `json:"customer_email,omitempty"`
	TotalBookings int     `json:"total_bookings"`
	Eligible      bool    `json:"eligible"`
	DiscountPct   float64 `json:"discount_percent"`

	Status      string `json:"status"`
	ReviewerID  string `json:"reviewer_id,omitempty"`
	ReviewNotes string `json:"review_notes,omitempty"`

	AppliedToPayment bool   `json:"applied_to_payment"`
	PaymentID        string `json:"payment_id,omitempty"`
	ServiceCostID    string `json:"service_cost_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromLoyaltyDiscountRequest(r entities.LoyaltyDiscountRequest) LoyaltyDiscountResponse {
	return LoyaltyDiscountResponse{
		ID:               r.ID,
		CustomerID:       r.CustomerID,
		CustomerName:     r.CustomerName,
		CustomerEmail:    r.CustomerEmail,
		TotalBookings:    r.TotalBookings,
		Eligible:         r.Eligible,
		DiscountPct:      r.DiscountPct,
		Status:           string(r.Status),
		ReviewerID:       r.ReviewerID,
		ReviewNotes:      r.ReviewNotes,
		AppliedToPayment: r.AppliedToPayment,
		PaymentID:        r.PaymentID,
		ServiceCostID:    r.ServiceCostID,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func FromLoyaltyDiscountRequests(reqs []entities.LoyaltyDiscountRequest) []LoyaltyDiscountResponse {
	out := make([]LoyaltyDiscountResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, FromLoyaltyDiscountRequest(r))
	}
	return out
}
