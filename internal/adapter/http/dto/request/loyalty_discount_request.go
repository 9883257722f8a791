package request

import (
	"strings"

	"autoshop_billing/internal/usecase"
)

// CreateLoyaltyDiscountRequest is the customer's loyalty claim payload.
type CreateLoyaltyDiscountRequest struct {
	CustomerID      string  `json:"customer_id" binding:"required"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	TotalBookings   int     `json:"total_bookings"`
	DiscountPercent float64 `json:"discount_percent"`
}

func (r CreateLoyaltyDiscountRequest) ToCommand() usecase.CreateLoyaltyDiscountCommand {
	return usecase.CreateLoyaltyDiscountCommand{
		CustomerID:    strings.TrimSpace(r.CustomerID),
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		TotalBookings: r.TotalBookings,
		DiscountPct:   r.DiscountPercent,
	}
}

// ReviewLoyaltyDiscountRequest is the reviewer's approve/decline payload.
type ReviewLoyaltyDiscountRequest struct {
	Action string `json:"action" binding:"required"`
	Notes  string `json:"notes"`
}

const (
	LoyaltyReviewActionApprove = "approve"
	LoyaltyReviewActionDecline = "decline"
)

// ResolveAction normalizes the action verb; unknown verbs resolve to "".
func (r ReviewLoyaltyDiscountRequest) ResolveAction() string {
	switch strings.ToLower(strings.TrimSpace(r.Action)) {
	case LoyaltyReviewActionApprove:
		return LoyaltyReviewActionApprove
	case LoyaltyReviewActionDecline:
		return LoyaltyReviewActionDecline
	}
	return ""
}
