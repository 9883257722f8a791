package interfaces

import (
	"context"

	"autoshop_billing/internal/domain/entities"
)

// ILoyaltyDiscountRepository abstracts DynamoDB persistence for
// LoyaltyDiscountRequest.
//
// FindApprovedUnapplied resolves the single request the payment pipeline may
// consume for a customer: status approved, not yet applied to a payment,
// earliest created when more than one matches. Zero-value entity when none.
//
// MarkApplied consumes a request; the conditional update matches only while
// applied_to_payment is false, so a request can back at most one payment.
type ILoyaltyDiscountRepository interface {
	Create(ctx context.Context, r entities.LoyaltyDiscountRequest) (entities.LoyaltyDiscountRequest, error)
	GetByID(ctx context.Context, id string) (entities.LoyaltyDiscountRequest, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.LoyaltyDiscountRequest, error)
	FindApprovedUnapplied(ctx context.Context, customerID string) (entities.LoyaltyDiscountRequest, error)
	UpdateReview(ctx context.Context, id string, status entities.LoyaltyDiscountStatus, reviewerID, notes string) (entities.LoyaltyDiscountRequest, error)
	MarkApplied(ctx context.Context, id, paymentID, serviceCostID string) (entities.LoyaltyDiscountRequest, error)
}
