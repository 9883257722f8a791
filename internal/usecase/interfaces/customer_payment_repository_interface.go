package interfaces

import (
	"context"
	"time"

	"autoshop_billing/internal/domain/entities"
)

// CustomerPaymentFilter narrows List queries over the payment ledger.
// Page is 1-based; Limit <= 0 falls back to the repository default.
type CustomerPaymentFilter struct {
	Status     entities.CustomerPaymentStatus
	CustomerID string
	Page       int
	Limit      int
}

// ICustomerPaymentRepository abstracts DynamoDB persistence for the payment
// ledger. Create must reject duplicate ids; payments are never deleted.
type ICustomerPaymentRepository interface {
	Create(ctx context.Context, p entities.CustomerPayment) (entities.CustomerPayment, error)
	GetByID(ctx context.Context, id string) (entities.CustomerPayment, error)
	GetByServiceCostID(ctx context.Context, serviceCostID string) (entities.CustomerPayment, error)
	GetByReceiptNumber(ctx context.Context, receiptNumber string) (entities.CustomerPayment, error)
	List(ctx context.Context, filter CustomerPaymentFilter) ([]entities.CustomerPayment, error)
	ListCompletedBetween(ctx context.Context, start, end time.Time) ([]entities.CustomerPayment, error)
}
