package interfaces

import (
	"context"

	"autoshop_billing/internal/domain/entities"
)

// IServiceCostRepository abstracts DynamoDB persistence for ServiceCost.
//
// Repositories return a zero-value entity (ID == "") and a nil error when no
// document matches; callers translate that into their own not-found errors.
//
// MarkPaid is the idempotency guard for the payment pipeline: it must only
// match a document whose payment_received is still false, and report
// zero-match as a zero-value entity so two concurrent payment attempts can
// never both succeed.
type IServiceCostRepository interface {
	Create(ctx context.Context, sc entities.ServiceCost) (entities.ServiceCost, error)
	GetByID(ctx context.Context, id string) (entities.ServiceCost, error)
	ListByStatus(ctx context.Context, status entities.ServiceCostStatus) ([]entities.ServiceCost, error)
	Save(ctx context.Context, sc entities.ServiceCost) (entities.ServiceCost, error)
	MarkPaid(ctx context.Context, id, paymentID string) (entities.ServiceCost, error)
	Delete(ctx context.Context, id string) error
}
