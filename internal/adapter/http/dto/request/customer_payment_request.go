package request

import (
	"strings"

	"autoshop_billing/internal/domain/entities"
	"autoshop_billing/internal/usecase"
)

// CalculatePaymentRequest asks for a read-only price preview.
type CalculatePaymentRequest struct {
	ServiceCostID string `json:"service_cost_id" binding:"required"`
}

func (r CalculatePaymentRequest) ResolveServiceCostID() string {
	return strings.TrimSpace(r.ServiceCostID)
}

// ProcessPaymentRequest is the charge payload for the payment pipeline.
type ProcessPaymentRequest struct {
	ServiceCostID    string  `json:"service_cost_id" binding:"required"`
	PaymentMethod    string  `json:"payment_method" binding:"required"`
	PaymentReference string  `json:"payment_reference"`
	TransactionID    string  `json:"transaction_id"`
	OtherDiscount    float64 `json:"other_discount"`
	Notes            string  `json:"notes"`
}

// ResolveMethod normalizes the wire value into the method enum; validity is
// checked by the use case.
func (r ProcessPaymentRequest) ResolveMethod() entities.PaymentMethod {
	return entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.PaymentMethod)))
}

func (r ProcessPaymentRequest) ToCommand(processedBy string) usecase.ProcessPaymentCommand {
	return usecase.ProcessPaymentCommand{
		ServiceCostID: strings.TrimSpace(r.ServiceCostID),
		Method:        r.ResolveMethod(),
		Reference:     r.PaymentReference,
		TransactionID: r.TransactionID,
		OtherDiscount: r.OtherDiscount,
		Notes:         r.Notes,
		ProcessedBy:   processedBy,
	}
}
