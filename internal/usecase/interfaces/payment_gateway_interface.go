package interfaces

import (
	"context"
	"encoding/json"
)

// ChargeRequest is the provider-agnostic charge the payment pipeline sends to
// the external gateway. ExternalReference carries the service cost id so
// provider events can be reconciled back to the job.
type ChargeRequest struct {
	Amount            float64 `json:"transaction_amount"`
	Description       string  `json:"description"`
	ExternalReference string  `json:"external_reference"`
	PaymentMethodID   string  `json:"payment_method_id"`
	PayerEmail        string  `json:"payer_email"`
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The pipeline uses it to settle card/online charges before any document is
// written, and persists the provider response payload for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, req ChargeRequest) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
