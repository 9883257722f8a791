package entities

import (
	"time"

	"autoshop_billing/internal/domain/pricing"
)

// PaymentMethod enumerates the recognized ways a customer can settle a charge.

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodOnline       PaymentMethod = "online"
)

// ValidPaymentMethod reports whether m is a recognized enum value.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer, PaymentMethodOnline:
		return true
	}
	return false
}

// GatewayBacked reports whether the method is settled through the external
// payment provider rather than recorded manually.
func (m PaymentMethod) GatewayBacked() bool {
	return m == PaymentMethodCard || m == PaymentMethodOnline
}

type CustomerPaymentStatus string

const (
	CustomerPaymentStatusPending    CustomerPaymentStatus = "pending"
	CustomerPaymentStatusProcessing CustomerPaymentStatus = "processing"
	CustomerPaymentStatusCompleted  CustomerPaymentStatus = "completed"
	CustomerPaymentStatusFailed     CustomerPaymentStatus = "failed"
	CustomerPaymentStatusRefunded   CustomerPaymentStatus = "refunded"
	CustomerPaymentStatusCancelled  CustomerPaymentStatus = "cancelled"
)

// Deductions is the flat-amount deduction breakdown applied after the markup
// pipeline. Invariant: Total = EPF + ETF + Other.
type Deductions struct {
	EPF   float64 `json:"epf"`
	ETF   float64 `json:"etf"`
	Other float64 `json:"other"`
	Total float64 `json:"total"`
}

// Refund records a later reversal of a completed payment.
type Refund struct {
	Amount     float64   `json:"amount"`
	Reason     string    `json:"reason"`
	RefundedBy string    `json:"refunded_by"`
	RefundedAt time.Time `json:"refunded_at"`
}

// CustomerPayment is the append-mostly ledger record of a charge, persisted
// in DynamoDB. It references the service cost and loyalty discount by id and
// is never hard-deleted.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (service_cost_id-index): service_cost_id
//   - GSI2 (customer_id-index): customer_id
//
// Invariant: Deductions.Total = EPF + ETF + Other and
// NetAmount = GrossAmount - Deductions.Total. The receipt number exists only
// once Status is completed and is unique across all records.
type CustomerPayment struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	ServiceCostID string `json:"service_cost_id"`
	InvoiceID     string `json:"invoice_id,omitempty"`
	VehiclePlate  string `json:"vehicle_plate"`
	ServiceType   string `json:"service_type"`

	Breakdown   pricing.Breakdown `json:"breakdown"`
	GrossAmount float64           `json:"gross_amount"`
	Deductions  Deductions        `json:"deductions"`
	NetAmount   float64           `json:"net_amount"`

	Method        PaymentMethod         `json:"method"`
	Reference     string                `json:"reference,omitempty"`
	TransactionID string                `json:"transaction_id,omitempty"`
	Status        CustomerPaymentStatus `json:"status"`
	ReceiptNumber string                `json:"receipt_number,omitempty"`

	LoyaltyDiscountRequestID string `json:"loyalty_discount_request_id,omitempty"`

	ProcessedBy string    `json:"processed_by"`
	ProcessedAt time.Time `json:"processed_at"`
	Notes       string    `json:"notes,omitempty"`

	Refund *Refund `json:"refund,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
