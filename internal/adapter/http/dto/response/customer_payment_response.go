package response

import (
	"time"

	"autoshop_billing/internal/domain/entities"
	"autoshop_billing/internal/domain/pricing"
	"autoshop_billing/internal/usecase"
)

type CustomerPaymentResponse struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	ServiceCostID string `json:"service_cost_id"`
	InvoiceID     string `json:"invoice_id,omitempty"`
	VehiclePlate  string `json:"vehicle_plate,omitempty"`
	ServiceType   string `json:"service_type,omitempty"`

	Breakdown   pricing.Breakdown   `json:"breakdown"`
	GrossAmount float64             `json:"gross_amount"`
	Deductions  entities.Deductions `json:"deductions"`
	NetAmount   float64             `json:"net_amount"`

	Method        string `json:"method"`
	Reference     string `json:"reference,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
	Status        string `json:"status"`
	ReceiptNumber string `json:"receipt_number,omitempty"`

	LoyaltyDiscountRequestID string `json:"loyalty_discount_request_id,omitempty"`

	ProcessedBy string    `json:"processed_by"`
	ProcessedAt time.Time `json:"processed_at"`
	Notes       string    `json:"notes,omitempty"`

	Refund *entities.Refund `json:"refund,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func FromCustomerPayment(p entities.CustomerPayment) CustomerPaymentResponse {
	return CustomerPaymentResponse{
		ID:                       p.ID,
		CustomerID:               p.CustomerID,
		CustomerName:             p.CustomerName,
		CustomerEmail:            p.CustomerEmail,
		ServiceCostID:            p.ServiceCostID,
		InvoiceID:                p.InvoiceID,
		VehiclePlate:             p.VehiclePlate,
		ServiceType:              p.ServiceType,
		Breakdown:                p.Breakdown,
		GrossAmount:              p.GrossAmount,
		Deductions:               p.Deductions,
		NetAmount:                p.NetAmount,
		Method:                   string(p.Method),
		Reference:                p.Reference,
		TransactionID:            p.TransactionID,
		Status:                   string(p.Status),
		ReceiptNumber:            p.ReceiptNumber,
		LoyaltyDiscountRequestID: p.LoyaltyDiscountRequestID,
		ProcessedBy:              p.ProcessedBy,
		ProcessedAt:              p.ProcessedAt,
		Notes:                    p.Notes,
		Refund:                   p.Refund,
		CreatedAt:                p.CreatedAt,
	}
}

func FromCustomerPayments(payments []entities.CustomerPayment) []CustomerPaymentResponse {
	out := make([]CustomerPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromCustomerPayment(p))
	}
	return out
}

type PaymentPreviewResponse struct {
	ServiceCost     ServiceCostResponse      `json:"service_cost"`
	LoyaltyDiscount *LoyaltyDiscountResponse `json:"loyalty_discount,omitempty"`
	Breakdown       pricing.Breakdown        `json:"breakdown"`
}

func FromPaymentPreview(p usecase.PaymentPreview) PaymentPreviewResponse {
	resp := PaymentPreviewResponse{
		ServiceCost: FromServiceCost(p.ServiceCost),
		Breakdown:   p.Breakdown,
	}
	if p.LoyaltyDiscount != nil {
		ld := FromLoyaltyDiscountRequest(*p.LoyaltyDiscount)
		resp.LoyaltyDiscount = &ld
	}
	return resp
}

type PayableServiceCostResponse struct {
	ServiceCost ServiceCostResponse `json:"service_cost"`
	Breakdown   pricing.Breakdown   `json:"breakdown"`
}

type PayableServiceCostsResponse struct {
	Items   []PayableServiceCostResponse `json:"items"`
	Summary pricing.Summary              `json:"summary"`
}

func FromPayableServiceCosts(p usecase.PayableServiceCosts) PayableServiceCostsResponse {
	items := make([]PayableServiceCostResponse, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, PayableServiceCostResponse{
			ServiceCost: FromServiceCost(item.ServiceCost),
			Breakdown:   item.Breakdown,
		})
	}
	return PayableServiceCostsResponse{Items: items, Summary: p.Summary}
}

type PaymentSummaryResponse struct {
	Start           time.Time       `json:"start"`
	End             time.Time       `json:"end"`
	PaymentCount    int             `json:"payment_count"`
	GrossRevenue    float64         `json:"gross_revenue"`
	TotalDeductions float64         `json:"total_deductions"`
	NetRevenue      float64         `json:"net_revenue"`
	Pricing         pricing.Summary `json:"pricing"`
}

func FromPaymentSummary(s usecase.PaymentSummary) PaymentSummaryResponse {
	return PaymentSummaryResponse{
		Start:           s.Start,
		End:             s.End,
		PaymentCount:    s.PaymentCount,
		GrossRevenue:    s.GrossRevenue,
		TotalDeductions: s.TotalDeductions,
		NetRevenue:      s.NetRevenue,
		Pricing:         s.Pricing,
	}
}
