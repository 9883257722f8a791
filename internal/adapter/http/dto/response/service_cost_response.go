package response

import (
	"time"

	"autoshop_billing/internal/domain/entities"
)

type ServiceCostResponse struct {
	ID            string                   `json:"id"`
	BookingID     string                   `json:"booking_id"`
	AdvisorID     string                   `json:"advisor_id,omitempty"`
	CustomerID    string                   `json:"customer_id"`
	CustomerName  string                   `json:"customer_name,omitempty"`
	CustomerEmail string                   `json:"customer_email,omitempty"`
	VehiclePlate  string                   `json:"vehicle_plate"`
	ServiceType   string                   `json:"service_type"`
	Estimate      entities.AdvisorEstimate `json:"estimate"`
	Review        *entities.FinanceReview  `json:"review,omitempty"`
	FinalCost     entities.FinalCost       `json:"final_cost"`
	Status        string                   `json:"status"`

	PaymentReceived bool   `json:"payment_received"`
	PaymentID       string `json:"payment_id,omitempty"`
	InvoiceID       string `json:"invoice_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromServiceCost(sc entities.ServiceCost) ServiceCostResponse {
	return ServiceCostResponse{
		ID:              sc.ID,
		BookingID:       sc.BookingID,
		AdvisorID:       sc.AdvisorID,
		CustomerID:      sc.CustomerID,
		CustomerName:    sc.CustomerName,
		CustomerEmail:   sc.CustomerEmail,
		VehiclePlate:    sc.VehiclePlate,
		ServiceType:     sc.ServiceType,
		Estimate:        sc.Estimate,
		Review:          sc.Review,
		FinalCost:       sc.FinalCost,
		Status:          string(sc.Status),
		PaymentReceived: sc.PaymentReceived,
		PaymentID:       sc.PaymentID,
		InvoiceID:       sc.InvoiceID,
		CreatedAt:       sc.CreatedAt,
		UpdatedAt:       sc.UpdatedAt,
	}
}

func FromServiceCosts(costs []entities.ServiceCost) []ServiceCostResponse {
	out := make([]ServiceCostResponse, 0, len(costs))
	for _, sc := range costs {
		out = append(out, FromServiceCost(sc))
	}
	return out
}
