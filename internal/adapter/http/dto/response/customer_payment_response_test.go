package response

import (
	"testing"
	"time"

	"autoshop_billing/internal/domain/entities"
	"autoshop_billing/internal/domain/pricing"
	"autoshop_billing/internal/usecase"
)

func TestFromCustomerPayment(t *testing.T) {
	now := time.Now().UTC()
	breakdown := pricing.Calculate(1000, 0)

	p := entities.CustomerPayment{
		ID:            "pay-1",
		CustomerID:    "cust-1",
		ServiceCostID: "sc-1",
		Breakdown:     breakdown,
		GrossAmount:   breakdown.FinalCustomerPayment,
		Deductions:    entities.Deductions{Other: 50, Total: 50},
		NetAmount:     breakdown.FinalCustomerPayment - 50,
		Method:        entities.PaymentMethodCash,
		Status:        entities.CustomerPaymentStatusCompleted,
		ReceiptNumber: "RCP-20260901-ABCD1234",
		ProcessedBy:   "user-1",
		ProcessedAt:   now,
		CreatedAt:     now,
	}

	res := FromCustomerPayment(p)
	if res.ID != "pay-1" || res.ServiceCostID != "sc-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Method != "cash" || res.Status != "completed" {
		t.Fatalf("unexpected enum mapping: %+v", res)
	}
	if res.GrossAmount != 2195.20 || res.NetAmount != 2145.20 {
		t.Fatalf("unexpected amounts: gross=%v net=%v", res.GrossAmount, res.NetAmount)
	}
	if res.Deductions.Total != 50 {
		t.Fatalf("unexpected deductions: %+v", res.Deductions)
	}
	if res.ReceiptNumber != "RCP-20260901-ABCD1234" {
		t.Fatalf("unexpected receipt number: %s", res.ReceiptNumber)
	}
	if !res.ProcessedAt.Equal(now) {
		t.Fatalf("unexpected processed_at: %v", res.ProcessedAt)
	}
}

func TestFromPaymentPreview(t *testing.T) {
	loyalty := entities.LoyaltyDiscountRequest{
		ID:          "loy-1",
		CustomerID:  "cust-1",
		Status:      entities.LoyaltyDiscountStatusApproved,
		DiscountPct: 10,
	}
	preview := usecase.PaymentPreview{
		ServiceCost: entities.ServiceCost{
			ID:         "sc-1",
			CustomerID: "cust-1",
			Status:     entities.ServiceCostStatusApproved,
			FinalCost:  entities.FinalCost{TotalAmount: 1000},
		},
		LoyaltyDiscount: &loyalty,
		Breakdown:       pricing.Calculate(1000, 10),
	}

	res := FromPaymentPreview(preview)
	if res.ServiceCost.ID != "sc-1" || res.ServiceCost.Status != "approved" {
		t.Fatalf("unexpected service cost: %+v", res.ServiceCost)
	}
	if res.LoyaltyDiscount == nil || res.LoyaltyDiscount.ID != "loy-1" {
		t.Fatalf("unexpected loyalty discount: %+v", res.LoyaltyDiscount)
	}
	if res.Breakdown.FinalCustomerPayment != 1975.68 {
		t.Fatalf("unexpected breakdown total: %v", res.Breakdown.FinalCustomerPayment)
	}

	preview.LoyaltyDiscount = nil
	if got := FromPaymentPreview(preview); got.LoyaltyDiscount != nil {
		t.Fatalf("expected nil loyalty discount, got %+v", got.LoyaltyDiscount)
	}
}

func TestFromPayableServiceCosts(t *testing.T) {
	p := usecase.PayableServiceCosts{
		Items: []usecase.PayableServiceCost{
			{
				ServiceCost: entities.ServiceCost{ID: "sc-1", Status: entities.ServiceCostStatusApproved},
				Breakdown:   pricing.Calculate(1000, 0),
			},
			{
				ServiceCost: entities.ServiceCost{ID: "sc-2", Status: entities.ServiceCostStatusInvoiced},
				Breakdown:   pricing.Calculate(500, 0),
			},
		},
		Summary: pricing.Summarize([]float64{1000, 500}),
	}

	res := FromPayableServiceCosts(p)
	if len(res.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(res.Items))
	}
	if res.Items[0].ServiceCost.ID != "sc-1" || res.Items[1].ServiceCost.Status != "invoiced" {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.Summary.TotalCustomerPayment != 3382.40 {
		t.Fatalf("unexpected summary total: %v", res.Summary.TotalCustomerPayment)
	}
}
