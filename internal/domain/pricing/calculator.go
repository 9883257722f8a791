package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

// Pricing policy constants. These are business rules, not configuration:
// changing any of them is a pricing-policy change and ships as code.
const (
	ProfitMarginPercent = 80
	TaxRatePercent      = 12
	AdvisorFixedCost    = 100
	StaffFixedCost      = 60
)

// Breakdown is the fully itemized result of the markup pipeline. Every field
// is rounded to 2 decimal places.
type Breakdown struct {
	ServiceCost               float64 `json:"service_cost"`
	ProfitAmount              float64 `json:"profit_amount"`
	AdvisorFixedCost          float64 `json:"advisor_fixed_cost"`
	StaffFixedCost            float64 `json:"staff_fixed_cost"`
	CostWithProfit            float64 `json:"cost_with_profit"`
	TaxAmount                 float64 `json:"tax_amount"`
	Subtotal                  float64 `json:"subtotal"`
	LoyaltyDiscountPercentage float64 `json:"loyalty_discount_percentage"`
	LoyaltyDiscountAmount     float64 `json:"loyalty_discount_amount"`
	FinalCustomerPayment      float64 `json:"final_customer_payment"`
}

var (
	hundred = decimal.NewFromInt(100)
	margin  = decimal.NewFromInt(ProfitMarginPercent)
	taxRate = decimal.NewFromInt(TaxRatePercent)
	fixed   = decimal.NewFromInt(AdvisorFixedCost + StaffFixedCost)
)

// Calculate converts a service's raw cost and an optional loyalty discount
// percentage into the customer-facing price breakdown:
//
//	profit   = serviceCost * 80%
//	withProfit = serviceCost + profit + 100 (advisor) + 60 (staff)
//	tax      = withProfit * 12%
//	subtotal = withProfit + tax
//	discount = subtotal * loyaltyDiscountPercent%
//	final    = subtotal - discount
//
// Arithmetic runs on decimals and each step is rounded half-up to 2 places,
// so identical inputs always produce identical output. Malformed numeric
// input (NaN, Inf, negatives) coerces to 0 and the discount percent is
// clamped to [0,100]; the function never fails.
func Calculate(serviceCost, loyaltyDiscountPercent float64) Breakdown {
	base := decimal.NewFromFloat(sanitizeAmount(serviceCost))
	pct := decimal.NewFromFloat(clampPercent(loyaltyDiscountPercent))

	profit := base.Mul(margin).Div(hundred).Round(2)
	withProfit := base.Add(profit).Add(fixed).Round(2)
	tax := withProfit.Mul(taxRate).Div(hundred).Round(2)
	subtotal := withProfit.Add(tax).Round(2)
	discount := subtotal.Mul(pct).Div(hundred).Round(2)
	final := subtotal.Sub(discount).Round(2)

	return Breakdown{
		ServiceCost:               base.Round(2).InexactFloat64(),
		ProfitAmount:              profit.InexactFloat64(),
		AdvisorFixedCost:          AdvisorFixedCost,
		StaffFixedCost:            StaffFixedCost,
		CostWithProfit:            withProfit.InexactFloat64(),
		TaxAmount:                 tax.InexactFloat64(),
		Subtotal:                  subtotal.InexactFloat64(),
		LoyaltyDiscountPercentage: pct.Round(2).InexactFloat64(),
		LoyaltyDiscountAmount:     discount.InexactFloat64(),
		FinalCustomerPayment:      final.InexactFloat64(),
	}
}

// ApplyFlatDiscount subtracts a flat (non-percentage) deduction from an
// amount, clamping at zero. It reports the applied deduction and whether
// clamping occurred.
func ApplyFlatDiscount(amount, deduction float64) (charged, applied float64, clamped bool) {
	a := decimal.NewFromFloat(sanitizeAmount(amount))
	d := decimal.NewFromFloat(sanitizeAmount(deduction))
	if d.GreaterThan(a) {
		return 0, a.Round(2).InexactFloat64(), true
	}
	return a.Sub(d).Round(2).InexactFloat64(), d.Round(2).InexactFloat64(), false
}

func sanitizeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
