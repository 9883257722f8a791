package pricing

import "github.com/shopspring/decimal"

// Summary aggregates the margin-only breakdown over a set of service costs.
// Loyalty discounts are per-customer and never included in summary mode.
type Summary struct {
	Count                  int     `json:"count"`
	TotalServiceCost       float64 `json:"total_service_cost"`
	TotalProfitAmount      float64 `json:"total_profit_amount"`
	TotalAdvisorFixedCost  float64 `json:"total_advisor_fixed_cost"`
	TotalStaffFixedCost    float64 `json:"total_staff_fixed_cost"`
	TotalTaxAmount         float64 `json:"total_tax_amount"`
	TotalCustomerPayment   float64 `json:"total_customer_payment"`
	AverageCustomerPayment float64 `json:"average_customer_payment"`
}

// Summarize runs every total through Calculate and sums the fields. The
// calculator is the single owner of the markup formula; this function only
// adds its outputs, so summary figures can never drift from per-payment ones.
func Summarize(serviceCostTotals []float64) Summary {
	s := Summary{Count: len(serviceCostTotals)}

	cost := decimal.Zero
	profit := decimal.Zero
	advisor := decimal.Zero
	staff := decimal.Zero
	tax := decimal.Zero
	final := decimal.Zero

	for _, total := range serviceCostTotals {
		b := Calculate(total, 0)
		cost = cost.Add(decimal.NewFromFloat(b.ServiceCost))
		profit = profit.Add(decimal.NewFromFloat(b.ProfitAmount))
		advisor = advisor.Add(decimal.NewFromFloat(b.AdvisorFixedCost))
		staff = staff.Add(decimal.NewFromFloat(b.StaffFixedCost))
		tax = tax.Add(decimal.NewFromFloat(b.TaxAmount))
		final = final.Add(decimal.NewFromFloat(b.FinalCustomerPayment))
	}

	s.TotalServiceCost = cost.Round(2).InexactFloat64()
	s.TotalProfitAmount = profit.Round(2).InexactFloat64()
	s.TotalAdvisorFixedCost = advisor.Round(2).InexactFloat64()
	s.TotalStaffFixedCost = staff.Round(2).InexactFloat64()
	s.TotalTaxAmount = tax.Round(2).InexactFloat64()
	s.TotalCustomerPayment = final.Round(2).InexactFloat64()
	if s.Count > 0 {
		s.AverageCustomerPayment = final.Div(decimal.NewFromInt(int64(s.Count))).Round(2).InexactFloat64()
	}
	return s
}
