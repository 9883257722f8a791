package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"autoshop_billing/internal/domain/entities"
	"autoshop_billing/internal/domain/pricing"
	"autoshop_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrServiceCostAlreadyPaid  = errors.New("service cost already paid")
	ErrServiceCostNotPayable   = errors.New("service cost not approved or invoiced")
	ErrInvalidPaymentMethod    = errors.New("invalid payment method")
	ErrInvalidPaymentInput     = errors.New("invalid payment input")
	ErrPaymentNotFound         = errors.New("customer payment not found")
	ErrInvalidPaymentID        = errors.New("invalid payment id")
	ErrPaymentGatewayFailed    = errors.New("payment gateway charge failed")
	ErrPaymentGatewayNotSetUp  = errors.New("payment gateway not configured")
	ErrPaymentCommitIncomplete = errors.New("payment committed partially; reconciliation required")
)

// ICustomerPaymentUseCase is the customer payment pipeline: price preview,
// processing (charge + ledger write), and ledger reads/aggregates.
type ICustomerPaymentUseCase interface {
	Preview(ctx context.Context, serviceCostID string) (PaymentPreview, error)
	ListPayable(ctx context.Context, status entities.ServiceCostStatus) (PayableServiceCosts, error)
	Process(ctx context.Context, cmd ProcessPaymentCommand) (entities.CustomerPayment, error)
	Summary(ctx context.Context, start, end time.Time) (PaymentSummary, error)
	List(ctx context.Context, filter interfaces.CustomerPaymentFilter) ([]entities.CustomerPayment, error)
	GetByID(ctx context.Context, id string) (entities.CustomerPayment, error)
	GetByReceiptNumber(ctx context.Context, receiptNumber string) (entities.CustomerPayment, error)
}

// PaymentPreview is the read-only calculate response: the service cost, the
// loyalty discount that would apply, and the resulting breakdown. No writes.
type PaymentPreview struct {
	ServiceCost     entities.ServiceCost             `json:"service_cost"`
	LoyaltyDiscount *entities.LoyaltyDiscountRequest `json:"loyalty_discount,omitempty"`
	Breakdown       pricing.Breakdown                `json:"breakdown"`
}

// PayableServiceCost annotates an eligible service cost with its margin-only
// breakdown.
type PayableServiceCost struct {
	ServiceCost entities.ServiceCost `json:"service_cost"`
	Breakdown   pricing.Breakdown    `json:"breakdown"`
}

type PayableServiceCosts struct {
	Items   []PayableServiceCost `json:"items"`
	Summary pricing.Summary      `json:"summary"`
}

// PaymentSummary is the date-ranged ledger aggregate.
type PaymentSummary struct {
	Start           time.Time       `json:"start"`
	End             time.Time       `json:"end"`
	PaymentCount    int             `json:"payment_count"`
	GrossRevenue    float64         `json:"gross_revenue"`
	TotalDeductions float64         `json:"total_deductions"`
	NetRevenue      float64         `json:"net_revenue"`
	Pricing         pricing.Summary `json:"pricing"`
}

// ProcessPaymentCommand carries one charge request into the pipeline.
type ProcessPaymentCommand struct {
	ServiceCostID string
	Method        entities.PaymentMethod
	Reference     string
	TransactionID string
	OtherDiscount float64
	Notes         string
	ProcessedBy   string
}

type CustomerPaymentUseCase struct {
	repo            interfaces.ICustomerPaymentRepository
	serviceCostRepo interfaces.IServiceCostRepository
	loyaltyRepo     interfaces.ILoyaltyDiscountRepository
	gateway         interfaces.IPaymentGateway
}

var _ ICustomerPaymentUseCase = (*CustomerPaymentUseCase)(nil)

func NewCustomerPaymentUseCase(
	repo interfaces.ICustomerPaymentRepository,
	serviceCostRepo interfaces.IServiceCostRepository,
	loyaltyRepo interfaces.ILoyaltyDiscountRepository,
	gateway interfaces.IPaymentGateway,
) *CustomerPaymentUseCase {
	return &CustomerPaymentUseCase{
		repo:            repo,
		serviceCostRepo: serviceCostRepo,
		loyaltyRepo:     loyaltyRepo,
		gateway:         gateway,
	}
}

func (u *CustomerPaymentUseCase) Preview(ctx context.Context, serviceCostID string) (PaymentPreview, error) {
	sc, err := u.loadServiceCost(ctx, serviceCostID)
	if err != nil {
		return PaymentPreview{}, err
	}

	loyalty, err := u.resolveLoyalty(ctx, sc.CustomerID)
	if err != nil {
		return PaymentPreview{}, err
	}

	pct := 0.0
	var loyaltyOut *entities.LoyaltyDiscountRequest
	if loyalty.ID != "" {
		pct = loyalty.DiscountPct
		loyaltyOut = &loyalty
	}
	return PaymentPreview{
		ServiceCost:     sc,
		LoyaltyDiscount: loyaltyOut,
		Breakdown:       pricing.Calculate(sc.FinalCost.TotalAmount, pct),
	}, nil
}

func (u *CustomerPaymentUseCase) ListPayable(ctx context.Context, status entities.ServiceCostStatus) (PayableServiceCosts, error) {
	statuses := []entities.ServiceCostStatus{entities.ServiceCostStatusApproved, entities.ServiceCostStatusInvoiced}
	if status != "" {
		if status != entities.ServiceCostStatusApproved && status != entities.ServiceCostStatusInvoiced {
			return PayableServiceCosts{}, ErrServiceCostNotPayable
		}
		statuses = []entities.ServiceCostStatus{status}
	}

	out := PayableServiceCosts{Items: []PayableServiceCost{}}
	totals := make([]float64, 0)
	for _, st := range statuses {
		costs, err := u.serviceCostRepo.ListByStatus(ctx, st)
		if err != nil {
			return PayableServiceCosts{}, err
		}
		for _, sc := range costs {
			if sc.PaymentReceived {
				continue
			}
			out.Items = append(out.Items, PayableServiceCost{
				ServiceCost: sc,
				Breakdown:   pricing.Calculate(sc.FinalCost.TotalAmount, 0),
			})
			totals = append(totals, sc.FinalCost.TotalAmount)
		}
	}
	out.Summary = pricing.Summarize(totals)
	return out, nil
}

// Process charges a customer for an approved or invoiced service cost.
//
// Write ordering: the conditional paid-flag flip on the service cost runs
// first so a lost race surfaces as ErrServiceCostAlreadyPaid before anything
// else is written. A failure after that flip is logged with full context for
// the reconciliation sweep; it is never swallowed.
func (u *CustomerPaymentUseCase) Process(ctx context.Context, cmd ProcessPaymentCommand) (entities.CustomerPayment, error) {
	log.Printf("[payment][usecase] process start service_cost_id=%q method=%s actor=%s", cmd.ServiceCostID, cmd.Method, cmd.ProcessedBy)

	sc, err := u.loadServiceCost(ctx, cmd.ServiceCostID)
	if err != nil {
		return entities.CustomerPayment{}, err
	}
	if sc.PaymentReceived {
		log.Printf("[payment][usecase] already paid service_cost_id=%s payment_id=%s", sc.ID, sc.PaymentID)
		return entities.CustomerPayment{}, ErrServiceCostAlreadyPaid
	}
	if !entities.ValidPaymentMethod(cmd.Method) {
		log.Printf("[payment][usecase] invalid method service_cost_id=%s method=%q", sc.ID, cmd.Method)
		return entities.CustomerPayment{}, ErrInvalidPaymentMethod
	}
	if cmd.OtherDiscount < 0 {
		return entities.CustomerPayment{}, ErrInvalidPaymentInput
	}
	if !sc.Payable() {
		log.Printf("[payment][usecase] not payable service_cost_id=%s status=%s", sc.ID, sc.Status)
		return entities.CustomerPayment{}, ErrServiceCostNotPayable
	}

	loyalty, err := u.resolveLoyalty(ctx, sc.CustomerID)
	if err != nil {
		return entities.CustomerPayment{}, err
	}
	pct := 0.0
	if loyalty.ID != "" {
		pct = loyalty.DiscountPct
		log.Printf("[payment][usecase] loyalty discount resolved service_cost_id=%s request_id=%s percent=%.2f", sc.ID, loyalty.ID, pct)
	}

	breakdown := pricing.Calculate(sc.FinalCost.TotalAmount, pct)
	charged, applied, clamped := pricing.ApplyFlatDiscount(breakdown.FinalCustomerPayment, cmd.OtherDiscount)
	notes := strings.TrimSpace(cmd.Notes)
	if clamped {
		log.Printf("[payment][usecase] other discount clamped service_cost_id=%s requested=%.2f applied=%.2f", sc.ID, cmd.OtherDiscount, applied)
		if notes != "" {
			notes += "; "
		}
		notes += "other discount clamped at zero charge"
	}

	// External settlement happens before any document write so a declined
	// charge aborts with no state to unwind.
	transactionID := strings.TrimSpace(cmd.TransactionID)
	if cmd.Method.GatewayBacked() && transactionID == "" {
		if u.gateway == nil {
			log.Printf("[payment][usecase] gateway not configured service_cost_id=%s method=%s", sc.ID, cmd.Method)
			return entities.CustomerPayment{}, ErrPaymentGatewayNotSetUp
		}
		providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, interfaces.ChargeRequest{
			Amount:            charged,
			Description:       fmt.Sprintf("Service cost %s (%s)", sc.ID, sc.ServiceType),
			ExternalReference: sc.ID,
			PaymentMethodID:   string(cmd.Method),
			PayerEmail:        sc.CustomerEmail,
		})
		if err != nil {
			log.Printf("[payment][usecase] gateway charge failed service_cost_id=%s err=%v", sc.ID, err)
			return entities.CustomerPayment{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
		}
		log.Printf("[payment][usecase] gateway charge success service_cost_id=%s provider_payment_id=%s provider_status=%s", sc.ID, providerID, providerStatus)
		transactionID = providerID
	}

	now := time.Now().UTC()
	paymentID := uuid.NewString()

	// Idempotency guard: conditional flip of payment_received. Zero match
	// means another request won the race; abort with nothing written here.
	marked, err := u.serviceCostRepo.MarkPaid(ctx, sc.ID, paymentID)
	if err != nil {
		return entities.CustomerPayment{}, err
	}
	if marked.ID == "" {
		log.Printf("[payment][usecase] lost paid race service_cost_id=%s", sc.ID)
		return entities.CustomerPayment{}, ErrServiceCostAlreadyPaid
	}

	loyaltyRequestID := ""
	if loyalty.ID != "" {
		consumed, err := u.loyaltyRepo.MarkApplied(ctx, loyalty.ID, paymentID, sc.ID)
		if err != nil {
			log.Printf("[payment][usecase] RECONCILE loyalty consume failed service_cost_id=%s request_id=%s payment_id=%s actor=%s err=%v", sc.ID, loyalty.ID, paymentID, cmd.ProcessedBy, err)
			return entities.CustomerPayment{}, fmt.Errorf("%w: %v", ErrPaymentCommitIncomplete, err)
		}
		if consumed.ID == "" {
			// Another payment consumed the request between resolution and
			// now. For gateway-backed methods the discounted amount has
			// already settled, so the ledger must record what was actually
			// collected; for cash/bank_transfer no money has moved yet and
			// the charge is recomputed without the discount.
			if cmd.Method.GatewayBacked() {
				log.Printf("[payment][usecase] RECONCILE loyalty consumed elsewhere after settlement service_cost_id=%s request_id=%s payment_id=%s actor=%s", sc.ID, loyalty.ID, paymentID, cmd.ProcessedBy)
				if notes != "" {
					notes += "; "
				}
				notes += "loyalty request consumed by another payment after charge settled"
			} else {
				log.Printf("[payment][usecase] loyalty consumed elsewhere; recomputing without discount service_cost_id=%s request_id=%s", sc.ID, loyalty.ID)
				breakdown = pricing.Calculate(sc.FinalCost.TotalAmount, 0)
				charged, applied, clamped = pricing.ApplyFlatDiscount(breakdown.FinalCustomerPayment, cmd.OtherDiscount)
				if clamped {
					log.Printf("[payment][usecase] other discount clamped service_cost_id=%s requested=%.2f applied=%.2f", sc.ID, cmd.OtherDiscount, applied)
				}
			}
		} else {
			loyaltyRequestID = consumed.ID
		}
	}

	p := entities.CustomerPayment{
		ID:            paymentID,
		CustomerID:    sc.CustomerID,
		CustomerName:  sc.CustomerName,
		CustomerEmail: sc.CustomerEmail,
		ServiceCostID: sc.ID,
		InvoiceID:     sc.InvoiceID,
		VehiclePlate:  sc.VehiclePlate,
		ServiceType:   sc.ServiceType,
		Breakdown:     breakdown,
		GrossAmount:   breakdown.FinalCustomerPayment,
		Deductions: entities.Deductions{
			Other: applied,
			Total: applied,
		},
		NetAmount:                charged,
		Method:                   cmd.Method,
		Reference:                strings.TrimSpace(cmd.Reference),
		TransactionID:            transactionID,
		Status:                   entities.CustomerPaymentStatusCompleted,
		ReceiptNumber:            newReceiptNumber(now),
		LoyaltyDiscountRequestID: loyaltyRequestID,
		ProcessedBy:              strings.TrimSpace(cmd.ProcessedBy),
		ProcessedAt:              now,
		Notes:                    notes,
		CreatedAt:                now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		// The service cost is already marked paid; losing this write would
		// leave a paid job without a ledger entry.
		log.Printf("[payment][usecase] RECONCILE ledger create failed service_cost_id=%s payment_id=%s actor=%s err=%v", sc.ID, paymentID, cmd.ProcessedBy, err)
		return entities.CustomerPayment{}, fmt.Errorf("%w: %v", ErrPaymentCommitIncomplete, err)
	}

	log.Printf("[payment][usecase] process success service_cost_id=%s payment_id=%s receipt=%s net=%.2f", sc.ID, created.ID, created.ReceiptNumber, created.NetAmount)
	return created, nil
}

func (u *CustomerPaymentUseCase) Summary(ctx context.Context, start, end time.Time) (PaymentSummary, error) {
	payments, err := u.repo.ListCompletedBetween(ctx, start, end)
	if err != nil {
		return PaymentSummary{}, err
	}

	s := PaymentSummary{Start: start, End: end, PaymentCount: len(payments)}
	gross, deductions, net := decimal.Zero, decimal.Zero, decimal.Zero
	totals := make([]float64, 0, len(payments))
	for _, p := range payments {
		gross = gross.Add(decimal.NewFromFloat(p.GrossAmount))
		deductions = deductions.Add(decimal.NewFromFloat(p.Deductions.Total))
		net = net.Add(decimal.NewFromFloat(p.NetAmount))
		totals = append(totals, p.Breakdown.ServiceCost)
	}
	s.GrossRevenue, _ = gross.Round(2).Float64()
	s.TotalDeductions, _ = deductions.Round(2).Float64()
	s.NetRevenue, _ = net.Round(2).Float64()
	s.Pricing = pricing.Summarize(totals)
	return s, nil
}

func (u *CustomerPaymentUseCase) List(ctx context.Context, filter interfaces.CustomerPaymentFilter) ([]entities.CustomerPayment, error) {
	return u.repo.List(ctx, filter)
}

func (u *CustomerPaymentUseCase) GetByID(ctx context.Context, id string) (entities.CustomerPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CustomerPayment{}, ErrInvalidPaymentID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CustomerPayment{}, err
	}
	if p.ID == "" {
		return entities.CustomerPayment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *CustomerPaymentUseCase) GetByReceiptNumber(ctx context.Context, receiptNumber string) (entities.CustomerPayment, error) {
	receiptNumber = strings.TrimSpace(receiptNumber)
	if receiptNumber == "" {
		return entities.CustomerPayment{}, ErrInvalidPaymentID
	}
	p, err := u.repo.GetByReceiptNumber(ctx, receiptNumber)
	if err != nil {
		return entities.CustomerPayment{}, err
	}
	if p.ID == "" {
		return entities.CustomerPayment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *CustomerPaymentUseCase) loadServiceCost(ctx context.Context, id string) (entities.ServiceCost, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceCost{}, ErrInvalidServiceCostID
	}
	sc, err := u.serviceCostRepo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceCost{}, err
	}
	if sc.ID == "" {
		return entities.ServiceCost{}, ErrServiceCostNotFound
	}
	return sc, nil
}

func (u *CustomerPaymentUseCase) resolveLoyalty(ctx context.Context, customerID string) (entities.LoyaltyDiscountRequest, error) {
	if u.loyaltyRepo == nil || customerID == "" {
		return entities.LoyaltyDiscountRequest{}, nil
	}
	return u.loyaltyRepo.FindApprovedUnapplied(ctx, customerID)
}

// newReceiptNumber mints a unique receipt id for a completed payment, e.g.
// RCP-20250901-1A2B3C4D.
func newReceiptNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("RCP-%s-%s", now.Format("20060102"), suffix)
}
