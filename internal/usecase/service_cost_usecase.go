package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"autoshop_billing/internal/domain/entities"
	"autoshop_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrServiceCostNotFound     = errors.New("service cost not found")
	ErrInvalidServiceCostID    = errors.New("invalid service cost id")
	ErrInvalidServiceCostInput = errors.New("invalid service cost input")
	ErrInvalidStatusTransition = errors.New("invalid service cost status transition")
	ErrServiceCostImmutable    = errors.New("service cost already paid and immutable")
)

// serviceTaxRatePercent is the tax applied to the reviewed job cost when the
// finance manager approves an estimate.
const serviceTaxRatePercent = 12

// IServiceCostUseCase exposes the estimate approval workflow:
//
//	pending_review -> under_review -> approved/rejected
//	approved -> invoiced
//	invoiced -> paid (payment pipeline only, see CustomerPaymentUseCase)

type IServiceCostUseCase interface {
	Submit(ctx context.Context, cmd SubmitServiceCostCommand) (entities.ServiceCost, error)
	StartReview(ctx context.Context, id string) (entities.ServiceCost, error)
	Review(ctx context.Context, cmd ReviewServiceCostCommand) (entities.ServiceCost, error)
	MarkInvoiced(ctx context.Context, id, invoiceID string) (entities.ServiceCost, error)
	UpdateEstimate(ctx context.Context, id string, estimate entities.AdvisorEstimate) (entities.ServiceCost, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.ServiceCost, error)
	ListByStatus(ctx context.Context, status entities.ServiceCostStatus) ([]entities.ServiceCost, error)
}

// SubmitServiceCostCommand carries a new advisor estimate.
type SubmitServiceCostCommand struct {
	BookingID     string
	AdvisorID     string
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	VehiclePlate  string
	ServiceType   string
	Estimate      entities.AdvisorEstimate
}

// ReviewServiceCostCommand carries the finance manager's decision.
type ReviewServiceCostCommand struct {
	ServiceCostID  string
	ReviewerID     string
	Approved       bool
	Adjustments    []entities.ReviewAdjustment
	DiscountAmount float64
	Notes          string
}

type ServiceCostUseCase struct {
	repo interfaces.IServiceCostRepository
}

var _ IServiceCostUseCase = (*ServiceCostUseCase)(nil)

func NewServiceCostUseCase(repo interfaces.IServiceCostRepository) *ServiceCostUseCase {
	return &ServiceCostUseCase{repo: repo}
}

func (u *ServiceCostUseCase) Submit(ctx context.Context, cmd SubmitServiceCostCommand) (entities.ServiceCost, error) {
	cmd.BookingID = strings.TrimSpace(cmd.BookingID)
	cmd.CustomerID = strings.TrimSpace(cmd.CustomerID)
	if cmd.BookingID == "" || cmd.CustomerID == "" {
		return entities.ServiceCost{}, ErrInvalidServiceCostInput
	}
	if cmd.Estimate.LaborCost < 0 || cmd.Estimate.PartsCost < 0 || cmd.Estimate.AdditionalServicesCost < 0 {
		return entities.ServiceCost{}, ErrInvalidServiceCostInput
	}
	subtotal := estimateSubtotal(cmd.Estimate, nil)
	if subtotal <= 0 {
		return entities.ServiceCost{}, ErrInvalidServiceCostInput
	}

	now := time.Now().UTC()
	sc := entities.ServiceCost{
		ID:            uuid.NewString(),
		BookingID:     cmd.BookingID,
		AdvisorID:     strings.TrimSpace(cmd.AdvisorID),
		CustomerID:    cmd.CustomerID,
		CustomerName:  strings.TrimSpace(cmd.CustomerName),
		CustomerEmail: strings.TrimSpace(cmd.CustomerEmail),
		VehiclePlate:  strings.TrimSpace(cmd.VehiclePlate),
		ServiceType:   strings.TrimSpace(cmd.ServiceType),
		Estimate:      cmd.Estimate,
		// Tax and discount are applied at review time.
		FinalCost: entities.FinalCost{Subtotal: subtotal, TotalAmount: subtotal},
		Status:    entities.ServiceCostStatusPendingReview,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, sc)
}

func (u *ServiceCostUseCase) StartReview(ctx context.Context, id string) (entities.ServiceCost, error) {
	sc, err := u.getExisting(ctx, id)
	if err != nil {
		return entities.ServiceCost{}, err
	}
	if sc.Status != entities.ServiceCostStatusPendingReview {
		return entities.ServiceCost{}, ErrInvalidStatusTransition
	}
	sc.Status = entities.ServiceCostStatusUnderReview
	sc.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, sc)
}

func (u *ServiceCostUseCase) Review(ctx context.Context, cmd ReviewServiceCostCommand) (entities.ServiceCost, error) {
	sc, err := u.getExisting(ctx, cmd.ServiceCostID)
	if err != nil {
		return entities.ServiceCost{}, err
	}
	if sc.Status != entities.ServiceCostStatusPendingReview && sc.Status != entities.ServiceCostStatusUnderReview {
		return entities.ServiceCost{}, ErrInvalidStatusTransition
	}
	if cmd.DiscountAmount < 0 {
		return entities.ServiceCost{}, ErrInvalidServiceCostInput
	}

	now := time.Now().UTC()
	sc.Review = &entities.FinanceReview{
		Approved:    cmd.Approved,
		ReviewerID:  strings.TrimSpace(cmd.ReviewerID),
		Adjustments: cmd.Adjustments,
		Notes:       cmd.Notes,
		ReviewedAt:  now,
	}
	if cmd.Approved {
		sc.Status = entities.ServiceCostStatusApproved
		sc.FinalCost = computeFinalCost(sc.Estimate, cmd.Adjustments, cmd.DiscountAmount)
	} else {
		sc.Status = entities.ServiceCostStatusRejected
	}
	sc.UpdatedAt = now
	return u.repo.Save(ctx, sc)
}

func (u *ServiceCostUseCase) MarkInvoiced(ctx context.Context, id, invoiceID string) (entities.ServiceCost, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.ServiceCost{}, ErrInvalidServiceCostInput
	}
	sc, err := u.getExisting(ctx, id)
	if err != nil {
		return entities.ServiceCost{}, err
	}
	if sc.Status != entities.ServiceCostStatusApproved {
		return entities.ServiceCost{}, ErrInvalidStatusTransition
	}
	sc.Status = entities.ServiceCostStatusInvoiced
	sc.InvoiceID = invoiceID
	sc.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, sc)
}

// UpdateEstimate replaces the advisor estimate on a not-yet-reviewed job.
// Paid records are immutable; reviewed ones must go through review again.
func (u *ServiceCostUseCase) UpdateEstimate(ctx context.Context, id string, estimate entities.AdvisorEstimate) (entities.ServiceCost, error) {
	sc, err := u.getExisting(ctx, id)
	if err != nil {
		return entities.ServiceCost{}, err
	}
	if sc.Status == entities.ServiceCostStatusPaid || sc.PaymentReceived {
		return entities.ServiceCost{}, ErrServiceCostImmutable
	}
	if sc.Status != entities.ServiceCostStatusPendingReview && sc.Status != entities.ServiceCostStatusUnderReview {
		return entities.ServiceCost{}, ErrInvalidStatusTransition
	}
	subtotal := estimateSubtotal(estimate, nil)
	if subtotal <= 0 {
		return entities.ServiceCost{}, ErrInvalidServiceCostInput
	}
	sc.Estimate = estimate
	sc.FinalCost = entities.FinalCost{Subtotal: subtotal, TotalAmount: subtotal}
	sc.Status = entities.ServiceCostStatusPendingReview
	sc.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, sc)
}

func (u *ServiceCostUseCase) Delete(ctx context.Context, id string) error {
	sc, err := u.getExisting(ctx, id)
	if err != nil {
		return err
	}
	if sc.Status == entities.ServiceCostStatusPaid || sc.PaymentReceived {
		log.Printf("[servicecost][usecase] delete rejected on paid record service_cost_id=%s", sc.ID)
		return ErrServiceCostImmutable
	}
	return u.repo.Delete(ctx, sc.ID)
}

func (u *ServiceCostUseCase) GetByID(ctx context.Context, id string) (entities.ServiceCost, error) {
	return u.getExisting(ctx, id)
}

func (u *ServiceCostUseCase) ListByStatus(ctx context.Context, status entities.ServiceCostStatus) ([]entities.ServiceCost, error) {
	return u.repo.ListByStatus(ctx, status)
}

func (u *ServiceCostUseCase) getExisting(ctx context.Context, id string) (entities.ServiceCost, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceCost{}, ErrInvalidServiceCostID
	}
	sc, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceCost{}, err
	}
	if sc.ID == "" {
		return entities.ServiceCost{}, ErrServiceCostNotFound
	}
	return sc, nil
}

func estimateSubtotal(e entities.AdvisorEstimate, adjustments []entities.ReviewAdjustment) float64 {
	sum := decimal.NewFromFloat(e.LaborCost).
		Add(decimal.NewFromFloat(e.PartsCost)).
		Add(decimal.NewFromFloat(e.AdditionalServicesCost))
	for _, a := range adjustments {
		sum = sum.Add(decimal.NewFromFloat(a.Amount))
	}
	return sum.Round(2).InexactFloat64()
}

// computeFinalCost derives the reviewed job cost. The invariant
// total = subtotal + tax - discount always holds; a discount larger than the
// taxed subtotal floors the total at zero by reducing the discount.
func computeFinalCost(e entities.AdvisorEstimate, adjustments []entities.ReviewAdjustment, discountAmount float64) entities.FinalCost {
	subtotal := decimal.NewFromFloat(estimateSubtotal(e, adjustments))
	tax := subtotal.Mul(decimal.NewFromInt(serviceTaxRatePercent)).Div(decimal.NewFromInt(100)).Round(2)
	discount := decimal.NewFromFloat(discountAmount).Round(2)
	if discount.GreaterThan(subtotal.Add(tax)) {
		discount = subtotal.Add(tax)
	}
	total := subtotal.Add(tax).Sub(discount).Round(2)
	return entities.FinalCost{
		Subtotal:       subtotal.InexactFloat64(),
		TaxAmount:      tax.InexactFloat64(),
		DiscountAmount: discount.InexactFloat64(),
		TotalAmount:    total.InexactFloat64(),
	}
}
