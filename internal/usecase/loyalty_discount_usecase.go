package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"autoshop_billing/internal/domain/entities"
	"autoshop_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrLoyaltyRequestNotFound  = errors.New("loyalty discount request not found")
	ErrInvalidLoyaltyRequestID = errors.New("invalid loyalty discount request id")
	ErrInvalidLoyaltyInput     = errors.New("invalid loyalty discount input")
	ErrLoyaltyAlreadyReviewed  = errors.New("loyalty discount request already reviewed")
)

// loyaltyEligibilityMinBookings is the booking count a customer needs before
// a loyalty claim is marked eligible for review.
const loyaltyEligibilityMinBookings = 5

type ILoyaltyDiscountUseCase interface {
	Create(ctx context.Context, cmd CreateLoyaltyDiscountCommand) (entities.LoyaltyDiscountRequest, error)
	Approve(ctx context.Context, id, reviewerID, notes string) (entities.LoyaltyDiscountRequest, error)
	Decline(ctx context.Context, id, reviewerID, notes string) (entities.LoyaltyDiscountRequest, error)
	GetByID(ctx context.Context, id string) (entities.LoyaltyDiscountRequest, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.LoyaltyDiscountRequest, error)
}

type CreateLoyaltyDiscountCommand struct {
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	TotalBookings int
	DiscountPct   float64
}

type LoyaltyDiscountUseCase struct {
	repo interfaces.ILoyaltyDiscountRepository
}

var _ ILoyaltyDiscountUseCase = (*LoyaltyDiscountUseCase)(nil)

func NewLoyaltyDiscountUseCase(repo interfaces.ILoyaltyDiscountRepository) *LoyaltyDiscountUseCase {
	return &LoyaltyDiscountUseCase{repo: repo}
}

func (u *LoyaltyDiscountUseCase) Create(ctx context.Context, cmd CreateLoyaltyDiscountCommand) (entities.LoyaltyDiscountRequest, error) {
	cmd.CustomerID = strings.TrimSpace(cmd.CustomerID)
	if cmd.CustomerID == "" || cmd.TotalBookings < 0 {
		return entities.LoyaltyDiscountRequest{}, ErrInvalidLoyaltyInput
	}
	if cmd.DiscountPct < 0 || cmd.DiscountPct > 100 {
		return entities.LoyaltyDiscountRequest{}, ErrInvalidLoyaltyInput
	}

	now := time.Now().UTC()
	r := entities.LoyaltyDiscountRequest{
		ID:            uuid.NewString(),
		CustomerID:    cmd.CustomerID,
		CustomerName:  strings.TrimSpace(cmd.CustomerName),
		CustomerEmail: strings.TrimSpace(cmd.CustomerEmail),
		TotalBookings: cmd.TotalBookings,
		Eligible:      cmd.TotalBookings >= loyaltyEligibilityMinBookings,
		DiscountPct:   cmd.DiscountPct,
		Status:        entities.LoyaltyDiscountStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.repo.Create(ctx, r)
}

func (u *LoyaltyDiscountUseCase) Approve(ctx context.Context, id, reviewerID, notes string) (entities.LoyaltyDiscountRequest, error) {
	return u.review(ctx, id, entities.LoyaltyDiscountStatusApproved, reviewerID, notes)
}

func (u *LoyaltyDiscountUseCase) Decline(ctx context.Context, id, reviewerID, notes string) (entities.LoyaltyDiscountRequest, error) {
	return u.review(ctx, id, entities.LoyaltyDiscountStatusDeclined, reviewerID, notes)
}

func (u *LoyaltyDiscountUseCase) review(ctx context.Context, id string, status entities.LoyaltyDiscountStatus, reviewerID, notes string) (entities.LoyaltyDiscountRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LoyaltyDiscountRequest{}, ErrInvalidLoyaltyRequestID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.LoyaltyDiscountRequest{}, err
	}
	if existing.ID == "" {
		return entities.LoyaltyDiscountRequest{}, ErrLoyaltyRequestNotFound
	}
	if existing.Status != entities.LoyaltyDiscountStatusPending {
		return entities.LoyaltyDiscountRequest{}, ErrLoyaltyAlreadyReviewed
	}

	updated, err := u.repo.UpdateReview(ctx, id, status, strings.TrimSpace(reviewerID), notes)
	if err != nil {
		return entities.LoyaltyDiscountRequest{}, err
	}
	if updated.ID == "" {
		// Lost a review race: the conditional update matched nothing.
		return entities.LoyaltyDiscountRequest{}, ErrLoyaltyAlreadyReviewed
	}
	return updated, nil
}

func (u *LoyaltyDiscountUseCase) GetByID(ctx context.Context, id string) (entities.LoyaltyDiscountRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LoyaltyDiscountRequest{}, ErrInvalidLoyaltyRequestID
	}
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.LoyaltyDiscountRequest{}, err
	}
	if r.ID == "" {
		return entities.LoyaltyDiscountRequest{}, ErrLoyaltyRequestNotFound
	}
	return r, nil
}

func (u *LoyaltyDiscountUseCase) ListByCustomer(ctx context.Context, customerID string) ([]entities.LoyaltyDiscountRequest, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidLoyaltyInput
	}
	return u.repo.ListByCustomer(ctx, customerID)
}
