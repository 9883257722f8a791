package usecase

import (
	"context"
	"errors"
	"testing"

	"autoshop_billing/internal/domain/entities"
	mock_interfaces "autoshop_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestServiceCostUseCase_Submit(t *testing.T) {
	t.Run("missing booking or customer", func(t *testing.T) {
		uc := NewServiceCostUseCase(nil)
		_, err := uc.Submit(context.Background(), SubmitServiceCostCommand{CustomerID: "cust-1"})
		if !errors.Is(err, ErrInvalidServiceCostInput) {
			t.Fatalf("expected ErrInvalidServiceCostInput, got %v", err)
		}
	})

	t.Run("negative estimate component", func(t *testing.T) {
		uc := NewServiceCostUseCase(nil)
		_, err := uc.Submit(context.Background(), SubmitServiceCostCommand{
			BookingID:  "bk-1",
			CustomerID: "cust-1",
			Estimate:   entities.AdvisorEstimate{LaborCost: -10, PartsCost: 50},
		})
		if !errors.Is(err, ErrInvalidServiceCostInput) {
			t.Fatalf("expected ErrInvalidServiceCostInput, got %v", err)
		}
	})

	t.Run("zero estimate", func(t *testing.T) {
		uc := NewServiceCostUseCase(nil)
		_, err := uc.Submit(context.Background(), SubmitServiceCostCommand{BookingID: "bk-1", CustomerID: "cust-1"})
		if !errors.Is(err, ErrInvalidServiceCostInput) {
			t.Fatalf("expected ErrInvalidServiceCostInput, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceCostRepository(ctrl)
		uc := NewServiceCostUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceCost{})).DoAndReturn(
			func(_ context.Context, sc entities.ServiceCost) (entities.ServiceCost, error) {
				if sc.ID == "" || sc.Status != entities.ServiceCostStatusPendingReview {
					t.Fatalf("unexpected service cost: %+v", sc)
				}
				if sc.FinalCost.Subtotal != 850 || sc.FinalCost.TotalAmount != 850 {
					t.Fatalf("unexpected final cost: %+v", sc.FinalCost)
				}
				if sc.CreatedAt.IsZero() || sc.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return sc, nil
			},
		)

		res, err := uc.Submit(context.Background(), SubmitServiceCostCommand{
			BookingID:    " bk-1 ",
			CustomerID:   "cust-1",
			VehiclePlate: "KX-4821",
			ServiceType:  "brake_overhaul",
			Estimate:     entities.AdvisorEstimate{LaborCost: 500, PartsCost: 300, AdditionalServicesCost: 50},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.BookingID != "bk-1" {
			t.Fatalf("expected trimmed booking id, got %q", res.BookingID)
		}
	})
}

func TestServiceCostUseCase_Review(t *testing.T) {
	t.Run("approve recomputes final cost with adjustments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceCostRepository(ctrl)
		uc := NewServiceCostUseCase(repo)

		existing := entities.ServiceCost{
			ID:       "sc-1",
			Status:   entities.ServiceCostStatusUnderReview,
			Estimate: entities.AdvisorEstimate{LaborCost: 500, PartsCost: 300},
		}
		repo.EXPECT().GetByID(gomock.Any(), "sc-1").Return(existing, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceCost{})).DoAndReturn(
			func(_ context.Context, sc entities.ServiceCost) (entities.ServiceCost, error) {
				if sc.Status != entities.ServiceCostStatusApproved {
					t.Fatalf("expected approved, got %s", sc.Status)
				}
				// 800 + 200 adjustment = 1000 subtotal, 120 tax, 50 discount.
				if sc.FinalCost.Subtotal != 1000 || sc.FinalCost.TaxAmount != 120 {
					t.Fatalf("unexpected final cost: %+v", sc.FinalCost)
				}
				if sc.FinalCost.DiscountAmount != 50 || sc.FinalCost.TotalAmount != 1070 {
					t.Fatalf("unexpected total: %+v", sc.FinalCost)
				}
				if sc.Review == nil || !sc.Review.Approved || sc.Review.ReviewerID != "fm-9" {
					t.Fatalf("unexpected review: %+v", sc.Review)
				}
				return sc, nil
			},
		)

		_, err := uc.Review(context.Background(), ReviewServiceCostCommand{
			ServiceCostID:  "sc-1",
			ReviewerID:     "fm-9",
			Approved:       true,
			Adjustments:    []entities.ReviewAdjustment{{Description: "extra coolant flush", Amount: 200}},
			DiscountAmount: 50,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reject keeps estimate untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceCostRepository(ctrl)
		uc := NewServiceCostUseCase(repo)

		existing := entities.ServiceCost{ID: "sc-1", Status: entities.ServiceCostStatusPendingReview, Estimate: entities.AdvisorEstimate{LaborCost: 100}}
		repo.EXPECT().GetByID(gomock.Any(), "sc-1").Return(existing, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceCost{})).DoAndReturn(
			func(_ context.Context, sc entities.ServiceCost) (entities.ServiceCost, error) {
				if sc.Status != entities.ServiceCostStatusRejected {
					t.Fatalf("expected rejected, got %s", sc.Status)
				}
				return sc, nil
			},
		)

		if _, err := uc.Review(context.Background(), ReviewServiceCostCommand{ServiceCostID: "sc-1", Approved: false}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("review of already reviewed estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceCostRepository(ctrl)
		uc := NewServiceCostUseCase(repo)

		existing := entities.ServiceCost{ID: "sc-1", Status: entities.ServiceCostStatusApproved}
		repo.EXPECT().GetByID(gomock.Any(), "sc-1").Return(existing, nil)

		_, err := uc.Review(context.Background(), ReviewServiceCostCommand{ServiceCostID: "sc-1", Approved: true})
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})
}

func TestServiceCostUseCase_MarkInvoiced(t *testing.T) {
	t.Run("only approved estimates can be invoiced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceCostRepository(ctrl)
		uc := NewServiceCostUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "sc-1").Return(entities.ServiceCost{ID: "sc-1", Status: entities.ServiceCostStatusPendingReview}, nil)

		_, err := uc.MarkInvoiced(context.Background(), "sc-1", "inv-1")
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceCostRepository(ctrl)
		uc := NewServiceCostUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "sc-1").Return(entities.ServiceCost{ID: "sc-1", Status: entities.ServiceCostStatusApproved}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceCost{})).DoAndReturn(
			func(_ context.Context, sc entities.ServiceCost) (entities.ServiceCost, error) {
				if sc.Status != entities.ServiceCostStatusInvoiced || sc.InvoiceID != "inv-1" {
					t.Fatalf("unexpected service cost: %+v", sc)
				}
				return sc, nil
			},
		)

		if _, err := uc.MarkInvoiced(context.Background(), "sc-1", "inv-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceCostUseCase_PaidRecordsAreImmutable(t *testing.T) {
	paid := entities.ServiceCost{ID: "sc-1", Status: entities.ServiceCostStatusPaid, PaymentReceived: true}

	t.Run("update estimate rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceCostRepository(ctrl)
		uc := NewServiceCostUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "sc-1").Return(paid, nil)

		_, err := uc.UpdateEstimate(context.Background(), "sc-1", entities.AdvisorEstimate{LaborCost: 10})
		if !errors.Is(err, ErrServiceCostImmutable) {
			t.Fatalf("expected ErrServiceCostImmutable, got %v", err)
		}
	})

	t.Run("delete rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceCostRepository(ctrl)
		uc := NewServiceCostUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "sc-1").Return(paid, nil)

		if err := uc.Delete(context.Background(), "sc-1"); !errors.Is(err, ErrServiceCostImmutable) {
			t.Fatalf("expected ErrServiceCostImmutable, got %v", err)
		}
	})
}

func TestServiceCostUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewServiceCostUseCase(nil)
		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidServiceCostID) {
			t.Fatalf("expected ErrInvalidServiceCostID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceCostRepository(ctrl)
		uc := NewServiceCostUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "sc-1").Return(entities.ServiceCost{}, nil)

		if _, err := uc.GetByID(context.Background(), "sc-1"); !errors.Is(err, ErrServiceCostNotFound) {
			t.Fatalf("expected ErrServiceCostNotFound, got %v", err)
		}
	})
}
