package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sit_connector/internal/domain/sit"
	mock_interfaces "sit_connector/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPricingUseCase_GetFixedConceptCost(t *testing.T) {
	t.Run("non-numeric service uid fails before catalog lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIServiceCatalog(ctrl)
		uc := NewPricingUseCase(catalog, nil)

		_, err := uc.GetFixedConceptCost(context.Background(), "twelve", decimal.NewFromInt(1))
		if !errors.Is(err, ErrInvalidServiceUID) {
			t.Fatalf("expected ErrInvalidServiceUID, got %v", err)
		}
	})

	t.Run("unit cost times quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIServiceCatalog(ctrl)
		uc := NewPricingUseCase(catalog, nil)

		catalog.EXPECT().GetService(gomock.Any(), 12).Return(sit.Service{
			ServiceID: 12,
			UnitPrice: decimal.RequireFromString("257.50"),
		}, nil)

		quantity := decimal.RequireFromString("2.5")
		concept, err := uc.GetFixedConceptCost(context.Background(), "12", quantity)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if concept.ConceptUID != "12" {
			t.Fatalf("expected concept uid 12, got %s", concept.ConceptUID)
		}
		if !concept.Quantity.Equal(quantity) {
			t.Fatalf("quantity must be echoed unmodified, got %s", concept.Quantity)
		}
		if !concept.UnitCost.Equal(decimal.RequireFromString("257.50")) {
			t.Fatalf("unexpected unit cost %s", concept.UnitCost)
		}
		if !concept.Total.Equal(decimal.RequireFromString("643.75")) {
			t.Fatalf("expected total 643.75, got %s", concept.Total)
		}
	})

	t.Run("unknown service is a hard not-found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIServiceCatalog(ctrl)
		uc := NewPricingUseCase(catalog, nil)

		catalog.EXPECT().GetService(gomock.Any(), 99).Return(sit.Service{}, nil)

		_, err := uc.GetFixedConceptCost(context.Background(), "99", decimal.NewFromInt(1))
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
		if !strings.Contains(err.Error(), "99") {
			t.Fatalf("not-found error must carry the requested id: %v", err)
		}
	})

	t.Run("catalog error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIServiceCatalog(ctrl)
		uc := NewPricingUseCase(catalog, nil)

		catalogErr := errors.New("services list unavailable")
		catalog.EXPECT().GetService(gomock.Any(), 12).Return(sit.Service{}, catalogErr)

		_, err := uc.GetFixedConceptCost(context.Background(), "12", decimal.NewFromInt(1))
		if !errors.Is(err, catalogErr) {
			t.Fatalf("expected catalog error verbatim, got %v", err)
		}
	})
}

func TestPricingUseCase_GetVariableConceptCost(t *testing.T) {
	t.Run("non-numeric payment uid fails before any remote call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := mock_interfaces.NewMockISITProviderAPI(ctrl)
		uc := NewPricingUseCase(nil, api)

		_, err := uc.GetVariableConceptCost(context.Background(), "abc", "12", decimal.NewFromInt(1000))
		if !errors.Is(err, ErrInvalidPaymentUID) {
			t.Fatalf("expected ErrInvalidPaymentUID, got %v", err)
		}
	})

	t.Run("non-numeric service uid fails before any remote call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := mock_interfaces.NewMockISITProviderAPI(ctrl)
		uc := NewPricingUseCase(nil, api)

		_, err := uc.GetVariableConceptCost(context.Background(), "500", "xyz", decimal.NewFromInt(1000))
		if !errors.Is(err, ErrInvalidServiceUID) {
			t.Fatalf("expected ErrInvalidServiceUID, got %v", err)
		}
	})

	t.Run("delegates to the provider with quantity fixed at 1", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := mock_interfaces.NewMockISITProviderAPI(ctrl)
		uc := NewPricingUseCase(nil, api)

		taxableBase := decimal.RequireFromString("125000.00")
		want := sit.Budget{
			Quantity:            1,
			ElectronicPaymentID: 500,
			ServiceID:           12,
			Value:               taxableBase,
		}
		api.EXPECT().GetVariableCost(gomock.Any(), want).Return(decimal.RequireFromString("812.50"), nil)

		total, err := uc.GetVariableConceptCost(context.Background(), "500", "12", taxableBase)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Equal(decimal.RequireFromString("812.50")) {
			t.Fatalf("expected total 812.50, got %s", total)
		}
	})

	t.Run("remote error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := mock_interfaces.NewMockISITProviderAPI(ctrl)
		uc := NewPricingUseCase(nil, api)

		remoteErr := errors.New("presupuesto endpoint down")
		api.EXPECT().GetVariableCost(gomock.Any(), gomock.Any()).Return(decimal.Decimal{}, remoteErr)

		_, err := uc.GetVariableConceptCost(context.Background(), "500", "12", decimal.NewFromInt(1))
		if !errors.Is(err, remoteErr) {
			t.Fatalf("expected remote error verbatim, got %v", err)
		}
	})
}
