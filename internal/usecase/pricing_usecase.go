package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"sit_connector/internal/domain/entities"
	"sit_connector/internal/domain/sit"
	"sit_connector/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidServiceUID = errors.New("invalid service uid")
	ErrInvalidPaymentUID = errors.New("invalid electronic payment uid")
	ErrServiceNotFound   = errors.New("service not found")
)

// IPricingUseCase resolves unit costs for billable concepts.
//
// Fixed-price services come from the cached SIT service catalog. Variable
// services are priced by the provider itself from a taxable base, because
// the rate tables behind them live on the authority side.

type IPricingUseCase interface {
	GetFixedConceptCost(ctx context.Context, serviceUID string, quantity decimal.Decimal) (entities.Concept, error)
	GetVariableConceptCost(ctx context.Context, electronicPaymentUID, serviceUID string, taxableBase decimal.Decimal) (decimal.Decimal, error)
}

type PricingUseCase struct {
	catalog interfaces.IServiceCatalog
	api     interfaces.ISITProviderAPI
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(catalog interfaces.IServiceCatalog, api interfaces.ISITProviderAPI) *PricingUseCase {
	return &PricingUseCase{catalog: catalog, api: api}
}

// GetFixedConceptCost prices a fixed-cost service from the catalog.
// An unknown service id is a hard failure; it never defaults to zero cost.
func (u *PricingUseCase) GetFixedConceptCost(ctx context.Context, serviceUID string, quantity decimal.Decimal) (entities.Concept, error) {
	serviceID, err := strconv.Atoi(serviceUID)
	if err != nil {
		return entities.Concept{}, fmt.Errorf("%w: %q", ErrInvalidServiceUID, serviceUID)
	}

	service, err := u.catalog.GetService(ctx, serviceID)
	if err != nil {
		log.Printf("[pricing][usecase] catalog lookup failed service_uid=%s err=%v", serviceUID, err)
		return entities.Concept{}, err
	}
	if service.ServiceID == 0 {
		log.Printf("[pricing][usecase] service not found service_uid=%s", serviceUID)
		return entities.Concept{}, fmt.Errorf("%w: uid=%s", ErrServiceNotFound, serviceUID)
	}

	concept := entities.Concept{
		ConceptUID: strconv.Itoa(service.ServiceID),
		Quantity:   quantity,
		UnitCost:   service.UnitPrice,
		Total:      service.UnitPrice.Mul(quantity),
	}
	log.Printf("[pricing][usecase] fixed cost resolved service_uid=%s unit_cost=%s total=%s", serviceUID, concept.UnitCost, concept.Total)
	return concept, nil
}

// GetVariableConceptCost asks the provider to price a usage-based service
// from a taxable base. Both ids must parse before any remote call is made.
func (u *PricingUseCase) GetVariableConceptCost(ctx context.Context, electronicPaymentUID, serviceUID string, taxableBase decimal.Decimal) (decimal.Decimal, error) {
	paymentID, err := strconv.Atoi(electronicPaymentUID)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidPaymentUID, electronicPaymentUID)
	}
	serviceID, err := strconv.Atoi(serviceUID)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidServiceUID, serviceUID)
	}

	budget := sit.Budget{
		Quantity:            1,
		ElectronicPaymentID: paymentID,
		ServiceID:           serviceID,
		Value:               taxableBase,
	}

	total, err := u.api.GetVariableCost(ctx, budget)
	if err != nil {
		log.Printf("[pricing][usecase] variable cost failed payment_uid=%s service_uid=%s err=%v", electronicPaymentUID, serviceUID, err)
		return decimal.Decimal{}, err
	}
	log.Printf("[pricing][usecase] variable cost resolved payment_uid=%s service_uid=%s total=%s", electronicPaymentUID, serviceUID, total)
	return total, nil
}
