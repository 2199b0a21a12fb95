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
)

var (
	ErrInvalidConceptUID = errors.New("invalid concept uid")
	ErrNoConcepts        = errors.New("payment order request has no concepts")
)

// IPaymentOrderUseCase exposes payment-order creation against the SIT
// provider.
//
// GetPaymentRequest maps the caller request into the provider vocabulary,
// creates the order, and maps the provider response back.

type IPaymentOrderUseCase interface {
	GetPaymentRequest(ctx context.Context, request entities.PaymentOrderRequest) (entities.PaymentOrder, error)
}

type PaymentOrderUseCase struct {
	api interfaces.ISITProviderAPI
}

var _ IPaymentOrderUseCase = (*PaymentOrderUseCase)(nil)

func NewPaymentOrderUseCase(api interfaces.ISITProviderAPI) *PaymentOrderUseCase {
	return &PaymentOrderUseCase{api: api}
}

// GetPaymentRequest creates a payment order on the SIT side.
//
// Two provider calls happen in sequence: CreatePaymentRequest, then
// GetPaymentFormat for the new order id. The order response already embeds a
// format URL, but the follow-up value is authoritative and overwrites it.
// Errors from either call propagate verbatim; there is no retry and no
// rollback — a create that succeeds before a failed format fetch leaves the
// order existing upstream.
func (u *PaymentOrderUseCase) GetPaymentRequest(ctx context.Context, request entities.PaymentOrderRequest) (entities.PaymentOrder, error) {
	log.Printf("[order][usecase] create start transaction_uid=%s concepts=%d", request.BaseTransactionUID, len(request.Concepts))
	if u.api == nil {
		return entities.PaymentOrder{}, errors.New("provider api not configured")
	}
	if len(request.Concepts) == 0 {
		log.Printf("[order][usecase] empty concept list transaction_uid=%s", request.BaseTransactionUID)
		return entities.PaymentOrder{}, ErrNoConcepts
	}

	sitRequest, err := mapPaymentRequestToSIT(request)
	if err != nil {
		log.Printf("[order][usecase] request mapping failed transaction_uid=%s err=%v", request.BaseTransactionUID, err)
		return entities.PaymentOrder{}, err
	}

	sitOrder, err := u.api.CreatePaymentRequest(ctx, sitRequest)
	if err != nil {
		log.Printf("[order][usecase] provider create failed transaction_uid=%s err=%v", request.BaseTransactionUID, err)
		return entities.PaymentOrder{}, err
	}
	log.Printf("[order][usecase] provider create success transaction_uid=%s order_id=%d", request.BaseTransactionUID, sitOrder.ElectronicPaymentID)

	order := mapSITOrderToPaymentOrder(sitOrder)

	formatURL, err := u.api.GetPaymentFormat(ctx, sitOrder.ElectronicPaymentID)
	if err != nil {
		log.Printf("[order][usecase] format url fetch failed order_id=%d err=%v", sitOrder.ElectronicPaymentID, err)
		return entities.PaymentOrder{}, err
	}
	order.SetPaymentFormatURL(formatURL)
	log.Printf("[order][usecase] create success order_uid=%s status=%s", order.UID, order.Status)

	return order, nil
}

func mapPaymentRequestToSIT(request entities.PaymentOrderRequest) (sit.PaymentRequest, error) {
	services, err := mapConceptsToServiceOrders(request.Concepts)
	if err != nil {
		return sit.PaymentRequest{}, err
	}

	return sit.PaymentRequest{
		Taxpayer:       request.RequestedBy,
		RFC:            request.RFC,
		Address:        request.Address,
		Services:       services,
		TransactionRef: request.BaseTransactionUID,
	}, nil
}

func mapConceptsToServiceOrders(concepts []entities.Concept) ([]sit.ServiceOrder, error) {
	services := make([]sit.ServiceOrder, 0, len(concepts))

	for _, concept := range concepts {
		serviceID, err := strconv.Atoi(concept.ConceptUID)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidConceptUID, concept.ConceptUID)
		}
		services = append(services, sit.ServiceOrder{
			ServiceID: serviceID,
			// SIT only accepts whole units; fractional quantities truncate.
			Quantity: int(concept.Quantity.IntPart()),
		})
	}

	return services, nil
}

func mapSITOrderToPaymentOrder(sitOrder sit.PaymentOrder) entities.PaymentOrder {
	order := entities.PaymentOrder{
		UID:    strconv.Itoa(sitOrder.ElectronicPaymentID),
		Total:  sitOrder.Total,
		Status: strconv.Itoa(sitOrder.StatusID),
	}

	// Unparseable provider dates are tolerated; the field just stays unset.
	if t, ok := sit.ParseDate(sitOrder.GenerationDate); ok {
		order.IssueTime = &t
	}
	if t, ok := sit.ParseDate(sitOrder.DueDate); ok {
		order.DueDate = &t
	}

	order.SetPaymentFormatURL(sitOrder.PaymentFormatURL)

	return order
}
