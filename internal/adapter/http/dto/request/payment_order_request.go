package request

import (
	"sit_connector/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ConceptRequest struct {
	ConceptUID string          `json:"concept_uid" binding:"required"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// PaymentOrderRequest is the caller-facing payload to create a payment order.
//
// Concept unit costs are never accepted from the caller; they are resolved
// through the pricing endpoints and by the provider itself.
type PaymentOrderRequest struct {
	RequestedBy        string           `json:"requested_by" binding:"required"`
	RFC                string           `json:"rfc" binding:"required"`
	Address            string           `json:"address"`
	BaseTransactionUID string           `json:"base_transaction_uid" binding:"required"`
	Concepts           []ConceptRequest `json:"concepts" binding:"required"`
}

func (r PaymentOrderRequest) ToEntity() entities.PaymentOrderRequest {
	concepts := make([]entities.Concept, 0, len(r.Concepts))
	for _, c := range r.Concepts {
		concepts = append(concepts, entities.Concept{
			ConceptUID: c.ConceptUID,
			Quantity:   c.Quantity,
		})
	}

	return entities.PaymentOrderRequest{
		RequestedBy:        r.RequestedBy,
		RFC:                r.RFC,
		Address:            r.Address,
		BaseTransactionUID: r.BaseTransactionUID,
		Concepts:           concepts,
	}
}
