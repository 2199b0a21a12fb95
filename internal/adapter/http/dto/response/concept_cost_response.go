package response

import (
	"sit_connector/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ConceptCostResponse struct {
	ConceptUID string          `json:"concept_uid"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	Total      decimal.Decimal `json:"total"`
}

func FromConcept(c entities.Concept) ConceptCostResponse {
	return ConceptCostResponse{
		ConceptUID: c.ConceptUID,
		Quantity:   c.Quantity,
		UnitCost:   c.UnitCost,
		Total:      c.Total,
	}
}

type VariableCostResponse struct {
	Total decimal.Decimal `json:"total"`
}
