package request

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPaymentOrderRequest_ToEntity(t *testing.T) {
	body := `{
		"requested_by": "JUAN PEREZ",
		"rfc": "PEPJ800101ABC",
		"address": "Av. Hidalgo 100",
		"base_transaction_uid": "TR-1",
		"concepts": [
			{"concept_uid": "12", "quantity": 3},
			{"concept_uid": "15", "quantity": 1.5}
		]
	}`

	var payload PaymentOrderRequest
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	e := payload.ToEntity()
	if e.RequestedBy != "JUAN PEREZ" || e.RFC != "PEPJ800101ABC" || e.BaseTransactionUID != "TR-1" {
		t.Fatalf("unexpected entity: %+v", e)
	}
	if len(e.Concepts) != 2 {
		t.Fatalf("expected 2 concepts, got %d", len(e.Concepts))
	}
	if e.Concepts[0].ConceptUID != "12" || !e.Concepts[0].Quantity.Equal(decimal.NewFromInt(3)) {
		t.Fatalf("unexpected first concept: %+v", e.Concepts[0])
	}
	// Decimal quantities survive JSON with no precision loss.
	if !e.Concepts[1].Quantity.Equal(decimal.RequireFromString("1.5")) {
		t.Fatalf("unexpected second quantity: %s", e.Concepts[1].Quantity)
	}
	if !e.Concepts[0].UnitCost.IsZero() || !e.Concepts[0].Total.IsZero() {
		t.Fatalf("unit cost must not be caller-supplied: %+v", e.Concepts[0])
	}
}
