package entities

import "github.com/shopspring/decimal"

// Payment is the caller-side view of a confirmed (collected) payment.
//
// PaymentDate is kept as the provider-formatted string: confirmation lookups
// are pass-through reads and the connector does not reinterpret the value.
type Payment struct {
	UID                string          `json:"uid"`
	PaymentDate        string          `json:"payment_date"`
	PaymentDocumentURL string          `json:"payment_document_url"`
	Total              decimal.Decimal `json:"total"`
	Status             string          `json:"status"`
}
