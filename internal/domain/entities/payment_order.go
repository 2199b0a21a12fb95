package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttrPaymentFormatURL is the attribute key under which the payment-format
// document URL is published on a PaymentOrder.
const AttrPaymentFormatURL = "PaymentFormatUrl"

// Concept is one billable line of a payment-order request.
//
// ConceptUID is opaque to callers but must hold the provider's numeric
// service id in string form; the mapper rejects anything else.
type Concept struct {
	ConceptUID string          `json:"concept_uid"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	Total      decimal.Decimal `json:"total"`
}

// PaymentOrderRequest is the caller-side request to create a payment order.
type PaymentOrderRequest struct {
	RequestedBy        string    `json:"requested_by"`
	RFC                string    `json:"rfc"`
	Address            string    `json:"address"`
	BaseTransactionUID string    `json:"base_transaction_uid"`
	Concepts           []Concept `json:"concepts"`
}

// PaymentOrder is the caller-side view of a created payment order.
//
// IssueTime/DueDate are pointers on purpose: the provider returns them as
// locale-formatted strings that do not always parse, and an unparseable date
// leaves the field absent rather than zero-valued.
//
// PaymentFormatURL is a first-class field; Attributes stays open for
// forward-compatible extras and mirrors the format URL under
// AttrPaymentFormatURL for callers that read the attribute map.
type PaymentOrder struct {
	UID              string            `json:"uid"`
	IssueTime        *time.Time        `json:"issue_time,omitempty"`
	DueDate          *time.Time        `json:"due_date,omitempty"`
	Total            decimal.Decimal   `json:"total"`
	Status           string            `json:"status"`
	PaymentFormatURL string            `json:"payment_format_url"`
	Attributes       map[string]string `json:"attributes,omitempty"`
}

// SetAttribute stores an extension attribute, allocating the map lazily.
func (p *PaymentOrder) SetAttribute(key, value string) {
	if p.Attributes == nil {
		p.Attributes = map[string]string{}
	}
	p.Attributes[key] = value
}

// SetPaymentFormatURL sets the typed field and keeps the attribute map in
// sync.
func (p *PaymentOrder) SetPaymentFormatURL(url string) {
	p.PaymentFormatURL = url
	p.SetAttribute(AttrPaymentFormatURL, url)
}
