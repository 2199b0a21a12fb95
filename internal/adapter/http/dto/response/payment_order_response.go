package response

import (
	"time"

	"sit_connector/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PaymentOrderResponse struct {
	UID              string            `json:"uid"`
	IssueTime        *time.Time        `json:"issue_time,omitempty"`
	DueDate          *time.Time        `json:"due_date,omitempty"`
	Total            decimal.Decimal   `json:"total"`
	Status           string            `json:"status"`
	PaymentFormatURL string            `json:"payment_format_url"`
	Attributes       map[string]string `json:"attributes,omitempty"`
}

func FromPaymentOrder(o entities.PaymentOrder) PaymentOrderResponse {
	return PaymentOrderResponse{
		UID:              o.UID,
		IssueTime:        o.IssueTime,
		DueDate:          o.DueDate,
		Total:            o.Total,
		Status:           o.Status,
		PaymentFormatURL: o.PaymentFormatURL,
		Attributes:       o.Attributes,
	}
}
