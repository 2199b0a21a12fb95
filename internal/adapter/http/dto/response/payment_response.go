package response

import (
	"sit_connector/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	UID                string          `json:"uid"`
	PaymentDate        string          `json:"payment_date"`
	PaymentDocumentURL string          `json:"payment_document_url"`
	Total              decimal.Decimal `json:"total"`
	Status             string          `json:"status"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		UID:                p.UID,
		PaymentDate:        p.PaymentDate,
		PaymentDocumentURL: p.PaymentDocumentURL,
		Total:              p.Total,
		Status:             p.Status,
	}
}
