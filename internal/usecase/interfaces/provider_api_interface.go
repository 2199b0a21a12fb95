package interfaces

import (
	"context"

	"sit_connector/internal/domain/sit"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=provider_api_interface.go -destination=mocks/mock_provider_api_interface.go

// ISITProviderAPI abstracts the SIT electronic-payment endpoints.
//
// The connector consumes these five operations and nothing else. Failures
// are returned verbatim; no retry or backoff happens behind this interface.
type ISITProviderAPI interface {
	CreatePaymentRequest(ctx context.Context, req sit.PaymentRequest) (sit.PaymentOrder, error)
	GetVariableCost(ctx context.Context, budget sit.Budget) (decimal.Decimal, error)
	ValidatePayment(ctx context.Context, electronicPaymentID int) (sit.Payment, error)
	GetPaymentFormat(ctx context.Context, electronicPaymentID int) (string, error)
	GetServicesList(ctx context.Context) ([]sit.Service, error)
}
