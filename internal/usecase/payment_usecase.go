package usecase

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"sit_connector/internal/domain/entities"
	"sit_connector/internal/domain/sit"
	"sit_connector/internal/usecase/interfaces"
)

// IPaymentUseCase retrieves payment confirmations from the SIT provider.

type IPaymentUseCase interface {
	GetPayment(ctx context.Context, electronicPaymentUID string) (entities.Payment, error)
}

type PaymentUseCase struct {
	api interfaces.ISITProviderAPI
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(api interfaces.ISITProviderAPI) *PaymentUseCase {
	return &PaymentUseCase{api: api}
}

// GetPayment validates a payment upstream and maps the confirmation into the
// caller vocabulary. Always a fresh remote call; confirmations are not
// cached.
func (u *PaymentUseCase) GetPayment(ctx context.Context, electronicPaymentUID string) (entities.Payment, error) {
	paymentID, err := strconv.Atoi(electronicPaymentUID)
	if err != nil {
		return entities.Payment{}, fmt.Errorf("%w: %q", ErrInvalidPaymentUID, electronicPaymentUID)
	}

	sitPayment, err := u.api.ValidatePayment(ctx, paymentID)
	if err != nil {
		log.Printf("[payment][usecase] validate failed payment_uid=%s err=%v", electronicPaymentUID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] validate success payment_uid=%s status=%s", electronicPaymentUID, sitPayment.Status)

	return mapSITPaymentToPayment(sitPayment), nil
}

func mapSITPaymentToPayment(sitPayment sit.Payment) entities.Payment {
	return entities.Payment{
		UID:                strconv.Itoa(sitPayment.CollectionID),
		PaymentDate:        sitPayment.CollectionDate,
		PaymentDocumentURL: sitPayment.ReceiptURL,
		Total:              sitPayment.Total,
		Status:             sitPayment.Status,
	}
}
