package handlers

import (
	"log"
	"net/http"

	response "sit_connector/internal/adapter/http/dto/response"
	"sit_connector/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for payment confirmation lookups.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// GetPayment validates a payment with the provider and returns its
// confirmation status.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	paymentUID := c.Param("payment_uid")
	log.Printf("[payment][handler] get start payment_uid=%s", paymentUID)

	payment, err := h.usecase.GetPayment(c.Request.Context(), paymentUID)
	if err != nil {
		log.Printf("[payment][handler] get failed payment_uid=%s err=%v", paymentUID, err)
		appErr := mapConnectorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] get success payment_uid=%s status=%s", paymentUID, payment.Status)

	c.JSON(http.StatusOK, response.FromPayment(payment))
}
