package handlers

import (
	"errors"
	"log"
	"net/http"

	request "sit_connector/internal/adapter/http/dto/request"
	response "sit_connector/internal/adapter/http/dto/response"
	"sit_connector/internal/usecase"
	"sit_connector/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid payment order payload", http.StatusBadRequest)

// PaymentOrderHandler handles HTTP requests for payment-order creation.

type PaymentOrderHandler struct {
	usecase usecase.IPaymentOrderUseCase
}

func NewPaymentOrderHandler(uc usecase.IPaymentOrderUseCase) *PaymentOrderHandler {
	return &PaymentOrderHandler{usecase: uc}
}

// CreatePaymentOrder registers a payment order with the SIT provider and
// returns the caller-side view of it, including the payment-format URL.
func (h *PaymentOrderHandler) CreatePaymentOrder(c *gin.Context) {
	var payload request.PaymentOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[order][handler] invalid payload err=%v", err)
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.GetPaymentRequest(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[order][handler] create failed transaction_uid=%s err=%v", payload.BaseTransactionUID, err)
		appErr := mapConnectorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] create success order_uid=%s", order.UID)

	c.JSON(http.StatusCreated, response.FromPaymentOrder(order))
}

func mapConnectorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidConceptUID),
		errors.Is(err, usecase.ErrInvalidServiceUID),
		errors.Is(err, usecase.ErrInvalidPaymentUID),
		errors.Is(err, usecase.ErrNoConcepts):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found in catalog", http.StatusNotFound)
	default:
		return pkg.NewDomainError("PROVIDER_ERROR", "Payment provider call failed", err, http.StatusBadGateway)
	}
}
