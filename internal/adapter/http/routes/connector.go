package routes

import (
	"sit_connector/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPaymentOrders = "/payment-orders"
	PathConcepts      = "/concepts"
	PathPayments      = "/payments"
)

func addConnectorRoutes(rg *gin.RouterGroup, orderHandler *handlers.PaymentOrderHandler, pricingHandler *handlers.PricingHandler, paymentHandler *handlers.PaymentHandler) {
	orders := rg.Group(PathPaymentOrders)
	{
		orders.POST("", orderHandler.CreatePaymentOrder)
	}

	concepts := rg.Group(PathConcepts)
	{
		concepts.GET("/:service_uid/fixed-cost", pricingHandler.GetFixedConceptCost)
		concepts.GET("/:service_uid/variable-cost", pricingHandler.GetVariableConceptCost)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:payment_uid", paymentHandler.GetPayment)
	}
}
