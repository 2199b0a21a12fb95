package handlers

import (
	"log"
	"net/http"
	"strings"

	response "sit_connector/internal/adapter/http/dto/response"
	"sit_connector/internal/usecase"
	"sit_connector/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var errInvalidPricingInput = pkg.NewDomainErrorSimple("INVALID_PRICING_INPUT", "Invalid pricing parameters", http.StatusBadRequest)

// PricingHandler handles HTTP requests for concept cost resolution.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// GetFixedConceptCost resolves a fixed-price concept from the service
// catalog. Quantity comes from the `quantity` query parameter.
func (h *PricingHandler) GetFixedConceptCost(c *gin.Context) {
	serviceUID := c.Param("service_uid")

	quantity, err := parseDecimalQuery(c, "quantity")
	if err != nil {
		log.Printf("[pricing][handler] invalid quantity service_uid=%s err=%v", serviceUID, err)
		c.JSON(errInvalidPricingInput.HTTPStatus, errInvalidPricingInput.ToHTTPError())
		return
	}

	concept, err := h.usecase.GetFixedConceptCost(c.Request.Context(), serviceUID, quantity)
	if err != nil {
		log.Printf("[pricing][handler] fixed cost failed service_uid=%s err=%v", serviceUID, err)
		appErr := mapConnectorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConcept(concept))
}

// GetVariableConceptCost asks the provider to price a usage-based concept
// from the `taxable_base` query parameter.
func (h *PricingHandler) GetVariableConceptCost(c *gin.Context) {
	serviceUID := c.Param("service_uid")
	paymentUID := c.Query("payment_uid")

	taxableBase, err := parseDecimalQuery(c, "taxable_base")
	if err != nil {
		log.Printf("[pricing][handler] invalid taxable_base service_uid=%s err=%v", serviceUID, err)
		c.JSON(errInvalidPricingInput.HTTPStatus, errInvalidPricingInput.ToHTTPError())
		return
	}

	total, err := h.usecase.GetVariableConceptCost(c.Request.Context(), paymentUID, serviceUID, taxableBase)
	if err != nil {
		log.Printf("[pricing][handler] variable cost failed service_uid=%s payment_uid=%s err=%v", serviceUID, paymentUID, err)
		appErr := mapConnectorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.VariableCostResponse{Total: total})
}

func parseDecimalQuery(c *gin.Context, name string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(c.Query(name))
	return decimal.NewFromString(raw)
}
