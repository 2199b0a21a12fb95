package sit

import (
	"github.com/shopspring/decimal"
)

func init() {
	// SIT endpoints expect plain JSON numbers for money fields.
	decimal.MarshalJSONWithoutQuotes = true
}

// Wire DTOs exchanged with the SIT electronic-payment API.
//
// Field names follow the provider's JSON contract (Spanish), so these types
// never leak past the usecase layer; callers only see the entities package.

// PaymentRequest is the "solicitud" payload sent to create a payment order.
type PaymentRequest struct {
	Taxpayer       string         `json:"contribuyente"`
	RFC            string         `json:"rfc"`
	Address        string         `json:"direccion"`
	Services       []ServiceOrder `json:"servicios"`
	TransactionRef string         `json:"tramite"`
}

// ServiceOrder is one (service id, quantity) line inside a PaymentRequest.
type ServiceOrder struct {
	ServiceID int `json:"idServicio"`
	Quantity  int `json:"cantidad"`
}

// PaymentOrder is the "ordenPago" returned after creating a payment request.
//
// Both date fields arrive as locale-formatted strings and may be unparseable;
// the mapper treats them as best-effort (see ParseDate).
type PaymentOrder struct {
	ElectronicPaymentID int             `json:"idPagoElectronico"`
	GenerationDate      string          `json:"fechaGeneracion"`
	DueDate             string          `json:"fechaVencimiento"`
	Total               decimal.Decimal `json:"total"`
	StatusID            int             `json:"idEstatus"`
	PaymentFormatURL    string          `json:"urlFormatoPago"`
}

// Service is one "servicio" entry of the provider's service catalog.
type Service struct {
	ServiceID   int             `json:"idServicio"`
	Description string          `json:"descripcion,omitempty"`
	UnitPrice   decimal.Decimal `json:"importe"`
}

// Budget is the "presupuesto" payload used to compute a variable concept
// cost from a taxable base. Quantity is always 1 on this endpoint.
type Budget struct {
	Quantity            int             `json:"cantidad"`
	ElectronicPaymentID int             `json:"idPagoElectronico"`
	ServiceID           int             `json:"idServicio"`
	Value               decimal.Decimal `json:"valor"`
}

// Payment is the "pago" confirmation returned by the validate-payment
// endpoint.
type Payment struct {
	CollectionID   int             `json:"idCobro"`
	CollectionDate string          `json:"fechaCobro"`
	ReceiptURL     string          `json:"urlRecibo"`
	Total          decimal.Decimal `json:"total"`
	Status         string          `json:"estatus"`
}
