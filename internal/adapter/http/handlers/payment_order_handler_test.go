package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"sit_connector/internal/adapter/http/handlers/mocks"
	"sit_connector/internal/domain/entities"
	"sit_connector/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPaymentOrderHandler_CreatePaymentOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *PaymentOrderHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/payment-orders", h.CreatePaymentOrder)
		return r
	}

	validBody := `{
		"requested_by": "JUAN PEREZ",
		"rfc": "PEPJ800101ABC",
		"address": "Av. Hidalgo 100",
		"base_transaction_uid": "TR-1",
		"concepts": [{"concept_uid": "12", "quantity": 3}]
	}`

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrderUseCase(ctrl)
		r := newRouter(NewPaymentOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/payment-orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrderUseCase(ctrl)
		r := newRouter(NewPaymentOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/payment-orders", bytes.NewBufferString(`{"rfc":"X"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("parse error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrderUseCase(ctrl)
		r := newRouter(NewPaymentOrderHandler(uc))

		uc.EXPECT().GetPaymentRequest(gomock.Any(), gomock.Any()).
			Return(entities.PaymentOrder{}, fmt.Errorf("%w: %q", usecase.ErrInvalidConceptUID, "abc"))

		req := httptest.NewRequest(http.MethodPost, "/v1/payment-orders", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("provider error maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrderUseCase(ctrl)
		r := newRouter(NewPaymentOrderHandler(uc))

		uc.EXPECT().GetPaymentRequest(gomock.Any(), gomock.Any()).
			Return(entities.PaymentOrder{}, errors.New("sit provider: status 500"))

		req := httptest.NewRequest(http.MethodPost, "/v1/payment-orders", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success returns 201 with mapped order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrderUseCase(ctrl)
		r := newRouter(NewPaymentOrderHandler(uc))

		order := entities.PaymentOrder{
			UID:    "9001",
			Total:  decimal.RequireFromString("300.00"),
			Status: "1",
		}
		order.SetPaymentFormatURL("https://x/f/9001")

		uc.EXPECT().GetPaymentRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, req entities.PaymentOrderRequest) (entities.PaymentOrder, error) {
				if len(req.Concepts) != 1 || req.Concepts[0].ConceptUID != "12" {
					t.Fatalf("payload not mapped to entity: %+v", req)
				}
				if !req.Concepts[0].Quantity.Equal(decimal.NewFromInt(3)) {
					t.Fatalf("unexpected quantity: %s", req.Concepts[0].Quantity)
				}
				return order, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/payment-orders", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}

		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["uid"] != "9001" || got["status"] != "1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if got["payment_format_url"] != "https://x/f/9001" {
			t.Fatalf("missing format url: %s", w.Body.String())
		}
	})
}
