package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"sit_connector/internal/domain/sit"
	"sit_connector/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var ErrMissingSITBaseURL = errors.New("missing SIT_BASE_URL")

const defaultHTTPTimeoutSeconds = 30

// SITClient talks JSON-over-HTTP to the SIT electronic-payment endpoints.
//
// It is a thin transport: provider failures (non-2xx statuses, malformed
// payloads, timeouts) surface to the caller unchanged, with no retry.
type SITClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	mockMode   bool
}

var _ interfaces.ISITProviderAPI = (*SITClient)(nil)

// NewSITClientFromEnv builds a client from environment variables:
//   - SIT_BASE_URL (required unless mock mode)
//   - SIT_API_KEY (optional; sent as Authorization bearer when set)
//   - SIT_HTTP_TIMEOUT_SECONDS (default 30)
//   - SIT_PROVIDER_MOCK (local development; canned responses)
func NewSITClientFromEnv() (*SITClient, error) {
	if isProviderMockEnabled() {
		log.Printf("[provider][client] mock mode enabled")
		return &SITClient{mockMode: true}, nil
	}

	baseURL := strings.TrimRight(strings.TrimSpace(os.Getenv("SIT_BASE_URL")), "/")
	if baseURL == "" {
		log.Printf("[provider][client] missing SIT_BASE_URL")
		return nil, ErrMissingSITBaseURL
	}

	timeout := defaultHTTPTimeoutSeconds
	if v := strings.TrimSpace(os.Getenv("SIT_HTTP_TIMEOUT_SECONDS")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			timeout = parsed
		}
	}

	log.Printf("[provider][client] SIT client initialized base_url=%s timeout=%ds", baseURL, timeout)
	return &SITClient{
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(os.Getenv("SIT_API_KEY")),
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}, nil
}

func (c *SITClient) CreatePaymentRequest(ctx context.Context, req sit.PaymentRequest) (sit.PaymentOrder, error) {
	if c.mockMode {
		return c.mockOrder(req), nil
	}

	var order sit.PaymentOrder
	if err := c.doJSON(ctx, http.MethodPost, "/api/pagoElectronico/solicitud", req, &order); err != nil {
		return sit.PaymentOrder{}, err
	}
	return order, nil
}

func (c *SITClient) GetVariableCost(ctx context.Context, budget sit.Budget) (decimal.Decimal, error) {
	if c.mockMode {
		return budget.Value, nil
	}

	var total decimal.Decimal
	if err := c.doJSON(ctx, http.MethodPost, "/api/pagoElectronico/presupuesto", budget, &total); err != nil {
		return decimal.Decimal{}, err
	}
	return total, nil
}

func (c *SITClient) ValidatePayment(ctx context.Context, electronicPaymentID int) (sit.Payment, error) {
	if c.mockMode {
		return sit.Payment{
			CollectionID:   electronicPaymentID,
			CollectionDate: time.Now().Format("02/01/2006"),
			ReceiptURL:     fmt.Sprintf("https://sit.local/recibos/%d", electronicPaymentID),
			Total:          decimal.Zero,
			Status:         "Pagado",
		}, nil
	}

	var payment sit.Payment
	path := fmt.Sprintf("/api/pagoElectronico/validar/%d", electronicPaymentID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &payment); err != nil {
		return sit.Payment{}, err
	}
	return payment, nil
}

func (c *SITClient) GetPaymentFormat(ctx context.Context, electronicPaymentID int) (string, error) {
	if c.mockMode {
		return fmt.Sprintf("https://sit.local/formatos/%d", electronicPaymentID), nil
	}

	path := fmt.Sprintf("/api/pagoElectronico/formatoPago/%d", electronicPaymentID)
	body, err := c.doRaw(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", err
	}

	// The endpoint returns the URL either as a JSON string or as plain text.
	var url string
	if err := json.Unmarshal(body, &url); err == nil {
		return url, nil
	}
	return strings.TrimSpace(string(body)), nil
}

func (c *SITClient) GetServicesList(ctx context.Context) ([]sit.Service, error) {
	if c.mockMode {
		return []sit.Service{
			{ServiceID: 12, Description: "Certificado de libertad de gravamen", UnitPrice: decimal.NewFromInt(100)},
			{ServiceID: 15, Description: "Inscripción de escritura", UnitPrice: decimal.RequireFromString("257.50")},
		}, nil
	}

	var services []sit.Service
	if err := c.doJSON(ctx, http.MethodGet, "/api/pagoElectronico/servicios", nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *SITClient) doJSON(ctx context.Context, method, path string, in, out any) error {
	body, err := c.doRaw(ctx, method, path, in)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		log.Printf("[provider][client] response unmarshal failed path=%s err=%v", path, err)
		return fmt.Errorf("sit provider: decoding %s response: %w", path, err)
	}
	return nil
}

func (c *SITClient) doRaw(ctx context.Context, method, path string, in any) ([]byte, error) {
	var reqBody io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	log.Printf("[provider][client] request start method=%s path=%s", method, path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[provider][client] request failed method=%s path=%s err=%v", method, path, err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[provider][client] request non-2xx method=%s path=%s status=%d", method, path, resp.StatusCode)
		return nil, fmt.Errorf("sit provider: %s %s returned status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	log.Printf("[provider][client] request success method=%s path=%s status=%d", method, path, resp.StatusCode)
	return body, nil
}

func (c *SITClient) mockOrder(req sit.PaymentRequest) sit.PaymentOrder {
	total := decimal.Zero
	for _, svc := range req.Services {
		total = total.Add(decimal.NewFromInt(int64(svc.Quantity * 100)))
	}
	id := int(time.Now().UTC().Unix() % 1_000_000)
	now := time.Now()
	return sit.PaymentOrder{
		ElectronicPaymentID: id,
		GenerationDate:      now.Format("02/01/2006 15:04:05"),
		DueDate:             now.AddDate(0, 0, 30).Format("02/01/2006"),
		Total:               total,
		StatusID:            1,
		PaymentFormatURL:    fmt.Sprintf("https://sit.local/formatos/%d", id),
	}
}

func isProviderMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("SIT_PROVIDER_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
