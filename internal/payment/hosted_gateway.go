package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"feastly-be/internal/logger"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.paylane.dev"

type hostedGateway struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	successURL string
	cancelURL  string
}

// NewHostedGateway returns a Gateway against the hosted-checkout provider.
// frontendURL is where the customer lands after paying or cancelling.
func NewHostedGateway(apiKey, frontendURL string) Gateway {
	if apiKey == "" {
		logger.L().Warn("payment API key is empty")
	}

	return &hostedGateway{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		successURL: frontendURL + "/verify?success=true&orderId=",
		cancelURL:  frontendURL + "/verify?success=false&orderId=",
	}
}

func (g *hostedGateway) CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error) {
	log := logger.FromCtx(ctx).With(
		zap.Uint("order_id", params.OrderID),
		zap.Float64("amount", params.Amount),
		zap.Int("items", len(params.Items)),
	)

	currency := params.Currency
	if currency == "" {
		currency = "usd"
	}

	type bodyLineItem struct {
		Name       string `json:"name"`
		UnitAmount int64  `json:"unit_amount"`
		Quantity   int    `json:"quantity"`
		Currency   string `json:"currency"`
	}

	lineItems := make([]bodyLineItem, 0, len(params.Items)+1)
	for _, item := range params.Items {
		lineItems = append(lineItems, bodyLineItem{
			Name:       item.Name,
			UnitAmount: toMinorUnits(item.Price),
			Quantity:   item.Quantity,
			Currency:   currency,
		})
	}
	if params.DeliveryFee > 0 {
		lineItems = append(lineItems, bodyLineItem{
			Name:       "Delivery Charges",
			UnitAmount: toMinorUnits(params.DeliveryFee),
			Quantity:   1,
			Currency:   currency,
		})
	}

	body := map[string]interface{}{
		"reference_id":   fmt.Sprintf("order-%d", params.OrderID),
		"mode":           "payment",
		"currency":       currency,
		"request_amount": toMinorUnits(params.Amount),
		"line_items":     lineItems,
		"customer_email": params.CustomerEmail,
		"success_url":    fmt.Sprintf("%s%d", g.successURL, params.OrderID),
		"cancel_url":     fmt.Sprintf("%s%d", g.cancelURL, params.OrderID),
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		log.Error("failed to marshal checkout request", zap.Error(err))
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/v1/checkout/sessions", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("failed creating request", zap.Error(err))
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("checkout request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed reading checkout response", zap.Error(err))
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error("checkout provider rejected the request",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody),
		)
		return nil, fmt.Errorf("checkout provider returned status %d", resp.StatusCode)
	}

	var session CheckoutSession
	if err := json.Unmarshal(respBody, &session); err != nil {
		log.Error("failed decoding checkout response", zap.Error(err))
		return nil, err
	}
	if session.URL == "" {
		return nil, fmt.Errorf("checkout provider returned no session url")
	}

	log.Info("checkout session created", zap.String("session_id", session.ID))
	return &session, nil
}

// toMinorUnits converts a decimal price into the provider's integer minor
// units (cents).
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
