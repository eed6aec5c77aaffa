package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-estate/internal/config"
	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/utils"
	"github.com/MKhiriev/go-estate/models"
)

const createOrderPath = "/v1/orders"

type razorpayAdapter struct {
	client *utils.HTTPClient

	provider      string
	keyID         string
	keySecret     string
	webhookSecret string

	logger *logger.Logger
}

// NewRazorpayAdapter constructs a REST implementation of [PaymentAdapter].
// Requests authenticate with HTTP basic auth (key id, key secret) and are
// bounded by cfg.RequestTimeout.
//
// Returns an error if cfg.BaseURL cannot be parsed as a valid URL or the
// provider keys are missing.
func NewRazorpayAdapter(cfg config.Payment, logger *logger.Logger) (PaymentAdapter, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("payment provider keys are not configured")
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid payment base url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetBasicAuth(cfg.KeyID, cfg.KeySecret)

	provider := cfg.Provider
	if provider == "" {
		provider = config.DefaultPaymentProvider
	}

	return &razorpayAdapter{
		client:        client,
		provider:      provider,
		keyID:         cfg.KeyID,
		keySecret:     cfg.KeySecret,
		webhookSecret: cfg.WebhookSecret,
		logger:        logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateOrder implements [PaymentAdapter]. It POSTs the order to
// POST /v1/orders and decodes the provider order from the response.
func (a *razorpayAdapter) CreateOrder(ctx context.Context, req models.ProviderOrderRequest) (models.ProviderOrder, error) {
	log := logger.FromContext(ctx)

	var order models.ProviderOrder
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&order).
		Post(createOrderPath)
	if err != nil {
		log.Err(err).Str("func", "*razorpayAdapter.CreateOrder").Msg("order request failed")
		return models.ProviderOrder{}, fmt.Errorf("%w: create order request: %w", ErrProviderUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*razorpayAdapter.CreateOrder").Int("status", resp.StatusCode()).Msg("provider refused order")
		return models.ProviderOrder{}, err
	}
	if order.ID == "" {
		return models.ProviderOrder{}, fmt.Errorf("%w: provider returned an order without id", ErrProviderUnavailable)
	}

	log.Debug().Str("func", "*razorpayAdapter.CreateOrder").Str("provider_order_id", order.ID).Msg("provider order created")
	return order, nil
}

// VerifyCheckoutSignature implements [PaymentAdapter]. The signature is the
// hex HMAC-SHA256 of "orderID|paymentID" under the key secret.
func (a *razorpayAdapter) VerifyCheckoutSignature(providerOrderID, providerPaymentID, signature string) bool {
	return utils.VerifyHash([]byte(providerOrderID+"|"+providerPaymentID), signature, a.keySecret)
}

// VerifyWebhookSignature implements [PaymentAdapter]. Webhooks are refused
// when no webhook secret is configured.
func (a *razorpayAdapter) VerifyWebhookSignature(body []byte, signature string) bool {
	return utils.VerifyHash(body, signature, a.webhookSecret)
}

func (a *razorpayAdapter) Name() string {
	return a.provider
}

func (a *razorpayAdapter) KeyID() string {
	return a.keyID
}
