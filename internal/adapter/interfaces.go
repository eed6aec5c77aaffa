// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations with third-party services.
//
// The primary abstraction is [PaymentAdapter], which decouples the payment
// service from the provider's wire protocol. The package ships a
// Razorpay-compatible REST implementation ([NewRazorpayAdapter]) built on
// resty, and the provider's signature schemes for checkout callbacks and
// webhooks.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g.
// [ErrProviderUnavailable] for transport failures and 5xx answers).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-estate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/payment_adapter_mock.go -package=mock

// PaymentAdapter talks to the payment provider.
type PaymentAdapter interface {
	// CreateOrder opens a provider order for req.Amount in req.Currency and
	// returns the provider's order id.
	CreateOrder(ctx context.Context, req models.ProviderOrderRequest) (models.ProviderOrder, error)

	// VerifyCheckoutSignature reports whether signature authenticates the
	// (providerOrderID, providerPaymentID) pair returned by checkout.
	VerifyCheckoutSignature(providerOrderID, providerPaymentID, signature string) bool

	// VerifyWebhookSignature reports whether signature authenticates body.
	VerifyWebhookSignature(body []byte, signature string) bool

	// Name is recorded as the provider on orders and unlocks.
	Name() string

	// KeyID is the public key handed to checkout clients.
	KeyID() string
}
