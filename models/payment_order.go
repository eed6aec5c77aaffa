package models

import "time"

// PaymentOrderStatus is the reconciliation state of a payment order.
// Transitions are CREATED→PAID or CREATED→FAILED, never reversed.
type PaymentOrderStatus string

const (
	PaymentCreated PaymentOrderStatus = "CREATED"
	PaymentPaid    PaymentOrderStatus = "PAID"
	PaymentFailed  PaymentOrderStatus = "FAILED"
)

// PaymentOrder is a provider-tracked intent to pay for an unlock.
type PaymentOrder struct {
	ID        string             `json:"id"`
	Provider  string             `json:"provider"`
	Status    PaymentOrderStatus `json:"status"`
	UserID    string             `json:"user_id"`
	ListingID string             `json:"listing_id"`

	// Amount is expressed in minor currency units (e.g. paise).
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`

	// ProviderOrderID is globally unique.
	ProviderOrderID   string  `json:"provider_order_id"`
	ProviderPaymentID *string `json:"provider_payment_id,omitempty"`
	ProviderSignature *string `json:"-"`

	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the PaymentOrder model.
func (p PaymentOrder) TableName() string {
	return "payment_orders"
}

// PaymentOrderSettlement is the provider evidence recorded when an order
// leaves the CREATED state.
type PaymentOrderSettlement struct {
	ProviderOrderID   string
	ProviderPaymentID string
	ProviderSignature string
	Status            PaymentOrderStatus
	SettledAt         time.Time
}

// ProviderOrderRequest is sent to the payment provider to open an order.
type ProviderOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// ProviderOrder is the provider's view of a created order.
type ProviderOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// CreateOrderRequest is the customer request to start a paid unlock.
type CreateOrderRequest struct {
	ListingID string `json:"listing_id" validate:"required"`
}

// CreateOrderResult is returned to the customer after order creation.
// When AlreadyUnlocked is true no order was created.
type CreateOrderResult struct {
	AlreadyUnlocked bool   `json:"already_unlocked"`
	OrderID         string `json:"order_id,omitempty"`
	ProviderOrderID string `json:"provider_order_id,omitempty"`
	Amount          int64  `json:"amount,omitempty"`
	Currency        string `json:"currency,omitempty"`
	KeyID           string `json:"key_id,omitempty"`
}

// VerifyPaymentRequest carries the provider callback tuple supplied by the
// customer's client after checkout.
type VerifyPaymentRequest struct {
	ProviderOrderID   string `json:"provider_order_id" validate:"required"`
	ProviderPaymentID string `json:"provider_payment_id" validate:"required"`
	ProviderSignature string `json:"provider_signature" validate:"required"`
	ListingID         string `json:"listing_id" validate:"required"`
}

// VerifyPaymentResult reports a successful reconciliation.
type VerifyPaymentResult struct {
	Unlocked bool `json:"unlocked"`
}

// PaymentWebhookEvent is the subset of the provider webhook payload used to
// reconcile captured payments.
type PaymentWebhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
				Status  string `json:"status"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}
