// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-estate/internal/adapter"
	"github.com/MKhiriev/go-estate/internal/config"
	"github.com/MKhiriev/go-estate/internal/locker"
	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/store"
	"github.com/MKhiriev/go-estate/internal/utils"
	"github.com/MKhiriev/go-estate/internal/validators"
	"github.com/MKhiriev/go-estate/models"
)

// webhookPaymentCaptured is the only provider event that settles an order.
const webhookPaymentCaptured = "payment.captured"

// paymentService reconciles provider orders with the unlock ledger.
//
// An order moves CREATED→PAID or CREATED→FAILED through a conditional write,
// so concurrent verification and webhook deliveries settle it exactly once.
// Order creation is serialized per (user, listing) by the locker.
type paymentService struct {
	listingRepository      store.ListingRepository
	unlockRepository       store.UnlockRepository
	paymentOrderRepository store.PaymentOrderRepository

	// provider is nil when payments are disabled.
	provider adapter.PaymentAdapter
	locker   locker.Locker

	unlockFee int64
	currency  string

	validator validators.Validator
	ids       idGenerator
	now       func() time.Time
	logger    *logger.Logger
}

// NewPaymentService constructs the payment service. A nil provider yields a
// service whose operations fail with ErrPaymentsDisabled.
func NewPaymentService(storages *store.Storages, provider adapter.PaymentAdapter, lock locker.Locker, cfg config.Payment, logger *logger.Logger) PaymentService {
	fee := cfg.UnlockFee
	if fee <= 0 {
		fee = config.DefaultUnlockFee
	}
	currency := cfg.Currency
	if currency == "" {
		currency = config.DefaultCurrency
	}
	if lock == nil {
		lock = locker.NewLocalLocker()
	}

	return &paymentService{
		listingRepository:      storages.ListingRepository,
		unlockRepository:       storages.UnlockRepository,
		paymentOrderRepository: storages.PaymentOrderRepository,
		provider:               provider,
		locker:                 lock,
		unlockFee:              fee,
		currency:               currency,
		validator:              validators.NewRequestValidator(),
		ids:                    utils.NewUUIDGenerator(),
		now:                    utcNow,
		logger:                 logger,
	}
}

func (s *paymentService) Enabled() bool {
	return s.provider != nil
}

// CreatePaymentOrder opens a provider order for unlocking req.ListingID. An
// existing unlock short-circuits with AlreadyUnlocked and a still open order
// of the same pair is returned instead of a new one.
func (s *paymentService) CreatePaymentOrder(ctx context.Context, caller models.AuthenticatedUser, req models.CreateOrderRequest) (models.CreateOrderResult, error) {
	log := logger.FromContext(ctx)

	if !s.Enabled() {
		return models.CreateOrderResult{}, ErrPaymentsDisabled
	}
	if caller.UserID == "" {
		return models.CreateOrderResult{}, ErrUnauthorized
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.CreateOrderResult{}, mapValidationError(err)
	}

	listing, err := s.listingRepository.GetListing(ctx, req.ListingID)
	if err != nil {
		return models.CreateOrderResult{}, mapStoreError(err)
	}
	if listing.Status != models.ListingLive {
		return models.CreateOrderResult{}, fmt.Errorf("%w: listing is %s", ErrInvalidState, listing.Status)
	}

	release, err := s.locker.Lock(ctx, orderLockKey(caller.UserID, req.ListingID))
	if err != nil {
		log.Err(err).Str("func", "*paymentService.CreatePaymentOrder").Msg("error acquiring order lock")
		return models.CreateOrderResult{}, mapLockError(err)
	}
	defer release()

	unlocked, err := s.unlockRepository.UnlockExists(ctx, caller.UserID, req.ListingID)
	if err != nil {
		return models.CreateOrderResult{}, mapStoreError(err)
	}
	if unlocked {
		return models.CreateOrderResult{AlreadyUnlocked: true}, nil
	}

	existing, err := s.paymentOrderRepository.FindCreatedPaymentOrder(ctx, caller.UserID, req.ListingID)
	switch {
	case err == nil:
		log.Debug().Str("func", "*paymentService.CreatePaymentOrder").Str("order_id", existing.ID).Msg("reusing open payment order")
		return s.orderResult(existing), nil
	case !errors.Is(err, store.ErrPaymentOrderNotFound):
		return models.CreateOrderResult{}, mapStoreError(err)
	}

	orderID := s.ids.Generate()
	providerOrder, err := s.provider.CreateOrder(ctx, models.ProviderOrderRequest{
		Amount:   s.unlockFee,
		Currency: s.currency,
		Receipt:  orderID,
		Notes: map[string]string{
			"user_id":    caller.UserID,
			"listing_id": req.ListingID,
		},
	})
	if err != nil {
		log.Err(err).Str("func", "*paymentService.CreatePaymentOrder").Msg("payment provider refused order")
		return models.CreateOrderResult{}, mapAdapterError(err)
	}

	now := s.now()
	order := models.PaymentOrder{
		ID:              orderID,
		Provider:        s.provider.Name(),
		Status:          models.PaymentCreated,
		UserID:          caller.UserID,
		ListingID:       req.ListingID,
		Amount:          s.unlockFee,
		Currency:        s.currency,
		ProviderOrderID: providerOrder.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err = s.paymentOrderRepository.CreatePaymentOrder(ctx, order); err != nil {
		log.Err(err).Str("func", "*paymentService.CreatePaymentOrder").Str("provider_order_id", providerOrder.ID).Msg("error saving payment order")
		return models.CreateOrderResult{}, mapStoreError(err)
	}

	log.Info().
		Str("func", "*paymentService.CreatePaymentOrder").
		Str("order_id", order.ID).
		Str("provider_order_id", order.ProviderOrderID).
		Msg("payment order created")
	return s.orderResult(order), nil
}

// VerifyPayment checks the checkout signature and, when valid, settles the
// order and records the paid unlock. Replaying a verified payment succeeds
// without side effects.
func (s *paymentService) VerifyPayment(ctx context.Context, caller models.AuthenticatedUser, req models.VerifyPaymentRequest) (models.VerifyPaymentResult, error) {
	log := logger.FromContext(ctx)

	if !s.Enabled() {
		return models.VerifyPaymentResult{}, ErrPaymentsDisabled
	}
	if caller.UserID == "" {
		return models.VerifyPaymentResult{}, ErrUnauthorized
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.VerifyPaymentResult{}, mapValidationError(err)
	}

	order, err := s.paymentOrderRepository.GetPaymentOrderByProviderOrderID(ctx, req.ProviderOrderID)
	if err != nil {
		return models.VerifyPaymentResult{}, mapStoreError(err)
	}
	if order.UserID != caller.UserID || order.ListingID != req.ListingID {
		log.Warn().Str("func", "*paymentService.VerifyPayment").Str("order_id", order.ID).Msg("payment order does not belong to caller")
		return models.VerifyPaymentResult{}, fmt.Errorf("%w: payment order belongs to another user or listing", ErrForbidden)
	}

	settlement := models.PaymentOrderSettlement{
		ProviderOrderID:   req.ProviderOrderID,
		ProviderPaymentID: req.ProviderPaymentID,
		ProviderSignature: req.ProviderSignature,
		SettledAt:         s.now(),
	}

	if !s.provider.VerifyCheckoutSignature(req.ProviderOrderID, req.ProviderPaymentID, req.ProviderSignature) {
		settlement.Status = models.PaymentFailed
		if _, err = s.paymentOrderRepository.SettlePaymentOrder(ctx, settlement); err != nil {
			log.Err(err).Str("func", "*paymentService.VerifyPayment").Str("order_id", order.ID).Msg("error marking order failed")
			return models.VerifyPaymentResult{}, mapStoreError(err)
		}
		log.Warn().Str("func", "*paymentService.VerifyPayment").Str("order_id", order.ID).Msg("payment signature mismatch")
		return models.VerifyPaymentResult{}, ErrInvalidSignature
	}

	settlement.Status = models.PaymentPaid
	if err = s.settlePaid(ctx, order, settlement); err != nil {
		return models.VerifyPaymentResult{}, err
	}

	if err = s.recordPaidUnlock(ctx, order); err != nil {
		return models.VerifyPaymentResult{}, err
	}
	return models.VerifyPaymentResult{Unlocked: true}, nil
}

func (s *paymentService) VerifyWebhookSignature(body []byte, signature string) bool {
	if !s.Enabled() {
		return false
	}
	return s.provider.VerifyWebhookSignature(body, signature)
}

// HandleWebhook reconciles a captured payment reported by the provider.
// Unknown orders and other events are acknowledged and ignored so the
// provider stops redelivering them.
func (s *paymentService) HandleWebhook(ctx context.Context, event models.PaymentWebhookEvent, signature string) error {
	log := logger.FromContext(ctx).With().Str("func", "*paymentService.HandleWebhook").Str("event", event.Event).Logger()

	if !s.Enabled() {
		return ErrPaymentsDisabled
	}
	if event.Event != webhookPaymentCaptured {
		log.Debug().Msg("ignoring webhook event")
		return nil
	}

	entity := event.Payload.Payment.Entity
	if entity.OrderID == "" || entity.ID == "" {
		return invalidInput("payload.payment.entity")
	}

	order, err := s.paymentOrderRepository.GetPaymentOrderByProviderOrderID(ctx, entity.OrderID)
	if errors.Is(err, store.ErrPaymentOrderNotFound) {
		log.Warn().Str("provider_order_id", entity.OrderID).Msg("webhook for unknown payment order")
		return nil
	}
	if err != nil {
		return mapStoreError(err)
	}
	if order.Status == models.PaymentFailed {
		log.Warn().Str("order_id", order.ID).Msg("captured payment for a failed order ignored")
		return nil
	}

	err = s.settlePaid(ctx, order, models.PaymentOrderSettlement{
		ProviderOrderID:   entity.OrderID,
		ProviderPaymentID: entity.ID,
		ProviderSignature: signature,
		Status:            models.PaymentPaid,
		SettledAt:         s.now(),
	})
	if errors.Is(err, ErrInvalidState) {
		log.Warn().Str("order_id", order.ID).Msg("order failed before webhook settled it")
		return nil
	}
	if err != nil {
		return err
	}

	return s.recordPaidUnlock(ctx, order)
}

// settlePaid moves order to PAID. An order that is already PAID is accepted;
// a FAILED order yields ErrInvalidState.
func (s *paymentService) settlePaid(ctx context.Context, order models.PaymentOrder, settlement models.PaymentOrderSettlement) error {
	log := logger.FromContext(ctx)

	switch order.Status {
	case models.PaymentPaid:
		return nil
	case models.PaymentFailed:
		return fmt.Errorf("%w: payment order %s failed", ErrInvalidState, order.ID)
	}

	settled, err := s.paymentOrderRepository.SettlePaymentOrder(ctx, settlement)
	if err != nil {
		log.Err(err).Str("func", "*paymentService.settlePaid").Str("order_id", order.ID).Msg("error settling payment order")
		return mapStoreError(err)
	}
	if settled {
		log.Info().Str("func", "*paymentService.settlePaid").Str("order_id", order.ID).Msg("payment order paid")
		return nil
	}

	// settled concurrently; the winner decides
	current, err := s.paymentOrderRepository.GetPaymentOrderByProviderOrderID(ctx, settlement.ProviderOrderID)
	if err != nil {
		return mapStoreError(err)
	}
	if current.Status != models.PaymentPaid {
		return fmt.Errorf("%w: payment order %s is %s", ErrInvalidState, order.ID, current.Status)
	}
	return nil
}

func (s *paymentService) recordPaidUnlock(ctx context.Context, order models.PaymentOrder) error {
	provider := order.Provider
	reference := order.ProviderOrderID

	created, err := s.unlockRepository.UpsertUnlock(ctx, models.Unlock{
		UserID:           order.UserID,
		ListingID:        order.ListingID,
		PaymentProvider:  &provider,
		PaymentReference: &reference,
		CreatedAt:        s.now(),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*paymentService.recordPaidUnlock").Str("order_id", order.ID).Msg("error recording paid unlock")
		return mapStoreError(err)
	}
	if created {
		incrementUnlockCount(ctx, s.listingRepository, order.ListingID)
	}
	return nil
}

func (s *paymentService) orderResult(order models.PaymentOrder) models.CreateOrderResult {
	return models.CreateOrderResult{
		OrderID:         order.ID,
		ProviderOrderID: order.ProviderOrderID,
		Amount:          order.Amount,
		Currency:        order.Currency,
		KeyID:           s.provider.KeyID(),
	}
}

func orderLockKey(userID, listingID string) string {
	return "payment-order:" + userID + ":" + listingID
}
