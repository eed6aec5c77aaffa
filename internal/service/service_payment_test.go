// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"

	"github.com/MKhiriev/go-estate/internal/adapter"
	"github.com/MKhiriev/go-estate/internal/config"
	"github.com/MKhiriev/go-estate/internal/locker"
	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/mock"
	"github.com/MKhiriev/go-estate/internal/store"
	"github.com/MKhiriev/go-estate/internal/validators"
	"github.com/MKhiriev/go-estate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type paymentMocks struct {
	listings *mock.MockListingRepository
	unlocks  *mock.MockUnlockRepository
	orders   *mock.MockPaymentOrderRepository
	provider *mock.MockPaymentAdapter
	locker   *mock.MockLocker
}

func newTestPaymentService(t *testing.T) (*paymentService, paymentMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := paymentMocks{
		listings: mock.NewMockListingRepository(ctrl),
		unlocks:  mock.NewMockUnlockRepository(ctrl),
		orders:   mock.NewMockPaymentOrderRepository(ctrl),
		provider: mock.NewMockPaymentAdapter(ctrl),
		locker:   mock.NewMockLocker(ctrl),
	}

	storages := &store.Storages{
		ListingRepository:      m.listings,
		UnlockRepository:       m.unlocks,
		PaymentOrderRepository: m.orders,
	}
	svc := NewPaymentService(storages, m.provider, m.locker, config.Payment{UnlockFee: 4900, Currency: "INR"}, logger.Nop()).(*paymentService)
	svc.ids = &sequenceIDs{ids: []string{"order-1", "order-2"}}
	svc.now = fixedNow
	return svc, m
}

func expectLock(m paymentMocks) {
	m.locker.EXPECT().
		Lock(gomock.Any(), "payment-order:customer-1:listing-1").
		Return(func() {}, nil)
}

func createdOrder() models.PaymentOrder {
	return models.PaymentOrder{
		ID:              "order-1",
		Provider:        "razorpay",
		Status:          models.PaymentCreated,
		UserID:          customer.UserID,
		ListingID:       "listing-1",
		Amount:          4900,
		Currency:        "INR",
		ProviderOrderID: "order_P1",
		CreatedAt:       testNow,
		UpdatedAt:       testNow,
	}
}

func verifyRequest() models.VerifyPaymentRequest {
	return models.VerifyPaymentRequest{
		ProviderOrderID:   "order_P1",
		ProviderPaymentID: "pay_P1",
		ProviderSignature: "sig",
		ListingID:         "listing-1",
	}
}

func TestPaymentService_Disabled(t *testing.T) {
	svc := NewPaymentService(&store.Storages{}, nil, nil, config.Payment{}, logger.Nop())

	assert.False(t, svc.Enabled())
	assert.False(t, svc.VerifyWebhookSignature([]byte("{}"), "sig"))

	_, err := svc.CreatePaymentOrder(ctxBg(), customer, models.CreateOrderRequest{ListingID: "listing-1"})
	assert.ErrorIs(t, err, ErrPaymentsDisabled)

	_, err = svc.VerifyPayment(ctxBg(), customer, verifyRequest())
	assert.ErrorIs(t, err, ErrPaymentsDisabled)

	err = svc.HandleWebhook(ctxBg(), models.PaymentWebhookEvent{Event: webhookPaymentCaptured}, "sig")
	assert.ErrorIs(t, err, ErrPaymentsDisabled)
}

func TestPaymentService_CreatePaymentOrder_New(t *testing.T) {
	svc, m := newTestPaymentService(t)

	m.listings.EXPECT().GetListing(gomock.Any(), "listing-1").Return(liveListing(), nil)
	expectLock(m)
	m.unlocks.EXPECT().UnlockExists(gomock.Any(), customer.UserID, "listing-1").Return(false, nil)
	m.orders.EXPECT().FindCreatedPaymentOrder(gomock.Any(), customer.UserID, "listing-1").Return(models.PaymentOrder{}, store.ErrPaymentOrderNotFound)
	m.provider.EXPECT().
		CreateOrder(gomock.Any(), models.ProviderOrderRequest{
			Amount:   4900,
			Currency: "INR",
			Receipt:  "order-1",
			Notes:    map[string]string{"user_id": customer.UserID, "listing_id": "listing-1"},
		}).
		Return(models.ProviderOrder{ID: "order_P1", Amount: 4900, Currency: "INR", Status: "created"}, nil)
	m.provider.EXPECT().Name().Return("razorpay")
	m.orders.EXPECT().CreatePaymentOrder(gomock.Any(), createdOrder()).Return(nil)
	m.provider.EXPECT().KeyID().Return("rzp_key")

	result, err := svc.CreatePaymentOrder(ctxBg(), customer, models.CreateOrderRequest{ListingID: "listing-1"})
	require.NoError(t, err)
	assert.Equal(t, models.CreateOrderResult{
		OrderID:         "order-1",
		ProviderOrderID: "order_P1",
		Amount:          4900,
		Currency:        "INR",
		KeyID:           "rzp_key",
	}, result)
}

func TestPaymentService_CreatePaymentOrder_AlreadyUnlocked(t *testing.T) {
	svc, m := newTestPaymentService(t)

	m.listings.EXPECT().GetListing(gomock.Any(), "listing-1").Return(liveListing(), nil)
	expectLock(m)
	m.unlocks.EXPECT().UnlockExists(gomock.Any(), customer.UserID, "listing-1").Return(true, nil)

	result, err := svc.CreatePaymentOrder(ctxBg(), customer, models.CreateOrderRequest{ListingID: "listing-1"})
	require.NoError(t, err)
	assert.Equal(t, models.CreateOrderResult{AlreadyUnlocked: true}, result)
}

func TestPaymentService_CreatePaymentOrder_ReusesOpenOrder(t *testing.T) {
	svc, m := newTestPaymentService(t)

	m.listings.EXPECT().GetListing(gomock.Any(), "listing-1").Return(liveListing(), nil)
	expectLock(m)
	m.unlocks.EXPECT().UnlockExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	m.orders.EXPECT().FindCreatedPaymentOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(createdOrder(), nil)
	m.provider.EXPECT().KeyID().Return("rzp_key")

	result, err := svc.CreatePaymentOrder(ctxBg(), customer, models.CreateOrderRequest{ListingID: "listing-1"})
	require.NoError(t, err)
	assert.Equal(t, "order_P1", result.ProviderOrderID)
}

func TestPaymentService_CreatePaymentOrder_Errors(t *testing.T) {
	t.Run("listing not live", func(t *testing.T) {
		svc, m := newTestPaymentService(t)
		m.listings.EXPECT().GetListing(gomock.Any(), "listing-1").Return(pendingListing(), nil)

		_, err := svc.CreatePaymentOrder(ctxBg(), customer, models.CreateOrderRequest{ListingID: "listing-1"})
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("lock unavailable", func(t *testing.T) {
		svc, m := newTestPaymentService(t)
		m.listings.EXPECT().GetListing(gomock.Any(), "listing-1").Return(liveListing(), nil)
		m.locker.EXPECT().Lock(gomock.Any(), gomock.Any()).Return(nil, locker.ErrLockNotAcquired)

		_, err := svc.CreatePaymentOrder(ctxBg(), customer, models.CreateOrderRequest{ListingID: "listing-1"})
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("provider down", func(t *testing.T) {
		svc, m := newTestPaymentService(t)
		m.listings.EXPECT().GetListing(gomock.Any(), "listing-1").Return(liveListing(), nil)
		expectLock(m)
		m.unlocks.EXPECT().UnlockExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		m.orders.EXPECT().FindCreatedPaymentOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.PaymentOrder{}, store.ErrPaymentOrderNotFound)
		m.provider.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(models.ProviderOrder{}, adapter.ErrProviderUnavailable)

		_, err := svc.CreatePaymentOrder(ctxBg(), customer, models.CreateOrderRequest{ListingID: "listing-1"})
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("missing listing id", func(t *testing.T) {
		svc, _ := newTestPaymentService(t)

		_, err := svc.CreatePaymentOrder(ctxBg(), customer, models.CreateOrderRequest{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestPaymentService_CreatePaymentOrder_ConcurrentRequestsOpenOneOrder(t *testing.T) {
	svc, m := newTestPaymentService(t)
	svc.locker = locker.NewLocalLocker()

	var (
		mu    sync.Mutex
		saved *models.PaymentOrder
	)

	m.listings.EXPECT().GetListing(gomock.Any(), "listing-1").Return(liveListing(), nil).AnyTimes()
	m.unlocks.EXPECT().UnlockExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	m.orders.EXPECT().
		FindCreatedPaymentOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, string) (models.PaymentOrder, error) {
			mu.Lock()
			defer mu.Unlock()
			if saved == nil {
				return models.PaymentOrder{}, store.ErrPaymentOrderNotFound
			}
			return *saved, nil
		}).
		AnyTimes()
	m.provider.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(models.ProviderOrder{ID: "order_P1"}, nil).Times(1)
	m.provider.EXPECT().Name().Return("razorpay").Times(1)
	m.provider.EXPECT().KeyID().Return("rzp_key").AnyTimes()
	m.orders.EXPECT().
		CreatePaymentOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order models.PaymentOrder) error {
			mu.Lock()
			defer mu.Unlock()
			saved = &order
			return nil
		}).
		Times(1)

	const callers = 8
	results := make([]models.CreateOrderResult, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := svc.CreatePaymentOrder(ctxBg(), customer, models.CreateOrderRequest{ListingID: "listing-1"})
			if assert.NoError(t, err) {
				results[i] = result
			}
		}()
	}
	wg.Wait()

	for _, result := range results {
		assert.Equal(t, "order_P1", result.ProviderOrderID)
	}
}

func TestPaymentService_VerifyPayment_Success(t *testing.T) {
	svc, m := newTestPaymentService(t)

	m.orders.EXPECT().GetPaymentOrderByProviderOrderID(gomock.Any(), "order_P1").Return(createdOrder(), nil)
	m.provider.EXPECT().VerifyCheckoutSignature("order_P1", "pay_P1", "sig").Return(true)
	m.orders.EXPECT().
		SettlePaymentOrder(gomock.Any(), models.PaymentOrderSettlement{
			ProviderOrderID:   "order_P1",
			ProviderPaymentID: "pay_P1",
			ProviderSignature: "sig",
			Status:            models.PaymentPaid,
			SettledAt:         testNow,
		}).
		Return(true, nil)
	m.unlocks.EXPECT().
		UpsertUnlock(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, unlock models.Unlock) (bool, error) {
			assert.Equal(t, customer.UserID, unlock.UserID)
			assert.Equal(t, "listing-1", unlock.ListingID)
			require.NotNil(t, unlock.PaymentProvider)
			require.NotNil(t, unlock.PaymentReference)
			assert.Equal(t, "razorpay", *unlock.PaymentProvider)
			assert.Equal(t, "order_P1", *unlock.PaymentReference)
			return true, nil
		})
	m.listings.EXPECT().IncrementUnlockCount(gomock.Any(), "listing-1").Return(nil)

	result, err := svc.VerifyPayment(ctxBg(), customer, verifyRequest())
	require.NoError(t, err)
	assert.True(t, result.Unlocked)
}

func TestPaymentService_VerifyPayment_RedeliveryIsNoOp(t *testing.T) {
	svc, m := newTestPaymentService(t)

	paid := createdOrder()
	paid.Status = models.PaymentPaid

	m.orders.EXPECT().GetPaymentOrderByProviderOrderID(gomock.Any(), "order_P1").Return(paid, nil)
	m.provider.EXPECT().VerifyCheckoutSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	m.orders.EXPECT().SettlePaymentOrder(gomock.Any(), gomock.Any()).Times(0)
	m.unlocks.EXPECT().UpsertUnlock(gomock.Any(), gomock.Any()).Return(false, nil)
	m.listings.EXPECT().IncrementUnlockCount(gomock.Any(), gomock.Any()).Times(0)

	result, err := svc.VerifyPayment(ctxBg(), customer, verifyRequest())
	require.NoError(t, err)
	assert.True(t, result.Unlocked)
}

func TestPaymentService_VerifyPayment_BadSignatureFailsOrder(t *testing.T) {
	svc, m := newTestPaymentService(t)

	m.orders.EXPECT().GetPaymentOrderByProviderOrderID(gomock.Any(), "order_P1").Return(createdOrder(), nil)
	m.provider.EXPECT().VerifyCheckoutSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(false)
	m.orders.EXPECT().
		SettlePaymentOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.PaymentOrderSettlement) (bool, error) {
			assert.Equal(t, models.PaymentFailed, s.Status)
			return true, nil
		})
	m.unlocks.EXPECT().UpsertUnlock(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.VerifyPayment(ctxBg(), customer, verifyRequest())
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestPaymentService_VerifyPayment_FailedOrderNeverPaid(t *testing.T) {
	svc, m := newTestPaymentService(t)

	failed := createdOrder()
	failed.Status = models.PaymentFailed

	m.orders.EXPECT().GetPaymentOrderByProviderOrderID(gomock.Any(), "order_P1").Return(failed, nil)
	m.provider.EXPECT().VerifyCheckoutSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	m.orders.EXPECT().SettlePaymentOrder(gomock.Any(), gomock.Any()).Times(0)
	m.unlocks.EXPECT().UpsertUnlock(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.VerifyPayment(ctxBg(), customer, verifyRequest())
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestPaymentService_VerifyPayment_LostSettlementRace(t *testing.T) {
	svc, m := newTestPaymentService(t)

	failed := createdOrder()
	failed.Status = models.PaymentFailed

	gomock.InOrder(
		m.orders.EXPECT().GetPaymentOrderByProviderOrderID(gomock.Any(), "order_P1").Return(createdOrder(), nil),
		m.orders.EXPECT().SettlePaymentOrder(gomock.Any(), gomock.Any()).Return(false, nil),
		m.orders.EXPECT().GetPaymentOrderByProviderOrderID(gomock.Any(), "order_P1").Return(failed, nil),
	)
	m.provider.EXPECT().VerifyCheckoutSignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)

	_, err := svc.VerifyPayment(ctxBg(), customer, verifyRequest())
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestPaymentService_VerifyPayment_Ownership(t *testing.T) {
	tests := []struct {
		name    string
		caller  models.AuthenticatedUser
		listing string
	}{
		{name: "another user", caller: models.AuthenticatedUser{UserID: "customer-2", Role: models.RoleCustomer}, listing: "listing-1"},
		{name: "another listing", caller: customer, listing: "listing-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestPaymentService(t)
			m.orders.EXPECT().GetPaymentOrderByProviderOrderID(gomock.Any(), "order_P1").Return(createdOrder(), nil)

			req := verifyRequest()
			req.ListingID = tt.listing
			_, err := svc.VerifyPayment(ctxBg(), tt.caller, req)
			assert.ErrorIs(t, err, ErrForbidden)
		})
	}
}

func TestPaymentService_VerifyPayment_UnknownOrder(t *testing.T) {
	svc, m := newTestPaymentService(t)
	m.orders.EXPECT().GetPaymentOrderByProviderOrderID(gomock.Any(), "order_P1").Return(models.PaymentOrder{}, store.ErrPaymentOrderNotFound)

	_, err := svc.VerifyPayment(ctxBg(), customer, verifyRequest())
	assert.ErrorIs(t, err, ErrNotFound)
}

func capturedEvent() models.PaymentWebhookEvent {
	var event models.PaymentWebhookEvent
	event.Event = webhookPaymentCaptured
	event.Payload.Payment.Entity.ID = "pay_P1"
	event.Payload.Payment.Entity.OrderID = "order_P1"
	event.Payload.Payment.Entity.Status = "captured"
	return event
}

func TestPaymentService_HandleWebhook_Captured(t *testing.T) {
	svc, m := newTestPaymentService(t)

	m.orders.EXPECT().GetPaymentOrderByProviderOrderID(gomock.Any(), "order_P1").Return(createdOrder(), nil)
	m.orders.EXPECT().
		SettlePaymentOrder(gomock.Any(), models.PaymentOrderSettlement{
			ProviderOrderID:   "order_P1",
			ProviderPaymentID: "pay_P1",
			ProviderSignature: "hook-sig",
			Status:            models.PaymentPaid,
			SettledAt:         testNow,
		}).
		Return(true, nil)
	m.unlocks.EXPECT().UpsertUnlock(gomock.Any(), gomock.Any()).Return(true, nil)
	m.listings.EXPECT().IncrementUnlockCount(gomock.Any(), "listing-1").Return(nil)

	require.NoError(t, svc.HandleWebhook(ctxBg(), capturedEvent(), "hook-sig"))
}

func TestPaymentService_HandleWebhook_Ignored(t *testing.T) {
	t.Run("other event", func(t *testing.T) {
		svc, _ := newTestPaymentService(t)
		event := capturedEvent()
		event.Event = "payment.authorized"

		assert.NoError(t, svc.HandleWebhook(ctxBg(), event, "sig"))
	})

	t.Run("unknown order", func(t *testing.T) {
		svc, m := newTestPaymentService(t)
		m.orders.EXPECT().GetPaymentOrderByProviderOrderID(gomock.Any(), "order_P1").Return(models.PaymentOrder{}, store.ErrPaymentOrderNotFound)

		assert.NoError(t, svc.HandleWebhook(ctxBg(), capturedEvent(), "sig"))
	})

	t.Run("failed order", func(t *testing.T) {
		svc, m := newTestPaymentService(t)
		failed := createdOrder()
		failed.Status = models.PaymentFailed
		m.orders.EXPECT().GetPaymentOrderByProviderOrderID(gomock.Any(), "order_P1").Return(failed, nil)
		m.unlocks.EXPECT().UpsertUnlock(gomock.Any(), gomock.Any()).Times(0)

		assert.NoError(t, svc.HandleWebhook(ctxBg(), capturedEvent(), "sig"))
	})

	t.Run("missing entity", func(t *testing.T) {
		svc, _ := newTestPaymentService(t)

		err := svc.HandleWebhook(ctxBg(), models.PaymentWebhookEvent{Event: webhookPaymentCaptured}, "sig")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestPaymentService_VerifyWebhookSignature_Delegates(t *testing.T) {
	svc, m := newTestPaymentService(t)
	m.provider.EXPECT().VerifyWebhookSignature([]byte(`{"event":"x"}`), "sig").Return(true)

	assert.True(t, svc.VerifyWebhookSignature([]byte(`{"event":"x"}`), "sig"))
}

func TestPaymentService_VerifyPayment_InvalidRequest(t *testing.T) {
	svc, _ := newTestPaymentService(t)

	req := verifyRequest()
	req.ProviderSignature = ""
	_, err := svc.VerifyPayment(ctxBg(), customer, req)
	require.ErrorIs(t, err, ErrInvalidInput)

	var validationErr *validators.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"provider_signature"}, validationErr.Fields)

	_, err = svc.VerifyPayment(ctxBg(), models.AuthenticatedUser{}, verifyRequest())
	assert.ErrorIs(t, err, ErrUnauthorized)
}
