package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPaymentOrderRepo(t *testing.T) (*paymentOrderRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &paymentOrderRepository{db: db, logger: logger.Nop()}, mock
}

func testOrder() models.PaymentOrder {
	return models.PaymentOrder{
		ID:              "order-1",
		Provider:        "razorpay",
		Status:          models.PaymentCreated,
		UserID:          "user-1",
		ListingID:       "listing-1",
		Amount:          4900,
		Currency:        "INR",
		ProviderOrderID: "order_ABC",
		CreatedAt:       testNow,
		UpdatedAt:       testNow,
	}
}

func orderRows(o models.PaymentOrder) *sqlmock.Rows {
	var paymentID, signature, paidAt any
	if o.ProviderPaymentID != nil {
		paymentID = *o.ProviderPaymentID
	}
	if o.ProviderSignature != nil {
		signature = *o.ProviderSignature
	}
	if o.PaidAt != nil {
		paidAt = *o.PaidAt
	}
	return sqlmock.NewRows(paymentOrderColumns).AddRow(
		o.ID, o.Provider, string(o.Status), o.UserID, o.ListingID, o.Amount, o.Currency,
		o.ProviderOrderID, paymentID, signature, paidAt, o.CreatedAt, o.UpdatedAt,
	)
}

func TestCreatePaymentOrder(t *testing.T) {
	repo, mock := newTestPaymentOrderRepo(t)

	mock.ExpectExec("INSERT INTO payment_orders").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO payment_orders").WillReturnError(pgError(pgerrcode.UniqueViolation))

	require.NoError(t, repo.CreatePaymentOrder(context.Background(), testOrder()))
	assert.ErrorIs(t, repo.CreatePaymentOrder(context.Background(), testOrder()), ErrPaymentOrderAlreadyExists)
}

func TestGetPaymentOrderByProviderOrderID(t *testing.T) {
	repo, mock := newTestPaymentOrderRepo(t)
	paid := testOrder()
	paymentID, sig := "pay_1", "abc"
	paid.Status = models.PaymentPaid
	paid.ProviderPaymentID = &paymentID
	paid.ProviderSignature = &sig
	paid.PaidAt = &testNow

	mock.ExpectQuery("SELECT (.+) FROM payment_orders WHERE provider_order_id = \\$1").
		WithArgs("order_ABC").
		WillReturnRows(orderRows(paid))
	mock.ExpectQuery("SELECT (.+) FROM payment_orders").
		WillReturnRows(sqlmock.NewRows(paymentOrderColumns))

	got, err := repo.GetPaymentOrderByProviderOrderID(context.Background(), "order_ABC")
	require.NoError(t, err)
	assert.Equal(t, paid, got)

	_, err = repo.GetPaymentOrderByProviderOrderID(context.Background(), "order_missing")
	assert.ErrorIs(t, err, ErrPaymentOrderNotFound)
}

func TestFindCreatedPaymentOrder(t *testing.T) {
	repo, mock := newTestPaymentOrderRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM payment_orders WHERE listing_id = \\$1 AND status = \\$2 AND user_id = \\$3 ORDER BY created_at DESC LIMIT 1").
		WithArgs("listing-1", models.PaymentCreated, "user-1").
		WillReturnRows(orderRows(testOrder()))

	got, err := repo.FindCreatedPaymentOrder(context.Background(), "user-1", "listing-1")

	require.NoError(t, err)
	assert.Equal(t, "order_ABC", got.ProviderOrderID)
}

func TestSettlePaymentOrder(t *testing.T) {
	tests := []struct {
		name     string
		status   models.PaymentOrderStatus
		paidAt   any
		affected int64
		want     bool
	}{
		{name: "paid", status: models.PaymentPaid, paidAt: testNow, affected: 1, want: true},
		{name: "failed", status: models.PaymentFailed, paidAt: nil, affected: 1, want: true},
		{name: "already settled", status: models.PaymentPaid, paidAt: testNow, affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestPaymentOrderRepo(t)

			mock.ExpectExec("UPDATE payment_orders SET status = \\$1, provider_payment_id = \\$2, provider_signature = \\$3, paid_at = \\$4, updated_at = \\$5 WHERE provider_order_id = \\$6 AND status = \\$7").
				WithArgs(tt.status, "pay_1", "sig", tt.paidAt, testNow, "order_ABC", models.PaymentCreated).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			settled, err := repo.SettlePaymentOrder(context.Background(), models.PaymentOrderSettlement{
				ProviderOrderID:   "order_ABC",
				ProviderPaymentID: "pay_1",
				ProviderSignature: "sig",
				Status:            tt.status,
				SettledAt:         testNow,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, settled)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
