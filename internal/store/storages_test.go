package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-estate/internal/config"
	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorages_UnsupportedDSN(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: "mysql://localhost/estate"}}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "estate.db")

	s, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestStorages_SQLiteLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStorages(t)
	require.NoError(t, s.Ping(ctx))

	promoter := testUser()
	_, err := s.UserRepository.CreateUser(ctx, promoter)
	require.NoError(t, err)

	_, err = s.UserRepository.CreateUser(ctx, promoter)
	require.ErrorIs(t, err, ErrEmailAlreadyExists)

	admin := testUser()
	admin.UserID, admin.Email, admin.Role = "admin-1", "admin@example.com", models.RoleAdmin
	_, err = s.UserRepository.CreateUser(ctx, admin)
	require.NoError(t, err)

	customer := testUser()
	customer.UserID, customer.Email, customer.Role = "customer-1", "buyer@example.com", models.RoleCustomer
	_, err = s.UserRepository.CreateUser(ctx, customer)
	require.NoError(t, err)

	found, err := s.UserRepository.FindUserByEmail(ctx, promoter.Email)
	require.NoError(t, err)
	assert.Equal(t, promoter.UserID, found.UserID)
	assert.True(t, promoter.CreatedAt.Equal(found.CreatedAt))

	listing := testListing()
	listing.PromoterID = promoter.UserID
	require.NoError(t, s.ListingRepository.CreateListing(ctx, listing))

	got, err := s.ListingRepository.GetListing(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, listing.Amenities, got.Amenities)
	assert.Equal(t, models.ListingPending, got.Status)

	lo := 1.0
	results, err := s.ListingRepository.SearchLiveListings(ctx, models.SearchFilter{MinPricePerUnitArea: &lo})
	require.NoError(t, err)
	assert.Empty(t, results, "pending listings are not searchable")

	reviewed, err := s.ListingRepository.ReviewListing(ctx, models.ListingReview{
		ListingID:  listing.ID,
		Status:     models.ListingLive,
		ReviewedBy: admin.UserID,
		ReviewedAt: testNow,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ListingLive, reviewed.Status)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, admin.UserID, *reviewed.ReviewedBy)

	_, err = s.ListingRepository.ReviewListing(ctx, models.ListingReview{
		ListingID:  listing.ID,
		Status:     models.ListingRejected,
		ReviewedBy: admin.UserID,
		ReviewedAt: testNow,
	})
	assert.ErrorIs(t, err, ErrListingNotPending)

	listing.Title = "edited after going live"
	assert.ErrorIs(t, s.ListingRepository.UpdateListing(ctx, listing), ErrListingNotEditable)

	exact := 5000.0
	results, err = s.ListingRepository.SearchLiveListings(ctx, models.SearchFilter{MinPricePerUnitArea: &exact, MaxPricePerUnitArea: &exact})
	require.NoError(t, err)
	assert.Len(t, results, 1, "bounds are inclusive")

	free := models.Unlock{UserID: customer.UserID, ListingID: listing.ID, CreatedAt: testNow}
	require.NoError(t, s.UnlockRepository.CreateUnlock(ctx, free))
	assert.ErrorIs(t, s.UnlockRepository.CreateUnlock(ctx, free), ErrUnlockAlreadyExists)

	created, err := s.UnlockRepository.UpsertUnlock(ctx, free)
	require.NoError(t, err)
	assert.False(t, created)

	exists, err := s.UnlockRepository.UnlockExists(ctx, customer.UserID, listing.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.ListingRepository.IncrementUnlockCount(ctx, listing.ID))
	got, err = s.ListingRepository.GetListing(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UnlockCount)

	order := testOrder()
	order.UserID, order.ListingID = customer.UserID, listing.ID
	require.NoError(t, s.PaymentOrderRepository.CreatePaymentOrder(ctx, order))

	pending, err := s.PaymentOrderRepository.FindCreatedPaymentOrder(ctx, customer.UserID, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ProviderOrderID, pending.ProviderOrderID)

	settlement := models.PaymentOrderSettlement{
		ProviderOrderID:   order.ProviderOrderID,
		ProviderPaymentID: "pay_1",
		ProviderSignature: "sig",
		Status:            models.PaymentPaid,
		SettledAt:         testNow,
	}
	settled, err := s.PaymentOrderRepository.SettlePaymentOrder(ctx, settlement)
	require.NoError(t, err)
	assert.True(t, settled)

	settlement.Status = models.PaymentFailed
	settled, err = s.PaymentOrderRepository.SettlePaymentOrder(ctx, settlement)
	require.NoError(t, err)
	assert.False(t, settled, "a settled order never changes again")

	paid, err := s.PaymentOrderRepository.GetPaymentOrderByProviderOrderID(ctx, order.ProviderOrderID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, paid.Status)
	assert.NotNil(t, paid.PaidAt)

	_, err = s.PaymentOrderRepository.FindCreatedPaymentOrder(ctx, customer.UserID, listing.ID)
	assert.ErrorIs(t, err, ErrPaymentOrderNotFound)
}
