package store

import (
	"context"

	"github.com/MKhiriev/go-estate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user. A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail yields [ErrUserNotFound] when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID yields [ErrUserNotFound] when no account matches.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// ListingRepository persists listings and their moderation state.
type ListingRepository interface {
	CreateListing(ctx context.Context, listing models.Listing) error
	// GetListing yields [ErrListingNotFound] when no listing matches.
	GetListing(ctx context.Context, listingID string) (models.Listing, error)
	// UpdateListing writes the editable fields of listing. The write only
	// applies to a non-LIVE listing owned by listing.PromoterID; otherwise it
	// yields [ErrListingNotEditable].
	UpdateListing(ctx context.Context, listing models.Listing) error
	// ReviewListing moves a PENDING listing to review.Status together with the
	// review metadata in one conditional write and returns the result.
	// Yields [ErrListingNotFound] or [ErrListingNotPending].
	ReviewListing(ctx context.Context, review models.ListingReview) (models.Listing, error)
	ListListingsByStatus(ctx context.Context, status models.ListingStatus) ([]models.Listing, error)
	ListListingsByPromoter(ctx context.Context, promoterID string) ([]models.Listing, error)
	// SearchLiveListings returns LIVE listings within the inclusive price per
	// unit area bounds, newest first.
	SearchLiveListings(ctx context.Context, filter models.SearchFilter) ([]models.Listing, error)
	IncrementUnlockCount(ctx context.Context, listingID string) error
}

// UnlockRepository persists the contact unlock ledger.
type UnlockRepository interface {
	// CreateUnlock inserts unlock and yields [ErrUnlockAlreadyExists] when the
	// (user, listing) pair is already recorded.
	CreateUnlock(ctx context.Context, unlock models.Unlock) error
	// UpsertUnlock inserts unlock unless the pair exists. It reports whether a
	// row was created and never fails on a duplicate.
	UpsertUnlock(ctx context.Context, unlock models.Unlock) (bool, error)
	UnlockExists(ctx context.Context, userID, listingID string) (bool, error)
}

// PaymentOrderRepository persists payment orders.
type PaymentOrderRepository interface {
	// CreatePaymentOrder yields [ErrPaymentOrderAlreadyExists] for a
	// duplicate provider order id.
	CreatePaymentOrder(ctx context.Context, order models.PaymentOrder) error
	// GetPaymentOrderByProviderOrderID yields [ErrPaymentOrderNotFound].
	GetPaymentOrderByProviderOrderID(ctx context.Context, providerOrderID string) (models.PaymentOrder, error)
	// FindCreatedPaymentOrder returns the newest CREATED order of the pair or
	// [ErrPaymentOrderNotFound].
	FindCreatedPaymentOrder(ctx context.Context, userID, listingID string) (models.PaymentOrder, error)
	// SettlePaymentOrder moves a CREATED order to settlement.Status and
	// records the provider evidence. It reports false when the order was no
	// longer CREATED.
	SettlePaymentOrder(ctx context.Context, settlement models.PaymentOrderSettlement) (bool, error)
}
