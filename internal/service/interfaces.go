package service

import (
	"context"

	"github.com/MKhiriev/go-estate/models"
)

// AuthService registers users, checks credentials and issues and verifies
// bearer tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// ParseToken verifies the signature, issuer and expiry of tokenString.
	// Fails with ErrTokenIsExpired or ErrTokenIsInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.AuthenticatedUser, error)
}

// ListingService drives the listing moderation state machine and serves
// listing reads, including the public search projection.
type ListingService interface {
	CreateListing(ctx context.Context, caller models.AuthenticatedUser, draft models.ListingDraft) (models.Listing, error)
	EditListing(ctx context.Context, caller models.AuthenticatedUser, listingID string, update models.ListingUpdate) (models.Listing, error)
	ApproveListing(ctx context.Context, caller models.AuthenticatedUser, listingID string) (models.Listing, error)
	RejectListing(ctx context.Context, caller models.AuthenticatedUser, listingID string, reason string) (models.Listing, error)

	ListPendingListings(ctx context.Context, caller models.AuthenticatedUser) ([]models.Listing, error)
	ListListingsByStatus(ctx context.Context, caller models.AuthenticatedUser, status models.ListingStatus) ([]models.Listing, error)
	ListMyListings(ctx context.Context, caller models.AuthenticatedUser) ([]models.Listing, error)

	// GetListing returns a LIVE listing to anyone. Other listings are only
	// returned to their owner or an admin; everyone else gets ErrNotFound.
	// A nil caller is anonymous.
	GetListing(ctx context.Context, caller *models.AuthenticatedUser, listingID string) (models.Listing, error)

	// SearchLiveListings returns LIVE listings only, newest first.
	SearchLiveListings(ctx context.Context, filter models.SearchFilter) ([]models.Listing, error)
}

// ContactService reveals listing contacts to callers who unlocked them.
type ContactService interface {
	// GetContact never returns the unmasked phone unless an unlock exists
	// for (caller, listing). A nil caller is anonymous.
	GetContact(ctx context.Context, caller *models.AuthenticatedUser, listingID string) (models.ContactView, error)
	// UnlockContact is idempotent: a second call reports AlreadyUnlocked.
	UnlockContact(ctx context.Context, caller models.AuthenticatedUser, listingID string) (models.UnlockResult, error)
}

// PaymentService reconciles paid unlocks with the payment provider.
type PaymentService interface {
	Enabled() bool
	CreatePaymentOrder(ctx context.Context, caller models.AuthenticatedUser, req models.CreateOrderRequest) (models.CreateOrderResult, error)
	VerifyPayment(ctx context.Context, caller models.AuthenticatedUser, req models.VerifyPaymentRequest) (models.VerifyPaymentResult, error)
	// VerifyWebhookSignature authenticates a raw webhook body.
	VerifyWebhookSignature(body []byte, signature string) bool
	// HandleWebhook reconciles an authenticated provider event.
	HandleWebhook(ctx context.Context, event models.PaymentWebhookEvent, signature string) error
}

// AppInfoService exposes build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ListingServiceWrapper defines middleware composition for ListingService.
// Implementations wrap an existing ListingService to add behavior such as
// validating.
type ListingServiceWrapper interface {
	Wrap(ListingService) ListingService
}
