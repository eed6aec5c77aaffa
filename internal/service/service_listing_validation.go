package service

import (
	"context"

	"github.com/MKhiriev/go-estate/internal/validators"
	"github.com/MKhiriev/go-estate/models"
)

// listingValidationService validates listing payloads before delegating to
// the wrapped ListingService. Every violated field is reported at once.
type listingValidationService struct {
	inner     ListingService
	validator validators.Validator
}

// NewListingValidationService returns a wrapper that validates drafts,
// edits and rejection reasons.
func NewListingValidationService() ListingServiceWrapper {
	return &listingValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *listingValidationService) Wrap(inner ListingService) ListingService {
	v.inner = inner
	return v
}

func (v *listingValidationService) CreateListing(ctx context.Context, caller models.AuthenticatedUser, draft models.ListingDraft) (models.Listing, error) {
	if err := v.validator.Validate(ctx, draft); err != nil {
		return models.Listing{}, mapValidationError(err)
	}
	return v.inner.CreateListing(ctx, caller, draft)
}

func (v *listingValidationService) EditListing(ctx context.Context, caller models.AuthenticatedUser, listingID string, update models.ListingUpdate) (models.Listing, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Listing{}, mapValidationError(err)
	}
	return v.inner.EditListing(ctx, caller, listingID, update)
}

func (v *listingValidationService) ApproveListing(ctx context.Context, caller models.AuthenticatedUser, listingID string) (models.Listing, error) {
	return v.inner.ApproveListing(ctx, caller, listingID)
}

func (v *listingValidationService) RejectListing(ctx context.Context, caller models.AuthenticatedUser, listingID string, reason string) (models.Listing, error) {
	if err := v.validator.Validate(ctx, models.RejectRequest{Reason: reason}); err != nil {
		return models.Listing{}, mapValidationError(err)
	}
	return v.inner.RejectListing(ctx, caller, listingID, reason)
}

func (v *listingValidationService) ListPendingListings(ctx context.Context, caller models.AuthenticatedUser) ([]models.Listing, error) {
	return v.inner.ListPendingListings(ctx, caller)
}

func (v *listingValidationService) ListListingsByStatus(ctx context.Context, caller models.AuthenticatedUser, status models.ListingStatus) ([]models.Listing, error) {
	return v.inner.ListListingsByStatus(ctx, caller, status)
}

func (v *listingValidationService) ListMyListings(ctx context.Context, caller models.AuthenticatedUser) ([]models.Listing, error) {
	return v.inner.ListMyListings(ctx, caller)
}

func (v *listingValidationService) GetListing(ctx context.Context, caller *models.AuthenticatedUser, listingID string) (models.Listing, error) {
	return v.inner.GetListing(ctx, caller, listingID)
}

func (v *listingValidationService) SearchLiveListings(ctx context.Context, filter models.SearchFilter) ([]models.Listing, error) {
	return v.inner.SearchLiveListings(ctx, filter)
}
