package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/store"
	"github.com/MKhiriev/go-estate/internal/utils"
	"github.com/MKhiriev/go-estate/models"
)

// listingService implements ListingService on top of a ListingRepository.
// Role and ownership checks happen here; field validation is done by the
// listingValidationService wrapper.
type listingService struct {
	listingRepository store.ListingRepository

	ids idGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewListingService constructs the listing service.
func NewListingService(listingRepository store.ListingRepository, logger *logger.Logger) ListingService {
	return &listingService{
		listingRepository: listingRepository,
		ids:               utils.NewUUIDGenerator(),
		now:               utcNow,
		logger:            logger,
	}
}

// CreateListing stores draft as a new PENDING listing owned by caller.
func (s *listingService) CreateListing(ctx context.Context, caller models.AuthenticatedUser, draft models.ListingDraft) (models.Listing, error) {
	log := logger.FromContext(ctx)

	if !caller.HasRole(models.RolePromoter) {
		return models.Listing{}, fmt.Errorf("%w: only promoters create listings", ErrForbidden)
	}
	if !draft.AgreementAccepted {
		return models.Listing{}, invalidInput("agreement_accepted")
	}

	listing := models.NewListingFromDraft(draft, s.ids.Generate(), caller.UserID, s.now())
	if err := s.listingRepository.CreateListing(ctx, listing); err != nil {
		log.Err(err).Str("func", "*listingService.CreateListing").Msg("error saving listing")
		return models.Listing{}, mapStoreError(err)
	}

	log.Info().Str("func", "*listingService.CreateListing").Str("listing_id", listing.ID).Msg("listing submitted for review")
	return listing, nil
}

// EditListing applies update to a listing owned by caller. LIVE listings are
// frozen and status is never part of an edit.
func (s *listingService) EditListing(ctx context.Context, caller models.AuthenticatedUser, listingID string, update models.ListingUpdate) (models.Listing, error) {
	log := logger.FromContext(ctx)

	if !caller.HasRole(models.RolePromoter) {
		return models.Listing{}, fmt.Errorf("%w: only promoters edit listings", ErrForbidden)
	}

	listing, err := s.listingRepository.GetListing(ctx, listingID)
	if err != nil {
		return models.Listing{}, mapStoreError(err)
	}
	if listing.PromoterID != caller.UserID {
		log.Warn().Str("func", "*listingService.EditListing").Str("listing_id", listingID).Msg("edit of a foreign listing refused")
		return models.Listing{}, fmt.Errorf("%w: listing belongs to another promoter", ErrForbidden)
	}
	if listing.Status == models.ListingLive {
		return models.Listing{}, fmt.Errorf("%w: live listings cannot be edited", ErrInvalidState)
	}

	update.Apply(&listing)
	listing.UpdatedAt = s.now()

	if err = s.listingRepository.UpdateListing(ctx, listing); err != nil {
		log.Err(err).Str("func", "*listingService.EditListing").Str("listing_id", listingID).Msg("error updating listing")
		return models.Listing{}, mapStoreError(err)
	}

	return listing, nil
}

func (s *listingService) ApproveListing(ctx context.Context, caller models.AuthenticatedUser, listingID string) (models.Listing, error) {
	return s.review(ctx, caller, models.ListingReview{
		ListingID: listingID,
		Status:    models.ListingLive,
	})
}

// RejectListing requires a non-blank reason.
func (s *listingService) RejectListing(ctx context.Context, caller models.AuthenticatedUser, listingID string, reason string) (models.Listing, error) {
	if !caller.HasRole(models.RoleAdmin) {
		return models.Listing{}, fmt.Errorf("%w: only admins review listings", ErrForbidden)
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return models.Listing{}, invalidInput("rejection_reason")
	}

	return s.review(ctx, caller, models.ListingReview{
		ListingID:       listingID,
		Status:          models.ListingRejected,
		RejectionReason: &reason,
	})
}

func (s *listingService) review(ctx context.Context, caller models.AuthenticatedUser, review models.ListingReview) (models.Listing, error) {
	log := logger.FromContext(ctx)

	if !caller.HasRole(models.RoleAdmin) {
		return models.Listing{}, fmt.Errorf("%w: only admins review listings", ErrForbidden)
	}

	review.ReviewedBy = caller.UserID
	review.ReviewedAt = s.now()

	listing, err := s.listingRepository.ReviewListing(ctx, review)
	if err != nil {
		if !errors.Is(err, store.ErrListingNotFound) && !errors.Is(err, store.ErrListingNotPending) {
			log.Err(err).Str("func", "*listingService.review").Str("listing_id", review.ListingID).Msg("error reviewing listing")
		}
		return models.Listing{}, mapStoreError(err)
	}

	log.Info().
		Str("func", "*listingService.review").
		Str("listing_id", listing.ID).
		Str("status", string(listing.Status)).
		Msg("listing reviewed")
	return listing, nil
}

func (s *listingService) ListPendingListings(ctx context.Context, caller models.AuthenticatedUser) ([]models.Listing, error) {
	return s.ListListingsByStatus(ctx, caller, models.ListingPending)
}

func (s *listingService) ListListingsByStatus(ctx context.Context, caller models.AuthenticatedUser, status models.ListingStatus) ([]models.Listing, error) {
	if !caller.HasRole(models.RoleAdmin) {
		return nil, fmt.Errorf("%w: only admins list by status", ErrForbidden)
	}
	if !status.IsValid() {
		return nil, invalidInput("status")
	}

	listings, err := s.listingRepository.ListListingsByStatus(ctx, status)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return listings, nil
}

func (s *listingService) ListMyListings(ctx context.Context, caller models.AuthenticatedUser) ([]models.Listing, error) {
	if !caller.HasRole(models.RolePromoter) {
		return nil, fmt.Errorf("%w: only promoters own listings", ErrForbidden)
	}

	listings, err := s.listingRepository.ListListingsByPromoter(ctx, caller.UserID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return listings, nil
}

func (s *listingService) GetListing(ctx context.Context, caller *models.AuthenticatedUser, listingID string) (models.Listing, error) {
	listing, err := s.listingRepository.GetListing(ctx, listingID)
	if err != nil {
		return models.Listing{}, mapStoreError(err)
	}

	if listing.Status != models.ListingLive && !isOwnerOrAdmin(caller, listing) {
		return models.Listing{}, fmt.Errorf("%w: listing %s", ErrNotFound, listingID)
	}

	return listing, nil
}

// SearchLiveListings treats NaN and infinite bounds as absent.
func (s *listingService) SearchLiveListings(ctx context.Context, filter models.SearchFilter) ([]models.Listing, error) {
	filter.MinPricePerUnitArea = finiteOrNil(filter.MinPricePerUnitArea)
	filter.MaxPricePerUnitArea = finiteOrNil(filter.MaxPricePerUnitArea)

	listings, err := s.listingRepository.SearchLiveListings(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*listingService.SearchLiveListings").Msg("search failed")
		return nil, mapStoreError(err)
	}
	return listings, nil
}

func finiteOrNil(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	return v
}
