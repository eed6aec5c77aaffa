package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/store"
	"github.com/MKhiriev/go-estate/internal/utils"
	"github.com/MKhiriev/go-estate/models"
)

// contactService keeps the unlock ledger and projects listing contacts.
type contactService struct {
	listingRepository store.ListingRepository
	userRepository    store.UserRepository
	unlockRepository  store.UnlockRepository

	// requirePayment makes free unlocks fail with ErrPaymentRequired.
	requirePayment bool

	now    func() time.Time
	logger *logger.Logger
}

// NewContactService constructs the contact service. requirePayment is only
// honoured by callers that also have payments enabled.
func NewContactService(storages *store.Storages, requirePayment bool, logger *logger.Logger) ContactService {
	return &contactService{
		listingRepository: storages.ListingRepository,
		userRepository:    storages.UserRepository,
		unlockRepository:  storages.UnlockRepository,
		requirePayment:    requirePayment,
		now:               utcNow,
		logger:            logger,
	}
}

// GetContact returns the owning promoter's phone, masked unless caller has
// unlocked the listing.
func (s *contactService) GetContact(ctx context.Context, caller *models.AuthenticatedUser, listingID string) (models.ContactView, error) {
	log := logger.FromContext(ctx)

	listing, err := s.listingRepository.GetListing(ctx, listingID)
	if err != nil {
		return models.ContactView{}, mapStoreError(err)
	}
	if listing.Status != models.ListingLive && !isOwnerOrAdmin(caller, listing) {
		return models.ContactView{}, fmt.Errorf("%w: listing %s", ErrNotFound, listingID)
	}

	promoter, err := s.userRepository.FindUserByID(ctx, listing.PromoterID)
	if err != nil {
		log.Err(err).Str("func", "*contactService.GetContact").Str("listing_id", listingID).Msg("error loading listing promoter")
		return models.ContactView{}, mapStoreError(err)
	}

	unlocked := false
	if caller != nil && caller.UserID != "" {
		unlocked, err = s.unlockRepository.UnlockExists(ctx, caller.UserID, listingID)
		if err != nil {
			log.Err(err).Str("func", "*contactService.GetContact").Str("listing_id", listingID).Msg("error checking unlock")
			return models.ContactView{}, mapStoreError(err)
		}
	}

	view := models.ContactView{
		Unlocked:    unlocked,
		MaskedPhone: utils.MaskPhone(promoter.Phone),
	}
	if unlocked {
		view.PhoneE164 = promoter.Phone
	}
	return view, nil
}

// UnlockContact records a free unlock for caller. A duplicate is reported as
// AlreadyUnlocked and the counter is only bumped for the first unlock.
func (s *contactService) UnlockContact(ctx context.Context, caller models.AuthenticatedUser, listingID string) (models.UnlockResult, error) {
	log := logger.FromContext(ctx)

	if caller.UserID == "" {
		return models.UnlockResult{}, ErrUnauthorized
	}

	listing, err := s.listingRepository.GetListing(ctx, listingID)
	if err != nil {
		return models.UnlockResult{}, mapStoreError(err)
	}
	if listing.Status != models.ListingLive {
		return models.UnlockResult{}, fmt.Errorf("%w: listing is %s", ErrInvalidState, listing.Status)
	}

	if s.requirePayment {
		exists, err := s.unlockRepository.UnlockExists(ctx, caller.UserID, listingID)
		if err != nil {
			return models.UnlockResult{}, mapStoreError(err)
		}
		if exists {
			return models.UnlockResult{Unlocked: true, AlreadyUnlocked: true}, nil
		}
		return models.UnlockResult{}, ErrPaymentRequired
	}

	err = s.unlockRepository.CreateUnlock(ctx, models.Unlock{
		UserID:    caller.UserID,
		ListingID: listingID,
		CreatedAt: s.now(),
	})
	if errors.Is(err, store.ErrUnlockAlreadyExists) {
		return models.UnlockResult{Unlocked: true, AlreadyUnlocked: true}, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*contactService.UnlockContact").Str("listing_id", listingID).Msg("error recording unlock")
		return models.UnlockResult{}, mapStoreError(err)
	}

	incrementUnlockCount(ctx, s.listingRepository, listingID)

	log.Info().Str("func", "*contactService.UnlockContact").Str("listing_id", listingID).Msg("contact unlocked")
	return models.UnlockResult{Unlocked: true}, nil
}

// incrementUnlockCount bumps the listing counter. Failures are logged and
// never undo the unlock.
func incrementUnlockCount(ctx context.Context, listingRepository store.ListingRepository, listingID string) {
	if err := listingRepository.IncrementUnlockCount(ctx, listingID); err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "incrementUnlockCount").
			Str("listing_id", listingID).
			Msg("unlock counter not incremented")
	}
}
