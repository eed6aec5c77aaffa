package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/models"
)

// listingRepository is the SQL implementation of [ListingRepository].
type listingRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewListingRepository constructs a [ListingRepository] backed by db.
func NewListingRepository(db *DB, logger *logger.Logger) ListingRepository {
	logger.Debug().Msg("creating listing repository")
	return &listingRepository{
		db:     db,
		logger: logger,
	}
}

func (r *listingRepository) CreateListing(ctx context.Context, listing models.Listing) error {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateListingQuery(r.db.builder(), listing)
	if err != nil {
		log.Err(err).Str("func", "*listingRepository.CreateListing").Msg("error building query")
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*listingRepository.CreateListing").Msg("error inserting listing")
		return r.db.wrapError(err, ErrExecutingStatement)
	}

	return nil
}

func (r *listingRepository) GetListing(ctx context.Context, listingID string) (models.Listing, error) {
	return getListing(ctx, r.db, r.db.builder(), listingID)
}

// UpdateListing writes every editable column in one statement guarded by
// owner and non-LIVE status.
func (r *listingRepository) UpdateListing(ctx context.Context, listing models.Listing) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateListingQuery(r.db.builder(), listing)
	if err != nil {
		log.Err(err).Str("func", "*listingRepository.UpdateListing").Msg("error building query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*listingRepository.UpdateListing").Msg("error updating listing")
		return r.db.wrapError(err, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.db.wrapError(err, ErrExecutingStatement)
	}
	if affected == 0 {
		log.Debug().Str("func", "*listingRepository.UpdateListing").Str("listing_id", listing.ID).Msg("no editable listing matched")
		return ErrListingNotEditable
	}

	return nil
}

// ReviewListing applies the decision with a compare-and-set on status, so of
// two concurrent reviews exactly one matches the PENDING row.
func (r *listingRepository) ReviewListing(ctx context.Context, review models.ListingReview) (models.Listing, error) {
	log := logger.FromContext(ctx).With().Str("func", "*listingRepository.ReviewListing").Str("listing_id", review.ListingID).Logger()

	var reviewed models.Listing
	err := r.db.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		b := r.db.builder()

		query, args, err := buildReviewListingQuery(b, review)
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return r.db.wrapError(err, ErrExecutingStatement)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return r.db.wrapError(err, ErrExecutingStatement)
		}

		current, err := getListing(ctx, tx, b, review.ListingID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrListingNotPending
		}

		reviewed = current
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrListingNotFound) || errors.Is(err, ErrListingNotPending) {
			log.Debug().Err(err).Msg("review was not applied")
		} else {
			log.Error().Err(err).Msg("error reviewing listing")
		}
		return models.Listing{}, err
	}

	return reviewed, nil
}

func (r *listingRepository) ListListingsByStatus(ctx context.Context, status models.ListingStatus) ([]models.Listing, error) {
	query, args, err := buildListListingsQuery(r.db.builder(), sq.Eq{"status": status})
	if err != nil {
		return nil, err
	}
	return r.queryListings(ctx, "*listingRepository.ListListingsByStatus", query, args)
}

func (r *listingRepository) ListListingsByPromoter(ctx context.Context, promoterID string) ([]models.Listing, error) {
	query, args, err := buildListListingsQuery(r.db.builder(), sq.Eq{"promoter_id": promoterID})
	if err != nil {
		return nil, err
	}
	return r.queryListings(ctx, "*listingRepository.ListListingsByPromoter", query, args)
}

func (r *listingRepository) SearchLiveListings(ctx context.Context, filter models.SearchFilter) ([]models.Listing, error) {
	query, args, err := buildSearchLiveListingsQuery(r.db.builder(), filter)
	if err != nil {
		return nil, err
	}
	return r.queryListings(ctx, "*listingRepository.SearchLiveListings", query, args)
}

func (r *listingRepository) IncrementUnlockCount(ctx context.Context, listingID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildIncrementUnlockCountQuery(r.db.builder(), listingID)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*listingRepository.IncrementUnlockCount").Msg("error incrementing unlock count")
		return r.db.wrapError(err, ErrExecutingStatement)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrListingNotFound
	}

	return nil
}

func (r *listingRepository) queryListings(ctx context.Context, funcName, query string, args []any) ([]models.Listing, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying listings")
		return nil, r.db.wrapError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	listings := make([]models.Listing, 0)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning listing")
			return nil, r.db.wrapError(err, ErrScanningRows)
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating listings")
		return nil, r.db.wrapError(err, ErrScanningRows)
	}

	return listings, nil
}

func getListing(ctx context.Context, q querier, b sq.StatementBuilderType, listingID string) (models.Listing, error) {
	query, args, err := buildGetListingQuery(b, listingID)
	if err != nil {
		return models.Listing{}, err
	}

	listing, err := scanListing(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Listing{}, ErrListingNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "getListing").Msg("error scanning listing")
		return models.Listing{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return listing, nil
}
