package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/models"
)

// unlockRepository is the SQL implementation of [UnlockRepository]. The
// (user_id, listing_id) unique constraint is the single source of truth for
// "at most one unlock per pair".
type unlockRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUnlockRepository constructs an [UnlockRepository] backed by db.
func NewUnlockRepository(db *DB, logger *logger.Logger) UnlockRepository {
	logger.Debug().Msg("creating unlock repository")
	return &unlockRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUnlock inserts unlock and yields [ErrUnlockAlreadyExists] when the
// pair is already recorded.
func (r *unlockRepository) CreateUnlock(ctx context.Context, unlock models.Unlock) error {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUnlockQuery(r.db.builder(), unlock)
	if err != nil {
		log.Err(err).Str("func", "*unlockRepository.CreateUnlock").Msg("error building query")
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.isUniqueViolation(err) {
			return ErrUnlockAlreadyExists
		}
		log.Err(err).Str("func", "*unlockRepository.CreateUnlock").Msg("error inserting unlock")
		return r.db.wrapError(err, ErrExecutingStatement)
	}

	return nil
}

// UpsertUnlock inserts unlock unless the pair exists and reports whether a
// new row was written.
func (r *unlockRepository) UpsertUnlock(ctx context.Context, unlock models.Unlock) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertUnlockQuery(r.db.builder(), unlock)
	if err != nil {
		log.Err(err).Str("func", "*unlockRepository.UpsertUnlock").Msg("error building query")
		return false, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*unlockRepository.UpsertUnlock").Msg("error upserting unlock")
		return false, r.db.wrapError(err, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, r.db.wrapError(err, ErrExecutingStatement)
	}

	return affected > 0, nil
}

func (r *unlockRepository) UnlockExists(ctx context.Context, userID, listingID string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUnlockExistsQuery(r.db.builder(), userID, listingID)
	if err != nil {
		return false, err
	}

	var one int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		log.Err(err).Str("func", "*unlockRepository.UnlockExists").Msg("error checking unlock")
		return false, r.db.wrapError(err, ErrExecutingQuery)
	}

	return true, nil
}
