package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/models"
)

// paymentOrderRepository is the SQL implementation of
// [PaymentOrderRepository].
type paymentOrderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPaymentOrderRepository constructs a [PaymentOrderRepository] backed by db.
func NewPaymentOrderRepository(db *DB, logger *logger.Logger) PaymentOrderRepository {
	logger.Debug().Msg("creating payment order repository")
	return &paymentOrderRepository{
		db:     db,
		logger: logger,
	}
}

func (r *paymentOrderRepository) CreatePaymentOrder(ctx context.Context, order models.PaymentOrder) error {
	log := logger.FromContext(ctx)

	query, args, err := buildCreatePaymentOrderQuery(r.db.builder(), order)
	if err != nil {
		log.Err(err).Str("func", "*paymentOrderRepository.CreatePaymentOrder").Msg("error building query")
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.isUniqueViolation(err) {
			return ErrPaymentOrderAlreadyExists
		}
		log.Err(err).Str("func", "*paymentOrderRepository.CreatePaymentOrder").Msg("error inserting payment order")
		return r.db.wrapError(err, ErrExecutingStatement)
	}

	return nil
}

func (r *paymentOrderRepository) GetPaymentOrderByProviderOrderID(ctx context.Context, providerOrderID string) (models.PaymentOrder, error) {
	query, args, err := buildGetPaymentOrderQuery(r.db.builder(), providerOrderID)
	if err != nil {
		return models.PaymentOrder{}, err
	}
	return r.queryPaymentOrder(ctx, "*paymentOrderRepository.GetPaymentOrderByProviderOrderID", query, args)
}

// FindCreatedPaymentOrder returns the newest CREATED order of userID for
// listingID, or [ErrPaymentOrderNotFound].
func (r *paymentOrderRepository) FindCreatedPaymentOrder(ctx context.Context, userID, listingID string) (models.PaymentOrder, error) {
	query, args, err := buildFindCreatedPaymentOrderQuery(r.db.builder(), userID, listingID)
	if err != nil {
		return models.PaymentOrder{}, err
	}
	return r.queryPaymentOrder(ctx, "*paymentOrderRepository.FindCreatedPaymentOrder", query, args)
}

// SettlePaymentOrder moves a CREATED order to settlement.Status and reports
// whether this call performed the transition.
func (r *paymentOrderRepository) SettlePaymentOrder(ctx context.Context, settlement models.PaymentOrderSettlement) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSettlePaymentOrderQuery(r.db.builder(), settlement)
	if err != nil {
		log.Err(err).Str("func", "*paymentOrderRepository.SettlePaymentOrder").Msg("error building query")
		return false, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*paymentOrderRepository.SettlePaymentOrder").Msg("error settling payment order")
		return false, r.db.wrapError(err, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, r.db.wrapError(err, ErrExecutingStatement)
	}

	return affected > 0, nil
}

func (r *paymentOrderRepository) queryPaymentOrder(ctx context.Context, funcName, query string, args []any) (models.PaymentOrder, error) {
	order, err := scanPaymentOrder(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PaymentOrder{}, ErrPaymentOrderNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error scanning payment order")
		return models.PaymentOrder{}, r.db.wrapError(err, ErrScanningRow)
	}

	return order, nil
}
