package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-estate/internal/config"
	"github.com/MKhiriev/go-estate/internal/logger"
)

// Storages aggregates every repository served by one database pool.
type Storages struct {
	UserRepository         UserRepository
	ListingRepository      ListingRepository
	UnlockRepository       UnlockRepository
	PaymentOrderRepository PaymentOrderRepository

	db *DB
}

// NewStorages connects to the backend selected by cfg.DB.DSN, applies the
// schema migrations and builds the repositories.
//
// Backend selection:
//   - "postgres://" or "postgresql://" → PostgreSQL via pgx
//   - "file:", "sqlite:" or a path ending in ".db" → embedded SQLite
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch backendOf(cfg.DB.DSN) {
	case backendPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case backendSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		log.Error().Str("func", "NewStorages").Msg("unsupported database DSN")
		return nil, ErrUnsupportedDSN
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories over an already prepared pool.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:         NewUserRepository(db, log),
		ListingRepository:      NewListingRepository(db, log),
		UnlockRepository:       NewUnlockRepository(db, log),
		PaymentOrderRepository: NewPaymentOrderRepository(db, log),
		db:                     db,
	}
}

// Ping reports whether the database answers.
func (s *Storages) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return s.db.wrapError(err, ErrAcquiringConnection)
	}
	return nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	return s.db.Close()
}

type backend int

const (
	backendUnknown backend = iota
	backendPostgres
	backendSQLite
)

func backendOf(dsn string) backend {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return backendPostgres
	case strings.HasPrefix(dsn, "file:"), strings.HasPrefix(dsn, "sqlite:"), strings.HasSuffix(dsn, ".db"):
		return backendSQLite
	}
	return backendUnknown
}
