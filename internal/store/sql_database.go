package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/migrations"
)

// Dialect describes the SQL flavour of a backend.
type Dialect struct {
	// Name is the goose dialect name.
	Name string
	// Placeholder is the bind parameter format used by squirrel.
	Placeholder sq.PlaceholderFormat
}

var (
	PostgresDialect = Dialect{Name: migrations.DialectPostgres, Placeholder: sq.Dollar}
	SQLiteDialect   = Dialect{Name: migrations.DialectSQLite, Placeholder: sq.Question}
)

// DB is a connection pool bound to one backend. Repositories never branch on
// the backend; they build queries through [DB.builder] and classify failures
// through [DB.wrapError].
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an open pool. It is used by the backend constructors and by
// tests that run against go-sqlmock.
func NewDB(conn *sql.DB, dialect Dialect, classificator ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		errorClassificator: classificator,
		logger:             log,
	}
}

// Migrate applies the embedded schema migrations for this backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.Name)
}

// WithConn runs fn on a dedicated pooled connection. The connection is
// returned to the pool on every exit path.
func (db *DB) WithConn(ctx context.Context, fn func(ctx context.Context, conn *sql.Conn) error) error {
	conn, err := db.DB.Conn(ctx)
	if err != nil {
		return db.wrapError(err, ErrAcquiringConnection)
	}
	defer conn.Close()

	return fn(ctx, conn)
}

// WithTx runs fn inside a transaction on a dedicated connection. The
// transaction is committed when fn returns nil and rolled back otherwise.
func (db *DB) WithTx(ctx context.Context, fn func(ctx context.Context, tx *sql.Tx) error) error {
	return db.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return db.wrapError(err, ErrBeginningTransaction)
		}
		defer tx.Rollback()

		if err := fn(ctx, tx); err != nil {
			return err
		}

		if err := tx.Commit(); err != nil {
			return db.wrapError(err, ErrCommitingTransaction)
		}

		return nil
	})
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.dialect.Placeholder)
}

func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsUniqueViolation(err)
}

// wrapError attaches base to err, or [ErrDatabaseUnavailable] when the
// backend classifies err as retryable.
func (db *DB) wrapError(err error, base error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrDatabaseUnavailable, base, err)
	}
	return fmt.Errorf("%w: %w", base, err)
}

// querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
