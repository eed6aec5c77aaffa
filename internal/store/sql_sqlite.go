package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-estate/internal/config"
	"github.com/MKhiriev/go-estate/internal/logger"
	_ "github.com/mattn/go-sqlite3"
)

// NewConnectSQLite opens the embedded SQLite store. Foreign keys are enforced
// and the pool is limited to a single connection, so writes are serialized by
// the pool itself.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", sqliteDSN(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	conn.SetMaxOpenConns(1)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return NewDB(conn, SQLiteDialect, NewSQLiteErrorClassifier(), log), nil
}

// sqliteDSN normalizes "sqlite://path" to a go-sqlite3 file URI and turns on
// foreign keys and a busy timeout unless the DSN already sets them.
func sqliteDSN(dsn string) string {
	if rest, ok := strings.CutPrefix(dsn, "sqlite://"); ok {
		dsn = "file:" + rest
	} else if rest, ok := strings.CutPrefix(dsn, "sqlite:"); ok {
		dsn = "file:" + rest
	}

	params := make([]string, 0, 2)
	if !strings.Contains(dsn, "_foreign_keys") && !strings.Contains(dsn, "_fk") {
		params = append(params, "_foreign_keys=on")
	}
	if !strings.Contains(dsn, "_busy_timeout") && !strings.Contains(dsn, "_timeout") {
		params = append(params, "_busy_timeout=5000")
	}
	if len(params) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}
