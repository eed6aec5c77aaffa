package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB] whether a failed statement is worth
// repeating.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// ErrorClassificator inspects driver errors of one backend.
type ErrorClassificator interface {
	// Classify reports whether err is worth retrying.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
}

// PostgresErrorClassifier reads SQLSTATE codes from pgx errors.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify treats connection exceptions (class 08), transaction rollbacks
// such as serialization failures and deadlocks (class 40) and operator
// intervention (class 57) as retryable. Integrity violations never are.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code := sqlState(err)
	switch {
	case code == "":
		return NonRetryable
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		pgerrcode.IsOperatorIntervention(code):
		return Retryable
	}

	return NonRetryable
}

// IsUniqueViolation matches both the unlock ledger key and the unique
// provider order id.
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	return sqlState(err) == pgerrcode.UniqueViolation
}

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
