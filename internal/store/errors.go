package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrListingNotFound is returned when no listing has the requested id.
	ErrListingNotFound = errors.New("listing was not found")

	// ErrListingNotPending is returned when a review targets a listing that
	// has already left the PENDING state.
	ErrListingNotPending = errors.New("listing is not pending review")

	// ErrListingNotEditable is returned when an owner edit matched no row:
	// the listing changed owner-visible state (went LIVE) or does not belong
	// to the caller.
	ErrListingNotEditable = errors.New("listing is not editable")

	// ErrUnlockAlreadyExists is returned when an unlock for the same
	// (user, listing) pair is already recorded.
	ErrUnlockAlreadyExists = errors.New("unlock already exists")

	// ErrPaymentOrderNotFound is returned when no payment order has the
	// requested provider order id.
	ErrPaymentOrderNotFound = errors.New("payment order was not found")

	// ErrPaymentOrderAlreadyExists is returned when a provider order id is
	// recorded twice.
	ErrPaymentOrderAlreadyExists = errors.New("payment order already exists")

	// ErrDatabaseUnavailable wraps failures the classifier marks as
	// retryable (connection loss, serialization failure, busy database).
	ErrDatabaseUnavailable = errors.New("database is temporarily unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrAcquiringConnection is returned when a dedicated connection cannot
	// be taken from the pool.
	ErrAcquiringConnection = errors.New("failed to acquire connection")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDSN is returned when the DSN names no known backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)
