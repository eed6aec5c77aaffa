package adapter

import "errors"

// Errors mapped from payment provider responses by mapHTTPError.
var (
	ErrBadRequest   = errors.New("provider rejected the request")
	ErrUnauthorized = errors.New("provider credentials rejected")
	ErrNotFound     = errors.New("provider resource not found")
	ErrConflict     = errors.New("provider conflict")

	// ErrProviderUnavailable covers transport failures, throttling and every
	// 5xx answer. Callers may retry later.
	ErrProviderUnavailable = errors.New("payment provider unavailable")
)
