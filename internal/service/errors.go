package service

import (
	"errors"
	"fmt"
)

// Outcome errors of the service layer. Every error returned by a service
// matches exactly one of these with [errors.Is]; the transport maps them to
// responses.
var (
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTokenIsExpired and ErrTokenIsInvalid both match ErrUnauthorized.
	ErrTokenIsExpired = fmt.Errorf("%w: token is expired", ErrUnauthorized)
	ErrTokenIsInvalid = fmt.Errorf("%w: token is invalid", ErrUnauthorized)

	// ErrWrongCredentials is returned by Login for an unknown email or a
	// wrong password alike.
	ErrWrongCredentials = fmt.Errorf("%w: wrong email or password", ErrUnauthorized)

	ErrForbidden = errors.New("forbidden")
	ErrNotFound  = errors.New("not found")

	// ErrInvalidInput is wrapped together with a *validators.ValidationError
	// naming every violated field.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidState reports a violated state machine precondition.
	ErrInvalidState = errors.New("invalid state")

	ErrConflict         = errors.New("conflict")
	ErrInvalidSignature = errors.New("invalid payment signature")

	// ErrUnavailable wraps store and provider failures. The operation may be
	// retried.
	ErrUnavailable = errors.New("service unavailable")

	ErrPaymentsDisabled = errors.New("payments are not configured")
	ErrPaymentRequired  = errors.New("payment required to unlock contact")
)

// Construction errors.
var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrTokenSignKeyTooShort  = errors.New("token sign key is too short")
	ErrTokenCreationFailed   = errors.New("token creation failed")
)
