// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-estate/internal/adapter"
	"github.com/MKhiriev/go-estate/internal/locker"
	"github.com/MKhiriev/go-estate/internal/store"
	"github.com/MKhiriev/go-estate/internal/validators"
)

// mapStoreError translates a repository error into a service outcome error.
// Context errors pass through untouched. Anything else unrecognised is a
// store failure and becomes ErrUnavailable.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}
	if isContextError(err) {
		return err
	}

	switch {
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrListingNotFound),
		errors.Is(err, store.ErrPaymentOrderNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)

	case errors.Is(err, store.ErrEmailAlreadyExists),
		errors.Is(err, store.ErrPaymentOrderAlreadyExists),
		errors.Is(err, store.ErrUnlockAlreadyExists):
		return fmt.Errorf("%w: %w", ErrConflict, err)

	case errors.Is(err, store.ErrListingNotPending),
		errors.Is(err, store.ErrListingNotEditable):
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}

	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

// mapAdapterError translates a payment provider failure. Every provider
// failure is retryable from the caller's point of view, except an expired or
// cancelled request context, which is returned as is.
func mapAdapterError(err error) error {
	if err == nil || isContextError(err) {
		return err
	}
	if errors.Is(err, adapter.ErrProviderUnavailable) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return fmt.Errorf("%w: payment provider: %w", ErrUnavailable, err)
}

// mapLockError reports a lock that could not be taken as ErrUnavailable.
func mapLockError(err error) error {
	if isContextError(err) {
		return err
	}
	if errors.Is(err, locker.ErrLockNotAcquired) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return fmt.Errorf("%w: lock: %w", ErrUnavailable, err)
}

// mapValidationError wraps a validator failure into ErrInvalidInput. The
// *validators.ValidationError stays reachable with errors.As.
func mapValidationError(err error) error {
	if err == nil {
		return nil
	}
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, validationErr)
	}
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

func isContextError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func invalidInput(fields ...string) error {
	return mapValidationError(validators.NewValidationError(fields...))
}
