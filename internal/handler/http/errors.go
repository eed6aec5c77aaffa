// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-estate/internal/service"
)

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not a "Bearer <token>" pair.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded,
	// including bodies with unknown fields. It matches service.ErrInvalidInput.
	ErrInvalidJSON = fmt.Errorf("%w: invalid JSON was passed", service.ErrInvalidInput)

	// errRouteNotFound answers requests for unsupported methods.
	errRouteNotFound = fmt.Errorf("%w: route", service.ErrNotFound)

	// ErrMissingWebhookSignature is returned when a provider callback carries
	// no signature header.
	ErrMissingWebhookSignature = errors.New("missing webhook signature")
)
