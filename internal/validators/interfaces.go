// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads against the struct tags on the
// models types using go-playground/validator.
//
// Every violated field is reported at once through *ValidationError, named
// by the JSON field the client sent (for example "total_price" or
// "address.pincode"). Partial updates are checked only on the fields they
// carry.
package validators

import "context"

// Validator validates a request payload. When fields are given only those
// JSON field names are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
