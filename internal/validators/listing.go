package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-estate/models"
	"github.com/go-playground/validator/v10"
)

// RequestValidator implements the Validator interface for every request
// model accepted by the API: listing drafts and edits, rejection reasons,
// registration and login credentials, and payment requests.
//
// Rules live in `validate` struct tags on the models. All violations are
// collected and returned together as *ValidationError.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator reporting JSON field names.
func NewRequestValidator() Validator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	return &RequestValidator{validate: v}
}

// Validate checks obj against its tag rules. When fields are given, only the
// named struct fields (Go names, e.g. "TotalPrice") are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ListingDraft, *models.ListingDraft,
		models.RegisterRequest, *models.RegisterRequest,
		models.LoginRequest, *models.LoginRequest,
		models.RejectRequest, *models.RejectRequest,
		models.CreateOrderRequest, *models.CreateOrderRequest,
		models.VerifyPaymentRequest, *models.VerifyPaymentRequest:
		return v.validateStruct(ctx, value, fields...)

	case models.ListingUpdate:
		return v.validateListingUpdate(ctx, value, fields...)
	case *models.ListingUpdate:
		return v.validateListingUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateListingUpdate(ctx context.Context, update models.ListingUpdate, fields ...string) error {
	if update.IsEmpty() {
		return NewValidationError("update")
	}
	return v.validateStruct(ctx, update, fields...)
}

func (v *RequestValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}

	return toValidationError(err)
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make([]string, 0, len(fieldErrs))
	seen := make(map[string]struct{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		name := fieldPath(fe.Namespace())
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		fields = append(fields, name)
	}

	return NewValidationError(fields...)
}

// fieldPath drops the top-level struct name from a validator namespace:
// "ListingDraft.address.city" becomes "address.city".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
