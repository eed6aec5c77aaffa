package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/service"
	"github.com/MKhiriev/go-estate/internal/utils"
	"github.com/MKhiriev/go-estate/internal/validators"
	"github.com/MKhiriev/go-estate/models"
)

// errorStatusMap assigns a status to every error the service layer reports.
// No two entries are matched by the same error. An expired request deadline
// is checked before the map and wins over any sentinel wrapped with it.
var errorStatusMap = map[error]int{
	service.ErrInvalidInput:     http.StatusBadRequest,
	service.ErrInvalidSignature: http.StatusBadRequest,

	service.ErrUnauthorized:       http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrMissingWebhookSignature:    http.StatusUnauthorized,

	service.ErrPaymentRequired: http.StatusPaymentRequired,
	service.ErrForbidden:       http.StatusForbidden,
	service.ErrNotFound:        http.StatusNotFound,
	service.ErrInvalidState:    http.StatusConflict,
	service.ErrConflict:        http.StatusConflict,

	service.ErrPaymentsDisabled:      http.StatusNotImplemented,
	service.ErrUnavailable:           http.StatusServiceUnavailable,
	service.ErrTokenCreationFailed:   http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and writes it as an [models.ErrorResponse]. Internal
// failures are reported with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	body := models.ErrorResponse{Error: err.Error()}
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		body.Fields = validationErr.Fields
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
		if status == http.StatusInternalServerError {
			body.Error = http.StatusText(status)
		}
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, body, status)
}
