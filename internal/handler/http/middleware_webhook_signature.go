package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/service"
)

const (
	webhookSignatureHeader = "X-Razorpay-Signature"

	// maxWebhookBodySize bounds provider callbacks.
	maxWebhookBodySize = 1 << 20
)

// webhookSignature authenticates provider callbacks: the HMAC-SHA256 of the
// raw body under the webhook secret must equal the signature header. The
// body is restored for the next handler.
func (h *Handler) webhookSignature(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if !h.services.PaymentService.Enabled() {
			writeError(w, r, "*Handler.webhookSignature", service.ErrPaymentsDisabled)
			return
		}

		signature := r.Header.Get(webhookSignatureHeader)
		if signature == "" {
			writeError(w, r, "*Handler.webhookSignature", ErrMissingWebhookSignature)
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBodySize))
		if err != nil {
			log.Err(err).Str("func", "*Handler.webhookSignature").Msg("failed to read request body")
			writeError(w, r, "*Handler.webhookSignature", ErrInvalidJSON)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.services.PaymentService.VerifyWebhookSignature(body, signature) {
			log.Warn().Str("func", "*Handler.webhookSignature").Msg("webhook signature mismatch")
			writeError(w, r, "*Handler.webhookSignature", service.ErrInvalidSignature)
			return
		}

		log.Debug().Str("func", "*Handler.webhookSignature").Int("size", len(body)).Msg("webhook signature verified")
		next.ServeHTTP(w, r)
	})
}
