package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-estate/internal/utils"
	"github.com/MKhiriev/go-estate/models"
)

func (h *Handler) createPaymentOrder(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r, "*Handler.createPaymentOrder")
	if !ok {
		return
	}

	var req models.CreateOrderRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.createPaymentOrder", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	result, err := h.services.PaymentService.CreatePaymentOrder(r.Context(), caller, req)
	if err != nil {
		writeError(w, r, "*Handler.createPaymentOrder", err)
		return
	}

	status := http.StatusCreated
	if result.AlreadyUnlocked {
		status = http.StatusOK
	}
	utils.WriteJSON(w, result, status)
}

func (h *Handler) verifyPayment(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r, "*Handler.verifyPayment")
	if !ok {
		return
	}

	var req models.VerifyPaymentRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.verifyPayment", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	result, err := h.services.PaymentService.VerifyPayment(r.Context(), caller, req)
	if err != nil {
		writeError(w, r, "*Handler.verifyPayment", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// paymentWebhook runs behind webhookSignature. Provider payloads carry many
// fields this service ignores, so unknown fields are accepted here.
func (h *Handler) paymentWebhook(w http.ResponseWriter, r *http.Request) {
	var event models.PaymentWebhookEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		writeError(w, r, "*Handler.paymentWebhook", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	if err := h.services.PaymentService.HandleWebhook(r.Context(), event, r.Header.Get(webhookSignatureHeader)); err != nil {
		writeError(w, r, "*Handler.paymentWebhook", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
