package http

import (
	"net/http"

	"github.com/MKhiriev/go-estate/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	view, err := h.services.ContactService.GetContact(r.Context(), callerFromRequest(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getContact", err)
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) unlockContact(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r, "*Handler.unlockContact")
	if !ok {
		return
	}

	result, err := h.services.ContactService.UnlockContact(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.unlockContact", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
