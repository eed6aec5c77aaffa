package http

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-estate/internal/service"
	"github.com/MKhiriev/go-estate/internal/utils"
	"github.com/MKhiriev/go-estate/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createListing(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r, "*Handler.createListing")
	if !ok {
		return
	}

	var draft models.ListingDraft
	if err := utils.DecodeJSON(w, r, &draft); err != nil {
		writeError(w, r, "*Handler.createListing", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	listing, err := h.services.ListingService.CreateListing(r.Context(), caller, draft)
	if err != nil {
		writeError(w, r, "*Handler.createListing", err)
		return
	}

	utils.WriteJSON(w, listing, http.StatusCreated)
}

func (h *Handler) editListing(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r, "*Handler.editListing")
	if !ok {
		return
	}

	var update models.ListingUpdate
	if err := utils.DecodeJSON(w, r, &update); err != nil {
		writeError(w, r, "*Handler.editListing", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	listing, err := h.services.ListingService.EditListing(r.Context(), caller, chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, "*Handler.editListing", err)
		return
	}

	utils.WriteJSON(w, listing, http.StatusOK)
}

func (h *Handler) getListing(w http.ResponseWriter, r *http.Request) {
	listing, err := h.services.ListingService.GetListing(r.Context(), callerFromRequest(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getListing", err)
		return
	}

	utils.WriteJSON(w, listing, http.StatusOK)
}

// searchListings serves the public search. Bounds that do not parse as
// finite numbers are ignored.
func (h *Handler) searchListings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.SearchFilter{
		MinPricePerUnitArea: parseBound(query.Get("minPpsf")),
		MaxPricePerUnitArea: parseBound(query.Get("maxPpsf")),
	}

	listings, err := h.services.ListingService.SearchLiveListings(r.Context(), filter)
	if err != nil {
		writeError(w, r, "*Handler.searchListings", err)
		return
	}

	writeListings(w, listings)
}

func (h *Handler) myListings(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r, "*Handler.myListings")
	if !ok {
		return
	}

	listings, err := h.services.ListingService.ListMyListings(r.Context(), caller)
	if err != nil {
		writeError(w, r, "*Handler.myListings", err)
		return
	}

	writeListings(w, listings)
}

// adminListings lists listings by ?status=, PENDING by default.
func (h *Handler) adminListings(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r, "*Handler.adminListings")
	if !ok {
		return
	}

	status := models.ListingStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = models.ListingPending
	}

	listings, err := h.services.ListingService.ListListingsByStatus(r.Context(), caller, status)
	if err != nil {
		writeError(w, r, "*Handler.adminListings", err)
		return
	}

	writeListings(w, listings)
}

func (h *Handler) approveListing(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r, "*Handler.approveListing")
	if !ok {
		return
	}

	listing, err := h.services.ListingService.ApproveListing(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.approveListing", err)
		return
	}

	utils.WriteJSON(w, listing, http.StatusOK)
}

func (h *Handler) rejectListing(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r, "*Handler.rejectListing")
	if !ok {
		return
	}

	var req models.RejectRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.rejectListing", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	listing, err := h.services.ListingService.RejectListing(r.Context(), caller, chi.URLParam(r, "id"), req.Reason)
	if err != nil {
		writeError(w, r, "*Handler.rejectListing", err)
		return
	}

	utils.WriteJSON(w, listing, http.StatusOK)
}

func writeListings(w http.ResponseWriter, listings []models.Listing) {
	if listings == nil {
		listings = []models.Listing{}
	}
	utils.WriteJSON(w, models.ListingsResponse{Listings: listings, Length: len(listings)}, http.StatusOK)
}

func parseBound(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// requireCaller returns the authenticated caller or writes 401.
func requireCaller(w http.ResponseWriter, r *http.Request, funcName string) (models.AuthenticatedUser, bool) {
	caller := callerFromRequest(r)
	if caller == nil {
		writeError(w, r, funcName, service.ErrUnauthorized)
		return models.AuthenticatedUser{}, false
	}
	return *caller, true
}
