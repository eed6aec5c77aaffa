package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/utils"
	"github.com/MKhiriev/go-estate/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RegisterRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.register", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", registeredUser.UserID).Str("user_role", string(registeredUser.Role)).Msg("user registered")
	h.writeWithToken(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.login", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", foundUser.UserID).Msg("user successfully logged in")
	h.writeWithToken(w, r, foundUser, http.StatusOK)
}

// writeWithToken issues a token for user, returns it in the Authorization
// header and writes the user as the body.
func (h *Handler) writeWithToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, "*Handler.writeWithToken", err)
		return
	}

	user.Password = ""
	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, user, status)
}
