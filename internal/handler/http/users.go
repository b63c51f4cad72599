package http

import (
	"net/http"

	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/internal/utils"
	"github.com/MKhiriev/chiro-hub/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegistrationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("id", user.ID).Msg("user successfully registered")
	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) userLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.UserService.TouchLogin(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("login", result.Login).Int64("updated", result.Updated).Msg("login stamped")
	utils.WriteJSON(w, result, http.StatusOK)
}

// registerCheck always answers 200; problems are described in the body.
func (h *Handler) registerCheck(w http.ResponseWriter, r *http.Request) {
	diag := h.services.DiagnosticsService.Check(r.Context())
	utils.WriteJSON(w, diag, http.StatusOK)
}
