package http

import (
	"net/http"

	"github.com/MKhiriev/chiro-hub/internal/utils"
)

// googleAuthURL redirects to the Google consent screen. With a debug query
// parameter the URL and its inputs are returned as JSON instead.
func (h *Handler) googleAuthURL(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	_, debug := query["debug"]

	redirectURI := h.services.OAuthService.RedirectURI(r)
	authURL, err := h.services.OAuthService.AuthURL(r.Context(), redirectURI, query.Get("state"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if debug {
		utils.WriteJSON(w, authURL, http.StatusOK)
		return
	}

	http.Redirect(w, r, authURL.AuthURL, http.StatusFound)
}
