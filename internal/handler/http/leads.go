package http

import (
	"net/http"

	"github.com/MKhiriev/chiro-hub/internal/utils"
	"github.com/MKhiriev/chiro-hub/models"
)

func (h *Handler) listLeads(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := models.LeadQuery{
		Chiropractor: query.Get("chiropractor"),
		Since:        query.Get("since"),
	}

	list, err := h.services.LeadService.ListLeads(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) receiveLead(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ack, err := h.services.LeadService.ReceiveLead(r.Context(), body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, ack, http.StatusOK)
}
