package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/internal/service"
	"github.com/MKhiriev/chiro-hub/internal/store"
	"github.com/MKhiriev/chiro-hub/internal/utils"
	"github.com/MKhiriev/chiro-hub/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:  http.StatusBadRequest,
	ErrBodyTooLarge: http.StatusRequestEntityTooLarge,

	service.ErrInvalidDataProvided:  http.StatusBadRequest,
	service.ErrInvalidLeadPayload:   http.StatusBadRequest,
	service.ErrOAuthClientIDMissing: http.StatusInternalServerError,
	service.ErrLeadStoreFailed:      http.StatusInternalServerError,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrDBNotConfigured:   http.StatusServiceUnavailable,
	store.ErrDBUnreachable:     http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err and {"error": err}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, status)
}
